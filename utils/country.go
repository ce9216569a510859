package utils

import (
	"strings"

	"github.com/bitmark-inc/covid-dashboard/consts"
)

// Normalizer - resolve country names of the data sources into the names
// used by the world geometry
type Normalizer struct {
	local   map[string]string
	english map[string]string
}

// DefaultNormalizer uses the built-in override tables only
var DefaultNormalizer = NewNormalizer(nil)

// NewNormalizer - return a normalizer with extra english aliases merged over
// the built-in table
func NewNormalizer(extra map[string]string) Normalizer {
	local := make(map[string]string, len(consts.LocalNameOverrides))
	for k, v := range consts.LocalNameOverrides {
		local[k] = v
	}

	english := make(map[string]string, len(consts.EnglishNameOverrides)+len(extra))
	for k, v := range consts.EnglishNameOverrides {
		english[k] = v
	}
	for k, v := range extra {
		english[k] = v
	}

	return Normalizer{
		local:   local,
		english: english,
	}
}

// CanonicalName - return the map name for a region given its local name
// and/or the english name reported by the source. Unmapped names pass
// through trimmed; an empty result means the region has no usable name.
func (n Normalizer) CanonicalName(local, english string) string {
	if name, ok := n.local[strings.TrimSpace(local)]; ok {
		return name
	}

	english = strings.TrimSpace(english)
	if name, ok := n.english[english]; ok {
		return name
	}

	return english
}
