package view

import (
	"strings"

	"github.com/bitmark-inc/covid-dashboard/consts"
	"github.com/bitmark-inc/covid-dashboard/schema"
	"github.com/bitmark-inc/covid-dashboard/utils"
)

// Canonicalize returns copies of records whose english country names are
// replaced by their map names
func Canonicalize(records []schema.RegionRecord, n utils.Normalizer) []schema.RegionRecord {
	out := make([]schema.RegionRecord, len(records))
	for i, r := range records {
		r.CountryEnglishName = n.CanonicalName(r.CountryName, r.CountryEnglishName)
		out[i] = r
	}
	return out
}

// Split separates province breakdown records of the domestic region from
// flat country records. A flat record named after the domestic region is
// dropped when breakdown records exist so the region is not counted twice.
func Split(records []schema.RegionRecord) (domestic, foreign []schema.RegionRecord) {
	for _, r := range records {
		if r.HasBreakdown() {
			domestic = append(domestic, r)
		} else {
			foreign = append(foreign, r)
		}
	}

	if len(domestic) == 0 {
		return domestic, foreign
	}

	name := DomesticName(domestic)
	kept := foreign[:0:0]
	for _, r := range foreign {
		if strings.TrimSpace(r.CountryEnglishName) == name {
			continue
		}
		kept = append(kept, r)
	}

	return domestic, kept
}

// DomesticName returns the country name shared by the breakdown records
func DomesticName(domestic []schema.RegionRecord) string {
	for _, r := range domestic {
		if r.Named() {
			return strings.TrimSpace(r.CountryEnglishName)
		}
	}
	return consts.DomesticRegion
}
