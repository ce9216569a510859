package consts

import (
	"fmt"
	"io/ioutil"
	"strings"

	"gopkg.in/yaml.v2"
)

const (
	// WorldMap is the id the world geometry is registered under
	WorldMap = "world"

	// DomesticRegion is the name of the synthetic region summed from
	// province breakdown records
	DomesticRegion = "China"
)

// LocalNameOverrides - local-language country names whose english name does
// not match the world geometry
var LocalNameOverrides map[string]string

// EnglishNameOverrides - english country names as spelled by the data sources
// mapped to the names used by the world geometry
var EnglishNameOverrides map[string]string

func init() {
	LocalNameOverrides = make(map[string]string)

	LocalNameOverrides["阿联酋"] = "United Arab Emirates"
	LocalNameOverrides["钻石公主号邮轮"] = "Diamond Princess Cruise"

	EnglishNameOverrides = make(map[string]string)

	EnglishNameOverrides["United States of America"] = "United States"
	EnglishNameOverrides["USA"] = "United States"
	EnglishNameOverrides["UK"] = "United Kingdom"
	EnglishNameOverrides["UAE"] = "United Arab Emirates"
	EnglishNameOverrides["S. Korea"] = "Korea"
	EnglishNameOverrides["South Korea"] = "Korea"
	EnglishNameOverrides["North Korea"] = "Dem. Rep. Korea"
	EnglishNameOverrides["Diamond Princess"] = "Diamond Princess Cruise"
	EnglishNameOverrides["Czechia"] = "Czech Rep."
	EnglishNameOverrides["Czech Republic"] = "Czech Rep."
	EnglishNameOverrides["Dominican Republic"] = "Dominican Rep."
	EnglishNameOverrides["CAR"] = "Central African Rep."
	EnglishNameOverrides["DRC"] = "Dem. Rep. Congo"
	EnglishNameOverrides["Bosnia and Herzegovina"] = "Bosnia and Herz."
	EnglishNameOverrides["Laos"] = "Lao PDR"
	EnglishNameOverrides["South Sudan"] = "S. Sudan"
	EnglishNameOverrides["Ivory Coast"] = "Côte d'Ivoire"
	EnglishNameOverrides["Equatorial Guinea"] = "Eq. Guinea"
	EnglishNameOverrides["Solomon Islands"] = "Solomon Is."
	EnglishNameOverrides["North Macedonia"] = "Macedonia"
}

// LoadAliases - read an extra english name alias table from a yaml file,
// one `source name: map name` pair per line
func LoadAliases(file string) (map[string]string, error) {
	data, err := ioutil.ReadFile(file)
	if nil != err {
		return nil, err
	}

	var raw map[string]string
	if err := yaml.Unmarshal(data, &raw); nil != err {
		return nil, fmt.Errorf("parse alias file %s: %w", file, err)
	}

	aliases := make(map[string]string, len(raw))
	for from, to := range raw {
		from = strings.TrimSpace(from)
		to = strings.TrimSpace(to)
		if from == "" || to == "" {
			continue
		}
		aliases[from] = to
	}

	return aliases, nil
}
