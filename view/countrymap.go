package view

import (
	"github.com/bitmark-inc/covid-dashboard/aggregate"
	"github.com/bitmark-inc/covid-dashboard/schema"
	"github.com/bitmark-inc/covid-dashboard/utils"
)

// missingRate shades a country that has cases but no per-million rate
const missingRate = 1

// BuildCountryMap converts the per-country snapshot into map entries
func BuildCountryMap(countries []schema.CountryCases, n utils.Normalizer) []schema.MapEntry {
	entries := make([]schema.MapEntry, 0, len(countries))
	for _, c := range countries {
		name := n.CanonicalName("", c.Name)
		if name == "" {
			continue
		}

		value, ok := utils.ParseRate(c.PerMppl)
		if !ok {
			value = missingRate
		}

		total := utils.ParseCount(c.Total)
		dead := utils.ParseCount(c.Dead)

		entries = append(entries, schema.MapEntry{
			Name:           name,
			Value:          value,
			ActiveCount:    utils.ParseCount(c.Active),
			ConfirmedCount: total,
			IncreasedCount: utils.ParseCount(c.Increased),
			CuredCount:     utils.ParseCount(c.Recovered),
			DeadCount:      dead,
			Lethality:      aggregate.Lethality(dead, total),
		})
	}

	return entries
}
