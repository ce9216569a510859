package view

import (
	"strings"

	"github.com/bitmark-inc/covid-dashboard/aggregate"
	"github.com/bitmark-inc/covid-dashboard/schema"
)

// BuildGlobalMap projects foreign countries to their confirmed counts and
// appends the domestic region summed from its breakdown
func BuildGlobalMap(domestic, foreign []schema.RegionRecord) []schema.MapPoint {
	points := make([]schema.MapPoint, 0, len(foreign)+1)
	for _, r := range foreign {
		if !r.Named() {
			continue
		}
		points = append(points, schema.MapPoint{
			Name:  strings.TrimSpace(r.CountryEnglishName),
			Value: r.ConfirmedCount,
		})
	}

	sum := aggregate.Sum(domestic, "")
	points = append(points, schema.MapPoint{
		Name:  DomesticName(domestic),
		Value: sum.Confirmed,
	})

	return points
}
