package view

import (
	"sort"
	"strings"

	"github.com/bitmark-inc/covid-dashboard/aggregate"
	"github.com/bitmark-inc/covid-dashboard/schema"
)

// BuildTable returns one row per foreign country plus the domestic region,
// sorted by SortRows
func BuildTable(domestic, foreign []schema.RegionRecord) []schema.TableRow {
	rows := make([]schema.TableRow, 0, len(foreign)+1)
	for _, r := range foreign {
		if !r.Named() {
			continue
		}
		rows = append(rows, schema.TableRow{
			Name:                  strings.TrimSpace(r.CountryEnglishName),
			ConfirmedCount:        r.ConfirmedCount,
			CurrentConfirmedCount: r.CurrentConfirmedCount,
			SuspectedCount:        r.SuspectedCount,
			CuredCount:            r.CuredCount,
			DeadCount:             r.DeadCount,
		})
	}

	sum := aggregate.Sum(domestic, "")
	rows = append(rows, schema.TableRow{
		Name:                  DomesticName(domestic),
		ConfirmedCount:        sum.Confirmed,
		CurrentConfirmedCount: sum.CurrentConfirmed,
		SuspectedCount:        sum.Suspect,
		CuredCount:            sum.Cured,
		DeadCount:             sum.Death,
	})

	SortRows(rows)
	return rows
}

// SortRows orders rows by confirmed desc, cured desc, then name asc
func SortRows(rows []schema.TableRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.ConfirmedCount != b.ConfirmedCount {
			return a.ConfirmedCount > b.ConfirmedCount
		}
		if a.CuredCount != b.CuredCount {
			return a.CuredCount > b.CuredCount
		}
		return a.Name < b.Name
	})
}
