package aggregate

import "github.com/bitmark-inc/covid-dashboard/schema"

// Sum adds up the counts of all records carrying a country name. Records
// without one are placeholders and contribute nothing.
func Sum(records []schema.RegionRecord, time string) schema.Rollup {
	r := schema.Rollup{Time: time}

	for _, rec := range records {
		if !rec.Named() {
			continue
		}
		r.Confirmed += rec.ConfirmedCount
		r.CurrentConfirmed += rec.CurrentConfirmedCount
		r.Suspect += rec.SuspectedCount
		r.Cured += rec.CuredCount
		r.Death += rec.DeadCount
	}

	r.Fatality = Fatality(r.Death, r.Confirmed, r.Cured)
	return r
}
