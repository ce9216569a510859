package view

import (
	"time"

	"github.com/bitmark-inc/covid-dashboard/aggregate"
	"github.com/bitmark-inc/covid-dashboard/schema"
)

const timeLayout = "2006-01-02 15:04:05"

// UpdateTime formats the epoch milliseconds of the first record, in loc or
// the local timezone when loc is nil
func UpdateTime(records []schema.RegionRecord, loc *time.Location) string {
	if len(records) == 0 || records[0].UpdateTime == 0 {
		return ""
	}
	return formatMillis(records[0].UpdateTime, loc, timeLayout)
}

func formatMillis(ms int64, loc *time.Location, layout string) string {
	if loc == nil {
		loc = time.Local
	}
	return time.Unix(0, ms*int64(time.Millisecond)).In(loc).Format(layout)
}

// BuildTotals sums the domestic breakdown, the rest of the world and both
func BuildTotals(records []schema.RegionRecord, loc *time.Location) schema.Totals {
	domestic, foreign := Split(records)
	t := UpdateTime(records, loc)

	all := make([]schema.RegionRecord, 0, len(domestic)+len(foreign))
	all = append(all, domestic...)
	all = append(all, foreign...)

	return schema.Totals{
		UpdateTime: t,
		Domestic:   aggregate.Sum(domestic, t),
		Foreign:    aggregate.Sum(foreign, t),
		Global:     aggregate.Sum(all, t),
	}
}
