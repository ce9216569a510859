package view

import (
	"sort"
	"strings"
	"time"

	"github.com/bitmark-inc/covid-dashboard/schema"
)

const dateLayout = "2006-01-02"

// BuildTimeline returns the daily counts of one country from the history
// snapshots. The last snapshot of each province on a day is kept and the
// provinces are summed.
func BuildTimeline(history []schema.RegionRecord, name string, loc *time.Location) []schema.TimelinePoint {
	name = strings.TrimSpace(name)
	if name == "" {
		return []schema.TimelinePoint{}
	}

	matched := make([]schema.RegionRecord, 0)
	breakdown := false
	for _, r := range history {
		if r.UpdateTime == 0 || !strings.EqualFold(strings.TrimSpace(r.CountryEnglishName), name) {
			continue
		}
		matched = append(matched, r)
		if r.HasBreakdown() {
			breakdown = true
		}
	}

	type key struct {
		day      string
		province string
	}

	latest := make(map[key]schema.RegionRecord)
	for _, r := range matched {
		if breakdown && !r.HasBreakdown() {
			continue
		}
		k := key{
			day:      formatMillis(r.UpdateTime, loc, dateLayout),
			province: r.ProvinceName,
		}
		if prev, ok := latest[k]; !ok || r.UpdateTime > prev.UpdateTime {
			latest[k] = r
		}
	}

	days := make(map[string]*schema.TimelinePoint)
	for k, r := range latest {
		p, ok := days[k.day]
		if !ok {
			p = &schema.TimelinePoint{Date: k.day}
			days[k.day] = p
		}
		p.Confirmed += r.ConfirmedCount
		p.CurrentConfirmed += r.CurrentConfirmedCount
		p.Cured += r.CuredCount
		p.Dead += r.DeadCount
	}

	points := make([]schema.TimelinePoint, 0, len(days))
	for _, p := range days {
		points = append(points, *p)
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Date < points[j].Date
	})

	return points
}
