package schema

// Rollup is the summed counts of a set of regions
type Rollup struct {
	Time             string `json:"time"`
	Confirmed        int64  `json:"confirmed"`
	CurrentConfirmed int64  `json:"currentConfirmed"`
	Suspect          int64  `json:"suspect"`
	Cured            int64  `json:"cured"`
	Death            int64  `json:"death"`
	Fatality         string `json:"fatality"`
}

// Totals is the overview panel
type Totals struct {
	UpdateTime string `json:"updateTime"`
	Domestic   Rollup `json:"domestic"`
	Foreign    Rollup `json:"foreign"`
	Global     Rollup `json:"global"`
}

// TimelinePoint is the counts of one region on one day
type TimelinePoint struct {
	Date             string `json:"date"`
	Confirmed        int64  `json:"confirmed"`
	CurrentConfirmed int64  `json:"currentConfirmed"`
	Cured            int64  `json:"cured"`
	Dead             int64  `json:"dead"`
}
