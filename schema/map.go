package schema

// MapPoint is a region name with the value used to shade it
type MapPoint struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

// MapEntry is a country of the per-million map. Value is cases per million
// people, or 1 when the source has no rate.
type MapEntry struct {
	Name           string  `json:"name"`
	Value          float64 `json:"value"`
	ActiveCount    int64   `json:"activeCount"`
	ConfirmedCount int64   `json:"confirmedCount"`
	IncreasedCount int64   `json:"increasedCount"`
	CuredCount     int64   `json:"curedCount"`
	DeadCount      int64   `json:"deadCount"`
	Lethality      string  `json:"lethality"`
}

// TableRow is one row of the country table
type TableRow struct {
	Name                  string `json:"name"`
	ConfirmedCount        int64  `json:"confirmedCount"`
	CurrentConfirmedCount int64  `json:"currentConfirmedCount"`
	SuspectedCount        int64  `json:"suspectedCount"`
	CuredCount            int64  `json:"curedCount"`
	DeadCount             int64  `json:"deadCount"`
}
