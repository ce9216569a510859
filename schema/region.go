package schema

import "strings"

// AreaResponse is the payload of the nCoV area endpoint
type AreaResponse struct {
	Results []RegionRecord `json:"results"`
	Success bool           `json:"success"`
}

// RegionRecord is one region snapshot of the nCoV area endpoint. Records
// with a non-nil Cities list are province breakdowns of the domestic region.
type RegionRecord struct {
	ContinentName         string `json:"continentName"`
	ContinentEnglishName  string `json:"continentEnglishName"`
	CountryName           string `json:"countryName"`
	CountryEnglishName    string `json:"countryEnglishName"`
	ProvinceName          string `json:"provinceName"`
	ProvinceEnglishName   string `json:"provinceEnglishName"`
	ConfirmedCount        int64  `json:"confirmedCount"`
	CurrentConfirmedCount int64  `json:"currentConfirmedCount"`
	SuspectedCount        int64  `json:"suspectedCount"`
	CuredCount            int64  `json:"curedCount"`
	DeadCount             int64  `json:"deadCount"`
	UpdateTime            int64  `json:"updateTime"`
	Cities                []City `json:"cities"`
}

type City struct {
	CityName              string `json:"cityName"`
	CityEnglishName       string `json:"cityEnglishName"`
	ConfirmedCount        int64  `json:"confirmedCount"`
	CurrentConfirmedCount int64  `json:"currentConfirmedCount"`
	SuspectedCount        int64  `json:"suspectedCount"`
	CuredCount            int64  `json:"curedCount"`
	DeadCount             int64  `json:"deadCount"`
}

// Named reports whether the record carries an english country name
func (r RegionRecord) Named() bool {
	return strings.TrimSpace(r.CountryEnglishName) != ""
}

// HasBreakdown reports whether the record is a province of the domestic
// region rather than a flat country entry
func (r RegionRecord) HasBreakdown() bool {
	return r.Cities != nil
}
