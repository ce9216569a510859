package schema

// CountriesResponse is the per-country snapshot file
type CountriesResponse struct {
	Countries []CountryCases `json:"countries"`
}

// CountryCases holds the formatted numbers of one country, e.g. " 1,234 "
type CountryCases struct {
	Name      string `json:"name"`
	Total     string `json:"total"`
	Active    string `json:"active"`
	Increased string `json:"increased"`
	Recovered string `json:"recovered"`
	Dead      string `json:"dead"`
	PerMppl   string `json:"perMppl"`
}
