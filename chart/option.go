package chart

import (
	"github.com/bitmark-inc/covid-dashboard/consts"
	"github.com/bitmark-inc/covid-dashboard/schema"
)

// Option is the ECharts configuration of one world map chart
type Option struct {
	Title     Title     `json:"title"`
	VisualMap VisualMap `json:"visualMap"`
	Tooltip   Tooltip   `json:"tooltip"`
	Series    []Series  `json:"series"`
}

type TextStyle struct {
	FontSize   int    `json:"fontSize,omitempty"`
	FontWeight string `json:"fontWeight,omitempty"`
}

type Title struct {
	X         string    `json:"x"`
	Text      string    `json:"text"`
	Subtext   string    `json:"subtext"`
	TextStyle TextStyle `json:"textStyle"`
}

type Tooltip struct {
	Formatter string `json:"formatter,omitempty"`
}

type Label struct {
	Show     bool   `json:"show"`
	FontSize int    `json:"fontSize,omitempty"`
	Color    string `json:"color,omitempty"`
}

type ItemStyle struct {
	BorderColor   string  `json:"borderColor,omitempty"`
	BorderWidth   float64 `json:"borderWidth"`
	AreaColor     string  `json:"areaColor,omitempty"`
	ShadowBlur    float64 `json:"shadowBlur,omitempty"`
	ShadowOffsetX float64 `json:"shadowOffsetX"`
	ShadowOffsetY float64 `json:"shadowOffsetY"`
	ShadowColor   string  `json:"shadowColor,omitempty"`
}

type Emphasis struct {
	ItemStyle ItemStyle `json:"itemStyle"`
}

// DataItem is one shaded region with its own tooltip
type DataItem struct {
	Name    string   `json:"name"`
	Value   float64  `json:"value"`
	Tooltip *Tooltip `json:"tooltip,omitempty"`
}

type Series struct {
	Type             string     `json:"type"`
	Map              string     `json:"map"`
	Left             string     `json:"left"`
	Right            string     `json:"right"`
	Top              string     `json:"top"`
	Bottom           string     `json:"bottom"`
	Silent           bool       `json:"silent"`
	Zoom             float64    `json:"zoom"`
	Roam             bool       `json:"roam"`
	ShowLegendSymbol bool       `json:"showLegendSymbol"`
	Label            Label      `json:"label"`
	ItemStyle        ItemStyle  `json:"itemStyle"`
	Emphasis         Emphasis   `json:"emphasis"`
	Data             []DataItem `json:"data"`
}

// Loading is shown until the geometry and the first data have arrived
type Loading struct {
	Text string `json:"text"`
}

const (
	defaultAreaColor  = "#B2E5BC"
	emphasisAreaColor = "#53adf3"
)

// CountriesOption returns the cases-per-million world map
func CountriesOption(entries []schema.MapEntry, f Formatter) Option {
	data := make([]DataItem, 0, len(entries))
	for i := range entries {
		e := entries[i]
		data = append(data, DataItem{
			Name:    e.Name,
			Value:   e.Value,
			Tooltip: &Tooltip{Formatter: f.Tooltip(e.Name, &e)},
		})
	}

	return newOption(
		f.label("CountriesTitle", "Cases by country (clickable) Worldwide"),
		f.label("CountriesSubtext", "Data from https://www.worldometers.info/coronavirus/"),
		Scale(f.label("LegendHigh", "Outbreak"), f.label("LegendLow", "Cases per 1M people")),
		f,
		data,
	)
}

// GlobalOption returns the confirmed cases world map including the
// domestic region
func GlobalOption(points []schema.MapPoint, f Formatter) Option {
	data := make([]DataItem, 0, len(points))
	for _, p := range points {
		data = append(data, DataItem{
			Name:    p.Name,
			Value:   float64(p.Value),
			Tooltip: &Tooltip{Formatter: f.PointTooltip(p)},
		})
	}

	return newOption(
		f.label("GlobalTitle", "Confirmed cases Worldwide"),
		f.label("GlobalSubtext", "Data from https://lab.isaaclin.cn/nCoV/"),
		Scale(f.label("LegendHigh", "Outbreak"), f.label("LegendConfirmed", "Confirmed cases")),
		f,
		data,
	)
}

// LoadingOption returns the loading indicator text
func LoadingOption(f Formatter) Loading {
	return Loading{Text: f.label("Loading", "Data Loading ...")}
}

func newOption(title, subtext string, scale VisualMap, f Formatter, data []DataItem) Option {
	return Option{
		Title: Title{
			X:         "center",
			Text:      title,
			Subtext:   subtext,
			TextStyle: TextStyle{FontSize: 18},
		},
		VisualMap: scale,
		Tooltip:   Tooltip{Formatter: f.NoCaseTemplate()},
		Series: []Series{
			{
				Type:   "map",
				Map:    consts.WorldMap,
				Left:   "3%",
				Right:  "5%",
				Top:    "18%",
				Bottom: "7%",
				Silent: false,
				Zoom:   1.0,
				Label: Label{
					Show:     false,
					FontSize: 16,
					Color:    "rgba(0,0,0,0.7)",
				},
				ItemStyle: ItemStyle{
					BorderColor: "rgba(0, 0, 0, 0.2)",
					BorderWidth: 0.5,
					AreaColor:   defaultAreaColor,
				},
				Emphasis: Emphasis{
					ItemStyle: ItemStyle{
						AreaColor:   emphasisAreaColor,
						ShadowBlur:  20,
						ShadowColor: "rgba(0, 0, 0, 0.5)",
					},
				},
				Data: data,
			},
		},
	}
}

// MissingRegions returns the names that have no feature in the geometry
func MissingRegions(names []string, c *schema.FeatureCollection) []string {
	missing := make([]string, 0)
	if c == nil {
		return append(missing, names...)
	}

	known := make(map[string]struct{}, len(c.Features))
	for _, n := range c.Names() {
		known[n] = struct{}{}
	}
	for _, n := range names {
		if _, ok := known[n]; !ok {
			missing = append(missing, n)
		}
	}
	return missing
}
