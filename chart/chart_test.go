package chart

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/covid-dashboard/schema"
)

func TestTier(t *testing.T) {
	cases := map[float64]int{
		100000: 0,
		1000:   0,
		999:    1,
		500:    1,
		499:    2,
		200:    2,
		199:    3,
		50:     3,
		49:     4,
		1:      4,
		0:      4,
		-1:     -1,
		999.5:  1,
		499.2:  2,
		199.9:  3,
		49.7:   4,
		0.5:    4,
		1000.1: 0,
	}

	for value, expected := range cases {
		assert.Equal(t, expected, Tier(value), "wrong tier for %v", value)
	}
}

func TestSevere(t *testing.T) {
	entries := []schema.MapEntry{
		{Name: "Italy", Value: 1052.3},
		{Name: "Spain", Value: 999.5},
		{Name: "Iceland", Value: 1000},
		{Name: "Fiji", Value: 1},
	}
	assert.Equal(t, 2, Severe(entries))
	assert.Equal(t, 0, Severe(nil))
}

func TestScale(t *testing.T) {
	s := Scale("Outbreak", "Cases per 1M people")
	assert.Equal(t, "piecewise", s.Type)
	assert.Equal(t, []string{"#ffc0b1", "#ff8c71", "#ef1717", "#9c0505"}, s.InRange.Color)
	assert.Equal(t, []string{"Outbreak", "Cases per 1M people"}, s.Text)

	b, err := json.Marshal(s.Pieces)
	assert.NoError(t, err)
	assert.JSONEq(t, `[{"min":1000},{"min":500,"max":999},{"min":200,"max":499},{"min":50,"max":199},{"min":0,"max":49}]`, string(b))
}

func TestTooltip(t *testing.T) {
	f := NewFormatter("en")
	e := &schema.MapEntry{
		Name:           "United States",
		Value:          3728,
		ActiveCount:    1000,
		ConfirmedCount: 1234567,
		CuredCount:     20000,
		DeadCount:      2500,
		Lethality:      "0.20%",
	}

	assert.Equal(t,
		"<b>United States</b><br />Per 1M ppl: 3,728<br />Confirmed: 1,234,567<br />Active: 1,000<br />Cured: 20,000<br />Death: 2,500<br />Lethality: 0.20%",
		f.Tooltip("United States", e))
}

func TestTooltipNoCase(t *testing.T) {
	f := NewFormatter("en")
	assert.Equal(t, "<b>Greenland</b><br />Confirmed: No Case", f.Tooltip("Greenland", nil))
	assert.Equal(t, "<b>{b}</b><br />Confirmed: No Case", f.NoCaseTemplate())
	assert.Equal(t, "<b>Côte d&#39;Ivoire</b><br />Confirmed: No Case", f.NoCase("Côte d'Ivoire"))
}

func TestTooltipLocalized(t *testing.T) {
	f := NewFormatter("zh-CN")
	assert.Contains(t, f.Tooltip("Japan", nil), "无病例")
	assert.Equal(t, "1,234", f.Count(1234))
}

func TestRate(t *testing.T) {
	f := NewFormatter("en")
	assert.Equal(t, "1", f.Rate(1))
	assert.Equal(t, "12,345", f.Rate(12345))
	assert.Equal(t, "0.5", f.Rate(0.5))
}

func TestCountriesOption(t *testing.T) {
	f := NewFormatter("en")
	entries := []schema.MapEntry{
		{Name: "Italy", Value: 1052, ConfirmedCount: 63927, DeadCount: 6077, Lethality: "9.51%"},
		{Name: "Fiji", Value: 1, ConfirmedCount: 2, Lethality: "0%"},
	}

	o := CountriesOption(entries, f)
	assert.Equal(t, "Cases by country (clickable) Worldwide", o.Title.Text)
	assert.Equal(t, "Data from https://www.worldometers.info/coronavirus/", o.Title.Subtext)
	assert.Equal(t, "<b>{b}</b><br />Confirmed: No Case", o.Tooltip.Formatter)
	assert.Len(t, o.Series, 1)

	s := o.Series[0]
	assert.Equal(t, "map", s.Type)
	assert.Equal(t, "world", s.Map)
	assert.False(t, s.Silent, "regions should be clickable")
	assert.Equal(t, "#53adf3", s.Emphasis.ItemStyle.AreaColor)
	assert.Len(t, s.Data, 2)
	assert.Equal(t, "Italy", s.Data[0].Name)
	assert.Equal(t, float64(1052), s.Data[0].Value)
	assert.Contains(t, s.Data[0].Tooltip.Formatter, "Death: 6,077")
	assert.Contains(t, s.Data[1].Tooltip.Formatter, "Lethality: 0%")
}

func TestGlobalOption(t *testing.T) {
	f := NewFormatter("en")
	o := GlobalOption([]schema.MapPoint{{Name: "China", Value: 81000}}, f)

	assert.Equal(t, []string{"Outbreak", "Confirmed cases"}, o.VisualMap.Text)
	assert.Equal(t, "<b>China</b><br />Confirmed: 81,000", o.Series[0].Data[0].Tooltip.Formatter)

	b, err := json.Marshal(o)
	assert.NoError(t, err)

	var raw map[string]interface{}
	assert.NoError(t, json.Unmarshal(b, &raw))
	series := raw["series"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, "world", series["map"])
	assert.Equal(t, false, series["silent"])
}

func TestLoadingOption(t *testing.T) {
	assert.Equal(t, "Data Loading ...", LoadingOption(NewFormatter("en")).Text)
}

func TestMissingRegions(t *testing.T) {
	c := &schema.FeatureCollection{Features: []schema.Feature{
		{Properties: map[string]interface{}{"name": "China"}},
		{Properties: map[string]interface{}{"name": "United States"}},
	}}

	assert.Equal(t, []string{"Diamond Princess Cruise"}, MissingRegions([]string{"China", "Diamond Princess Cruise", "United States"}, c))
	assert.Equal(t, []string{"China"}, MissingRegions([]string{"China"}, nil))
}
