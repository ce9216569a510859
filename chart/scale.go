package chart

import (
	"github.com/bitmark-inc/covid-dashboard/schema"
)

// Colors of the severity tiers, lightest first
var Colors = []string{"#ffc0b1", "#ff8c71", "#ef1717", "#9c0505"}

// Piece is one inclusive value range of the legend; a nil bound is open
type Piece struct {
	Min *int64 `json:"min,omitempty"`
	Max *int64 `json:"max,omitempty"`
}

type InRange struct {
	Color []string `json:"color"`
}

type VisualMap struct {
	Show       bool      `json:"show"`
	Type       string    `json:"type"`
	Min        int64     `json:"min"`
	Max        int64     `json:"max"`
	Align      string    `json:"align"`
	Top        string    `json:"top"`
	Left       string    `json:"left"`
	InRange    InRange   `json:"inRange"`
	Pieces     []Piece   `json:"pieces"`
	Padding    int       `json:"padding"`
	Orient     string    `json:"orient"`
	ShowLabel  bool      `json:"showLabel"`
	Text       []string  `json:"text"`
	ItemWidth  int       `json:"itemWidth"`
	ItemHeight int       `json:"itemHeight"`
	TextStyle  TextStyle `json:"textStyle"`
}

func bound(v int64) *int64 {
	return &v
}

// Pieces returns the legend ranges, most severe first
func Pieces() []Piece {
	return []Piece{
		{Min: bound(1000)},
		{Min: bound(500), Max: bound(999)},
		{Min: bound(200), Max: bound(499)},
		{Min: bound(50), Max: bound(199)},
		{Min: bound(0), Max: bound(49)},
	}
}

// Tier returns the index in Pieces of the range containing value, or -1
// for negative values. A fractional value between two pieces belongs to the
// lower one.
func Tier(value float64) int {
	for i, p := range Pieces() {
		if p.Min == nil || value >= float64(*p.Min) {
			return i
		}
	}
	return -1
}

// Severe counts the entries in the most severe piece
func Severe(entries []schema.MapEntry) int {
	n := 0
	for _, e := range entries {
		if Tier(e.Value) == 0 {
			n++
		}
	}
	return n
}

// Scale returns the piecewise legend with its high and low end labels
func Scale(high, low string) VisualMap {
	colors := make([]string, len(Colors))
	copy(colors, Colors)

	return VisualMap{
		Show:       true,
		Type:       "piecewise",
		Min:        0,
		Max:        100000,
		Align:      "left",
		Top:        "5%",
		Left:       "center",
		InRange:    InRange{Color: colors},
		Pieces:     Pieces(),
		Padding:    35,
		Orient:     "horizontal",
		ShowLabel:  true,
		Text:       []string{high, low},
		ItemWidth:  10,
		ItemHeight: 10,
		TextStyle:  TextStyle{FontSize: 12, FontWeight: "bold"},
	}
}
