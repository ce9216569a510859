package chart

import (
	"html"
	"math"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/message"

	"github.com/bitmark-inc/covid-dashboard/schema"
	"github.com/bitmark-inc/covid-dashboard/utils"
)

// Formatter renders labels, counts and tooltips in one language
type Formatter struct {
	localizer *i18n.Localizer
	printer   *message.Printer
}

func NewFormatter(lang string) Formatter {
	return Formatter{
		localizer: utils.NewLocalizer(lang),
		printer:   message.NewPrinter(utils.LanguageTag(lang)),
	}
}

func (f Formatter) label(id, fallback string) string {
	return utils.Localize(f.localizer, id, fallback)
}

// Count formats a count with thousands separators
func (f Formatter) Count(n int64) string {
	return f.printer.Sprintf("%d", n)
}

// Rate formats a per-million rate, whole numbers without decimals
func (f Formatter) Rate(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < math.MaxInt64 {
		return f.Count(int64(v))
	}
	return f.printer.Sprintf("%.1f", v)
}

// Tooltip renders the hover text of a country of the per-million map. A nil
// entry means the region has no data.
func (f Formatter) Tooltip(name string, e *schema.MapEntry) string {
	if e == nil {
		return f.NoCase(name)
	}

	lines := []string{
		"<b>" + html.EscapeString(name) + "</b>",
		f.line("TooltipPerMillion", "Per 1M ppl", f.Rate(e.Value)),
		f.line("TooltipConfirmed", "Confirmed", f.Count(e.ConfirmedCount)),
		f.line("TooltipActive", "Active", f.Count(e.ActiveCount)),
		f.line("TooltipCured", "Cured", f.Count(e.CuredCount)),
		f.line("TooltipDeath", "Death", f.Count(e.DeadCount)),
		f.line("TooltipLethality", "Lethality", e.Lethality),
	}
	return strings.Join(lines, "<br />")
}

// PointTooltip renders the hover text of a region of the confirmed map
func (f Formatter) PointTooltip(p schema.MapPoint) string {
	return "<b>" + html.EscapeString(p.Name) + "</b><br />" +
		f.line("TooltipConfirmed", "Confirmed", f.Count(p.Value))
}

// NoCase renders the hover text of a region without data
func (f Formatter) NoCase(name string) string {
	return "<b>" + html.EscapeString(name) + "</b><br />" +
		f.line("TooltipConfirmed", "Confirmed", f.label("TooltipNoCase", "No Case"))
}

// NoCaseTemplate is NoCase as a chart template, `{b}` being the region name
func (f Formatter) NoCaseTemplate() string {
	return "<b>{b}</b><br />" +
		f.line("TooltipConfirmed", "Confirmed", f.label("TooltipNoCase", "No Case"))
}

func (f Formatter) line(id, fallback, value string) string {
	return f.label(id, fallback) + ": " + value
}
