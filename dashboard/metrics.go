package dashboard

import (
	"github.com/uber-go/tally"
)

const (
	sourceArea      = "area"
	sourceCountries = "countries"
	sourceHistory   = "history"
	sourceGeometry  = "geometry"
)

type metrics struct {
	scope tally.Scope
}

func newMetrics(scope tally.Scope) metrics {
	if scope == nil {
		scope = tally.NoopScope
	}
	return metrics{scope: scope.SubScope("dashboard")}
}

func (m metrics) source(source string) tally.Scope {
	return m.scope.Tagged(map[string]string{"source": source})
}

func (m metrics) success(source string) {
	m.source(source).Counter("fetch_success").Inc(1)
}

func (m metrics) failure(source string) {
	m.source(source).Counter("fetch_failure").Inc(1)
}

func (m metrics) cancelled(source string) {
	m.source(source).Counter("fetch_cancelled").Inc(1)
}

func (m metrics) latency(source string) tally.Timer {
	return m.source(source).Timer("fetch_latency")
}
