package dashboard

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	log "github.com/sirupsen/logrus"
	"github.com/uber-go/tally"

	"github.com/bitmark-inc/covid-dashboard/chart"
	"github.com/bitmark-inc/covid-dashboard/consts"
	"github.com/bitmark-inc/covid-dashboard/external/ncov"
	"github.com/bitmark-inc/covid-dashboard/external/worldometer"
	"github.com/bitmark-inc/covid-dashboard/schema"
	"github.com/bitmark-inc/covid-dashboard/share/geojson"
	"github.com/bitmark-inc/covid-dashboard/store"
	"github.com/bitmark-inc/covid-dashboard/utils"
	"github.com/bitmark-inc/covid-dashboard/view"
)

const (
	logPrefix       = "dashboard"
	defaultGeometry = "./assets/world.json"
)

var (
	ErrMounted  = fmt.Errorf("dashboard already mounted")
	ErrTornDown = fmt.Errorf("dashboard torn down")
)

// Config of one dashboard
type Config struct {
	// Location the update time is shown in, local time when nil
	Location   *time.Location
	Normalizer utils.Normalizer
	Geometry   geojson.Loader

	// Timeout of a single fetch, no timeout when zero
	Timeout time.Duration

	// Interval between fetch cycles after mount, no polling when zero
	Interval time.Duration

	// History enables fetching every snapshot of the area api
	History bool
}

// Dashboard fetches both data sources, builds the view models and writes
// them into the state slots of a sink. Results arriving after Teardown are
// dropped.
type Dashboard struct {
	cfg      Config
	area     ncov.Area
	snapshot worldometer.Snapshot
	sink     store.Sink
	metrics  metrics
	clock    clockwork.Clock

	mu       sync.Mutex
	ctx      context.Context
	cancel   context.CancelFunc
	registry *geojson.Registry

	applyLock sync.RWMutex
	tornDown  int32
	wg        sync.WaitGroup
}

func New(cfg Config, area ncov.Area, snapshot worldometer.Snapshot, sink store.Sink, scope tally.Scope) *Dashboard {
	if cfg.Geometry == nil {
		cfg.Geometry = geojson.FileLoader(defaultGeometry)
	}

	return &Dashboard{
		cfg:      cfg,
		area:     area,
		snapshot: snapshot,
		sink:     sink,
		metrics:  newMetrics(scope),
		clock:    clockwork.NewRealClock(),
	}
}

// SetClock replaces the clock driving the poll loop
func (d *Dashboard) SetClock(c clockwork.Clock) {
	d.clock = c
}

// Mount shows the loading state and starts the first fetch cycle. The world
// geometry is registered through the registry carried by ctx; the country
// snapshot is fetched once registration has settled.
func (d *Dashboard) Mount(ctx context.Context) error {
	if d.isTornDown() {
		return ErrTornDown
	}

	d.mu.Lock()
	if d.ctx != nil {
		d.mu.Unlock()
		return ErrMounted
	}

	registry, ok := geojson.FromContext(ctx)
	if !ok {
		log.WithField("prefix", logPrefix).Warn("no map registry in context, using a private one")
		registry = geojson.NewRegistry()
	}

	d.ctx, d.cancel = context.WithCancel(ctx)
	d.registry = registry
	mountCtx := d.ctx
	d.mu.Unlock()

	if !d.apply(mountCtx, sourceGeometry, func() { d.sink.SetLoaded(false) }) {
		return nil
	}

	d.spawn(func() { d.refreshArea(mountCtx) })
	d.spawn(func() { d.loadMap(mountCtx, registry) })

	if d.cfg.History {
		d.spawn(func() { d.refreshHistory(mountCtx) })
	}

	if d.cfg.Interval > 0 {
		d.spawn(func() { d.poll(mountCtx) })
	}

	return nil
}

// Teardown cancels in-flight fetches and waits for them to return. No state
// is written once Teardown has started.
func (d *Dashboard) Teardown() {
	d.applyLock.Lock()
	atomic.StoreInt32(&d.tornDown, 1)
	d.applyLock.Unlock()

	d.mu.Lock()
	cancel := d.cancel
	d.mu.Unlock()

	if cancel != nil {
		cancel()
	}

	d.wg.Wait()
	log.WithField("prefix", logPrefix).Info("dashboard torn down")
}

// Wait blocks until all fetches started by Mount have returned
func (d *Dashboard) Wait() {
	d.wg.Wait()
}

// Refresh runs one fetch cycle of every source. The country snapshot is
// skipped until the world geometry is registered.
func (d *Dashboard) Refresh(ctx context.Context) {
	d.refreshArea(ctx)

	d.mu.Lock()
	registry := d.registry
	d.mu.Unlock()

	if registry != nil && registry.Registered(consts.WorldMap) && d.refreshCountries(ctx, registry) {
		d.apply(ctx, sourceGeometry, func() {
			d.sink.SetLoaded(true)
		})
	}

	if d.cfg.History {
		d.refreshHistory(ctx)
	}
}

func (d *Dashboard) poll(ctx context.Context) {
	ticker := d.clock.NewTicker(d.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			if !d.alive(ctx) {
				return
			}
			d.Refresh(ctx)
		}
	}
}

func (d *Dashboard) spawn(f func()) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		f()
	}()
}

func (d *Dashboard) isTornDown() bool {
	return atomic.LoadInt32(&d.tornDown) == 1
}

// alive reports whether results fetched under ctx may still be applied
func (d *Dashboard) alive(ctx context.Context) bool {
	return !d.isTornDown() && ctx.Err() == nil
}

// apply runs f unless the dashboard was torn down or ctx cancelled
func (d *Dashboard) apply(ctx context.Context, source string, f func()) bool {
	d.applyLock.RLock()
	defer d.applyLock.RUnlock()

	if !d.alive(ctx) {
		d.discard(source)
		return false
	}

	f()
	return true
}

func (d *Dashboard) discard(source string) {
	d.metrics.cancelled(source)
	log.WithFields(log.Fields{"prefix": logPrefix, "source": source}).Debug("result discarded")
}

func (d *Dashboard) fail(source string, err error) {
	d.metrics.failure(source)
	log.WithFields(log.Fields{"prefix": logPrefix, "source": source, "error": err}).Error("fetch data")
	sentry.CaptureException(err)
}

func (d *Dashboard) fetch(ctx context.Context, source string, call func(context.Context) error) error {
	if d.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.cfg.Timeout)
		defer cancel()
	}

	sw := d.metrics.latency(source).Start()
	defer sw.Stop()

	return call(ctx)
}

func (d *Dashboard) refreshArea(ctx context.Context) {
	cycle := uuid.New().String()

	var records []schema.RegionRecord
	err := d.fetch(ctx, sourceArea, func(ctx context.Context) (err error) {
		records, err = d.area.Latest(ctx)
		return
	})
	if !d.alive(ctx) {
		d.discard(sourceArea)
		return
	}
	if nil != err {
		d.fail(sourceArea, err)
		return
	}

	records = view.Canonicalize(records, d.cfg.Normalizer)
	domestic, foreign := view.Split(records)

	totals := view.BuildTotals(records, d.cfg.Location)
	points := view.BuildGlobalMap(domestic, foreign)
	rows := view.BuildTable(domestic, foreign)

	applied := d.apply(ctx, sourceArea, func() {
		d.sink.SetTotals(totals)
		d.sink.SetGlobalMap(points)
		d.sink.SetTable(rows)
	})
	if !applied {
		return
	}

	d.metrics.success(sourceArea)
	log.WithFields(log.Fields{
		"prefix":   logPrefix,
		"cycle":    cycle,
		"source":   sourceArea,
		"domestic": len(domestic),
		"foreign":  len(foreign),
		"updated":  totals.UpdateTime,
	}).Info("area data applied")
}

func (d *Dashboard) refreshCountries(ctx context.Context, registry *geojson.Registry) bool {
	cycle := uuid.New().String()

	var countries []schema.CountryCases
	err := d.fetch(ctx, sourceCountries, func(ctx context.Context) (err error) {
		countries, err = d.snapshot.Countries(ctx)
		return
	})
	if !d.alive(ctx) {
		d.discard(sourceCountries)
		return false
	}
	if nil != err {
		d.fail(sourceCountries, err)
		return false
	}

	entries := view.BuildCountryMap(countries, d.cfg.Normalizer)

	if c, ok := registry.Lookup(consts.WorldMap); ok {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name)
		}
		if missing := chart.MissingRegions(names, c); len(missing) > 0 {
			log.WithFields(log.Fields{"prefix": logPrefix, "cycle": cycle, "regions": missing}).Debug("regions without geometry")
		}
	}

	applied := d.apply(ctx, sourceCountries, func() {
		d.sink.SetCountryMap(entries)
	})
	if !applied {
		return false
	}

	d.metrics.success(sourceCountries)
	log.WithFields(log.Fields{
		"prefix":    logPrefix,
		"cycle":     cycle,
		"source":    sourceCountries,
		"countries": len(entries),
		"severe":    chart.Severe(entries),
	}).Info("country data applied")
	return true
}

func (d *Dashboard) refreshHistory(ctx context.Context) {
	var records []schema.RegionRecord
	err := d.fetch(ctx, sourceHistory, func(ctx context.Context) (err error) {
		records, err = d.area.History(ctx)
		return
	})
	if !d.alive(ctx) {
		d.discard(sourceHistory)
		return
	}
	if nil != err {
		d.fail(sourceHistory, err)
		return
	}

	records = view.Canonicalize(records, d.cfg.Normalizer)
	if d.apply(ctx, sourceHistory, func() { d.sink.SetHistory(records) }) {
		d.metrics.success(sourceHistory)
		log.WithFields(log.Fields{"prefix": logPrefix, "source": sourceHistory, "records": len(records)}).Info("history applied")
	}
}

func (d *Dashboard) loadMap(ctx context.Context, registry *geojson.Registry) {
	result := <-registry.LoadAsync(ctx, consts.WorldMap, d.cfg.Geometry)
	if !d.alive(ctx) {
		d.discard(sourceGeometry)
		return
	}
	if nil != result.Err {
		d.fail(sourceGeometry, result.Err)
		return
	}

	d.metrics.success(sourceGeometry)
	log.WithFields(log.Fields{
		"prefix":     logPrefix,
		"map":        result.Name,
		"features":   len(result.Collection.Features),
		"registered": result.Registered,
	}).Info("world geometry ready")

	if !d.refreshCountries(ctx, registry) {
		return
	}

	d.apply(ctx, sourceGeometry, func() {
		d.sink.SetLoaded(true)
	})
}
