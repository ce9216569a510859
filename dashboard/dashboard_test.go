package dashboard

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/suite"
	"github.com/uber-go/tally"

	"github.com/bitmark-inc/covid-dashboard/external/mocks"
	"github.com/bitmark-inc/covid-dashboard/schema"
	"github.com/bitmark-inc/covid-dashboard/share/geojson"
	"github.com/bitmark-inc/covid-dashboard/store"
	storemocks "github.com/bitmark-inc/covid-dashboard/store/mocks"
	"github.com/bitmark-inc/covid-dashboard/utils"
)

const waitTimeout = 5 * time.Second

func areaRecords() []schema.RegionRecord {
	return []schema.RegionRecord{
		{CountryName: "中国", CountryEnglishName: "China", ProvinceName: "湖北省", Cities: []schema.City{},
			ConfirmedCount: 100, CuredCount: 50, DeadCount: 3, UpdateTime: 1583028000000},
		{CountryName: "美国", CountryEnglishName: "United States of America", ProvinceName: "美国",
			ConfirmedCount: 20, CuredCount: 5, DeadCount: 1, UpdateTime: 1583028000000},
		{CountryName: "其他", ProvinceName: "其他", ConfirmedCount: 7, UpdateTime: 1583028000000},
	}
}

func countryCases() []schema.CountryCases {
	return []schema.CountryCases{
		{Name: "USA", Total: "1,000", Active: "900", Recovered: "80", Dead: "20", PerMppl: "3"},
		{Name: "Fiji", Total: "2", Active: "2"},
	}
}

func world() *schema.FeatureCollection {
	return &schema.FeatureCollection{
		Type: "FeatureCollection",
		Features: []schema.Feature{
			{Type: "Feature", Properties: map[string]interface{}{"name": "United States"}},
			{Type: "Feature", Properties: map[string]interface{}{"name": "China"}},
		},
	}
}

type DashboardTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	area     *mocks.MockArea
	snapshot *mocks.MockSnapshot
	scope    tally.TestScope
	registry *geojson.Registry
	ctx      context.Context
}

func (s *DashboardTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.area = mocks.NewMockArea(s.ctrl)
	s.snapshot = mocks.NewMockSnapshot(s.ctrl)
	s.scope = tally.NewTestScope("", nil)
	s.registry = geojson.NewRegistry()
	s.ctx = geojson.WithRegistry(context.Background(), s.registry)
}

func (s *DashboardTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *DashboardTestSuite) config(loader geojson.Loader) Config {
	return Config{
		Location:   time.UTC,
		Normalizer: utils.DefaultNormalizer,
		Geometry:   loader,
	}
}

func (s *DashboardTestSuite) counter(name, source string) int64 {
	for _, c := range s.scope.Snapshot().Counters() {
		if strings.HasSuffix(c.Name(), name) && c.Tags()["source"] == source {
			return c.Value()
		}
	}
	return 0
}

func (s *DashboardTestSuite) wait(ch <-chan struct{}) {
	select {
	case <-ch:
	case <-time.After(waitTimeout):
		s.FailNow("timeout waiting for fetch")
	}
}

func staticLoader(calls *int32) geojson.Loader {
	return func(_ context.Context) (*schema.FeatureCollection, error) {
		atomic.AddInt32(calls, 1)
		return world(), nil
	}
}

func (s *DashboardTestSuite) TestMountAppliesEverySlot() {
	s.area.EXPECT().Latest(gomock.Any()).Return(areaRecords(), nil).Times(1)
	s.snapshot.EXPECT().Countries(gomock.Any()).DoAndReturn(func(_ context.Context) ([]schema.CountryCases, error) {
		s.True(s.registry.Registered("world"), "countries fetched before the map was registered")
		return countryCases(), nil
	}).Times(1)

	var loads int32
	sink := store.NewMemoryStore()
	d := New(s.config(staticLoader(&loads)), s.area, s.snapshot, sink, s.scope)

	s.NoError(d.Mount(s.ctx))
	d.Wait()

	s.True(sink.Loaded())
	s.Equal(int32(1), atomic.LoadInt32(&loads))

	totals, ok := sink.Totals()
	s.True(ok)
	s.Equal("2020-03-01 02:00:00", totals.UpdateTime)
	s.Equal(int64(100), totals.Domestic.Confirmed)
	s.Equal(int64(20), totals.Foreign.Confirmed)
	s.Equal(int64(120), totals.Global.Confirmed)
	s.Equal("2%", totals.Domestic.Fatality)

	points, ok := sink.GlobalMap()
	s.True(ok)
	s.Equal([]schema.MapPoint{{Name: "United States", Value: 20}, {Name: "China", Value: 100}}, points)

	rows, ok := sink.Table()
	s.True(ok)
	s.Len(rows, 2)
	s.Equal("China", rows[0].Name)

	entries, ok := sink.CountryMap()
	s.True(ok)
	s.Len(entries, 2)
	s.Equal("United States", entries[0].Name)
	s.Equal("2%", entries[0].Lethality)
	s.Equal(float64(1), entries[1].Value)

	_, ok = sink.History()
	s.False(ok, "history is disabled")

	s.Equal(int64(1), s.counter("fetch_success", sourceArea))
	s.Equal(int64(1), s.counter("fetch_success", sourceCountries))
	s.Equal(int64(1), s.counter("fetch_success", sourceGeometry))
}

func (s *DashboardTestSuite) TestMountWithHistory() {
	s.area.EXPECT().Latest(gomock.Any()).Return(areaRecords(), nil).Times(1)
	s.area.EXPECT().History(gomock.Any()).Return(areaRecords(), nil).Times(1)
	s.snapshot.EXPECT().Countries(gomock.Any()).Return(countryCases(), nil).Times(1)

	var loads int32
	cfg := s.config(staticLoader(&loads))
	cfg.History = true

	sink := store.NewMemoryStore()
	d := New(cfg, s.area, s.snapshot, sink, s.scope)
	s.NoError(d.Mount(s.ctx))
	d.Wait()

	history, ok := sink.History()
	s.True(ok)
	s.Len(history, 3)
	s.Equal("United States", history[1].CountryEnglishName)
}

func (s *DashboardTestSuite) TestTeardownDiscardsInFlightResults() {
	sink := storemocks.NewMockDashboard(s.ctrl)
	sink.EXPECT().SetLoaded(false).Times(1)

	areaStarted := make(chan struct{})
	s.area.EXPECT().Latest(gomock.Any()).DoAndReturn(func(ctx context.Context) ([]schema.RegionRecord, error) {
		close(areaStarted)
		<-ctx.Done()
		return areaRecords(), nil
	}).Times(1)

	mapStarted := make(chan struct{})
	loader := func(ctx context.Context) (*schema.FeatureCollection, error) {
		close(mapStarted)
		<-ctx.Done()
		return world(), nil
	}

	d := New(s.config(loader), s.area, s.snapshot, sink, s.scope)
	s.NoError(d.Mount(s.ctx))

	s.wait(areaStarted)
	s.wait(mapStarted)
	d.Teardown()

	s.False(s.registry.Registered("world"))
	s.Equal(int64(1), s.counter("fetch_cancelled", sourceArea))
	s.Equal(int64(1), s.counter("fetch_cancelled", sourceGeometry))
	s.Equal(int64(0), s.counter("fetch_success", sourceArea))
}

func (s *DashboardTestSuite) TestAreaFailureKeepsPreviousState() {
	s.area.EXPECT().Latest(gomock.Any()).Return(nil, fmt.Errorf("connection refused")).Times(1)
	s.snapshot.EXPECT().Countries(gomock.Any()).Return(countryCases(), nil).Times(1)

	var loads int32
	sink := store.NewMemoryStore()
	d := New(s.config(staticLoader(&loads)), s.area, s.snapshot, sink, s.scope)
	s.NoError(d.Mount(s.ctx))
	d.Wait()

	_, ok := sink.Totals()
	s.False(ok)
	_, ok = sink.Table()
	s.False(ok)

	_, ok = sink.CountryMap()
	s.True(ok, "country map should not depend on the area api")
	s.True(sink.Loaded())
	s.Equal(int64(1), s.counter("fetch_failure", sourceArea))
}

func (s *DashboardTestSuite) TestGeometryFailureSkipsCountries() {
	s.area.EXPECT().Latest(gomock.Any()).Return(areaRecords(), nil).Times(1)

	loader := func(_ context.Context) (*schema.FeatureCollection, error) {
		return nil, fmt.Errorf("asset not found")
	}

	sink := store.NewMemoryStore()
	d := New(s.config(loader), s.area, s.snapshot, sink, s.scope)
	s.NoError(d.Mount(s.ctx))
	d.Wait()

	s.False(sink.Loaded())
	_, ok := sink.Totals()
	s.True(ok, "area data should still be applied")
	s.Equal(int64(1), s.counter("fetch_failure", sourceGeometry))
}

func (s *DashboardTestSuite) TestRegisteredMapIsReused() {
	s.True(s.registry.Register("world", world()))

	s.area.EXPECT().Latest(gomock.Any()).Return(areaRecords(), nil).Times(1)
	s.snapshot.EXPECT().Countries(gomock.Any()).Return(countryCases(), nil).Times(1)

	var loads int32
	sink := store.NewMemoryStore()
	d := New(s.config(staticLoader(&loads)), s.area, s.snapshot, sink, s.scope)
	s.NoError(d.Mount(s.ctx))
	d.Wait()

	s.Equal(int32(0), atomic.LoadInt32(&loads))
	s.True(sink.Loaded())
}

func (s *DashboardTestSuite) TestMountTwice() {
	s.area.EXPECT().Latest(gomock.Any()).Return(areaRecords(), nil).AnyTimes()
	s.snapshot.EXPECT().Countries(gomock.Any()).Return(countryCases(), nil).AnyTimes()

	var loads int32
	d := New(s.config(staticLoader(&loads)), s.area, s.snapshot, store.NewMemoryStore(), s.scope)
	s.NoError(d.Mount(s.ctx))
	s.Equal(ErrMounted, d.Mount(s.ctx))

	d.Teardown()
	s.Equal(ErrTornDown, d.Mount(s.ctx))
}

func (s *DashboardTestSuite) TestPollRefreshesOnTick() {
	areaCalls := make(chan struct{}, 4)
	countryCalls := make(chan struct{}, 4)

	s.area.EXPECT().Latest(gomock.Any()).DoAndReturn(func(_ context.Context) ([]schema.RegionRecord, error) {
		areaCalls <- struct{}{}
		return areaRecords(), nil
	}).Times(2)
	s.snapshot.EXPECT().Countries(gomock.Any()).DoAndReturn(func(_ context.Context) ([]schema.CountryCases, error) {
		countryCalls <- struct{}{}
		return countryCases(), nil
	}).Times(2)

	var loads int32
	cfg := s.config(staticLoader(&loads))
	cfg.Interval = time.Minute

	fc := clockwork.NewFakeClock()
	d := New(cfg, s.area, s.snapshot, store.NewMemoryStore(), s.scope)
	d.SetClock(fc)
	s.NoError(d.Mount(s.ctx))

	s.wait(areaCalls)
	s.wait(countryCalls)

	fc.BlockUntil(1)
	fc.Advance(time.Minute)

	s.wait(areaCalls)
	s.wait(countryCalls)

	d.Teardown()
	s.Equal(int32(1), atomic.LoadInt32(&loads))
}

func (s *DashboardTestSuite) TestRefreshClearsLoadingAfterCountryFailure() {
	s.area.EXPECT().Latest(gomock.Any()).Return(areaRecords(), nil).Times(2)
	gomock.InOrder(
		s.snapshot.EXPECT().Countries(gomock.Any()).Return(nil, fmt.Errorf("timeout")),
		s.snapshot.EXPECT().Countries(gomock.Any()).Return(countryCases(), nil),
	)

	var loads int32
	sink := store.NewMemoryStore()
	d := New(s.config(staticLoader(&loads)), s.area, s.snapshot, sink, s.scope)
	s.NoError(d.Mount(s.ctx))
	d.Wait()

	s.False(sink.Loaded())
	_, ok := sink.CountryMap()
	s.False(ok)

	d.Refresh(s.ctx)

	s.True(sink.Loaded())
	_, ok = sink.CountryMap()
	s.True(ok)

	d.Teardown()
}

func (s *DashboardTestSuite) TestMountWithCancelledContextWritesNothing() {
	sink := storemocks.NewMockDashboard(s.ctrl)

	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	var loads int32
	d := New(s.config(staticLoader(&loads)), s.area, s.snapshot, sink, s.scope)
	s.NoError(d.Mount(ctx))
	d.Wait()

	s.Equal(int32(0), atomic.LoadInt32(&loads))
	s.Equal(int64(1), s.counter("fetch_cancelled", sourceGeometry))
	d.Teardown()
}

func TestDashboard(t *testing.T) {
	suite.Run(t, new(DashboardTestSuite))
}
