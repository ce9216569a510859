package store

//go:generate mockgen -destination=mocks/mock_store.go -package=mocks github.com/bitmark-inc/covid-dashboard/store Dashboard

import (
	"sync"
	"time"

	"github.com/bitmark-inc/covid-dashboard/schema"
)

// Dashboard - in-process view state of the dashboard
type Dashboard interface {
	Sink
	Reader
}

// Sink - receives the view models of a fetch cycle. Each slot belongs to
// one data source and is replaced wholesale.
type Sink interface {
	SetLoaded(bool)
	SetTotals(schema.Totals)
	SetGlobalMap([]schema.MapPoint)
	SetTable([]schema.TableRow)
	SetCountryMap([]schema.MapEntry)
	SetHistory([]schema.RegionRecord)
}

// Reader - latest view models, ok is false until a slot is first set
type Reader interface {
	Loaded() bool
	Totals() (schema.Totals, bool)
	GlobalMap() ([]schema.MapPoint, bool)
	Table() ([]schema.TableRow, bool)
	CountryMap() ([]schema.MapEntry, bool)
	History() ([]schema.RegionRecord, bool)
	UpdatedAt() time.Time
}

type areaSlot struct {
	totals    schema.Totals
	globalMap []schema.MapPoint
	table     []schema.TableRow
	ok        map[string]bool
}

type memoryStore struct {
	sync.RWMutex

	now func() time.Time

	loaded     bool
	area       areaSlot
	countryMap []schema.MapEntry
	countryOK  bool
	history    []schema.RegionRecord
	historyOK  bool
	updatedAt  time.Time
}

// NewMemoryStore - return a dashboard state kept in memory only
func NewMemoryStore() Dashboard {
	return &memoryStore{
		now:  time.Now,
		area: areaSlot{ok: make(map[string]bool)},
	}
}

func (m *memoryStore) touch() {
	m.updatedAt = m.now()
}

func (m *memoryStore) SetLoaded(loaded bool) {
	m.Lock()
	defer m.Unlock()

	m.loaded = loaded
}

func (m *memoryStore) SetTotals(t schema.Totals) {
	m.Lock()
	defer m.Unlock()

	m.area.totals = t
	m.area.ok["totals"] = true
	m.touch()
}

func (m *memoryStore) SetGlobalMap(points []schema.MapPoint) {
	m.Lock()
	defer m.Unlock()

	m.area.globalMap = append([]schema.MapPoint{}, points...)
	m.area.ok["globalMap"] = true
	m.touch()
}

func (m *memoryStore) SetTable(rows []schema.TableRow) {
	m.Lock()
	defer m.Unlock()

	m.area.table = append([]schema.TableRow{}, rows...)
	m.area.ok["table"] = true
	m.touch()
}

func (m *memoryStore) SetCountryMap(entries []schema.MapEntry) {
	m.Lock()
	defer m.Unlock()

	m.countryMap = append([]schema.MapEntry{}, entries...)
	m.countryOK = true
	m.touch()
}

func (m *memoryStore) SetHistory(records []schema.RegionRecord) {
	m.Lock()
	defer m.Unlock()

	m.history = append([]schema.RegionRecord{}, records...)
	m.historyOK = true
	m.touch()
}

func (m *memoryStore) Loaded() bool {
	m.RLock()
	defer m.RUnlock()

	return m.loaded
}

func (m *memoryStore) Totals() (schema.Totals, bool) {
	m.RLock()
	defer m.RUnlock()

	return m.area.totals, m.area.ok["totals"]
}

func (m *memoryStore) GlobalMap() ([]schema.MapPoint, bool) {
	m.RLock()
	defer m.RUnlock()

	return m.area.globalMap, m.area.ok["globalMap"]
}

func (m *memoryStore) Table() ([]schema.TableRow, bool) {
	m.RLock()
	defer m.RUnlock()

	return m.area.table, m.area.ok["table"]
}

func (m *memoryStore) CountryMap() ([]schema.MapEntry, bool) {
	m.RLock()
	defer m.RUnlock()

	return m.countryMap, m.countryOK
}

func (m *memoryStore) History() ([]schema.RegionRecord, bool) {
	m.RLock()
	defer m.RUnlock()

	return m.history, m.historyOK
}

func (m *memoryStore) UpdatedAt() time.Time {
	m.RLock()
	defer m.RUnlock()

	return m.updatedAt
}
