package main

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v2"

	"github.com/bitmark-inc/covid-dashboard/schema"
	"github.com/bitmark-inc/covid-dashboard/store"
)

func TestDumpJobBeforeData(t *testing.T) {
	j := dumpJob{reader: store.NewMemoryStore()}
	s := j.snapshot()

	assert.False(t, s.Loaded)
	assert.Nil(t, s.Totals)
	assert.Empty(t, s.Table)
	assert.Equal(t, 0, s.History)
}

func TestDumpJobWritesYAML(t *testing.T) {
	m := store.NewMemoryStore()
	m.SetTotals(schema.Totals{UpdateTime: "2020-03-01 10:00:00", Global: schema.Rollup{Confirmed: 12}})
	m.SetTable([]schema.TableRow{{Name: "Italy", ConfirmedCount: 10}})
	m.SetHistory([]schema.RegionRecord{{CountryEnglishName: "Italy"}, {CountryEnglishName: "France"}})
	m.SetLoaded(true)

	dir, err := ioutil.TempDir("", "dump")
	assert.NoError(t, err)
	output := filepath.Join(dir, "snapshot.yaml")

	newDumpJob(m, output).Run()

	data, err := ioutil.ReadFile(output)
	assert.NoError(t, err)

	var raw map[string]interface{}
	assert.NoError(t, yaml.Unmarshal(data, &raw))
	assert.Equal(t, true, raw["loaded"])
	assert.Equal(t, 2, raw["history_records"])
	assert.Len(t, raw["table"], 1)
}
