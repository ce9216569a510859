package main

import (
	"io/ioutil"
	"os"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"

	"github.com/bitmark-inc/covid-dashboard/schema"
	"github.com/bitmark-inc/covid-dashboard/store"
)

type snapshot struct {
	Loaded     bool              `yaml:"loaded"`
	Totals     *schema.Totals    `yaml:"totals,omitempty"`
	GlobalMap  []schema.MapPoint `yaml:"global_map,omitempty"`
	Table      []schema.TableRow `yaml:"table,omitempty"`
	CountryMap []schema.MapEntry `yaml:"country_map,omitempty"`
	History    int               `yaml:"history_records"`
}

type dumpJob struct {
	reader store.Reader
	output string
}

func (j dumpJob) snapshot() snapshot {
	s := snapshot{Loaded: j.reader.Loaded()}

	if totals, ok := j.reader.Totals(); ok {
		s.Totals = &totals
	}
	s.GlobalMap, _ = j.reader.GlobalMap()
	s.Table, _ = j.reader.Table()
	s.CountryMap, _ = j.reader.CountryMap()
	if history, ok := j.reader.History(); ok {
		s.History = len(history)
	}

	return s
}

func (j dumpJob) Run() {
	data, err := yaml.Marshal(j.snapshot())
	if nil != err {
		log.WithFields(log.Fields{"prefix": logPrefix, "error": err}).Error("encode snapshot")
		return
	}

	if j.output == "" || j.output == "-" {
		_, _ = os.Stdout.Write(data)
		return
	}

	if err := ioutil.WriteFile(j.output, data, 0644); nil != err {
		log.WithFields(log.Fields{"prefix": logPrefix, "file": j.output, "error": err}).Error("write snapshot")
		return
	}

	log.WithFields(log.Fields{"prefix": logPrefix, "file": j.output}).Info("snapshot written")
}

// newDumpJob - one-shot job writing the fetched view models as yaml
func newDumpJob(reader store.Reader, output string) Cron {
	return &dumpJob{
		reader: reader,
		output: output,
	}
}
