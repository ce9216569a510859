package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"

	"github.com/bitmark-inc/covid-dashboard/consts"
	"github.com/bitmark-inc/covid-dashboard/dashboard"
	"github.com/bitmark-inc/covid-dashboard/external/ncov"
	"github.com/bitmark-inc/covid-dashboard/external/worldometer"
	"github.com/bitmark-inc/covid-dashboard/share/geojson"
	"github.com/bitmark-inc/covid-dashboard/store"
	"github.com/bitmark-inc/covid-dashboard/utils"
)

const (
	logPrefix      = "cron"
	defaultTimeout = 30 * time.Second
)

type Cron interface {
	Run()
}

func init() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("covid")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func initLog() {
	logLevel, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(logLevel)
	}

	log.SetOutput(os.Stderr)

	log.SetFormatter(&prefixed.TextFormatter{
		ForceFormatting: true,
		FullTimestamp:   true,
	})
}

func loadConfig(file string) {
	// Config from file
	viper.SetConfigType("yaml")
	if file != "" {
		viper.SetConfigFile(file)
	}

	viper.AddConfigPath("/.config/")
	viper.AddConfigPath(".")
	err := viper.ReadInConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "No config file. Read config from env.")
		viper.AllowEmptyEnv(false)
	}

	// Config from env if possible
	viper.AutomaticEnv()
	viper.SetEnvPrefix("covid")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	var configFile, output string

	flag.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flag.StringVar(&output, "o", "-", "[optional] path of the yaml snapshot, stdout by default")
	flag.Parse()

	loadConfig(configFile)

	initLog()

	normalizer := utils.DefaultNormalizer
	if file := viper.GetString("normalizer.aliases"); file != "" {
		aliases, err := consts.LoadAliases(file)
		if nil != err {
			log.Panicf("load country aliases with error: %s", err)
		}
		normalizer = utils.NewNormalizer(aliases)
	}

	timeout := viper.GetDuration("dashboard.timeout")
	if timeout == 0 {
		timeout = defaultTimeout
	}

	httpClient := &http.Client{
		Timeout: timeout,
	}

	var geometry geojson.Loader
	if location := viper.GetString("geometry.file"); location != "" {
		geometry = geojson.NewLoader(httpClient, location)
	}

	mStore := store.NewMemoryStore()
	board := dashboard.New(
		dashboard.Config{
			Location:   utils.GetLocation(viper.GetString("dashboard.timezone")),
			Normalizer: normalizer,
			Geometry:   geometry,
			Timeout:    timeout,
			History:    viper.GetBool("dashboard.history"),
		},
		ncov.New(httpClient, viper.GetString("source.area.url")),
		worldometer.New(httpClient, viper.GetString("source.countries.url")),
		mStore,
		nil,
	)

	ctx := geojson.WithRegistry(context.Background(), geojson.NewRegistry())
	if err := board.Mount(ctx); nil != err {
		log.Panic(err)
	}
	board.Wait()

	newDumpJob(mStore, output).Run()

	board.Teardown()
}
