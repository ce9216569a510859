package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/uber-go/tally"
	promreporter "github.com/uber-go/tally/prometheus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"

	"github.com/bitmark-inc/covid-dashboard/api"
	"github.com/bitmark-inc/covid-dashboard/consts"
	"github.com/bitmark-inc/covid-dashboard/dashboard"
	"github.com/bitmark-inc/covid-dashboard/external/ncov"
	"github.com/bitmark-inc/covid-dashboard/external/worldometer"
	"github.com/bitmark-inc/covid-dashboard/share/geojson"
	"github.com/bitmark-inc/covid-dashboard/store"
	"github.com/bitmark-inc/covid-dashboard/utils"
)

var (
	server      *api.Server
	board       *dashboard.Dashboard
	scopeCloser io.Closer
)

func initLog() {
	logLevel, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(logLevel)
	}

	log.SetOutput(os.Stdout)

	log.SetFormatter(&prefixed.TextFormatter{
		ForceFormatting: true,
		FullTimestamp:   true,
	})
}

func loadConfig(file string) {
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("dashboard.interval", 10*time.Minute)
	viper.SetDefault("dashboard.timeout", 30*time.Second)
	viper.SetDefault("dashboard.lang", "en")
	viper.SetDefault("metrics.prefix", "covid")

	// Config from file
	viper.SetConfigType("yaml")
	if file != "" {
		viper.SetConfigFile(file)
	}

	viper.AddConfigPath("/.config/")
	viper.AddConfigPath(".")
	err := viper.ReadInConfig()
	if err != nil {
		fmt.Println("No config file. Read config from env.")
		viper.AllowEmptyEnv(false)
	}

	// Config from env if possible
	viper.AutomaticEnv()
	viper.SetEnvPrefix("covid")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func initNormalizer() utils.Normalizer {
	file := viper.GetString("normalizer.aliases")
	if file == "" {
		return utils.DefaultNormalizer
	}

	aliases, err := consts.LoadAliases(file)
	if err != nil {
		log.WithField("prefix", "init").Panicf("load country aliases with error: %s", err)
	}
	log.WithField("prefix", "init").Infof("Loaded %d country aliases", len(aliases))

	return utils.NewNormalizer(aliases)
}

func main() {
	var configFile string

	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Info("Server is preparing to shutdown")

		if board != nil {
			log.Info("Tearing down dashboard")
			board.Teardown()
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if server != nil {
			log.Info("Shutdown dashboard server")
			if err := server.Shutdown(ctx); err != nil {
				log.Error("Server Shutdown:", err)
			}
		}

		if scopeCloser != nil {
			if err := scopeCloser.Close(); err != nil {
				log.Error(err)
			}
		}

		sentry.Flush(2 * time.Second)
		os.Exit(1)
	}()

	flag.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file.")
	}

	loadConfig(configFile)

	initLog()

	// Sentry
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              viper.GetString("sentry.dsn"),
		AttachStacktrace: true,
		Environment:      viper.GetString("sentry.environment"),
		Dist:             viper.GetString("sentry.dist"),
	}); err != nil {
		log.Error(err)
	}
	log.WithField("prefix", "init").Info("Initialized sentry")

	if err := utils.InitI18NBundle(viper.GetString("i18n.dir")); err != nil {
		log.WithField("prefix", "init").Panicf("load message files with error: %s", err)
	}
	log.WithField("prefix", "init").Info("Initialized i18n bundle")

	normalizer := initNormalizer()

	reporter := promreporter.NewReporter(promreporter.Options{})
	var scope tally.Scope
	scope, scopeCloser = tally.NewRootScope(tally.ScopeOptions{
		Prefix:         viper.GetString("metrics.prefix"),
		Tags:           map[string]string{},
		CachedReporter: reporter,
		Separator:      promreporter.DefaultSeparator,
	}, time.Second)
	log.WithField("prefix", "init").Info("Initialized metrics scope")

	httpClient := &http.Client{
		Timeout: 60 * time.Second,
	}

	var geometry geojson.Loader
	if location := viper.GetString("geometry.file"); location != "" {
		geometry = geojson.NewLoader(httpClient, location)
	}

	registry := geojson.NewRegistry()
	ctx := geojson.WithRegistry(context.Background(), registry)

	dashboardStore := store.NewMemoryStore()

	board = dashboard.New(
		dashboard.Config{
			Location:   utils.GetLocation(viper.GetString("dashboard.timezone")),
			Normalizer: normalizer,
			Geometry:   geometry,
			Timeout:    viper.GetDuration("dashboard.timeout"),
			Interval:   viper.GetDuration("dashboard.interval"),
			History:    viper.GetBool("dashboard.history"),
		},
		ncov.New(httpClient, viper.GetString("source.area.url")),
		worldometer.New(httpClient, viper.GetString("source.countries.url")),
		dashboardStore,
		scope,
	)

	if err := board.Mount(ctx); err != nil {
		log.Panic(err)
	}
	log.WithField("prefix", "init").Info("Mounted dashboard")

	// Init http server
	server = api.NewServer(dashboardStore, registry, reporter.HTTPHandler())
	log.WithField("prefix", "init").Info("Initialized http server")

	log.Fatal(server.Run(":" + viper.GetString("server.port")))
}
