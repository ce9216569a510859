package api

import (
	"context"
	"net/http"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/bitmark-inc/covid-dashboard/consts"
	"github.com/bitmark-inc/covid-dashboard/logmodule"
	"github.com/bitmark-inc/covid-dashboard/share/geojson"
	"github.com/bitmark-inc/covid-dashboard/store"
	"github.com/bitmark-inc/covid-dashboard/utils"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Dashboard state
	store store.Reader

	// Map geometry shared with the dashboard
	registry *geojson.Registry

	// Prometheus exposition of the fetch metrics
	metricsHandler http.Handler

	defaultLang string
	location    *time.Location
}

// NewServer new instance of server
func NewServer(reader store.Reader, registry *geojson.Registry, metricsHandler http.Handler) *Server {
	return &Server{
		store:          reader,
		registry:       registry,
		metricsHandler: metricsHandler,
		defaultLang:    viper.GetString("dashboard.lang"),
		location:       utils.GetLocation(viper.GetString("dashboard.timezone")),
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))

	r.GET("/", logmodule.Ginrus("Page"), s.index)

	assetRoute := r.Group("/assets")
	assetRoute.Use(logmodule.Ginrus("Asset"))
	{
		assetRoute.GET("/"+consts.WorldMap+".json", s.worldGeometry)
	}

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))
	apiRoute.Use(cors.New(cors.Config{
		AllowMethods:    []string{"GET"},
		AllowHeaders:    []string{"Origin"},
		ExposeHeaders:   []string{"Content-Length"},
		AllowAllOrigins: true,
		MaxAge:          12 * time.Hour,
	}))
	{
		apiRoute.GET("/overall", s.overall)
		apiRoute.GET("/table", s.table)
		apiRoute.GET("/history", s.history)
	}

	mapRoute := apiRoute.Group("/map")
	{
		mapRoute.GET("/global", s.globalMap)
		mapRoute.GET("/countries", s.countryMap)
	}

	chartRoute := apiRoute.Group("/chart")
	{
		chartRoute.GET("/global", s.globalChart)
		chartRoute.GET("/countries", s.countriesChart)
	}

	if s.metricsHandler != nil {
		r.GET("/metrics", logmodule.Ginrus("Metric"), gin.WrapH(s.metricsHandler))
	}

	r.GET("/healthz", s.healthz)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Server) healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":     "OK",
		"version":    viper.GetString("server.version"),
		"loaded":     s.store.Loaded(),
		"map":        s.registry.Registered(consts.WorldMap),
		"updated_at": s.store.UpdatedAt(),
	})
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	acceptEncoding := c.GetHeader("Accept-Encoding")
	switch acceptEncoding {
	default:
		c.JSON(code, obj)
	}
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		_ = c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
