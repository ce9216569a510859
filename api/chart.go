package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/covid-dashboard/chart"
	"github.com/bitmark-inc/covid-dashboard/consts"
)

type chartResponse struct {
	Loaded  bool          `json:"loaded"`
	Loading chart.Loading `json:"loading"`
	Option  chart.Option  `json:"option"`
}

// lang returns the `lang` query, the first Accept-Language entry or the
// configured default
func (s *Server) lang(c *gin.Context) string {
	if l := c.Query("lang"); l != "" {
		return l
	}

	if header := c.GetHeader("Accept-Language"); header != "" {
		first := strings.SplitN(header, ",", 2)[0]
		return strings.TrimSpace(strings.SplitN(first, ";", 2)[0])
	}

	return s.defaultLang
}

func (s *Server) countriesChart(c *gin.Context) {
	f := chart.NewFormatter(s.lang(c))
	entries, ok := s.store.CountryMap()

	c.JSON(http.StatusOK, chartResponse{
		Loaded:  ok && s.store.Loaded() && s.registry.Registered(consts.WorldMap),
		Loading: chart.LoadingOption(f),
		Option:  chart.CountriesOption(entries, f),
	})
}

func (s *Server) globalChart(c *gin.Context) {
	f := chart.NewFormatter(s.lang(c))
	points, ok := s.store.GlobalMap()

	c.JSON(http.StatusOK, chartResponse{
		Loaded:  ok && s.registry.Registered(consts.WorldMap),
		Loading: chart.LoadingOption(f),
		Option:  chart.GlobalOption(points, f),
	})
}

func (s *Server) worldGeometry(c *gin.Context) {
	collection, ok := s.registry.Lookup(consts.WorldMap)
	if !ok {
		abortWithEncoding(c, http.StatusServiceUnavailable, errorMapNotRegistered)
		return
	}

	c.JSON(http.StatusOK, collection)
}
