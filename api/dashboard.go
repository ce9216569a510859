package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/covid-dashboard/view"
)

func (s *Server) overall(c *gin.Context) {
	totals, ok := s.store.Totals()
	if !ok {
		abortWithEncoding(c, http.StatusServiceUnavailable, errorDataNotReady)
		return
	}

	c.JSON(http.StatusOK, totals)
}

func (s *Server) globalMap(c *gin.Context) {
	points, ok := s.store.GlobalMap()
	if !ok {
		abortWithEncoding(c, http.StatusServiceUnavailable, errorDataNotReady)
		return
	}

	c.JSON(http.StatusOK, points)
}

func (s *Server) countryMap(c *gin.Context) {
	entries, ok := s.store.CountryMap()
	if !ok {
		abortWithEncoding(c, http.StatusServiceUnavailable, errorDataNotReady)
		return
	}

	c.JSON(http.StatusOK, entries)
}

func (s *Server) table(c *gin.Context) {
	rows, ok := s.store.Table()
	if !ok {
		abortWithEncoding(c, http.StatusServiceUnavailable, errorDataNotReady)
		return
	}

	c.JSON(http.StatusOK, rows)
}

func (s *Server) history(c *gin.Context) {
	var params struct {
		Country string `form:"country" binding:"required"`
	}

	if err := c.ShouldBindQuery(&params); err != nil || strings.TrimSpace(params.Country) == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	records, ok := s.store.History()
	if !ok {
		abortWithEncoding(c, http.StatusServiceUnavailable, errorDataNotReady)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"country":  params.Country,
		"timeline": view.BuildTimeline(records, params.Country, s.location),
	})
}
