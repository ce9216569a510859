package api

import (
	"embed"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed web/index.html
var webFiles embed.FS

func (s *Server) index(c *gin.Context) {
	page, err := webFiles.ReadFile("web/index.html")
	if shouldInterupt(err, c) {
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", page)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	log.Error(err)
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
	return true
}
