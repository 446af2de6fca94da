// Package api wires the HTTP surface: catalog browsing, quote
// assembly, gap analysis and generation advice.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	advisorapi "bess_quoting/pkg/api/advisor"
	catalogapi "bess_quoting/pkg/api/catalog"
	gapapi "bess_quoting/pkg/api/gap"
	quoteapi "bess_quoting/pkg/api/quote"
	coreadvisor "bess_quoting/pkg/core/advisor"
	corequote "bess_quoting/pkg/core/quote"
)

// Deps carries the wired core services. Lookup and Advisor are
// optional; absent ones degrade (no overrides, heuristic-only advice).
type Deps struct {
	Assembler *corequote.Assembler
	Lookup    corequote.OverrideLookup
	Advisor   *coreadvisor.Advisor
	Log       *logrus.Logger
}

// NewRouter builds the gin engine with all routes registered.
func NewRouter(d Deps) *gin.Engine {
	if d.Log == nil {
		d.Log = logrus.StandardLogger()
	}
	if d.Advisor == nil {
		d.Advisor = coreadvisor.New(nil, d.Log)
	}

	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	catalogHandler := catalogapi.NewHandler()
	r.GET("/api/catalog", catalogHandler.HandleList)
	r.GET("/api/catalog/:key", catalogHandler.HandleGet)

	quoteHandler := quoteapi.NewHandler(d.Assembler, d.Lookup, d.Log)
	r.POST("/api/quote", quoteHandler.HandleQuote)

	gapHandler := gapapi.NewHandler()
	r.POST("/api/gap", gapHandler.HandleAnalyze)

	advisorHandler := advisorapi.NewHandler(d.Assembler, d.Advisor, d.Log)
	r.POST("/api/advisor/suggest", advisorHandler.HandleSuggest)

	return r
}
