// Package gap exposes the standalone grid gap analysis endpoint.
package gap

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bess_quoting/pkg/core/gridgap"
)

// Request mirrors gridgap.Input with wire-friendly types: capacity is
// a pointer so "not answered" and "0 MW" stay distinguishable, and
// reliability arrives as free text.
type Request struct {
	PeakDemandMW   float64  `json:"peakDemandMW"`
	GridCapacityMW *float64 `json:"gridCapacityMW,omitempty"`
	GridConnection string   `json:"gridConnection,omitempty"`
	SolarMW        float64  `json:"solarMW,omitempty"`
	WindMW         float64  `json:"windMW,omitempty"`
	GeneratorMW    float64  `json:"generatorMW,omitempty"`
}

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) HandleAnalyze(c *gin.Context) {
	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.PeakDemandMW < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "peakDemandMW must be non-negative"})
		return
	}

	result := gridgap.Analyze(gridgap.Input{
		PeakDemandMW:   req.PeakDemandMW,
		GridCapacityMW: req.GridCapacityMW,
		Reliability:    gridgap.ParseReliability(req.GridConnection),
		Generation: gridgap.Generation{
			SolarMW:     req.SolarMW,
			WindMW:      req.WindMW,
			GeneratorMW: req.GeneratorMW,
		},
	})
	c.JSON(http.StatusOK, result)
}
