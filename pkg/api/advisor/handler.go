// Package advisor exposes the generation mix suggester. The endpoint
// builds a quote first so the suggestion always reflects the latest
// gap analysis, then asks the advisor to close the gap.
package advisor

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"bess_quoting/pkg/core/advisor"
	"bess_quoting/pkg/core/baseline"
	corequote "bess_quoting/pkg/core/quote"
)

type Response struct {
	Quote      *corequote.Quote    `json:"quote"`
	Suggestion *advisor.Suggestion `json:"suggestion"`
}

type Handler struct {
	assembler *corequote.Assembler
	advisor   *advisor.Advisor
	log       *logrus.Entry
}

func NewHandler(assembler *corequote.Assembler, adv *advisor.Advisor, log *logrus.Logger) *Handler {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Handler{
		assembler: assembler,
		advisor:   adv,
		log:       log.WithField("component", "api.advisor"),
	}
}

func (h *Handler) HandleSuggest(c *gin.Context) {
	var req corequote.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	q, err := h.assembler.Build(c.Request.Context(), nil, req)
	if err != nil {
		status := http.StatusInternalServerError
		var unknown *baseline.UnknownIndustryError
		if errors.As(err, &unknown) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	suggestion, err := h.advisor.SuggestMix(c.Request.Context(), q)
	if err != nil {
		h.log.WithField("error", err).Error("suggestion failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, Response{Quote: q, Suggestion: suggestion})
}
