// Package quote exposes quote assembly over HTTP. Requests that name
// a session reuse that session's memoized configuration overrides, so
// a wizard hammering the recompute endpoint hits the database at most
// once per industry.
package quote

import (
	"errors"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"bess_quoting/pkg/core/baseline"
	corequote "bess_quoting/pkg/core/quote"
)

const sessionHeader = "X-Session-ID"

// Handler holds dependencies for quote endpoints.
type Handler struct {
	assembler *corequote.Assembler
	lookup    corequote.OverrideLookup
	log       *logrus.Entry

	mu       sync.Mutex
	sessions map[string]*corequote.Session
}

func NewHandler(assembler *corequote.Assembler, lookup corequote.OverrideLookup, log *logrus.Logger) *Handler {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Handler{
		assembler: assembler,
		lookup:    lookup,
		log:       log.WithField("component", "api.quote"),
		sessions:  make(map[string]*corequote.Session),
	}
}

// session returns the memoizing session for an ID, creating it on
// first use. An empty ID gets no session (no override lookups).
func (h *Handler) session(id string) *corequote.Session {
	if id == "" {
		return nil
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	s, ok := h.sessions[id]
	if !ok {
		s = corequote.NewSession(h.lookup, h.log.Logger)
		h.sessions[id] = s
	}
	return s
}

func (h *Handler) HandleQuote(c *gin.Context) {
	var req corequote.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.IndustryKey == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "industry is required"})
		return
	}

	sess := h.session(c.GetHeader(sessionHeader))
	q, err := h.assembler.Build(c.Request.Context(), sess, req)
	if err != nil {
		status := http.StatusInternalServerError
		var unknown *baseline.UnknownIndustryError
		var invalid *baseline.InvalidAnswerError
		switch {
		case errors.As(err, &unknown):
			status = http.StatusNotFound
		case errors.As(err, &invalid):
			status = http.StatusUnprocessableEntity
		}
		h.log.WithField("industry", req.IndustryKey).WithField("error", err).Warn("quote build failed")
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, q)
}
