// Package catalog exposes the industry template catalog over HTTP.
package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bess_quoting/pkg/core/catalog"
)

// Summary is the list view of a template; the full field set is only
// returned for single-template gets.
type Summary struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Aliases            []string `json:"aliases,omitempty"`
	BaseLoadKW         float64  `json:"baseLoadKW"`
	DefaultDurationHrs float64  `json:"defaultDurationHours"`
	Questions          int      `json:"questions"`
}

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) HandleList(c *gin.Context) {
	all := catalog.All()
	out := make([]Summary, 0, len(all))
	for _, t := range all {
		out = append(out, Summary{
			ID:                 t.ID,
			Name:               t.Name,
			Aliases:            t.Aliases,
			BaseLoadKW:         t.BaseLoadKW,
			DefaultDurationHrs: t.DefaultDurationHrs,
			Questions:          len(t.Fields),
		})
	}
	c.JSON(http.StatusOK, gin.H{"industries": out, "count": len(out)})
}

func (h *Handler) HandleGet(c *gin.Context) {
	key := c.Param("key")
	tmpl, ok := catalog.Lookup(key)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown industry: " + key})
		return
	}
	c.JSON(http.StatusOK, tmpl)
}
