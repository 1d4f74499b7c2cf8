package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eclatdelune/lune_api/internal/utils"
)

// Brand identification served at the root route.
const (
	BrandName    = "Éclat de Lune"
	BrandTagline = "Wear the sky."
)

// StatusReporter is the store probe the health handler depends on.
type StatusReporter interface {
	CollectionNames(ctx context.Context) ([]string, error)
}

// HealthHandler serves the root identification payload and the store
// connectivity probe.
type HealthHandler struct {
	store StatusReporter
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(store StatusReporter) *HealthHandler {
	return &HealthHandler{store: store}
}

// GetRoot handles GET /
func (h *HealthHandler) GetRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"brand":   BrandName,
		"tagline": BrandTagline,
	})
}

// GetStatus handles GET /test. It always answers 200: a store failure is
// captured and reported as a truncated message rather than propagated.
func (h *HealthHandler) GetStatus(c *gin.Context) {
	resp := gin.H{
		"backend":     "✅ Running",
		"database":    "❌ Not Available",
		"collections": []string{},
	}

	names, err := h.store.CollectionNames(c.Request.Context())
	if err != nil {
		resp["database"] = "❌ " + utils.Truncate(err.Error(), 120)
		c.JSON(http.StatusOK, resp)
		return
	}
	if names == nil {
		names = []string{}
	}
	resp["database"] = "✅ Connected"
	resp["collections"] = names
	c.JSON(http.StatusOK, resp)
}
