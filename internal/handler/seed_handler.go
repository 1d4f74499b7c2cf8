package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eclatdelune/lune_api/internal/service"
	"github.com/eclatdelune/lune_api/internal/utils"
)

// SeedHandler handles the sample-content bootstrap endpoint.
type SeedHandler struct {
	seed *service.SeedService
}

// NewSeedHandler constructs a SeedHandler.
func NewSeedHandler(seed *service.SeedService) *SeedHandler {
	return &SeedHandler{seed: seed}
}

// Seed handles POST /api/seed
func (h *SeedHandler) Seed(c *gin.Context) {
	result, err := h.seed.Seed(c.Request.Context())
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "Failed to seed sample content")
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "inserted": result})
}
