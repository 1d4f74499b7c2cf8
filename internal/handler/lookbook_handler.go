package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eclatdelune/lune_api/internal/service"
	"github.com/eclatdelune/lune_api/internal/utils"
)

// LookbookHandler handles lookbook HTTP endpoints.
type LookbookHandler struct {
	catalog *service.CatalogService
}

// NewLookbookHandler constructs a LookbookHandler.
func NewLookbookHandler(catalog *service.CatalogService) *LookbookHandler {
	return &LookbookHandler{catalog: catalog}
}

// GetSeason handles GET /api/lookbook/:season
func (h *LookbookHandler) GetSeason(c *gin.Context) {
	entries, err := h.catalog.GetLookbook(c.Request.Context(), c.Param("season"))
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "Failed to retrieve lookbook")
		return
	}
	c.JSON(http.StatusOK, entries)
}
