package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eclatdelune/lune_api/internal/service"
	"github.com/eclatdelune/lune_api/internal/utils"
)

// JournalHandler handles journal HTTP endpoints.
type JournalHandler struct {
	catalog *service.CatalogService
}

// NewJournalHandler constructs a JournalHandler.
func NewJournalHandler(catalog *service.CatalogService) *JournalHandler {
	return &JournalHandler{catalog: catalog}
}

// ListPosts handles GET /api/journal
func (h *JournalHandler) ListPosts(c *gin.Context) {
	posts, err := h.catalog.ListJournal(c.Request.Context())
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "Failed to retrieve journal")
		return
	}
	c.JSON(http.StatusOK, posts)
}
