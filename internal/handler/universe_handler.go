package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eclatdelune/lune_api/internal/service"
	"github.com/eclatdelune/lune_api/internal/utils"
)

// UniverseHandler handles the Universe loyalty program endpoints.
type UniverseHandler struct {
	loyalty *service.LoyaltyService
}

// NewUniverseHandler constructs a UniverseHandler.
func NewUniverseHandler(loyalty *service.LoyaltyService) *UniverseHandler {
	return &UniverseHandler{loyalty: loyalty}
}

// GetProfile handles GET /api/universe/profile?email=<required>
func (h *UniverseHandler) GetProfile(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		utils.Error(c, http.StatusBadRequest, utils.ErrEmailRequired.Error())
		return
	}

	profile, err := h.loyalty.GetProfile(c.Request.Context(), email)
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "Failed to retrieve profile")
		return
	}
	c.JSON(http.StatusOK, profile)
}

// EarnPhotons handles POST /api/universe/earn
func (h *UniverseHandler) EarnPhotons(c *gin.Context) {
	var req service.EarnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.loyalty.Earn(c.Request.Context(), &req)
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "Failed to record earn event")
		return
	}

	// A just-created profile omits the running total; the caller re-fetches.
	if result.Created {
		c.JSON(http.StatusOK, gin.H{"ok": true})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "photons": result.Total})
}
