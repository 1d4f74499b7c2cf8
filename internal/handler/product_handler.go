package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eclatdelune/lune_api/internal/service"
	"github.com/eclatdelune/lune_api/internal/utils"
)

// ProductHandler handles product HTTP endpoints.
type ProductHandler struct {
	catalog *service.CatalogService
}

// NewProductHandler constructs a ProductHandler.
func NewProductHandler(catalog *service.CatalogService) *ProductHandler {
	return &ProductHandler{catalog: catalog}
}

// ListProducts handles GET /api/products?category=<optional>
func (h *ProductHandler) ListProducts(c *gin.Context) {
	products, err := h.catalog.ListProducts(c.Request.Context(), c.Query("category"))
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "Failed to retrieve products")
		return
	}
	c.JSON(http.StatusOK, products)
}

// GetProduct handles GET /api/products/:slug
func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, err := h.catalog.GetProduct(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, utils.ErrProductNotFound) {
			utils.Error(c, http.StatusNotFound, "Product not found")
			return
		}
		utils.Error(c, http.StatusInternalServerError, "Failed to retrieve product")
		return
	}
	c.JSON(http.StatusOK, product)
}

// CreateProduct handles POST /api/products
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req service.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	id, err := h.catalog.CreateProduct(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, utils.ErrInvalidCategory) {
			utils.Error(c, http.StatusBadRequest, err.Error())
			return
		}
		utils.Error(c, http.StatusInternalServerError, "Failed to create product")
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id})
}
