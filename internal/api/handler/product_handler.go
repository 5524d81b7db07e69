package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shopstack/storefront-api/internal/core/domain"
	"github.com/shopstack/storefront-api/internal/core/ports"
)

// ProductHandler handles catalog search requests.
type ProductHandler struct {
	service ports.CatalogService
}

func NewProductHandler(service ports.CatalogService) *ProductHandler {
	return &ProductHandler{service: service}
}

// Search handles GET /api/products/search?query=q.
//
// @Summary      Search products by name
// @Tags         products
// @Produce      json
// @Param        query  query     string  true  "Search term (case-insensitive)"
// @Success      200    {object}  searchResponse
// @Failure      400    {object}  errorResponse
// @Failure      500    {object}  errorResponse
// @Router       /api/products/search [get]
func (h *ProductHandler) Search(c echo.Context) error {
	query := c.QueryParam("query")
	if query == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "query parameter is required")
	}

	products, err := h.service.Search(c.Request().Context(), query)
	if err != nil {
		return err
	}
	if products == nil {
		products = []domain.Product{}
	}

	return c.JSON(http.StatusOK, searchResponse{Success: true, Products: products})
}
