package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"tooldocker/internal/errors"
	"tooldocker/internal/service"
)

// CatalogHandler serves the public storefront endpoints.
type CatalogHandler struct {
	catalogService service.CatalogService
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// ListProducts godoc
// @Summary List all products with seller profiles
// @Tags catalog
// @Produce json
// @Success 200 {array} service.EnrichedProduct
// @Failure 500 {object} errors.ErrorResponse
// @Router /catalog/products [get]
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	products, err := h.catalogService.ListAll(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, products)
}

// GetProduct godoc
// @Summary Get a product by its name slug
// @Tags catalog
// @Produce json
// @Param slug path string true "Product name slug"
// @Success 200 {object} model.Product
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /catalog/products/{slug} [get]
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	product, err := h.catalogService.GetBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, product)
}

// ListCategories godoc
// @Summary List product categories
// @Tags catalog
// @Produce json
// @Success 200 {array} string
// @Router /catalog/categories [get]
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	return c.JSON(http.StatusOK, h.catalogService.Categories())
}
