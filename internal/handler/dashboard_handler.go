package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"tooldocker/internal/errors"
	"tooldocker/internal/service"
)

// DashboardHandler serves the seller dashboard endpoints. Create and update
// accept multipart forms because they may carry an image file.
type DashboardHandler struct {
	dashboardService service.DashboardService
	approvalService  service.ApprovalService
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(dashboardService service.DashboardService, approvalService service.ApprovalService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		approvalService:  approvalService,
	}
}

// MyApproval godoc
// @Summary Get the caller's approval state
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.UserApproval
// @Failure 401 {object} errors.ErrorResponse
// @Router /me/approval [get]
func (h *DashboardHandler) MyApproval(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	approval, err := h.approvalService.GetApproval(c.Request().Context(), userID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, approval)
}

// ListProducts godoc
// @Summary List the caller's products
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {array} service.EnrichedProduct
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /dashboard/products [get]
func (h *DashboardHandler) ListProducts(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	products, err := h.dashboardService.ListOwned(c.Request().Context(), userID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, products)
}

// CreateProduct godoc
// @Summary Create a product listing
// @Tags dashboard
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param name formData string true "Product name"
// @Param description formData string false "Description"
// @Param category formData string true "Category"
// @Param price formData string true "Price"
// @Param stock formData string true "Stock"
// @Param image formData file false "Product image"
// @Success 201 {object} model.Product
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /dashboard/products [post]
func (h *DashboardHandler) CreateProduct(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	input, image, cleanup, err := bindProductForm(c)
	if err != nil {
		return err
	}
	defer cleanup()

	product, err := h.dashboardService.Create(c.Request().Context(), userID, input, image)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, product)
}

// UpdateProduct godoc
// @Summary Update a product listing
// @Tags dashboard
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param name formData string true "Product name"
// @Param description formData string false "Description"
// @Param category formData string true "Category"
// @Param price formData string true "Price"
// @Param stock formData string true "Stock"
// @Param image formData file false "Replacement image"
// @Success 200 {object} model.Product
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /dashboard/products/{id} [put]
func (h *DashboardHandler) UpdateProduct(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid product ID",
			Code:  "INVALID_UUID",
		})
	}

	input, image, cleanup, err := bindProductForm(c)
	if err != nil {
		return err
	}
	defer cleanup()

	product, err := h.dashboardService.Update(c.Request().Context(), userID, productID, input, image)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, product)
}

// DeleteProduct godoc
// @Summary Delete a product listing and its stored image
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 204 "No Content"
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /dashboard/products/{id} [delete]
func (h *DashboardHandler) DeleteProduct(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid product ID",
			Code:  "INVALID_UUID",
		})
	}

	if err := h.dashboardService.Delete(c.Request().Context(), userID, productID); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.NoContent(http.StatusNoContent)
}

// bindProductForm reads the multipart product fields and the optional image
// part. The returned cleanup closes the image reader and is always safe to
// call.
func bindProductForm(c echo.Context) (service.ProductInput, *service.ImageUpload, func(), error) {
	input := service.ProductInput{
		Name:        c.FormValue("name"),
		Description: c.FormValue("description"),
		Category:    c.FormValue("category"),
		Price:       c.FormValue("price"),
		Stock:       c.FormValue("stock"),
	}
	cleanup := func() {}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		// No image part supplied.
		return input, nil, cleanup, nil
	}

	src, err := fileHeader.Open()
	if err != nil {
		return input, nil, cleanup, echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "unreadable image upload",
			Code:  "INVALID_IMAGE",
		})
	}
	cleanup = func() { src.Close() }

	return input, &service.ImageUpload{Filename: fileHeader.Filename, Reader: src}, cleanup, nil
}
