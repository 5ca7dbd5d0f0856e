package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
	// ErrProfileNotFound is returned when a profile is not found.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrOwnerNotFound is returned when the caller has no profile row to own a product.
	ErrOwnerNotFound = errors.New("owner profile not found")
	// ErrNotApproved is returned when the caller's seller approval is absent or revoked.
	ErrNotApproved = errors.New("seller not approved")
	// ErrStorageUpload is returned when the image upload fails.
	ErrStorageUpload = errors.New("image upload failed")
	// ErrMissingName is returned when a product name is empty.
	ErrMissingName = errors.New("product name is required")
	// ErrInvalidPrice is returned when price is not a finite non-negative number.
	ErrInvalidPrice = errors.New("price must be a non-negative number")
	// ErrInvalidStock is returned when stock is not a non-negative integer.
	ErrInvalidStock = errors.New("stock must be a non-negative integer")
	// ErrInvalidCategory is returned when the category is not in the known set.
	ErrInvalidCategory = errors.New("unknown product category")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Anything unrecognized is
// a backend failure and surfaces as a 500 so write failures are never
// swallowed by the caller.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrProductNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "PRODUCT_NOT_FOUND")
	case errors.Is(err, ErrProfileNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "PROFILE_NOT_FOUND")
	case errors.Is(err, ErrOwnerNotFound):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "OWNER_NOT_FOUND")
	case errors.Is(err, ErrNotApproved):
		return NewHTTPError(http.StatusForbidden, err.Error(), "SELLER_NOT_APPROVED")
	case errors.Is(err, ErrStorageUpload):
		return NewHTTPError(http.StatusBadGateway, err.Error(), "STORAGE_UPLOAD_FAILED")
	case errors.Is(err, ErrMissingName):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "MISSING_NAME")
	case errors.Is(err, ErrInvalidPrice):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_PRICE")
	case errors.Is(err, ErrInvalidStock):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_STOCK")
	case errors.Is(err, ErrInvalidCategory):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_CATEGORY")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
