// Package errors provides custom error types for the budgetcast API.
// All service-layer errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Pipeline errors.
var (
	ErrInvalidAPIKey         = &AppError{Code: "INVALID_API_KEY", Message: "Invalid or missing API key", StatusCode: http.StatusUnauthorized}
	ErrPipelineNotConfigured = &AppError{Code: "PIPELINE_NOT_CONFIGURED", Message: "Pipeline endpoints are not configured", StatusCode: http.StatusServiceUnavailable}
)

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Ledger errors.
var (
	ErrRecurringItemNotFound = &AppError{Code: "RECURRING_ITEM_NOT_FOUND", Message: "Recurring item not found", StatusCode: http.StatusNotFound}
	ErrOneTimeItemNotFound   = &AppError{Code: "ONE_TIME_ITEM_NOT_FOUND", Message: "One-time item not found", StatusCode: http.StatusNotFound}
	ErrInvalidDateRange      = &AppError{Code: "INVALID_DATE_RANGE", Message: "End date must not be before start date", StatusCode: http.StatusBadRequest}
	ErrPaydayNotFound        = &AppError{Code: "PAYDAY_ADJUSTMENT_NOT_FOUND", Message: "Payday adjustment not found", StatusCode: http.StatusNotFound}
)

// Investment errors.
var (
	ErrPortfolioNotFound = &AppError{Code: "PORTFOLIO_NOT_FOUND", Message: "Portfolio not found", StatusCode: http.StatusNotFound}
	ErrHoldingNotFound   = &AppError{Code: "HOLDING_NOT_FOUND", Message: "Holding not found", StatusCode: http.StatusNotFound}
)

// Wishlist errors.
var (
	ErrWishlistItemNotFound     = &AppError{Code: "WISHLIST_ITEM_NOT_FOUND", Message: "Wishlist item not found", StatusCode: http.StatusNotFound}
	ErrWishlistCategoryNotFound = &AppError{Code: "WISHLIST_CATEGORY_NOT_FOUND", Message: "Wishlist category not found", StatusCode: http.StatusNotFound}
	ErrWishlistCategoryExists   = &AppError{Code: "WISHLIST_CATEGORY_EXISTS", Message: "Category already exists", StatusCode: http.StatusConflict}
	ErrWishlistCategoryInUse    = &AppError{Code: "WISHLIST_CATEGORY_IN_USE", Message: "Cannot delete category that is in use", StatusCode: http.StatusConflict}
)

// Projection errors.
var (
	ErrDataIntegrity  = &AppError{Code: "DATA_INTEGRITY", Message: "A stored record could not be read; projection aborted", StatusCode: http.StatusUnprocessableEntity}
	ErrInvalidHorizon = &AppError{Code: "INVALID_HORIZON", Message: "Projection horizon is out of range", StatusCode: http.StatusBadRequest}
)
