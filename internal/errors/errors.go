// Package errors provides the application error taxonomy for the Expensely API.
// Service-layer code returns *AppError values so handlers can render consistent
// JSON responses without leaking internal details to clients.
package errors

import "net/http"

// AppError is a structured application error carrying a stable error code,
// a human-readable message, the HTTP status to respond with, and an optional
// wrapped internal cause.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal cause for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap returns a copy of sentinel carrying internal as the wrapped cause.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage returns a copy of sentinel with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Authentication & authorization errors.
var (
	ErrUnauthorized       = &AppError{Code: "UNAUTHORIZED", Message: "Authentication required", StatusCode: http.StatusUnauthorized}
	ErrInvalidCredentials = &AppError{Code: "INVALID_CREDENTIALS", Message: "Invalid email or password", StatusCode: http.StatusUnauthorized}
	ErrForbidden          = &AppError{Code: "FORBIDDEN", Message: "Access denied", StatusCode: http.StatusForbidden}
)

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// User errors.
var (
	ErrUserNotFound   = &AppError{Code: "USER_NOT_FOUND", Message: "User not found", StatusCode: http.StatusNotFound}
	ErrDuplicateEmail = &AppError{Code: "DUPLICATE_EMAIL", Message: "A user with this email already exists", StatusCode: http.StatusConflict}
)

// Budget errors.
var (
	ErrBudgetNotFound      = &AppError{Code: "BUDGET_NOT_FOUND", Message: "Budget not found", StatusCode: http.StatusNotFound}
	ErrInvalidBudgetType   = &AppError{Code: "INVALID_BUDGET_TYPE", Message: "Budget type must be weekly, monthly, multi-month or yearly", StatusCode: http.StatusBadRequest}
	ErrInvalidBudgetPeriod = &AppError{Code: "INVALID_BUDGET_PERIOD", Message: "Budget period fields do not match the budget type", StatusCode: http.StatusBadRequest}
)

// Expense errors.
var (
	ErrExpenseNotFound = &AppError{Code: "EXPENSE_NOT_FOUND", Message: "Expense not found", StatusCode: http.StatusNotFound}
)

// Expense type errors.
var (
	ErrExpenseTypeNotFound  = &AppError{Code: "EXPENSE_TYPE_NOT_FOUND", Message: "Expense type not found", StatusCode: http.StatusNotFound}
	ErrDuplicateExpenseType = &AppError{Code: "DUPLICATE_EXPENSE_TYPE", Message: "An expense type with this name already exists", StatusCode: http.StatusConflict}
)

// Template errors.
var (
	ErrTemplateNotFound = &AppError{Code: "TEMPLATE_NOT_FOUND", Message: "Template not found", StatusCode: http.StatusNotFound}
)

// Natural-language parsing errors.
var (
	ErrParseUnavailable = &AppError{Code: "PARSE_UNAVAILABLE", Message: "The parsing service is currently unavailable", StatusCode: http.StatusBadGateway}
	ErrParseFailed      = &AppError{Code: "PARSE_FAILED", Message: "Could not extract structured data from the given text", StatusCode: http.StatusUnprocessableEntity}
)
