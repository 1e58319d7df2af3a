package v1

import (
	"errors"
	"net/http"

	"github.com/expenseledger/backend/internal/expenses"
	"github.com/expenseledger/backend/internal/models"
)

var (
	errAPIKeyInvalid   = errors.New("the API key is missing or unknown")
	errCategoryUnknown = errors.New("the category query parameter is not a valid category")
)

// status returns the appropriate HTTP status for an engine or database error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	if errors.Is(err, expenses.ErrValidation) {
		return http.StatusUnprocessableEntity
	}

	return http.StatusBadRequest
}

// newErrorResponse builds the error body for an error. Validation
// failures carry the list of violated fields so that callers can fix
// all of them in one resubmission.
func newErrorResponse(err error) ErrorResponse {
	response := ErrorResponse{
		Error: err.Error(),
	}

	var validationError expenses.ValidationError
	if errors.As(err, &validationError) {
		response.Fields = validationError.Fields
	}

	return response
}

// ErrorResponse is the body of every error response.
type ErrorResponse struct {
	Error  string                `json:"error" example:"there is no expense matching your query"` // Human readable description of the error
	Fields []expenses.FieldError `json:"fields,omitempty"`                                        // The violated fields for validation errors
}
