package expenses

import (
	"github.com/expenseledger/backend/internal/models"
	"github.com/expenseledger/backend/internal/types"
	"github.com/shopspring/decimal"
)

// Violation messages, reused between create and update validation.
const (
	msgAmountNotPositive  = "must be greater than zero"
	msgDescriptionTooLong = "must be 255 characters or less"
	msgCategoryInvalid    = "must be one of the valid categories"
	msgDateNotSet         = "must be a calendar date"
)

// CreatePayload contains all caller configurable fields of a new expense.
type CreatePayload struct {
	Amount      decimal.Decimal
	Category    models.Category
	Description string
	Date        types.Date
}

// Validate checks the payload against the expense invariants. On
// failure it returns a ValidationError naming every offending field.
func (p CreatePayload) Validate() error {
	var fields []FieldError

	if !models.PositiveAmount(p.Amount) {
		fields = append(fields, FieldError{Field: "amount", Message: msgAmountNotPositive})
	}

	if !p.Category.Valid() {
		fields = append(fields, FieldError{Field: "category", Message: msgCategoryInvalid})
	}

	if !models.ValidDescriptionLength(p.Description) {
		fields = append(fields, FieldError{Field: "description", Message: msgDescriptionTooLong})
	}

	if p.Date.IsZero() {
		fields = append(fields, FieldError{Field: "date", Message: msgDateNotSet})
	}

	if len(fields) > 0 {
		return ValidationError{Fields: fields}
	}

	return nil
}

// UpdatePayload contains the fields of a partial expense update.
//
// A nil field means "leave unchanged". There is no way to clear a
// field, values can only be replaced.
type UpdatePayload struct {
	Amount      *decimal.Decimal
	Category    *models.Category
	Description *string
	Date        *types.Date
}

// Validate checks all supplied fields against the expense invariants.
// Absent fields are not validated. On failure it returns a
// ValidationError naming every offending field.
func (p UpdatePayload) Validate() error {
	var fields []FieldError

	if p.Amount != nil && !models.PositiveAmount(*p.Amount) {
		fields = append(fields, FieldError{Field: "amount", Message: msgAmountNotPositive})
	}

	if p.Category != nil && !p.Category.Valid() {
		fields = append(fields, FieldError{Field: "category", Message: msgCategoryInvalid})
	}

	if p.Description != nil && !models.ValidDescriptionLength(*p.Description) {
		fields = append(fields, FieldError{Field: "description", Message: msgDescriptionTooLong})
	}

	if p.Date != nil && p.Date.IsZero() {
		fields = append(fields, FieldError{Field: "date", Message: msgDateNotSet})
	}

	if len(fields) > 0 {
		return ValidationError{Fields: fields}
	}

	return nil
}

// apply copies the supplied fields onto the expense.
func (p UpdatePayload) apply(expense *models.Expense) {
	if p.Amount != nil {
		expense.Amount = *p.Amount
	}

	if p.Category != nil {
		expense.Category = *p.Category
	}

	if p.Description != nil {
		expense.Description = *p.Description
	}

	if p.Date != nil {
		expense.Date = *p.Date
	}
}
