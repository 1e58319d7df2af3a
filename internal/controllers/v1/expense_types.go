package v1

import (
	"time"

	"github.com/expenseledger/backend/internal/expenses"
	"github.com/expenseledger/backend/internal/models"
	"github.com/expenseledger/backend/internal/types"
	ez_uuid "github.com/expenseledger/backend/internal/uuid"
	"github.com/shopspring/decimal"
)

type URIID struct {
	ID ez_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

// ExpenseEditable represents all caller configurable parameters of an expense
type ExpenseEditable struct {
	Amount      decimal.Decimal `json:"amount" example:"14.03"`                 // The amount, greater than zero
	Category    models.Category `json:"category" example:"Food"`                // One of the fixed categories
	Description string          `json:"description" example:"Lunch" default:""` // Optional description, up to 255 characters
	Date        types.Date      `json:"date" example:"2022-03-17"`              // The calendar date of the expense
}

// payload returns the engine payload for the API representation
func (editable ExpenseEditable) payload() expenses.CreatePayload {
	return expenses.CreatePayload{
		Amount:      editable.Amount,
		Category:    editable.Category,
		Description: editable.Description,
		Date:        editable.Date,
	}
}

// ExpenseUpdate contains the fields of a partial expense update.
// Fields that are not part of the request body stay unchanged.
type ExpenseUpdate struct {
	Amount      *decimal.Decimal `json:"amount" example:"14.03"`
	Category    *models.Category `json:"category" example:"Food"`
	Description *string          `json:"description" example:"Lunch"`
	Date        *types.Date      `json:"date" example:"2022-03-17"`
}

func (update ExpenseUpdate) payload() expenses.UpdatePayload {
	return expenses.UpdatePayload{
		Amount:      update.Amount,
		Category:    update.Category,
		Description: update.Description,
		Date:        update.Date,
	}
}

// Expense is the representation of an Expense in API v1.
type Expense struct {
	models.DefaultModel
	ExpenseEditable
}

// newExpense returns the API v1 representation of the resource
func newExpense(model models.Expense) Expense {
	return Expense{
		DefaultModel: model.DefaultModel,
		ExpenseEditable: ExpenseEditable{
			Amount:      model.Amount,
			Category:    model.Category,
			Description: model.Description,
			Date:        model.Date,
		},
	}
}

type ExpenseListResponse struct {
	Data []Expense           `json:"data"` // List of expenses
	Meta expenses.Pagination `json:"meta"` // Pagination information
}

type ExpenseQueryFilter struct {
	Page      int             `form:"page,default=1" binding:"min=1"`                     // The 1-based page to return. Defaults to 1.
	PerPage   int             `form:"per_page,default=20" binding:"min=1,max=100"`        // Number of expenses per page, at most 100. Defaults to 20.
	Category  models.Category `form:"category"`                                           // Only expenses of this category
	StartDate time.Time       `form:"start_date" time_format:"2006-01-02" time_utc:"1"`   // Only expenses at or after this date
	EndDate   time.Time       `form:"end_date" time_format:"2006-01-02" time_utc:"1"`     // Only expenses at or before this date
}

// model returns the engine filter for the query parameters
func (f ExpenseQueryFilter) model() models.ExpenseFilter {
	filter := models.ExpenseFilter{
		Category: f.Category,
	}

	if !f.StartDate.IsZero() {
		filter.From = types.DateOf(f.StartDate)
	}

	if !f.EndDate.IsZero() {
		filter.Until = types.DateOf(f.EndDate)
	}

	return filter
}
