// Package v1 implements the v1 API of the expense ledger.
package v1

import (
	"github.com/expenseledger/backend/internal/expenses"
	"github.com/expenseledger/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// Controller holds the collaborators of the v1 API handlers.
type Controller struct {
	Service *expenses.Service
	Store   *models.Store
}

// RegisterExpenseRoutes registers the routes for expenses with
// the RouterGroup that is passed.
func (co Controller) RegisterExpenseRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsExpenseList)
		r.GET("", co.GetExpenses)
		r.POST("", co.CreateExpense)
	}

	// Expense with ID
	{
		r.OPTIONS("/:id", co.OptionsExpenseDetail)
		r.GET("/:id", co.GetExpense)
		r.PATCH("/:id", co.UpdateExpense)
		r.DELETE("/:id", co.DeleteExpense)
	}
}

// RegisterSummaryRoutes registers the routes for summaries with
// the RouterGroup that is passed.
func (co Controller) RegisterSummaryRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/monthly", OptionsMonthlySummary)
	r.GET("/monthly", co.GetMonthlySummary)
}
