package v1

import (
	"net/http"

	"github.com/expenseledger/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

type MonthlySummaryQuery struct {
	Year  int `form:"year" binding:"required,min=2000,max=2100"` // The calendar year to summarize
	Month int `form:"month" binding:"required,min=1,max=12"`     // The month of the year to summarize
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Summaries
// @Success		204
// @Router			/v1/summary/monthly [options]
func OptionsMonthlySummary(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Monthly summary
// @Description	Returns the per-category breakdown and the grand total of the authenticated user's expenses for one calendar month
// @Tags			Summaries
// @Produce		json
// @Success		200		{object}	expenses.MonthlySummary
// @Failure		400		{object}	ErrorResponse
// @Failure		401		{object}	ErrorResponse
// @Param			year	query		int	true	"The calendar year, 2000-2100"
// @Param			month	query		int	true	"The month of the year, 1-12"
// @Router			/v1/summary/monthly [get]
func (co Controller) GetMonthlySummary(c *gin.Context) {
	var query MonthlySummaryQuery
	if err := c.ShouldBind(&query); err != nil {
		c.JSON(http.StatusBadRequest, newErrorResponse(httputil.ErrInvalidQuery))
		return
	}

	summary, err := co.Service.SummarizeMonth(currentUserID(c), query.Year, query.Month)
	if err != nil {
		c.JSON(status(err), newErrorResponse(err))
		return
	}

	c.JSON(http.StatusOK, summary)
}
