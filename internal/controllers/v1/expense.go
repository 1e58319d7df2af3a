package v1

import (
	"net/http"

	"github.com/expenseledger/backend/internal/expenses"
	"github.com/expenseledger/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Router			/v1/expenses [options]
func OptionsExpenseList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Failure		400	{object}	ErrorResponse
// @Failure		404	{object}	ErrorResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/expenses/{id} [options]
func (co Controller) OptionsExpenseDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), newErrorResponse(err))
		return
	}

	_, err = co.Service.Get(currentUserID(c), uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), newErrorResponse(err))
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create expense
// @Description	Creates a new expense owned by the authenticated user
// @Tags			Expenses
// @Accept			json
// @Produce		json
// @Success		201		{object}	Expense
// @Failure		400		{object}	ErrorResponse
// @Failure		401		{object}	ErrorResponse
// @Failure		422		{object}	ErrorResponse
// @Param			expense	body		ExpenseEditable	true	"Expense"
// @Router			/v1/expenses [post]
func (co Controller) CreateExpense(c *gin.Context) {
	var editable ExpenseEditable

	if err := httputil.BindData(c, &editable); err != nil {
		c.JSON(http.StatusBadRequest, newErrorResponse(err))
		return
	}

	expense, err := co.Service.Create(currentUserID(c), editable.payload())
	if err != nil {
		c.JSON(status(err), newErrorResponse(err))
		return
	}

	c.JSON(http.StatusCreated, newExpense(expense))
}

// @Summary		Get expenses
// @Description	Returns a paginated list of the authenticated user's expenses
// @Tags			Expenses
// @Produce		json
// @Success		200	{object}	ExpenseListResponse
// @Failure		400	{object}	ErrorResponse
// @Failure		401	{object}	ErrorResponse
// @Router			/v1/expenses [get]
// @Param			page		query	int		false	"The 1-based page to return. Defaults to 1."
// @Param			per_page	query	int		false	"Number of expenses per page, at most 100. Defaults to 20."
// @Param			category	query	string	false	"Only expenses of this category"
// @Param			start_date	query	string	false	"Only expenses at or after this date (YYYY-MM-DD)"
// @Param			end_date	query	string	false	"Only expenses at or before this date (YYYY-MM-DD)"
func (co Controller) GetExpenses(c *gin.Context) {
	var filter ExpenseQueryFilter
	if err := c.ShouldBind(&filter); err != nil {
		c.JSON(http.StatusBadRequest, newErrorResponse(httputil.ErrInvalidQuery))
		return
	}

	if filter.Category != "" && !filter.Category.Valid() {
		c.JSON(http.StatusBadRequest, newErrorResponse(errCategoryUnknown))
		return
	}

	list, total, err := co.Service.List(currentUserID(c), filter.model(), expenses.PageFor(filter.Page, filter.PerPage))
	if err != nil {
		c.JSON(status(err), newErrorResponse(err))
		return
	}

	data := make([]Expense, 0, len(list))
	for _, expense := range list {
		data = append(data, newExpense(expense))
	}

	c.JSON(http.StatusOK, ExpenseListResponse{
		Data: data,
		Meta: expenses.NewPagination(filter.Page, filter.PerPage, total),
	})
}

// @Summary		Get expense
// @Description	Returns a specific expense of the authenticated user
// @Tags			Expenses
// @Produce		json
// @Success		200	{object}	Expense
// @Failure		400	{object}	ErrorResponse
// @Failure		401	{object}	ErrorResponse
// @Failure		404	{object}	ErrorResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/expenses/{id} [get]
func (co Controller) GetExpense(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), newErrorResponse(err))
		return
	}

	expense, err := co.Service.Get(currentUserID(c), uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), newErrorResponse(err))
		return
	}

	c.JSON(http.StatusOK, newExpense(expense))
}

// @Summary		Update expense
// @Description	Updates an existing expense. Only values to be updated need to be specified.
// @Tags			Expenses
// @Accept			json
// @Produce		json
// @Success		200		{object}	Expense
// @Failure		400		{object}	ErrorResponse
// @Failure		401		{object}	ErrorResponse
// @Failure		404		{object}	ErrorResponse
// @Failure		422		{object}	ErrorResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			expense	body		ExpenseUpdate	true	"Expense"
// @Router			/v1/expenses/{id} [patch]
func (co Controller) UpdateExpense(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), newErrorResponse(err))
		return
	}

	var update ExpenseUpdate
	if err := httputil.BindData(c, &update); err != nil {
		c.JSON(http.StatusBadRequest, newErrorResponse(err))
		return
	}

	expense, err := co.Service.Update(currentUserID(c), uri.ID.UUID, update.payload())
	if err != nil {
		c.JSON(status(err), newErrorResponse(err))
		return
	}

	c.JSON(http.StatusOK, newExpense(expense))
}

// @Summary		Delete expense
// @Description	Permanently deletes an expense of the authenticated user
// @Tags			Expenses
// @Success		204
// @Failure		400	{object}	ErrorResponse
// @Failure		401	{object}	ErrorResponse
// @Failure		404	{object}	ErrorResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/expenses/{id} [delete]
func (co Controller) DeleteExpense(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), newErrorResponse(err))
		return
	}

	err = co.Service.Delete(currentUserID(c), uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), newErrorResponse(err))
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
