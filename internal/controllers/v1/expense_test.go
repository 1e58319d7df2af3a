package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/expenseledger/backend/internal/controllers/v1"
	"github.com/expenseledger/backend/internal/models"
	"github.com/expenseledger/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestOptionsExpenseList() {
	recorder := test.Request(suite.T(), suite.router, http.MethodOptions, "http://example.com/v1/expenses", "", asAlice())
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &recorder)
	suite.Assert().Equal("GET, POST", recorder.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestOptionsExpenseDetail() {
	expense := suite.createTestExpense(`{"amount": 14.03, "category": "Food", "date": "2022-03-17"}`, asAlice())

	recorder := test.Request(suite.T(), suite.router, http.MethodOptions, "http://example.com/v1/expenses/"+expense.ID.String(), "", asAlice())
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &recorder)
	suite.Assert().Equal("GET, PATCH, DELETE", recorder.Header().Get("allow"))

	recorder = test.Request(suite.T(), suite.router, http.MethodOptions, "http://example.com/v1/expenses/"+uuid.New().String(), "", asAlice())
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &recorder)
}

func (suite *TestSuiteStandard) TestCreateExpense() {
	recorder := test.Request(suite.T(), suite.router, http.MethodPost, "http://example.com/v1/expenses", `{"amount": 14.03, "category": "Food", "description": "Lunch", "date": "2022-03-17"}`, asAlice())
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &recorder)

	var expense v1.Expense
	test.DecodeResponse(suite.T(), &recorder, &expense)

	suite.Assert().NotEqual(uuid.Nil, expense.ID)
	suite.Assert().True(expense.Amount.Equal(decimal.NewFromFloat(14.03)), "amount is %s, expected 14.03", expense.Amount)
	suite.Assert().Equal(models.CategoryFood, expense.Category)
	suite.Assert().Equal("Lunch", expense.Description)
	suite.Assert().Equal("2022-03-17", expense.Date.String())
	suite.Assert().False(expense.CreatedAt.IsZero())
}

func (suite *TestSuiteStandard) TestCreateExpenseInvalid() {
	recorder := test.Request(suite.T(), suite.router, http.MethodPost, "http://example.com/v1/expenses", `{"amount": 0, "category": "Gambling", "date": "2022-03-17"}`, asAlice())
	test.AssertHTTPStatus(suite.T(), http.StatusUnprocessableEntity, &recorder)

	var response v1.ErrorResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Len(response.Fields, 2, "all violated fields are reported, got %v", response.Fields)
}

func (suite *TestSuiteStandard) TestCreateExpenseBodyEmpty() {
	recorder := test.Request(suite.T(), suite.router, http.MethodPost, "http://example.com/v1/expenses", "", asAlice())
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)
}

func (suite *TestSuiteStandard) TestCreateExpenseBodyInvalid() {
	recorder := test.Request(suite.T(), suite.router, http.MethodPost, "http://example.com/v1/expenses", `{ "amount": `, asAlice())
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)
}

func (suite *TestSuiteStandard) TestGetExpenses() {
	for day := 1; day <= 3; day++ {
		_ = suite.createTestExpense(fmt.Sprintf(`{"amount": 10, "category": "Food", "date": "2022-03-0%d"}`, day), asAlice())
	}

	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "http://example.com/v1/expenses?per_page=2", "", asAlice())
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.ExpenseListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().Len(response.Data, 2)
	suite.Assert().Equal(1, response.Meta.Page)
	suite.Assert().Equal(2, response.Meta.PerPage)
	suite.Assert().Equal(int64(3), response.Meta.Total)
	suite.Assert().Equal(int64(2), response.Meta.TotalPages)

	// Newest first
	suite.Assert().Equal("2022-03-03", response.Data[0].Date.String())
	suite.Assert().Equal("2022-03-02", response.Data[1].Date.String())
}

func (suite *TestSuiteStandard) TestGetExpensesFiltered() {
	_ = suite.createTestExpense(`{"amount": 10, "category": "Food", "date": "2022-03-10"}`, asAlice())
	_ = suite.createTestExpense(`{"amount": 10, "category": "Transport", "date": "2022-03-10"}`, asAlice())
	_ = suite.createTestExpense(`{"amount": 10, "category": "Food", "date": "2022-04-01"}`, asAlice())

	tests := []struct {
		query string
		count int
	}{
		{"category=Food", 2},
		{"category=Transport", 1},
		{"start_date=2022-03-10&end_date=2022-03-31", 2},
		{"category=Food&start_date=2022-04-01", 1},
		{"end_date=2022-03-09", 0},
	}

	for _, tt := range tests {
		recorder := test.Request(suite.T(), suite.router, http.MethodGet, "http://example.com/v1/expenses?"+tt.query, "", asAlice())
		test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

		var response v1.ExpenseListResponse
		test.DecodeResponse(suite.T(), &recorder, &response)
		suite.Assert().Len(response.Data, tt.count, "wrong number of expenses for query %q", tt.query)
	}
}

func (suite *TestSuiteStandard) TestGetExpensesInvalidQuery() {
	tests := []string{
		"category=Gambling",
		"page=0",
		"per_page=101",
		"start_date=17.03.2022",
	}

	for _, query := range tests {
		recorder := test.Request(suite.T(), suite.router, http.MethodGet, "http://example.com/v1/expenses?"+query, "", asAlice())
		suite.Assert().Equal(http.StatusBadRequest, recorder.Code, "query %q must be rejected", query)
	}
}

func (suite *TestSuiteStandard) TestGetExpensesIsolated() {
	_ = suite.createTestExpense(`{"amount": 10, "category": "Food", "date": "2022-03-10"}`, asBob())

	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "http://example.com/v1/expenses", "", asAlice())
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.ExpenseListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Len(response.Data, 0)
	suite.Assert().Equal(int64(0), response.Meta.Total)
}

func (suite *TestSuiteStandard) TestGetExpense() {
	expense := suite.createTestExpense(`{"amount": 14.03, "category": "Food", "date": "2022-03-17"}`, asAlice())

	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "http://example.com/v1/expenses/"+expense.ID.String(), "", asAlice())
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var fetched v1.Expense
	test.DecodeResponse(suite.T(), &recorder, &fetched)
	suite.Assert().Equal(expense.ID, fetched.ID)
	suite.Assert().True(fetched.Amount.Equal(expense.Amount))
}

func (suite *TestSuiteStandard) TestGetExpenseNotFound() {
	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "http://example.com/v1/expenses/"+uuid.New().String(), "", asAlice())
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &recorder)
}

func (suite *TestSuiteStandard) TestGetExpenseOtherUser() {
	expense := suite.createTestExpense(`{"amount": 14.03, "category": "Food", "date": "2022-03-17"}`, asBob())

	// For everyone but the owner the expense does not exist
	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "http://example.com/v1/expenses/"+expense.ID.String(), "", asAlice())
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &recorder)
}

func (suite *TestSuiteStandard) TestGetExpenseInvalidID() {
	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "http://example.com/v1/expenses/not-a-uuid", "", asAlice())
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)
}

func (suite *TestSuiteStandard) TestUpdateExpense() {
	expense := suite.createTestExpense(`{"amount": 14.03, "category": "Food", "description": "Lunch", "date": "2022-03-17"}`, asAlice())

	recorder := test.Request(suite.T(), suite.router, http.MethodPatch, "http://example.com/v1/expenses/"+expense.ID.String(), `{"description": "Dinner"}`, asAlice())
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var updated v1.Expense
	test.DecodeResponse(suite.T(), &recorder, &updated)

	suite.Assert().Equal("Dinner", updated.Description)

	// Fields not in the body stay unchanged
	suite.Assert().True(updated.Amount.Equal(decimal.NewFromFloat(14.03)))
	suite.Assert().Equal(models.CategoryFood, updated.Category)
	suite.Assert().Equal("2022-03-17", updated.Date.String())
}

func (suite *TestSuiteStandard) TestUpdateExpenseInvalid() {
	expense := suite.createTestExpense(`{"amount": 14.03, "category": "Food", "date": "2022-03-17"}`, asAlice())

	recorder := test.Request(suite.T(), suite.router, http.MethodPatch, "http://example.com/v1/expenses/"+expense.ID.String(), `{"amount": -1}`, asAlice())
	test.AssertHTTPStatus(suite.T(), http.StatusUnprocessableEntity, &recorder)
}

func (suite *TestSuiteStandard) TestUpdateExpenseNotFound() {
	recorder := test.Request(suite.T(), suite.router, http.MethodPatch, "http://example.com/v1/expenses/"+uuid.New().String(), `{"description": "Dinner"}`, asAlice())
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &recorder)
}

func (suite *TestSuiteStandard) TestUpdateExpenseOtherUser() {
	expense := suite.createTestExpense(`{"amount": 14.03, "category": "Food", "date": "2022-03-17"}`, asBob())

	recorder := test.Request(suite.T(), suite.router, http.MethodPatch, "http://example.com/v1/expenses/"+expense.ID.String(), `{"description": "Hijacked"}`, asAlice())
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &recorder)
}

func (suite *TestSuiteStandard) TestDeleteExpense() {
	expense := suite.createTestExpense(`{"amount": 14.03, "category": "Food", "date": "2022-03-17"}`, asAlice())

	recorder := test.Request(suite.T(), suite.router, http.MethodDelete, "http://example.com/v1/expenses/"+expense.ID.String(), "", asAlice())
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &recorder)

	recorder = test.Request(suite.T(), suite.router, http.MethodGet, "http://example.com/v1/expenses/"+expense.ID.String(), "", asAlice())
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &recorder)

	// Deleting again is not a second success
	recorder = test.Request(suite.T(), suite.router, http.MethodDelete, "http://example.com/v1/expenses/"+expense.ID.String(), "", asAlice())
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &recorder)
}

func (suite *TestSuiteStandard) TestDeleteExpenseOtherUser() {
	expense := suite.createTestExpense(`{"amount": 14.03, "category": "Food", "date": "2022-03-17"}`, asBob())

	recorder := test.Request(suite.T(), suite.router, http.MethodDelete, "http://example.com/v1/expenses/"+expense.ID.String(), "", asAlice())
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &recorder)

	// Still there for its owner
	recorder = test.Request(suite.T(), suite.router, http.MethodGet, "http://example.com/v1/expenses/"+expense.ID.String(), "", asBob())
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)
}
