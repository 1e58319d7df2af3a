package v1_test

import (
	"net/http"

	"github.com/expenseledger/backend/internal/expenses"
	"github.com/expenseledger/backend/internal/models"
	"github.com/expenseledger/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestOptionsMonthlySummary() {
	recorder := test.Request(suite.T(), suite.router, http.MethodOptions, "http://example.com/v1/summary/monthly", "", asAlice())
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &recorder)
	suite.Assert().Equal("GET", recorder.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestGetMonthlySummary() {
	_ = suite.createTestExpense(`{"amount": 50.10, "category": "Food", "date": "2022-03-01"}`, asAlice())
	_ = suite.createTestExpense(`{"amount": 30.20, "category": "Food", "date": "2022-03-31"}`, asAlice())
	_ = suite.createTestExpense(`{"amount": 19.70, "category": "Transport", "date": "2022-03-17"}`, asAlice())

	// Outside the month and for another user, neither contributes
	_ = suite.createTestExpense(`{"amount": 99.99, "category": "Food", "date": "2022-04-01"}`, asAlice())
	_ = suite.createTestExpense(`{"amount": 11.11, "category": "Food", "date": "2022-03-17"}`, asBob())

	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "http://example.com/v1/summary/monthly?year=2022&month=3", "", asAlice())
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var summary expenses.MonthlySummary
	test.DecodeResponse(suite.T(), &recorder, &summary)

	suite.Assert().Equal(2022, summary.Year)
	suite.Assert().Equal(3, summary.Month)

	if suite.Assert().Len(summary.Categories, 2) {
		suite.Assert().Equal(models.CategoryFood, summary.Categories[0].Category)
		suite.Assert().True(summary.Categories[0].Total.Equal(decimal.RequireFromString("80.30")), "Food total is %s, expected 80.30", summary.Categories[0].Total)
		suite.Assert().Equal(models.CategoryTransport, summary.Categories[1].Category)
		suite.Assert().True(summary.Categories[1].Total.Equal(decimal.RequireFromString("19.70")), "Transport total is %s, expected 19.70", summary.Categories[1].Total)
	}

	suite.Assert().True(summary.GrandTotal.Equal(decimal.RequireFromString("100.00")), "grand total is %s, expected 100.00", summary.GrandTotal)
}

func (suite *TestSuiteStandard) TestGetMonthlySummaryEmpty() {
	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "http://example.com/v1/summary/monthly?year=2022&month=3", "", asAlice())
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var summary expenses.MonthlySummary
	test.DecodeResponse(suite.T(), &recorder, &summary)

	suite.Assert().Len(summary.Categories, 0)
	suite.Assert().True(summary.GrandTotal.IsZero())
}

func (suite *TestSuiteStandard) TestGetMonthlySummaryInvalidQuery() {
	tests := []string{
		"",
		"year=2022",
		"month=3",
		"year=2022&month=0",
		"year=2022&month=13",
		"year=1999&month=3",
		"year=twenty-twenty-two&month=3",
	}

	for _, query := range tests {
		recorder := test.Request(suite.T(), suite.router, http.MethodGet, "http://example.com/v1/summary/monthly?"+query, "", asAlice())
		suite.Assert().Equal(http.StatusBadRequest, recorder.Code, "query %q must be rejected", query)
	}
}
