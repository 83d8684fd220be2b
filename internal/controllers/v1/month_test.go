package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/envelope-zero/ledger/internal/controllers/v1"
	"github.com/envelope-zero/ledger/internal/ledger"
	"github.com/envelope-zero/ledger/internal/models"
	"github.com/envelope-zero/ledger/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// TestMonthNavigation verifies that navigating creates months and keeps the
// numbers of existing months.
func (suite *TestSuiteStandard) TestMonthNavigation() {
	budgetID, accountID := setupBudget(suite.T())
	_ = assign(suite.T(), v1.AssignedEditable{BudgetID: budgetID, Month: "2024-01", Category: "Groceries", Assigned: "200"})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{AccountID: accountID, Date: "2024-02-10", Category: "Groceries", Amount: decimal.NewFromInt(-50)})

	february := getMonth(suite.T(), budgetID, "2024-02", ledger.Forward)
	suite.Assert().Equal("2024-02", february.Month)
	suite.Assert().Equal(budgetID, february.BudgetID)

	groceries := item(suite.T(), february, "Groceries")
	assertDecimal(suite.T(), "0", groceries.Assigned)
	assertDecimal(suite.T(), "-50", groceries.Activity)
	assertDecimal(suite.T(), "150", groceries.Available)
	assertDecimal(suite.T(), "800", february.ReadyToAssign)

	// The category keeps its identity across months
	january := getMonth(suite.T(), budgetID, "2024-01", ledger.Backward)
	suite.Assert().Equal(item(suite.T(), january, "Groceries").ID, groceries.ID)
	assertDecimal(suite.T(), "200", item(suite.T(), january, "Groceries").Assigned)

	// Going backward to a new month copies the structure with nothing in it
	december := getMonth(suite.T(), budgetID, "2023-12", ledger.Backward)
	assertDecimal(suite.T(), "0", item(suite.T(), december, "Groceries").Available)

	var count int64
	err := models.DB.Model(&models.MonthRecord{}).Where(&models.MonthRecord{BudgetID: budgetID}).Count(&count).Error
	suite.Require().Nil(err)
	suite.Assert().Equal(int64(3), count)
}

// TestMonthNavigationIdempotent verifies that visiting a month twice returns
// the same data.
func (suite *TestSuiteStandard) TestMonthNavigationIdempotent() {
	budgetID, _ := setupBudget(suite.T())
	_ = assign(suite.T(), v1.AssignedEditable{BudgetID: budgetID, Month: "2024-01", Category: "Groceries", Assigned: "80"})

	first := getMonth(suite.T(), budgetID, "2024-01", ledger.Forward)
	second := getMonth(suite.T(), budgetID, "2024-01", ledger.Forward)

	a, b := item(suite.T(), first, "Groceries"), item(suite.T(), second, "Groceries")
	suite.Assert().Equal(a.ID, b.ID)
	assertDecimal(suite.T(), a.Assigned.String(), b.Assigned)
	assertDecimal(suite.T(), a.Available.String(), b.Available)
	assertDecimal(suite.T(), "920", second.ReadyToAssign)
}

func (suite *TestSuiteStandard) TestMonthFails() {
	budgetID := createTestBudget(suite.T(), v1.BudgetEditable{}).Data.ID

	tests := []struct {
		name   string
		query  string
		status int
	}{
		{"No budget", "month=2024-01", http.StatusBadRequest},
		{"Budget not a UUID", "budget=NotParseableAsUUID&month=2024-01", http.StatusBadRequest},
		{"No month", fmt.Sprintf("budget=%s", budgetID), http.StatusBadRequest},
		{"Invalid month", fmt.Sprintf("budget=%s&month=2024-1", budgetID), http.StatusBadRequest},
		{"Invalid direction", fmt.Sprintf("budget=%s&month=2024-01&direction=sideways", budgetID), http.StatusBadRequest},
		{"Budget does not exist", fmt.Sprintf("budget=%s&month=2024-01", uuid.New()), http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/months?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.MonthResponse
			test.DecodeResponse(t, &r, &response)
			assert.NotNil(t, response.Error)
		})
	}
}

func (suite *TestSuiteStandard) TestMonthReadyToAssign() {
	budgetID, accountID := setupBudget(suite.T())
	_ = assign(suite.T(), v1.AssignedEditable{BudgetID: budgetID, Month: "2024-01", Category: "Groceries", Assigned: "250"})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{AccountID: accountID, Date: "2024-03-01", Category: ledger.ReadyToAssignCategory, Amount: decimal.NewFromInt(400)})

	tests := []struct {
		month string
		rta   string
	}{
		{"2023-12", "0"},
		{"2024-01", "750"},
		{"2024-03", "1150"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.month, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/months/ready-to-assign?budget=%s&month=%s", budgetID, tt.month), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.ReadyToAssignResponse
			test.DecodeResponse(t, &r, &response)
			assertDecimal(t, tt.rta, response.Data.ReadyToAssign)
		})
	}

	// Nothing is saved
	var count int64
	err := models.DB.Model(&models.MonthRecord{}).Where(&models.MonthRecord{BudgetID: budgetID}).Count(&count).Error
	suite.Require().Nil(err)
	suite.Assert().Equal(int64(1), count)
}

func (suite *TestSuiteStandard) TestMonthAssigned() {
	budgetID, _ := setupBudget(suite.T())

	tests := []struct {
		name     string
		assigned string
		expected string
	}{
		{"Number", "123.45", "123.45"},
		{"Negative", "-20", "-20"},
		{"Not a number", "lots", "0"},
		{"Empty", "", "0"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			response := assign(t, v1.AssignedEditable{BudgetID: budgetID, Month: "2024-01", Category: "Groceries", Assigned: tt.assigned})
			assertDecimal(t, tt.expected, item(t, *response.Data, "Groceries").Assigned)

			expectedRTA := decimal.NewFromInt(1000).Sub(decimal.RequireFromString(tt.expected))
			assertDecimal(t, expectedRTA.String(), response.Data.ReadyToAssign)
		})
	}
}

func (suite *TestSuiteStandard) TestMonthAssignedFails() {
	budgetID, _ := setupBudget(suite.T())

	tests := []struct {
		name     string
		assigned v1.AssignedEditable
		status   int
		err      error
	}{
		{"No budget", v1.AssignedEditable{Month: "2024-01", Category: "Groceries"}, http.StatusBadRequest, nil},
		{"No category", v1.AssignedEditable{BudgetID: budgetID, Month: "2024-01"}, http.StatusBadRequest, nil},
		{"Invalid month", v1.AssignedEditable{BudgetID: budgetID, Month: "January", Category: "Groceries"}, http.StatusBadRequest, nil},
		{"Month does not exist", v1.AssignedEditable{BudgetID: budgetID, Month: "2025-01", Category: "Groceries"}, http.StatusNotFound, ledger.ErrMonthNotFound},
		{"Category does not exist", v1.AssignedEditable{BudgetID: budgetID, Month: "2024-01", Category: "Rent"}, http.StatusNotFound, ledger.ErrCategoryNotFound},
		{"Budget does not exist", v1.AssignedEditable{BudgetID: uuid.New(), Month: "2024-01", Category: "Groceries"}, http.StatusNotFound, models.ErrResourceNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			response := assign(t, tt.assigned, tt.status)
			if tt.err != nil {
				assert.Contains(t, *response.Error, tt.err.Error())
			}
		})
	}
}

// TestMonthDBClosed verifies that errors are processed correctly when
// the database is closed.
func (suite *TestSuiteStandard) TestMonthDBClosed() {
	budgetID, _ := setupBudget(suite.T())
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/months?budget=%s&month=2024-01", budgetID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)

	r = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/months/ready-to-assign?budget=%s&month=2024-01", budgetID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}

func (suite *TestSuiteStandard) TestMonthOptions() {
	tests := []struct {
		path  string
		allow string
	}{
		{"http://example.com/v1/months", "OPTIONS, GET"},
		{"http://example.com/v1/months/ready-to-assign", "OPTIONS, GET"},
		{"http://example.com/v1/months/assigned", "OPTIONS, PATCH"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.path, func(t *testing.T) {
			r := test.Request(t, http.MethodOptions, tt.path, "")
			test.AssertHTTPStatus(t, &r, http.StatusNoContent)
			assert.Equal(t, tt.allow, r.Header().Get("allow"))
		})
	}
}
