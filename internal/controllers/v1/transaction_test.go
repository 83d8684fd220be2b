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

// TestTransactionsRecalculate verifies that every change to transactions
// updates the activity of the months.
func (suite *TestSuiteStandard) TestTransactionsRecalculate() {
	budgetID, accountID := setupBudget(suite.T())
	_ = assign(suite.T(), v1.AssignedEditable{BudgetID: budgetID, Month: "2024-01", Category: "Groceries", Assigned: "300"})

	tr := createTestTransaction(suite.T(), v1.TransactionEditable{
		AccountID:     accountID,
		Date:          "2024-01-10",
		Payee:         " Supermarket ",
		Category:      "Groceries",
		CategoryGroup: "Everyday",
		Amount:        decimal.RequireFromString("-120"),
	})
	suite.Assert().Equal("Supermarket", tr.Data.Payee)

	m := getMonth(suite.T(), budgetID, "2024-01", ledger.Forward)
	assertDecimal(suite.T(), "-120", item(suite.T(), m, "Groceries").Activity)
	assertDecimal(suite.T(), "180", item(suite.T(), m, "Groceries").Available)
	assertDecimal(suite.T(), "700", m.ReadyToAssign)

	// Update only the amount
	r := test.Request(suite.T(), http.MethodPatch, tr.Data.Links.Self, `{ "amount": "-150" }`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	assertDecimal(suite.T(), "-150", updated.Data.Amount)
	suite.Assert().Equal("Groceries", updated.Data.Category)
	suite.Assert().Equal("2024-01-10", updated.Data.Date)

	m = getMonth(suite.T(), budgetID, "2024-01", ledger.Forward)
	assertDecimal(suite.T(), "150", item(suite.T(), m, "Groceries").Available)

	// Delete it
	r = test.Request(suite.T(), http.MethodDelete, tr.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	m = getMonth(suite.T(), budgetID, "2024-01", ledger.Forward)
	assertDecimal(suite.T(), "0", item(suite.T(), m, "Groceries").Activity)
	assertDecimal(suite.T(), "300", item(suite.T(), m, "Groceries").Available)

	r = test.Request(suite.T(), http.MethodGet, tr.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

// TestTransactionsMoveAccount verifies that moving a transaction to an
// account in another budget recalculates both budgets.
func (suite *TestSuiteStandard) TestTransactionsMoveAccount() {
	budgetID, accountID := setupBudget(suite.T())
	otherBudgetID, otherAccountID := setupBudget(suite.T())

	tr := createTestTransaction(suite.T(), v1.TransactionEditable{AccountID: accountID, Date: "2024-01-02", Category: ledger.ReadyToAssignCategory, Amount: decimal.NewFromInt(500)})
	assertDecimal(suite.T(), "1500", getMonth(suite.T(), budgetID, "2024-01", ledger.Forward).ReadyToAssign)

	r := test.Request(suite.T(), http.MethodPatch, tr.Data.Links.Self, map[string]any{"accountId": otherAccountID})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var months []models.MonthRecord
	err := models.DB.Order("budget_id").Find(&months).Error
	suite.Require().Nil(err)

	for _, m := range months {
		switch m.BudgetID {
		case budgetID:
			assertDecimal(suite.T(), "1000", m.ReadyToAssign)
		case otherBudgetID:
			assertDecimal(suite.T(), "1500", m.ReadyToAssign)
		}
	}
}

func (suite *TestSuiteStandard) TestTransactionsCreateFails() {
	accountID := createTestAccount(suite.T(), v1.AccountEditable{}).Data.ID

	tests := []struct {
		name        string
		transaction v1.TransactionEditable
		status      int
		err         error
	}{
		{"Invalid date", v1.TransactionEditable{AccountID: accountID, Date: "15.01.2024"}, http.StatusBadRequest, models.ErrTransactionDateInvalid},
		{"No date", v1.TransactionEditable{AccountID: accountID}, http.StatusBadRequest, models.ErrTransactionDateInvalid},
		{"Account does not exist", v1.TransactionEditable{AccountID: uuid.New(), Date: "2024-01-15"}, http.StatusNotFound, models.ErrResourceNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/transactions", []v1.TransactionEditable{tt.transaction})
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.TransactionCreateResponse
			test.DecodeResponse(t, &r, &response)
			assert.Contains(t, *response.Data[0].Error, tt.err.Error())
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsUpdateFails() {
	_, accountID := setupBudget(suite.T())
	tr := createTestTransaction(suite.T(), v1.TransactionEditable{AccountID: accountID, Date: "2024-01-15", Category: "Groceries", Amount: decimal.NewFromInt(-10)})

	tests := []struct {
		name   string
		path   string
		body   any
		status int
	}{
		{"Invalid date", tr.Data.Links.Self, `{ "date": "2024-13-01" }`, http.StatusBadRequest},
		{"Broken body", tr.Data.Links.Self, `{ "amount": false }`, http.StatusBadRequest},
		{"Account does not exist", tr.Data.Links.Self, map[string]any{"accountId": uuid.New()}, http.StatusNotFound},
		{"Transaction does not exist", fmt.Sprintf("http://example.com/v1/transactions/%s", uuid.New()), `{}`, http.StatusNotFound},
		{"Not a UUID", "http://example.com/v1/transactions/NotParseableAsUUID", `{}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPatch, tt.path, tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsGet() {
	budgetID, accountID := setupBudget(suite.T())
	visaID := createTestAccount(suite.T(), v1.AccountEditable{BudgetID: budgetID, Name: "Visa", Kind: ledger.AccountKindCredit}).Data.ID
	_, otherAccountID := setupBudget(suite.T())

	_ = createTestTransaction(suite.T(), v1.TransactionEditable{AccountID: accountID, Date: "2024-02-03", Category: "Groceries", Amount: decimal.NewFromInt(-5)})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{AccountID: visaID, Date: "2024-01-20", Category: "Groceries", Amount: decimal.NewFromInt(-7)})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{AccountID: otherAccountID, Date: "2024-01-20", Category: "Groceries", Amount: decimal.NewFromInt(-9)})

	tests := []struct {
		name  string
		query string
		dates []string
	}{
		{"Account", fmt.Sprintf("account=%s", accountID), []string{"2024-01-01", "2024-02-03"}},
		{"Budget", fmt.Sprintf("budget=%s", budgetID), []string{"2024-01-01", "2024-01-20", "2024-02-03"}},
		{"Budget and month", fmt.Sprintf("budget=%s&month=2024-01", budgetID), []string{"2024-01-01", "2024-01-20"}},
		{"Account and month", fmt.Sprintf("account=%s&month=2024-03", accountID), []string{}},
		{"All", "", []string{"2024-01-01", "2024-01-01", "2024-01-20", "2024-01-20", "2024-02-03"}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.TransactionListResponse
			test.DecodeResponse(t, &r, &response)

			dates := make([]string, 0)
			for _, tr := range response.Data {
				dates = append(dates, tr.Date)
			}
			assert.Equal(t, tt.dates, dates)
		})
	}

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions?month=January", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestTransactionsOptions() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/transactions", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET, POST", r.Header().Get("allow"))

	r = test.Request(suite.T(), http.MethodOptions, fmt.Sprintf("http://example.com/v1/transactions/%s", uuid.New()), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))
}
