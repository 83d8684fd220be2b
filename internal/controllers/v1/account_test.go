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

func (suite *TestSuiteStandard) TestAccountsCreate() {
	a := createTestAccount(suite.T(), v1.AccountEditable{Name: "Checking"})

	suite.Assert().Equal("Checking", a.Data.Name)
	suite.Assert().Equal(ledger.AccountKindCash, a.Data.Kind)
	assertDecimal(suite.T(), "0", a.Data.Balance)
	suite.Assert().Equal(fmt.Sprintf("http://example.com/v1/transactions?account=%s", a.Data.ID), a.Data.Links.Transactions)
}

func (suite *TestSuiteStandard) TestAccountsCreateFails() {
	budgetID := createTestBudget(suite.T(), v1.BudgetEditable{}).Data.ID
	_ = createTestAccount(suite.T(), v1.AccountEditable{BudgetID: budgetID, Name: "Checking"})

	tests := []struct {
		name    string
		account v1.AccountEditable
		status  int
		err     error
	}{
		{"Budget does not exist", v1.AccountEditable{BudgetID: uuid.New(), Name: "Cash"}, http.StatusNotFound, models.ErrResourceNotFound},
		{"Name not unique", v1.AccountEditable{BudgetID: budgetID, Name: "Checking"}, http.StatusBadRequest, models.ErrAccountNameNotUnique},
		{"Invalid kind", v1.AccountEditable{BudgetID: budgetID, Name: "Savings", Kind: "savings"}, http.StatusBadRequest, models.ErrAccountKindInvalid},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/accounts", []v1.AccountEditable{tt.account})
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.AccountCreateResponse
			test.DecodeResponse(t, &r, &response)
			assert.Contains(t, *response.Data[0].Error, tt.err.Error())
		})
	}
}

// TestAccountsCreditProvisioning verifies that creating a credit account
// adds its payment category to every existing month.
func (suite *TestSuiteStandard) TestAccountsCreditProvisioning() {
	budgetID, _ := setupBudget(suite.T())
	_ = getMonth(suite.T(), budgetID, "2024-02", ledger.Forward)

	_ = createTestAccount(suite.T(), v1.AccountEditable{BudgetID: budgetID, Name: "Visa", Kind: ledger.AccountKindCredit})

	for _, month := range []string{"2024-01", "2024-02"} {
		suite.T().Run(month, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/categories?budget=%s&month=%s&name=Visa", budgetID, month), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.CategoryListResponse
			test.DecodeResponse(t, &r, &response)
			if assert.Len(t, response.Data, 1) {
				assert.Equal(t, ledger.CreditCardPayments, response.Data[0].Group)
			}
		})
	}
}

// TestAccountsCreditCarryover verifies that the payment item of a card added
// to existing months carries its available amount into the next month.
func (suite *TestSuiteStandard) TestAccountsCreditCarryover() {
	budgetID, _ := setupBudget(suite.T())
	_ = getMonth(suite.T(), budgetID, "2024-02", ledger.Forward)

	visaID := createTestAccount(suite.T(), v1.AccountEditable{BudgetID: budgetID, Name: "Visa", Kind: ledger.AccountKindCredit}).Data.ID
	_ = assign(suite.T(), v1.AssignedEditable{BudgetID: budgetID, Month: "2024-01", Category: "Groceries", Assigned: "50"})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{AccountID: visaID, Date: "2024-01-10", Category: "Groceries", CategoryGroup: "Everyday", Amount: decimal.NewFromInt(-50)})

	january := item(suite.T(), getMonth(suite.T(), budgetID, "2024-01", ledger.Forward), "Visa")
	february := item(suite.T(), getMonth(suite.T(), budgetID, "2024-02", ledger.Forward), "Visa")

	suite.Assert().Equal(january.ID, february.ID)
	assertDecimal(suite.T(), "50", january.Available)
	assertDecimal(suite.T(), "50", february.Available)
}

func (suite *TestSuiteStandard) TestAccountsGet() {
	budgetID, accountID := setupBudget(suite.T())
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{AccountID: accountID, Date: "2024-01-05", Category: "Groceries", Amount: decimal.RequireFromString("-25.50")})
	_ = createTestAccount(suite.T(), v1.AccountEditable{BudgetID: budgetID, Name: "Visa", Kind: ledger.AccountKindCredit})
	_ = createTestAccount(suite.T(), v1.AccountEditable{})

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/accounts/%s", accountID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var account v1.AccountResponse
	test.DecodeResponse(suite.T(), &r, &account)
	assertDecimal(suite.T(), "974.5", account.Data.Balance)

	tests := []struct {
		name  string
		query string
		count int
	}{
		{"All", "", 3},
		{"Budget", fmt.Sprintf("budget=%s", budgetID), 2},
		{"Credit accounts of the budget", fmt.Sprintf("budget=%s&kind=credit", budgetID), 1},
		{"Budget without accounts", fmt.Sprintf("budget=%s", uuid.New()), 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/accounts?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var list v1.AccountListResponse
			test.DecodeResponse(t, &r, &list)
			assert.Len(t, list.Data, tt.count)
		})
	}
}

func (suite *TestSuiteStandard) TestAccountsGetFails() {
	tests := []struct {
		name   string
		path   string
		status int
	}{
		{"Not a UUID", "http://example.com/v1/accounts/NotParseableAsUUID", http.StatusBadRequest},
		{"Does not exist", fmt.Sprintf("http://example.com/v1/accounts/%s", uuid.New()), http.StatusNotFound},
		{"Broken filter", "http://example.com/v1/accounts?budget=NotParseableAsUUID", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, tt.path, "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestAccountsOptions() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/accounts", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET, POST", r.Header().Get("allow"))

	r = test.Request(suite.T(), http.MethodOptions, fmt.Sprintf("http://example.com/v1/accounts/%s", uuid.New()), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET", r.Header().Get("allow"))
}
