package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/envelope-zero/ledger/internal/controllers/v1"
	"github.com/envelope-zero/ledger/internal/models"
	"github.com/envelope-zero/ledger/test"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestBudgetsCreate() {
	b := createTestBudget(suite.T(), v1.BudgetEditable{Name: " Household ", Currency: "eur"})

	suite.Assert().Equal("Household", b.Data.Name)
	suite.Assert().Equal("EUR", b.Data.Currency)
	suite.Assert().Equal("€", b.Data.Symbol)
	suite.Assert().Equal(fmt.Sprintf("http://example.com/v1/budgets/%s", b.Data.ID), b.Data.Links.Self)
	suite.Assert().Equal(fmt.Sprintf("http://example.com/v1/accounts?budget=%s", b.Data.ID), b.Data.Links.Accounts)
}

func (suite *TestSuiteStandard) TestBudgetsCreateFails() {
	tests := []struct {
		name   string
		body   any
		status int
	}{
		{"Invalid currency", []v1.BudgetEditable{{Name: "Money", Currency: "Euro"}}, http.StatusBadRequest},
		{"Broken body", `[{ "name": 2 }]`, http.StatusBadRequest},
		{"Not a list", `{ "name": "Money" }`, http.StatusBadRequest},
		{"No body", "", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/budgets", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

// TestBudgetsCreatePartial verifies that valid budgets are created when
// other budgets in the same request are invalid.
func (suite *TestSuiteStandard) TestBudgetsCreatePartial() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/budgets", []v1.BudgetEditable{
		{Name: "Valid"},
		{Name: "Invalid", Currency: "XYZW"},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.BudgetCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().Len(response.Data, 2)
	suite.Assert().Equal("Valid", response.Data[0].Data.Name)
	suite.Assert().Contains(*response.Data[1].Error, models.ErrBudgetCurrencyInvalid.Error())
}

func (suite *TestSuiteStandard) TestBudgetsGet() {
	_ = createTestBudget(suite.T(), v1.BudgetEditable{Name: "Zebra"})
	b := createTestBudget(suite.T(), v1.BudgetEditable{Name: "Aardvark"})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/budgets", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var list v1.BudgetListResponse
	test.DecodeResponse(suite.T(), &r, &list)
	suite.Require().Len(list.Data, 2)
	suite.Assert().Equal("Aardvark", list.Data[0].Name)

	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"Existing", b.Data.ID.String(), http.StatusOK},
		{"Does not exist", uuid.New().String(), http.StatusNotFound},
		{"Not a UUID", "NotParseableAsUUID", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/budgets/%s", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.BudgetResponse
			test.DecodeResponse(t, &r, &response)

			if tt.status == http.StatusOK {
				assert.Equal(t, "Aardvark", response.Data.Name)
			} else {
				assert.NotNil(t, response.Error)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetsOptions() {
	tests := []struct {
		path  string
		allow string
	}{
		{"http://example.com/v1/budgets", "OPTIONS, GET, POST"},
		{fmt.Sprintf("http://example.com/v1/budgets/%s", uuid.New()), "OPTIONS, GET"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.path, func(t *testing.T) {
			r := test.Request(t, http.MethodOptions, tt.path, "")
			test.AssertHTTPStatus(t, &r, http.StatusNoContent)
			assert.Equal(t, tt.allow, r.Header().Get("allow"))
		})
	}
}

// TestBudgetsDBClosed verifies that errors are processed correctly when
// the database is closed.
func (suite *TestSuiteStandard) TestBudgetsDBClosed() {
	b := createTestBudget(suite.T(), v1.BudgetEditable{})

	tests := []struct {
		name string             // Name of the test
		test func(t *testing.T) // Code to run
	}{
		{
			"Creation fails",
			func(t *testing.T) {
				createTestBudget(t, v1.BudgetEditable{}, http.StatusInternalServerError)
			},
		},
		{
			"GET list fails",
			func(t *testing.T) {
				r := test.Request(t, http.MethodGet, "http://example.com/v1/budgets", "")
				test.AssertHTTPStatus(t, &r, http.StatusInternalServerError)

				var response v1.BudgetListResponse
				test.DecodeResponse(t, &r, &response)
				assert.Contains(t, *response.Error, models.ErrGeneral.Error())
			},
		},
		{
			"GET single fails",
			func(t *testing.T) {
				r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/budgets/%s", b.Data.ID), "")
				test.AssertHTTPStatus(t, &r, http.StatusInternalServerError)
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			suite.CloseDB()

			tt.test(t)
		})
	}
}
