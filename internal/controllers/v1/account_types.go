package v1

import (
	"fmt"

	"github.com/envelope-zero/ledger/internal/ledger"
	"github.com/envelope-zero/ledger/internal/models"
	ez_uuid "github.com/envelope-zero/ledger/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AccountEditable struct {
	BudgetID uuid.UUID          `json:"budgetId" example:"550dc009-cea6-4c12-b2a5-03446eb7b7cf"` // ID of the budget this account belongs to
	Name     string             `json:"name" example:"Checking" default:""`                      // Name of the account. Unique per budget
	Note     string             `json:"note" example:"My main bank account" default:""`          // A longer description for the account
	Kind     ledger.AccountKind `json:"kind" example:"credit" default:"cash"`                    // Either "cash" or "credit"
}

func (editable AccountEditable) model() models.Account {
	return models.Account{
		BudgetID: editable.BudgetID,
		Name:     editable.Name,
		Note:     editable.Note,
		Kind:     editable.Kind,
	}
}

type AccountLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/accounts/af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`                          // The account itself
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?account=af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"` // Transactions of this account
}

// Account is the API v1 representation of an Account.
type Account struct {
	models.DefaultModel
	AccountEditable
	Balance decimal.Decimal `json:"balance" example:"2735.17"` // Sum of the amounts of all transactions
	Links   AccountLinks    `json:"links"`
}

func newAccount(c *gin.Context, model models.Account) (Account, error) {
	url := c.GetString(string(models.DBContextURL))

	balance, err := model.Balance(models.DB)
	if err != nil {
		return Account{}, err
	}

	return Account{
		DefaultModel: model.DefaultModel,
		AccountEditable: AccountEditable{
			BudgetID: model.BudgetID,
			Name:     model.Name,
			Note:     model.Note,
			Kind:     model.Kind,
		},
		Balance: balance,
		Links: AccountLinks{
			Self:         fmt.Sprintf("%s/v1/accounts/%s", url, model.ID),
			Transactions: fmt.Sprintf("%s/v1/transactions?account=%s", url, model.ID),
		},
	}, nil
}

type AccountQueryFilter struct {
	BudgetID ez_uuid.UUID       `form:"budget"` // By budget ID
	Kind     ledger.AccountKind `form:"kind"`   // By kind
}

func (f AccountQueryFilter) model() models.Account {
	return models.Account{
		BudgetID: f.BudgetID.UUID,
		Kind:     f.Kind,
	}
}

type AccountListResponse struct {
	Data  []Account `json:"data"`                                                          // List of accounts
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type AccountCreateResponse struct {
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []AccountResponse `json:"data"`                                                          // List of created Accounts
}

func (a *AccountCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	a.Data = append(a.Data, AccountResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type AccountResponse struct {
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this account
	Data  *Account `json:"data"`                                                          // The Account data, if creation was successful
}
