package v1

import (
	"fmt"

	"github.com/envelope-zero/ledger/internal/models"
	ez_uuid "github.com/envelope-zero/ledger/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionEditable struct {
	AccountID     uuid.UUID `json:"accountId" example:"fd81dc45-a3a2-468e-a6fa-b2618f30aa45"` // ID of the account
	Date          string    `json:"date" example:"2024-01-15"`                                // Date of the transaction in YYYY-MM-DD format
	Payee         string    `json:"payee" example:"Supermarket" default:""`                   // Who the money was paid to or received from
	Category      string    `json:"category" example:"Groceries" default:""`                  // Name of a category, "Ready to Assign" for income or the name of an account for transfers and credit card payments
	CategoryGroup string    `json:"categoryGroup" example:"Everyday" default:""`              // Name of the group of the category

	// The maximum value is "999999999999.99999999", swagger unfortunately rounds this.
	Amount decimal.Decimal `json:"amount" example:"-14.03" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // Signed amount. Negative amounts are outflows
}

// model returns the database resource for the API representation of the editable fields
func (editable TransactionEditable) model() models.Transaction {
	return models.Transaction{
		AccountID:     editable.AccountID,
		Date:          editable.Date,
		Payee:         editable.Payee,
		Category:      editable.Category,
		CategoryGroup: editable.CategoryGroup,
		Amount:        editable.Amount,
	}
}

type TransactionLinks struct {
	Self    string `json:"self" example:"https://example.com/api/v1/transactions/d430d7c3-d14c-4712-9336-ee56965a6673"` // The transaction itself
	Account string `json:"account" example:"https://example.com/api/v1/accounts/fd81dc45-a3a2-468e-a6fa-b2618f30aa45"`  // The account of the transaction
}

// Transaction is the representation of a Transaction in API v1.
type Transaction struct {
	models.DefaultModel
	TransactionEditable
	Links TransactionLinks `json:"links"`
}

// newTransaction returns the API v1 representation of the resource
func newTransaction(c *gin.Context, model models.Transaction) Transaction {
	url := c.GetString(string(models.DBContextURL))

	return Transaction{
		DefaultModel: model.DefaultModel,
		TransactionEditable: TransactionEditable{
			AccountID:     model.AccountID,
			Date:          model.Date,
			Payee:         model.Payee,
			Category:      model.Category,
			CategoryGroup: model.CategoryGroup,
			Amount:        model.Amount,
		},
		Links: TransactionLinks{
			Self:    fmt.Sprintf("%s/v1/transactions/%s", url, model.ID),
			Account: fmt.Sprintf("%s/v1/accounts/%s", url, model.AccountID),
		},
	}
}

type TransactionQueryFilter struct {
	AccountID ez_uuid.UUID `form:"account"` // ID of the account
	BudgetID  ez_uuid.UUID `form:"budget"`  // ID of the budget
	Month     string       `form:"month"`   // Only transactions in this month, YYYY-MM
}

type TransactionListResponse struct {
	Data  []Transaction `json:"data"`                                                          // List of transactions
	Error *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type TransactionCreateResponse struct {
	Error *string               `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []TransactionResponse `json:"data"`                                                          // List of created Transactions
}

func (t *TransactionCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, TransactionResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type TransactionResponse struct {
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this transaction
	Data  *Transaction `json:"data"`                                                          // The Transaction data, if creation was successful
}
