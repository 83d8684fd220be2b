package v1

import (
	"fmt"

	"github.com/envelope-zero/ledger/internal/models"
	"github.com/gin-gonic/gin"
)

type BudgetEditable struct {
	Name     string `json:"name" example:"Morre's Budget" default:""`       // Name of the budget
	Note     string `json:"note" example:"My personal expenses" default:""` // A longer description of the budget
	Currency string `json:"currency" example:"EUR" default:""`              // ISO 4217 code of the budget's currency
}

func (editable BudgetEditable) model() models.Budget {
	return models.Budget{
		Name:     editable.Name,
		Note:     editable.Note,
		Currency: editable.Currency,
	}
}

type BudgetLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/budgets/550dc009-cea6-4c12-b2a5-03446eb7b7cf"`                      // The budget itself
	Accounts string `json:"accounts" example:"https://example.com/api/v1/accounts?budget=550dc009-cea6-4c12-b2a5-03446eb7b7cf"`          // Accounts of this budget
	Month    string `json:"month" example:"https://example.com/api/v1/months?budget=550dc009-cea6-4c12-b2a5-03446eb7b7cf&month=YYYY-MM"` // This uses 'YYYY-MM' for clients to replace with the actual year and month.
}

// Budget is the API v1 representation of a Budget.
type Budget struct {
	models.DefaultModel
	BudgetEditable
	Symbol string      `json:"symbol" example:"€"` // Symbol of the currency, empty if no currency is set
	Links  BudgetLinks `json:"links"`
}

func newBudget(c *gin.Context, model models.Budget) Budget {
	url := c.GetString(string(models.DBContextURL))

	return Budget{
		DefaultModel: model.DefaultModel,
		BudgetEditable: BudgetEditable{
			Name:     model.Name,
			Note:     model.Note,
			Currency: model.Currency,
		},
		Symbol: model.Symbol(),
		Links: BudgetLinks{
			Self:     fmt.Sprintf("%s/v1/budgets/%s", url, model.ID),
			Accounts: fmt.Sprintf("%s/v1/accounts?budget=%s", url, model.ID),
			Month:    fmt.Sprintf("%s/v1/months?budget=%s&month=YYYY-MM", url, model.ID),
		},
	}
}

type BudgetListResponse struct {
	Data  []Budget `json:"data"`                                                          // List of budgets
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type BudgetCreateResponse struct {
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []BudgetResponse `json:"data"`                                                          // List of created Budgets
}

func (b *BudgetCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	b.Data = append(b.Data, BudgetResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type BudgetResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this budget
	Data  *Budget `json:"data"`                                                          // The Budget data, if creation was successful
}
