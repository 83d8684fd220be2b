package v1

import (
	"github.com/envelope-zero/ledger/internal/ledger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Month is the API v1 representation of a month of a budget.
type Month struct {
	BudgetID uuid.UUID `json:"budgetId" example:"550dc009-cea6-4c12-b2a5-03446eb7b7cf"` // ID of the budget
	Month    string    `json:"month" example:"2024-01"`                                 // Year and month in YYYY-MM format

	CategoryGroups  []ledger.CategoryGroup `json:"categoryGroups"`                   // Category groups with their categories
	AssignableMoney decimal.Decimal        `json:"assignableMoney" example:"2500"`   // Income of this month
	ReadyToAssign   decimal.Decimal        `json:"readyToAssign" example:"-120.45"` // Money that is not assigned to any category
}

func newMonth(budgetID uuid.UUID, token string, m ledger.Month) Month {
	return Month{
		BudgetID:        budgetID,
		Month:           token,
		CategoryGroups:  m.CategoryGroups,
		AssignableMoney: m.AssignableMoney,
		ReadyToAssign:   m.ReadyToAssign,
	}
}

type MonthResponse struct {
	Data  *Month  `json:"data"`                                                          // Data for the month
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type ReadyToAssignResponse struct {
	Data  *ReadyToAssign `json:"data"`                                                          // Ready to Assign for the month
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type ReadyToAssign struct {
	BudgetID      uuid.UUID       `json:"budgetId" example:"550dc009-cea6-4c12-b2a5-03446eb7b7cf"` // ID of the budget
	Month         string          `json:"month" example:"2024-01"`                                 // Year and month in YYYY-MM format
	ReadyToAssign decimal.Decimal `json:"readyToAssign" example:"120.5"`                           // Money that is not assigned to any category
}

type AssignedEditable struct {
	BudgetID uuid.UUID `json:"budgetId" example:"550dc009-cea6-4c12-b2a5-03446eb7b7cf"` // ID of the budget
	Month    string    `json:"month" example:"2024-01"`                                 // Year and month in YYYY-MM format
	Category string    `json:"category" example:"Groceries"`                            // Name of the category
	Assigned string    `json:"assigned" example:"250.00"`                               // The amount to assign. Input that is not a number assigns 0
}
