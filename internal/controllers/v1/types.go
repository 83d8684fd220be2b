package v1

import (
	ez_uuid "github.com/envelope-zero/ledger/internal/uuid"
)

type URIID struct {
	ID ez_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

// MonthQuery selects a month of a budget.
type MonthQuery struct {
	BudgetID ez_uuid.UUID `form:"budget" format:"UUID"`      // ID of the budget
	Month    string       `form:"month" example:"2024-01"`   // Year and month in YYYY-MM format
	Name     string       `form:"name" example:"Groceries*"` // Glob pattern for category names. Only used for categories
}
