package v1

import (
	"github.com/envelope-zero/ledger/internal/ledger"
	"github.com/google/uuid"
)

// CategoryCreate creates a category group when Name is empty, a category in
// the group otherwise.
type CategoryCreate struct {
	BudgetID uuid.UUID `json:"budgetId" example:"550dc009-cea6-4c12-b2a5-03446eb7b7cf"` // ID of the budget
	Month    string    `json:"month" example:"2024-01"`                                 // Month to create the category in. Other months get it when they are visited
	Group    string    `json:"group" example:"Everyday"`                                // Name of the category group
	Name     string    `json:"name" example:"Groceries" default:""`                     // Name of the category. Leave empty to create a group
}

// CategoryRename renames a category group when Name is empty, a category
// otherwise.
type CategoryRename struct {
	BudgetID uuid.UUID `json:"budgetId" example:"550dc009-cea6-4c12-b2a5-03446eb7b7cf"` // ID of the budget
	Group    string    `json:"group" example:"Everyday"`                                // Name of the category group
	Name     string    `json:"name" example:"Groceries" default:""`                     // Name of the category. Leave empty to rename the group
	NewName  string    `json:"newName" example:"Food"`                                  // The new name
}

type CategoryDelete struct {
	BudgetID   uuid.UUID `json:"budgetId" example:"550dc009-cea6-4c12-b2a5-03446eb7b7cf"` // ID of the budget
	Group      string    `json:"group" example:"Everyday"`                                // Name of the category group
	Name       string    `json:"name" example:"Snacks"`                                   // Name of the category
	ReassignTo string    `json:"reassignTo" example:"Groceries" default:""`               // Name of the category to move money and transactions to. Required when the category holds money
}

type GroupDelete struct {
	BudgetID uuid.UUID `json:"budgetId" example:"550dc009-cea6-4c12-b2a5-03446eb7b7cf"` // ID of the budget
	Group    string    `json:"group" example:"Everyday"`                                // Name of the category group
}

type TargetEditable struct {
	BudgetID uuid.UUID      `json:"budgetId" example:"550dc009-cea6-4c12-b2a5-03446eb7b7cf"` // ID of the budget
	Month    string         `json:"month" example:"2024-01"`                                 // The target applies to this and all later months
	Category string         `json:"category" example:"Vacation"`                             // Name of the category
	Target   *ledger.Target `json:"target"`                                                  // The target. null removes it
}

// Category is a category with the name of its group.
type Category struct {
	Group string `json:"group" example:"Everyday"` // Name of the category group
	ledger.CategoryItem
}

type CategoryListResponse struct {
	Data  []Category `json:"data"`                                                          // List of categories
	Error *string    `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type LedgerResponse struct {
	Data  *ledger.MonthMap `json:"data"`                                                  // All months of the budget
	Error *string          `json:"error" example:"there is no category with this name"` // The error, if any occurred
}
