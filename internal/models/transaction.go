package models

import (
	"strings"

	"github.com/envelope-zero/ledger/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Transaction is a signed money movement on an account. Negative amounts
// are outflows.
type Transaction struct {
	DefaultModel
	AccountID     uuid.UUID       `json:"accountId" example:"fd81dc45-a3a2-468e-a6fa-b2618f30aa45"`
	Account       Account         `json:"-"`
	Date          string          `json:"date" example:"2024-01-15"` // Date of the transaction in YYYY-MM-DD format
	Payee         string          `json:"payee" example:"Supermarket" default:""`
	Category      string          `json:"category" example:"Groceries" default:""`            // Name of a category item, "Ready to Assign" or the name of an account
	CategoryGroup string          `json:"categoryGroup" example:"Everyday" default:""`        // Name of the group of the category item
	Amount        decimal.Decimal `json:"amount" example:"-14.99" gorm:"type:DECIMAL(20,8)"` // Signed amount
}

func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	t.Payee = strings.TrimSpace(t.Payee)
	t.Category = strings.TrimSpace(t.Category)
	t.CategoryGroup = strings.TrimSpace(t.CategoryGroup)

	if _, err := types.ParseDateToMonth(t.Date); err != nil {
		return ErrTransactionDateInvalid
	}

	return nil
}
