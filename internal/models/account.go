package models

import (
	"strings"

	"github.com/envelope-zero/ledger/internal/ledger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Account represents an account holding money, e.g. a checking account or a
// credit card.
type Account struct {
	DefaultModel
	BudgetID uuid.UUID          `json:"budgetId" example:"550dc009-cea6-4c12-b2a5-03446eb7b7cf" gorm:"uniqueIndex:account_name_budget_id"`
	Budget   Budget             `json:"-"`
	Name     string             `json:"name" example:"Checking" default:"" gorm:"uniqueIndex:account_name_budget_id"`
	Note     string             `json:"note" example:"My main bank account" default:""`
	Kind     ledger.AccountKind `json:"kind" example:"cash" default:"cash"` // Either "cash" or "credit"
}

func (a *Account) BeforeSave(_ *gorm.DB) error {
	a.Name = strings.TrimSpace(a.Name)
	a.Note = strings.TrimSpace(a.Note)

	if a.BudgetID == uuid.Nil {
		return ErrBudgetIDRequired
	}

	if a.Kind == "" {
		a.Kind = ledger.AccountKindCash
	}

	if a.Kind != ledger.AccountKindCash && a.Kind != ledger.AccountKindCredit {
		return ErrAccountKindInvalid
	}

	return nil
}

// Balance returns the sum of the amounts of all transactions of the account.
func (a Account) Balance(db *gorm.DB) (decimal.Decimal, error) {
	var transactions []Transaction
	err := db.Where(&Transaction{AccountID: a.ID}).Find(&transactions).Error
	if err != nil {
		return decimal.Zero, err
	}

	balance := decimal.Zero
	for _, t := range transactions {
		balance = balance.Add(t.Amount)
	}

	return balance, nil
}
