package models

import (
	"fmt"
	"strings"

	"golang.org/x/text/currency"
	"gorm.io/gorm"
)

// Budget represents a budget
//
// A budget is the highest level of organization. It owns exactly one ledger:
// its accounts, their transactions and the month records.
type Budget struct {
	DefaultModel
	Name     string `json:"name" example:"Morre's Budget" default:""`
	Note     string `json:"note" example:"My personal expenses" default:""`
	Currency string `json:"currency" example:"EUR" default:""` // ISO 4217 code of the budget's currency
}

func (b *Budget) BeforeSave(_ *gorm.DB) error {
	b.Name = strings.TrimSpace(b.Name)
	b.Note = strings.TrimSpace(b.Note)
	b.Currency = strings.ToUpper(strings.TrimSpace(b.Currency))

	if b.Currency == "" {
		return nil
	}

	if _, err := currency.ParseISO(b.Currency); err != nil {
		return fmt.Errorf("%w: %s", ErrBudgetCurrencyInvalid, b.Currency)
	}

	return nil
}

// Symbol returns the symbol of the budget's currency, e.g. "€" for EUR.
//
// Budgets without a currency have an empty symbol.
func (b Budget) Symbol() string {
	unit, err := currency.ParseISO(b.Currency)
	if err != nil {
		return ""
	}

	return fmt.Sprintf("%s", currency.Symbol(unit))
}
