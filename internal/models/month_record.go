package models

import (
	"time"

	"github.com/envelope-zero/ledger/internal/ledger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MonthRecord is the stored state of one month of a budget's ledger.
//
// The category tree is stored as a JSON document and always replaced as a
// whole.
type MonthRecord struct {
	BudgetID        uuid.UUID              `gorm:"primaryKey"`
	Month           string                 `gorm:"primaryKey"` // YYYY-MM
	CategoryGroups  []ledger.CategoryGroup `gorm:"serializer:json"`
	AssignableMoney decimal.Decimal        `gorm:"type:DECIMAL(20,8)"`
	ReadyToAssign   decimal.Decimal        `gorm:"type:DECIMAL(20,8)"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (r MonthRecord) ledgerMonth() ledger.Month {
	groups := r.CategoryGroups
	if groups == nil {
		groups = []ledger.CategoryGroup{}
	}

	return ledger.Month{
		CategoryGroups:  groups,
		AssignableMoney: r.AssignableMoney,
		ReadyToAssign:   r.ReadyToAssign,
	}
}
