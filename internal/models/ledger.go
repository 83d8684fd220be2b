package models

import (
	"fmt"

	"github.com/envelope-zero/ledger/internal/ledger"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LoadLedger reads a snapshot of the budget's accounts, their transactions
// and all month records.
//
// Transactions are ordered by date, then by creation.
func LoadLedger(db *gorm.DB, budgetID uuid.UUID) (ledger.Ledger, error) {
	var budget Budget
	err := db.First(&budget, "id = ?", budgetID).Error
	if err != nil {
		return ledger.Ledger{}, err
	}

	var accounts []Account
	err = db.Where(&Account{BudgetID: budgetID}).Order("created_at ASC, name ASC").Find(&accounts).Error
	if err != nil {
		return ledger.Ledger{}, err
	}

	l := ledger.Ledger{
		Accounts: make([]ledger.Account, 0, len(accounts)),
		Months:   ledger.MonthMap{},
	}

	for _, a := range accounts {
		var transactions []Transaction
		err = db.Where(&Transaction{AccountID: a.ID}).Order("date ASC, created_at ASC").Find(&transactions).Error
		if err != nil {
			return ledger.Ledger{}, err
		}

		account := ledger.Account{
			ID:           a.ID,
			Name:         a.Name,
			Kind:         a.Kind,
			Transactions: make([]ledger.Transaction, 0, len(transactions)),
		}

		for _, t := range transactions {
			account.Transactions = append(account.Transactions, ledger.Transaction{
				ID:            t.ID,
				Date:          t.Date,
				Payee:         t.Payee,
				Category:      t.Category,
				CategoryGroup: t.CategoryGroup,
				Amount:        t.Amount,
			})
		}

		l.Accounts = append(l.Accounts, account)
	}

	var records []MonthRecord
	err = db.Where(&MonthRecord{BudgetID: budgetID}).Find(&records).Error
	if err != nil {
		return ledger.Ledger{}, err
	}

	for _, r := range records {
		l.Months[r.Month] = r.ledgerMonth()
	}

	return l, nil
}

// SaveMonths replaces the records of all months in the map.
//
// All months are written in one database transaction, either all of them
// are stored or none.
func SaveMonths(db *gorm.DB, budgetID uuid.UUID, months ledger.MonthMap) error {
	return db.Transaction(func(tx *gorm.DB) error {
		return saveMonths(tx, budgetID, months)
	})
}

// SaveLedger stores the months of the ledger and the categories of all of
// its transactions in one database transaction.
//
// This persists lifecycle operations like renames and deletions that
// re-tag transactions.
func SaveLedger(db *gorm.DB, budgetID uuid.UUID, l ledger.Ledger) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for _, a := range l.Accounts {
			for _, t := range a.Transactions {
				// Only the category columns change, the hooks validating
				// whole transactions do not apply
				err := tx.Model(&Transaction{}).
					Where("id = ?", t.ID).
					UpdateColumns(map[string]any{
						"category":       t.Category,
						"category_group": t.CategoryGroup,
					}).Error
				if err != nil {
					return fmt.Errorf("updating transaction %s: %w", t.ID, err)
				}
			}
		}

		return saveMonths(tx, budgetID, l.Months)
	})
}

func saveMonths(tx *gorm.DB, budgetID uuid.UUID, months ledger.MonthMap) error {
	for _, token := range months.Months() {
		m := months[token]

		record := MonthRecord{
			BudgetID:        budgetID,
			Month:           token,
			CategoryGroups:  m.CategoryGroups,
			AssignableMoney: m.AssignableMoney,
			ReadyToAssign:   m.ReadyToAssign,
		}

		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "budget_id"}, {Name: "month"}},
			DoUpdates: clause.AssignmentColumns([]string{"category_groups", "assignable_money", "ready_to_assign", "updated_at"}),
		}).Create(&record).Error
		if err != nil {
			return fmt.Errorf("saving month %s: %w", token, err)
		}
	}

	return nil
}
