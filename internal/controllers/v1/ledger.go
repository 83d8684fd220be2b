package v1

import (
	"sync"

	"github.com/envelope-zero/ledger/internal/ledger"
	"github.com/envelope-zero/ledger/internal/models"
	"github.com/google/uuid"
)

// ledgerLock serializes the load, calculate and save cycles of all ledger updates
var ledgerLock sync.Mutex

// updateMonths loads the ledger of the budget, runs fn on it and saves the
// returned months.
func updateMonths(budgetID uuid.UUID, operation string, fn func(ledger.Ledger) (ledger.MonthMap, error)) (ledger.MonthMap, error) {
	ledgerLock.Lock()
	defer ledgerLock.Unlock()

	l, err := models.LoadLedger(models.DB, budgetID)
	if err != nil {
		return nil, err
	}

	months, err := fn(l)
	if err != nil {
		return nil, err
	}
	Recalculations.WithLabelValues(operation).Inc()

	err = models.SaveMonths(models.DB, budgetID, months)
	if err != nil {
		return nil, err
	}

	return months, nil
}

// updateLedger loads the ledger of the budget, runs fn on it and saves the
// returned months together with the categories of all transactions.
func updateLedger(budgetID uuid.UUID, operation string, fn func(ledger.Ledger) (ledger.Ledger, error)) (ledger.Ledger, error) {
	ledgerLock.Lock()
	defer ledgerLock.Unlock()

	l, err := models.LoadLedger(models.DB, budgetID)
	if err != nil {
		return ledger.Ledger{}, err
	}

	l, err = fn(l)
	if err != nil {
		return ledger.Ledger{}, err
	}
	Recalculations.WithLabelValues(operation).Inc()

	err = models.SaveLedger(models.DB, budgetID, l)
	if err != nil {
		return ledger.Ledger{}, err
	}

	return l, nil
}

// recalculate recalculates and saves all months of the budget.
func recalculate(budgetID uuid.UUID, operation string) error {
	_, err := updateMonths(budgetID, operation, func(l ledger.Ledger) (ledger.MonthMap, error) {
		return ledger.Recalculate(l.Months, l.Accounts), nil
	})

	return err
}

// provisionCreditCards adds the Credit Card Payments items for all credit
// accounts to every month of the budget.
func provisionCreditCards(budgetID uuid.UUID) error {
	_, err := updateMonths(budgetID, "account", func(l ledger.Ledger) (ledger.MonthMap, error) {
		return ledger.Recalculate(ledger.EnsureCreditCardItems(l.Months, l.Accounts), l.Accounts), nil
	})

	return err
}
