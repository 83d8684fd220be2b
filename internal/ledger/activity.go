package ledger

import (
	"github.com/envelope-zero/ledger/internal/types"
	"github.com/shopspring/decimal"
)

// ActivityForCategory sums the signed amounts of all transactions of all
// accounts in the month that are tagged with the category.
func ActivityForCategory(accounts []Account, month types.Month, category string) decimal.Decimal {
	activity := decimal.Zero
	for _, a := range accounts {
		activity = activity.Add(AccountActivity(a, month, category))
	}
	return activity
}

// AccountActivity sums the signed amounts of the transactions of a single
// account in the month that are tagged with the category.
func AccountActivity(a Account, month types.Month, category string) decimal.Decimal {
	token := month.String()
	activity := decimal.Zero

	for _, t := range a.Transactions {
		if t.Category != category {
			continue
		}

		m, ok := transactionMonth(t)
		if !ok || m != token {
			continue
		}

		activity = activity.Add(t.Amount)
	}

	return activity
}
