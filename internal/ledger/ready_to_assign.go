package ledger

import (
	"github.com/envelope-zero/ledger/internal/types"
	"github.com/shopspring/decimal"
)

// isInflow reports whether the transaction is income for the global pool.
func isInflow(a Account, t Transaction) bool {
	return !a.IsCredit() && t.Category == ReadyToAssignCategory && t.Amount.IsPositive()
}

// AssignableMoney is the income that entered the pool in the month.
func AssignableMoney(accounts []Account, month types.Month) decimal.Decimal {
	token := month.String()
	sum := decimal.Zero

	for _, a := range accounts {
		for _, t := range a.Transactions {
			if !isInflow(a, t) {
				continue
			}

			if m, ok := transactionMonth(t); ok && m == token {
				sum = sum.Add(t.Amount)
			}
		}
	}

	return sum
}

// CumulativeInflow is the income that entered the pool in the month and all
// months before it.
func CumulativeInflow(accounts []Account, month types.Month) decimal.Decimal {
	token := month.String()
	sum := decimal.Zero

	for _, a := range accounts {
		for _, t := range a.Transactions {
			if !isInflow(a, t) {
				continue
			}

			if m, ok := transactionMonth(t); ok && m <= token {
				sum = sum.Add(t.Amount)
			}
		}
	}

	return sum
}

// firstInflowMonth returns the token of the earliest month with income.
func firstInflowMonth(accounts []Account) (string, bool) {
	var first string
	for _, a := range accounts {
		for _, t := range a.Transactions {
			if !isInflow(a, t) {
				continue
			}

			if m, ok := transactionMonth(t); ok && (first == "" || m < first) {
				first = m
			}
		}
	}

	return first, first != ""
}

// ReadyToAssign calculates the money that has not been assigned yet.
//
// Assignments of all months are subtracted, including those after the month.
// Overspending in earlier months is subtracted as far as cash spending caused
// it. Before any income exists, it is the negated sum of assignments up to
// and including the month.
func ReadyToAssign(months MonthMap, accounts []Account, month types.Month) decimal.Decimal {
	token := month.String()

	first, ok := firstInflowMonth(accounts)
	if !ok || token < first {
		assigned := decimal.Zero
		for _, k := range months.Months() {
			if k <= token {
				assigned = assigned.Add(months[k].Assigned())
			}
		}
		return assigned.Neg()
	}

	totalAssigned := decimal.Zero
	for _, m := range months {
		totalAssigned = totalAssigned.Add(m.Assigned())
	}

	return CumulativeInflow(accounts, month).
		Sub(totalAssigned).
		Sub(pastOverspend(months, accounts, month))
}

// pastOverspend sums the deficits of all months before the month that were
// caused by cash spending. Credit Card Payments items are excluded.
func pastOverspend(months MonthMap, accounts []Account, month types.Month) decimal.Decimal {
	sum := decimal.Zero

	for _, token := range months.Before(month) {
		for _, g := range months[token].CategoryGroups {
			if g.Name == CreditCardPayments {
				continue
			}

			for _, item := range g.Items {
				if item.Available.IsNegative() && cashSpending(accounts, token, item.Name) {
					sum = sum.Add(item.Available.Abs())
				}
			}
		}
	}

	return sum
}

// cashSpending reports if any cash account has an outflow for the category in the month.
func cashSpending(accounts []Account, token, category string) bool {
	for _, a := range accounts {
		if a.IsCredit() {
			continue
		}

		for _, t := range a.Transactions {
			if t.Category != category || !t.Amount.IsNegative() {
				continue
			}

			if m, ok := transactionMonth(t); ok && m == token {
				return true
			}
		}
	}

	return false
}
