package ledger

import (
	"github.com/envelope-zero/ledger/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// CreditCardActivity calculates the activity of a card's Credit Card Payments
// item for the month.
//
// A purchase on the card only becomes money owed to the card as far as money
// was assigned to the purchase's category this month. Assigned money is a
// shared pool: once a purchase on this card consumed it, it is gone for
// further purchases. Net refunds always reduce what is owed, as do direct
// payments to the card.
func CreditCardActivity(months MonthMap, accounts []Account, month types.Month, cardName string) decimal.Decimal {
	card, ok := account(accounts, cardName)
	if !ok {
		return decimal.Zero
	}

	pool := assignedPool(months[month.String()])
	token := month.String()

	spending := make(map[string]decimal.Decimal)
	refunds := make(map[string]decimal.Decimal)
	payments := decimal.Zero

	for _, t := range card.Transactions {
		m, ok := transactionMonth(t)
		if !ok || m != token {
			continue
		}

		if t.Category == cardName {
			if t.Amount.IsPositive() {
				payments = payments.Add(t.Amount)
			}
			continue
		}

		if t.Category == ReadyToAssignCategory {
			continue
		}

		if t.Amount.IsNegative() {
			spending[t.Category] = spending[t.Category].Add(t.Amount.Abs())
		} else {
			refunds[t.Category] = refunds[t.Category].Add(t.Amount)
		}
	}

	categories := maps.Keys(spending)
	for c := range refunds {
		if _, ok := spending[c]; !ok {
			categories = append(categories, c)
		}
	}
	// Map iteration order is random, the pool makes the order matter
	slices.Sort(categories)

	activity := decimal.Zero
	for _, c := range categories {
		net := spending[c].Sub(refunds[c])

		switch {
		case net.IsPositive():
			owed := decimal.Min(net, pool[c])
			pool[c] = decimal.Max(pool[c].Sub(owed), decimal.Zero)
			activity = activity.Add(owed)
		case net.IsNegative():
			activity = activity.Add(net)
		}
	}

	return activity.Sub(payments)
}

// assignedPool maps each category name with a positive assignment to the
// amount assigned.
func assignedPool(m Month) map[string]decimal.Decimal {
	pool := make(map[string]decimal.Decimal)
	for _, g := range m.CategoryGroups {
		for _, item := range g.Items {
			if item.Assigned.IsPositive() {
				pool[item.Name] = pool[item.Name].Add(item.Assigned)
			}
		}
	}
	return pool
}
