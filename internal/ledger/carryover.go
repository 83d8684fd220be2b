package ledger

import (
	"github.com/envelope-zero/ledger/internal/types"
	"github.com/shopspring/decimal"
)

// CumulativeAvailable sums assigned and activity of the item over all months
// strictly before the month.
//
// The item is looked up in every group of each month since a rename may have
// moved it. Months in which it does not exist contribute nothing. Callers
// clamp the result at zero: surplus carries forward, deficits are taken out
// of Ready to Assign instead.
func CumulativeAvailable(months MonthMap, month types.Month, item CategoryItem) decimal.Decimal {
	total := decimal.Zero

	for _, token := range months.Before(month) {
		m := months[token]
		for _, g := range m.CategoryGroups {
			for _, i := range g.Items {
				if i.sameAs(item) {
					total = total.Add(i.Assigned).Add(i.Activity)
				}
			}
		}
	}

	return total
}

// carryover is the clamped prior balance added to a month's available.
func carryover(months MonthMap, month types.Month, item CategoryItem) decimal.Decimal {
	return decimal.Max(CumulativeAvailable(months, month, item), decimal.Zero)
}

// priorAvailable returns the available figure of the item in the latest month
// before the month that contains it.
func priorAvailable(months MonthMap, month types.Month, item CategoryItem) decimal.Decimal {
	before := months.Before(month)
	for i := len(before) - 1; i >= 0; i-- {
		m := months[before[i]]
		if prior := m.find(item); prior != nil {
			return prior.Available
		}
	}
	return decimal.Zero
}
