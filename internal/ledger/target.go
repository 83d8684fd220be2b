package ledger

import (
	"github.com/envelope-zero/ledger/internal/types"
	"github.com/shopspring/decimal"
)

var weeksPerMonth = decimal.NewFromInt(4)

// TargetEvaluation is the result of evaluating a target for a month.
type TargetEvaluation struct {
	AmountNeeded decimal.Decimal `json:"amountNeeded"`
	Expired      bool            `json:"expired"` // The month is after the target date, the target should be cleared
}

// ValidTargetType reports whether the type is a known target type.
func ValidTargetType(t TargetType) bool {
	switch t {
	case TargetMonthly, TargetWeekly, TargetCustom, TargetFullPayoff:
		return true
	}
	return false
}

// EvaluateTarget calculates how much needs to be assigned to the item in the
// month to stay on pace with the target.
//
// For dated targets, the money still missing is what the item has been
// assigned in all months before this one subtracted from the target amount.
func EvaluateTarget(target Target, item CategoryItem, months MonthMap, month types.Month) TargetEvaluation {
	switch target.Type {
	case TargetMonthly:
		return TargetEvaluation{AmountNeeded: target.Amount}
	case TargetWeekly:
		return TargetEvaluation{AmountNeeded: target.Amount.Mul(weeksPerMonth)}
	case TargetCustom, TargetFullPayoff:
	default:
		return TargetEvaluation{AmountNeeded: decimal.Zero}
	}

	targetMonth, ok := parseTargetDate(target.TargetDate)
	if !ok {
		return TargetEvaluation{AmountNeeded: decimal.Zero}
	}

	if month.After(targetMonth) {
		return TargetEvaluation{AmountNeeded: decimal.Zero, Expired: true}
	}

	monthsUntilTarget := max(targetMonth.Index()-month.Index(), 1)

	assigned := decimal.Zero
	for _, token := range months.Before(month) {
		m := months[token]
		if prior := m.find(item); prior != nil {
			assigned = assigned.Add(prior.Assigned)
		}
	}

	remaining := target.Amount.Sub(assigned)
	if !remaining.IsPositive() {
		return TargetEvaluation{AmountNeeded: decimal.Zero}
	}

	return TargetEvaluation{AmountNeeded: TargetSchedule(remaining, monthsUntilTarget)[0]}
}

// TargetSchedule spreads the amount over n months in whole cents.
//
// Every month gets the amount divided by n, floored to the cent. The cents
// left over are added one each to the first months. The schedule always sums
// up to exactly the amount.
func TargetSchedule(amount decimal.Decimal, n int) []decimal.Decimal {
	n = max(n, 1)
	count := decimal.NewFromInt(int64(n))

	base := amount.DivRound(count, 8).Mul(hundred).Floor().Div(hundred)
	extraCents := amount.Sub(base.Mul(count)).Mul(hundred).Round(0).IntPart()

	cent := decimal.New(1, -2)
	schedule := make([]decimal.Decimal, n)
	for i := range schedule {
		schedule[i] = base
		if int64(i) < extraCents {
			schedule[i] = base.Add(cent)
		}
	}

	return schedule
}
