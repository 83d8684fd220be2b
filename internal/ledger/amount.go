package ledger

import (
	"strings"

	"github.com/envelope-zero/ledger/internal/types"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ParseAmount parses user input for a monetary amount.
//
// Input that is not a number resolves to zero so that it cannot spread
// through the calculations of dependent months.
func ParseAmount(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		log.Warn().Str("input", s).Msg("amount is not a number, using 0")
		return decimal.Zero
	}

	return d
}

// transactionMonth returns the month token of the transaction.
//
// Transactions without a parseable date are logged and reported as not ok.
func transactionMonth(t Transaction) (string, bool) {
	m, err := types.ParseDateToMonth(t.Date)
	if err != nil {
		log.Warn().Str("transaction", t.ID.String()).Str("date", t.Date).Msg("skipping transaction with invalid date")
		return "", false
	}

	return m.String(), true
}

// parseTargetDate parses a target date in YYYY-MM-DD or YYYY-MM format.
func parseTargetDate(s string) (types.Month, bool) {
	if m, err := types.ParseDateToMonth(s); err == nil {
		return m, true
	}

	if m, err := types.ParseMonth(s); err == nil {
		return m, true
	}

	log.Warn().Str("targetDate", s).Msg("skipping target with invalid date")
	return types.Month{}, false
}
