package ledger_test

import (
	"testing"

	"github.com/envelope-zero/ledger/internal/ledger"
	"github.com/envelope-zero/ledger/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func month(t *testing.T, s string) types.Month {
	m, err := types.ParseMonth(s)
	require.Nil(t, err)
	return m
}

func tx(date, category, amount string) ledger.Transaction {
	return ledger.Transaction{
		ID:       uuid.New(),
		Date:     date,
		Category: category,
		Amount:   d(amount),
	}
}

func cash(name string, transactions ...ledger.Transaction) ledger.Account {
	return ledger.Account{ID: uuid.New(), Name: name, Kind: ledger.AccountKindCash, Transactions: transactions}
}

func credit(name string, transactions ...ledger.Transaction) ledger.Account {
	return ledger.Account{ID: uuid.New(), Name: name, Kind: ledger.AccountKindCredit, Transactions: transactions}
}

func item(name, assigned string) ledger.CategoryItem {
	return ledger.CategoryItem{Name: name, Assigned: d(assigned)}
}

func group(name string, items ...ledger.CategoryItem) ledger.CategoryGroup {
	return ledger.CategoryGroup{Name: name, Items: items}
}

func monthOf(groups ...ledger.CategoryGroup) ledger.Month {
	return ledger.Month{CategoryGroups: groups}
}

// assertDecimal compares decimals by value, ignoring their representation.
func assertDecimal(t *testing.T, expected string, actual decimal.Decimal) {
	t.Helper()
	assert.Truef(t, d(expected).Equal(actual), "expected %s, got %s", expected, actual.String())
}

// find returns the item with the name in the month, failing the test if it does not exist.
func find(t *testing.T, months ledger.MonthMap, token, name string) ledger.CategoryItem {
	t.Helper()

	m, ok := months[token]
	require.True(t, ok, "month %s does not exist", token)

	i, _ := m.Item(name)
	require.NotNil(t, i, "item %s does not exist in %s", name, token)

	return *i
}

func maxZero(v decimal.Decimal) decimal.Decimal {
	return decimal.Max(v, decimal.Zero)
}
