// Package ledger implements the envelope budgeting calculations.
//
// All functions in this package are pure: they read a snapshot of accounts and
// months and return new values. Persisting results is up to the caller.
package ledger

import (
	"github.com/envelope-zero/ledger/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

const (
	// ReadyToAssignCategory is the category name of income that feeds the global pool.
	ReadyToAssignCategory = "Ready to Assign"

	// CreditCardPayments is the reserved group holding one item per credit account.
	CreditCardPayments = "Credit Card Payments"
)

// AccountKind is the kind of an account.
type AccountKind string

const (
	AccountKindCash   AccountKind = "cash"
	AccountKindCredit AccountKind = "credit"
)

// Account is an account owning an ordered list of transactions.
type Account struct {
	ID           uuid.UUID     `json:"id"`
	Name         string        `json:"name"`
	Kind         AccountKind   `json:"kind"`
	Transactions []Transaction `json:"transactions"`
}

// Balance is the sum of the signed amounts of all transactions.
func (a Account) Balance() decimal.Decimal {
	balance := decimal.Zero
	for _, t := range a.Transactions {
		balance = balance.Add(t.Amount)
	}
	return balance
}

// IsCredit reports whether the account is a credit account.
func (a Account) IsCredit() bool {
	return a.Kind == AccountKindCredit
}

// Transaction is a single signed money movement. Negative amounts are outflows.
//
// A Category equal to the name of another account marks a transfer or a
// credit card payment. A Category of ReadyToAssignCategory marks income.
type Transaction struct {
	ID            uuid.UUID       `json:"id"`
	Date          string          `json:"date"` // YYYY-MM-DD
	Payee         string          `json:"payee"`
	Category      string          `json:"category"`
	CategoryGroup string          `json:"categoryGroup"`
	Amount        decimal.Decimal `json:"amount"`
}

// TargetType is the kind of funding goal.
type TargetType string

const (
	TargetMonthly    TargetType = "Monthly"
	TargetWeekly     TargetType = "Weekly"
	TargetCustom     TargetType = "Custom"
	TargetFullPayoff TargetType = "FullPayoff"
)

// Target is a funding goal for a category item.
type Target struct {
	Type         TargetType      `json:"type"`
	Amount       decimal.Decimal `json:"amount"`
	TargetDate   string          `json:"targetDate,omitempty"` // YYYY-MM-DD or YYYY-MM, Custom and FullPayoff only
	AmountNeeded decimal.Decimal `json:"amountNeeded"`
}

// CategoryItem is a category in a specific month.
//
// The ID is created once and kept when the item is copied into other months.
// It correlates the same category across months, the name is for display and
// for matching transactions.
type CategoryItem struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Assigned  decimal.Decimal `json:"assigned"`
	Activity  decimal.Decimal `json:"activity"`
	Available decimal.Decimal `json:"available"`
	Target    *Target         `json:"target,omitempty"`
}

// sameAs reports whether two items represent the same category.
func (i CategoryItem) sameAs(o CategoryItem) bool {
	if i.ID != uuid.Nil && o.ID != uuid.Nil {
		return i.ID == o.ID
	}
	return i.Name == o.Name
}

// CategoryGroup is a named, ordered list of category items.
type CategoryGroup struct {
	Name  string         `json:"name"`
	Items []CategoryItem `json:"items"`
}

// Month holds the category tree and cached pool figures for one month.
type Month struct {
	CategoryGroups  []CategoryGroup `json:"categoryGroups"`
	AssignableMoney decimal.Decimal `json:"assignableMoney"`
	ReadyToAssign   decimal.Decimal `json:"readyToAssign"`
}

// Clone returns a deep copy of the month.
func (m Month) Clone() Month {
	c := Month{
		AssignableMoney: m.AssignableMoney,
		ReadyToAssign:   m.ReadyToAssign,
		CategoryGroups:  make([]CategoryGroup, 0, len(m.CategoryGroups)),
	}

	for _, g := range m.CategoryGroups {
		cg := CategoryGroup{Name: g.Name, Items: make([]CategoryItem, 0, len(g.Items))}
		for _, item := range g.Items {
			if item.Target != nil {
				t := *item.Target
				item.Target = &t
			}
			cg.Items = append(cg.Items, item)
		}
		c.CategoryGroups = append(c.CategoryGroups, cg)
	}

	return c
}

// Group returns a pointer to the group with the name, or nil.
func (m *Month) Group(name string) *CategoryGroup {
	for i := range m.CategoryGroups {
		if m.CategoryGroups[i].Name == name {
			return &m.CategoryGroups[i]
		}
	}
	return nil
}

// Item returns a pointer to the first item with the name in any group, and
// the name of its group.
func (m *Month) Item(name string) (*CategoryItem, string) {
	for i := range m.CategoryGroups {
		g := &m.CategoryGroups[i]
		for j := range g.Items {
			if g.Items[j].Name == name {
				return &g.Items[j], g.Name
			}
		}
	}
	return nil, ""
}

// find returns the item matching ref by identity.
func (m *Month) find(ref CategoryItem) *CategoryItem {
	for i := range m.CategoryGroups {
		g := &m.CategoryGroups[i]
		for j := range g.Items {
			if g.Items[j].sameAs(ref) {
				return &g.Items[j]
			}
		}
	}
	return nil
}

// Assigned is the sum of assigned money over all items of the month.
func (m Month) Assigned() decimal.Decimal {
	sum := decimal.Zero
	for _, g := range m.CategoryGroups {
		for _, item := range g.Items {
			sum = sum.Add(item.Assigned)
		}
	}
	return sum
}

// MonthMap maps month tokens (YYYY-MM) to months.
type MonthMap map[string]Month

// Months returns all month tokens in chronological order.
func (mm MonthMap) Months() []string {
	keys := maps.Keys(mm)
	slices.Sort(keys)
	return keys
}

// Clone returns a deep copy of the month map.
func (mm MonthMap) Clone() MonthMap {
	c := make(MonthMap, len(mm))
	for k, m := range mm {
		c[k] = m.Clone()
	}
	return c
}

// Before returns the tokens of all months strictly before the month, in
// chronological order.
func (mm MonthMap) Before(month types.Month) []string {
	token := month.String()
	var before []string
	for _, k := range mm.Months() {
		if k < token {
			before = append(before, k)
		}
	}
	return before
}

// Ledger is a snapshot of everything the calculations need.
type Ledger struct {
	Accounts []Account `json:"accounts"`
	Months   MonthMap  `json:"months"`
}

// CloneAccounts returns a deep copy of the accounts.
func CloneAccounts(accounts []Account) []Account {
	c := make([]Account, 0, len(accounts))
	for _, a := range accounts {
		a.Transactions = slices.Clone(a.Transactions)
		c = append(c, a)
	}
	return c
}

// creditAccountNames returns the names of all credit accounts.
func creditAccountNames(accounts []Account) []string {
	var names []string
	for _, a := range accounts {
		if a.IsCredit() {
			names = append(names, a.Name)
		}
	}
	return names
}

// account returns the account with the name.
func account(accounts []Account, name string) (Account, bool) {
	for _, a := range accounts {
		if a.Name == name {
			return a, true
		}
	}
	return Account{}, false
}
