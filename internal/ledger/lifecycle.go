package ledger

import (
	"fmt"
	"strings"

	"github.com/envelope-zero/ledger/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// ItemContext identifies a category item by its group and name.
type ItemContext struct {
	Group string `json:"group"`
	Name  string `json:"name"`
}

// AddGroup adds an empty category group to the month.
func AddGroup(months MonthMap, month types.Month, name string) (MonthMap, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameEmpty
	}

	if name == CreditCardPayments {
		return nil, ErrSystemManaged
	}

	m, ok := months[month.String()]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMonthNotFound, month)
	}

	if m.Group(name) != nil {
		return nil, fmt.Errorf("%w: %s", ErrGroupNameNotUnique, name)
	}

	result := months.Clone()
	m = result[month.String()]
	m.CategoryGroups = append(m.CategoryGroups, CategoryGroup{Name: name, Items: []CategoryItem{}})
	result[month.String()] = m

	return result, nil
}

// AddItem adds a new category item to a group of the month.
//
// Item names are unique across all groups and months.
func AddItem(months MonthMap, month types.Month, group, name string) (MonthMap, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameEmpty
	}

	if group == CreditCardPayments {
		return nil, ErrSystemManaged
	}

	if _, ok := months[month.String()]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrMonthNotFound, month)
	}

	if itemExists(months, name) {
		return nil, fmt.Errorf("%w: %s", ErrCategoryNameNotUnique, name)
	}

	result := months.Clone()
	m := result[month.String()]
	g := m.Group(group)
	if g == nil {
		return nil, fmt.Errorf("%w: %s", ErrGroupNotFound, group)
	}

	g.Items = append(g.Items, CategoryItem{
		ID:        uuid.New(),
		Name:      name,
		Assigned:  decimal.Zero,
		Activity:  decimal.Zero,
		Available: decimal.Zero,
	})
	result[month.String()] = m

	return result, nil
}

// SetAssigned sets the money assigned to an item in the month and
// recalculates all months.
func SetAssigned(months MonthMap, accounts []Account, month types.Month, name string, amount decimal.Decimal) (MonthMap, error) {
	result := months.Clone()

	m, ok := result[month.String()]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMonthNotFound, month)
	}

	item, _ := m.Item(name)
	if item == nil {
		return nil, fmt.Errorf("%w: %s", ErrCategoryNotFound, name)
	}
	item.Assigned = amount

	return Recalculate(result, accounts), nil
}

// SetTarget sets the target of an item in the month and all later months.
// A nil target removes it.
func SetTarget(months MonthMap, accounts []Account, month types.Month, name string, target *Target) (MonthMap, error) {
	if target != nil && !ValidTargetType(target.Type) {
		return nil, ErrTargetTypeInvalid
	}

	result := months.Clone()
	m, ok := result[month.String()]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMonthNotFound, month)
	}

	if item, _ := m.Item(name); item == nil {
		return nil, fmt.Errorf("%w: %s", ErrCategoryNotFound, name)
	}

	for _, token := range result.Months() {
		if token < month.String() {
			continue
		}

		m := result[token]
		item, _ := m.Item(name)
		if item == nil {
			continue
		}

		if target == nil {
			item.Target = nil
			continue
		}

		t := *target
		t.AmountNeeded = decimal.Zero
		item.Target = &t
	}

	return Recalculate(result, accounts), nil
}

// RenameItem renames a category item in every month and re-tags all
// transactions referencing it.
func RenameItem(l Ledger, oldName, newName string) (Ledger, error) {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return Ledger{}, ErrNameEmpty
	}

	group, ok := itemGroup(l.Months, oldName)
	if !ok {
		return Ledger{}, fmt.Errorf("%w: %s", ErrCategoryNotFound, oldName)
	}

	if group == CreditCardPayments {
		return Ledger{}, ErrSystemManaged
	}

	if oldName == newName {
		return l, nil
	}

	if itemExists(l.Months, newName) {
		return Ledger{}, fmt.Errorf("%w: %s", ErrCategoryNameNotUnique, newName)
	}

	months := l.Months.Clone()
	for token, m := range months {
		for gi := range m.CategoryGroups {
			for ii := range m.CategoryGroups[gi].Items {
				if m.CategoryGroups[gi].Items[ii].Name == oldName {
					m.CategoryGroups[gi].Items[ii].Name = newName
				}
			}
		}
		months[token] = m
	}

	accounts := retag(l.Accounts, func(t *Transaction) {
		if t.Category == oldName {
			t.Category = newName
		}
	})

	return Ledger{Accounts: accounts, Months: Recalculate(months, accounts)}, nil
}

// RenameGroup renames a category group in every month and updates the group
// of all transactions tagged with it.
func RenameGroup(l Ledger, oldName, newName string) (Ledger, error) {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return Ledger{}, ErrNameEmpty
	}

	if oldName == CreditCardPayments || newName == CreditCardPayments {
		return Ledger{}, ErrSystemManaged
	}

	if !groupExists(l.Months, oldName) {
		return Ledger{}, fmt.Errorf("%w: %s", ErrGroupNotFound, oldName)
	}

	if oldName == newName {
		return l, nil
	}

	if groupExists(l.Months, newName) {
		return Ledger{}, fmt.Errorf("%w: %s", ErrGroupNameNotUnique, newName)
	}

	months := l.Months.Clone()
	for token, m := range months {
		if g := m.Group(oldName); g != nil {
			g.Name = newName
		}
		months[token] = m
	}

	accounts := retag(l.Accounts, func(t *Transaction) {
		if t.CategoryGroup == oldName {
			t.CategoryGroup = newName
		}
	})

	return Ledger{Accounts: accounts, Months: months}, nil
}

// DeleteItem deletes a category item from every month.
//
// If the item ever had money assigned or transactions tagged with it, its
// figures are added to the item named reassignTo month by month and its
// transactions are re-tagged to that item. Without reassignTo, such an item
// cannot be deleted and nothing is changed.
func DeleteItem(l Ledger, ctx ItemContext, reassignTo string) (Ledger, error) {
	if ctx.Group == CreditCardPayments {
		return Ledger{}, ErrSystemManaged
	}

	group, ok := itemGroup(l.Months, ctx.Name)
	if !ok {
		return Ledger{}, fmt.Errorf("%w: %s", ErrCategoryNotFound, ctx.Name)
	}

	// The group in ctx is only a hint
	if group == CreditCardPayments {
		return Ledger{}, ErrSystemManaged
	}

	if reassignTo == "" {
		if holdsMoney(l, ctx.Name) {
			return Ledger{}, ErrReassignmentRequired
		}

		months := l.Months.Clone()
		for token, m := range months {
			months[token] = removeItem(m, ctx)
		}
		return Ledger{Accounts: CloneAccounts(l.Accounts), Months: Recalculate(months, l.Accounts)}, nil
	}

	if reassignTo == ctx.Name {
		return Ledger{}, ErrReassignToSelf
	}

	targetGroup, ok := itemGroup(l.Months, reassignTo)
	if !ok {
		return Ledger{}, fmt.Errorf("%w: %s", ErrCategoryNotFound, reassignTo)
	}

	if targetGroup == CreditCardPayments {
		return Ledger{}, ErrSystemManaged
	}

	targetRef := itemRef(l.Months, reassignTo)

	months := l.Months.Clone()
	for token, m := range months {
		source := findInContext(&m, ctx)
		if source == nil {
			continue
		}
		assigned, activity := source.Assigned, source.Activity

		target := m.find(targetRef)
		if target == nil {
			g := m.Group(targetGroup)
			if g == nil {
				m.CategoryGroups = append(m.CategoryGroups, CategoryGroup{Name: targetGroup, Items: []CategoryItem{}})
				g = &m.CategoryGroups[len(m.CategoryGroups)-1]
			}
			g.Items = append(g.Items, emptyItem(targetRef))
			target = &g.Items[len(g.Items)-1]
		}

		target.Assigned = target.Assigned.Add(assigned)
		target.Activity = target.Activity.Add(activity)
		target.Available = target.Available.Add(assigned).Add(activity)

		months[token] = removeItem(m, ctx)
	}

	accounts := retag(l.Accounts, func(t *Transaction) {
		if t.Category == ctx.Name {
			t.Category = reassignTo
			t.CategoryGroup = targetGroup
		}
	})

	return Ledger{Accounts: accounts, Months: Recalculate(months, accounts)}, nil
}

// DeleteGroup deletes a category group from every month. Only groups without
// items can be deleted.
func DeleteGroup(months MonthMap, name string) (MonthMap, error) {
	if name == CreditCardPayments {
		return nil, ErrSystemManaged
	}

	if !groupExists(months, name) {
		return nil, fmt.Errorf("%w: %s", ErrGroupNotFound, name)
	}

	for _, m := range months {
		if g := m.Group(name); g != nil && len(g.Items) > 0 {
			return nil, fmt.Errorf("%w: %s", ErrGroupNotEmpty, name)
		}
	}

	result := months.Clone()
	for token, m := range result {
		m.CategoryGroups = slices.DeleteFunc(m.CategoryGroups, func(g CategoryGroup) bool {
			return g.Name == name
		})
		result[token] = m
	}

	return result, nil
}

// holdsMoney reports whether the item has any figures or transactions.
func holdsMoney(l Ledger, name string) bool {
	for _, m := range l.Months {
		item, _ := m.Item(name)
		if item != nil && (!item.Assigned.IsZero() || !item.Activity.IsZero() || !item.Available.IsZero()) {
			return true
		}
	}

	for _, a := range l.Accounts {
		for _, t := range a.Transactions {
			if t.Category == name {
				return true
			}
		}
	}

	return false
}

// findInContext finds the item in its group, falling back to any group.
func findInContext(m *Month, ctx ItemContext) *CategoryItem {
	if g := m.Group(ctx.Group); g != nil {
		for i := range g.Items {
			if g.Items[i].Name == ctx.Name {
				return &g.Items[i]
			}
		}
	}

	item, _ := m.Item(ctx.Name)
	return item
}

// removeItem removes the item from its group, or from any group if it is not there.
func removeItem(m Month, ctx ItemContext) Month {
	removed := false
	if g := m.Group(ctx.Group); g != nil {
		before := len(g.Items)
		g.Items = slices.DeleteFunc(g.Items, func(i CategoryItem) bool { return i.Name == ctx.Name })
		removed = len(g.Items) < before
	}

	if removed {
		return m
	}

	for gi := range m.CategoryGroups {
		g := &m.CategoryGroups[gi]
		g.Items = slices.DeleteFunc(g.Items, func(i CategoryItem) bool { return i.Name == ctx.Name })
	}

	return m
}

// retag returns a copy of the accounts with fn applied to every transaction.
func retag(accounts []Account, fn func(*Transaction)) []Account {
	c := CloneAccounts(accounts)
	for ai := range c {
		for ti := range c[ai].Transactions {
			fn(&c[ai].Transactions[ti])
		}
	}
	return c
}

func itemExists(months MonthMap, name string) bool {
	_, ok := itemGroup(months, name)
	return ok
}

// itemGroup returns the group of the item in the latest month containing it.
func itemGroup(months MonthMap, name string) (string, bool) {
	tokens := months.Months()
	for i := len(tokens) - 1; i >= 0; i-- {
		m := months[tokens[i]]
		if item, group := m.Item(name); item != nil {
			return group, true
		}
	}
	return "", false
}

// itemRef returns the item with the name from the latest month containing it.
func itemRef(months MonthMap, name string) CategoryItem {
	tokens := months.Months()
	for i := len(tokens) - 1; i >= 0; i-- {
		m := months[tokens[i]]
		if item, _ := m.Item(name); item != nil {
			return *item
		}
	}
	return CategoryItem{Name: name}
}

func groupExists(months MonthMap, name string) bool {
	for _, m := range months {
		if m.Group(name) != nil {
			return true
		}
	}
	return false
}
