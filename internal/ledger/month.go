package ledger

import (
	"github.com/envelope-zero/ledger/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Direction is the direction of navigation to a month.
type Direction string

const (
	Forward  Direction = "forward"
	Backward Direction = "backward"
)

// ComputeMonth resolves the category structure of the month and recalculates
// all months.
//
// A month that does not exist yet is seeded. Navigating forward copies the
// categories and targets of the latest earlier month with nothing assigned.
// Otherwise, the structure of the latest existing month is copied with all
// figures zeroed. The month, new or not, then gets all groups and items of
// other months it is missing, existing values are kept.
//
// Calling ComputeMonth again with the same input returns the same result.
func ComputeMonth(months MonthMap, accounts []Account, month types.Month, direction Direction) MonthMap {
	result := months.Clone()
	token := month.String()

	current, ok := result[token]
	switch {
	case ok:
	case direction == Forward && len(result.Before(month)) > 0:
		before := result.Before(month)
		current = copyForward(result[before[len(before)-1]])
	case len(result) > 0:
		tokens := result.Months()
		current = createEmptyCategories(result[tokens[len(tokens)-1]])
	default:
		current = Month{CategoryGroups: []CategoryGroup{}}
	}

	result[token] = current
	result[token] = unionCategories(result, token)

	return Recalculate(EnsureCreditCardItems(result, accounts), accounts)
}

// copyForward copies names, IDs and targets. Nothing is assigned.
func copyForward(previous Month) Month {
	m := createEmptyCategories(previous)
	for gi, g := range previous.CategoryGroups {
		for ii, item := range g.Items {
			if item.Target != nil {
				t := *item.Target
				t.AmountNeeded = decimal.Zero
				m.CategoryGroups[gi].Items[ii].Target = &t
			}
		}
	}
	return m
}

// createEmptyCategories copies the structure of a month with all figures zeroed.
func createEmptyCategories(source Month) Month {
	m := Month{CategoryGroups: make([]CategoryGroup, 0, len(source.CategoryGroups))}
	for _, g := range source.CategoryGroups {
		group := CategoryGroup{Name: g.Name, Items: make([]CategoryItem, 0, len(g.Items))}
		for _, item := range g.Items {
			group.Items = append(group.Items, emptyItem(item))
		}
		m.CategoryGroups = append(m.CategoryGroups, group)
	}
	return m
}

func emptyItem(item CategoryItem) CategoryItem {
	return CategoryItem{
		ID:        item.ID,
		Name:      item.Name,
		Assigned:  decimal.Zero,
		Activity:  decimal.Zero,
		Available: decimal.Zero,
	}
}

// unionCategories adds all groups and items of other months that the month
// with the token is missing.
func unionCategories(months MonthMap, token string) Month {
	current := months[token]

	for _, k := range months.Months() {
		if k == token {
			continue
		}

		for _, g := range months[k].CategoryGroups {
			group := current.Group(g.Name)
			if group == nil {
				current.CategoryGroups = append(current.CategoryGroups, CategoryGroup{Name: g.Name, Items: []CategoryItem{}})
				group = &current.CategoryGroups[len(current.CategoryGroups)-1]
			}

			for _, item := range g.Items {
				if current.find(item) == nil {
					group.Items = append(group.Items, emptyItem(item))
				}
			}
		}
	}

	return current
}

// EnsureCreditCardItems adds an item for every credit account to the
// Credit Card Payments group of every month. The group is created if needed.
//
// Each card has one ID in all months. It is the ID of the card's item in the
// earliest month that has one, items of the card in other months get it too.
func EnsureCreditCardItems(months MonthMap, accounts []Account) MonthMap {
	names := creditAccountNames(accounts)
	if len(names) == 0 {
		return months
	}

	result := months.Clone()
	ids := make(map[string]uuid.UUID, len(names))
	for _, token := range result.Months() {
		m := result[token]
		if g := m.Group(CreditCardPayments); g != nil {
			for _, item := range g.Items {
				if _, ok := ids[item.Name]; !ok && item.ID != uuid.Nil {
					ids[item.Name] = item.ID
				}
			}
		}
	}

	for _, name := range names {
		if _, ok := ids[name]; !ok {
			ids[name] = uuid.New()
		}
	}

	for token, m := range result {
		group := m.Group(CreditCardPayments)
		if group == nil {
			m.CategoryGroups = append(m.CategoryGroups, CategoryGroup{Name: CreditCardPayments, Items: []CategoryItem{}})
			group = &m.CategoryGroups[len(m.CategoryGroups)-1]
		}

		for i := range group.Items {
			if id, ok := ids[group.Items[i].Name]; ok {
				group.Items[i].ID = id
			}
		}

		for _, name := range names {
			if item, _ := m.Item(name); item != nil {
				continue
			}

			group.Items = append(group.Items, CategoryItem{
				ID:        ids[name],
				Name:      name,
				Assigned:  decimal.Zero,
				Activity:  decimal.Zero,
				Available: decimal.Zero,
			})
		}

		result[token] = m
	}

	return result
}

// Recalculate derives activity, available, targets, assignable money and
// Ready to Assign for every month from the transactions and assignments.
//
// Months are processed in chronological order so that every month builds on
// freshly calculated earlier months.
func Recalculate(months MonthMap, accounts []Account) MonthMap {
	result := months.Clone()
	tokens := result.Months()

	for _, token := range tokens {
		month, err := types.ParseMonth(token)
		if err != nil {
			continue
		}

		m := result[token]
		for gi := range m.CategoryGroups {
			g := &m.CategoryGroups[gi]
			for ii := range g.Items {
				item := &g.Items[ii]

				if g.Name == CreditCardPayments {
					item.Activity = CreditCardActivity(result, accounts, month, item.Name)
					item.Available = priorAvailable(result, month, *item).Add(item.Activity)
				} else {
					item.Activity = ActivityForCategory(accounts, month, item.Name)
					item.Available = item.Assigned.Add(item.Activity).Add(carryover(result, month, *item))
				}

				if item.Target != nil {
					evaluation := EvaluateTarget(*item.Target, *item, result, month)
					if evaluation.Expired {
						item.Target = nil
					} else {
						item.Target.AmountNeeded = evaluation.AmountNeeded
					}
				}
			}
		}

		m.AssignableMoney = AssignableMoney(accounts, month)
		result[token] = m
	}

	for _, token := range tokens {
		month, err := types.ParseMonth(token)
		if err != nil {
			continue
		}

		m := result[token]
		m.ReadyToAssign = ReadyToAssign(result, accounts, month)
		result[token] = m
	}

	return result
}
