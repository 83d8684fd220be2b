package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/envelope-zero/ledger/internal/ledger"
	"github.com/envelope-zero/ledger/internal/models"
	"github.com/envelope-zero/ledger/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

var (
	colorText   = lipgloss.Color("#FFFCF0")
	colorMuted  = lipgloss.Color("#6F6E69")
	colorAccent = lipgloss.Color("#3AA99F")
	colorRed    = lipgloss.Color("#D14D41")

	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorText)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent).Padding(0, 1)
	groupStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorMuted).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Foreground(colorText).Padding(0, 1)
	amountStyle = cellStyle.Align(lipgloss.Right)
	overspent   = amountStyle.Foreground(colorRed)
)

// renderMonth renders all categories of the month as a table.
func renderMonth(budget models.Budget, month types.Month, m ledger.Month) string {
	symbol := budget.Symbol()

	var groupRows []int
	var negativeRows []int
	rows := make([][]string, 0)
	for _, g := range m.CategoryGroups {
		groupRows = append(groupRows, len(rows))
		rows = append(rows, []string{g.Name, "", "", ""})

		for _, i := range g.Items {
			if i.Available.IsNegative() {
				negativeRows = append(negativeRows, len(rows))
			}

			rows = append(rows, []string{
				"  " + i.Name,
				formatAmount(i.Assigned, symbol),
				formatAmount(i.Activity, symbol),
				formatAmount(i.Available, symbol),
			})
		}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorMuted)).
		Headers("Category", "Assigned", "Activity", "Available").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case slices.Contains(groupRows, row):
				return groupStyle
			case col == 0:
				return cellStyle
			case col == 3 && slices.Contains(negativeRows, row):
				return overspent
			default:
				return amountStyle
			}
		})

	title := titleStyle.Render(fmt.Sprintf("%s  %s", budget.Name, month))
	rta := fmt.Sprintf("%s: %s", ledger.ReadyToAssignCategory, formatAmount(m.ReadyToAssign, symbol))

	return lipgloss.JoinVertical(lipgloss.Left, title, t.String(), rta)
}

// formatAmount formats the amount with two decimals and the currency symbol.
func formatAmount(amount decimal.Decimal, symbol string) string {
	if symbol == "" {
		return amount.StringFixed(2)
	}

	return fmt.Sprintf("%s %s", amount.StringFixed(2), symbol)
}
