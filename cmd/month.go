package cmd

import (
	"fmt"

	"github.com/envelope-zero/ledger/internal/ledger"
	"github.com/envelope-zero/ledger/internal/models"
	"github.com/envelope-zero/ledger/internal/types"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	flagBudget    string
	flagMonth     string
	flagDirection string
)

var monthCmd = &cobra.Command{
	Use:   "month",
	Short: "Calculate a month of a budget",
	Long:  "Navigates to the month, saves the result and prints all categories with their assigned, activity and available amounts.",
	RunE:  runMonth,
}

var readyToAssignCmd = &cobra.Command{
	Use:   "ready-to-assign",
	Short: "Print the money that is ready to assign in a month",
	RunE:  runReadyToAssign,
}

func init() {
	for _, c := range []*cobra.Command{monthCmd, readyToAssignCmd} {
		c.Flags().StringVar(&flagBudget, "budget", "", "ID of the budget")
		c.Flags().StringVar(&flagMonth, "month", "", "The month in YYYY-MM format")
		_ = c.MarkFlagRequired("budget")
		_ = c.MarkFlagRequired("month")
		rootCmd.AddCommand(c)
	}

	monthCmd.Flags().StringVar(&flagDirection, "direction", string(ledger.Forward), "Navigation direction, forward or backward")
}

// monthArguments parses the budget and month flags, connects to the database
// and loads the budget.
func monthArguments() (models.Budget, types.Month, error) {
	budgetID, err := uuid.Parse(flagBudget)
	if err != nil {
		return models.Budget{}, types.Month{}, fmt.Errorf("budget '%s' is not a valid ID: %w", flagBudget, err)
	}

	month, err := types.ParseMonth(flagMonth)
	if err != nil {
		return models.Budget{}, types.Month{}, err
	}

	err = connect(cfg.DBPath)
	if err != nil {
		return models.Budget{}, types.Month{}, err
	}

	var budget models.Budget
	err = models.DB.First(&budget, "id = ?", budgetID).Error
	if err != nil {
		return models.Budget{}, types.Month{}, fmt.Errorf("budget %s: %w", budgetID, err)
	}

	return budget, month, nil
}

func runMonth(cmd *cobra.Command, _ []string) error {
	direction := ledger.Direction(flagDirection)
	if direction != ledger.Forward && direction != ledger.Backward {
		return fmt.Errorf("direction must be '%s' or '%s', is '%s'", ledger.Forward, ledger.Backward, flagDirection)
	}

	budget, month, err := monthArguments()
	if err != nil {
		return err
	}

	l, err := models.LoadLedger(models.DB, budget.ID)
	if err != nil {
		return err
	}

	months := ledger.ComputeMonth(l.Months, l.Accounts, month, direction)
	err = models.SaveMonths(models.DB, budget.ID, months)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), renderMonth(budget, month, months[month.String()]))
	return err
}

func runReadyToAssign(cmd *cobra.Command, _ []string) error {
	budget, month, err := monthArguments()
	if err != nil {
		return err
	}

	l, err := models.LoadLedger(models.DB, budget.ID)
	if err != nil {
		return err
	}

	rta := ledger.ReadyToAssign(ledger.Recalculate(l.Months, l.Accounts), l.Accounts, month)
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", month, formatAmount(rta, budget.Symbol()))
	return err
}
