package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/finbook-dev/finbook/internal/model"
	"github.com/finbook-dev/finbook/internal/report"
)

func newBudgetCommand(configPath *string) *cobra.Command {
	budgetCmd := &cobra.Command{
		Use:   "budget",
		Short: "Manage per-category budgets",
	}
	budgetCmd.AddCommand(newBudgetAddCommand(configPath))
	budgetCmd.AddCommand(newBudgetListCommand(configPath))
	return budgetCmd
}

func newBudgetAddCommand(configPath *string) *cobra.Command {
	var period string

	cmd := &cobra.Command{
		Use:   "add <category> <amount>",
		Short: "Create a budget for a category",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBudgetAdd(*configPath, args[0], args[1], period)
		},
	}

	cmd.Flags().StringVar(&period, "period", "", "optional period label, e.g. \"June 2025\"")

	return cmd
}

func newBudgetListCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all budgets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, l, err := openLedger(*configPath)
			if err != nil {
				return err
			}
			fmt.Println(report.Budgets(l.Budgets()))
			return nil
		},
	}
}

func runBudgetAdd(configPath, category, amountStr, period string) error {
	_, store, l, err := openLedger(configPath)
	if err != nil {
		return err
	}

	amount, err := model.ParseAmount(amountStr)
	if err != nil {
		return err
	}

	b, err := l.AddBudget(category, amount, period)
	if err != nil {
		return err
	}

	if err := store.Save(l); err != nil {
		return err
	}

	fmt.Printf("Budget created: %s allocated to %s\n", report.Money(b.Allocated), b.Category)
	return nil
}
