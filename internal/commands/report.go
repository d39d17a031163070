package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/finbook-dev/finbook/internal/report"
)

func newReportCommand(configPath *string) *cobra.Command {
	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Reports over the recorded transactions",
	}

	reportCmd.AddCommand(&cobra.Command{
		Use:   "totals",
		Short: "Total income, expenses, and net balance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, l, err := openLedger(*configPath)
			if err != nil {
				return err
			}
			fmt.Println(report.Totals(l.Totals()))
			return nil
		},
	})

	reportCmd.AddCommand(&cobra.Command{
		Use:   "categories",
		Short: "Expense totals grouped by category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, l, err := openLedger(*configPath)
			if err != nil {
				return err
			}
			fmt.Println(report.CategorySpending(l.SpendingByCategory()))
			return nil
		},
	})

	reportCmd.AddCommand(&cobra.Command{
		Use:   "monthly",
		Short: "Income and expenses grouped by calendar month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, l, err := openLedger(*configPath)
			if err != nil {
				return err
			}
			fmt.Println(report.MonthlySummary(l.MonthlySummary()))
			return nil
		},
	})

	return reportCmd
}
