package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/finbook-dev/finbook/internal/viz"
)

func newChartCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "chart",
		Short: "Write a pie chart of category spending",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, l, err := openLedger(*configPath)
			if err != nil {
				return err
			}

			ok, err := viz.Save(cfg.ChartPath(), l.SpendingByCategory())
			if err != nil {
				return err
			}
			if !ok {
				fmt.Println("No expenses available for visualization")
				return nil
			}
			fmt.Printf("Pie chart saved to %s\n", cfg.ChartPath())
			return nil
		},
	}
}
