package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/finbook-dev/finbook/internal/model"
	"github.com/finbook-dev/finbook/internal/report"
)

func newAddCommand(configPath *string) *cobra.Command {
	var dateStr string
	var description string

	cmd := &cobra.Command{
		Use:   "add <income|expense> <category> <amount>",
		Short: "Record a transaction",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(*configPath, dateStr, model.TransactionType(args[0]), args[1], args[2], description)
		},
	}

	cmd.Flags().StringVar(&dateStr, "date", time.Now().Format(model.DateFormat), "transaction date (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&description, "description", "m", "", "optional description")

	return cmd
}

func runAdd(configPath, dateStr string, typ model.TransactionType, category, amountStr, description string) error {
	_, store, l, err := openLedger(configPath)
	if err != nil {
		return err
	}

	date, err := model.ParseDate(dateStr)
	if err != nil {
		return err
	}
	amount, err := model.ParseAmount(amountStr)
	if err != nil {
		return err
	}

	tx, tracked, err := l.AddTransaction(date, typ, category, amount, description)
	if err != nil {
		return err
	}

	if err := store.Save(l); err != nil {
		return err
	}

	if tx.Type == model.TypeExpense && !tracked {
		fmt.Printf("No budget found for category %q\n", category)
	}
	fmt.Printf("Recorded %s %s in %s on %s\n", tx.Type, report.Money(tx.Amount), tx.Category, tx.Date.Format(model.DateFormat))
	return nil
}
