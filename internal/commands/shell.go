package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/finbook-dev/finbook/internal/shell"
)

func newShellCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Interactive menu over the ledger",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, store, l, err := openLedger(*configPath)
			if err != nil {
				return err
			}
			return shell.New(l, store, cfg.ChartPath(), os.Stdout).Run()
		},
	}
}
