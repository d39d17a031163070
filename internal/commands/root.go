// Package commands wires the finbook CLI.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/finbook-dev/finbook/internal/buildinfo"
	"github.com/finbook-dev/finbook/internal/config"
	"github.com/finbook-dev/finbook/internal/ledger"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:     "finbook",
		Short:   "Personal finance tracker",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath, "path to finbook.yaml")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newShellCommand(&configPath))
	rootCmd.AddCommand(newAddCommand(&configPath))
	rootCmd.AddCommand(newBudgetCommand(&configPath))
	rootCmd.AddCommand(newReportCommand(&configPath))
	rootCmd.AddCommand(newChartCommand(&configPath))

	return rootCmd
}

// openLedger loads config and rebuilds the ledger from the data files,
// printing any load warnings to stderr.
func openLedger(configPath string) (*config.Config, *ledger.Store, *ledger.Ledger, error) {
	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return nil, nil, nil, err
	}

	store := ledger.NewStore(cfg.Data.Dir)
	l, warnings := store.Load()
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}
	return cfg, store, l, nil
}
