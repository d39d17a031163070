package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/finbook-dev/finbook/internal/config"
	"github.com/finbook-dev/finbook/internal/ledger"
)

func newInitCommand() *cobra.Command {
	var dataDir string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new finbook project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(absDir, dataDir)
		},
	}

	cmd.Flags().StringVar(&dataDir, "data-dir", "data", "data directory, relative to the project")

	return cmd
}

func runInit(dir, dataDir string) error {
	if err := os.MkdirAll(filepath.Join(dir, dataDir), 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	// Write finbook.yaml.
	cfg := config.Default()
	cfg.Data.Dir = dataDir
	if err := config.Save(filepath.Join(dir, config.DefaultPath), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Write empty data files so the layout is visible from day one.
	store := ledger.NewStore(filepath.Join(dir, dataDir))
	if err := store.Save(ledger.New()); err != nil {
		return fmt.Errorf("writing data files: %w", err)
	}

	fmt.Printf("Initialized finbook project at %s\n", dir)
	return nil
}
