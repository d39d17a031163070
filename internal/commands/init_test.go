package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finbook-dev/finbook/internal/config"
	"github.com/finbook-dev/finbook/internal/ledger"
)

func TestRunInit(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, runInit(dir, "data"))

	// finbook.yaml exists and points at the data dir.
	cfg, err := config.Load(filepath.Join(dir, config.DefaultPath))
	require.NoError(t, err)
	assert.Equal(t, "data", cfg.Data.Dir)

	// The empty data files were written.
	for _, name := range []string{"transactions.csv", "budgets.json"} {
		_, err := os.Stat(filepath.Join(dir, "data", name))
		assert.NoError(t, err, "%s should exist", name)
	}

	// And they load back as an empty ledger.
	l, warnings := ledger.NewStore(filepath.Join(dir, "data")).Load()
	assert.Empty(t, warnings)
	assert.Empty(t, l.Transactions())
	assert.Empty(t, l.Budgets())
}

// writeConfig sets up a project with an absolute data dir so commands can run
// from any working directory.
func writeConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Data.Dir = filepath.Join(dir, "data")
	path := filepath.Join(dir, config.DefaultPath)
	require.NoError(t, config.Save(path, cfg))
	return path
}

func TestRunAddAndBudgetAdd(t *testing.T) {
	configPath := writeConfig(t)

	require.NoError(t, runBudgetAdd(configPath, "Food", "500.00", "June 2025"))
	require.NoError(t, runAdd(configPath, "2025-06-25", "expense", "Food", "50.00", "groceries"))

	_, _, l, err := openLedger(configPath)
	require.NoError(t, err)

	require.Len(t, l.Transactions(), 1)
	b, ok := l.Budget("Food")
	require.True(t, ok)
	assert.Equal(t, "50", b.Spent.String())
	assert.Equal(t, "450", b.Remaining().String())
}

func TestRunBudgetAdd_Duplicate(t *testing.T) {
	configPath := writeConfig(t)

	require.NoError(t, runBudgetAdd(configPath, "Food", "500.00", ""))
	err := runBudgetAdd(configPath, "Food", "300.00", "")
	require.ErrorIs(t, err, ledger.ErrDuplicateBudget)
}

func TestRunAdd_InvalidInput(t *testing.T) {
	configPath := writeConfig(t)

	require.Error(t, runAdd(configPath, "2025-06-25", "transfer", "Food", "10", ""))
	require.Error(t, runAdd(configPath, "someday", "expense", "Food", "10", ""))
	require.Error(t, runAdd(configPath, "2025-06-25", "expense", "Food", "ten", ""))

	_, _, l, err := openLedger(configPath)
	require.NoError(t, err)
	assert.Empty(t, l.Transactions(), "nothing should have been saved")
}
