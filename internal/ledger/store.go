package ledger

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/finbook-dev/finbook/internal/model"
)

const (
	transactionsFile = "transactions.csv"
	budgetsFile      = "budgets.json"
)

// Store persists a Ledger under a data directory as whole-file snapshots:
// transactions.csv and budgets.json. Last write wins; there is no locking.
type Store struct {
	dir string
}

// NewStore creates a Store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// TransactionsPath returns the path of the transactions file.
func (s *Store) TransactionsPath() string {
	return filepath.Join(s.dir, transactionsFile)
}

// BudgetsPath returns the path of the budgets file.
func (s *Store) BudgetsPath() string {
	return filepath.Join(s.dir, budgetsFile)
}

// Save overwrites both data files with the ledger's current state. Each file
// is written independently, so a failed transactions write never skips the
// budgets write; failures are aggregated into one error. The in-memory ledger
// is never modified, so a failed save loses nothing.
func (s *Store) Save(l *Ledger) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}
	return errors.Join(
		s.saveTransactions(l.Transactions()),
		s.saveBudgets(l.Budgets()),
	)
}

// Load rebuilds a Ledger from the data files. A missing file is an empty
// collection. Malformed records are skipped with one warning each, and a file
// that exists but is wholly unreadable contributes one summary warning; the
// load continues either way with whatever valid data remains.
func (s *Store) Load() (*Ledger, []string) {
	var warnings []string

	txns, w, err := s.loadTransactions()
	warnings = append(warnings, w...)
	if err != nil {
		warnings = append(warnings, fmt.Sprintf("loading transactions: %v", err))
	}

	budgets, w, err := s.loadBudgets()
	warnings = append(warnings, w...)
	if err != nil {
		warnings = append(warnings, fmt.Sprintf("loading budgets: %v", err))
	}

	l := New()
	l.transactions = txns
	for _, b := range budgets {
		// Spent comes from the file; transactions are not replayed.
		l.budgets = append(l.budgets, b)
		l.byCategory[b.Category] = b
	}
	return l, warnings
}

func (s *Store) saveTransactions(txns []model.Transaction) error {
	f, err := os.Create(s.TransactionsPath())
	if err != nil {
		return fmt.Errorf("creating transactions file: %w", err)
	}
	defer f.Close()

	if err := WriteTransactions(f, txns); err != nil {
		return fmt.Errorf("writing transactions: %w", err)
	}
	return nil
}

func (s *Store) saveBudgets(budgets []*model.Budget) error {
	f, err := os.Create(s.BudgetsPath())
	if err != nil {
		return fmt.Errorf("creating budgets file: %w", err)
	}
	defer f.Close()

	return WriteBudgets(f, budgets)
}

func (s *Store) loadTransactions() ([]model.Transaction, []string, error) {
	f, err := os.Open(s.TransactionsPath())
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("opening transactions file: %w", err)
	}
	defer f.Close()

	return ReadTransactions(f)
}

func (s *Store) loadBudgets() ([]*model.Budget, []string, error) {
	f, err := os.Open(s.BudgetsPath())
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("opening budgets file: %w", err)
	}
	defer f.Close()

	return ReadBudgets(f)
}
