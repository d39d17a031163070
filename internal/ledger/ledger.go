// Package ledger owns the in-memory aggregate of transactions and budgets,
// the reports computed over it, and its persistence to the data files.
package ledger

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finbook-dev/finbook/internal/model"
)

// ErrDuplicateBudget is returned when a budget already exists for a category.
var ErrDuplicateBudget = errors.New("budget already exists for category")

// Ledger is the single mutable aggregate for one session. Transactions keep
// insertion order; budgets are unique per exact category string.
type Ledger struct {
	transactions []model.Transaction
	budgets      []*model.Budget
	byCategory   map[string]*model.Budget
}

// New creates an empty Ledger.
func New() *Ledger {
	return &Ledger{byCategory: make(map[string]*model.Budget)}
}

// AddTransaction validates and records a transaction. For an expense it also
// applies the amount to the budget with the same category; tracked is false
// when the expense has no budget watching it, which is a notice for the
// caller, not an error.
func (l *Ledger) AddTransaction(date time.Time, typ model.TransactionType, category string, amount decimal.Decimal, description string) (model.Transaction, bool, error) {
	tx, err := model.NewTransaction(date, typ, category, amount, description)
	if err != nil {
		return model.Transaction{}, false, err
	}
	l.transactions = append(l.transactions, tx)

	if tx.Type != model.TypeExpense {
		return tx, true, nil
	}
	b, ok := l.byCategory[tx.Category]
	if !ok {
		return tx, false, nil
	}
	if err := b.AddExpense(tx); err != nil {
		return tx, true, err
	}
	return tx, true, nil
}

// AddBudget validates and stores a new budget. The category must not already
// have one.
func (l *Ledger) AddBudget(category string, allocated decimal.Decimal, period string) (*model.Budget, error) {
	if _, ok := l.byCategory[category]; ok {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateBudget, category)
	}
	b, err := model.NewBudget(category, allocated, period)
	if err != nil {
		return nil, err
	}
	l.budgets = append(l.budgets, b)
	l.byCategory[b.Category] = b
	return b, nil
}

// Transactions returns all transactions in insertion order.
func (l *Ledger) Transactions() []model.Transaction {
	return l.transactions
}

// Budgets returns all budgets in insertion order.
func (l *Ledger) Budgets() []*model.Budget {
	return l.budgets
}

// Budget returns the budget for an exact category, if one exists.
func (l *Ledger) Budget(category string) (*model.Budget, bool) {
	b, ok := l.byCategory[category]
	return b, ok
}

// Totals holds income, expense, and net sums over the whole ledger.
type Totals struct {
	Income   decimal.Decimal
	Expenses decimal.Decimal
	Net      decimal.Decimal
}

// Empty reports whether there is no data behind the totals.
func (t Totals) Empty() bool {
	return t.Income.IsZero() && t.Expenses.IsZero()
}

// Totals sums transaction amounts by type.
func (l *Ledger) Totals() Totals {
	t := Totals{Income: decimal.Zero, Expenses: decimal.Zero}
	for _, tx := range l.transactions {
		switch tx.Type {
		case model.TypeIncome:
			t.Income = t.Income.Add(tx.Amount)
		case model.TypeExpense:
			t.Expenses = t.Expenses.Add(tx.Amount)
		}
	}
	t.Net = t.Income.Sub(t.Expenses)
	return t
}

// CategorySpend is one category's expense total.
type CategorySpend struct {
	Category string
	Total    decimal.Decimal
}

// SpendingByCategory sums expense amounts per category, ordered by each
// category's first appearance.
func (l *Ledger) SpendingByCategory() []CategorySpend {
	idx := make(map[string]int)
	var out []CategorySpend
	for _, tx := range l.transactions {
		if tx.Type != model.TypeExpense {
			continue
		}
		i, ok := idx[tx.Category]
		if !ok {
			i = len(out)
			idx[tx.Category] = i
			out = append(out, CategorySpend{Category: tx.Category, Total: decimal.Zero})
		}
		out[i].Total = out[i].Total.Add(tx.Amount)
	}
	return out
}

// MonthSummary is one calendar month's income and expense totals.
type MonthSummary struct {
	Month    string // "YYYY-MM"
	Income   decimal.Decimal
	Expenses decimal.Decimal
}

// MonthlySummary groups all transactions by calendar month, oldest month
// first regardless of insertion order.
func (l *Ledger) MonthlySummary() []MonthSummary {
	byMonth := make(map[string]*MonthSummary)
	for _, tx := range l.transactions {
		m := tx.Date.Format("2006-01")
		s, ok := byMonth[m]
		if !ok {
			s = &MonthSummary{Month: m, Income: decimal.Zero, Expenses: decimal.Zero}
			byMonth[m] = s
		}
		switch tx.Type {
		case model.TypeIncome:
			s.Income = s.Income.Add(tx.Amount)
		case model.TypeExpense:
			s.Expenses = s.Expenses.Add(tx.Amount)
		}
	}

	months := make([]string, 0, len(byMonth))
	for m := range byMonth {
		months = append(months, m)
	}
	sort.Strings(months)

	out := make([]MonthSummary, 0, len(months))
	for _, m := range months {
		out = append(out, *byMonth[m])
	}
	return out
}
