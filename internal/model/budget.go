package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Budget tracks spending against an allocation for a single category.
// Categories match transactions by exact, case-sensitive string equality.
type Budget struct {
	Category  string
	Allocated decimal.Decimal
	Spent     decimal.Decimal
	Period    string // free-text label, may be empty
}

// NewBudget validates and constructs a Budget with nothing spent yet.
func NewBudget(category string, allocated decimal.Decimal, period string) (*Budget, error) {
	if !nonBlank(category) {
		return nil, ValidationError{Field: "category", Msg: "must be a non-empty string"}
	}
	if !allocated.IsPositive() {
		return nil, ValidationError{Field: "allocated_amount", Msg: "must be positive, got " + allocated.String()}
	}
	return &Budget{
		Category:  category,
		Allocated: allocated,
		Spent:     decimal.Zero,
		Period:    period,
	}, nil
}

// AddExpense applies an expense transaction's amount to this budget.
// Overspending is allowed; Remaining simply goes negative.
func (b *Budget) AddExpense(tx Transaction) error {
	if tx.Type != TypeExpense {
		return ValidationError{Field: "transaction", Msg: fmt.Sprintf("must be an expense, got %q", tx.Type)}
	}
	if tx.Category != b.Category {
		return ValidationError{Field: "transaction", Msg: fmt.Sprintf("category %q does not match budget category %q", tx.Category, b.Category)}
	}
	b.Spent = b.Spent.Add(tx.Amount)
	return nil
}

// Remaining returns the unspent part of the allocation. May be negative.
func (b *Budget) Remaining() decimal.Decimal {
	return b.Allocated.Sub(b.Spent)
}
