package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBudget(t *testing.T) {
	b, err := NewBudget("Food", dec("500.00"), "June 2025")
	require.NoError(t, err)
	assert.Equal(t, "Food", b.Category)
	assert.True(t, b.Allocated.Equal(dec("500.00")))
	assert.True(t, b.Spent.IsZero())
	assert.Equal(t, "June 2025", b.Period)
	assert.True(t, b.Remaining().Equal(dec("500.00")))
}

func TestNewBudget_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		category  string
		allocated decimal.Decimal
		field     string
	}{
		{"empty category", "", dec("100"), "category"},
		{"whitespace category", "  ", dec("100"), "category"},
		{"zero allocation", "Food", decimal.Zero, "allocated_amount"},
		{"negative allocation", "Food", dec("-5"), "allocated_amount"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBudget(tt.category, tt.allocated, "")
			var verr ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestAddExpense(t *testing.T) {
	b, err := NewBudget("Food", dec("500.00"), "June 2025")
	require.NoError(t, err)

	tx, err := NewTransaction(date(2025, 6, 25), TypeExpense, "Food", dec("50.00"), "groceries")
	require.NoError(t, err)

	require.NoError(t, b.AddExpense(tx))
	assert.True(t, b.Spent.Equal(dec("50.00")))
	assert.True(t, b.Remaining().Equal(dec("450.00")))
}

func TestAddExpense_RejectsIncome(t *testing.T) {
	b, err := NewBudget("Food", dec("500.00"), "")
	require.NoError(t, err)

	tx, err := NewTransaction(date(2025, 6, 25), TypeIncome, "Food", dec("50.00"), "")
	require.NoError(t, err)

	var verr ValidationError
	require.ErrorAs(t, b.AddExpense(tx), &verr)
	assert.True(t, b.Spent.IsZero(), "spent must be unchanged on failure")
}

func TestAddExpense_RejectsMismatchedCategory(t *testing.T) {
	b, err := NewBudget("Food", dec("500.00"), "")
	require.NoError(t, err)

	// Matching is case-sensitive: "food" is not "Food".
	tx, err := NewTransaction(date(2025, 6, 25), TypeExpense, "food", dec("50.00"), "")
	require.NoError(t, err)

	var verr ValidationError
	require.ErrorAs(t, b.AddExpense(tx), &verr)
	assert.True(t, b.Spent.IsZero(), "spent must be unchanged on failure")
}

func TestAddExpense_OverspendGoesNegative(t *testing.T) {
	b, err := NewBudget("Food", dec("100.00"), "")
	require.NoError(t, err)

	tx, err := NewTransaction(date(2025, 6, 25), TypeExpense, "Food", dec("150.00"), "")
	require.NoError(t, err)

	require.NoError(t, b.AddExpense(tx))
	assert.True(t, b.Remaining().Equal(dec("-50.00")), "overspend is permitted, remaining goes negative")
}
