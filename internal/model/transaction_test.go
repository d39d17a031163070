package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestNewTransaction(t *testing.T) {
	tx, err := NewTransaction(date(2025, 6, 25), TypeIncome, "Salary", dec("1000.00"), "June paycheck")
	require.NoError(t, err)
	assert.True(t, tx.Date.Equal(date(2025, 6, 25)))
	assert.Equal(t, TypeIncome, tx.Type)
	assert.Equal(t, "Salary", tx.Category)
	assert.True(t, tx.Amount.Equal(dec("1000.00")))
	assert.Equal(t, "June paycheck", tx.Description)
}

func TestNewTransaction_ZeroAmountAndEmptyDescription(t *testing.T) {
	tx, err := NewTransaction(date(2025, 1, 1), TypeExpense, "Food", decimal.Zero, "")
	require.NoError(t, err)
	assert.True(t, tx.Amount.IsZero())
	assert.Empty(t, tx.Description)
}

func TestNewTransaction_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		typ      TransactionType
		category string
		amount   decimal.Decimal
		field    string
	}{
		{"unknown type", "transfer", "Food", dec("1"), "type"},
		{"empty type", "", "Food", dec("1"), "type"},
		{"empty category", TypeExpense, "", dec("1"), "category"},
		{"whitespace category", TypeExpense, "   ", dec("1"), "category"},
		{"negative amount", TypeExpense, "Food", dec("-0.01"), "amount"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTransaction(date(2025, 1, 1), tt.typ, tt.category, tt.amount, "")
			require.Error(t, err)
			var verr ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2025-06-25")
	require.NoError(t, err)
	assert.True(t, got.Equal(date(2025, 6, 25)))

	got, err = ParseDate("  2025-06-25 ")
	require.NoError(t, err)
	assert.True(t, got.Equal(date(2025, 6, 25)))

	for _, bad := range []string{"", "25/06/2025", "2025-13-01", "yesterday"} {
		_, err := ParseDate(bad)
		var verr ValidationError
		require.ErrorAs(t, err, &verr, "input %q", bad)
		assert.Equal(t, "date", verr.Field)
	}
}

func TestParseAmount(t *testing.T) {
	got, err := ParseAmount("12.34")
	require.NoError(t, err)
	assert.True(t, got.Equal(dec("12.34")))

	_, err = ParseAmount("twelve")
	var verr ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "amount", verr.Field)
}
