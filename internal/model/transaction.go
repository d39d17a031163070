package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies a transaction as money in or money out.
type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// DateFormat is the calendar-date layout used for storage and input.
const DateFormat = "2006-01-02"

// Transaction is one validated financial event. It is a value object and is
// never mutated after construction.
type Transaction struct {
	Date        time.Time // date only, no time component
	Type        TransactionType
	Category    string
	Amount      decimal.Decimal
	Description string
}

// NewTransaction validates and constructs a Transaction.
func NewTransaction(date time.Time, typ TransactionType, category string, amount decimal.Decimal, description string) (Transaction, error) {
	if typ != TypeIncome && typ != TypeExpense {
		return Transaction{}, ValidationError{Field: "type", Msg: fmt.Sprintf("must be %q or %q, got %q", TypeIncome, TypeExpense, typ)}
	}
	if !nonBlank(category) {
		return Transaction{}, ValidationError{Field: "category", Msg: "must be a non-empty string"}
	}
	if amount.IsNegative() {
		return Transaction{}, ValidationError{Field: "amount", Msg: "must be non-negative, got " + amount.String()}
	}
	return Transaction{
		Date:        date,
		Type:        typ,
		Category:    category,
		Amount:      amount,
		Description: description,
	}, nil
}
