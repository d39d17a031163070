package ledger

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/finbook-dev/finbook/internal/model"
)

// Header is the CSV header for transactions.csv.
const Header = "date,transaction_type,category,amount,description"

const (
	numFields   = 5
	colDate     = 0
	colType     = 1
	colCategory = 2
	colAmount   = 3
	colDesc     = 4
)

// ReadTransactions reads all transactions from a transactions.csv reader.
// Malformed rows are skipped with one warning each; only a structurally
// unreadable file fails the read itself.
func ReadTransactions(r io.Reader) ([]model.Transaction, []string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // field count is checked per row so bad rows can be skipped

	records, err := cr.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("reading transactions CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil, nil
	}

	// Skip header row.
	var txns []model.Transaction
	var warnings []string
	for i, rec := range records[1:] {
		tx, err := UnmarshalTransaction(rec)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("skipping transaction row %d: %v", i+2, err))
			continue
		}
		txns = append(txns, tx)
	}
	return txns, warnings, nil
}

// WriteTransactions writes transactions to a transactions.csv writer
// (including header).
func WriteTransactions(w io.Writer, txns []model.Transaction) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, tx := range txns {
		if err := cw.Write(MarshalTransaction(tx)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalTransaction converts a Transaction to a CSV row ([]string).
func MarshalTransaction(tx model.Transaction) []string {
	row := make([]string, numFields)
	row[colDate] = tx.Date.Format(model.DateFormat)
	row[colType] = string(tx.Type)
	row[colCategory] = tx.Category
	row[colAmount] = tx.Amount.String()
	row[colDesc] = tx.Description
	return row
}

// UnmarshalTransaction converts a CSV row to a Transaction.
func UnmarshalTransaction(record []string) (model.Transaction, error) {
	if len(record) != numFields {
		return model.Transaction{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	date, err := model.ParseDate(record[colDate])
	if err != nil {
		return model.Transaction{}, err
	}

	amount, err := model.ParseAmount(record[colAmount])
	if err != nil {
		return model.Transaction{}, err
	}

	return model.NewTransaction(date, model.TransactionType(record[colType]), record[colCategory], amount, record[colDesc])
}
