package ledger

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/finbook-dev/finbook/internal/model"
)

// budgetRecord is the on-disk shape of one budget in budgets.json. Pointer
// fields distinguish a missing key from a zero value. remaining is written
// for human readers and recomputed on load.
type budgetRecord struct {
	Category  *string      `json:"category"`
	Allocated *json.Number `json:"allocated_amount"`
	Spent     *json.Number `json:"spent_amount"`
	Remaining json.Number  `json:"remaining"`
	Period    *string      `json:"period"`
}

// WriteBudgets writes budgets as an indented JSON array.
func WriteBudgets(w io.Writer, budgets []*model.Budget) error {
	records := make([]budgetRecord, 0, len(budgets))
	for _, b := range budgets {
		records = append(records, budgetRecord{
			Category:  &b.Category,
			Allocated: numberOf(b.Allocated.String()),
			Spent:     numberOf(b.Spent.String()),
			Remaining: json.Number(b.Remaining().String()),
			Period:    &b.Period,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("writing budgets JSON: %w", err)
	}
	return nil
}

// ReadBudgets reads all budgets from a budgets.json reader. Records missing a
// required key, failing validation, or repeating a category are skipped with
// one warning each.
func ReadBudgets(r io.Reader) ([]*model.Budget, []string, error) {
	var records []budgetRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, nil, fmt.Errorf("parsing budgets JSON: %w", err)
	}

	var budgets []*model.Budget
	var warnings []string
	seen := make(map[string]bool)
	for i, rec := range records {
		b, err := unmarshalBudget(rec)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("skipping budget record %d: %v", i+1, err))
			continue
		}
		if seen[b.Category] {
			warnings = append(warnings, fmt.Sprintf("skipping budget record %d: duplicate category %q", i+1, b.Category))
			continue
		}
		seen[b.Category] = true
		budgets = append(budgets, b)
	}
	return budgets, warnings, nil
}

func unmarshalBudget(rec budgetRecord) (*model.Budget, error) {
	switch {
	case rec.Category == nil:
		return nil, errors.New("missing category")
	case rec.Allocated == nil:
		return nil, errors.New("missing allocated_amount")
	case rec.Spent == nil:
		return nil, errors.New("missing spent_amount")
	case rec.Period == nil:
		return nil, errors.New("missing period")
	}

	allocated, err := model.ParseAmount(rec.Allocated.String())
	if err != nil {
		return nil, fmt.Errorf("parsing allocated_amount: %w", err)
	}
	spent, err := model.ParseAmount(rec.Spent.String())
	if err != nil {
		return nil, fmt.Errorf("parsing spent_amount: %w", err)
	}
	if spent.IsNegative() {
		return nil, model.ValidationError{Field: "spent_amount", Msg: "must be non-negative, got " + spent.String()}
	}

	b, err := model.NewBudget(*rec.Category, allocated, *rec.Period)
	if err != nil {
		return nil, err
	}
	// The running total is stored flat so a load never replays history.
	b.Spent = spent
	return b, nil
}

func numberOf(s string) *json.Number {
	n := json.Number(s)
	return &n
}
