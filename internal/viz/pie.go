// Package viz renders ledger data as chart images.
package viz

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/finbook-dev/finbook/internal/ledger"
)

// WritePie renders a proportional pie chart of expense categories as a PNG.
// spending must be non-empty.
func WritePie(w io.Writer, spending []ledger.CategorySpend) error {
	values := make([]chart.Value, 0, len(spending))
	for _, s := range spending {
		values = append(values, chart.Value{
			Label: s.Category,
			Value: s.Total.InexactFloat64(),
		})
	}

	pie := chart.PieChart{
		Title:  "Category Spending Breakdown",
		Width:  800,
		Height: 600,
		Values: values,
	}
	if err := pie.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("rendering pie chart: %w", err)
	}
	return nil
}

// Save writes the pie chart PNG to path. When there is no expense data it
// writes nothing and reports false, which is not an error.
func Save(path string, spending []ledger.CategorySpend) (bool, error) {
	if len(spending) == 0 {
		return false, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("creating chart dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return false, fmt.Errorf("creating chart file: %w", err)
	}
	defer f.Close()

	if err := WritePie(f, spending); err != nil {
		return false, err
	}
	return true, nil
}
