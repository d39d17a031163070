// Package report renders ledger query results as terminal text.
package report

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/finbook-dev/finbook/internal/ledger"
	"github.com/finbook-dev/finbook/internal/model"
)

// Money formats an amount for display with two fixed decimal places.
// Storage keeps the minimal decimal form; fixing precision is display-only.
func Money(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-$" + d.Neg().StringFixed(2)
	}
	return "$" + d.StringFixed(2)
}

// Transactions renders the full transaction list in insertion order.
func Transactions(txns []model.Transaction) string {
	if len(txns) == 0 {
		return mutedStyle.Render("No transactions found")
	}
	t := table{
		title:   "Transactions",
		headers: []string{"Date", "Type", "Category", "Amount", "Description"},
	}
	for _, tx := range txns {
		t.rows = append(t.rows, []string{
			tx.Date.Format(model.DateFormat),
			string(tx.Type),
			tx.Category,
			Money(tx.Amount),
			tx.Description,
		})
	}
	return t.render()
}

// Budgets renders all budgets with their computed remaining amounts.
func Budgets(budgets []*model.Budget) string {
	if len(budgets) == 0 {
		return mutedStyle.Render("No budgets found")
	}
	t := table{
		title:   "Budgets",
		headers: []string{"Category", "Allocated", "Spent", "Remaining", "Period"},
	}
	for _, b := range budgets {
		t.rows = append(t.rows, []string{
			b.Category,
			Money(b.Allocated),
			Money(b.Spent),
			Money(b.Remaining()),
			b.Period,
		})
	}
	return t.render()
}

// Totals renders the income/expense/net summary as one line.
func Totals(t ledger.Totals) string {
	if t.Empty() {
		return mutedStyle.Render("No transactions available for report")
	}
	return fmt.Sprintf("%s %s  %s %s  %s %s",
		headerStyle.Render("Total Income:"), valueStyle.Render(Money(t.Income)),
		headerStyle.Render("Total Expenses:"), valueStyle.Render(Money(t.Expenses)),
		headerStyle.Render("Net:"), valueStyle.Render(Money(t.Net)))
}

// CategorySpending renders the expense breakdown by category.
func CategorySpending(spending []ledger.CategorySpend) string {
	if len(spending) == 0 {
		return mutedStyle.Render("No expenses available for report")
	}
	t := table{
		title:   "Category Spending Breakdown",
		headers: []string{"Category", "Total"},
	}
	for _, s := range spending {
		t.rows = append(t.rows, []string{s.Category, Money(s.Total)})
	}
	return t.render()
}

// MonthlySummary renders per-month income and expense totals, oldest first.
func MonthlySummary(months []ledger.MonthSummary) string {
	if len(months) == 0 {
		return mutedStyle.Render("No transactions available for report")
	}
	t := table{
		title:   "Monthly Summary",
		headers: []string{"Month", "Income", "Expenses"},
	}
	for _, m := range months {
		t.rows = append(t.rows, []string{m.Month, Money(m.Income), Money(m.Expenses)})
	}
	return t.render()
}
