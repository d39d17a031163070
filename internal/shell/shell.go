// Package shell provides the interactive menu loop over a ledger.
package shell

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/huh"

	"github.com/finbook-dev/finbook/internal/ledger"
	"github.com/finbook-dev/finbook/internal/model"
	"github.com/finbook-dev/finbook/internal/report"
	"github.com/finbook-dev/finbook/internal/viz"
)

const (
	actionAddTransaction   = "add-transaction"
	actionAddBudget        = "add-budget"
	actionViewTransactions = "view-transactions"
	actionViewBudgets      = "view-budgets"
	actionSave             = "save"
	actionLoad             = "load"
	actionReportTotals     = "report-totals"
	actionReportCategories = "report-categories"
	actionReportMonthly    = "report-monthly"
	actionChart            = "chart"
	actionExit             = "exit"
)

// Shell drives the fixed menu of operations over one ledger. Recoverable
// failures are printed and return the user to the menu; the loop only ends on
// Exit or an aborted form.
type Shell struct {
	ledger    *ledger.Ledger
	store     *ledger.Store
	chartPath string
	out       io.Writer
}

// New creates a Shell over an already-loaded ledger.
func New(l *ledger.Ledger, store *ledger.Store, chartPath string, out io.Writer) *Shell {
	return &Shell{ledger: l, store: store, chartPath: chartPath, out: out}
}

// Run loops over the menu until the user exits.
func (s *Shell) Run() error {
	for {
		choice, err := s.pickAction()
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return err
		}

		if choice == actionExit {
			s.printf("Goodbye!\n")
			return nil
		}

		if err := s.dispatch(choice); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				continue // back to the menu
			}
			return err
		}
	}
}

func (s *Shell) pickAction() (string, error) {
	var choice string
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Personal Finance Tracker").
			Options(
				huh.NewOption("Add transaction", actionAddTransaction),
				huh.NewOption("Add budget", actionAddBudget),
				huh.NewOption("View transactions", actionViewTransactions),
				huh.NewOption("View budgets", actionViewBudgets),
				huh.NewOption("Save data", actionSave),
				huh.NewOption("Load data", actionLoad),
				huh.NewOption("Report: total income and expenses", actionReportTotals),
				huh.NewOption("Report: category spending breakdown", actionReportCategories),
				huh.NewOption("Report: monthly summary", actionReportMonthly),
				huh.NewOption("Visualize: category spending pie chart", actionChart),
				huh.NewOption("Exit", actionExit),
			).
			Value(&choice),
	))
	if err := form.Run(); err != nil {
		return "", err
	}
	return choice, nil
}

func (s *Shell) dispatch(choice string) error {
	switch choice {
	case actionAddTransaction:
		return s.promptTransaction()
	case actionAddBudget:
		return s.promptBudget()
	case actionViewTransactions:
		s.printf("%s\n", report.Transactions(s.ledger.Transactions()))
	case actionViewBudgets:
		s.printf("%s\n", report.Budgets(s.ledger.Budgets()))
	case actionSave:
		s.save()
	case actionLoad:
		s.load()
	case actionReportTotals:
		s.printf("%s\n", report.Totals(s.ledger.Totals()))
	case actionReportCategories:
		s.printf("%s\n", report.CategorySpending(s.ledger.SpendingByCategory()))
	case actionReportMonthly:
		s.printf("%s\n", report.MonthlySummary(s.ledger.MonthlySummary()))
	case actionChart:
		s.chart()
	}
	return nil
}

func (s *Shell) promptTransaction() error {
	var dateStr, typStr, category, amountStr, description string
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Date (YYYY-MM-DD)").
			Validate(func(v string) error {
				_, err := model.ParseDate(v)
				return err
			}).
			Value(&dateStr),
		huh.NewSelect[string]().
			Title("Type").
			Options(
				huh.NewOption("income", string(model.TypeIncome)),
				huh.NewOption("expense", string(model.TypeExpense)),
			).
			Value(&typStr),
		huh.NewInput().Title("Category").Value(&category),
		huh.NewInput().
			Title("Amount").
			Validate(func(v string) error {
				_, err := model.ParseAmount(v)
				return err
			}).
			Value(&amountStr),
		huh.NewInput().Title("Description (optional)").Value(&description),
	))
	if err := form.Run(); err != nil {
		return err
	}

	s.addTransaction(dateStr, model.TransactionType(typStr), category, amountStr, description)
	return nil
}

func (s *Shell) promptBudget() error {
	var category, amountStr, period string
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Budget category").Value(&category),
		huh.NewInput().
			Title("Allocated amount").
			Validate(func(v string) error {
				_, err := model.ParseAmount(v)
				return err
			}).
			Value(&amountStr),
		huh.NewInput().Title("Budget period (optional)").Value(&period),
	))
	if err := form.Run(); err != nil {
		return err
	}

	s.addBudget(category, amountStr, period)
	return nil
}

func (s *Shell) addTransaction(dateStr string, typ model.TransactionType, category, amountStr, description string) {
	date, err := model.ParseDate(dateStr)
	if err != nil {
		s.printf("Invalid input: %v\n", err)
		return
	}
	amount, err := model.ParseAmount(amountStr)
	if err != nil {
		s.printf("Invalid input: %v\n", err)
		return
	}

	_, tracked, err := s.ledger.AddTransaction(date, typ, category, amount, description)
	if err != nil {
		s.printf("Invalid input: %v\n", err)
		return
	}
	if typ == model.TypeExpense && !tracked {
		s.printf("No budget found for category %q\n", category)
	}
	s.printf("Transaction recorded\n")
}

func (s *Shell) addBudget(category, amountStr, period string) {
	amount, err := model.ParseAmount(amountStr)
	if err != nil {
		s.printf("Invalid input: %v\n", err)
		return
	}

	if _, err := s.ledger.AddBudget(category, amount, period); err != nil {
		s.printf("Invalid input: %v\n", err)
		return
	}
	s.printf("Budget recorded\n")
}

func (s *Shell) save() {
	if err := s.store.Save(s.ledger); err != nil {
		s.printf("Error saving data: %v\n", err)
		return
	}
	s.printf("Data saved successfully\n")
}

func (s *Shell) load() {
	l, warnings := s.store.Load()
	for _, w := range warnings {
		s.printf("warning: %s\n", w)
	}
	s.ledger = l
	s.printf("Data loaded successfully\n")
}

func (s *Shell) chart() {
	ok, err := viz.Save(s.chartPath, s.ledger.SpendingByCategory())
	if err != nil {
		s.printf("Error saving chart: %v\n", err)
		return
	}
	if !ok {
		s.printf("No expenses available for visualization\n")
		return
	}
	s.printf("Pie chart saved to %s\n", s.chartPath)
}

func (s *Shell) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}
