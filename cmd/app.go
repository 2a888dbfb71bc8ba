// Package cmd implements the CLI application to track personal expenses.
package cmd

import (
	"flag"
	"fmt"

	expense "github.com/AhmedHeshamC/expenseTracker"
	"github.com/AhmedHeshamC/expenseTracker/config"
	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "records")
	c.Register(&listCmd{}, "records")
	c.Register(&updateCmd{}, "records")
	c.Register(&deleteCmd{}, "records")

	c.Register(&setBudgetCmd{}, "budgets")
	c.Register(&summaryCmd{}, "budgets")

	c.Register(&exportCmd{}, "interchange")
	c.Register(&importCmd{}, "interchange")

	c.Register(&fmtCmd{}, "maintenance")
	c.Register(&topicCmd{}, "maintenance")
}

// As a CLI application it has a very short lived lifecycle, so it is ok to use global variables.

var expensesFile = flag.String("expenses", "", "Path to the expense document (JSON). Overrides the configuration file.")
var budgetsFile = flag.String("budgets", "", "Path to the budget document (JSON). Overrides the configuration file.")
var configFile = flag.String("config", "", "Path to the configuration file (TOML)")

// Verbose raises the log level to debug.
var Verbose = flag.Bool("v", false, "Verbose output")

// app bundles the resolved configuration with the stores and currency every
// subcommand works against.
type app struct {
	cfg      *config.Config
	expenses expense.ExpenseStore
	budgets  expense.BudgetStore
	currency expense.Currency
}

// newApp resolves the configuration and wires the stores. Global flags win
// over configuration values.
func newApp() (*app, error) {
	cfg, err := config.Load(*configFile)
	if err != nil {
		return nil, err
	}
	if *expensesFile != "" {
		cfg.ExpensesFile = *expensesFile
	}
	if *budgetsFile != "" {
		cfg.BudgetsFile = *budgetsFile
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log.Debug().
		Str("expenses", cfg.ExpensesFile).
		Str("budgets", cfg.BudgetsFile).
		Str("currency", cfg.Currency).
		Msg("documents resolved")
	return &app{
		cfg:      cfg,
		expenses: expense.ExpenseStore{Path: cfg.ExpensesFile},
		budgets:  expense.BudgetStore{Path: cfg.BudgetsFile},
		currency: expense.NewCurrency(cfg.Currency),
	}, nil
}

// resolve maps a raw category onto the configured set.
func (a *app) resolve(category string) string {
	return expense.ResolveCategory(category, a.cfg.Categories, a.cfg.DefaultCategory)
}

// visited reports which flags were explicitly passed on the command line,
// so commands can tell an omitted flag from one set to its zero value.
func visited(f *flag.FlagSet) map[string]bool {
	set := make(map[string]bool)
	f.Visit(func(fl *flag.Flag) { set[fl.Name] = true })
	return set
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when rendering fails (e.g. no terminal).
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
