package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	expense "github.com/AhmedHeshamC/expenseTracker"
	"github.com/AhmedHeshamC/expenseTracker/renderer"
	"github.com/google/subcommands"
)

type listCmd struct {
	category string
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list recorded expenses" }
func (*listCmd) Usage() string {
	return `expense-tracker list [-c <category>]

  Lists the recorded expenses as a table, in store order, optionally
  narrowed to one category (case-insensitive).
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.category, "c", "", "Only list expenses of this category")
	f.StringVar(&c.category, "category", "", "Only list expenses of this category")
}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := newApp()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	records := a.expenses.ReadAll()
	if c.category != "" {
		records = expense.FilterByCategory(records, c.category, a.cfg.DefaultCategory)
	}
	if len(records) == 0 {
		fmt.Println("No expenses found")
		return subcommands.ExitSuccess
	}

	fmt.Print(renderer.Table(records, a.currency, a.cfg.DefaultCategory))
	return subcommands.ExitSuccess
}
