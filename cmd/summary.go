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

type summaryCmd struct {
	month      int
	category   string
	byCategory bool
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "total spending, optionally against the month's budget" }
func (*summaryCmd) Usage() string {
	return `expense-tracker summary [-m <month>] [-c <category>] [-g]

  Prints the total of the recorded expenses. With a month, the total covers
  that month (any year) and is compared against the month's budget when one
  is set; a month filter takes precedence over a category filter. With -g,
  a per-category breakdown follows.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.month, "m", 0, "Month number to summarize")
	f.IntVar(&c.month, "month", 0, "Month number to summarize")
	f.StringVar(&c.category, "c", "", "Only count expenses of this category")
	f.StringVar(&c.category, "category", "", "Only count expenses of this category")
	f.BoolVar(&c.byCategory, "g", false, "Group totals by category")
	f.BoolVar(&c.byCategory, "by-category", false, "Group totals by category")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := newApp()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	set := visited(f)
	hasMonth := set["m"] || set["month"]

	records := a.expenses.ReadAll()
	budgets := a.budgets.ReadAll()
	report := expense.NewSummaryReport(records, budgets, c.month, hasMonth, c.category, c.byCategory, a.cfg.DefaultCategory)

	fmt.Print(renderer.Summary(report, a.currency))
	return subcommands.ExitSuccess
}
