package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	expense "github.com/AhmedHeshamC/expenseTracker"
	"github.com/AhmedHeshamC/expenseTracker/date"
	"github.com/google/subcommands"
)

type setBudgetCmd struct {
	month  int
	amount string
}

func (*setBudgetCmd) Name() string     { return "set-budget" }
func (*setBudgetCmd) Synopsis() string { return "set the budget for a month" }
func (*setBudgetCmd) Usage() string {
	return `expense-tracker set-budget -m <month> -a <amount>

  Sets the budget for a month number, overwriting any prior value. The
  summary command compares monthly spending against it.
`
}

func (c *setBudgetCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.month, "m", 0, "Month number the budget applies to")
	f.IntVar(&c.month, "month", 0, "Month number the budget applies to")
	f.StringVar(&c.amount, "a", "", "Budget amount, a positive number")
	f.StringVar(&c.amount, "amount", "", "Budget amount, a positive number")
}

func (c *setBudgetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	set := visited(f)
	if (!set["m"] && !set["month"]) || c.amount == "" {
		fmt.Fprintln(os.Stderr, "Error: -m and -a flags are both required.")
		return subcommands.ExitUsageError
	}

	amount, err := expense.ParseAmount(c.amount)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	a, err := newApp()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	budgets := a.budgets.ReadAll()
	budgets.Set(c.month, amount)
	if err := a.budgets.WriteAll(budgets); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Budget for %s set to %s\n", date.MonthName(c.month), a.currency.Fixed(amount))
	return subcommands.ExitSuccess
}
