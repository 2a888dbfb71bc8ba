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

type addCmd struct {
	description string
	amount      string
	category    string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a new expense" }
func (*addCmd) Usage() string {
	return `expense-tracker add -d <description> -a <amount> [-c <category>]

  Records a new expense dated today. The identifier is generated
  automatically; the category defaults when omitted or unrecognized.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.description, "d", "", "Description of the expense")
	f.StringVar(&c.description, "description", "", "Description of the expense")
	f.StringVar(&c.amount, "a", "", "Amount spent, a positive number")
	f.StringVar(&c.amount, "amount", "", "Amount spent, a positive number")
	f.StringVar(&c.category, "c", "", "Category of the expense")
	f.StringVar(&c.category, "category", "", "Category of the expense")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.description == "" || c.amount == "" {
		fmt.Fprintln(os.Stderr, "Error: -d and -a flags are both required.")
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

	records := a.expenses.ReadAll()
	e := expense.Expense{
		ID:          expense.NextID(records),
		Date:        date.Today(),
		Description: expense.SanitizeDescription(c.description),
		Amount:      amount,
		Category:    a.resolve(c.category),
	}
	if err := a.expenses.WriteAll(append(records, e)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Expense added successfully (ID: %d)\n", e.ID)
	return subcommands.ExitSuccess
}
