package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	expense "github.com/AhmedHeshamC/expenseTracker"
	"github.com/google/subcommands"
)

type updateCmd struct {
	id          int
	description string
	amount      string
	category    string
}

func (*updateCmd) Name() string     { return "update" }
func (*updateCmd) Synopsis() string { return "update an expense by id" }
func (*updateCmd) Usage() string {
	return `expense-tracker update -i <id> [-d <description>] [-a <amount>] [-c <category>]

  Overwrites only the fields explicitly supplied on the matching expense;
  omitted fields keep their prior values.
`
}

func (c *updateCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.id, "i", 0, "Identifier of the expense to update")
	f.IntVar(&c.id, "id", 0, "Identifier of the expense to update")
	f.StringVar(&c.description, "d", "", "New description")
	f.StringVar(&c.description, "description", "", "New description")
	f.StringVar(&c.amount, "a", "", "New amount, a positive number")
	f.StringVar(&c.amount, "amount", "", "New amount, a positive number")
	f.StringVar(&c.category, "c", "", "New category")
	f.StringVar(&c.category, "category", "", "New category")
}

func (c *updateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	set := visited(f)
	if !set["i"] && !set["id"] {
		fmt.Fprintln(os.Stderr, "Error: -i flag is required.")
		return subcommands.ExitUsageError
	}

	a, err := newApp()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	records := a.expenses.ReadAll()
	for i, e := range records {
		if e.ID != c.id {
			continue
		}
		if set["d"] || set["description"] {
			e.Description = expense.SanitizeDescription(c.description)
		}
		if set["a"] || set["amount"] {
			amount, err := expense.ParseAmount(c.amount)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return subcommands.ExitFailure
			}
			e.Amount = amount
		}
		if set["c"] || set["category"] {
			e.Category = a.resolve(c.category)
		}
		records[i] = e
		if err := a.expenses.WriteAll(records); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		fmt.Println("Expense updated successfully")
		return subcommands.ExitSuccess
	}

	fmt.Printf("Expense with ID %d not found\n", c.id)
	return subcommands.ExitSuccess
}
