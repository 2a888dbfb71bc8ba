package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type deleteCmd struct {
	id int
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete an expense by id" }
func (*deleteCmd) Usage() string {
	return `expense-tracker delete -i <id>

  Removes the matching expense from the store. Deleting an unknown id is
  reported but is not an error.
`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.id, "i", 0, "Identifier of the expense to delete")
	f.IntVar(&c.id, "id", 0, "Identifier of the expense to delete")
}

func (c *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
		records = append(records[:i], records[i+1:]...)
		if err := a.expenses.WriteAll(records); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		fmt.Println("Expense deleted successfully")
		return subcommands.ExitSuccess
	}

	fmt.Printf("Expense with ID %d not found\n", c.id)
	return subcommands.ExitSuccess
}
