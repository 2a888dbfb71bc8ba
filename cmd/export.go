package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	expense "github.com/AhmedHeshamC/expenseTracker"
	"github.com/google/subcommands"
)

type exportCmd struct {
	file string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export all expenses to a CSV file" }
func (*exportCmd) Usage() string {
	return `expense-tracker export [-f <file>]

  Writes every recorded expense to a CSV file, one row per expense in
  store order.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "expenses.csv", "Path of the CSV file to write")
	f.StringVar(&c.file, "file", "expenses.csv", "Path of the CSV file to write")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := newApp()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	records := a.expenses.ReadAll()

	out, err := os.Create(c.file)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer out.Close()

	if err := expense.ExportCSV(out, records, a.cfg.DefaultCategory); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Expenses exported to %s\n", c.file)
	return subcommands.ExitSuccess
}
