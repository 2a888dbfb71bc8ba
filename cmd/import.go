package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	expense "github.com/AhmedHeshamC/expenseTracker"
	"github.com/google/subcommands"
)

type importCmd struct {
	file string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import expenses from a CSV file" }
func (*importCmd) Usage() string {
	return `expense-tracker import -f <file>

  Appends the expenses parsed from a CSV file to the store. Identifiers
  from the file are ignored; each imported expense gets a fresh one.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "Path of the CSV file to read")
	f.StringVar(&c.file, "file", "", "Path of the CSV file to read")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" {
		fmt.Fprintln(os.Stderr, "Error: -f flag is required.")
		return subcommands.ExitUsageError
	}

	a, err := newApp()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	in, err := os.Open(c.file)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer in.Close()

	imported, err := expense.ImportCSV(in)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	// Strict load: appending to a corrupt store would silently replace it.
	// A store that does not exist yet is the normal first-import state.
	records, err := a.expenses.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	for _, e := range imported {
		e.ID = expense.NextID(records)
		e.Description = expense.SanitizeDescription(e.Description)
		e.Category = a.resolve(e.Category)
		records = append(records, e)
	}
	if err := a.expenses.WriteAll(records); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Imported %d expenses from %s\n", len(imported), c.file)
	return subcommands.ExitSuccess
}
