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

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and rewrites the documents into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `expense-tracker fmt

  Reads both documents, sanitizes descriptions, resolves categories
  against the configured set, validates every record, and writes the
  documents back canonically formatted. A corrupt document aborts the
  rewrite; a missing one is skipped.
`
}

func (*fmtCmd) SetFlags(f *flag.FlagSet) {}

func (*fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := newApp()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	records, err := a.expenses.Load()
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// Nothing to format.
	case err != nil:
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	default:
		for i, e := range records {
			e.Description = expense.SanitizeDescription(e.Description)
			e.Category = a.resolve(e.Category)
			records[i] = e
		}
		if err := a.expenses.WriteAll(records); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	}

	budgets, err := a.budgets.Load()
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// Nothing to format.
	case err != nil:
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	default:
		if err := a.budgets.WriteAll(budgets); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	}

	return subcommands.ExitSuccess
}
