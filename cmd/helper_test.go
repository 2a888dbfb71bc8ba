package cmd

import (
	"context"
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/subcommands"
	"github.com/stretchr/testify/require"
)

// setupDocuments points the document path globals at files under a temp
// dir, writing initial content when given, and isolates the configuration
// lookup from the developer's environment. It returns the two paths.
func setupDocuments(t *testing.T, expensesJSON, budgetsJSON string) (string, string) {
	t.Helper()
	dir := t.TempDir()
	expPath := filepath.Join(dir, "expenses.json")
	budPath := filepath.Join(dir, "budgets.json")
	if expensesJSON != "" {
		require.NoError(t, os.WriteFile(expPath, []byte(expensesJSON), 0644))
	}
	if budgetsJSON != "" {
		require.NoError(t, os.WriteFile(budPath, []byte(budgetsJSON), 0644))
	}

	t.Setenv("EXPENSE_TRACKER_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", dir)

	oldExpenses, oldBudgets := expensesFile, budgetsFile
	expensesFile, budgetsFile = &expPath, &budPath
	t.Cleanup(func() { expensesFile, budgetsFile = oldExpenses, oldBudgets })

	return expPath, budPath
}

// captureStdout runs fn with os.Stdout redirected to a pipe and returns
// what it printed.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w
	defer func() { os.Stdout = old }()

	fn()

	w.Close()
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(out)
}

// run executes a command the way the commander would: a fresh flag set,
// the given flag values and positional arguments, then Execute. It returns
// the exit status and what the command printed to stdout.
func run(t *testing.T, c subcommands.Command, flags map[string]string, args ...string) (subcommands.ExitStatus, string) {
	t.Helper()
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	c.SetFlags(f)
	require.NoError(t, f.Parse(args))
	for name, value := range flags {
		require.NoError(t, f.Set(name, value))
	}

	var status subcommands.ExitStatus
	out := captureStdout(t, func() {
		status = c.Execute(context.Background(), f)
	})
	return status, out
}
