package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/rs/zerolog/log"
)

// Environment variables carrying the resolved configuration to extensions.
const (
	EnvExpensesFile = "EXPENSE_TRACKER_EXPENSES"
	EnvBudgetsFile  = "EXPENSE_TRACKER_BUDGETS"
	EnvConfigFile   = "EXPENSE_TRACKER_CONFIG"
)

// RunExtension attempts to find and execute an external
// expense-tracker-<subcommand> binary. It returns (true, exitCode) if an
// extension was found and executed, and (false, 0) if no extension was
// found.
func RunExtension(subcommand string, args []string) (bool, int) {
	externalCmdName := "expense-tracker-" + subcommand

	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		log.Debug().Str("extension", externalCmdName).Msg("not found in PATH")
		return false, 0
	}

	a, err := newApp()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return true, 1
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	// Pass the resolved document paths as environment variables.
	cmd.Env = os.Environ()
	cmd.Env = append(cmd.Env, EnvExpensesFile+"="+a.cfg.ExpensesFile)
	cmd.Env = append(cmd.Env, EnvBudgetsFile+"="+a.cfg.BudgetsFile)
	cmd.Env = append(cmd.Env, EnvConfigFile+"="+*configFile)

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", externalCmdName, err)
		return true, 1
	}

	return true, 0
}
