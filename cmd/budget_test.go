package cmd

import (
	"os"
	"testing"

	"github.com/google/subcommands"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetBudget(t *testing.T) {
	_, budPath := setupDocuments(t, "", "")

	status, out := run(t, &setBudgetCmd{}, map[string]string{"m": "8", "a": "500"})

	assert.Equal(t, subcommands.ExitSuccess, status)
	assert.Equal(t, "Budget for August set to $500.00\n", out)

	data, err := os.ReadFile(budPath)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"8\": 500\n}\n", string(data))
}

func TestSetBudgetOverwrites(t *testing.T) {
	_, budPath := setupDocuments(t, "", `{
  "8": 500
}`)

	status, out := run(t, &setBudgetCmd{}, map[string]string{"m": "8", "a": "750.5"})

	assert.Equal(t, subcommands.ExitSuccess, status)
	assert.Equal(t, "Budget for August set to $750.50\n", out)

	data, err := os.ReadFile(budPath)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"8\": 750.5\n}\n", string(data))
}

func TestSetBudgetNullDocument(t *testing.T) {
	// A hand-edited document can hold a literal null; it reads as empty.
	_, budPath := setupDocuments(t, "", "null")

	status, out := run(t, &setBudgetCmd{}, map[string]string{"m": "8", "a": "500"})

	assert.Equal(t, subcommands.ExitSuccess, status)
	assert.Equal(t, "Budget for August set to $500.00\n", out)

	data, err := os.ReadFile(budPath)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"8\": 500\n}\n", string(data))
}

func TestSetBudgetKeepsOtherMonths(t *testing.T) {
	_, budPath := setupDocuments(t, "", `{
  "1": 100
}`)

	status, _ := run(t, &setBudgetCmd{}, map[string]string{"m": "2", "a": "200"})

	assert.Equal(t, subcommands.ExitSuccess, status)
	data, err := os.ReadFile(budPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"1": 100`)
	assert.Contains(t, string(data), `"2": 200`)
}

func TestSetBudgetRequiresMonthAndAmount(t *testing.T) {
	setupDocuments(t, "", "")

	for _, flags := range []map[string]string{
		{},
		{"m": "8"},
		{"a": "500"},
	} {
		status, _ := run(t, &setBudgetCmd{}, flags)
		assert.Equal(t, subcommands.ExitUsageError, status, "flags %v", flags)
	}
}

func TestSetBudgetRejectsInvalidAmount(t *testing.T) {
	_, budPath := setupDocuments(t, "", "")

	for _, amount := range []string{"abc", "-1", "0"} {
		status, _ := run(t, &setBudgetCmd{}, map[string]string{"m": "8", "a": amount})
		assert.Equal(t, subcommands.ExitFailure, status, "amount %q", amount)
	}

	_, err := os.Stat(budPath)
	assert.True(t, os.IsNotExist(err))
}

func TestSetBudgetMonthOutOfRange(t *testing.T) {
	// The month range is deliberately not validated; naming degrades.
	_, budPath := setupDocuments(t, "", "")

	status, out := run(t, &setBudgetCmd{}, map[string]string{"m": "13", "a": "10"})

	assert.Equal(t, subcommands.ExitSuccess, status)
	assert.Equal(t, "Budget for month 13 set to $10.00\n", out)

	data, err := os.ReadFile(budPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"13": 10`)
}
