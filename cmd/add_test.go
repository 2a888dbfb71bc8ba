package cmd

import (
	"fmt"
	"os"
	"testing"

	"github.com/AhmedHeshamC/expenseTracker/date"
	"github.com/google/subcommands"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddFirstExpense(t *testing.T) {
	expPath, _ := setupDocuments(t, "", "")

	status, out := run(t, &addCmd{}, map[string]string{"d": "Lunch", "a": "20"})

	assert.Equal(t, subcommands.ExitSuccess, status)
	assert.Equal(t, "Expense added successfully (ID: 1)\n", out)

	data, err := os.ReadFile(expPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"id": 1`)
	assert.Contains(t, string(data), `"description": "Lunch"`)
	assert.Contains(t, string(data), `"amount": 20`)
	assert.Contains(t, string(data), `"category": "Other"`)
	assert.Contains(t, string(data), fmt.Sprintf("%q", date.Today().String()))
}

func TestAddAssignsNextID(t *testing.T) {
	setupDocuments(t, `[
  {"id": 1, "date": "2025-08-14", "description": "Lunch", "amount": 20},
  {"id": 5, "date": "2025-08-15", "description": "Dinner", "amount": 30}
]`, "")

	status, out := run(t, &addCmd{}, map[string]string{"d": "Coffee", "a": "5"})

	assert.Equal(t, subcommands.ExitSuccess, status)
	assert.Equal(t, "Expense added successfully (ID: 6)\n", out)
}

func TestAddRequiresDescriptionAndAmount(t *testing.T) {
	setupDocuments(t, "", "")

	for _, flags := range []map[string]string{
		{},
		{"d": "Lunch"},
		{"a": "20"},
	} {
		status, _ := run(t, &addCmd{}, flags)
		assert.Equal(t, subcommands.ExitUsageError, status, "flags %v", flags)
	}
}

func TestAddRejectsInvalidAmount(t *testing.T) {
	expPath, _ := setupDocuments(t, "", "")

	for _, amount := range []string{"abc", "-5", "0"} {
		status, _ := run(t, &addCmd{}, map[string]string{"d": "Lunch", "a": amount})
		assert.Equal(t, subcommands.ExitFailure, status, "amount %q", amount)
	}

	// Nothing was persisted.
	_, err := os.Stat(expPath)
	assert.True(t, os.IsNotExist(err))
}

func TestAddSanitizesDescription(t *testing.T) {
	expPath, _ := setupDocuments(t, "", "")

	status, _ := run(t, &addCmd{}, map[string]string{"d": "<script>alert(1)</script>Lunch", "a": "20"})

	assert.Equal(t, subcommands.ExitSuccess, status)
	data, err := os.ReadFile(expPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"description": "alert(1)Lunch"`)
}

func TestAddRejectsDescriptionThatSanitizesToNothing(t *testing.T) {
	expPath, _ := setupDocuments(t, "", "")

	status, _ := run(t, &addCmd{}, map[string]string{"d": "<b></b>", "a": "20"})

	assert.Equal(t, subcommands.ExitFailure, status)
	_, err := os.Stat(expPath)
	assert.True(t, os.IsNotExist(err))
}

func TestAddResolvesCategory(t *testing.T) {
	tests := []struct {
		give string
		want string
	}{
		{"food", "Food"},
		{"TRANSPORT", "Transport"},
		{"Subscriptions", "Other"},
		{"", "Other"},
	}
	for _, tc := range tests {
		expPath, _ := setupDocuments(t, "", "")

		status, _ := run(t, &addCmd{}, map[string]string{"d": "Something", "a": "10", "c": tc.give})

		require.Equal(t, subcommands.ExitSuccess, status)
		data, err := os.ReadFile(expPath)
		require.NoError(t, err)
		assert.Contains(t, string(data), fmt.Sprintf(`"category": %q`, tc.want), "category %q", tc.give)
	}
}
