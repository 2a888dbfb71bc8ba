package cmd

import (
	"testing"

	"github.com/google/subcommands"
	"github.com/stretchr/testify/assert"
)

const listFixture = `[
  {"id": 1, "date": "2025-08-14", "description": "Lunch", "amount": 20, "category": "Food"},
  {"id": 2, "date": "2025-08-15", "description": "Coffee beans", "amount": 5.5}
]`

func TestListEmpty(t *testing.T) {
	setupDocuments(t, "", "")

	status, out := run(t, &listCmd{}, nil)

	assert.Equal(t, subcommands.ExitSuccess, status)
	assert.Equal(t, "No expenses found\n", out)
}

func TestListTable(t *testing.T) {
	setupDocuments(t, listFixture, "")

	status, out := run(t, &listCmd{}, nil)

	assert.Equal(t, subcommands.ExitSuccess, status)
	want := "ID Date       Category Description  Amount\n" +
		"1  2025-08-14 Food     Lunch        $20.00\n" +
		"2  2025-08-15 Other    Coffee beans $5.50 \n"
	assert.Equal(t, want, out)
}

func TestListFiltersByCategory(t *testing.T) {
	setupDocuments(t, listFixture, "")

	status, out := run(t, &listCmd{}, map[string]string{"c": "food"})

	assert.Equal(t, subcommands.ExitSuccess, status)
	want := "ID Date       Category Description Amount\n" +
		"1  2025-08-14 Food     Lunch       $20.00\n"
	assert.Equal(t, want, out)
}

func TestListFilterMatchesDefaultCategory(t *testing.T) {
	setupDocuments(t, listFixture, "")

	// Record 2 has no stored category; it matches the default.
	status, out := run(t, &listCmd{}, map[string]string{"c": "other"})

	assert.Equal(t, subcommands.ExitSuccess, status)
	assert.Contains(t, out, "Coffee beans")
	assert.NotContains(t, out, "Lunch")
}

func TestListNoMatch(t *testing.T) {
	setupDocuments(t, listFixture, "")

	status, out := run(t, &listCmd{}, map[string]string{"c": "Transport"})

	assert.Equal(t, subcommands.ExitSuccess, status)
	assert.Equal(t, "No expenses found\n", out)
}
