package cmd

import (
	"os"
	"testing"

	"github.com/google/subcommands"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFmtCanonicalizes(t *testing.T) {
	// Compact JSON, a tagged description and an unknown category: fmt
	// rewrites all of it.
	expPath, budPath := setupDocuments(t,
		`[{"id":1,"date":"2025-08-14","description":"<b>Lunch</b>","amount":20,"category":"food"}]`,
		`{"8":500}`)

	status, out := run(t, &fmtCmd{}, nil)

	assert.Equal(t, subcommands.ExitSuccess, status)
	assert.Empty(t, out)

	data, err := os.ReadFile(expPath)
	require.NoError(t, err)
	want := "[\n" +
		"  {\n" +
		"    \"id\": 1,\n" +
		"    \"date\": \"2025-08-14\",\n" +
		"    \"description\": \"Lunch\",\n" +
		"    \"amount\": 20,\n" +
		"    \"category\": \"Food\"\n" +
		"  }\n" +
		"]\n"
	assert.Equal(t, want, string(data))

	budgets, err := os.ReadFile(budPath)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"8\": 500\n}\n", string(budgets))
}

func TestFmtCorruptDocumentAborts(t *testing.T) {
	expPath, _ := setupDocuments(t, "{not json", "")

	status, _ := run(t, &fmtCmd{}, nil)

	assert.Equal(t, subcommands.ExitFailure, status)
	data, err := os.ReadFile(expPath)
	require.NoError(t, err)
	assert.Equal(t, "{not json", string(data))
}

func TestFmtInvalidRecordAborts(t *testing.T) {
	expPath, _ := setupDocuments(t,
		`[{"id":1,"date":"2025-08-14","description":"Lunch","amount":0}]`, "")
	before, err := os.ReadFile(expPath)
	require.NoError(t, err)

	status, _ := run(t, &fmtCmd{}, nil)

	assert.Equal(t, subcommands.ExitFailure, status)
	after, err := os.ReadFile(expPath)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestFmtMissingDocuments(t *testing.T) {
	expPath, budPath := setupDocuments(t, "", "")

	status, _ := run(t, &fmtCmd{}, nil)

	assert.Equal(t, subcommands.ExitSuccess, status)
	_, err := os.Stat(expPath)
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(budPath)
	assert.True(t, os.IsNotExist(err))
}
