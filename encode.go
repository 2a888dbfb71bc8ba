package expense

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

// This file contains the codec for the two persisted documents. Both are
// plain JSON text, pretty-printed with a two-space indent, so the user can
// read and hand-edit them.

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// DecodeExpenses parses the expense document: a JSON array of records in
// insertion order. An empty document decodes to an empty record set.
func DecodeExpenses(r io.Reader) ([]Expense, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("could not read expense document: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}
	var records []Expense
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("could not parse expense document: %w", err)
	}
	return records, nil
}

// EncodeExpenses writes the full record set, pretty-printed. A nil set
// encodes as an empty array, never as null.
func EncodeExpenses(w io.Writer, records []Expense) error {
	if records == nil {
		records = []Expense{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("could not encode expense document: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("could not write expense document: %w", err)
	}
	return nil
}

// DecodeBudgets parses the budget document: a JSON object mapping month
// numbers (as string keys) to amounts. An empty document, or one holding a
// literal null, decodes to an empty mapping, never a nil one.
func DecodeBudgets(r io.Reader) (Budgets, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("could not read budget document: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return Budgets{}, nil
	}
	var budgets Budgets
	if err := json.Unmarshal(data, &budgets); err != nil {
		return nil, fmt.Errorf("could not parse budget document: %w", err)
	}
	if budgets == nil {
		// A literal null unmarshals to a nil map.
		budgets = Budgets{}
	}
	return budgets, nil
}

// EncodeBudgets writes the full budget mapping, pretty-printed. A nil
// mapping encodes as an empty object, never as null.
func EncodeBudgets(w io.Writer, budgets Budgets) error {
	if budgets == nil {
		budgets = Budgets{}
	}
	data, err := json.MarshalIndent(budgets, "", "  ")
	if err != nil {
		return fmt.Errorf("could not encode budget document: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("could not write budget document: %w", err)
	}
	return nil
}
