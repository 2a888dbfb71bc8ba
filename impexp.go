package expense

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/AhmedHeshamC/expenseTracker/date"
)

// This file contains functions to handle the CSV interchange format. The
// format is meant for spreadsheets and other tools, and its exact bytes are
// part of the tool's contract.

// csvHeader is the fixed first row of the interchange format.
var csvHeader = []string{"ID", "Date", "Category", "Description", "Amount"}

// ExportCSV writes the records to 'w' in the interchange format.
//
// The format is one header row `ID,Date,Category,Description,Amount`, then
// one row per record in document order. The description is always wrapped
// in double quotes and embedded quotes are NOT escaped; the category of a
// record that has none is written as def; the amount is the stored decimal
// rendered as-is, no symbol.
//
// The rows are hand-formatted: an RFC 4180 writer would escape quotes
// inside the description and change the bytes this format promises.
func ExportCSV(w io.Writer, records []Expense, def string) error {
	if _, err := fmt.Fprintf(w, "%s,%s,%s,%s,%s\n", csvHeader[0], csvHeader[1], csvHeader[2], csvHeader[3], csvHeader[4]); err != nil {
		return fmt.Errorf("cannot write CSV header: %w", err)
	}
	for _, e := range records {
		_, err := fmt.Fprintf(w, "%d,%s,%s,\"%s\",%s\n",
			e.ID,
			e.Date.String(),
			e.EffectiveCategory(def),
			e.Description,
			e.Amount.String(),
		)
		if err != nil {
			return fmt.Errorf("cannot write CSV row for expense %d: %w", e.ID, err)
		}
	}
	return nil
}

// ImportCSV parses records from 'r' in the interchange format.
//
// Parsing is lenient about quoting (the export format itself does not
// escape embedded quotes), strict about everything else: the header row
// must match, dates must parse, amounts must be positive numbers. The ID
// column is read but ignored; imported records come back with a zero id
// and the caller assigns fresh ones before persisting.
func ImportCSV(r io.Reader) ([]Expense, error) {
	cr := csv.NewReader(r)
	cr.LazyQuotes = true
	cr.FieldsPerRecord = len(csvHeader)

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("cannot parse CSV: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("cannot parse CSV: empty document")
	}
	for i, name := range csvHeader {
		if rows[0][i] != name {
			return nil, fmt.Errorf("cannot parse CSV: header %q, want %q", rows[0], csvHeader)
		}
	}

	var records []Expense
	for i, row := range rows[1:] {
		line := i + 2 // 1-based, after the header
		d, err := date.Parse(row[1])
		if err != nil {
			return nil, fmt.Errorf("cannot parse CSV line %d: %w", line, err)
		}
		amount, err := ParseAmount(row[4])
		if err != nil {
			return nil, fmt.Errorf("cannot parse CSV line %d: %w", line, err)
		}
		records = append(records, Expense{
			Date:        d,
			Description: row[3],
			Amount:      amount,
			Category:    row[2],
		})
	}
	return records, nil
}
