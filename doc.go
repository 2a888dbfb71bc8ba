// Package expense provides the types and functions for tracking personal
// expenses against monthly budgets. It is designed to be local-first: all
// state lives in two human-readable JSON documents owned by the user.
//
// The core functionalities include:
//   - Record Keeping: expense entries (date, description, amount, category)
//     persisted as one flat JSON array, with identifier generation and
//     structural validation before every write.
//   - Budgets: a month-to-amount mapping persisted as a second JSON
//     document, compared against monthly spending by the summary report.
//   - Reporting: pure filter and reduce helpers producing totals, monthly
//     views and per-category breakdowns.
//   - Interchange: CSV export and import of the full record set.
//
// This package serves as the foundational logic for the `expense-tracker`
// command-line tool, ensuring that all operations are consistent and based
// on a single source of truth.
package expense
