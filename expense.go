package expense

import (
	"strings"

	"github.com/AhmedHeshamC/expenseTracker/date"
	"github.com/shopspring/decimal"
)

// DefaultCategories is the category set advertised when no configuration
// overrides it. Any other input falls back to DefaultCategory.
var DefaultCategories = []string{
	"Food",
	"Groceries",
	"Transport",
	"Entertainment",
	"Utilities",
	"Health",
	"Shopping",
	"Other",
}

// DefaultCategory is the fallback for unset or unrecognized categories.
const DefaultCategory = "Other"

// Expense is a single spending record. The full set of records is persisted
// as one JSON array, pretty-printed, in insertion order.
type Expense struct {
	ID          int             `json:"id"`
	Date        date.Date       `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category,omitempty"`
}

// Validate checks the structural invariants every persisted record must
// hold: a positive id, a date, a description, and a strictly positive
// amount.
func (e Expense) Validate() error {
	if e.ID <= 0 {
		return &ValidationError{ID: e.ID, Reason: "missing id"}
	}
	if e.Date.IsZero() {
		return &ValidationError{ID: e.ID, Reason: "missing date"}
	}
	if strings.TrimSpace(e.Description) == "" {
		return &ValidationError{ID: e.ID, Reason: "missing description"}
	}
	if !e.Amount.IsPositive() {
		return &ValidationError{ID: e.ID, Reason: "amount must be a positive number"}
	}
	return nil
}

// EffectiveCategory returns the stored category, or def when the record has
// none. Hand-edited documents may carry records without a category; they
// render and report under the default.
func (e Expense) EffectiveCategory(def string) string {
	if e.Category == "" {
		return def
	}
	return e.Category
}

// NextID returns the identifier for the next record: one more than the
// highest existing id, or 1 for an empty store. Ids of tampered documents
// are not re-checked for uniqueness.
func NextID(records []Expense) int {
	max := 0
	for _, e := range records {
		if e.ID > max {
			max = e.ID
		}
	}
	return max + 1
}

// ResolveCategory matches raw against the configured category set,
// case-insensitively, and returns the canonical spelling. Empty or
// unrecognized input resolves to def.
func ResolveCategory(raw string, categories []string, def string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def
	}
	for _, c := range categories {
		if strings.EqualFold(raw, c) {
			return c
		}
	}
	return def
}
