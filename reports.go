package expense

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FilterByCategory keeps the records whose effective category matches,
// case-insensitively. Records without a stored category match under def.
func FilterByCategory(records []Expense, category, def string) []Expense {
	var out []Expense
	for _, e := range records {
		if strings.EqualFold(e.EffectiveCategory(def), category) {
			out = append(out, e)
		}
	}
	return out
}

// FilterByMonth keeps the records whose date falls in the given month
// number, regardless of year.
func FilterByMonth(records []Expense, month int) []Expense {
	var out []Expense
	for _, e := range records {
		if int(e.Date.Month()) == month {
			out = append(out, e)
		}
	}
	return out
}

// Total sums the amounts of the given records.
func Total(records []Expense) decimal.Decimal {
	total := decimal.Zero
	for _, e := range records {
		total = total.Add(e.Amount)
	}
	return total
}

// CategoryTotal is one line of the per-category breakdown.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

// TotalsByCategory computes per-category subtotals, in first-seen record
// order so the breakdown is stable across runs.
func TotalsByCategory(records []Expense, def string) []CategoryTotal {
	var order []string
	totals := make(map[string]decimal.Decimal)
	for _, e := range records {
		cat := e.EffectiveCategory(def)
		if _, seen := totals[cat]; !seen {
			order = append(order, cat)
		}
		totals[cat] = totals[cat].Add(e.Amount)
	}
	out := make([]CategoryTotal, 0, len(order))
	for _, cat := range order {
		out = append(out, CategoryTotal{Category: cat, Total: totals[cat]})
	}
	return out
}

// SummaryReport is the data behind the summary command's output.
type SummaryReport struct {
	HasMonth   bool
	Month      int
	Total      decimal.Decimal
	Budget     decimal.Decimal
	HasBudget  bool
	Categories []CategoryTotal // nil unless the breakdown was requested
}

// NewSummaryReport assembles the summary view. A category filter narrows
// the record set first; a month filter then recomputes from the FULL
// record set, discarding the category filter. This precedence is part of
// the output contract.
func NewSummaryReport(records []Expense, budgets Budgets, month int, hasMonth bool, category string, byCategory bool, def string) *SummaryReport {
	filtered := records
	if category != "" {
		filtered = FilterByCategory(records, category, def)
	}
	if hasMonth {
		filtered = FilterByMonth(records, month)
	}

	r := &SummaryReport{
		HasMonth: hasMonth,
		Month:    month,
		Total:    Total(filtered),
	}
	if hasMonth {
		r.Budget, r.HasBudget = budgets.Get(month)
	}
	if byCategory {
		r.Categories = TotalsByCategory(filtered, def)
	}
	return r
}
