package renderer

import (
	"fmt"
	"strings"

	expense "github.com/AhmedHeshamC/expenseTracker"
	"github.com/AhmedHeshamC/expenseTracker/date"
)

// Summary renders the summary report as console text.
//
// The overall total (no month view) prints the raw decimal, while the
// monthly total, the budget lines and the per-category subtotals print the
// currency's full fraction digits. The asymmetry is part of the output
// contract.
func Summary(r *expense.SummaryReport, cur expense.Currency) string {
	var b strings.Builder

	if r.HasMonth {
		name := date.MonthName(r.Month)
		fmt.Fprintf(&b, "Total expenses for %s: %s\n", name, cur.Fixed(r.Total))
		if r.HasBudget {
			switch {
			case r.Total.GreaterThan(r.Budget):
				fmt.Fprintf(&b, "Warning: You have exceeded your budget for %s by %s!\n", name, cur.Fixed(r.Total.Sub(r.Budget)))
			case r.Total.Equal(r.Budget):
				fmt.Fprintf(&b, "You have exactly met your budget for %s.\n", name)
			default:
				fmt.Fprintf(&b, "You have %s remaining in your budget for %s.\n", cur.Fixed(r.Budget.Sub(r.Total)), name)
			}
		}
	} else {
		fmt.Fprintf(&b, "Total expenses: %s\n", cur.Raw(r.Total))
	}

	if r.Categories != nil {
		b.WriteString("Expenses by category:\n")
		for _, ct := range r.Categories {
			fmt.Fprintf(&b, "%s: %s\n", ct.Category, cur.Fixed(ct.Total))
		}
	}

	return b.String()
}
