package renderer

import (
	"fmt"
	"strconv"
	"strings"

	expense "github.com/AhmedHeshamC/expenseTracker"
)

// Floors for the table column widths: the header fits, short values still
// line up.
const (
	idFloor     = 2  // "ID"
	dateWidth   = 10 // canonical dates are fixed width
	catFloor    = 8  // "Category"
	descFloor   = 11 // "Description"
	amountFloor = 6  // "Amount"
)

// Table renders the expense list as a plain text table. Every column is as
// wide as its longest rendering (with a floor so the header fits); every
// cell, header included, is left-aligned and padded to the column width,
// with a single space between columns. The amount width is computed from
// the stored decimal's length plus three, which is the sizing rule this
// layout has always used.
func Table(records []expense.Expense, cur expense.Currency, def string) string {
	idW, dateW, catW, descW, amtW := idFloor, dateWidth, catFloor, descFloor, amountFloor
	for _, e := range records {
		if w := len(strconv.Itoa(e.ID)); w > idW {
			idW = w
		}
		if w := len(e.EffectiveCategory(def)); w > catW {
			catW = w
		}
		if w := len(e.Description); w > descW {
			descW = w
		}
		if w := len(e.Amount.String()) + 3; w > amtW {
			amtW = w
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%-*s %-*s %-*s %-*s %-*s\n", idW, "ID", dateW, "Date", catW, "Category", descW, "Description", amtW, "Amount")
	for _, e := range records {
		fmt.Fprintf(&b, "%-*d %-*s %-*s %-*s %-*s\n",
			idW, e.ID,
			dateW, e.Date.String(),
			catW, e.EffectiveCategory(def),
			descW, e.Description,
			amtW, cur.Fixed(e.Amount),
		)
	}
	return b.String()
}
