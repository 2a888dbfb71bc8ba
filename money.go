package expense

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Currency renders decimal amounts for one ISO currency. The symbol and
// fraction digits come from go-money's registry; the output itself stays a
// plain concatenation ("$123.45", no grouping), which is the console and
// CSV contract of this tool.
type Currency struct {
	code     string
	grapheme string
	fraction int
}

// NewCurrency resolves an ISO code against the currency registry. Unknown
// codes fall back to USD.
func NewCurrency(code string) Currency {
	cur := money.GetCurrency(code)
	if cur == nil {
		cur = money.GetCurrency(money.USD)
	}
	return Currency{code: cur.Code, grapheme: cur.Grapheme, fraction: cur.Fraction}
}

// Code returns the ISO code of the currency.
func (c Currency) Code() string { return c.code }

// Symbol returns the currency symbol, e.g. "$" for USD.
func (c Currency) Symbol() string { return c.grapheme }

// Fixed renders the amount with the currency's full fraction digits:
// Fixed(25.5) is "$25.50" for USD.
func (c Currency) Fixed(d decimal.Decimal) string {
	return c.grapheme + d.StringFixed(int32(c.fraction))
}

// Raw renders the amount exactly as stored, without padding the fraction:
// Raw(25.5) is "$25.5". The summary's overall total uses this form.
func (c Currency) Raw(d decimal.Decimal) string {
	return c.grapheme + d.String()
}
