package expense

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount parses a user-supplied amount into an exact decimal. It wraps
// ErrInvalidAmount when the input is not numeric or not strictly positive.
func ParseAmount(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, fmt.Errorf("%w: empty input", ErrInvalidAmount)
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q is not numeric", ErrInvalidAmount, raw)
	}
	if !d.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: got %s", ErrInvalidAmount, d)
	}
	return d, nil
}
