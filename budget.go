package expense

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// Budgets maps a month number to its budget amount. The month range is
// deliberately not validated: the document stores whatever the user set,
// and reporting degrades gracefully outside 1-12.
//
// Budgets is a plain value: readers get a fresh mapping on every read and
// pass it around explicitly. There is no process-wide cache.
type Budgets map[int]decimal.Decimal

// Set records the budget for a month, overwriting any prior value. At most
// one budget exists per month.
func (b Budgets) Set(month int, amount decimal.Decimal) { b[month] = amount }

// Get returns the budget for a month and whether one is set.
func (b Budgets) Get(month int) (decimal.Decimal, bool) {
	amount, ok := b[month]
	return amount, ok
}

// BudgetStore owns the budget document, a JSON object mapping month-number
// keys to amounts. Independent from the expense document; summary joins
// the two by the month component of each expense's date.
type BudgetStore struct {
	Path string
}

// Load reads the full mapping. Strict: a missing or unparsable document is
// an error.
func (s BudgetStore) Load() (Budgets, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("could not open budget document: %w", err)
	}
	defer f.Close()
	budgets, err := DecodeBudgets(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.Path, err)
	}
	return budgets, nil
}

// ReadAll reads the full mapping leniently: missing or corrupt documents
// yield an empty mapping, corruption is logged. It never returns an error.
func (s BudgetStore) ReadAll() Budgets {
	budgets, err := s.Load()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Debug().Str("file", s.Path).Msg("budget document does not exist, starting empty")
		} else {
			log.Warn().Err(err).Str("file", s.Path).Msg("budget document unreadable, starting empty")
		}
		return Budgets{}
	}
	return budgets
}

// WriteAll persists the full mapping, pretty-printed, overwriting the
// document.
func (s BudgetStore) WriteAll(budgets Budgets) error {
	f, err := os.Create(s.Path)
	if err != nil {
		return fmt.Errorf("could not create budget document: %w", err)
	}
	defer f.Close()
	return EncodeBudgets(f, budgets)
}
