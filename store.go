package expense

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/rs/zerolog/log"
)

// ExpenseStore owns the expense document. Every operation is a full-file
// read or a full-file write; there is no locking, the tool assumes
// exclusive single-user access.
type ExpenseStore struct {
	Path string
}

// Load reads the full record set. Strict: a missing or unparsable document
// is an error. Commands that must not mistake a corrupt document for an
// empty one (fmt, import) use Load.
func (s ExpenseStore) Load() ([]Expense, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("could not open expense document: %w", err)
	}
	defer f.Close()
	records, err := DecodeExpenses(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.Path, err)
	}
	return records, nil
}

// ReadAll reads the full record set leniently: a missing document is the
// normal first-run state and yields an empty set, a corrupt one is logged
// and also yields an empty set. It never returns an error.
func (s ExpenseStore) ReadAll() []Expense {
	records, err := s.Load()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Debug().Str("file", s.Path).Msg("expense document does not exist, starting empty")
		} else {
			log.Warn().Err(err).Str("file", s.Path).Msg("expense document unreadable, starting empty")
		}
		return nil
	}
	return records
}

// WriteAll validates and persists the full record set, pretty-printed,
// overwriting the document. Any invalid record aborts the write before a
// byte is touched; a failure mid-write can still truncate the document,
// accepted for a single-user tool.
func (s ExpenseStore) WriteAll(records []Expense) error {
	for _, e := range records {
		if err := e.Validate(); err != nil {
			return err
		}
	}
	f, err := os.Create(s.Path)
	if err != nil {
		return fmt.Errorf("could not create expense document: %w", err)
	}
	defer f.Close()
	return EncodeExpenses(f, records)
}
