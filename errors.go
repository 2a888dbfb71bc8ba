package expense

import (
	"errors"
	"fmt"
)

// ErrInvalidAmount reports an amount that is not numeric or not strictly
// positive. Zero is rejected: a free expense is recorded as a mistake, not
// a record.
var ErrInvalidAmount = errors.New("amount must be a positive number")

// ValidationError reports a record that failed structural validation and
// therefore aborted a write. No partial write happens: either every record
// is valid or the document is left untouched.
type ValidationError struct {
	ID     int
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid expense (id %d): %s", e.ID, e.Reason)
}
