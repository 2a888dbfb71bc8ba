// Package date provides a calendar date value with day granularity,
// a permissive parser and the canonical ISO-8601 string form used in
// the expense and budget documents.
package date

import (
	"encoding/json"
	"fmt"
	"time"
)

const readFormat = "2006-1-2" // permissive read format (allows single-digit month/day)

// Format is the canonical ISO-8601 format dates are written in.
const Format = "2006-01-02"

// Date represents a date with no lower than day granularity.
type Date struct {
	y int
	m time.Month
	d int
}

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// New returns a normalized Date for the given year, month, and day.
func New(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Today returns the current date.
func Today() Date { return New(time.Now().Date()) }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// IsZero reports whether the date is the zero value.
func (d Date) IsZero() bool { return d == Date{} }

// String formats the date in its canonical form.
func (d Date) String() string { return d.time().Format(Format) }

// Parse parses a Date from a string. It is lenient and accepts formats like "2025-7-1".
func Parse(str string) (Date, error) {
	on, err := time.Parse(readFormat, str)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q want format %q: %w", str, readFormat, err)
	}
	return New(on.Date()), nil
}

// MustParse is like Parse but panics on error.
func MustParse(str string) Date {
	d, err := Parse(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// UnmarshalJSON reads a date from its json string form.
func (d *Date) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	parsed, err := Parse(str)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalJSON writes the date as a json string in canonical form.
func (d Date) MarshalJSON() ([]byte, error) {
	str := d.String()
	return json.Marshal(&str)
}

var _ json.Marshaler = (*Date)(nil)
var _ json.Unmarshaler = (*Date)(nil)

// MonthName returns the English name for a month number between 1 and 12,
// and a plain "month N" fallback outside that range. Budget months are
// stored as given, so the fallback keeps summary output readable even for
// out-of-range values.
func MonthName(m int) string {
	if m >= 1 && m <= 12 {
		return time.Month(m).String()
	}
	return fmt.Sprintf("month %d", m)
}
