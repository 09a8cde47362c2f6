// Package ym provides a month-granularity point in time. Tracking records
// are keyed by (year, month); this package gives them ordering, iteration
// and a canonical "2006-01" string form.
package ym

import (
	"encoding/json"
	"fmt"
	"iter"
	"time"
)

const readFormat = "2006-1" // Permissive read format (allows single-digit month).

// Format is the canonical string representation of a month.
const Format = "2006-01"

// Month represents a calendar month of a given year.
type Month struct {
	y int
	m time.Month
}

// New returns a normalized Month for the given year and month. Out-of-range
// months roll over the year, as time.Date does.
func New(year int, month time.Month) Month {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return Month{y: t.Year(), m: t.Month()}
}

// Now returns the current month.
func Now() Month { y, m, _ := time.Now().Date(); return New(y, m) }

// time returns a time.Time that is a canonical representation of that month.
func (x Month) time() time.Time { return time.Date(x.y, x.m, 1, 0, 0, 0, 0, time.UTC) }

// Year returns the calendar year.
func (x Month) Year() int { return x.y }

// Month returns the month of the year.
func (x Month) Month() time.Month { return x.m }

// Add returns a new Month with the given number of months added.
func (x Month) Add(n int) Month { return New(x.y, x.m+time.Month(n)) }

// Before reports whether x is strictly before o.
func (x Month) Before(o Month) bool { return x.time().Before(o.time()) }

// After reports whether x is strictly after o.
func (x Month) After(o Month) bool { return x.time().After(o.time()) }

// Compare returns -1, 0 or +1 ordering the two months chronologically.
func (x Month) Compare(o Month) int { return x.time().Compare(o.time()) }

// IsZero reports whether x is the zero Month.
func (x Month) IsZero() bool { return x == Month{} }

// String formats the month in its canonical format.
func (x Month) String() string { return x.time().Format(Format) }

// To iterates every month from x to the given end, inclusive on both ends.
func (x Month) To(end Month) iter.Seq[Month] {
	return func(yield func(Month) bool) {
		for c := x; !c.After(end); c = c.Add(1) {
			if !yield(c) {
				return
			}
		}
	}
}

// Parse parses a Month from a string. It is lenient and accepts "2025-7"
// as well as "2025-07".
func Parse(str string) (Month, error) {
	t, err := time.Parse(readFormat, str)
	if err != nil {
		return Month{}, fmt.Errorf("invalid month %q want format %q: %w", str, Format, err)
	}
	return New(t.Year(), t.Month()), nil
}

// MustParse is like Parse but panics on error.
func MustParse(str string) Month {
	x, err := Parse(str)
	if err != nil {
		panic(err.Error())
	}
	return x
}

func (x Month) MarshalJSON() ([]byte, error) {
	return json.Marshal(x.String())
}

func (x *Month) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*x = parsed
	return nil
}
