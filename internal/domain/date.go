package domain

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the wire format for calendar dates (ISO date, no time part)
const DateLayout = "2006-01-02"

// Date is a calendar day in local time. Order dates, signup dates and
// product creation dates are day-granular: comparisons ignore the time
// components entirely.
type Date struct {
	time.Time
}

// NewDate builds a Date from a time.Time, truncated to its calendar day
func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{time.Date(y, m, d, 0, 0, 0, 0, t.Location())}
}

// Today returns the current calendar day in local time
func Today() Date {
	return NewDate(time.Now())
}

// ParseDate parses an ISO date string (2006-01-02) in local time
func ParseDate(s string) (Date, error) {
	t, err := time.ParseInLocation(DateLayout, strings.TrimSpace(s), time.Local)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return NewDate(t), nil
}

// String returns the ISO form used in JSON and CSV
func (d Date) String() string {
	return d.Format(DateLayout)
}

// BR returns the Brazilian display form (dd/mm/yyyy)
func (d Date) BR() string {
	return d.Format("02/01/2006")
}

// SameDay reports whether both dates fall on the same calendar day
func (d Date) SameDay(o Date) bool {
	return d.Year() == o.Year() && d.Month() == o.Month() && d.Day() == o.Day()
}

// Within reports whether d falls inside [from, to], inclusive on both ends.
// Both bounds are calendar days, so "to" covers its whole day.
func (d Date) Within(from, to Date) bool {
	return !d.Time.Before(from.Time) && !d.Time.After(to.Time)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
