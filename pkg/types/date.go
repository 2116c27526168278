package types

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the ISO calendar-date form used at every text boundary.
const DateLayout = "2006-01-02"

// Date is a calendar date without time of day or zone. It counts days since
// 1970-01-01, so Dates compare with == and order with < and are safe map keys.
type Date struct {
	days int
}

// NewDate returns the Date for the given year, month and day. Out-of-range
// values normalize the way time.Date does (January 32 becomes February 1).
func NewDate(year int, month time.Month, day int) Date {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return Date{days: int(t.Unix() / secondsPerDay)}
}

// DateOf returns the calendar date of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return NewDate(y, m, d)
}

// ParseDate parses YYYY-MM-DD. Malformed input returns ErrInvalidDateFormat.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q (want YYYY-MM-DD)", ErrInvalidDateFormat, s)
	}
	return DateOf(t), nil
}

const secondsPerDay = 24 * 60 * 60

// Time returns midnight UTC of d.
func (d Date) Time() time.Time {
	return time.Unix(int64(d.days)*secondsPerDay, 0).UTC()
}

// String formats d as YYYY-MM-DD.
func (d Date) String() string {
	return d.Time().Format(DateLayout)
}

// AddDays returns d shifted by n days (n may be negative).
func (d Date) AddDays(n int) Date {
	return Date{days: d.days + n}
}

// DaysSince returns the number of days from other to d. It is negative when
// d is before other.
func (d Date) DaysSince(other Date) int {
	return d.days - other.days
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool { return d.days < other.days }

// After reports whether d is strictly later than other.
func (d Date) After(other Date) bool { return d.days > other.days }

// Between reports whether d lies in the closed interval [start, end].
func (d Date) Between(start, end Date) bool {
	return d.days >= start.days && d.days <= end.days
}

// MarshalText implements encoding.TextMarshaler.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Date) UnmarshalText(text []byte) error {
	parsed, err := ParseDate(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
