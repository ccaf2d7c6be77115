package climate

import (
	"encoding/json"
	"time"
)

// DateLayout is the only accepted textual form of a calendar date.
const DateLayout = "2006-01-02"

// Date is a calendar date at UTC midnight. It marshals as YYYY-MM-DD.
type Date struct {
	time.Time
}

// NewDate returns the date for the given year, month and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate accepts exactly the canonical YYYY-MM-DD form of a real calendar
// date. Any other input yields ErrInvalidDateFormat.
func ParseDate(s string) (Date, error) {
	if len(s) != len(DateLayout) {
		return Date{}, ErrInvalidDateFormat
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, ErrInvalidDateFormat
	}
	return Date{t}, nil
}

// AddDays moves the date by n calendar days (n may be negative).
func (d Date) AddDays(n int) Date {
	return Date{d.AddDate(0, 0, n)}
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
