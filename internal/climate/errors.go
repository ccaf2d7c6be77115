package climate

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDateFormat is returned for any date that is not a real YYYY-MM-DD date.
	ErrInvalidDateFormat = errors.New("invalid date format, expected YYYY-MM-DD")

	// ErrNoDataFound is returned when an aggregate has nothing to aggregate.
	ErrNoDataFound = errors.New("no data found")

	// ErrEmptyDataset means the storage holds no observations at all. It is a
	// configuration problem, not a user error.
	ErrEmptyDataset = errors.New("observation dataset is empty")
)

// DateError reports which user supplied date failed to parse.
type DateError struct {
	Field string // "start" or "end"
	Value string
}

func (e *DateError) Error() string {
	return fmt.Sprintf("%s date %q: %v", e.Field, e.Value, ErrInvalidDateFormat)
}

func (e *DateError) Unwrap() error {
	return ErrInvalidDateFormat
}
