package attendance

import (
	"errors"
	"strconv"
	"time"
)

var (
	ErrInvalidDate  = errors.New("invalid date format, expected YYYY-MM-DD")
	ErrInvalidHours = errors.New("hours must be a decimal number")
)

// ParseEntryDate parses the operator-entered date string. Only the dashed
// YYYY-MM-DD form is accepted.
func ParseEntryDate(value string) (time.Time, error) {
	date, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return date, nil
}

// ParseHours parses the operator-entered hours string. Non-numeric input is an
// ErrInvalidHours; negative values are rejected later, as a distinct failure.
func ParseHours(value string) (float64, error) {
	hours, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, ErrInvalidHours
	}
	return hours, nil
}
