package utils

import (
	"time"

	"github.com/jinzhu/now"
)

// ParseDate parses a form-supplied calendar date (ISO yyyy-mm-dd, or a
// full timestamp) and truncates it to the start of the day.
func ParseDate(value string) (time.Time, error) {
	t, err := now.Parse(value)
	if err != nil {
		return time.Time{}, err
	}
	return now.With(t).BeginningOfDay(), nil
}
