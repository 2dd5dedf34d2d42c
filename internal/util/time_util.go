package util

import (
	"time"
)

// NewDate builds a UTC midnight timestamp, matching how date columns come
// back from the store.
func NewDate(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}
