package utils

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for calendar dates throughout the service.
const DateLayout = "2006-01-02"

// ParseDate returns the midnight UTC time for a YYYY-MM-DD string.
func ParseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("empty date value")
	}
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date: %w", err)
	}
	return t, nil
}

// FormatDate renders a time as YYYY-MM-DD. Zero times render empty.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}
