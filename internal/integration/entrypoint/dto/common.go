// Package dto defines request and response payloads for the HTTP API.
package dto

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the short date format accepted alongside RFC 3339.
const DateLayout = "2006-01-02"

// ErrInvalidDate is returned when a date is neither YYYY-MM-DD nor RFC 3339.
var ErrInvalidDate = errors.New("invalid date format, use YYYY-MM-DD or RFC 3339")

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// FormatAmount renders minor units as a two-decimal string, e.g. 12345 -> "123.45".
func FormatAmount(minor int64) string {
	return decimal.New(minor, -2).StringFixed(2)
}

// ParseDate accepts YYYY-MM-DD or RFC 3339 and returns the instant in UTC.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.ParseInLocation(DateLayout, s, time.UTC); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, ErrInvalidDate
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func formatDay(t time.Time) string {
	return t.UTC().Format(DateLayout)
}
