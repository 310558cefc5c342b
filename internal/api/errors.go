package api

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/zapponejosh/wuyun-api/internal/wuyun"
)

// InputValidationError reports a missing or malformed request parameter.
// It is the only error the profile endpoints return to callers.
type InputValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *InputValidationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("%s %q: %s", e.Field, e.Value, e.Reason)
}

// parseYear parses raw as a year. An empty value yields fallback.
func parseYear(field, raw string, fallback int) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback, nil
	}

	year, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &InputValidationError{Field: field, Value: raw, Reason: "must be an integer year"}
	}
	return year, nil
}

// parseCount parses the cycle length, defaulting to one full cycle.
func parseCount(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return wuyun.CycleLength, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &InputValidationError{Field: "count", Value: raw, Reason: "must be an integer"}
	}
	if n < 1 || n > wuyun.CycleLength {
		return 0, &InputValidationError{
			Field:  "count",
			Value:  raw,
			Reason: fmt.Sprintf("must be between 1 and %d", wuyun.CycleLength),
		}
	}
	return n, nil
}

// checkSpan rejects a start year whose run of count years would pass the
// largest representable year.
func checkSpan(start, count int) error {
	if _, err := wuyun.Span(start, count); err != nil {
		return &InputValidationError{
			Field:  "start",
			Value:  strconv.Itoa(start),
			Reason: fmt.Sprintf("%d consecutive years from here overflow the year range", count),
		}
	}
	return nil
}
