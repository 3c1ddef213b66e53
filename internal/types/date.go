// Package types provides the typed CV schema: entries, sections, design
// options, locales, settings, versions, and the root model.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// Present is the sentinel end date meaning "still ongoing". It is kept as a
// literal in the model; date arithmetic substitutes the current date at the
// single parse choke point.
const Present = "present"

var (
	yearPattern      = regexp.MustCompile(`^\d{4}$`)
	yearMonthPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)
	fullDatePattern  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// DatePrecision reports how much of a date the user actually wrote.
type DatePrecision int

const (
	PrecisionYear DatePrecision = iota
	PrecisionMonth
	PrecisionDay
)

// IsExactDate reports whether s is in YYYY, YYYY-MM, or YYYY-MM-DD form.
func IsExactDate(s string) bool {
	return yearPattern.MatchString(s) || yearMonthPattern.MatchString(s) || fullDatePattern.MatchString(s)
}

// ParseExactDate parses YYYY, YYYY-MM, or YYYY-MM-DD, anchoring missing
// components at January and the 1st. Returns the parsed time and the
// precision of the input.
func ParseExactDate(s string) (time.Time, DatePrecision, error) {
	switch {
	case fullDatePattern.MatchString(s):
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return time.Time{}, PrecisionDay, fmt.Errorf("invalid date %q: %w", s, err)
		}
		return t, PrecisionDay, nil
	case yearMonthPattern.MatchString(s):
		t, err := time.Parse("2006-01", s)
		if err != nil {
			return time.Time{}, PrecisionMonth, fmt.Errorf("invalid date %q: %w", s, err)
		}
		return t, PrecisionMonth, nil
	case yearPattern.MatchString(s):
		t, err := time.Parse("2006", s)
		if err != nil {
			return time.Time{}, PrecisionYear, fmt.Errorf("invalid date %q: %w", s, err)
		}
		return t, PrecisionYear, nil
	}
	return time.Time{}, PrecisionDay, fmt.Errorf("invalid date %q", s)
}

// GetDateObject resolves a date string to a concrete time. Integers are
// January 1 of that year, "present" resolves to current, exact strings parse
// with ParseExactDate. Anything else is an error (free-form dates have no
// date object).
func GetDateObject(value any, current time.Time) (time.Time, error) {
	switch v := value.(type) {
	case int:
		return time.Date(v, time.January, 1, 0, 0, 0, 0, time.UTC), nil
	case string:
		if v == Present {
			return current, nil
		}
		if n, err := strconv.Atoi(v); err == nil && yearPattern.MatchString(v) {
			return time.Date(n, time.January, 1, 0, 0, 0, 0, time.UTC), nil
		}
		t, _, err := ParseExactDate(v)
		return t, err
	}
	return time.Time{}, fmt.Errorf("cannot interpret %v as a date", value)
}
