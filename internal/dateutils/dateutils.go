// Package dateutils parses and formats the date shapes accepted by the
// import pipeline.
package dateutils

import (
	"fmt"
	"strings"
	"time"
)

// Date format constants accepted on import.
const (
	DateLayoutISO     = "2006-01-02"
	DateLayoutUS      = "01/02/2006"
	DateLayoutUSShort = "1/2/2006"
)

// AcceptedFormats lists the layouts tried, in order, when parsing an import
// date. Two-digit-year variants are handled separately so the century pivot
// stays explicit.
var AcceptedFormats = []string{
	DateLayoutISO,
	DateLayoutUS,
	DateLayoutUSShort,
}

// twoDigitYearFormats are US slash layouts with a two-digit year.
var twoDigitYearFormats = []string{
	"01/02/06",
	"1/2/06",
}

// centuryPivot splits two-digit years: 00-49 map to 2000s, 50-99 to 1900s.
const centuryPivot = 50

// ParseDate parses an import date string. Accepted shapes are ISO
// (YYYY-MM-DD) and US slash format with a two- or four-digit year; anything
// else is an error.
func ParseDate(dateStr string) (time.Time, error) {
	cleaned := strings.TrimSpace(dateStr)
	if cleaned == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}

	for _, format := range AcceptedFormats {
		if t, err := time.Parse(format, cleaned); err == nil {
			return t, nil
		}
	}

	for _, format := range twoDigitYearFormats {
		if t, err := time.Parse(format, cleaned); err == nil {
			return applyCenturyPivot(t), nil
		}
	}

	return time.Time{}, fmt.Errorf("unable to parse date: %s", dateStr)
}

// applyCenturyPivot re-anchors a two-digit year parsed by time.Parse.
// time.Parse already maps 69-99 to 19xx and 00-68 to 20xx; this pins the
// boundary at the documented pivot instead.
func applyCenturyPivot(t time.Time) time.Time {
	yy := t.Year() % 100
	var year int
	if yy < centuryPivot {
		year = 2000 + yy
	} else {
		year = 1900 + yy
	}
	return time.Date(year, t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ToISODate formats a time.Time as YYYY-MM-DD.
func ToISODate(date time.Time) string {
	if date.IsZero() {
		return ""
	}
	return date.Format(DateLayoutISO)
}

// SameDay reports whether two times fall on the same calendar date,
// ignoring the time component.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
