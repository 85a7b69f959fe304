// Package dateutils parses the date formats found in transaction exports.
package dateutils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Date layouts accepted by ParseDate.
const (
	DateLayoutISO      = "2006-01-02"
	DateLayoutUS       = "01/02/2006"
	DateLayoutEuropean = "02.01.2006"
	DateLayoutFull     = "2006-01-02 15:04:05"
)

// CommonFormats lists the layouts ParseDate tries, in order. Slash dates are
// read as US month/day.
var CommonFormats = []string{
	DateLayoutUS,
	DateLayoutISO,
	DateLayoutEuropean,
	DateLayoutFull,
	"1/2/2006",
	"01/02/06",
	"2006/01/02",
	"2-Jan-2006",
	"Jan 2, 2006",
	"January 2, 2006",
}

var spaces = regexp.MustCompile(`\s+`)

// CleanDateString trims s and collapses inner whitespace.
func CleanDateString(s string) string {
	return spaces.ReplaceAllString(strings.TrimSpace(s), " ")
}

// ParseDate parses s with the first matching layout of CommonFormats.
func ParseDate(s string) (time.Time, error) {
	cleaned := CleanDateString(s)
	for _, layout := range CommonFormats {
		if t, err := time.Parse(layout, cleaned); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse date: %s", s)
}

// ToISODate formats date as YYYY-MM-DD.
func ToISODate(date time.Time) string {
	return date.Format(DateLayoutISO)
}

// Normalize returns s as an ISO date when it parses, and the cleaned input otherwise.
func Normalize(s string) string {
	if t, err := ParseDate(s); err == nil {
		return ToISODate(t)
	}
	return CleanDateString(s)
}

// Range returns the earliest and latest parseable dates of dates. ok is false
// when none parse.
func Range(dates []string) (first, last time.Time, ok bool) {
	for _, s := range dates {
		t, err := ParseDate(s)
		if err != nil {
			continue
		}
		if !ok || t.Before(first) {
			first = t
		}
		if !ok || t.After(last) {
			last = t
		}
		ok = true
	}
	return first, last, ok
}
