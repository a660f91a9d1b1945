// Package datefmt parses the ISO strings records carry and renders them the
// way the French locale displays them.
package datefmt

import (
	"strings"
	"time"
)

const (
	frDate     = "02/01/2006"
	frDateTime = "02/01/2006 15:04:05"
	isoDate    = "2006-01-02"
)

var naiveLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// Parse reads an ISO date or date-time. Values without an offset are taken
// to be in loc.
func Parse(s string, loc *time.Location) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.UTC
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.In(loc), true
		}
	}
	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Date renders s as DD/MM/YYYY. Unparseable input is returned unchanged.
func Date(s string, loc *time.Location) string {
	t, ok := Parse(s, loc)
	if !ok {
		return s
	}
	return t.Format(frDate)
}

// DateTime renders s as DD/MM/YYYY HH:MM:SS. Unparseable input is returned unchanged.
func DateTime(s string, loc *time.Location) string {
	t, ok := Parse(s, loc)
	if !ok {
		return s
	}
	return t.Format(frDateTime)
}

func FormatDate(t time.Time) string {
	return t.Format(frDate)
}

// ISODate is the YYYY-MM-DD form used in file names and created dates.
func ISODate(t time.Time) string {
	return t.Format(isoDate)
}
