package format

import (
	"strings"
	"time"
)

// zonedLayouts carry an explicit offset; the instant is converted to the
// display location before the calendar day is taken.
//
//nolint:gochecknoglobals // Read-only layout table.
var zonedLayouts = []string{
	time.RFC3339, // fractional seconds are accepted when parsing
	"2006-01-02T15:04Z07:00",
	"2006-01-02 15:04:05Z07:00",
	time.RFC1123Z,
	time.RFC1123,
	time.RFC850,
}

// localLayouts have no offset and are read as wall-clock time in the display location.
//
//nolint:gochecknoglobals // Read-only layout table.
var localLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006/01/02",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
	"2 Jan 2006",
}

// ParseDate parses raw using a fixed set of ISO-8601 and common written layouts.
// Surrounding whitespace is ignored. loc defaults to UTC when nil.
//
// Malformed components are rejected rather than guessed: "2024-12-31T5:1" and
// "NULL" both fail.
func ParseDate(raw string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, ErrUnparseableDate
	}

	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.In(loc), nil
		}
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrUnparseableDate
}

// ErrUnparseableDate is returned by ParseDate when no layout matches.
var ErrUnparseableDate = constError("unparseable date")

type constError string

func (e constError) Error() string { return string(e) }
