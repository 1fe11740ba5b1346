package models

import (
	"fmt"
	"regexp"
	"time"
)

// BoardDateLayout is the textual date form tasks carry on the board.
const BoardDateLayout = "02-01-2006"

// ISODateLayout is the date-only form used by filter bounds and
// import payloads that were produced from ISO timestamps.
const ISODateLayout = "2006-01-02"

var boardDatePattern = regexp.MustCompile(`^\d{2}-\d{2}-\d{4}$`)

// IsBoardDate reports whether s is shaped like DD-MM-YYYY. It checks
// the pattern only, not calendar validity, matching the lenience of
// the import format.
func IsBoardDate(s string) bool {
	return boardDatePattern.MatchString(s)
}

// BoardDateToISO rewrites DD-MM-YYYY into YYYY-MM-DD so that plain
// string comparison orders dates chronologically. Input that is not a
// board date is returned unchanged; the empty string stays empty,
// which makes missing due dates sort first.
func BoardDateToISO(s string) string {
	if !boardDatePattern.MatchString(s) {
		return s
	}
	return s[6:] + "-" + s[3:5] + "-" + s[:2]
}

// FormatBoardDate renders a time as DD-MM-YYYY.
func FormatBoardDate(ts time.Time) string {
	return ts.Format(BoardDateLayout)
}

// ParseBoardDate parses a DD-MM-YYYY date.
func ParseBoardDate(s string) (time.Time, error) {
	ts, err := time.Parse(BoardDateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid board date %q: %w", s, err)
	}
	return ts, nil
}

// NormalizeDueDate coerces a due date supplied in either form to the
// canonical board form. Unrecognized input passes through untouched,
// the same way the store accepts unknown enum values.
func NormalizeDueDate(s string) string {
	if s == "" || boardDatePattern.MatchString(s) {
		return s
	}
	if ts, err := time.Parse(ISODateLayout, s); err == nil {
		return ts.Format(BoardDateLayout)
	}
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		return ts.Format(BoardDateLayout)
	}
	return s
}
