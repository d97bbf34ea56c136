package util

import (
	"fmt"
	"time"
)

// DateLayout is the ISO calendar date format used by the statistics API.
const DateLayout = "2006-01-02"

// FolderDateLayout names dated output folders, e.g. 14.10.2026.
const FolderDateLayout = "02.01.2006"

// ParseDate parses an ISO calendar date (YYYY-MM-DD).
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return t, nil
}

// FormatDate formats t as an ISO calendar date in t's own location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// LastDays returns the inclusive range of the trailing days ending at now,
// so days=1 is (today, today) and days=7 covers today and the six days before.
func LastDays(now time.Time, days int) (from, to string) {
	return FormatDate(now.AddDate(0, 0, -(days - 1))), FormatDate(now)
}

// Yesterday returns the calendar day before now.
func Yesterday(now time.Time) string {
	return FormatDate(now.AddDate(0, 0, -1))
}

// DatePart returns the leading YYYY-MM-DD of a date or timestamp string
// such as "2024-12-01T10:11:12". Shorter strings are returned as is.
func DatePart(s string) string {
	if len(s) < len(DateLayout) {
		return s
	}
	return s[:len(DateLayout)]
}
