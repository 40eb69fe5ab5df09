package utils

import (
	"strings"
	"time"
)

const (
	layoutDate     = "2006-01-02"
	layoutCompact  = "20060102"
	layoutLongDate = "January 2, 2006"
)

// ParseDate parses YYYY-MM-DD in local timezone.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(layoutDate, strings.TrimSpace(s), time.Local)
}

// FormatDate formats time to YYYY-MM-DD in local timezone.
func FormatDate(t time.Time) string {
	return t.In(time.Local).Format(layoutDate)
}

// CompactDate formats time as YYYYMMDD.
func CompactDate(t time.Time) string {
	return t.In(time.Local).Format(layoutCompact)
}

// LongDate formats time as "June 1, 2025".
func LongDate(t time.Time) string {
	return t.In(time.Local).Format(layoutLongDate)
}

// StartOfDay truncates t to local midnight.
func StartOfDay(t time.Time) time.Time {
	t = t.In(time.Local)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}

// DaysBetween counts calendar days from a to b, ignoring time of day and DST.
func DaysBetween(a, b time.Time) int {
	a, b = StartOfDay(a), StartOfDay(b)
	ua := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	ub := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(ub.Sub(ua).Hours() / 24)
}
