package dateutil

import (
	"strings"
	"time"
)

// MonthsPerYear is the number of billing periods in a calendar year
const MonthsPerYear = 12

// MonthNames lists calendar month names in period-index order
var MonthNames = [MonthsPerYear]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// MonthName returns the name for a 0-based period index, or "" when out of range
func MonthName(index int) string {
	if index < 0 || index >= MonthsPerYear {
		return ""
	}
	return MonthNames[index]
}

// MonthIndex resolves a month name (case-insensitive, full or three-letter) to a 0-based index.
func MonthIndex(name string) (int, bool) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" {
		return 0, false
	}
	for i, m := range MonthNames {
		lm := strings.ToLower(m)
		if n == lm || (len(n) == 3 && strings.HasPrefix(lm, n)) {
			return i, true
		}
	}
	return 0, false
}

// StartingMonthIndex resolves an account's starting month, defaulting to January
func StartingMonthIndex(name string) int {
	if idx, ok := MonthIndex(name); ok {
		return idx
	}
	return 0
}

// IsFirstQuarter reports whether the date falls in January through March
func IsFirstQuarter(date time.Time) bool {
	return date.Month() <= time.March
}

// RelevantMonths returns the period indices a quote covers.
// Annual quotes cover the whole year. Monthly quotes cover the whole year during the
// first quarter, otherwise January up to the month before asOf.
func RelevantMonths(annual bool, asOf time.Time) []int {
	count := MonthsPerYear
	if !annual && !IsFirstQuarter(asOf) {
		count = int(asOf.Month()) - 1
	}
	months := make([]int, count)
	for i := range months {
		months[i] = i
	}
	return months
}

// MonthsSince returns how many months separate index from the month of asOf within the same year.
// Negative results mean index lies after asOf.
func MonthsSince(index int, asOf time.Time) int {
	return int(asOf.Month()) - 1 - index
}

// WithinLastMonths reports whether index is one of the last n months up to and including asOf's month
func WithinLastMonths(index int, asOf time.Time, n int) bool {
	d := MonthsSince(index, asOf)
	return d >= 0 && d < n
}
