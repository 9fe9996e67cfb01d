package calendar

import (
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

// DateOf truncates t to midnight UTC of its UTC calendar day.
func DateOf(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// ValidateYearMonth rejects months outside 1..12 and years outside 1..9999.
func ValidateYearMonth(year, month int) error {
	if month < 1 || month > 12 {
		return fmt.Errorf("month must be between 1 and 12, got %d", month)
	}
	if year < 1 || year > 9999 {
		return fmt.Errorf("year must be between 1 and 9999, got %d", year)
	}
	return nil
}

// DaysInMonth returns the number of days of month in year.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MonthRange returns the first and last day of the month, both at midnight UTC.
func MonthRange(year int, month time.Month) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, month, DaysInMonth(year, month), 0, 0, 0, 0, time.UTC)
	return start, end
}

// IsWeekend reports whether t falls on a Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// WeekendDays counts Saturdays and Sundays in the month.
func WeekendDays(year int, month time.Month) int {
	count := 0
	for day := 1; day <= DaysInMonth(year, month); day++ {
		if IsWeekend(time.Date(year, month, day, 0, 0, 0, 0, time.UTC)) {
			count++
		}
	}
	return count
}

// Hours converts a duration to fractional hours without rounding.
func Hours(d time.Duration) float64 {
	return d.Hours()
}

// ParseDate parses a YYYY-MM-DD string as a UTC date.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}
