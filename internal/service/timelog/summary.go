package timelog

import (
	"time"

	"github.com/basratech/hr-suite-go/internal/domain/holiday"
	"github.com/basratech/hr-suite-go/internal/domain/timelog"
	"github.com/basratech/hr-suite-go/internal/pkg/calendar"
)

// BuildMonthlySummary aggregates one staff member's logs and the holiday calendar
// for a month. Records dated outside the month are ignored.
func BuildMonthlySummary(staffID string, year int, month time.Month, logs []timelog.TimeLog, holidays []holiday.Holiday) timelog.MonthlySummary {
	start, end := calendar.MonthRange(year, month)
	inMonth := func(d time.Time) bool {
		return !d.Before(start) && !d.After(end)
	}

	holidayDates := make(map[string]struct{})
	for _, h := range holidays {
		d := calendar.DateOf(h.Date)
		if inMonth(d) {
			holidayDates[d.Format(calendar.DateLayout)] = struct{}{}
		}
	}

	summary := timelog.MonthlySummary{
		StaffID:     staffID,
		Year:        year,
		Month:       int(month),
		HolidayDays: len(holidayDates),
	}

	dailyHours := make(map[string]timelog.DailyLog)
	for _, log := range logs {
		d := calendar.DateOf(log.Date)
		if !inMonth(d) {
			continue
		}
		summary.TotalWorkDays++
		summary.TotalWorkHours += log.TotalWorkHours
		summary.TotalBreakHours += log.TotalBreakHours
		summary.NetWorkHours += log.NetWorkHours

		key := d.Format(calendar.DateLayout)
		day := dailyHours[key]
		day.WorkHours += log.TotalWorkHours
		day.BreakHours += log.TotalBreakHours
		day.NetHours += log.NetWorkHours
		dailyHours[key] = day
	}

	daysInMonth := calendar.DaysInMonth(year, month)
	summary.DailyLogs = make([]timelog.DailyLog, 0, daysInMonth)
	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
		key := date.Format(calendar.DateLayout)

		entry := dailyHours[key]
		entry.Date = key
		entry.IsWeekend = calendar.IsWeekend(date)
		_, entry.IsHoliday = holidayDates[key]
		summary.DailyLogs = append(summary.DailyLogs, entry)
	}

	summary.WeekendDays = calendar.WeekendDays(year, month)
	// A holiday on a weekend is subtracted twice.
	summary.ExpectedWorkDays = daysInMonth - summary.WeekendDays - summary.HolidayDays
	if summary.TotalWorkDays > 0 {
		summary.AverageWorkHoursPerDay = summary.NetWorkHours / float64(summary.TotalWorkDays)
	}

	return summary
}
