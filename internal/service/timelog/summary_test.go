package timelog

import (
	"testing"
	"time"

	"github.com/basratech/hr-suite-go/internal/domain/holiday"
	"github.com/basratech/hr-suite-go/internal/domain/timelog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func loggedDay(date time.Time, work, breaks float64) timelog.TimeLog {
	return timelog.TimeLog{
		StaffID:         "staff-1",
		Date:            date,
		TotalWorkHours:  work,
		TotalBreakHours: breaks,
		NetWorkHours:    work - breaks,
		Status:          timelog.StatusLoggedOut,
	}
}

func TestBuildMonthlySummary_WeekendCounts(t *testing.T) {
	tests := []struct {
		name     string
		year     int
		month    time.Month
		days     int
		weekends int
	}{
		{"february leap year", 2024, time.February, 29, 8},
		{"february common year", 2023, time.February, 28, 8},
		{"june 2024", 2024, time.June, 30, 10},
		{"september 2024", 2024, time.September, 30, 9},
		{"march 2024", 2024, time.March, 31, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := BuildMonthlySummary("staff-1", tt.year, tt.month, nil, nil)
			assert.Len(t, summary.DailyLogs, tt.days)
			assert.Equal(t, tt.weekends, summary.WeekendDays)
			assert.Equal(t, tt.days-tt.weekends, summary.ExpectedWorkDays)
		})
	}
}

func TestBuildMonthlySummary_ExpectedWorkDays(t *testing.T) {
	// November 2023: 30 days, 8 weekend days, holiday on Thursday the 23rd
	var logs []timelog.TimeLog
	for d := 1; d <= 30 && len(logs) < 15; d++ {
		date := day(2023, time.November, d)
		if date.Weekday() == time.Saturday || date.Weekday() == time.Sunday || d == 23 {
			continue
		}
		logs = append(logs, loggedDay(date, 8, 0.5))
	}
	holidays := []holiday.Holiday{{Name: "Thanksgiving", Date: day(2023, time.November, 23)}}

	summary := BuildMonthlySummary("staff-1", 2023, time.November, logs, holidays)

	assert.Equal(t, 8, summary.WeekendDays)
	assert.Equal(t, 1, summary.HolidayDays)
	assert.Equal(t, 21, summary.ExpectedWorkDays)
	assert.Equal(t, 15, summary.TotalWorkDays)
	assert.InDelta(t, 120.0, summary.TotalWorkHours, 1e-9)
	assert.InDelta(t, 7.5, summary.AverageWorkHoursPerDay, 1e-9)
	assert.True(t, summary.DailyLogs[22].IsHoliday)
	assert.Equal(t, "2023-11-23", summary.DailyLogs[22].Date)
}

func TestBuildMonthlySummary_HolidayOnWeekendSubtractedTwice(t *testing.T) {
	// 2024-06-01 is a Saturday
	holidays := []holiday.Holiday{{Name: "Founders Day", Date: day(2024, time.June, 1)}}

	summary := BuildMonthlySummary("staff-1", 2024, time.June, nil, holidays)

	assert.Equal(t, 10, summary.WeekendDays)
	assert.Equal(t, 1, summary.HolidayDays)
	assert.Equal(t, 19, summary.ExpectedWorkDays)
	assert.True(t, summary.DailyLogs[0].IsWeekend)
	assert.True(t, summary.DailyLogs[0].IsHoliday)
}

func TestBuildMonthlySummary_DistinctHolidayDates(t *testing.T) {
	holidays := []holiday.Holiday{
		{Name: "A", Date: day(2024, time.March, 5)},
		{Name: "B", Date: day(2024, time.March, 5)},
		{Name: "Outside", Date: day(2024, time.April, 1)},
	}

	summary := BuildMonthlySummary("staff-1", 2024, time.March, nil, holidays)

	assert.Equal(t, 1, summary.HolidayDays)
}

func TestBuildMonthlySummary_NoLogs(t *testing.T) {
	summary := BuildMonthlySummary("staff-1", 2024, time.March, nil, nil)

	assert.Zero(t, summary.TotalWorkDays)
	assert.Zero(t, summary.AverageWorkHoursPerDay)
	for _, d := range summary.DailyLogs {
		assert.Zero(t, d.WorkHours)
		assert.False(t, d.IsHoliday)
	}
}

func TestBuildMonthlySummary_DailySumsMatchTotals(t *testing.T) {
	logs := []timelog.TimeLog{
		loggedDay(day(2024, time.March, 4), 8, 0.5),
		loggedDay(day(2024, time.March, 5), 7.25, 1),
		loggedDay(day(2024, time.March, 9), 3.1, 0),
		loggedDay(day(2024, time.April, 1), 10, 0),
	}

	summary := BuildMonthlySummary("staff-1", 2024, time.March, logs, nil)

	var work, breaks, net float64
	for _, d := range summary.DailyLogs {
		work += d.WorkHours
		breaks += d.BreakHours
		net += d.NetHours
	}
	require.Equal(t, 3, summary.TotalWorkDays)
	assert.InDelta(t, summary.TotalWorkHours, work, 1e-9)
	assert.InDelta(t, summary.TotalBreakHours, breaks, 1e-9)
	assert.InDelta(t, summary.NetWorkHours, net, 1e-9)
	assert.InDelta(t, 18.35, summary.TotalWorkHours, 1e-9)
}
