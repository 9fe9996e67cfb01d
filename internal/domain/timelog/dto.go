package timelog

import (
	"time"

	"github.com/basratech/hr-suite-go/internal/pkg/calendar"
	"github.com/basratech/hr-suite-go/internal/pkg/validator"
)

// ========================================
// COMMAND DTOs
// ========================================

type LoginRequest struct {
	StaffID   string     `json:"staffId"`
	LoginTime *time.Time `json:"loginTime,omitempty"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.StaffID) {
		errs.Add("staffId", "staffId is required")
	}
	return errs.Err()
}

type LogoutRequest struct {
	StaffID    string     `json:"staffId"`
	LogoutTime *time.Time `json:"logoutTime,omitempty"`
}

func (r *LogoutRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.StaffID) {
		errs.Add("staffId", "staffId is required")
	}
	return errs.Err()
}

type BreakInRequest struct {
	StaffID     string     `json:"staffId"`
	BreakInTime *time.Time `json:"breakInTime,omitempty"`
	BreakType   *string    `json:"breakType,omitempty"`
	Comment     *string    `json:"comment,omitempty"`
}

func (r *BreakInRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.StaffID) {
		errs.Add("staffId", "staffId is required")
	}
	if r.BreakType != nil && len(*r.BreakType) > 50 {
		errs.Add("breakType", "breakType must not exceed 50 characters")
	}
	if r.Comment != nil && len(*r.Comment) > 500 {
		errs.Add("comment", "comment must not exceed 500 characters")
	}
	return errs.Err()
}

type BreakOutRequest struct {
	StaffID      string     `json:"staffId"`
	BreakOutTime *time.Time `json:"breakOutTime,omitempty"`
}

func (r *BreakOutRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.StaffID) {
		errs.Add("staffId", "staffId is required")
	}
	return errs.Err()
}

// LogsFilter selects a staff member's time logs between two inclusive dates.
type LogsFilter struct {
	StaffID   string
	StartDate string
	EndDate   string
}

func (f *LogsFilter) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(f.StaffID) {
		errs.Add("staffId", "staffId is required")
	}

	start, okStart := validator.IsValidDate(f.StartDate)
	if !okStart {
		errs.Add("startDate", "startDate must be in YYYY-MM-DD format")
	}
	end, okEnd := validator.IsValidDate(f.EndDate)
	if !okEnd {
		errs.Add("endDate", "endDate must be in YYYY-MM-DD format")
	}
	if okStart && okEnd && end.Before(start) {
		errs.Add("endDate", "endDate must not be before startDate")
	}
	return errs.Err()
}

// Range returns the parsed bounds. Call Validate first.
func (f *LogsFilter) Range() (time.Time, time.Time) {
	start, _ := calendar.ParseDate(f.StartDate)
	end, _ := calendar.ParseDate(f.EndDate)
	return start, end
}

// ========================================
// RESPONSE DTOs
// ========================================

type LoginResponse struct {
	TimeLogID string `json:"timeLogId"`
}

type LogoutResponse struct {
	TotalWorkHours float64 `json:"totalWorkHours"`
	NetWorkHours   float64 `json:"netWorkHours"`
}

type BreakOutResponse struct {
	BreakDuration float64 `json:"breakDuration"`
}

type BreakResponse struct {
	BreakInTime  time.Time  `json:"breakInTime"`
	BreakOutTime *time.Time `json:"breakOutTime"`
	BreakType    *string    `json:"breakType,omitempty"`
	Comment      *string    `json:"comment,omitempty"`
	Duration     float64    `json:"duration"`
}

type TimeLogResponse struct {
	ID              string          `json:"id"`
	StaffID         string          `json:"staffId"`
	Date            string          `json:"date"`
	LoginTime       time.Time       `json:"loginTime"`
	LogoutTime      *time.Time      `json:"logoutTime"`
	Breaks          []BreakResponse `json:"breaks"`
	TotalWorkHours  float64         `json:"totalWorkHours"`
	TotalBreakHours float64         `json:"totalBreakHours"`
	NetWorkHours    float64         `json:"netWorkHours"`
	Status          Status          `json:"status"`
}

func NewTimeLogResponse(t TimeLog) TimeLogResponse {
	breaks := make([]BreakResponse, 0, len(t.Breaks))
	for _, b := range t.Breaks {
		breaks = append(breaks, BreakResponse{
			BreakInTime:  b.BreakInTime,
			BreakOutTime: b.BreakOutTime,
			BreakType:    b.BreakType,
			Comment:      b.Comment,
			Duration:     b.Duration,
		})
	}
	return TimeLogResponse{
		ID:              t.ID,
		StaffID:         t.StaffID,
		Date:            t.Date.Format(calendar.DateLayout),
		LoginTime:       t.LoginTime,
		LogoutTime:      t.LogoutTime,
		Breaks:          breaks,
		TotalWorkHours:  t.TotalWorkHours,
		TotalBreakHours: t.TotalBreakHours,
		NetWorkHours:    t.NetWorkHours,
		Status:          t.Status,
	}
}

// ========================================
// MONTHLY SUMMARY
// ========================================

type DailyLog struct {
	Date       string  `json:"date"`
	WorkHours  float64 `json:"workHours"`
	BreakHours float64 `json:"breakHours"`
	NetHours   float64 `json:"netHours"`
	IsWeekend  bool    `json:"isWeekend"`
	IsHoliday  bool    `json:"isHoliday"`
}

type MonthlySummary struct {
	StaffID                string     `json:"staffId"`
	Year                   int        `json:"year"`
	Month                  int        `json:"month"`
	TotalWorkDays          int        `json:"totalWorkDays"`
	TotalWorkHours         float64    `json:"totalWorkHours"`
	TotalBreakHours        float64    `json:"totalBreakHours"`
	NetWorkHours           float64    `json:"netWorkHours"`
	AverageWorkHoursPerDay float64    `json:"averageWorkHoursPerDay"`
	ExpectedWorkDays       int        `json:"expectedWorkDays"`
	WeekendDays            int        `json:"weekendDays"`
	HolidayDays            int        `json:"holidayDays"`
	DailyLogs              []DailyLog `json:"dailyLogs"`
}
