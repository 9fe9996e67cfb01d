package timelog

import (
	"time"

	"github.com/basratech/hr-suite-go/internal/pkg/calendar"
)

type Status string

const (
	StatusLoggedIn  Status = "LoggedIn"
	StatusOnBreak   Status = "OnBreak"
	StatusLoggedOut Status = "LoggedOut"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusLoggedIn, StatusOnBreak, StatusLoggedOut:
		return true
	}
	return false
}

// Break is stored as JSON inside the time log row.
type Break struct {
	BreakInTime  time.Time  `json:"breakInTime"`
	BreakOutTime *time.Time `json:"breakOutTime,omitempty"`
	BreakType    *string    `json:"breakType,omitempty"`
	Comment      *string    `json:"comment,omitempty"`
	Duration     float64    `json:"duration"`
}

func (b *Break) IsOpen() bool {
	return b.BreakOutTime == nil
}

// TimeLog is one staff member's record for one UTC calendar day.
type TimeLog struct {
	ID              string
	StaffID         string
	Date            time.Time
	LoginTime       time.Time
	LogoutTime      *time.Time
	Breaks          []Break
	TotalWorkHours  float64
	TotalBreakHours float64
	NetWorkHours    float64
	Status          Status
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewTimeLog opens the day's record with a login at loginTime.
func NewTimeLog(id, staffID string, loginTime time.Time) TimeLog {
	return TimeLog{
		ID:        id,
		StaffID:   staffID,
		Date:      calendar.DateOf(loginTime),
		LoginTime: loginTime,
		Breaks:    []Break{},
		Status:    StatusLoggedIn,
	}
}

// Login re-opens an existing record in place.
func (t *TimeLog) Login(at time.Time) error {
	if t.Status == StatusOnBreak {
		return ErrLoginWhileOnBreak
	}
	t.LoginTime = at
	t.LogoutTime = nil
	t.TotalWorkHours = 0
	t.NetWorkHours = 0
	t.Status = StatusLoggedIn
	return nil
}

func (t *TimeLog) StartBreak(at time.Time, breakType, comment *string) error {
	switch t.Status {
	case StatusOnBreak:
		return ErrAlreadyOnBreak
	case StatusLoggedOut:
		return ErrNotLoggedIn
	}
	if at.Before(t.LoginTime) {
		return ErrBreakBeforeLogin
	}

	t.Breaks = append(t.Breaks, Break{
		BreakInTime: at,
		BreakType:   breakType,
		Comment:     comment,
	})
	t.Status = StatusOnBreak
	return nil
}

// EndBreak closes the open break and returns its duration in hours.
func (t *TimeLog) EndBreak(at time.Time) (float64, error) {
	if t.Status != StatusOnBreak {
		return 0, ErrNoOpenBreak
	}
	duration, err := t.closeOpenBreak(at)
	if err != nil {
		return 0, err
	}
	t.Status = StatusLoggedIn
	return duration, nil
}

func (t *TimeLog) Logout(at time.Time) error {
	if at.Before(t.LoginTime) {
		return ErrLogoutBeforeLogin
	}
	if t.Status == StatusOnBreak {
		if _, err := t.closeOpenBreak(at); err != nil {
			return err
		}
	}

	t.LogoutTime = &at
	t.TotalWorkHours = calendar.Hours(at.Sub(t.LoginTime))
	t.TotalBreakHours = t.sumBreakHours()
	t.NetWorkHours = t.TotalWorkHours - t.TotalBreakHours
	t.Status = StatusLoggedOut
	return nil
}

// OpenBreak returns the most recently opened break without a break-out time.
func (t *TimeLog) OpenBreak() *Break {
	for i := len(t.Breaks) - 1; i >= 0; i-- {
		if t.Breaks[i].IsOpen() {
			return &t.Breaks[i]
		}
	}
	return nil
}

func (t *TimeLog) closeOpenBreak(at time.Time) (float64, error) {
	open := t.OpenBreak()
	if open == nil {
		return 0, ErrNoOpenBreak
	}
	if at.Before(open.BreakInTime) {
		return 0, ErrBreakOutBeforeBreakIn
	}

	open.BreakOutTime = &at
	open.Duration = calendar.Hours(at.Sub(open.BreakInTime))
	t.TotalBreakHours = t.sumBreakHours()
	return open.Duration, nil
}

func (t *TimeLog) sumBreakHours() float64 {
	var total float64
	for _, b := range t.Breaks {
		total += b.Duration
	}
	return total
}

// Clone returns a deep copy so callers can mutate without aliasing stored breaks.
func (t TimeLog) Clone() TimeLog {
	out := t
	if t.LogoutTime != nil {
		logout := *t.LogoutTime
		out.LogoutTime = &logout
	}
	out.Breaks = make([]Break, len(t.Breaks))
	for i, b := range t.Breaks {
		if b.BreakOutTime != nil {
			breakOut := *b.BreakOutTime
			b.BreakOutTime = &breakOut
		}
		out.Breaks[i] = b
	}
	return out
}
