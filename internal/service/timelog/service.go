package timelog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/basratech/hr-suite-go/internal/domain/holiday"
	"github.com/basratech/hr-suite-go/internal/domain/timelog"
	"github.com/basratech/hr-suite-go/internal/pkg/apperror"
	"github.com/basratech/hr-suite-go/internal/pkg/calendar"
	"github.com/basratech/hr-suite-go/internal/pkg/events"
	"github.com/basratech/hr-suite-go/internal/pkg/keylock"
	"github.com/basratech/hr-suite-go/internal/pkg/validator"
	"github.com/google/uuid"
)

type TimeLogServiceImpl struct {
	timelog.TimeLogRepository
	holiday.HolidayRepository
	publisher events.Publisher
	locks     *keylock.KeyLock
	now       func() time.Time
}

type Option func(*TimeLogServiceImpl)

// WithClock replaces the clock used for omitted timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *TimeLogServiceImpl) {
		s.now = now
	}
}

func NewTimeLogService(
	timeLogRepo timelog.TimeLogRepository,
	holidayRepo holiday.HolidayRepository,
	publisher events.Publisher,
	opts ...Option,
) timelog.TimeLogService {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	s := &TimeLogServiceImpl{
		TimeLogRepository: timeLogRepo,
		HolidayRepository: holidayRepo,
		publisher:         publisher,
		locks:             keylock.New(),
		now:               time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Login implements timelog.TimeLogService.
func (s *TimeLogServiceImpl) Login(ctx context.Context, req timelog.LoginRequest) (timelog.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return timelog.LoginResponse{}, err
	}
	at := s.timestamp(req.LoginTime)

	var saved timelog.TimeLog
	err := s.withDay(ctx, req.StaffID, at, func(existing *timelog.TimeLog) (*timelog.TimeLog, error) {
		if existing == nil {
			log := timelog.NewTimeLog(newID(), req.StaffID, at)
			return &log, nil
		}
		if err := existing.Login(at); err != nil {
			return nil, err
		}
		return existing, nil
	}, &saved)
	if err != nil {
		return timelog.LoginResponse{}, err
	}

	slog.InfoContext(ctx, "Staff logged in", "staff_id", req.StaffID, "time_log_id", saved.ID, "login_time", at)
	return timelog.LoginResponse{TimeLogID: saved.ID}, nil
}

// BreakIn implements timelog.TimeLogService.
func (s *TimeLogServiceImpl) BreakIn(ctx context.Context, req timelog.BreakInRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	at := s.timestamp(req.BreakInTime)

	var saved timelog.TimeLog
	err := s.withDay(ctx, req.StaffID, at, func(existing *timelog.TimeLog) (*timelog.TimeLog, error) {
		if existing == nil {
			return nil, timelog.ErrNoLoginRecord
		}
		if err := existing.StartBreak(at, req.BreakType, req.Comment); err != nil {
			return nil, err
		}
		return existing, nil
	}, &saved)
	if err != nil {
		return err
	}

	slog.InfoContext(ctx, "Staff started break", "staff_id", req.StaffID, "time_log_id", saved.ID)
	return nil
}

// BreakOut implements timelog.TimeLogService.
func (s *TimeLogServiceImpl) BreakOut(ctx context.Context, req timelog.BreakOutRequest) (timelog.BreakOutResponse, error) {
	if err := req.Validate(); err != nil {
		return timelog.BreakOutResponse{}, err
	}
	at := s.timestamp(req.BreakOutTime)

	var (
		saved    timelog.TimeLog
		duration float64
	)
	err := s.withDay(ctx, req.StaffID, at, func(existing *timelog.TimeLog) (*timelog.TimeLog, error) {
		if existing == nil {
			return nil, timelog.ErrNoLoginRecord
		}
		d, err := existing.EndBreak(at)
		if err != nil {
			return nil, err
		}
		duration = d
		return existing, nil
	}, &saved)
	if err != nil {
		return timelog.BreakOutResponse{}, err
	}

	slog.InfoContext(ctx, "Staff ended break", "staff_id", req.StaffID, "time_log_id", saved.ID, "break_hours", duration)
	return timelog.BreakOutResponse{BreakDuration: duration}, nil
}

// Logout implements timelog.TimeLogService.
func (s *TimeLogServiceImpl) Logout(ctx context.Context, req timelog.LogoutRequest) (timelog.LogoutResponse, error) {
	if err := req.Validate(); err != nil {
		return timelog.LogoutResponse{}, err
	}
	at := s.timestamp(req.LogoutTime)

	var saved timelog.TimeLog
	err := s.withDay(ctx, req.StaffID, at, func(existing *timelog.TimeLog) (*timelog.TimeLog, error) {
		if existing == nil {
			return nil, timelog.ErrNoLoginRecord
		}
		if err := existing.Logout(at); err != nil {
			return nil, err
		}
		return existing, nil
	}, &saved)
	if err != nil {
		return timelog.LogoutResponse{}, err
	}

	slog.InfoContext(ctx, "Staff logged out",
		"staff_id", req.StaffID,
		"time_log_id", saved.ID,
		"total_work_hours", saved.TotalWorkHours,
		"net_work_hours", saved.NetWorkHours,
	)
	s.publish(ctx, events.NewEvent(events.TypeTimeLogLoggedOut, map[string]any{
		"timeLogId":       saved.ID,
		"staffId":         saved.StaffID,
		"date":            saved.Date.Format(calendar.DateLayout),
		"totalWorkHours":  saved.TotalWorkHours,
		"totalBreakHours": saved.TotalBreakHours,
		"netWorkHours":    saved.NetWorkHours,
	}))

	return timelog.LogoutResponse{
		TotalWorkHours: saved.TotalWorkHours,
		NetWorkHours:   saved.NetWorkHours,
	}, nil
}

// GetToday implements timelog.TimeLogService.
func (s *TimeLogServiceImpl) GetToday(ctx context.Context, staffID string) (timelog.TimeLogResponse, error) {
	if validator.IsEmpty(staffID) {
		return timelog.TimeLogResponse{}, timelog.ErrInvalidStaffID
	}

	log, err := s.TimeLogRepository.GetByStaffAndDate(ctx, staffID, calendar.DateOf(s.now()))
	if err != nil {
		return timelog.TimeLogResponse{}, fmt.Errorf("get today's time log: %w", err)
	}
	if log == nil {
		return timelog.TimeLogResponse{}, timelog.ErrNoLoginRecord
	}
	return timelog.NewTimeLogResponse(*log), nil
}

// GetLogs implements timelog.TimeLogService.
func (s *TimeLogServiceImpl) GetLogs(ctx context.Context, filter timelog.LogsFilter) ([]timelog.TimeLogResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	start, end := filter.Range()

	logs, err := s.TimeLogRepository.ListByStaffAndRange(ctx, filter.StaffID, start, end)
	if err != nil {
		return nil, fmt.Errorf("list time logs: %w", err)
	}

	responses := make([]timelog.TimeLogResponse, 0, len(logs))
	for _, log := range logs {
		responses = append(responses, timelog.NewTimeLogResponse(log))
	}
	return responses, nil
}

// GetMonthlySummary implements timelog.TimeLogService.
func (s *TimeLogServiceImpl) GetMonthlySummary(ctx context.Context, staffID string, year, month int) (timelog.MonthlySummary, error) {
	if validator.IsEmpty(staffID) {
		return timelog.MonthlySummary{}, timelog.ErrInvalidStaffID
	}
	if err := calendar.ValidateYearMonth(year, month); err != nil {
		return timelog.MonthlySummary{}, apperror.New(apperror.KindInvalidArgument, err.Error())
	}

	start, end := calendar.MonthRange(year, time.Month(month))

	logs, err := s.TimeLogRepository.ListByStaffAndRange(ctx, staffID, start, end)
	if err != nil {
		return timelog.MonthlySummary{}, fmt.Errorf("list time logs: %w", err)
	}

	holidays, err := s.HolidayRepository.ListByRange(ctx, &start, &end)
	if err != nil {
		return timelog.MonthlySummary{}, fmt.Errorf("list holidays: %w", err)
	}

	return BuildMonthlySummary(staffID, year, time.Month(month), logs, holidays), nil
}

// withDay serializes a read-modify-write of one staff member's day record, in
// process with the key lock and across replicas with the store's day lock.
func (s *TimeLogServiceImpl) withDay(
	ctx context.Context,
	staffID string,
	at time.Time,
	mutate func(existing *timelog.TimeLog) (*timelog.TimeLog, error),
	saved *timelog.TimeLog,
) error {
	date := calendar.DateOf(at)
	unlock := s.locks.Lock(staffID + "|" + date.Format(calendar.DateLayout))
	defer unlock()

	return s.TimeLogRepository.WithDayLock(ctx, staffID, date, func(ctx context.Context) error {
		existing, err := s.TimeLogRepository.GetByStaffAndDate(ctx, staffID, date)
		if err != nil {
			return fmt.Errorf("get time log: %w", err)
		}

		next, err := mutate(existing)
		if err != nil {
			return err
		}

		result, err := s.TimeLogRepository.Upsert(ctx, *next)
		if err != nil {
			return fmt.Errorf("save time log: %w", err)
		}
		*saved = result
		return nil
	})
}

func (s *TimeLogServiceImpl) timestamp(t *time.Time) time.Time {
	if t == nil {
		return s.now().UTC()
	}
	return t.UTC()
}

func (s *TimeLogServiceImpl) publish(ctx context.Context, event events.Event) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		slog.WarnContext(ctx, "Failed to publish event", "type", event.Type, "error", err)
	}
}

func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
