package holiday

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/basratech/hr-suite-go/internal/domain/holiday"
	"github.com/basratech/hr-suite-go/internal/pkg/apperror"
	"github.com/basratech/hr-suite-go/internal/pkg/calendar"
	"github.com/google/uuid"
)

type HolidayServiceImpl struct {
	holiday.HolidayRepository
}

func NewHolidayService(holidayRepo holiday.HolidayRepository) holiday.HolidayService {
	return &HolidayServiceImpl{HolidayRepository: holidayRepo}
}

// AddHoliday implements holiday.HolidayService.
func (s *HolidayServiceImpl) AddHoliday(ctx context.Context, req holiday.AddHolidayRequest) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}
	date, err := calendar.ParseDate(req.Date)
	if err != nil {
		return holiday.HolidayResponse{}, apperror.New(apperror.KindInvalidArgument, "date must be in YYYY-MM-DD format")
	}

	created, err := s.HolidayRepository.Create(ctx, holiday.Holiday{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(req.Name),
		Date:        date,
		IsRecurring: req.IsRecurring,
		Description: req.Description,
		CreatedBy:   req.CreatedBy,
	})
	if err != nil {
		return holiday.HolidayResponse{}, fmt.Errorf("create holiday: %w", err)
	}

	slog.InfoContext(ctx, "Holiday added", "holiday_id", created.ID, "date", req.Date)
	return holiday.NewHolidayResponse(created), nil
}

// ListHolidays implements holiday.HolidayService.
func (s *HolidayServiceImpl) ListHolidays(ctx context.Context, filter holiday.ListHolidaysFilter) ([]holiday.HolidayResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	start, end := filter.Bounds()
	return s.list(ctx, start, end)
}

// ListMonthHolidays implements holiday.HolidayService.
func (s *HolidayServiceImpl) ListMonthHolidays(ctx context.Context, year, month int) ([]holiday.HolidayResponse, error) {
	if err := calendar.ValidateYearMonth(year, month); err != nil {
		return nil, apperror.New(apperror.KindInvalidArgument, err.Error())
	}
	start, end := calendar.MonthRange(year, time.Month(month))
	return s.list(ctx, &start, &end)
}

func (s *HolidayServiceImpl) list(ctx context.Context, start, end *time.Time) ([]holiday.HolidayResponse, error) {
	holidays, err := s.HolidayRepository.ListByRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("list holidays: %w", err)
	}

	responses := make([]holiday.HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		responses = append(responses, holiday.NewHolidayResponse(h))
	}
	return responses, nil
}
