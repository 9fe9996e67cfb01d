package holiday

import (
	"time"

	"github.com/basratech/hr-suite-go/internal/pkg/calendar"
	"github.com/basratech/hr-suite-go/internal/pkg/validator"
)

type AddHolidayRequest struct {
	Name        string  `json:"name"`
	Date        string  `json:"date"`
	IsRecurring bool    `json:"isRecurring"`
	Description *string `json:"description,omitempty"`
	CreatedBy   *string `json:"-"`
}

func (r *AddHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs.Add("name", "name is required")
	} else if len(r.Name) > 100 {
		errs.Add("name", "name must not exceed 100 characters")
	}

	if validator.IsEmpty(r.Date) {
		errs.Add("date", "date is required")
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs.Add("date", "date must be in YYYY-MM-DD format")
	}

	return errs.Err()
}

// ListHolidaysFilter bounds are optional and inclusive.
type ListHolidaysFilter struct {
	StartDate *string
	EndDate   *string
}

func (f *ListHolidaysFilter) Validate() error {
	var errs validator.ValidationErrors
	var start, end time.Time
	var okStart, okEnd bool

	if f.StartDate != nil {
		if start, okStart = validator.IsValidDate(*f.StartDate); !okStart {
			errs.Add("startDate", "startDate must be in YYYY-MM-DD format")
		}
	}
	if f.EndDate != nil {
		if end, okEnd = validator.IsValidDate(*f.EndDate); !okEnd {
			errs.Add("endDate", "endDate must be in YYYY-MM-DD format")
		}
	}
	if okStart && okEnd && end.Before(start) {
		errs.Add("endDate", "endDate must not be before startDate")
	}

	return errs.Err()
}

// Bounds returns the parsed bounds, nil where unset. Call Validate first.
func (f *ListHolidaysFilter) Bounds() (*time.Time, *time.Time) {
	return parseOptionalDate(f.StartDate), parseOptionalDate(f.EndDate)
}

func parseOptionalDate(s *string) *time.Time {
	if s == nil {
		return nil
	}
	d, err := calendar.ParseDate(*s)
	if err != nil {
		return nil
	}
	return &d
}

type HolidayResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Date        string  `json:"date"`
	IsRecurring bool    `json:"isRecurring"`
	Description *string `json:"description,omitempty"`
	CreatedAt   string  `json:"createdAt"`
}

func NewHolidayResponse(h Holiday) HolidayResponse {
	return HolidayResponse{
		ID:          h.ID,
		Name:        h.Name,
		Date:        h.Date.Format(calendar.DateLayout),
		IsRecurring: h.IsRecurring,
		Description: h.Description,
		CreatedAt:   h.CreatedAt.UTC().Format(time.RFC3339),
	}
}
