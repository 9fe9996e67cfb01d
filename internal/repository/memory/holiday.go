package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/basratech/hr-suite-go/internal/domain/holiday"
	"github.com/basratech/hr-suite-go/internal/pkg/calendar"
)

type HolidayRepository struct {
	mu       sync.RWMutex
	holidays []holiday.Holiday
}

func NewHolidayRepository() *HolidayRepository {
	return &HolidayRepository{}
}

// Create implements holiday.HolidayRepository.
func (r *HolidayRepository) Create(ctx context.Context, h holiday.Holiday) (holiday.Holiday, error) {
	if err := ctx.Err(); err != nil {
		return holiday.Holiday{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	h.Date = calendar.DateOf(h.Date)
	for _, existing := range r.holidays {
		if existing.Name == h.Name && existing.Date.Equal(h.Date) {
			return holiday.Holiday{}, holiday.ErrHolidayExists
		}
	}
	h.CreatedAt = time.Now().UTC()
	r.holidays = append(r.holidays, cloneHoliday(h))
	return cloneHoliday(h), nil
}

// ListByRange implements holiday.HolidayRepository.
func (r *HolidayRepository) ListByRange(ctx context.Context, start, end *time.Time) ([]holiday.Holiday, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []holiday.Holiday{}
	for _, h := range r.holidays {
		if start != nil && h.Date.Before(calendar.DateOf(*start)) {
			continue
		}
		if end != nil && h.Date.After(calendar.DateOf(*end)) {
			continue
		}
		out = append(out, cloneHoliday(h))
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date.Equal(out[j].Date) {
			return out[i].Name < out[j].Name
		}
		return out[i].Date.Before(out[j].Date)
	})
	return out, nil
}

func cloneHoliday(h holiday.Holiday) holiday.Holiday {
	if h.Description != nil {
		description := *h.Description
		h.Description = &description
	}
	if h.CreatedBy != nil {
		createdBy := *h.CreatedBy
		h.CreatedBy = &createdBy
	}
	return h
}
