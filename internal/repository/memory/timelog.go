// Package memory holds map-backed repositories for STORAGE_DRIVER=memory and tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/basratech/hr-suite-go/internal/domain/timelog"
	"github.com/basratech/hr-suite-go/internal/pkg/calendar"
)

type timeLogKey struct {
	staffID string
	date    string
}

type TimeLogRepository struct {
	mu   sync.RWMutex
	logs map[timeLogKey]timelog.TimeLog
	now  func() time.Time
}

func NewTimeLogRepository() *TimeLogRepository {
	return &TimeLogRepository{
		logs: make(map[timeLogKey]timelog.TimeLog),
		now:  time.Now,
	}
}

func keyOf(staffID string, date time.Time) timeLogKey {
	return timeLogKey{staffID: staffID, date: date.UTC().Format(calendar.DateLayout)}
}

// GetByStaffAndDate implements timelog.TimeLogRepository.
func (r *TimeLogRepository) GetByStaffAndDate(ctx context.Context, staffID string, date time.Time) (*timelog.TimeLog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	log, ok := r.logs[keyOf(staffID, date)]
	if !ok {
		return nil, nil
	}
	clone := log.Clone()
	return &clone, nil
}

// ListByStaffAndRange implements timelog.TimeLogRepository.
func (r *TimeLogRepository) ListByStaffAndRange(ctx context.Context, staffID string, start, end time.Time) ([]timelog.TimeLog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	start, end = calendar.DateOf(start), calendar.DateOf(end)
	logs := []timelog.TimeLog{}
	for key, log := range r.logs {
		if key.staffID != staffID || log.Date.Before(start) || log.Date.After(end) {
			continue
		}
		logs = append(logs, log.Clone())
	}
	sort.Slice(logs, func(i, j int) bool { return logs[i].Date.Before(logs[j].Date) })
	return logs, nil
}

// Upsert implements timelog.TimeLogRepository.
func (r *TimeLogRepository) Upsert(ctx context.Context, log timelog.TimeLog) (timelog.TimeLog, error) {
	if err := ctx.Err(); err != nil {
		return timelog.TimeLog{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now().UTC()
	key := keyOf(log.StaffID, log.Date)
	saved := log.Clone()
	saved.Date = calendar.DateOf(log.Date)
	if existing, ok := r.logs[key]; ok {
		saved.ID = existing.ID
		saved.CreatedAt = existing.CreatedAt
	} else {
		saved.CreatedAt = now
	}
	saved.UpdatedAt = now

	r.logs[key] = saved
	return saved.Clone(), nil
}

// WithDayLock implements timelog.TimeLogRepository. The store lives in one
// process, where the service's key lock already serializes a day.
func (r *TimeLogRepository) WithDayLock(ctx context.Context, staffID string, date time.Time, fn func(ctx context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(ctx)
}

// Count returns the number of stored records.
func (r *TimeLogRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.logs)
}
