package timelog

import (
	"context"
	"time"
)

// TimeLogRepository stores at most one record per (staffID, date).
type TimeLogRepository interface {
	// GetByStaffAndDate returns nil, nil when the day has no record
	GetByStaffAndDate(ctx context.Context, staffID string, date time.Time) (*TimeLog, error)

	// ListByStaffAndRange returns records with date in [start, end], date ascending
	ListByStaffAndRange(ctx context.Context, staffID string, start, end time.Time) ([]TimeLog, error)

	// Upsert inserts the record or replaces the one with the same (staffID, date)
	Upsert(ctx context.Context, log TimeLog) (TimeLog, error)

	// WithDayLock runs fn while holding the store-wide lock for (staffID, date).
	// Repository calls made with the ctx passed to fn share that lock.
	WithDayLock(ctx context.Context, staffID string, date time.Time, fn func(ctx context.Context) error) error
}
