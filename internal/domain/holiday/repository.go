package holiday

import (
	"context"
	"time"
)

type HolidayRepository interface {
	// Create fails with ErrHolidayExists when name and date are already taken
	Create(ctx context.Context, h Holiday) (Holiday, error)

	// ListByRange returns holidays with date in the inclusive bounds, date ascending.
	// A nil bound is open.
	ListByRange(ctx context.Context, start, end *time.Time) ([]Holiday, error)
}
