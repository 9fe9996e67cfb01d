package holiday

import "time"

type Holiday struct {
	ID          string
	Name        string
	Date        time.Time
	IsRecurring bool
	Description *string
	CreatedBy   *string
	CreatedAt   time.Time
}
