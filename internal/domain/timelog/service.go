package timelog

import (
	"context"
)

// TimeLogService drives the daily state machine and the monthly summary
type TimeLogService interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	Logout(ctx context.Context, req LogoutRequest) (LogoutResponse, error)
	BreakIn(ctx context.Context, req BreakInRequest) error
	BreakOut(ctx context.Context, req BreakOutRequest) (BreakOutResponse, error)

	// GetToday returns the record for the current UTC day
	GetToday(ctx context.Context, staffID string) (TimeLogResponse, error)
	GetLogs(ctx context.Context, filter LogsFilter) ([]TimeLogResponse, error)

	GetMonthlySummary(ctx context.Context, staffID string, year, month int) (MonthlySummary, error)
}
