package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/basratech/hr-suite-go/internal/domain/timelog"
	"github.com/basratech/hr-suite-go/internal/pkg/calendar"
	"github.com/basratech/hr-suite-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const timeLogColumns = `
	id, staff_id, date, login_time, logout_time, breaks,
	total_work_hours, total_break_hours, net_work_hours, status,
	created_at, updated_at`

type timeLogRepositoryImpl struct {
	db *database.DB
}

func NewTimeLogRepository(db *database.DB) timelog.TimeLogRepository {
	return &timeLogRepositoryImpl{db: db}
}

// GetByStaffAndDate implements timelog.TimeLogRepository.
func (r *timeLogRepositoryImpl) GetByStaffAndDate(ctx context.Context, staffID string, date time.Time) (*timelog.TimeLog, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + timeLogColumns + ` FROM time_logs WHERE staff_id = $1 AND date = $2`

	log, err := scanTimeLog(q.QueryRow(ctx, query, staffID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storeError("get time log", err)
	}
	return &log, nil
}

// ListByStaffAndRange implements timelog.TimeLogRepository.
func (r *timeLogRepositoryImpl) ListByStaffAndRange(ctx context.Context, staffID string, start, end time.Time) ([]timelog.TimeLog, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + timeLogColumns + `
		FROM time_logs
		WHERE staff_id = $1 AND date BETWEEN $2 AND $3
		ORDER BY date ASC`

	rows, err := q.Query(ctx, query, staffID, start, end)
	if err != nil {
		return nil, storeError("list time logs", err)
	}
	defer rows.Close()

	logs := []timelog.TimeLog{}
	for rows.Next() {
		log, err := scanTimeLog(rows)
		if err != nil {
			return nil, storeError("scan time log", err)
		}
		logs = append(logs, log)
	}
	if err := rows.Err(); err != nil {
		return nil, storeError("iterate time logs", err)
	}
	return logs, nil
}

// Upsert implements timelog.TimeLogRepository.
func (r *timeLogRepositoryImpl) Upsert(ctx context.Context, log timelog.TimeLog) (timelog.TimeLog, error) {
	q := GetQuerier(ctx, r.db)

	breaks, err := json.Marshal(log.Breaks)
	if err != nil {
		return timelog.TimeLog{}, fmt.Errorf("marshal breaks: %w", err)
	}

	query := `
		INSERT INTO time_logs (
			id, staff_id, date, login_time, logout_time, breaks,
			total_work_hours, total_break_hours, net_work_hours, status,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		ON CONFLICT (staff_id, date) DO UPDATE SET
			login_time = EXCLUDED.login_time,
			logout_time = EXCLUDED.logout_time,
			breaks = EXCLUDED.breaks,
			total_work_hours = EXCLUDED.total_work_hours,
			total_break_hours = EXCLUDED.total_break_hours,
			net_work_hours = EXCLUDED.net_work_hours,
			status = EXCLUDED.status,
			updated_at = NOW()
		RETURNING ` + timeLogColumns

	saved, err := scanTimeLog(q.QueryRow(ctx, query,
		log.ID,
		log.StaffID,
		log.Date,
		log.LoginTime,
		log.LogoutTime,
		breaks,
		log.TotalWorkHours,
		log.TotalBreakHours,
		log.NetWorkHours,
		string(log.Status),
	))
	if err != nil {
		return timelog.TimeLog{}, storeError("upsert time log", err)
	}
	return saved, nil
}

// WithDayLock implements timelog.TimeLogRepository. The advisory lock is held
// until the transaction ends, so it also covers a day with no row yet.
func (r *timeLogRepositoryImpl) WithDayLock(ctx context.Context, staffID string, date time.Time, fn func(ctx context.Context) error) error {
	key := staffID + "|" + calendar.DateOf(date).Format(calendar.DateLayout)
	return WithTransaction(ctx, r.db, func(txCtx context.Context) error {
		q := GetQuerier(txCtx, r.db)
		if _, err := q.Exec(txCtx, `SELECT pg_advisory_xact_lock(hashtextextended($1, 0))`, key); err != nil {
			return storeError("lock time log day", err)
		}
		return fn(txCtx)
	})
}

func scanTimeLog(row rowScanner) (timelog.TimeLog, error) {
	var (
		log    timelog.TimeLog
		breaks []byte
		status string
	)
	err := row.Scan(
		&log.ID,
		&log.StaffID,
		&log.Date,
		&log.LoginTime,
		&log.LogoutTime,
		&breaks,
		&log.TotalWorkHours,
		&log.TotalBreakHours,
		&log.NetWorkHours,
		&status,
		&log.CreatedAt,
		&log.UpdatedAt,
	)
	if err != nil {
		return timelog.TimeLog{}, err
	}

	log.Status = timelog.Status(status)
	log.Breaks = []timelog.Break{}
	if len(breaks) > 0 {
		if err := json.Unmarshal(breaks, &log.Breaks); err != nil {
			return timelog.TimeLog{}, fmt.Errorf("unmarshal breaks: %w", err)
		}
	}
	log.Date = log.Date.UTC()
	log.LoginTime = log.LoginTime.UTC()
	if log.LogoutTime != nil {
		logout := log.LogoutTime.UTC()
		log.LogoutTime = &logout
	}
	return log, nil
}
