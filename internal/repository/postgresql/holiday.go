package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/basratech/hr-suite-go/internal/domain/holiday"
	"github.com/basratech/hr-suite-go/internal/pkg/database"
)

type holidayRepositoryImpl struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) holiday.HolidayRepository {
	return &holidayRepositoryImpl{db: db}
}

// Create implements holiday.HolidayRepository.
func (r *holidayRepositoryImpl) Create(ctx context.Context, h holiday.Holiday) (holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO holidays (id, name, date, is_recurring, description, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id, name, date, is_recurring, description, created_by, created_at
	`

	var created holiday.Holiday
	err := q.QueryRow(ctx, query,
		h.ID, h.Name, h.Date, h.IsRecurring, h.Description, h.CreatedBy,
	).Scan(
		&created.ID,
		&created.Name,
		&created.Date,
		&created.IsRecurring,
		&created.Description,
		&created.CreatedBy,
		&created.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return holiday.Holiday{}, holiday.ErrHolidayExists
		}
		return holiday.Holiday{}, storeError("create holiday", err)
	}
	created.Date = created.Date.UTC()
	return created, nil
}

// ListByRange implements holiday.HolidayRepository.
func (r *holidayRepositoryImpl) ListByRange(ctx context.Context, start, end *time.Time) ([]holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	var (
		conditions []string
		args       []interface{}
	)
	if start != nil {
		args = append(args, *start)
		conditions = append(conditions, fmt.Sprintf("date >= $%d", len(args)))
	}
	if end != nil {
		args = append(args, *end)
		conditions = append(conditions, fmt.Sprintf("date <= $%d", len(args)))
	}

	query := `SELECT id, name, date, is_recurring, description, created_by, created_at FROM holidays`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY date ASC, name ASC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, storeError("list holidays", err)
	}
	defer rows.Close()

	holidays := []holiday.Holiday{}
	for rows.Next() {
		var h holiday.Holiday
		if err := rows.Scan(
			&h.ID,
			&h.Name,
			&h.Date,
			&h.IsRecurring,
			&h.Description,
			&h.CreatedBy,
			&h.CreatedAt,
		); err != nil {
			return nil, storeError("scan holiday", err)
		}
		h.Date = h.Date.UTC()
		holidays = append(holidays, h)
	}
	if err := rows.Err(); err != nil {
		return nil, storeError("iterate holidays", err)
	}
	return holidays, nil
}
