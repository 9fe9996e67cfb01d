package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/basratech/hr-suite-go/internal/domain/salaryslip"
	"github.com/basratech/hr-suite-go/internal/domain/staff"
	"github.com/basratech/hr-suite-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// Money columns are read as text so decimal keeps the exact value.
const salarySlipColumns = `
	id, staff_id, period_month, period_year,
	basic_salary::text, hra::text, conveyance::text, other_allowances::text,
	gross_salary::text, provident_fund::text, tax::text, net_salary::text,
	work_days, leave_days, generated_by, generated_at`

type salarySlipRepositoryImpl struct {
	db *database.DB
}

func NewSalarySlipRepository(db *database.DB) salaryslip.SalarySlipRepository {
	return &salarySlipRepositoryImpl{db: db}
}

// Create implements salaryslip.SalarySlipRepository.
func (r *salarySlipRepositoryImpl) Create(ctx context.Context, s salaryslip.SalarySlip) (salaryslip.SalarySlip, error) {
	var created salaryslip.SalarySlip

	err := WithTransaction(ctx, r.db, func(ctx context.Context) error {
		q := GetQuerier(ctx, r.db)

		// Lock the staff row so it cannot disappear between the check and the insert
		var exists bool
		err := q.QueryRow(ctx, `SELECT TRUE FROM staff WHERE id = $1 FOR SHARE`, s.StaffID).Scan(&exists)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return staff.ErrStaffNotFound
			}
			return err
		}

		query := `
			INSERT INTO salary_slips (
				id, staff_id, period_month, period_year,
				basic_salary, hra, conveyance, other_allowances,
				gross_salary, provident_fund, tax, net_salary,
				work_days, leave_days, generated_by, generated_at
			) VALUES (
				$1, $2, $3, $4,
				$5::numeric, $6::numeric, $7::numeric, $8::numeric,
				$9::numeric, $10::numeric, $11::numeric, $12::numeric,
				$13, $14, $15, NOW()
			)
			RETURNING ` + salarySlipColumns

		created, err = scanSalarySlip(q.QueryRow(ctx, query,
			s.ID,
			s.StaffID,
			s.PeriodMonth,
			s.PeriodYear,
			s.BasicSalary.String(),
			s.HRA.String(),
			s.Conveyance.String(),
			s.OtherAllowances.String(),
			s.GrossSalary.String(),
			s.ProvidentFund.String(),
			s.Tax.String(),
			s.NetSalary.String(),
			s.WorkDays,
			s.LeaveDays,
			s.GeneratedBy,
		))
		return err
	})
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return salaryslip.SalarySlip{}, salaryslip.ErrSalarySlipExists
		case isForeignKeyViolation(err):
			return salaryslip.SalarySlip{}, staff.ErrStaffNotFound
		}
		return salaryslip.SalarySlip{}, storeError("create salary slip", err)
	}
	return created, nil
}

// GetByID implements salaryslip.SalarySlipRepository.
func (r *salarySlipRepositoryImpl) GetByID(ctx context.Context, id string) (salaryslip.SalarySlip, error) {
	q := GetQuerier(ctx, r.db)

	slip, err := scanSalarySlip(q.QueryRow(ctx, `SELECT `+salarySlipColumns+` FROM salary_slips WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return salaryslip.SalarySlip{}, salaryslip.ErrSalarySlipNotFound
		}
		return salaryslip.SalarySlip{}, storeError("get salary slip", err)
	}
	return slip, nil
}

// ListByStaff implements salaryslip.SalarySlipRepository.
func (r *salarySlipRepositoryImpl) ListByStaff(ctx context.Context, staffID string) ([]salaryslip.SalarySlip, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + salarySlipColumns + `
		FROM salary_slips
		WHERE staff_id = $1
		ORDER BY period_year DESC, period_month DESC`

	rows, err := q.Query(ctx, query, staffID)
	if err != nil {
		return nil, storeError("list salary slips", err)
	}
	defer rows.Close()

	slips := []salaryslip.SalarySlip{}
	for rows.Next() {
		slip, err := scanSalarySlip(rows)
		if err != nil {
			return nil, storeError("scan salary slip", err)
		}
		slips = append(slips, slip)
	}
	if err := rows.Err(); err != nil {
		return nil, storeError("iterate salary slips", err)
	}
	return slips, nil
}

func scanSalarySlip(row rowScanner) (salaryslip.SalarySlip, error) {
	var (
		s       salaryslip.SalarySlip
		amounts [8]string
	)
	err := row.Scan(
		&s.ID,
		&s.StaffID,
		&s.PeriodMonth,
		&s.PeriodYear,
		&amounts[0],
		&amounts[1],
		&amounts[2],
		&amounts[3],
		&amounts[4],
		&amounts[5],
		&amounts[6],
		&amounts[7],
		&s.WorkDays,
		&s.LeaveDays,
		&s.GeneratedBy,
		&s.GeneratedAt,
	)
	if err != nil {
		return salaryslip.SalarySlip{}, err
	}

	targets := []*decimal.Decimal{
		&s.BasicSalary, &s.HRA, &s.Conveyance, &s.OtherAllowances,
		&s.GrossSalary, &s.ProvidentFund, &s.Tax, &s.NetSalary,
	}
	for i, target := range targets {
		d, err := decimal.NewFromString(amounts[i])
		if err != nil {
			return salaryslip.SalarySlip{}, fmt.Errorf("parse amount %q: %w", amounts[i], err)
		}
		*target = d
	}
	return s, nil
}
