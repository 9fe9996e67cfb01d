package salaryslip

import "context"

type SalarySlipRepository interface {
	// Create fails with ErrSalarySlipExists when the staff already has a slip for the period
	Create(ctx context.Context, s SalarySlip) (SalarySlip, error)
	GetByID(ctx context.Context, id string) (SalarySlip, error)
	// ListByStaff returns newest period first
	ListByStaff(ctx context.Context, staffID string) ([]SalarySlip, error)
}
