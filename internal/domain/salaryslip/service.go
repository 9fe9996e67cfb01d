package salaryslip

import "context"

type SalarySlipService interface {
	Generate(ctx context.Context, req GenerateSalarySlipRequest) (SalarySlipResponse, error)
	Get(ctx context.Context, id string) (SalarySlipResponse, error)
	ListByStaff(ctx context.Context, staffID string) ([]SalarySlipResponse, error)
}
