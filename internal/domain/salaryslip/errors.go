package salaryslip

import "github.com/basratech/hr-suite-go/internal/pkg/apperror"

var (
	ErrSalarySlipNotFound = apperror.New(apperror.KindNotFound, "salary slip not found")
	ErrSalarySlipExists   = apperror.New(apperror.KindConflict, "salary slip already exists for this period")
)
