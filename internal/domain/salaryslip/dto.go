package salaryslip

import (
	"time"

	"github.com/basratech/hr-suite-go/internal/pkg/calendar"
	"github.com/basratech/hr-suite-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type GenerateSalarySlipRequest struct {
	StaffID         string          `json:"staffId"`
	Month           int             `json:"month"`
	Year            int             `json:"year"`
	BasicSalary     decimal.Decimal `json:"basicSalary"`
	HRA             decimal.Decimal `json:"hra"`
	Conveyance      decimal.Decimal `json:"conveyance"`
	OtherAllowances decimal.Decimal `json:"otherAllowances"`
	WorkDays        *int            `json:"workDays,omitempty"`
	LeaveDays       int             `json:"leaveDays"`
	GeneratedBy     *string         `json:"-"`
}

func (r *GenerateSalarySlipRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StaffID) {
		errs.Add("staffId", "staffId is required")
	}
	if err := calendar.ValidateYearMonth(r.Year, r.Month); err != nil {
		errs.Add("period", err.Error())
	}
	if r.BasicSalary.LessThanOrEqual(decimal.Zero) {
		errs.Add("basicSalary", "basicSalary must be greater than 0")
	}
	for field, amount := range map[string]decimal.Decimal{
		"hra":             r.HRA,
		"conveyance":      r.Conveyance,
		"otherAllowances": r.OtherAllowances,
	} {
		if amount.IsNegative() {
			errs.Add(field, field+" must not be negative")
		}
	}
	if r.WorkDays != nil && (*r.WorkDays < 0 || *r.WorkDays > 31) {
		errs.Add("workDays", "workDays must be between 0 and 31")
	}
	if r.LeaveDays < 0 || r.LeaveDays > 31 {
		errs.Add("leaveDays", "leaveDays must be between 0 and 31")
	}

	return errs.Err()
}

type SalarySlipResponse struct {
	ID              string          `json:"id"`
	StaffID         string          `json:"staffId"`
	Month           int             `json:"month"`
	Year            int             `json:"year"`
	BasicSalary     decimal.Decimal `json:"basicSalary"`
	HRA             decimal.Decimal `json:"hra"`
	Conveyance      decimal.Decimal `json:"conveyance"`
	OtherAllowances decimal.Decimal `json:"otherAllowances"`
	GrossSalary     decimal.Decimal `json:"grossSalary"`
	ProvidentFund   decimal.Decimal `json:"providentFund"`
	Tax             decimal.Decimal `json:"tax"`
	NetSalary       decimal.Decimal `json:"netSalary"`
	WorkDays        int             `json:"workDays"`
	LeaveDays       int             `json:"leaveDays"`
	GeneratedAt     string          `json:"generatedAt"`
}

func NewSalarySlipResponse(s SalarySlip) SalarySlipResponse {
	return SalarySlipResponse{
		ID:              s.ID,
		StaffID:         s.StaffID,
		Month:           s.PeriodMonth,
		Year:            s.PeriodYear,
		BasicSalary:     s.BasicSalary,
		HRA:             s.HRA,
		Conveyance:      s.Conveyance,
		OtherAllowances: s.OtherAllowances,
		GrossSalary:     s.GrossSalary,
		ProvidentFund:   s.ProvidentFund,
		Tax:             s.Tax,
		NetSalary:       s.NetSalary,
		WorkDays:        s.WorkDays,
		LeaveDays:       s.LeaveDays,
		GeneratedAt:     s.GeneratedAt.UTC().Format(time.RFC3339),
	}
}
