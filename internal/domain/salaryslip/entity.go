package salaryslip

import (
	"time"

	"github.com/shopspring/decimal"
)

var (
	ProvidentFundRate = decimal.RequireFromString("0.12")
	TaxRate           = decimal.RequireFromString("0.10")
)

type SalarySlip struct {
	ID              string
	StaffID         string
	PeriodMonth     int
	PeriodYear      int
	BasicSalary     decimal.Decimal
	HRA             decimal.Decimal
	Conveyance      decimal.Decimal
	OtherAllowances decimal.Decimal
	GrossSalary     decimal.Decimal
	ProvidentFund   decimal.Decimal
	Tax             decimal.Decimal
	NetSalary       decimal.Decimal
	WorkDays        int
	LeaveDays       int
	GeneratedBy     *string
	GeneratedAt     time.Time
}

// Compute fills the derived amounts from the earnings components.
// Rates are fixed simplified values, not tax law.
func (s *SalarySlip) Compute() {
	s.GrossSalary = s.BasicSalary.Add(s.HRA).Add(s.Conveyance).Add(s.OtherAllowances)
	s.ProvidentFund = s.BasicSalary.Mul(ProvidentFundRate).Round(2)
	s.Tax = s.GrossSalary.Mul(TaxRate).Round(2)
	s.NetSalary = s.GrossSalary.Sub(s.ProvidentFund).Sub(s.Tax)
}
