package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/basratech/hr-suite-go/internal/domain/salaryslip"
	"github.com/basratech/hr-suite-go/internal/domain/staff"
)

type SalarySlipRepository struct {
	mu    sync.RWMutex
	slips map[string]salaryslip.SalarySlip
	staff staff.StaffRepository
}

// NewSalarySlipRepository checks staff existence against staffRepo, like the foreign key does.
func NewSalarySlipRepository(staffRepo staff.StaffRepository) *SalarySlipRepository {
	return &SalarySlipRepository{
		slips: make(map[string]salaryslip.SalarySlip),
		staff: staffRepo,
	}
}

// Create implements salaryslip.SalarySlipRepository.
func (r *SalarySlipRepository) Create(ctx context.Context, s salaryslip.SalarySlip) (salaryslip.SalarySlip, error) {
	if _, err := r.staff.GetByID(ctx, s.StaffID); err != nil {
		return salaryslip.SalarySlip{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.slips {
		if existing.StaffID == s.StaffID && existing.PeriodYear == s.PeriodYear && existing.PeriodMonth == s.PeriodMonth {
			return salaryslip.SalarySlip{}, salaryslip.ErrSalarySlipExists
		}
	}
	s.GeneratedAt = time.Now().UTC()
	r.slips[s.ID] = s
	return s, nil
}

// GetByID implements salaryslip.SalarySlipRepository.
func (r *SalarySlipRepository) GetByID(ctx context.Context, id string) (salaryslip.SalarySlip, error) {
	if err := ctx.Err(); err != nil {
		return salaryslip.SalarySlip{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.slips[id]
	if !ok {
		return salaryslip.SalarySlip{}, salaryslip.ErrSalarySlipNotFound
	}
	return s, nil
}

// ListByStaff implements salaryslip.SalarySlipRepository.
func (r *SalarySlipRepository) ListByStaff(ctx context.Context, staffID string) ([]salaryslip.SalarySlip, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []salaryslip.SalarySlip{}
	for _, s := range r.slips {
		if s.StaffID == staffID {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].PeriodYear != out[j].PeriodYear {
			return out[i].PeriodYear > out[j].PeriodYear
		}
		return out[i].PeriodMonth > out[j].PeriodMonth
	})
	return out, nil
}
