package salaryslip

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/basratech/hr-suite-go/internal/domain/salaryslip"
	"github.com/basratech/hr-suite-go/internal/domain/staff"
	"github.com/basratech/hr-suite-go/internal/domain/timelog"
	"github.com/basratech/hr-suite-go/internal/pkg/events"
	"github.com/basratech/hr-suite-go/internal/pkg/validator"
	"github.com/google/uuid"
)

// SummaryProvider supplies attendance for a pay period.
type SummaryProvider interface {
	GetMonthlySummary(ctx context.Context, staffID string, year, month int) (timelog.MonthlySummary, error)
}

type SalarySlipServiceImpl struct {
	salaryslip.SalarySlipRepository
	staffRepo staff.StaffRepository
	summaries SummaryProvider
	publisher events.Publisher
}

func NewSalarySlipService(
	slipRepo salaryslip.SalarySlipRepository,
	staffRepo staff.StaffRepository,
	summaries SummaryProvider,
	publisher events.Publisher,
) salaryslip.SalarySlipService {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	return &SalarySlipServiceImpl{
		SalarySlipRepository: slipRepo,
		staffRepo:            staffRepo,
		summaries:            summaries,
		publisher:            publisher,
	}
}

// Generate implements salaryslip.SalarySlipService.
func (s *SalarySlipServiceImpl) Generate(ctx context.Context, req salaryslip.GenerateSalarySlipRequest) (salaryslip.SalarySlipResponse, error) {
	if err := req.Validate(); err != nil {
		return salaryslip.SalarySlipResponse{}, err
	}
	if !validator.IsValidUUID(req.StaffID) {
		return salaryslip.SalarySlipResponse{}, staff.ErrStaffNotFound
	}

	member, err := s.staffRepo.GetByID(ctx, req.StaffID)
	if err != nil {
		return salaryslip.SalarySlipResponse{}, fmt.Errorf("get staff: %w", err)
	}

	workDays := 0
	if req.WorkDays != nil {
		workDays = *req.WorkDays
	} else {
		summary, err := s.summaries.GetMonthlySummary(ctx, member.ID, req.Year, req.Month)
		if err != nil {
			return salaryslip.SalarySlipResponse{}, fmt.Errorf("get monthly summary: %w", err)
		}
		workDays = summary.TotalWorkDays
	}

	slip := salaryslip.SalarySlip{
		ID:              uuid.NewString(),
		StaffID:         member.ID,
		PeriodMonth:     req.Month,
		PeriodYear:      req.Year,
		BasicSalary:     req.BasicSalary,
		HRA:             req.HRA,
		Conveyance:      req.Conveyance,
		OtherAllowances: req.OtherAllowances,
		WorkDays:        workDays,
		LeaveDays:       req.LeaveDays,
		GeneratedBy:     req.GeneratedBy,
	}
	slip.Compute()

	created, err := s.SalarySlipRepository.Create(ctx, slip)
	if err != nil {
		return salaryslip.SalarySlipResponse{}, fmt.Errorf("create salary slip: %w", err)
	}

	slog.InfoContext(ctx, "Salary slip generated",
		"salary_slip_id", created.ID,
		"staff_id", created.StaffID,
		"period", fmt.Sprintf("%04d-%02d", created.PeriodYear, created.PeriodMonth),
	)
	if err := s.publisher.Publish(ctx, events.NewEvent(events.TypeSalarySlipGenerated, map[string]any{
		"salarySlipId": created.ID,
		"staffId":      created.StaffID,
		"month":        created.PeriodMonth,
		"year":         created.PeriodYear,
		"netSalary":    created.NetSalary.String(),
	})); err != nil {
		slog.WarnContext(ctx, "Failed to publish event", "type", events.TypeSalarySlipGenerated, "error", err)
	}

	return salaryslip.NewSalarySlipResponse(created), nil
}

// Get implements salaryslip.SalarySlipService.
func (s *SalarySlipServiceImpl) Get(ctx context.Context, id string) (salaryslip.SalarySlipResponse, error) {
	if !validator.IsValidUUID(id) {
		return salaryslip.SalarySlipResponse{}, salaryslip.ErrSalarySlipNotFound
	}
	slip, err := s.SalarySlipRepository.GetByID(ctx, id)
	if err != nil {
		return salaryslip.SalarySlipResponse{}, fmt.Errorf("get salary slip: %w", err)
	}
	return salaryslip.NewSalarySlipResponse(slip), nil
}

// ListByStaff implements salaryslip.SalarySlipService.
func (s *SalarySlipServiceImpl) ListByStaff(ctx context.Context, staffID string) ([]salaryslip.SalarySlipResponse, error) {
	if !validator.IsValidUUID(staffID) {
		return nil, staff.ErrStaffNotFound
	}
	slips, err := s.SalarySlipRepository.ListByStaff(ctx, staffID)
	if err != nil {
		return nil, fmt.Errorf("list salary slips: %w", err)
	}

	responses := make([]salaryslip.SalarySlipResponse, 0, len(slips))
	for _, slip := range slips {
		responses = append(responses, salaryslip.NewSalarySlipResponse(slip))
	}
	return responses, nil
}
