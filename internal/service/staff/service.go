package staff

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/basratech/hr-suite-go/internal/domain/staff"
	"github.com/basratech/hr-suite-go/internal/pkg/calendar"
	"github.com/basratech/hr-suite-go/internal/pkg/events"
	"github.com/basratech/hr-suite-go/internal/pkg/validator"
	"github.com/google/uuid"
)

type StaffServiceImpl struct {
	staff.StaffRepository
	publisher events.Publisher
}

func NewStaffService(staffRepo staff.StaffRepository, publisher events.Publisher) staff.StaffService {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	return &StaffServiceImpl{
		StaffRepository: staffRepo,
		publisher:       publisher,
	}
}

// Onboard implements staff.StaffService.
func (s *StaffServiceImpl) Onboard(ctx context.Context, req staff.OnboardStaffRequest) (staff.StaffResponse, error) {
	if err := req.Validate(); err != nil {
		return staff.StaffResponse{}, err
	}
	joiningDate, _ := calendar.ParseDate(req.JoiningDate)

	created, err := s.StaffRepository.Create(ctx, staff.Staff{
		ID:               uuid.NewString(),
		UserID:           req.UserID,
		StaffCode:        strings.TrimSpace(req.StaffCode),
		Name:             strings.TrimSpace(req.Name),
		Email:            strings.ToLower(strings.TrimSpace(req.Email)),
		PhoneNumber:      req.PhoneNumber,
		Designation:      req.Designation,
		Department:       req.Department,
		JoiningDate:      joiningDate,
		Address:          req.Address,
		EmergencyContact: req.EmergencyContact,
		BankDetails:      req.BankDetails,
		IsActive:         true,
		CreatedBy:        req.CreatedBy,
	})
	if err != nil {
		return staff.StaffResponse{}, fmt.Errorf("create staff: %w", err)
	}

	slog.InfoContext(ctx, "Staff onboarded", "staff_id", created.ID, "user_id", created.UserID)
	if err := s.publisher.Publish(ctx, events.NewEvent(events.TypeStaffOnboarded, map[string]any{
		"staffId":    created.ID,
		"userId":     created.UserID,
		"department": created.Department,
	})); err != nil {
		slog.WarnContext(ctx, "Failed to publish event", "type", events.TypeStaffOnboarded, "error", err)
	}

	return staff.NewStaffResponse(created), nil
}

// Update implements staff.StaffService.
func (s *StaffServiceImpl) Update(ctx context.Context, req staff.UpdateStaffRequest) (staff.StaffResponse, error) {
	if err := req.Validate(); err != nil {
		return staff.StaffResponse{}, err
	}
	if !validator.IsValidUUID(req.ID) {
		return staff.StaffResponse{}, staff.ErrStaffNotFound
	}

	existing, err := s.StaffRepository.GetByID(ctx, req.ID)
	if err != nil {
		return staff.StaffResponse{}, fmt.Errorf("get staff: %w", err)
	}

	req.Apply(&existing)

	updated, err := s.StaffRepository.Update(ctx, existing)
	if err != nil {
		return staff.StaffResponse{}, fmt.Errorf("update staff: %w", err)
	}

	slog.InfoContext(ctx, "Staff updated", "staff_id", updated.ID, "is_active", updated.IsActive)
	return staff.NewStaffResponse(updated), nil
}

// GetByID implements staff.StaffService.
func (s *StaffServiceImpl) GetByID(ctx context.Context, id string) (staff.StaffResponse, error) {
	if !validator.IsValidUUID(id) {
		return staff.StaffResponse{}, staff.ErrStaffNotFound
	}
	found, err := s.StaffRepository.GetByID(ctx, id)
	if err != nil {
		return staff.StaffResponse{}, fmt.Errorf("get staff: %w", err)
	}
	return staff.NewStaffResponse(found), nil
}

// GetByUserID implements staff.StaffService.
func (s *StaffServiceImpl) GetByUserID(ctx context.Context, userID string) (staff.StaffResponse, error) {
	if !validator.IsValidUUID(userID) {
		return staff.StaffResponse{}, staff.ErrStaffNotFound
	}
	found, err := s.StaffRepository.GetByUserID(ctx, userID)
	if err != nil {
		return staff.StaffResponse{}, fmt.Errorf("get staff by user: %w", err)
	}
	return staff.NewStaffResponse(found), nil
}

// List implements staff.StaffService.
func (s *StaffServiceImpl) List(ctx context.Context, filter staff.ListStaffFilter) ([]staff.StaffResponse, error) {
	members, err := s.StaffRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list staff: %w", err)
	}

	responses := make([]staff.StaffResponse, 0, len(members))
	for _, m := range members {
		responses = append(responses, staff.NewStaffResponse(m))
	}
	return responses, nil
}
