package staff

import (
	"context"
	"errors"
	"testing"

	"github.com/basratech/hr-suite-go/internal/domain/staff"
	"github.com/basratech/hr-suite-go/internal/pkg/apperror"
	"github.com/basratech/hr-suite-go/internal/pkg/events"
	"github.com/basratech/hr-suite-go/internal/pkg/validator"
	"github.com/basratech/hr-suite-go/internal/repository/memory"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func onboardRequest(email string) staff.OnboardStaffRequest {
	return staff.OnboardStaffRequest{
		UserID:      uuid.NewString(),
		StaffCode:   "EMP-001",
		Name:        "Ana Lopez",
		Email:       email,
		Designation: "Engineer",
		Department:  "R&D",
		JoiningDate: "2024-01-15",
	}
}

func TestStaffService_Onboard(t *testing.T) {
	rec := &events.RecordingPublisher{}
	svc := NewStaffService(memory.NewStaffRepository(), rec)
	ctx := context.Background()

	created, err := svc.Onboard(ctx, onboardRequest("Ana@Example.com"))
	require.NoError(t, err)
	assert.True(t, created.IsActive)
	assert.Equal(t, "ana@example.com", created.Email)
	assert.Equal(t, "2024-01-15", created.JoiningDate)
	assert.Len(t, rec.Events(), 1)

	_, err = svc.Onboard(ctx, onboardRequest("ana@example.com"))
	assert.ErrorIs(t, err, staff.ErrStaffEmailExists)
	assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))
}

func TestStaffService_OnboardValidation(t *testing.T) {
	svc := NewStaffService(memory.NewStaffRepository(), nil)

	req := onboardRequest("not-an-email")
	req.UserID = "abc"
	req.JoiningDate = "15/01/2024"

	_, err := svc.Onboard(context.Background(), req)
	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	fields := verrs.ToMap()
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "userId")
	assert.Contains(t, fields, "joiningDate")
}

func TestStaffService_UpdatePartial(t *testing.T) {
	svc := NewStaffService(memory.NewStaffRepository(), nil)
	ctx := context.Background()

	created, err := svc.Onboard(ctx, onboardRequest("ana@example.com"))
	require.NoError(t, err)

	inactive := false
	designation := "Senior Engineer"
	updated, err := svc.Update(ctx, staff.UpdateStaffRequest{
		ID:          created.ID,
		Designation: &designation,
		IsActive:    &inactive,
		BankDetails: &staff.BankDetails{BankName: "First", AccountNumber: "001"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Senior Engineer", updated.Designation)
	assert.False(t, updated.IsActive)
	assert.Equal(t, "R&D", updated.Department)
	assert.Equal(t, created.Email, updated.Email)
	require.NotNil(t, updated.BankDetails)
	assert.Equal(t, "First", updated.BankDetails.BankName)

	active, err := svc.List(ctx, staff.ListStaffFilter{})
	require.NoError(t, err)
	assert.Empty(t, active)

	all, err := svc.List(ctx, staff.ListStaffFilter{IncludeInactive: true})
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestStaffService_NotFound(t *testing.T) {
	svc := NewStaffService(memory.NewStaffRepository(), nil)
	ctx := context.Background()

	name := "X"
	_, err := svc.Update(ctx, staff.UpdateStaffRequest{ID: uuid.NewString(), Name: &name})
	assert.ErrorIs(t, err, staff.ErrStaffNotFound)

	_, err = svc.GetByID(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, staff.ErrStaffNotFound)

	_, err = svc.GetByUserID(ctx, uuid.NewString())
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}

func TestStaffService_GetByUserID(t *testing.T) {
	svc := NewStaffService(memory.NewStaffRepository(), nil)
	ctx := context.Background()

	req := onboardRequest("ana@example.com")
	created, err := svc.Onboard(ctx, req)
	require.NoError(t, err)

	found, err := svc.GetByUserID(ctx, req.UserID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
}
