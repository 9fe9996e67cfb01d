package salaryslip

import (
	"context"
	"testing"
	"time"

	"github.com/basratech/hr-suite-go/internal/domain/salaryslip"
	"github.com/basratech/hr-suite-go/internal/domain/staff"
	domaintimelog "github.com/basratech/hr-suite-go/internal/domain/timelog"
	"github.com/basratech/hr-suite-go/internal/pkg/apperror"
	"github.com/basratech/hr-suite-go/internal/pkg/events"
	"github.com/basratech/hr-suite-go/internal/repository/memory"
	"github.com/basratech/hr-suite-go/internal/service/timelog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	svc       salaryslip.SalarySlipService
	staffRepo *memory.StaffRepository
	timeLogs  domaintimelog.TimeLogService
	publisher *events.RecordingPublisher
}

func newFixture() *fixture {
	staffRepo := memory.NewStaffRepository()
	timeLogs := timelog.NewTimeLogService(memory.NewTimeLogRepository(), memory.NewHolidayRepository(), nil)
	publisher := &events.RecordingPublisher{}
	return &fixture{
		svc:       NewSalarySlipService(memory.NewSalarySlipRepository(staffRepo), staffRepo, timeLogs, publisher),
		staffRepo: staffRepo,
		timeLogs:  timeLogs,
		publisher: publisher,
	}
}

func (f *fixture) addStaff(t *testing.T) string {
	t.Helper()
	id := uuid.NewString()
	_, err := f.staffRepo.Create(context.Background(), staff.Staff{ID: id, Email: id + "@example.com", IsActive: true})
	require.NoError(t, err)
	return id
}

func intPtr(i int) *int { return &i }

func TestSalarySlipService_Generate(t *testing.T) {
	f := newFixture()
	staffID := f.addStaff(t)

	slip, err := f.svc.Generate(context.Background(), salaryslip.GenerateSalarySlipRequest{
		StaffID:         staffID,
		Month:           3,
		Year:            2024,
		BasicSalary:     decimal.RequireFromString("50000"),
		HRA:             decimal.RequireFromString("20000"),
		Conveyance:      decimal.RequireFromString("1600"),
		OtherAllowances: decimal.RequireFromString("3400"),
		WorkDays:        intPtr(21),
		LeaveDays:       1,
	})
	require.NoError(t, err)

	assert.Equal(t, "75000", slip.GrossSalary.String())
	assert.Equal(t, "6000", slip.ProvidentFund.String())
	assert.Equal(t, "7500", slip.Tax.String())
	assert.Equal(t, "61500", slip.NetSalary.String())
	assert.Equal(t, 21, slip.WorkDays)

	published := f.publisher.Events()
	require.Len(t, published, 1)
	assert.Equal(t, events.TypeSalarySlipGenerated, published[0].Type)

	got, err := f.svc.Get(context.Background(), slip.ID)
	require.NoError(t, err)
	assert.Equal(t, slip.ID, got.ID)
}

func TestSalarySlipService_WorkDaysFromSummary(t *testing.T) {
	f := newFixture()
	staffID := f.addStaff(t)
	ctx := context.Background()

	for _, d := range []int{4, 5} {
		login := time.Date(2024, time.March, d, 9, 0, 0, 0, time.UTC)
		_, err := f.timeLogs.Login(ctx, domaintimelog.LoginRequest{StaffID: staffID, LoginTime: &login})
		require.NoError(t, err)
	}

	slip, err := f.svc.Generate(ctx, salaryslip.GenerateSalarySlipRequest{
		StaffID:     staffID,
		Month:       3,
		Year:        2024,
		BasicSalary: decimal.NewFromInt(1000),
	})
	require.NoError(t, err)
	assert.Equal(t, 2, slip.WorkDays)
}

func TestSalarySlipService_Errors(t *testing.T) {
	f := newFixture()
	staffID := f.addStaff(t)
	ctx := context.Background()

	req := salaryslip.GenerateSalarySlipRequest{
		StaffID:     staffID,
		Month:       1,
		Year:        2024,
		BasicSalary: decimal.NewFromInt(1000),
		WorkDays:    intPtr(20),
	}
	_, err := f.svc.Generate(ctx, req)
	require.NoError(t, err)

	_, err = f.svc.Generate(ctx, req)
	assert.ErrorIs(t, err, salaryslip.ErrSalarySlipExists)
	assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))

	req.StaffID = uuid.NewString()
	_, err = f.svc.Generate(ctx, req)
	assert.ErrorIs(t, err, staff.ErrStaffNotFound)

	_, err = f.svc.Get(ctx, uuid.NewString())
	assert.ErrorIs(t, err, salaryslip.ErrSalarySlipNotFound)
}

func TestSalarySlipService_ListByStaff(t *testing.T) {
	f := newFixture()
	staffID := f.addStaff(t)
	ctx := context.Background()

	for _, month := range []int{1, 3, 2} {
		_, err := f.svc.Generate(ctx, salaryslip.GenerateSalarySlipRequest{
			StaffID:     staffID,
			Month:       month,
			Year:        2024,
			BasicSalary: decimal.NewFromInt(1000),
			WorkDays:    intPtr(20),
		})
		require.NoError(t, err)
	}

	slips, err := f.svc.ListByStaff(ctx, staffID)
	require.NoError(t, err)
	require.Len(t, slips, 3)
	assert.Equal(t, 3, slips[0].Month)
	assert.Equal(t, 1, slips[2].Month)
}
