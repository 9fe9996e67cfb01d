package timelog

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/basratech/hr-suite-go/internal/domain/holiday"
	"github.com/basratech/hr-suite-go/internal/domain/timelog"
	"github.com/basratech/hr-suite-go/internal/pkg/apperror"
	"github.com/basratech/hr-suite-go/internal/pkg/events"
	"github.com/basratech/hr-suite-go/internal/pkg/validator"
	"github.com/basratech/hr-suite-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	svc       timelog.TimeLogService
	logs      *memory.TimeLogRepository
	holidays  *memory.HolidayRepository
	publisher *events.RecordingPublisher
}

func newFixture(now time.Time) *fixture {
	f := &fixture{
		logs:      memory.NewTimeLogRepository(),
		holidays:  memory.NewHolidayRepository(),
		publisher: &events.RecordingPublisher{},
	}
	f.svc = NewTimeLogService(f.logs, f.holidays, f.publisher, WithClock(func() time.Time { return now }))
	return f
}

func ts(hour, minute int) *time.Time {
	t := time.Date(2024, time.March, 4, hour, minute, 0, 0, time.UTC)
	return &t
}

func TestTimeLogService_FullDayScenario(t *testing.T) {
	f := newFixture(*ts(18, 0))
	ctx := context.Background()

	login, err := f.svc.Login(ctx, timelog.LoginRequest{StaffID: "staff-1", LoginTime: ts(9, 0)})
	require.NoError(t, err)
	assert.NotEmpty(t, login.TimeLogID)

	require.NoError(t, f.svc.BreakIn(ctx, timelog.BreakInRequest{StaffID: "staff-1", BreakInTime: ts(12, 0)}))

	out, err := f.svc.BreakOut(ctx, timelog.BreakOutRequest{StaffID: "staff-1", BreakOutTime: ts(12, 30)})
	require.NoError(t, err)
	assert.InDelta(t, 0.5, out.BreakDuration, 1e-9)

	logout, err := f.svc.Logout(ctx, timelog.LogoutRequest{StaffID: "staff-1", LogoutTime: ts(17, 0)})
	require.NoError(t, err)
	assert.InDelta(t, 8.0, logout.TotalWorkHours, 1e-9)
	assert.InDelta(t, 7.5, logout.NetWorkHours, 1e-9)
	assert.InDelta(t, logout.TotalWorkHours-out.BreakDuration, logout.NetWorkHours, 1e-9)

	today, err := f.svc.GetToday(ctx, "staff-1")
	require.NoError(t, err)
	assert.Equal(t, login.TimeLogID, today.ID)
	assert.Equal(t, timelog.StatusLoggedOut, today.Status)
	assert.InDelta(t, 0.5, today.TotalBreakHours, 1e-9)
	assert.Equal(t, "2024-03-04", today.Date)

	published := f.publisher.Events()
	require.Len(t, published, 1)
	assert.Equal(t, events.TypeTimeLogLoggedOut, published[0].Type)
	assert.Equal(t, "staff-1", published[0].Data["staffId"])
}

func TestTimeLogService_LoginTwiceUpdatesInPlace(t *testing.T) {
	f := newFixture(*ts(18, 0))
	ctx := context.Background()

	first, err := f.svc.Login(ctx, timelog.LoginRequest{StaffID: "staff-1", LoginTime: ts(9, 0)})
	require.NoError(t, err)
	second, err := f.svc.Login(ctx, timelog.LoginRequest{StaffID: "staff-1", LoginTime: ts(9, 15)})
	require.NoError(t, err)

	assert.Equal(t, first.TimeLogID, second.TimeLogID)
	assert.Equal(t, 1, f.logs.Count())

	today, err := f.svc.GetToday(ctx, "staff-1")
	require.NoError(t, err)
	assert.True(t, today.LoginTime.Equal(*ts(9, 15)))
}

func TestTimeLogService_BreakOutBeforeBreakIn(t *testing.T) {
	f := newFixture(*ts(18, 0))
	ctx := context.Background()

	_, err := f.svc.Login(ctx, timelog.LoginRequest{StaffID: "staff-1", LoginTime: ts(9, 0)})
	require.NoError(t, err)

	_, err = f.svc.BreakOut(ctx, timelog.BreakOutRequest{StaffID: "staff-1", BreakOutTime: ts(10, 0)})
	assert.ErrorIs(t, err, timelog.ErrNoOpenBreak)
	assert.Equal(t, apperror.KindInvalidState, apperror.KindOf(err))
}

func TestTimeLogService_NoLoginRecord(t *testing.T) {
	f := newFixture(*ts(18, 0))
	ctx := context.Background()

	err := f.svc.BreakIn(ctx, timelog.BreakInRequest{StaffID: "staff-1", BreakInTime: ts(10, 0)})
	assert.ErrorIs(t, err, timelog.ErrNoLoginRecord)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))

	_, err = f.svc.BreakOut(ctx, timelog.BreakOutRequest{StaffID: "staff-1", BreakOutTime: ts(10, 0)})
	assert.ErrorIs(t, err, timelog.ErrNoLoginRecord)

	_, err = f.svc.Logout(ctx, timelog.LogoutRequest{StaffID: "staff-1", LogoutTime: ts(17, 0)})
	assert.ErrorIs(t, err, timelog.ErrNoLoginRecord)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))

	_, err = f.svc.GetToday(ctx, "staff-1")
	assert.ErrorIs(t, err, timelog.ErrNoLoginRecord)

	assert.Zero(t, f.logs.Count())
	assert.Empty(t, f.publisher.Events())
}

func TestTimeLogService_RejectedCommandLeavesStateUnchanged(t *testing.T) {
	f := newFixture(*ts(18, 0))
	ctx := context.Background()

	_, err := f.svc.Login(ctx, timelog.LoginRequest{StaffID: "staff-1", LoginTime: ts(9, 0)})
	require.NoError(t, err)
	require.NoError(t, f.svc.BreakIn(ctx, timelog.BreakInRequest{StaffID: "staff-1", BreakInTime: ts(12, 0)}))

	err = f.svc.BreakIn(ctx, timelog.BreakInRequest{StaffID: "staff-1", BreakInTime: ts(12, 5)})
	assert.ErrorIs(t, err, timelog.ErrAlreadyOnBreak)

	_, err = f.svc.Login(ctx, timelog.LoginRequest{StaffID: "staff-1", LoginTime: ts(12, 10)})
	assert.ErrorIs(t, err, timelog.ErrLoginWhileOnBreak)

	today, err := f.svc.GetToday(ctx, "staff-1")
	require.NoError(t, err)
	assert.Len(t, today.Breaks, 1)
	assert.Equal(t, timelog.StatusOnBreak, today.Status)
	assert.True(t, today.LoginTime.Equal(*ts(9, 0)))
}

func TestTimeLogService_DefaultsToServiceClock(t *testing.T) {
	now := *ts(8, 30)
	f := newFixture(now)
	ctx := context.Background()

	_, err := f.svc.Login(ctx, timelog.LoginRequest{StaffID: "staff-1"})
	require.NoError(t, err)

	today, err := f.svc.GetToday(ctx, "staff-1")
	require.NoError(t, err)
	assert.True(t, today.LoginTime.Equal(now))
}

func TestTimeLogService_Validation(t *testing.T) {
	f := newFixture(*ts(18, 0))
	ctx := context.Background()

	_, err := f.svc.Login(ctx, timelog.LoginRequest{StaffID: "  "})
	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, "staffId", verrs[0].Field)

	_, err = f.svc.GetMonthlySummary(ctx, "staff-1", 2024, 13)
	assert.Equal(t, apperror.KindInvalidArgument, apperror.KindOf(err))

	_, err = f.svc.GetMonthlySummary(ctx, "staff-1", 0, 1)
	assert.Equal(t, apperror.KindInvalidArgument, apperror.KindOf(err))

	_, err = f.svc.GetMonthlySummary(ctx, "", 2024, 1)
	assert.ErrorIs(t, err, timelog.ErrInvalidStaffID)
}

func TestTimeLogService_GetMonthlySummary(t *testing.T) {
	f := newFixture(*ts(18, 0))
	ctx := context.Background()

	for _, d := range []int{4, 5, 6} {
		login := time.Date(2024, time.March, d, 9, 0, 0, 0, time.UTC)
		logout := login.Add(8 * time.Hour)
		_, err := f.svc.Login(ctx, timelog.LoginRequest{StaffID: "staff-1", LoginTime: &login})
		require.NoError(t, err)
		_, err = f.svc.Logout(ctx, timelog.LogoutRequest{StaffID: "staff-1", LogoutTime: &logout})
		require.NoError(t, err)
	}
	_, err := f.holidays.Create(ctx, holiday.Holiday{ID: "h-1", Name: "Spring Day", Date: time.Date(2024, time.March, 8, 0, 0, 0, 0, time.UTC)})
	require.NoError(t, err)

	summary, err := f.svc.GetMonthlySummary(ctx, "staff-1", 2024, 3)
	require.NoError(t, err)

	assert.Equal(t, 3, summary.TotalWorkDays)
	assert.InDelta(t, 24.0, summary.TotalWorkHours, 1e-9)
	assert.InDelta(t, 8.0, summary.AverageWorkHoursPerDay, 1e-9)
	assert.Equal(t, 10, summary.WeekendDays)
	assert.Equal(t, 1, summary.HolidayDays)
	assert.Equal(t, 20, summary.ExpectedWorkDays)
	assert.InDelta(t, 8.0, summary.DailyLogs[3].WorkHours, 1e-9)
}

func TestTimeLogService_GetLogs(t *testing.T) {
	f := newFixture(*ts(18, 0))
	ctx := context.Background()

	for _, d := range []int{6, 4} {
		login := time.Date(2024, time.March, d, 9, 0, 0, 0, time.UTC)
		_, err := f.svc.Login(ctx, timelog.LoginRequest{StaffID: "staff-1", LoginTime: &login})
		require.NoError(t, err)
	}

	logs, err := f.svc.GetLogs(ctx, timelog.LogsFilter{StaffID: "staff-1", StartDate: "2024-03-01", EndDate: "2024-03-31"})
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, "2024-03-04", logs[0].Date)
	assert.Equal(t, "2024-03-06", logs[1].Date)

	_, err = f.svc.GetLogs(ctx, timelog.LogsFilter{StaffID: "staff-1", StartDate: "2024-03-31", EndDate: "2024-03-01"})
	assert.Error(t, err)
}

func TestTimeLogService_PublishFailureDoesNotFailLogout(t *testing.T) {
	f := newFixture(*ts(18, 0))
	f.publisher.Err = errors.New("broker down")
	ctx := context.Background()

	_, err := f.svc.Login(ctx, timelog.LoginRequest{StaffID: "staff-1", LoginTime: ts(9, 0)})
	require.NoError(t, err)
	_, err = f.svc.Logout(ctx, timelog.LogoutRequest{StaffID: "staff-1", LogoutTime: ts(17, 0)})
	assert.NoError(t, err)
}

func TestTimeLogService_ConcurrentBreakInOpensOneBreak(t *testing.T) {
	f := newFixture(*ts(18, 0))
	ctx := context.Background()

	_, err := f.svc.Login(ctx, timelog.LoginRequest{StaffID: "staff-1", LoginTime: ts(9, 0)})
	require.NoError(t, err)

	const workers = 20
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := f.svc.BreakIn(ctx, timelog.BreakInRequest{StaffID: "staff-1", BreakInTime: ts(12, 0)}); err == nil {
				mu.Lock()
				successes++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	today, err := f.svc.GetToday(ctx, "staff-1")
	require.NoError(t, err)
	assert.Len(t, today.Breaks, 1)
}
