package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/basratech/hr-suite-go/internal/pkg/events"
	"github.com/basratech/hr-suite-go/internal/pkg/jwt"
	"github.com/basratech/hr-suite-go/internal/repository/memory"
	authService "github.com/basratech/hr-suite-go/internal/service/auth"
	holidayService "github.com/basratech/hr-suite-go/internal/service/holiday"
	salarySlipService "github.com/basratech/hr-suite-go/internal/service/salaryslip"
	staffService "github.com/basratech/hr-suite-go/internal/service/staff"
	timeLogService "github.com/basratech/hr-suite-go/internal/service/timelog"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const handlerTestSecret = "test-secret-key-for-jwt"

type testServer struct {
	hr         *chi.Mux
	auth       *chi.Mux
	jwtService jwt.Service
	publisher  *events.RecordingPublisher
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	origins := []string{"http://localhost:3000"}

	jwtService, err := jwt.NewJWTService(handlerTestSecret, "1h")
	require.NoError(t, err)

	publisher := &events.RecordingPublisher{}
	timeLogRepo := memory.NewTimeLogRepository()
	holidayRepo := memory.NewHolidayRepository()
	staffRepo := memory.NewStaffRepository()
	slipRepo := memory.NewSalarySlipRepository(staffRepo)
	userRepo := memory.NewUserRepository()

	timeLogs := timeLogService.NewTimeLogService(timeLogRepo, holidayRepo, publisher)

	hr := NewRouter(logger, origins, jwtService, HRHandlers{
		TimeTracking: NewTimeTrackingHandler(timeLogs),
		Holiday:      NewHolidayHandler(holidayService.NewHolidayService(holidayRepo)),
		Staff:        NewStaffHandler(staffService.NewStaffService(staffRepo, publisher)),
		SalarySlip:   NewSalarySlipHandler(salarySlipService.NewSalarySlipService(slipRepo, staffRepo, timeLogs, publisher)),
	})
	authRouter := NewAuthRouter(logger, origins, NewAuthHandler(authService.NewAuthService(userRepo, jwtService)))

	return &testServer{hr: hr, auth: authRouter, jwtService: jwtService, publisher: publisher}
}

func (s *testServer) token(t *testing.T, role string) string {
	t.Helper()
	token, _, err := s.jwtService.GenerateAccessToken(jwt.Identity{
		UserID: "0190b5a0-0000-7000-8000-000000000001",
		Email:  "admin@example.com",
		Name:   "Admin",
		Role:   role,
	})
	require.NoError(t, err)
	return token
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	} `json:"error"`
}

func do(t *testing.T, h http.Handler, method, path, token string, body any) (int, envelope) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.NewDecoder(w.Body).Decode(&env), "body for %s %s", method, path)
	return w.Code, env
}

func TestTimeTracking_FullDay(t *testing.T) {
	s := newTestServer(t)
	token := s.token(t, "User")
	day := time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC)

	code, env := do(t, s.hr, http.MethodPost, "/api/timetracking/login", token, map[string]any{
		"staffId": "staff-1", "loginTime": day.Add(9 * time.Hour),
	})
	require.Equal(t, http.StatusOK, code)
	var login struct {
		TimeLogID string `json:"timeLogId"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &login))
	assert.NotEmpty(t, login.TimeLogID)

	code, _ = do(t, s.hr, http.MethodPost, "/api/timetracking/break-in", token, map[string]any{
		"staffId": "staff-1", "breakInTime": day.Add(12 * time.Hour), "breakType": "lunch",
	})
	require.Equal(t, http.StatusOK, code)

	code, env = do(t, s.hr, http.MethodPost, "/api/timetracking/break-in", token, map[string]any{
		"staffId": "staff-1", "breakInTime": day.Add(12*time.Hour + 5*time.Minute),
	})
	assert.Equal(t, http.StatusConflict, code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INVALID_STATE", env.Error.Code)

	code, env = do(t, s.hr, http.MethodPost, "/api/timetracking/break-out", token, map[string]any{
		"staffId": "staff-1", "breakOutTime": day.Add(12*time.Hour + 30*time.Minute),
	})
	require.Equal(t, http.StatusOK, code)
	var breakOut struct {
		BreakDuration float64 `json:"breakDuration"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &breakOut))
	assert.InDelta(t, 0.5, breakOut.BreakDuration, 1e-9)

	code, env = do(t, s.hr, http.MethodPost, "/api/timetracking/logout", token, map[string]any{
		"staffId": "staff-1", "logoutTime": day.Add(17 * time.Hour),
	})
	require.Equal(t, http.StatusOK, code)
	var logout struct {
		TotalWorkHours float64 `json:"totalWorkHours"`
		NetWorkHours   float64 `json:"netWorkHours"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &logout))
	assert.InDelta(t, 8.0, logout.TotalWorkHours, 1e-9)
	assert.InDelta(t, 7.5, logout.NetWorkHours, 1e-9)
	assert.Len(t, s.publisher.Events(), 1)

	code, env = do(t, s.hr, http.MethodGet, "/api/timetracking/logs/staff-1?startDate=2024-03-01&endDate=2024-03-31", token, nil)
	require.Equal(t, http.StatusOK, code)
	var logs []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &logs))
	require.Len(t, logs, 1)
	assert.Equal(t, "LoggedOut", logs[0]["status"])

	code, env = do(t, s.hr, http.MethodGet, "/api/timetracking/summary/staff-1/2024/3", token, nil)
	require.Equal(t, http.StatusOK, code)
	var summary map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &summary))
	assert.EqualValues(t, 1, summary["totalWorkDays"])
	assert.EqualValues(t, 21, summary["expectedWorkDays"])
}

func TestTimeTracking_Errors(t *testing.T) {
	s := newTestServer(t)
	token := s.token(t, "User")

	code, env := do(t, s.hr, http.MethodPost, "/api/timetracking/logout", token, map[string]any{"staffId": "nobody"})
	assert.Equal(t, http.StatusNotFound, code)
	assert.False(t, env.Success)

	code, env = do(t, s.hr, http.MethodPost, "/api/timetracking/login", token, map[string]any{})
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	require.NotNil(t, env.Error)
	assert.Contains(t, env.Error.Details, "staffId")

	code, _ = do(t, s.hr, http.MethodGet, "/api/timetracking/summary/staff-1/2024/13", token, nil)
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = do(t, s.hr, http.MethodGet, "/api/timetracking/summary/staff-1/2024/march", token, nil)
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = do(t, s.hr, http.MethodGet, "/api/timetracking/today/staff-1", "", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestHolidays_AdminOnly(t *testing.T) {
	s := newTestServer(t)
	body := map[string]any{"name": "New Year", "date": "2024-01-01", "isRecurring": true}

	code, _ := do(t, s.hr, http.MethodPost, "/api/holidays", s.token(t, "User"), body)
	assert.Equal(t, http.StatusForbidden, code)

	admin := s.token(t, "Admin")
	code, _ = do(t, s.hr, http.MethodPost, "/api/holidays", admin, body)
	assert.Equal(t, http.StatusCreated, code)

	code, env := do(t, s.hr, http.MethodPost, "/api/holidays", admin, body)
	assert.Equal(t, http.StatusConflict, code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "CONFLICT", env.Error.Code)

	code, env = do(t, s.hr, http.MethodGet, "/api/holidays/2024/1", admin, nil)
	require.Equal(t, http.StatusOK, code)
	var holidays []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &holidays))
	assert.Len(t, holidays, 1)
}

func TestStaffAndSalarySlips(t *testing.T) {
	s := newTestServer(t)
	admin := s.token(t, "Admin")

	code, env := do(t, s.hr, http.MethodPost, "/api/staff/onboard", admin, map[string]any{
		"userId":      "0190b5a0-0000-7000-8000-000000000002",
		"staffCode":   "EMP-7",
		"name":        "Ana Lopez",
		"email":       "ana@example.com",
		"designation": "Engineer",
		"department":  "R&D",
		"joiningDate": "2024-01-15",
	})
	require.Equal(t, http.StatusCreated, code)
	var member struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &member))

	code, _ = do(t, s.hr, http.MethodPut, "/api/staff/"+member.ID, admin, map[string]any{"designation": "Lead"})
	assert.Equal(t, http.StatusOK, code)

	code, _ = do(t, s.hr, http.MethodGet, "/api/staff/user/0190b5a0-0000-7000-8000-000000000002", admin, nil)
	assert.Equal(t, http.StatusOK, code)

	code, env = do(t, s.hr, http.MethodPost, "/api/salaryslips", admin, map[string]any{
		"staffId":     member.ID,
		"month":       3,
		"year":        2024,
		"basicSalary": "50000",
		"hra":         "20000",
		"workDays":    21,
	})
	require.Equal(t, http.StatusCreated, code)
	var slip map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &slip))
	assert.Equal(t, "70000", slip["grossSalary"])

	code, env = do(t, s.hr, http.MethodGet, "/api/salaryslips/staff/"+member.ID, s.token(t, "User"), nil)
	require.Equal(t, http.StatusOK, code)
	var slips []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &slips))
	assert.Len(t, slips, 1)

	code, _ = do(t, s.hr, http.MethodGet, "/api/staff/not-a-uuid", admin, nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestAuthRouter(t *testing.T) {
	s := newTestServer(t)

	code, _ := do(t, s.auth, http.MethodPost, "/api/auth/register", "", map[string]any{
		"email": "ana@example.com", "password": "password123", "name": "Ana",
	})
	require.Equal(t, http.StatusCreated, code)

	code, env := do(t, s.auth, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email": "ana@example.com", "password": "password123",
	})
	require.Equal(t, http.StatusOK, code)
	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &login))

	code, _ = do(t, s.hr, http.MethodGet, "/api/staff", login.Token, nil)
	assert.Equal(t, http.StatusOK, code)

	code, env = do(t, s.auth, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email": "ana@example.com", "password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "invalid email or password", env.Error.Message)
}
