package gateway

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	appHTTP "github.com/basratech/hr-suite-go/internal/handler/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func upstream(name string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Upstream", name)
		w.Header().Set("X-Path", r.URL.RequestURI())
		w.WriteHeader(http.StatusTeapot)
	}))
}

func newTestGateway(t *testing.T, hrURL, authURL string) http.Handler {
	t.Helper()
	router, err := NewRouter(Options{
		HRServiceURL:   hrURL,
		AuthServiceURL: authURL,
		AllowedOrigins: []string{"http://localhost:3000"},
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		Now:            func() time.Time { return time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC) },
	})
	require.NoError(t, err)
	return router
}

func TestGateway_RoutesByPrefix(t *testing.T) {
	hr := upstream("hr")
	defer hr.Close()
	authSrv := upstream("auth")
	defer authSrv.Close()

	gw := newTestGateway(t, hr.URL, authSrv.URL)

	tests := []struct {
		path     string
		upstream string
	}{
		{"/api/auth/login", "auth"},
		{"/api/timetracking/logs/s-1?startDate=2024-03-01&endDate=2024-03-31", "hr"},
		{"/api/holidays", "hr"},
		{"/api/staff/user/abc", "hr"},
		{"/api/salaryslips/staff/abc", "hr"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			gw.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, http.StatusTeapot, w.Code)
			assert.Equal(t, tt.upstream, w.Header().Get("X-Upstream"))
			assert.Equal(t, tt.path, w.Header().Get("X-Path"))
		})
	}
}

func TestGateway_Health(t *testing.T) {
	gw := newTestGateway(t, "http://127.0.0.1:1", "http://127.0.0.1:1")

	w := httptest.NewRecorder()
	gw.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var body healthResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "healthy", body.Status)
	assert.Equal(t, "2024-03-04T09:00:00Z", body.Timestamp)
}

func TestGateway_UpstreamDown(t *testing.T) {
	dead := httptest.NewServer(http.NotFoundHandler())
	deadURL := dead.URL
	dead.Close()

	gw := newTestGateway(t, deadURL, deadURL)

	w := httptest.NewRecorder()
	gw.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/staff", nil))

	assert.Equal(t, http.StatusBadGateway, w.Code)
	var body map[string]any
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, false, body["success"])
}

func TestGateway_UnknownRoute(t *testing.T) {
	gw := newTestGateway(t, "http://127.0.0.1:1", "http://127.0.0.1:1")

	w := httptest.NewRecorder()
	gw.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/unknown", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestNewRouter_InvalidURL(t *testing.T) {
	_, err := NewRouter(Options{HRServiceURL: "not a url", AuthServiceURL: "http://localhost:8081"})
	assert.Error(t, err)
}

func TestGateway_SingleCORSHeaderSet(t *testing.T) {
	origins := []string{"http://localhost:3000"}
	base := appHTTP.NewBaseRouter(slog.New(slog.NewTextHandler(io.Discard, nil)), origins)
	base.Get("/api/auth/me", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	authSrv := httptest.NewServer(base)
	defer authSrv.Close()
	hr := upstream("hr")
	defer hr.Close()

	gw := newTestGateway(t, hr.URL, authSrv.URL)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	gw.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"http://localhost:3000"}, w.Header().Values("Access-Control-Allow-Origin"))
	assert.Equal(t, []string{"true"}, w.Header().Values("Access-Control-Allow-Credentials"))
}
