package http

import (
	"log/slog"
	"net/http"

	"github.com/basratech/hr-suite-go/internal/handler/http/middleware"
	"github.com/basratech/hr-suite-go/internal/handler/http/response"
	"github.com/basratech/hr-suite-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

// HRHandlers groups the handlers served by the HR service.
type HRHandlers struct {
	TimeTracking TimeTrackingHandler
	Holiday      HolidayHandler
	Staff        StaffHandler
	SalarySlip   SalarySlipHandler
}

// NewBaseRouter applies the middleware stack shared by every service.
func NewBaseRouter(logger *slog.Logger, allowedOrigins []string) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/ping"))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.NotFound(w, "Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		response.Error(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
	})

	return r
}

// NewRouter builds the HR service router. Every route requires an access token.
func NewRouter(logger *slog.Logger, allowedOrigins []string, JWTService jwt.Service, h HRHandlers) *chi.Mux {
	r := NewBaseRouter(logger, allowedOrigins)

	r.Route("/api", func(r chi.Router) {
		r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
		r.Use(middleware.AuthRequired)

		r.Route("/timetracking", func(r chi.Router) {
			r.Post("/login", h.TimeTracking.Login)
			r.Post("/logout", h.TimeTracking.Logout)
			r.Post("/break-in", h.TimeTracking.BreakIn)
			r.Post("/break-out", h.TimeTracking.BreakOut)
			r.Get("/today/{staffId}", h.TimeTracking.GetToday)
			r.Get("/logs/{staffId}", h.TimeTracking.GetLogs)
			r.Get("/summary/{staffId}/{year}/{month}", h.TimeTracking.GetMonthlySummary)
		})

		r.Route("/holidays", func(r chi.Router) {
			r.Get("/", h.Holiday.List)
			r.Get("/{year}/{month}", h.Holiday.ListByMonth)

			// Admin only
			r.With(middleware.AdminOnly).Post("/", h.Holiday.Create)
		})

		r.Route("/staff", func(r chi.Router) {
			r.Get("/", h.Staff.List)
			r.Get("/user/{userId}", h.Staff.GetByUserID)
			r.Get("/{staffId}", h.Staff.Get)

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Post("/onboard", h.Staff.Onboard)
				r.Put("/{staffId}", h.Staff.Update)
			})
		})

		r.Route("/salaryslips", func(r chi.Router) {
			r.Get("/staff/{staffId}", h.SalarySlip.ListByStaff)
			r.Get("/{id}", h.SalarySlip.Get)

			// Admin only
			r.With(middleware.AdminOnly).Post("/", h.SalarySlip.Generate)
		})
	})

	return r
}

// NewAuthRouter builds the user service router.
func NewAuthRouter(logger *slog.Logger, allowedOrigins []string, authHandler AuthHandler) *chi.Mux {
	r := NewBaseRouter(logger, allowedOrigins)

	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
	})

	return r
}
