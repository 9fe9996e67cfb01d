package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/basratech/hr-suite-go/internal/config"
	"github.com/basratech/hr-suite-go/internal/domain/holiday"
	"github.com/basratech/hr-suite-go/internal/domain/salaryslip"
	"github.com/basratech/hr-suite-go/internal/domain/staff"
	"github.com/basratech/hr-suite-go/internal/domain/timelog"
	appHTTP "github.com/basratech/hr-suite-go/internal/handler/http"
	"github.com/basratech/hr-suite-go/internal/pkg/database"
	"github.com/basratech/hr-suite-go/internal/pkg/events"
	"github.com/basratech/hr-suite-go/internal/pkg/jwt"
	"github.com/basratech/hr-suite-go/internal/pkg/logger"
	"github.com/basratech/hr-suite-go/internal/repository/memory"
	"github.com/basratech/hr-suite-go/internal/repository/postgresql"
	"github.com/basratech/hr-suite-go/internal/server"
	holidayService "github.com/basratech/hr-suite-go/internal/service/holiday"
	salarySlipService "github.com/basratech/hr-suite-go/internal/service/salaryslip"
	staffService "github.com/basratech/hr-suite-go/internal/service/staff"
	timeLogService "github.com/basratech/hr-suite-go/internal/service/timelog"
)

type repositories struct {
	timeLogs    timelog.TimeLogRepository
	holidays    holiday.HolidayRepository
	staff       staff.StaffRepository
	salarySlips salaryslip.SalarySlipRepository
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Error loading config", "error", err)
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		App:     cfg.App.Name,
		Service: "hr-api",
		Version: cfg.App.Version,
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
	})
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var repos repositories
	switch cfg.Storage.Driver {
	case config.StorageDriverPostgres:
		dsn := cfg.DatabaseURL()
		if cfg.Database.AutoMigrate {
			if err := database.RunMigrations(dsn); err != nil {
				log.Error("Failed to run migrations", "error", err)
				os.Exit(1)
			}
		}
		db, err := database.NewPostgreSQLDB(ctx, dsn, database.PoolOptions{
			MaxConns: cfg.Database.MaxConns,
			MinConns: cfg.Database.MinConns,
		})
		if err != nil {
			log.Error("Error connecting to database", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		repos = repositories{
			timeLogs:    postgresql.NewTimeLogRepository(db),
			holidays:    postgresql.NewHolidayRepository(db),
			staff:       postgresql.NewStaffRepository(db),
			salarySlips: postgresql.NewSalarySlipRepository(db),
		}
	case config.StorageDriverMemory:
		log.Warn("Using in-memory storage, data is lost on restart")
		staffRepo := memory.NewStaffRepository()
		repos = repositories{
			timeLogs:    memory.NewTimeLogRepository(),
			holidays:    memory.NewHolidayRepository(),
			staff:       staffRepo,
			salarySlips: memory.NewSalarySlipRepository(staffRepo),
		}
	}

	var publisher events.Publisher = events.NoopPublisher{}
	if cfg.AMQP.URL != "" {
		amqpPublisher, err := events.NewAMQPPublisher(cfg.AMQP.URL, cfg.AMQP.Exchange)
		if err != nil {
			log.Error("Failed to connect to message broker", "error", err)
			os.Exit(1)
		}
		publisher = amqpPublisher
	}
	defer publisher.Close()

	JWTService, err := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	if err != nil {
		log.Error("Invalid JWT configuration", "error", err)
		os.Exit(1)
	}

	timeLogSvc := timeLogService.NewTimeLogService(repos.timeLogs, repos.holidays, publisher)
	holidaySvc := holidayService.NewHolidayService(repos.holidays)
	staffSvc := staffService.NewStaffService(repos.staff, publisher)
	salarySlipSvc := salarySlipService.NewSalarySlipService(repos.salarySlips, repos.staff, timeLogSvc, publisher)

	router := appHTTP.NewRouter(log, cfg.CORS.AllowedOrigins, JWTService, appHTTP.HRHandlers{
		TimeTracking: appHTTP.NewTimeTrackingHandler(timeLogSvc),
		Holiday:      appHTTP.NewHolidayHandler(holidaySvc),
		Staff:        appHTTP.NewStaffHandler(staffSvc),
		SalarySlip:   appHTTP.NewSalarySlipHandler(salarySlipSvc),
	})

	srv := server.New(cfg.Server, router, log)
	if err := server.Run(ctx, srv, cfg.Server.ShutdownTimeout, log); err != nil {
		log.Error("Server error", "error", err)
		os.Exit(1)
	}
}
