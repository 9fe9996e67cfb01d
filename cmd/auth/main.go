package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/basratech/hr-suite-go/internal/config"
	"github.com/basratech/hr-suite-go/internal/domain/user"
	appHTTP "github.com/basratech/hr-suite-go/internal/handler/http"
	"github.com/basratech/hr-suite-go/internal/pkg/database"
	"github.com/basratech/hr-suite-go/internal/pkg/jwt"
	"github.com/basratech/hr-suite-go/internal/pkg/logger"
	"github.com/basratech/hr-suite-go/internal/repository/memory"
	"github.com/basratech/hr-suite-go/internal/repository/postgresql"
	"github.com/basratech/hr-suite-go/internal/server"
	serviceAuth "github.com/basratech/hr-suite-go/internal/service/auth"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Error loading config", "error", err)
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		App:     cfg.App.Name,
		Service: "user-service",
		Version: cfg.App.Version,
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
	})
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var userRepo user.UserRepository
	if cfg.UsesPostgres() {
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
		userRepo = postgresql.NewUserRepository(db)
	} else {
		log.Warn("Using in-memory storage, data is lost on restart")
		userRepo = memory.NewUserRepository()
	}

	JWTService, err := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	if err != nil {
		log.Error("Invalid JWT configuration", "error", err)
		os.Exit(1)
	}

	authService := serviceAuth.NewAuthService(userRepo, JWTService)
	router := appHTTP.NewAuthRouter(log, cfg.CORS.AllowedOrigins, appHTTP.NewAuthHandler(authService))

	srv := server.New(cfg.Server, router, log)
	if err := server.Run(ctx, srv, cfg.Server.ShutdownTimeout, log); err != nil {
		log.Error("Server error", "error", err)
		os.Exit(1)
	}
}
