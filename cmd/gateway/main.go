package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/basratech/hr-suite-go/internal/config"
	"github.com/basratech/hr-suite-go/internal/gateway"
	"github.com/basratech/hr-suite-go/internal/pkg/logger"
	"github.com/basratech/hr-suite-go/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Error loading config", "error", err)
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		App:     cfg.App.Name,
		Service: "gateway",
		Version: cfg.App.Version,
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
	})
	slog.SetDefault(log)

	router, err := gateway.NewRouter(gateway.Options{
		HRServiceURL:   cfg.Gateway.HRServiceURL,
		AuthServiceURL: cfg.Gateway.AuthServiceURL,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		Logger:         log,
	})
	if err != nil {
		log.Error("Invalid gateway configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg.Server, router, log)
	log.Info("Gateway routing", "hr", cfg.Gateway.HRServiceURL, "auth", cfg.Gateway.AuthServiceURL)
	if err := server.Run(ctx, srv, cfg.Server.ShutdownTimeout, log); err != nil {
		log.Error("Server error", "error", err)
		os.Exit(1)
	}
}
