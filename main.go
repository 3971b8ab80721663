package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/testmaster-app/testmaster/config"
	"github.com/testmaster-app/testmaster/handlers"
	"github.com/testmaster-app/testmaster/logging"
	"github.com/testmaster-app/testmaster/monitoring"
	"github.com/testmaster-app/testmaster/registry"
	"github.com/testmaster-app/testmaster/utils"
)

// Version is set at build time with -ldflags "-X main.Version=..."
var Version = "dev"

const shutdownTimeout = 10 * time.Second

func main() {
	// Load configuration (.env, environment, optional JSON file)
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logging
	if err := logging.InitLogging(&logging.LogConfig{
		LogDir:     cfg.Logging.Directory,
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAgeDays: cfg.Logging.MaxAgeDays,
		LogLevel:   logging.ParseLevel(cfg.Server.LogLevel),
		Console:    cfg.Server.DevMode,
	}); err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}
	defer logging.Close()

	logging.InfoLogger.Printf("Starting TestMaster %s", Version)

	// Visitor IDs keep client IPs out of page event logs
	visitors, err := logging.NewVisitorIDService(logging.VisitorIDConfig{
		RetentionDays:   2,
		CleanupInterval: time.Hour,
	})
	if err != nil {
		logging.ErrorLogger.Fatalf("Failed to initialize visitor IDs: %v", err)
	}
	defer visitors.Stop()

	// Metrics
	promRegistry := prometheus.NewRegistry()
	promRegistry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics, err := monitoring.NewMetrics(promRegistry)
	if err != nil {
		logging.ErrorLogger.Fatalf("Failed to initialize metrics: %v", err)
	}

	health := monitoring.NewHealthMonitor(cfg, Version)
	if err := metrics.RegisterHealth(health); err != nil {
		logging.ErrorLogger.Fatalf("Failed to register health metrics: %v", err)
	}

	if cfg.Server.DevMode && utils.IsProductionEnvironment() {
		logging.WarningLogger.Printf("DEV_MODE ignored in production environment")
		cfg.Server.DevMode = false
	}

	// The design-time registry is only kept in dev mode
	var devRegistry *registry.Registry
	if cfg.Server.DevMode {
		devRegistry = registry.New()
		logging.WarningLogger.Printf("Dev mode enabled: registry exposed at /__dev/registry")
	}

	h := handlers.New(handlers.Deps{
		Config:   cfg,
		Metrics:  metrics,
		Events:   logging.NewPageEventLogger(visitors),
		Registry: devRegistry,
	})

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = handlers.ErrorHandler

	// Middleware
	e.Use(middleware.Recover())
	e.Use(handlers.RequestID())
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: `{"time":"${time_rfc3339}","id":"${id}","method":"${method}","uri":"${uri}","status":${status},"latency":"${latency_human}"}` + "\n",
		Output: logging.InfoLogger.Writer(),
	}))
	e.Use(handlers.SecurityHeaders())
	e.Use(h.RateLimiter())

	h.RegisterRoutes(e, health)

	// Start server
	addr := net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)
	go func() {
		logging.InfoLogger.Printf("Listening on %s (base URL %s)", addr, cfg.Server.BaseURL)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.ErrorLogger.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logging.InfoLogger.Printf("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logging.ErrorLogger.Printf("Graceful shutdown failed: %v", err)
	}
}
