package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"when-to-leave/internal/api"
	"when-to-leave/internal/config"
	"when-to-leave/internal/modules/departure"
	"when-to-leave/internal/modules/flights"
	"when-to-leave/internal/modules/maps"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// 1. --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	if cfg.AviationStackAPIKey == "" && cfg.FlightAwareAPIKey == "" {
		logger.Warn("no flight API key configured, /when-to-leave will answer 500")
	}

	e := echo.New()
	e.HideBanner = true

	// 2. --- Middleware ---
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
				"request_id", v.RequestID,
			}
			if v.Error != nil {
				logger.ErrorContext(c.Request().Context(), "request", append(attrs, "error", v.Error)...)
				return nil
			}
			logger.InfoContext(c.Request().Context(), "request", attrs...)
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{cfg.ClientOrigin},
		AllowMethods: []string{http.MethodGet, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	// 3. --- Dependency Injection (Wiring everything up) ---
	timeout := cfg.ProviderTimeout()

	// --- Flights Module ---
	resolver := flights.NewResolver(
		flights.NewFlightAwareProvider(cfg.FlightAwareBaseURL, cfg.FlightAwareAPIKey, timeout, logger),
		flights.NewAviationStackProvider(cfg.AviationStackBaseURL, cfg.AviationStackAPIKey, timeout, logger),
		logger,
	)

	// --- Maps Module ---
	driveTime := maps.NewDriveTimeService(cfg.GoogleMapsBaseURL, cfg.GoogleMapsAPIKey, timeout, logger)

	// --- Departure Module ---
	departureService := departure.NewService(resolver, driveTime, logger)
	departureHandler := departure.NewHandler(departureService, logger)

	// 4. --- Initialize Router ---
	api.SetupRoutes(e, departureHandler, cfg.FrontendDist)

	// 5. --- Start Server with graceful shutdown logic ---
	go func() {
		logger.Info("http server listening", "port", cfg.ServerPort)
		if err := e.Start(":" + cfg.ServerPort); err != nil && err != http.ErrServerClosed {
			logger.Error("shutting down the server, an error occurred", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}
	logger.Info("server exiting")
}
