/**
 * @description
 * This is the main entry point for the portal frontend service.
 * It initializes and wires together all the components of the application:
 * configuration, the shared outbound interceptor, the per-resource backend
 * clients, the portal session manager with its cron jobs, and the HTTP
 * router. Finally, it starts the HTTP server to listen for incoming
 * requests.
 *
 * @dependencies
 * - github.com/joho/godotenv: For loading .env files during local development.
 * - github.com/robfig/cron/v3: For the session refresh and sweep schedules.
 */
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"github.com/bobijackrussel/e-insurance-microservice/internal/config"
	"github.com/bobijackrussel/e-insurance-microservice/internal/web"
	"github.com/bobijackrussel/e-insurance-microservice/pkg/apiclient"
	"github.com/bobijackrussel/e-insurance-microservice/pkg/claimclient"
	"github.com/bobijackrussel/e-insurance-microservice/pkg/gatewayclient"
	"github.com/bobijackrussel/e-insurance-microservice/pkg/paymentclient"
	"github.com/bobijackrussel/e-insurance-microservice/pkg/policyclient"
	"github.com/bobijackrussel/e-insurance-microservice/pkg/userclient"
)

func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// Load .env file for local development; in production the environment
	// provides everything.
	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file found, relying on environment variables")
	}

	// Load application configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Set up channel to listen for OS signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	// One interceptor shared by every backend client: it attaches the JSON
	// headers and the session credential from the request context, and flags
	// the request for a login redirect on a 401.
	transport := &apiclient.Transport{OnUnauthorized: web.RequestLoginRedirect}

	clients := web.Clients{
		Users:    userclient.New(apiclient.New(cfg.UserAPIBaseURL, transport)),
		Policies: policyclient.New(apiclient.New(cfg.PolicyAPIBaseURL, transport)),
		Claims:   claimclient.New(apiclient.New(cfg.ClaimsAPIBaseURL, transport)),
		Payments: paymentclient.New(apiclient.New(cfg.PaymentAPIBaseURL, transport)),
		Gateway:  gatewayclient.New(apiclient.New(cfg.GatewayURL, transport)),
	}

	ttl := time.Duration(cfg.PortalSessionTTLMinutes) * time.Minute
	manager := web.NewManager(clients, cfg.SessionCookieName, ttl, logger)

	// Background maintenance: sweep idle sessions and refresh cached
	// identities on the configured schedules.
	scheduler := cron.New()
	if _, err := scheduler.AddFunc(cfg.SessionSweepSchedule, manager.Sweep); err != nil {
		logger.Error("invalid sweep schedule", "error", err)
		os.Exit(1)
	}
	if _, err := scheduler.AddFunc(cfg.SessionRefreshSchedule, manager.RefreshAll); err != nil {
		logger.Error("invalid refresh schedule", "error", err)
		os.Exit(1)
	}
	scheduler.Start()
	logger.Info("session maintenance scheduler started")

	handler := web.NewHandler(manager, cfg.GatewayURL)
	router := web.NewRouter(handler, manager)

	// Configure and start the HTTP server
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.ServerPort),
		Handler: router,
	}

	go func() {
		logger.Info("starting server", "port", cfg.ServerPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for an OS signal
	<-sigCh
	logger.Info("shutdown signal received, gracefully shutting down")

	// Stop the scheduler and wait for any running job to finish
	stopCtx := scheduler.Stop()
	<-stopCtx.Done()

	// Create a context with a timeout for shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	// Attempt to gracefully shut down the server
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", "error", err)
	}

	logger.Info("server stopped")
}
