// Package main provides the entry point for the Copascore prediction server.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Ajinkyaa2004/Copascore/internal/app"
	"github.com/Ajinkyaa2004/Copascore/internal/config"
	"github.com/Ajinkyaa2004/Copascore/internal/datasource"
	"github.com/Ajinkyaa2004/Copascore/internal/logger"
	"github.com/Ajinkyaa2004/Copascore/internal/scheduler"
	"github.com/Ajinkyaa2004/Copascore/internal/server"
)

// Build information - set via ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
)

var (
	configFile string
	cfg        *config.Config
	appLog     *logrus.Logger
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "./config/config.yaml", "Path to configuration file")
}

var rootCmd = &cobra.Command{
	Use:   "copascore-server",
	Short: "Serve football match predictions and analytics",
	Long:  `Loads the trained classifier, team vocabulary, and flat data sources, then serves predictions, team statistics, player lookups, and the conversational assistant over HTTP.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		if err := config.Validate(cfg); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
		appLog = logger.NewLogger(cfg.App.LogLevel, cfg.App.Environment)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func serve() error {
	appLog.WithFields(logrus.Fields{
		"version":     Version,
		"commit":      GitCommit,
		"environment": cfg.App.Environment,
	}).Info("Copascore prediction server starting")

	application, err := app.New(cfg, appLog)
	if err != nil {
		return fmt.Errorf("failed to load artifacts: %w", err)
	}

	// Optional live data refresh
	var refresher *scheduler.Scheduler
	if cfg.Provider.Enabled {
		client := datasource.NewProviderClient(cfg.Provider, appLog)
		refresher = scheduler.NewScheduler(client, application.LiveForm, appLog)
		if err := refresher.ScheduleTeamRefresh(cfg.Provider.RefreshSchedule, cfg.Provider.TeamIDs); err != nil {
			return fmt.Errorf("failed to schedule provider refresh: %w", err)
		}
		refresher.Start()
		defer refresher.Stop()
	}

	srv := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      server.New(application, appLog).Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		appLog.WithField("address", cfg.Server.Address).Info("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case sig := <-stop:
		appLog.WithField("signal", sig.String()).Info("Shutting down")
	}

	timeout := time.Duration(cfg.Server.ShutdownTimeout) * time.Second
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	appLog.Info("Server stopped")
	return nil
}
