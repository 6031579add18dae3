package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/drivescope/drivescope/internal/config"
	"github.com/drivescope/drivescope/internal/diskinfo"
	"github.com/drivescope/drivescope/internal/logger"
	"github.com/drivescope/drivescope/internal/report"
	"github.com/drivescope/drivescope/internal/server"
	"github.com/drivescope/drivescope/internal/sysinfo"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the drivescope daemon",
	Long: `Run the drivescope daemon in the foreground. The daemon polls the
mounted partitions and host facts on an interval and serves the latest
report over HTTP.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

// applyAuthFlags enables Basic Auth when both credential flags are set.
// A half-specified pair is an error: silently ignoring it would leave the
// API open when the operator believes it is protected.
func applyAuthFlags(cfg *config.Config, userSet, passwordSet bool) error {
	if userSet != passwordSet {
		return errors.New("--user and --password must be provided together")
	}
	if userSet {
		cfg.Auth.Enabled = true
		cfg.Auth.User = user
		cfg.Auth.Password = password
	}
	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.LoadOrDefault(GetConfigFile())

	// Flags override config when set explicitly.
	if cmd.Flags().Changed("host") {
		cfg.Server.Host = host
	}
	if cmd.Flags().Changed("port") {
		cfg.Server.Port = port
	}
	if err := applyAuthFlags(cfg, cmd.Flags().Changed("user"), cmd.Flags().Changed("password")); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	log.Info("starting drivescope",
		"version", Version,
		"addr", fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		"interval", cfg.PollingInterval(),
	)

	resolver := diskinfo.NewResolver(diskinfo.NewClassifier(), cfg.ResolveTimeout())
	collector := report.NewCollector(
		diskinfo.ListPartitions,
		resolver,
		sysinfo.NewProvider(),
		report.Options{
			Interval:      cfg.PollingInterval(),
			IncludePseudo: cfg.Polling.IncludePseudo,
		},
		log,
	)
	collectorCtx, collectorCancel := context.WithCancel(context.Background())
	defer collectorCancel()
	if err := collector.Start(collectorCtx); err != nil {
		return fmt.Errorf("failed to start collector: %w", err)
	}
	defer collector.Stop()

	srv := server.New(cfg, collector, log, Version)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	case sig := <-sigCh:
		log.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}

	log.Info("stopped")
	return nil
}
