package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/drivescope/drivescope/internal/config"
	"github.com/drivescope/drivescope/internal/diskinfo"
	"github.com/drivescope/drivescope/internal/logger"
	"github.com/drivescope/drivescope/internal/report"
	"github.com/drivescope/drivescope/internal/sysinfo"
)

var snapshotPseudo bool

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Collect a one-shot report from the local machine",
	Long: `Collect a single report directly from the local machine, without a
running daemon: mounted partitions with capacity and media type, usage
summary and host facts.`,
	RunE: runSnapshot,
}

func init() {
	snapshotCmd.Flags().BoolVar(&snapshotPseudo, "include-pseudo", false, "include pseudo filesystems (tmpfs, proc, ...)")
	rootCmd.AddCommand(snapshotCmd)
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	cfg := config.LoadOrDefault(GetConfigFile())

	level := "error"
	if IsVerbose() {
		level = "debug"
	}
	log := logger.New(level, "text")

	includePseudo := cfg.Polling.IncludePseudo
	if cmd.Flags().Changed("include-pseudo") {
		includePseudo = snapshotPseudo
	}

	resolver := diskinfo.NewResolver(diskinfo.NewClassifier(), cfg.ResolveTimeout())
	collector := report.NewCollector(
		diskinfo.ListPartitions,
		resolver,
		sysinfo.NewProvider(),
		report.Options{IncludePseudo: includePseudo},
		log,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	rep := collector.CollectOnce(ctx)

	if IsJSON() {
		return printJSON(rep)
	}
	printReport(rep)
	return nil
}
