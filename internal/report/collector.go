package report

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/drivescope/drivescope/internal/diskinfo"
	"github.com/drivescope/drivescope/internal/sysinfo"
)

// PartitionLister enumerates mounted partitions.
type PartitionLister func(ctx context.Context, includePseudo bool) []diskinfo.Partition

// DriveResolver resolves one partition into a DriveInfo.
type DriveResolver interface {
	Resolve(ctx context.Context, p diskinfo.Partition) diskinfo.DriveInfo
}

// SystemProvider collects a host snapshot.
type SystemProvider interface {
	Collect(ctx context.Context) sysinfo.Snapshot
}

// Options configures the poll cycle.
type Options struct {
	Interval      time.Duration
	IncludePseudo bool
}

// Collector runs the poll cycle on an interval and holds the latest
// report. Each cycle queries the OS from scratch; overlapping callers see
// whichever cycle finished last (last-writer-wins).
type Collector struct {
	list     PartitionLister
	resolver DriveResolver
	system   SystemProvider
	opts     Options
	logger   *slog.Logger

	mu     sync.RWMutex
	report *Report

	done     chan struct{}
	stopOnce sync.Once
}

func NewCollector(list PartitionLister, resolver DriveResolver, system SystemProvider, opts Options, logger *slog.Logger) *Collector {
	if opts.Interval <= 0 {
		opts.Interval = 5 * time.Second
	}
	return &Collector{
		list:     list,
		resolver: resolver,
		system:   system,
		opts:     opts,
		logger:   logger,
		done:     make(chan struct{}),
	}
}

// Start performs an initial collection and launches the poll loop.
func (c *Collector) Start(ctx context.Context) error {
	c.collect(ctx)

	go c.runLoop(ctx)

	c.logger.Info("collector started",
		"interval", c.opts.Interval,
		"include_pseudo", c.opts.IncludePseudo,
	)
	return nil
}

// Stop halts the poll loop. Safe to call more than once.
func (c *Collector) Stop() error {
	c.stopOnce.Do(func() {
		close(c.done)
		c.logger.Info("collector stopped")
	})
	return nil
}

// GetReport returns a copy of the latest report, or an empty report if no
// cycle has completed yet.
func (c *Collector) GetReport() *Report {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.report == nil {
		return &Report{Drives: []diskinfo.DriveInfo{}}
	}
	return c.report.Clone()
}

func (c *Collector) GetReportJSON() ([]byte, error) {
	return json.Marshal(c.GetReport())
}

// CollectOnce runs a single full poll cycle without touching the stored
// report. One-shot callers (snapshot command) use it directly.
func (c *Collector) CollectOnce(ctx context.Context) *Report {
	partitions := c.list(ctx, c.opts.IncludePseudo)

	drives := make([]diskinfo.DriveInfo, 0, len(partitions))
	for _, p := range partitions {
		info := c.resolver.Resolve(ctx, p)
		if info.Failed() {
			c.logger.Warn("partition resolution failed",
				"device", p.Device,
				"mountpoint", p.Mountpoint,
				"error", info.Error,
			)
		}
		drives = append(drives, info)
	}

	return &Report{
		Drives:    drives,
		Summary:   diskinfo.Aggregate(drives),
		System:    c.system.Collect(ctx),
		Timestamp: time.Now(),
	}
}

func (c *Collector) runLoop(ctx context.Context) {
	ticker := time.NewTicker(c.opts.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.collect(ctx)
		case <-ctx.Done():
			return
		case <-c.done:
			return
		}
	}
}

func (c *Collector) collect(ctx context.Context) {
	rep := c.CollectOnce(ctx)

	c.mu.Lock()
	c.report = rep
	c.mu.Unlock()
}
