package diskinfo

import (
	"context"
	"fmt"
	"time"

	"github.com/shirou/gopsutil/v4/disk"
)

// DefaultResolveTimeout bounds a single capacity query. A stale network
// mount can block statfs indefinitely; one partition must never stall the
// whole poll cycle.
const DefaultResolveTimeout = 2 * time.Second

// Resolver turns a Partition into a DriveInfo by querying capacity and
// classifying the backing media.
type Resolver struct {
	classifier Classifier
	timeout    time.Duration
}

// NewResolver creates a resolver. A nil classifier falls back to the
// platform default; a non-positive timeout falls back to
// DefaultResolveTimeout.
func NewResolver(classifier Classifier, timeout time.Duration) *Resolver {
	if classifier == nil {
		classifier = NewClassifier()
	}
	if timeout <= 0 {
		timeout = DefaultResolveTimeout
	}
	return &Resolver{classifier: classifier, timeout: timeout}
}

// Resolve queries capacity and media type for one partition. Failures are
// converted into an error-tagged DriveInfo with zero numeric fields; the
// method itself never fails, so one bad mount cannot abort enumeration of
// the rest.
func (r *Resolver) Resolve(ctx context.Context, p Partition) DriveInfo {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	usage, err := queryUsage(ctx, p.Mountpoint)
	if err != nil {
		return DriveInfo{
			Device:     p.Device,
			Mountpoint: p.Mountpoint,
			Fstype:     p.Fstype,
			Error:      err.Error(),
		}
	}

	return DriveInfo{
		Device:      p.Device,
		Mountpoint:  p.Mountpoint,
		Fstype:      p.Fstype,
		TotalBytes:  usage.Total,
		UsedBytes:   usage.Used,
		FreeBytes:   usage.Free,
		UsedPercent: usagePercent(usage),
		Type:        r.classifier.Classify(ctx, p),
	}
}

// queryUsage runs the statfs-style query in its own goroutine so the
// resolver can abandon a hung mount once the timeout fires.
func queryUsage(ctx context.Context, path string) (*disk.UsageStat, error) {
	type result struct {
		usage *disk.UsageStat
		err   error
	}

	ch := make(chan result, 1)
	go func() {
		u, err := disk.UsageWithContext(ctx, path)
		ch <- result{usage: u, err: err}
	}()

	select {
	case res := <-ch:
		return res.usage, res.err
	case <-ctx.Done():
		return nil, fmt.Errorf("usage query for %s: %w", path, ctx.Err())
	}
}

// usagePercent prefers the OS-reported figure and falls back to computing
// the ratio. The result is always within [0, 100]; an empty device reads
// as exactly 0.
func usagePercent(u *disk.UsageStat) float64 {
	if u.Total == 0 {
		return 0
	}
	pct := u.UsedPercent
	if pct == 0 && u.Used > 0 {
		pct = float64(u.Used) / float64(u.Total) * 100
	}
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
