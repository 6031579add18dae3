package sysinfo

import (
	"context"
	"runtime"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
)

// Unknown is the placeholder for host facts that could not be queried.
const Unknown = "Unknown"

const bytesPerGB = 1024 * 1024 * 1024

// Snapshot is a point-in-time read of host-level facts. It is a plain
// value recomputed on demand, never persisted.
type Snapshot struct {
	OS               string `json:"os"`
	OSVersion        string `json:"os_version"`
	Architecture     string `json:"architecture"`
	Processor        string `json:"processor"`
	MemoryTotalBytes uint64 `json:"memory_total_bytes"`
	UptimeSeconds    uint64 `json:"uptime_seconds"`
}

// MemoryGB returns total physical memory in gigabytes at full precision.
// Display layers round to one decimal.
func (s Snapshot) MemoryGB() float64 {
	return float64(s.MemoryTotalBytes) / bytesPerGB
}

// Provider collects host snapshots. It holds no state besides the clock,
// which is injectable for tests.
type Provider struct {
	now func() time.Time
}

func NewProvider() *Provider {
	return &Provider{now: time.Now}
}

// Collect gathers OS identity, processor description, total memory and
// uptime. Every sub-query is best-effort: a failing probe leaves a
// placeholder (Unknown or 0) in its field and the snapshot is always
// returned whole.
func (p *Provider) Collect(ctx context.Context) Snapshot {
	snap := Snapshot{
		OS:           runtime.GOOS,
		OSVersion:    Unknown,
		Architecture: runtime.GOARCH,
		Processor:    Unknown,
	}

	if hi, err := host.InfoWithContext(ctx); err == nil {
		if hi.Platform != "" {
			snap.OS = hi.Platform
		}
		if hi.PlatformVersion != "" {
			snap.OSVersion = hi.PlatformVersion
		}
		if hi.KernelArch != "" {
			snap.Architecture = hi.KernelArch
		}
		snap.UptimeSeconds = uptimeSince(hi.BootTime, p.now())
	}

	if infos, err := cpu.InfoWithContext(ctx); err == nil && len(infos) > 0 {
		if model := strings.TrimSpace(infos[0].ModelName); model != "" {
			snap.Processor = model
		}
	}

	if vm, err := mem.VirtualMemoryWithContext(ctx); err == nil {
		snap.MemoryTotalBytes = vm.Total
	}

	return snap
}

// uptimeSince computes whole seconds since boot, clamped at 0: the wall
// clock and the boot-time source can disagree after an NTP step, and a
// negative uptime must never surface.
func uptimeSince(bootTime uint64, now time.Time) uint64 {
	if bootTime == 0 {
		return 0
	}
	elapsed := now.Unix() - int64(bootTime)
	if elapsed < 0 {
		return 0
	}
	return uint64(elapsed)
}
