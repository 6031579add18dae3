// Package report runs the poll cycle: enumerate partitions, resolve each
// one, aggregate, snapshot the host, and keep only the latest result.
package report

import (
	"time"

	"github.com/drivescope/drivescope/internal/diskinfo"
	"github.com/drivescope/drivescope/internal/sysinfo"
)

// Report is the consolidated result of one poll cycle. It is a value
// object owned by whoever requested it; nothing is carried over between
// cycles.
type Report struct {
	Drives    []diskinfo.DriveInfo  `json:"drives"`
	Summary   diskinfo.UsageSummary `json:"summary"`
	System    sysinfo.Snapshot      `json:"system"`
	Timestamp time.Time             `json:"timestamp"`
}

// Clone returns a copy whose drive slice is independent of the original.
func (r *Report) Clone() *Report {
	clone := *r
	clone.Drives = make([]diskinfo.DriveInfo, len(r.Drives))
	copy(clone.Drives, r.Drives)
	return &clone
}
