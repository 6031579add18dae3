//go:build linux

package diskinfo

import (
	"context"
	"os"
	"path/filepath"
	"strings"
)

// sysfsClassifier reads the rotational flag the kernel exposes for each
// block device under /sys/block.
type sysfsClassifier struct {
	blockDir string
}

func newPlatformClassifier() Classifier {
	return &sysfsClassifier{blockDir: "/sys/block"}
}

func (c *sysfsClassifier) Classify(ctx context.Context, p Partition) DeviceType {
	name := parentBlockDevice(filepath.Base(p.Device))
	if name == "" || name == "." {
		return DeviceUnknown
	}

	// NVMe is solid-state by construction.
	if strings.HasPrefix(name, "nvme") {
		return DeviceSolidState
	}

	data, err := os.ReadFile(filepath.Join(c.blockDir, name, "queue", "rotational"))
	if err != nil {
		// Mapped devices, loop mounts etc. have no queue entry.
		return DeviceUnknown
	}

	switch strings.TrimSpace(string(data)) {
	case "0":
		return DeviceSolidState
	case "1":
		return DeviceRotational
	}
	return DeviceUnknown
}

// parentBlockDevice strips the partition suffix from a device name:
// sda1 -> sda, nvme0n1p2 -> nvme0n1, mmcblk0p1 -> mmcblk0.
func parentBlockDevice(name string) string {
	trimmed := strings.TrimRight(name, "0123456789")
	if trimmed == name {
		return name
	}
	// nvme0n1p2 and mmcblk0p1 keep the digit before the "p" separator.
	if strings.HasSuffix(trimmed, "p") {
		base := strings.TrimSuffix(trimmed, "p")
		if base != "" && base[len(base)-1] >= '0' && base[len(base)-1] <= '9' {
			return base
		}
	}
	// nvme0n1 and mmcblk0 are whole disks despite the numeric tail.
	if strings.HasPrefix(name, "nvme") || strings.HasPrefix(name, "mmcblk") {
		return name
	}
	return trimmed
}
