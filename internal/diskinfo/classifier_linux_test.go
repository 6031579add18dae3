//go:build linux

package diskinfo

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func writeRotational(t *testing.T, blockDir, device, value string) {
	t.Helper()
	dir := filepath.Join(blockDir, device, "queue")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("failed to create fake sysfs dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "rotational"), []byte(value+"\n"), 0o644); err != nil {
		t.Fatalf("failed to write rotational flag: %v", err)
	}
}

func TestSysfsClassifier_Rotational(t *testing.T) {
	blockDir := t.TempDir()
	writeRotational(t, blockDir, "sda", "1")

	c := &sysfsClassifier{blockDir: blockDir}
	got := c.Classify(context.Background(), Partition{Device: "/dev/sda1"})

	if got != DeviceRotational {
		t.Errorf("expected rotational, got %v", got)
	}
}

func TestSysfsClassifier_SolidState(t *testing.T) {
	blockDir := t.TempDir()
	writeRotational(t, blockDir, "sdb", "0")

	c := &sysfsClassifier{blockDir: blockDir}
	got := c.Classify(context.Background(), Partition{Device: "/dev/sdb2"})

	if got != DeviceSolidState {
		t.Errorf("expected solid-state, got %v", got)
	}
}

func TestSysfsClassifier_NVMeShortCircuit(t *testing.T) {
	// No sysfs entry needed: nvme devices are classified by name.
	c := &sysfsClassifier{blockDir: t.TempDir()}
	got := c.Classify(context.Background(), Partition{Device: "/dev/nvme0n1p2"})

	if got != DeviceSolidState {
		t.Errorf("expected solid-state for nvme, got %v", got)
	}
}

func TestSysfsClassifier_MissingSignalIsUnknown(t *testing.T) {
	c := &sysfsClassifier{blockDir: t.TempDir()}

	if got := c.Classify(context.Background(), Partition{Device: "/dev/sdc1"}); got != DeviceUnknown {
		t.Errorf("expected unknown for missing sysfs entry, got %v", got)
	}
	if got := c.Classify(context.Background(), Partition{Device: ""}); got != DeviceUnknown {
		t.Errorf("expected unknown for empty device, got %v", got)
	}
}

func TestSysfsClassifier_GarbageFlagIsUnknown(t *testing.T) {
	blockDir := t.TempDir()
	writeRotational(t, blockDir, "sdd", "maybe")

	c := &sysfsClassifier{blockDir: blockDir}
	if got := c.Classify(context.Background(), Partition{Device: "/dev/sdd1"}); got != DeviceUnknown {
		t.Errorf("expected unknown for unparseable flag, got %v", got)
	}
}

func TestParentBlockDevice(t *testing.T) {
	cases := map[string]string{
		"sda1":      "sda",
		"sda12":     "sda",
		"sda":       "sda",
		"nvme0n1p2": "nvme0n1",
		"nvme0n1":   "nvme0n1",
		"mmcblk0p1": "mmcblk0",
		"mmcblk0":   "mmcblk0",
		"vda1":      "vda",
	}

	for in, want := range cases {
		if got := parentBlockDevice(in); got != want {
			t.Errorf("parentBlockDevice(%q) = %q, want %q", in, got, want)
		}
	}
}
