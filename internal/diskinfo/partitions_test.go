package diskinfo

import (
	"context"
	"testing"
)

func partitionKeys(parts []Partition) map[string]bool {
	keys := make(map[string]bool, len(parts))
	for _, p := range parts {
		keys[p.Device+"\x00"+p.Mountpoint] = true
	}
	return keys
}

func TestListPartitions_PhysicalSubsetOfAll(t *testing.T) {
	ctx := context.Background()

	physical := ListPartitions(ctx, false)
	all := ListPartitions(ctx, true)

	allKeys := partitionKeys(all)
	for _, p := range physical {
		if !allKeys[p.Device+"\x00"+p.Mountpoint] {
			t.Errorf("partition %s at %s missing from the unfiltered listing", p.Device, p.Mountpoint)
		}
	}
}

func TestListPartitions_NoPseudoWhenFiltered(t *testing.T) {
	for _, p := range ListPartitions(context.Background(), false) {
		if isPseudoFstype(p.Fstype) {
			t.Errorf("pseudo filesystem %s (%s) leaked through the filter", p.Mountpoint, p.Fstype)
		}
	}
}

func TestListPartitions_DeterministicOrder(t *testing.T) {
	ctx := context.Background()

	first := ListPartitions(ctx, false)
	second := ListPartitions(ctx, false)

	if len(first) != len(second) {
		t.Fatalf("partition count changed between calls: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Device != second[i].Device || first[i].Mountpoint != second[i].Mountpoint {
			t.Errorf("ordering changed at index %d: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestIsPseudoFstype(t *testing.T) {
	for _, fstype := range []string{"tmpfs", "proc", "sysfs", "overlay", "squashfs"} {
		if !isPseudoFstype(fstype) {
			t.Errorf("expected %s to be pseudo", fstype)
		}
	}
	for _, fstype := range []string{"ext4", "xfs", "btrfs", "ntfs", "apfs", ""} {
		if isPseudoFstype(fstype) {
			t.Errorf("expected %s to be real", fstype)
		}
	}
}
