package diskinfo

import (
	"context"

	"github.com/shirou/gopsutil/v4/disk"
)

// pseudoFstypes lists filesystem types with no real backing capacity.
// gopsutil already drops most virtual mounts when asked for physical
// devices only; this list catches the ones that slip through on some
// platforms.
var pseudoFstypes = map[string]struct{}{
	"autofs":      {},
	"binfmt_misc": {},
	"bpf":         {},
	"cgroup":      {},
	"cgroup2":     {},
	"configfs":    {},
	"debugfs":     {},
	"devfs":       {},
	"devpts":      {},
	"devtmpfs":    {},
	"fusectl":     {},
	"hugetlbfs":   {},
	"mqueue":      {},
	"nfsd":        {},
	"overlay":     {},
	"proc":        {},
	"pstore":      {},
	"ramfs":       {},
	"rpc_pipefs":  {},
	"securityfs":  {},
	"squashfs":    {},
	"sysfs":       {},
	"tmpfs":       {},
	"tracefs":     {},
}

// ListPartitions returns the mounted partitions in the order the OS
// reports them. With includePseudo false, virtual mounts (tmpfs, procfs
// and friends) are filtered out. Enumeration failure yields an empty
// result rather than an error: the caller still has to render "no drives".
func ListPartitions(ctx context.Context, includePseudo bool) []Partition {
	stats, err := disk.PartitionsWithContext(ctx, includePseudo)
	if err != nil {
		return nil
	}

	parts := make([]Partition, 0, len(stats))
	for _, st := range stats {
		if !includePseudo && isPseudoFstype(st.Fstype) {
			continue
		}
		parts = append(parts, Partition{
			Device:     st.Device,
			Mountpoint: st.Mountpoint,
			Fstype:     st.Fstype,
			Opts:       st.Opts,
		})
	}
	return parts
}

func isPseudoFstype(fstype string) bool {
	_, ok := pseudoFstypes[fstype]
	return ok
}
