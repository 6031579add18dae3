package diskinfo

import "encoding/json"

// DeviceType classifies the storage media backing a partition.
type DeviceType int

const (
	DeviceUnknown DeviceType = iota
	DeviceSolidState
	DeviceRotational
)

func (t DeviceType) String() string {
	switch t {
	case DeviceSolidState:
		return "SSD"
	case DeviceRotational:
		return "HDD"
	default:
		return "Unknown"
	}
}

// MarshalJSON encodes the device type as its display label.
func (t DeviceType) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

// UnmarshalJSON decodes a display label back into the device type. Labels
// from a newer or foreign producer degrade to DeviceUnknown rather than
// failing the whole report.
func (t *DeviceType) UnmarshalJSON(data []byte) error {
	var label string
	if err := json.Unmarshal(data, &label); err != nil {
		return err
	}

	switch label {
	case "SSD":
		*t = DeviceSolidState
	case "HDD":
		*t = DeviceRotational
	default:
		*t = DeviceUnknown
	}
	return nil
}

// Partition is one OS-visible mounted volume as reported by the mount
// table. Identity is the (device, mountpoint) pair; the value is re-derived
// on every poll and never persisted.
type Partition struct {
	Device     string   `json:"device"`
	Mountpoint string   `json:"mountpoint"`
	Fstype     string   `json:"fstype"`
	Opts       []string `json:"opts,omitempty"`
}

// DriveInfo is the resolved view of one partition: capacity figures plus
// media classification, or an error when the partition could not be
// queried. Error and numeric data are mutually exclusive; a failed entry
// always carries zero numerics.
type DriveInfo struct {
	Device      string     `json:"device"`
	Mountpoint  string     `json:"mountpoint"`
	Fstype      string     `json:"fstype"`
	TotalBytes  uint64     `json:"total_bytes"`
	UsedBytes   uint64     `json:"used_bytes"`
	FreeBytes   uint64     `json:"free_bytes"`
	UsedPercent float64    `json:"used_percent"`
	Type        DeviceType `json:"type"`
	Error       string     `json:"error,omitempty"`
}

// Failed reports whether the partition could not be resolved. When true,
// the numeric fields hold no real data.
func (d DriveInfo) Failed() bool {
	return d.Error != ""
}

// TypeLabel collapses media type and filesystem type into the label the
// display layer shows next to a drive.
func (d DriveInfo) TypeLabel() string {
	switch d.Type {
	case DeviceSolidState:
		return "SSD"
	case DeviceRotational:
		return "HDD"
	}
	if d.Fstype != "" {
		return d.Fstype
	}
	return "Disk"
}

// UsageSummary holds fleet-level statistics over one poll cycle.
// AveragePercent covers only the partitions that resolved successfully.
type UsageSummary struct {
	AveragePercent  float64 `json:"average_percent"`
	TotalPartitions int     `json:"total_partitions"`
	Resolved        int     `json:"resolved"`
}
