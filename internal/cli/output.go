package cli

import (
	"encoding/json"
	"fmt"

	"github.com/drivescope/drivescope/internal/format"
	"github.com/drivescope/drivescope/internal/report"
)

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

// printReport renders a report as human-readable text.
func printReport(rep *report.Report) {
	fmt.Println("Drives")
	if len(rep.Drives) == 0 {
		fmt.Println("  no partitions found")
	}
	for _, d := range rep.Drives {
		if d.Failed() {
			fmt.Printf("  %-20s %-6s unavailable: %s\n", d.Mountpoint, d.TypeLabel(), d.Error)
			continue
		}
		fmt.Printf("  %-20s %-6s %s / %s (%.1f%% used)\n",
			d.Mountpoint,
			d.TypeLabel(),
			format.Bytes(d.UsedBytes),
			format.Bytes(d.TotalBytes),
			d.UsedPercent,
		)
	}

	fmt.Println()
	fmt.Printf("Summary: %d of %d partitions resolved, average usage %.1f%%\n",
		rep.Summary.Resolved,
		rep.Summary.TotalPartitions,
		rep.Summary.AveragePercent,
	)

	sys := rep.System
	fmt.Println()
	fmt.Println("System")
	fmt.Printf("  OS:        %s %s\n", sys.OS, sys.OSVersion)
	fmt.Printf("  Arch:      %s\n", sys.Architecture)
	fmt.Printf("  Processor: %s\n", sys.Processor)
	fmt.Printf("  Memory:    %.1f GB\n", sys.MemoryGB())
	fmt.Printf("  Uptime:    %s\n", format.Uptime(sys.UptimeSeconds))
}
