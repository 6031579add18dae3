package diskinfo

// Aggregate reduces per-partition records into fleet statistics. Failed
// entries count toward TotalPartitions but are excluded from the average;
// with zero successful entries the average is 0. Pure function, no I/O.
func Aggregate(infos []DriveInfo) UsageSummary {
	summary := UsageSummary{TotalPartitions: len(infos)}

	var sum float64
	for _, info := range infos {
		if info.Failed() {
			continue
		}
		sum += info.UsedPercent
		summary.Resolved++
	}

	if summary.Resolved > 0 {
		summary.AveragePercent = sum / float64(summary.Resolved)
	}
	return summary
}
