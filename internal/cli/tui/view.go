package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/drivescope/drivescope/internal/diskinfo"
	"github.com/drivescope/drivescope/internal/format"
)

// View renders the TUI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var sections []string

	// Title bar
	sections = append(sections, m.renderTitleBar())

	// Error display
	if m.err != nil {
		sections = append(sections, errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
	}

	if m.report != nil {
		sections = append(sections, m.renderSummary())

		if len(m.report.Drives) > 0 {
			sections = append(sections, m.renderDrives())
		}

		sections = append(sections, m.renderSystem())
	}

	// Footer
	sections = append(sections, m.renderFooter())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderTitleBar() string {
	title := titleStyle.Render("DRIVESCOPE DASHBOARD")

	refreshInfo := fmt.Sprintf("↻ %s", m.config.RefreshInterval)
	if m.loading {
		refreshInfo = "↻ loading..."
	}

	help := helpStyle.Render("q:quit r:refresh ↑↓:scroll")

	// Calculate spacing
	rightPart := fmt.Sprintf("%s | %s", refreshInfo, help)
	spacing := m.width - lipgloss.Width(title) - lipgloss.Width(rightPart) - 2
	if spacing < 1 {
		spacing = 1
	}

	return fmt.Sprintf("%s%s%s", title, strings.Repeat(" ", spacing), helpStyle.Render(rightPart))
}

func (m Model) renderSummary() string {
	s := m.report.Summary
	line := fmt.Sprintf("  %d of %d partitions resolved │ average usage %.1f%%",
		s.Resolved, s.TotalPartitions, s.AveragePercent)
	return sectionHeaderStyle.Render(line)
}

func (m Model) renderDrives() string {
	var lines []string
	lines = append(lines, sectionHeaderStyle.Render("  Drives"))

	drives := m.report.Drives

	// Calculate visible rows based on list offset
	maxVisible := 6
	start := m.listOffset
	end := start + maxVisible
	if end > len(drives) {
		end = len(drives)
	}
	if start >= len(drives) {
		start = 0
		end = maxVisible
		if end > len(drives) {
			end = len(drives)
		}
	}

	for _, d := range drives[start:end] {
		lines = append(lines, m.renderDrive(d))
	}

	if len(drives) > maxVisible {
		scrollInfo := fmt.Sprintf("  [%d-%d of %d drives]", start+1, end, len(drives))
		lines = append(lines, helpStyle.Render(scrollInfo))
	}

	return strings.Join(lines, "\n")
}

func (m Model) renderDrive(d diskinfo.DriveInfo) string {
	mount := d.Mountpoint
	if len(mount) > 18 {
		mount = mount[:15] + "..."
	}
	mount = fmt.Sprintf("%-18s", mount)
	chip := typeChipStyle.Render(fmt.Sprintf("[%s]", d.TypeLabel()))

	if d.Failed() {
		return fmt.Sprintf("  %s %s  %s",
			labelStyle.Render(mount), chip, errorStyle.Render("unavailable: "+d.Error))
	}

	bar := m.renderProgressBar(mount, d.UsedPercent, 20)
	usage := fmt.Sprintf("%s / %s", format.Bytes(d.UsedBytes), format.Bytes(d.TotalBytes))
	status := getStatusStyle(d.UsedPercent).Render(driveStatus(d.UsedPercent))

	return fmt.Sprintf("  %s %s  %s  %s", bar, chip, valueStyle.Render(usage), status)
}

// driveStatus maps usage to the message shown next to each drive.
func driveStatus(percent float64) string {
	switch {
	case percent > 90:
		return "Critically low space"
	case percent > 70:
		return "Getting full"
	case percent < 20:
		return "Plenty of space"
	default:
		return "Enough space"
	}
}

func (m Model) renderProgressBar(label string, percent float64, width int) string {
	filled := int(percent / 100 * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	color := getProgressColor(percent)
	filledBar := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled))
	emptyBar := progressBarEmptyStyle.Render(strings.Repeat("░", width-filled))

	return fmt.Sprintf("%s [%s%s] %5.1f%%", labelStyle.Render(label), filledBar, emptyBar, percent)
}

func (m Model) renderSystem() string {
	sys := m.report.System

	var lines []string
	lines = append(lines, sectionHeaderStyle.Render("  System"))
	lines = append(lines, fmt.Sprintf("  %s %s",
		labelStyle.Render("OS:       "), valueStyle.Render(fmt.Sprintf("%s %s (%s)", sys.OS, sys.OSVersion, sys.Architecture))))
	lines = append(lines, fmt.Sprintf("  %s %s",
		labelStyle.Render("Processor:"), valueStyle.Render(sys.Processor)))
	lines = append(lines, fmt.Sprintf("  %s %s",
		labelStyle.Render("Memory:   "), valueStyle.Render(fmt.Sprintf("%.1f GB", sys.MemoryGB()))))
	lines = append(lines, fmt.Sprintf("  %s %s",
		labelStyle.Render("Uptime:   "), valueStyle.Render(format.Uptime(sys.UptimeSeconds))))

	return strings.Join(lines, "\n")
}

func (m Model) renderFooter() string {
	if m.report == nil {
		return ""
	}

	updated := m.lastUpdated.Format("15:04:05")
	return helpStyle.Render(fmt.Sprintf("  Updated: %s │ %s", updated, m.config.ServerURL))
}
