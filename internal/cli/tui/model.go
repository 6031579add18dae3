package tui

import (
	"time"

	"github.com/drivescope/drivescope/internal/report"
)

// Config holds TUI configuration
type Config struct {
	ServerURL       string
	RefreshInterval time.Duration
	User            string
	Password        string
}

// Model represents the TUI state
type Model struct {
	config Config

	// Data from API
	report *report.Report

	// UI state
	width       int
	height      int
	loading     bool
	err         error
	lastUpdated time.Time

	// Drive list scroll position
	listOffset int
}

// NewModel creates a new TUI model
func NewModel(cfg Config) Model {
	return Model{
		config:  cfg,
		loading: true,
	}
}
