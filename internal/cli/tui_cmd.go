package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/drivescope/drivescope/internal/cli/tui"
)

var (
	refreshInterval time.Duration
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive TUI dashboard",
	Long: `Launch an interactive terminal dashboard showing the drives and
host facts reported by a running drivescope daemon.

Examples:
  drivescope tui                    # Basic launch with default settings
  drivescope tui --refresh 500ms    # Faster refresh rate
  drivescope tui --host 10.0.0.1    # Connect to remote daemon`,
	RunE: runTUI,
}

func init() {
	tuiCmd.Flags().DurationVar(&refreshInterval, "refresh", time.Second, "dashboard refresh interval")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	config := tui.Config{
		ServerURL:       GetServerURL(),
		RefreshInterval: refreshInterval,
		User:            user,
		Password:        password,
	}

	return tui.Run(config)
}
