package cli

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/drivescope/drivescope/internal/report"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the latest report from a running daemon",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	client := NewClient()

	if err := client.Health(); err != nil {
		return fmt.Errorf("daemon not reachable at %s: %w", GetServerURL(), err)
	}

	data, status, err := client.Get("/report")
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return fmt.Errorf("server returned status %d", status)
	}

	if IsJSON() {
		fmt.Println(string(data))
		return nil
	}

	var rep report.Report
	if err := json.Unmarshal(data, &rep); err != nil {
		return fmt.Errorf("failed to decode report: %w", err)
	}
	printReport(&rep)
	return nil
}
