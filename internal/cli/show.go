package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pacely/pacely/internal/app/duration"
	"github.com/pacely/pacely/internal/daemon"
)

func init() {
	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show ID",
	Short: "Show detailed information about a task",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	task, err := findTask(d.DB, args[0])
	if err != nil {
		return err
	}

	status := "open"
	if task.Done {
		status = "completed"
	}

	fmt.Printf("ID:          %s\n", task.ID)
	fmt.Printf("Title:       %s\n", task.Title)
	if task.Description != "" {
		fmt.Printf("Description: %s\n", task.Description)
	}
	fmt.Printf("Status:      %s\n", status)
	if task.EstimatedMinutes != nil {
		fmt.Printf("Estimate:    %s\n", duration.Format(*task.EstimatedMinutes))
	}
	if task.ActualMinutes != nil {
		fmt.Printf("Actual:      %s\n", duration.Format(*task.ActualMinutes))
	}
	fmt.Printf("Created:     %s\n", task.CreatedAt.Format("2006-01-02 15:04:05"))
	if !task.CompletedAt.IsZero() {
		fmt.Printf("Completed:   %s\n", task.CompletedAt.Format("2006-01-02 15:04:05"))
	}

	return nil
}
