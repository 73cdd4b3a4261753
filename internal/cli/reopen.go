package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pacely/pacely/internal/daemon"
)

func init() {
	rootCmd.AddCommand(reopenCmd)
}

var reopenCmd = &cobra.Command{
	Use:   "reopen ID",
	Short: "Reopen a completed task",
	Args:  cobra.ExactArgs(1),
	RunE:  runReopen,
}

func runReopen(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	task, err := findTask(d.DB, args[0])
	if err != nil {
		return err
	}

	if err := d.DB.ReopenTask(task.ID); err != nil {
		return err
	}

	fmt.Printf("Reopened %s\n", task.Title)
	return nil
}
