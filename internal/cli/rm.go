package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pacely/pacely/internal/daemon"
)

func init() {
	rootCmd.AddCommand(rmCmd)
}

var rmCmd = &cobra.Command{
	Use:     "rm ID",
	Aliases: []string{"remove", "delete"},
	Short:   "Delete a task",
	Args:    cobra.ExactArgs(1),
	RunE:    runRm,
}

func runRm(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	task, err := findTask(d.DB, args[0])
	if err != nil {
		return err
	}

	if err := d.DB.DeleteTask(task.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted %s\n", task.Title)
	return nil
}
