package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/pacely/pacely/internal/app/duration"
	"github.com/pacely/pacely/internal/daemon"
)

func init() {
	doneCmd.Flags().StringVarP(&doneActual, "actual", "a", "", `Actual time spent ("1h30m", "45m")`)
	rootCmd.AddCommand(doneCmd)
}

var doneActual string

var doneCmd = &cobra.Command{
	Use:   "done ID",
	Short: "Mark a task as completed",
	Long: `Mark a task as completed, optionally recording how long it took.
Recording actual time lets Pacely score your estimation accuracy.`,
	Args: cobra.ExactArgs(1),
	RunE: runDone,
}

func runDone(cmd *cobra.Command, args []string) error {
	var actual *int
	if doneActual != "" {
		minutes, err := duration.Parse(doneActual)
		if err != nil {
			return err
		}
		actual = &minutes
	}

	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	task, err := findTask(d.DB, args[0])
	if err != nil {
		return err
	}

	if err := d.DB.CompleteTask(task.ID, actual, time.Now()); err != nil {
		return err
	}

	if actual != nil {
		fmt.Printf("Completed %s — took %s\n", task.Title, duration.Format(*actual))
	} else {
		fmt.Printf("Completed %s\n", task.Title)
	}
	return nil
}
