package cli

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/pacely/pacely/internal/app/duration"
	"github.com/pacely/pacely/internal/daemon"
	"github.com/pacely/pacely/internal/domain"
)

func init() {
	addCmd.Flags().StringVarP(&addEstimate, "estimate", "e", "", `Time estimate ("1h30m", "45m", "90")`)
	addCmd.Flags().StringVarP(&addDesc, "desc", "d", "", "Task description")
	rootCmd.AddCommand(addCmd)
}

var (
	addEstimate string
	addDesc     string
)

var addCmd = &cobra.Command{
	Use:   "add TITLE",
	Short: "Add a new task",
	Long: `Add a new task, optionally with a time estimate.

Examples:
  pacely add "Write report" --estimate 2h
  pacely add "Review PR" -e 45m -d "focus on the parser changes"`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	task := domain.Task{
		ID:          uuid.NewString(),
		Title:       args[0],
		Description: addDesc,
		CreatedAt:   time.Now(),
	}

	if addEstimate != "" {
		minutes, err := duration.Parse(addEstimate)
		if err != nil {
			return err
		}
		task.EstimatedMinutes = &minutes
	}

	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	if err := d.DB.InsertTask(task); err != nil {
		return err
	}

	if task.EstimatedMinutes != nil {
		fmt.Printf("Added %s (%s) — est. %s\n", task.Title, shortID(task.ID), duration.Format(*task.EstimatedMinutes))
	} else {
		fmt.Printf("Added %s (%s)\n", task.Title, shortID(task.ID))
	}
	return nil
}
