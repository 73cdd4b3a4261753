package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pacely/pacely/internal/app/duration"
	"github.com/pacely/pacely/internal/daemon"
	"github.com/pacely/pacely/internal/infra/sqlite"
)

func init() {
	listCmd.Flags().BoolVar(&listAll, "all", false, "Show all tasks (default)")
	listCmd.Flags().BoolVar(&listDone, "done", false, "Show only completed tasks")
	listCmd.Flags().BoolVar(&listOpen, "open", false, "Show only open tasks")
	rootCmd.AddCommand(listCmd)
}

var (
	listAll  bool
	listDone bool
	listOpen bool
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List tasks",
	RunE:    runList,
}

func runList(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	var filter sqlite.TaskFilter
	switch {
	case listAll:
	case listDone && !listOpen:
		done := true
		filter.Done = &done
	case listOpen && !listDone:
		done := false
		filter.Done = &done
	}

	tasks, err := d.DB.ListTasks(filter)
	if err != nil {
		return err
	}

	if len(tasks) == 0 {
		fmt.Println("No tasks yet. Run 'pacely add \"...\"' to get started.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\t\tTITLE\tESTIMATE\tACTUAL\tCREATED")
	for _, t := range tasks {
		est, act := "-", "-"
		if t.EstimatedMinutes != nil {
			est = duration.Format(*t.EstimatedMinutes)
		}
		if t.ActualMinutes != nil {
			act = duration.Format(*t.ActualMinutes)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			shortID(t.ID),
			checkbox(t.Done),
			t.Title,
			est,
			act,
			t.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
	return w.Flush()
}
