package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/pacely/pacely/internal/app/analytics"
	"github.com/pacely/pacely/internal/app/duration"
	"github.com/pacely/pacely/internal/app/spark"
	"github.com/pacely/pacely/internal/daemon"
	"github.com/pacely/pacely/internal/domain"
	"github.com/pacely/pacely/internal/infra/sqlite"
)

func init() {
	statsCmd.Flags().IntVar(&statsYear, "year", 0, "Year to summarize (default: current)")
	statsCmd.Flags().IntVar(&statsMonth, "month", 0, "Month to summarize, 1-12 (default: current)")
	statsCmd.Flags().BoolVar(&statsAccuracy, "accuracy", false, "Show per-task estimation accuracy")
	rootCmd.AddCommand(statsCmd)
}

var (
	statsYear     int
	statsMonth    int
	statsAccuracy bool
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show monthly productivity statistics",
	Long: `Show a monthly summary: completion rate, month-over-month trend,
a per-day completion sparkline, insights, and estimation accuracy.`,
	RunE: runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	if statsMonth < 0 || statsMonth > 12 {
		return fmt.Errorf("month must be 1-12, got %d", statsMonth)
	}

	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	now := time.Now().In(d.Timezone)
	year, month := now.Year(), now.Month()
	if statsYear > 0 {
		year = statsYear
	}
	if statsMonth > 0 {
		month = time.Month(statsMonth)
	}

	tasks, err := d.DB.ListTasks(sqlite.TaskFilter{})
	if err != nil {
		return err
	}

	summary := analytics.Summarize(tasks, year, month, d.Timezone)

	fmt.Printf("%s — %d of %d tasks completed (%.0f%%)\n",
		summary.Month, summary.CompletedTasks, summary.TotalTasks, summary.CompletionRate)
	fmt.Printf("Trend:  %s %+.0f points vs last month (%.0f%%)\n",
		trendArrow(summary.MonthlyTrend.Improvement),
		summary.MonthlyTrend.Improvement,
		summary.MonthlyTrend.PreviousMonth)
	fmt.Printf("Daily:  %s\n", spark.Render(analytics.DailyRates(summary.DailyCompletions), spark.Options{}))

	if len(summary.Insights) > 0 {
		fmt.Println()
		for _, insight := range summary.Insights {
			fmt.Printf("  • %s\n", insight)
		}
	}
	if summary.CelebrationMessage != "" {
		fmt.Printf("\n%s\n", summary.CelebrationMessage)
	}

	printAccuracy(tasks, year, month, d.Timezone)
	return nil
}

// printAccuracy renders the estimation-accuracy block for the month.
func printAccuracy(tasks []domain.Task, year int, month time.Month, loc *time.Location) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 1, 0)

	var completed []domain.Task
	for _, t := range tasks {
		if t.CompletedIn(start, end) {
			completed = append(completed, t)
		}
	}

	result := analytics.AnalyzeAccuracy(completed)
	fmt.Println()
	if result.OverallAccuracy == nil {
		fmt.Println("Estimation accuracy: no data (complete tasks with --actual to track it)")
		return
	}

	fmt.Printf("Estimation accuracy: %.0f%% across %d tasks\n",
		*result.OverallAccuracy, result.TasksAnalyzed)

	if !statsAccuracy {
		return
	}
	scores := make([]*float64, len(result.PerTask))
	for i, pt := range result.PerTask {
		fmt.Printf("  %s  est %s, took %s (%.2fx)\n",
			shortID(pt.TaskID),
			duration.Format(pt.EstimatedMinutes),
			duration.Format(pt.ActualMinutes),
			pt.Ratio)
		s := analytics.RatioScore(pt.Ratio)
		scores[i] = &s
	}
	fmt.Printf("  %s\n", spark.AccuracyLine(scores))
}

func trendArrow(improvement float64) string {
	switch {
	case improvement > 0:
		return "↑"
	case improvement < 0:
		return "↓"
	default:
		return "→"
	}
}
