package domain

// ─── Monthly Summary ────────────────────────────────────────────────────────

// MonthlySummary aggregates one calendar month of task activity.
// Constructed fresh from a task snapshot on every request; never persisted.
type MonthlySummary struct {
	Month              string            `json:"month"` // "YYYY-MM"
	TotalTasks         int               `json:"total_tasks"`
	CompletedTasks     int               `json:"completed_tasks"`
	CompletionRate     float64           `json:"completion_rate"` // 0–100
	DailyCompletions   []DailyCompletion `json:"daily_completions"`
	Insights           []string          `json:"insights"`
	CelebrationMessage string            `json:"celebration_message,omitempty"`
	MonthlyTrend       MonthlyTrend      `json:"monthly_trend"`
}

// DailyCompletion is one calendar day's completion count. Summaries carry
// an entry for every day of the month, zero-filled — callers never see gaps.
type DailyCompletion struct {
	Date      string `json:"date"` // "YYYY-MM-DD"
	Completed int    `json:"completed"`
}

// MonthlyTrend compares a month's completion rate against the prior month.
type MonthlyTrend struct {
	PreviousMonth float64 `json:"previous_month"` // prior month's rate, 0–100
	Improvement   float64 `json:"improvement"`    // current − previous, signed
}

// ─── Estimation Accuracy ────────────────────────────────────────────────────

// AccuracyResult scores how well estimates matched actual durations.
// OverallAccuracy is nil when no task qualified — "no data" is a distinct
// state from a zero or perfect score.
type AccuracyResult struct {
	TasksAnalyzed   int            `json:"tasks_analyzed"`
	OverallAccuracy *float64       `json:"overall_accuracy"` // 0–100, nil if no data
	PerTask         []TaskAccuracy `json:"per_task,omitempty"`
}

// TaskAccuracy is the per-task ratio behind an accuracy score.
type TaskAccuracy struct {
	TaskID           string  `json:"task_id"`
	EstimatedMinutes int     `json:"estimated_minutes"`
	ActualMinutes    int     `json:"actual_minutes"`
	Ratio            float64 `json:"ratio"` // actual / estimated
}
