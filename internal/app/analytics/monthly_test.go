package analytics_test

import (
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/pacely/pacely/internal/app/analytics"
	"github.com/pacely/pacely/internal/domain"
)

func completedOn(id string, completedAt time.Time) domain.Task {
	return domain.Task{
		ID:          id,
		Title:       "task " + id,
		Done:        true,
		CreatedAt:   completedAt.Add(-2 * time.Hour),
		CompletedAt: completedAt,
	}
}

func openTask(id string, createdAt time.Time) domain.Task {
	return domain.Task{
		ID:        id,
		Title:     "task " + id,
		CreatedAt: createdAt,
	}
}

// ─── Empty Month ────────────────────────────────────────────────────────────

func TestSummarize_EmptyMonth(t *testing.T) {
	summary := analytics.Summarize(nil, 2025, time.February, time.UTC)

	if summary.Month != "2025-02" {
		t.Errorf("Month = %q, want 2025-02", summary.Month)
	}
	if summary.CompletionRate != 0 {
		t.Errorf("CompletionRate = %f, want 0 — empty month is a valid state", summary.CompletionRate)
	}
	if len(summary.DailyCompletions) != 28 {
		t.Errorf("DailyCompletions has %d days, want 28", len(summary.DailyCompletions))
	}
}

func TestSummarize_LeapFebruary(t *testing.T) {
	summary := analytics.Summarize(nil, 2024, time.February, time.UTC)
	if len(summary.DailyCompletions) != 29 {
		t.Errorf("DailyCompletions has %d days, want 29", len(summary.DailyCompletions))
	}
}

// ─── Daily Series ───────────────────────────────────────────────────────────

func TestSummarize_DailyCompletionsZeroFilled(t *testing.T) {
	tasks := []domain.Task{
		completedOn("a", time.Date(2025, 7, 5, 10, 0, 0, 0, time.UTC)),
		completedOn("b", time.Date(2025, 7, 5, 15, 0, 0, 0, time.UTC)),
		completedOn("c", time.Date(2025, 7, 20, 9, 0, 0, 0, time.UTC)),
	}

	summary := analytics.Summarize(tasks, 2025, time.July, time.UTC)

	if len(summary.DailyCompletions) != 31 {
		t.Fatalf("DailyCompletions has %d days, want 31", len(summary.DailyCompletions))
	}

	want := map[string]int{"2025-07-05": 2, "2025-07-20": 1}
	for i, d := range summary.DailyCompletions {
		wantDate := time.Date(2025, 7, 1+i, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
		if d.Date != wantDate {
			t.Fatalf("day %d date = %q, want %q (no gaps, ascending)", i, d.Date, wantDate)
		}
		if d.Completed != want[d.Date] {
			t.Errorf("day %s completed = %d, want %d", d.Date, d.Completed, want[d.Date])
		}
	}
}

func TestSummarize_FirstDays(t *testing.T) {
	summary := analytics.Summarize(
		[]domain.Task{completedOn("a", time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC))},
		2025, time.July, time.UTC,
	)

	want := []domain.DailyCompletion{
		{Date: "2025-07-01", Completed: 1},
		{Date: "2025-07-02", Completed: 0},
		{Date: "2025-07-03", Completed: 0},
	}
	if diff := cmp.Diff(want, summary.DailyCompletions[:3]); diff != "" {
		t.Errorf("daily series mismatch (-want +got):\n%s", diff)
	}
}

// ─── Month Boundaries ───────────────────────────────────────────────────────

func TestSummarize_MonthBoundaries(t *testing.T) {
	loc := time.UTC
	tasks := []domain.Task{
		// First instant of July: inside.
		completedOn("first", time.Date(2025, 7, 1, 0, 0, 0, 0, loc)),
		// Last second of July: inside.
		completedOn("last", time.Date(2025, 7, 31, 23, 59, 59, 0, loc)),
		// First instant of August: outside.
		completedOn("next", time.Date(2025, 8, 1, 0, 0, 0, 0, loc)),
	}

	summary := analytics.Summarize(tasks, 2025, time.July, loc)
	if summary.CompletedTasks != 2 {
		t.Errorf("CompletedTasks = %d, want 2 (inclusive start, exclusive next month)", summary.CompletedTasks)
	}
}

func TestSummarize_OpenTasksCountTowardTotal(t *testing.T) {
	tasks := []domain.Task{
		completedOn("done1", time.Date(2025, 7, 3, 12, 0, 0, 0, time.UTC)),
		openTask("open1", time.Date(2025, 7, 10, 12, 0, 0, 0, time.UTC)),
		openTask("open2", time.Date(2025, 7, 11, 12, 0, 0, 0, time.UTC)),
		openTask("older", time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)), // other month
	}

	summary := analytics.Summarize(tasks, 2025, time.July, time.UTC)
	if summary.TotalTasks != 3 {
		t.Errorf("TotalTasks = %d, want 3", summary.TotalTasks)
	}
	if summary.CompletedTasks != 1 {
		t.Errorf("CompletedTasks = %d, want 1", summary.CompletedTasks)
	}
	if want := 100.0 / 3; math.Abs(summary.CompletionRate-want) > 1e-9 {
		t.Errorf("CompletionRate = %f, want %f", summary.CompletionRate, want)
	}
}

// ─── Trend ──────────────────────────────────────────────────────────────────

// monthTasks creates total tasks in the given month with the first
// completed of them marked done inside the month.
func monthTasks(t *testing.T, year int, month time.Month, total, completed int) []domain.Task {
	t.Helper()
	var tasks []domain.Task
	for i := 0; i < total; i++ {
		created := time.Date(year, month, 2+i, 9, 0, 0, 0, time.UTC)
		task := openTask(fmt.Sprintf("%s-%d", month, i), created)
		if i < completed {
			task.Done = true
			task.CompletedAt = created.Add(3 * time.Hour)
		}
		tasks = append(tasks, task)
	}
	return tasks
}

func TestSummarize_TrendSign(t *testing.T) {
	// Previous month 60%, current month 80% → improvement +20.
	tasks := append(
		monthTasks(t, 2025, time.June, 5, 3),
		monthTasks(t, 2025, time.July, 5, 4)...,
	)

	summary := analytics.Summarize(tasks, 2025, time.July, time.UTC)

	if summary.CompletionRate != 80 {
		t.Fatalf("CompletionRate = %f, want 80", summary.CompletionRate)
	}
	if summary.MonthlyTrend.PreviousMonth != 60 {
		t.Errorf("PreviousMonth = %f, want 60", summary.MonthlyTrend.PreviousMonth)
	}
	if summary.MonthlyTrend.Improvement != 20 {
		t.Errorf("Improvement = %f, want 20", summary.MonthlyTrend.Improvement)
	}
}

func TestSummarize_TrendEmptyPreviousMonth(t *testing.T) {
	tasks := monthTasks(t, 2025, time.July, 2, 2)
	summary := analytics.Summarize(tasks, 2025, time.July, time.UTC)

	if summary.MonthlyTrend.PreviousMonth != 0 {
		t.Errorf("PreviousMonth = %f, want 0", summary.MonthlyTrend.PreviousMonth)
	}
	if summary.MonthlyTrend.Improvement != 100 {
		t.Errorf("Improvement = %f, want 100", summary.MonthlyTrend.Improvement)
	}
}

func TestTrendBetween(t *testing.T) {
	current := domain.MonthlySummary{CompletionRate: 80}
	previous := domain.MonthlySummary{CompletionRate: 60}

	trend := analytics.TrendBetween(current, &previous)
	if trend.Improvement != 20 {
		t.Errorf("Improvement = %f, want 20", trend.Improvement)
	}

	trend = analytics.TrendBetween(current, nil)
	if trend.PreviousMonth != 0 || trend.Improvement != 80 {
		t.Errorf("nil previous trend = %+v, want {0 80}", trend)
	}
}

// ─── Timezones ──────────────────────────────────────────────────────────────

func TestSummarize_LocalMonthBoundaries(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}

	// 2025-07-31 20:00 UTC is already August 1 in Tokyo.
	task := completedOn("late", time.Date(2025, 7, 31, 20, 0, 0, 0, time.UTC))

	utcSummary := analytics.Summarize([]domain.Task{task}, 2025, time.July, time.UTC)
	if utcSummary.CompletedTasks != 1 {
		t.Errorf("UTC July completions = %d, want 1", utcSummary.CompletedTasks)
	}

	tokyoSummary := analytics.Summarize([]domain.Task{task}, 2025, time.August, tokyo)
	if tokyoSummary.CompletedTasks != 1 {
		t.Errorf("Tokyo August completions = %d, want 1", tokyoSummary.CompletedTasks)
	}
}

// ─── Sparkline Input ────────────────────────────────────────────────────────

func TestDailyRates_NoGaps(t *testing.T) {
	summary := analytics.Summarize(nil, 2025, time.July, time.UTC)
	rates := analytics.DailyRates(summary.DailyCompletions)

	if len(rates) != 31 {
		t.Fatalf("rates has %d entries, want 31", len(rates))
	}
	for i, r := range rates {
		if r == nil {
			t.Fatalf("rate %d is nil — zero-activity days are data, not gaps", i)
		}
		if *r != 0 {
			t.Errorf("rate %d = %f, want 0", i, *r)
		}
	}
}
