package analytics

import (
	"fmt"
	"time"

	"github.com/pacely/pacely/internal/domain"
)

// Summarize aggregates one calendar month of task activity. Month
// boundaries are local to loc: inclusive of the month's first instant,
// exclusive of the next month's. A task belongs to the month when it was
// created or completed inside those boundaries.
//
// The returned summary is complete: totals, a zero-filled per-day
// completion series, the trend against the immediately preceding month
// (derived from the same task slice), insights, and a celebration message.
func Summarize(tasks []domain.Task, year int, month time.Month, loc *time.Location) domain.MonthlySummary {
	if loc == nil {
		loc = time.Local
	}

	cur := collectMonth(tasks, year, month, loc)

	prevStart := time.Date(year, month, 1, 0, 0, 0, 0, loc).AddDate(0, -1, 0)
	prev := collectMonth(tasks, prevStart.Year(), prevStart.Month(), loc)

	cur.MonthlyTrend = domain.MonthlyTrend{
		PreviousMonth: prev.CompletionRate,
		Improvement:   cur.CompletionRate - prev.CompletionRate,
	}

	facts := monthFacts{
		total:       cur.TotalTasks,
		completed:   cur.CompletedTasks,
		rate:        cur.CompletionRate,
		improvement: cur.MonthlyTrend.Improvement,
		accuracy:    AnalyzeAccuracy(monthCompletions(tasks, year, month, loc)),
	}
	cur.Insights = insightsFor(facts)
	cur.CelebrationMessage = celebrationFor(facts)

	return cur
}

// TrendBetween computes the month-over-month trend from two summaries.
// Pass previous as nil when the prior month was never computed; its rate
// then defaults to 0 and callers must not read that as "0% completed".
func TrendBetween(current domain.MonthlySummary, previous *domain.MonthlySummary) domain.MonthlyTrend {
	var prevRate float64
	if previous != nil {
		prevRate = previous.CompletionRate
	}
	return domain.MonthlyTrend{
		PreviousMonth: prevRate,
		Improvement:   current.CompletionRate - prevRate,
	}
}

// collectMonth computes the raw counts and the per-day completion series
// for a single month. Insights and trend are layered on by Summarize.
func collectMonth(tasks []domain.Task, year int, month time.Month, loc *time.Location) domain.MonthlySummary {
	start := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 1, 0)
	days := end.AddDate(0, 0, -1).Day()

	perDay := make([]int, days)
	var total, completed int

	for _, t := range tasks {
		inMonth := t.CreatedIn(start, end) || t.CompletedIn(start, end)
		if !inMonth {
			continue
		}
		total++
		if t.CompletedIn(start, end) {
			completed++
			perDay[t.CompletedAt.In(loc).Day()-1]++
		}
	}

	daily := make([]domain.DailyCompletion, days)
	for i := range daily {
		daily[i] = domain.DailyCompletion{
			Date:      start.AddDate(0, 0, i).Format("2006-01-02"),
			Completed: perDay[i],
		}
	}

	// An empty month is a valid, displayable state: rate 0, not NaN.
	var rate float64
	if total > 0 {
		rate = float64(completed) / float64(total) * 100
	}

	return domain.MonthlySummary{
		Month:            fmt.Sprintf("%04d-%02d", year, int(month)),
		TotalTasks:       total,
		CompletedTasks:   completed,
		CompletionRate:   rate,
		DailyCompletions: daily,
	}
}

// monthCompletions filters to tasks completed inside the given month,
// the input set for estimation-accuracy scoring.
func monthCompletions(tasks []domain.Task, year int, month time.Month, loc *time.Location) []domain.Task {
	start := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 1, 0)

	var out []domain.Task
	for _, t := range tasks {
		if t.CompletedIn(start, end) {
			out = append(out, t)
		}
	}
	return out
}

// DailyRates converts a summary's completion series into a nullable sample
// series for sparkline rendering: days with zero activity stay at zero
// (they are real data, not gaps).
func DailyRates(daily []domain.DailyCompletion) []*float64 {
	out := make([]*float64, len(daily))
	for i, d := range daily {
		v := float64(d.Completed)
		out[i] = &v
	}
	return out
}
