// Package analytics turns task snapshots into monthly summaries, trends,
// estimation-accuracy scores, and deterministic insight text.
package analytics

import (
	"math"

	"github.com/pacely/pacely/internal/domain"
)

// AnalyzeAccuracy scores how well estimates matched actuals across the
// given tasks. Only completed tasks carrying both an estimate and an actual
// qualify; a zero estimate is excluded (the ratio is undefined).
//
// Per-task score: 100 * max(0, 1 - |ln(actual/estimate)|), clamped to
// [0,100]. The log-ratio makes over- and under-estimation symmetric: a task
// taking twice as long and one taking half as long are penalized equally.
// The overall score is the mean across qualifying tasks, nil when none
// qualify — no data is not the same thing as zero accuracy.
func AnalyzeAccuracy(tasks []domain.Task) domain.AccuracyResult {
	var result domain.AccuracyResult
	var totalScore float64

	for _, t := range tasks {
		if !t.Measurable() || *t.EstimatedMinutes == 0 {
			continue
		}
		ratio := float64(*t.ActualMinutes) / float64(*t.EstimatedMinutes)

		result.PerTask = append(result.PerTask, domain.TaskAccuracy{
			TaskID:           t.ID,
			EstimatedMinutes: *t.EstimatedMinutes,
			ActualMinutes:    *t.ActualMinutes,
			Ratio:            ratio,
		})
		result.TasksAnalyzed++
		totalScore += RatioScore(ratio)
	}

	if result.TasksAnalyzed > 0 {
		overall := totalScore / float64(result.TasksAnalyzed)
		result.OverallAccuracy = &overall
	}
	return result
}

// RatioScore maps an actual/estimate ratio to a 0–100 accuracy score.
// Ratio 1.0 scores 100; e× off in either direction scores 0.
func RatioScore(ratio float64) float64 {
	if ratio <= 0 {
		return 0
	}
	score := 100 * (1 - math.Abs(math.Log(ratio)))
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
