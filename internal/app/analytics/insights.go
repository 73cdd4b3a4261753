package analytics

import (
	"fmt"

	"github.com/pacely/pacely/internal/domain"
)

// Completion-rate thresholds shared by the insight and celebration tables
// so the two never disagree about what counts as a good month.
const (
	excellentRate = 90
	solidRate     = 70
	momentumRate  = 50
)

// Accuracy thresholds for the estimation insight category.
const (
	sharpAccuracy = 80
	roughAccuracy = 50
)

// monthFacts is the statistics snapshot the rule tables evaluate against.
type monthFacts struct {
	total       int
	completed   int
	rate        float64
	improvement float64
	accuracy    domain.AccuracyResult
}

// insightRule is one (predicate, message) row. Rules are grouped by
// category; within a category they are evaluated top to bottom and only
// the first match fires.
type insightRule struct {
	category string
	when     func(monthFacts) bool
	message  func(monthFacts) string
}

// insightRules is the full ordered rule table. Category order is the
// output order: performance, volume, estimation, trend.
var insightRules = []insightRule{
	// ── Performance ────────────────────────────────────────────────
	{
		category: "performance",
		when:     func(f monthFacts) bool { return f.total == 0 },
		message: func(monthFacts) string {
			return "A fresh month with no tasks yet — ready to start."
		},
	},
	{
		category: "performance",
		when:     func(f monthFacts) bool { return f.rate >= excellentRate },
		message: func(f monthFacts) string {
			return fmt.Sprintf("Excellent month: %.0f%% of your tasks completed.", f.rate)
		},
	},
	{
		category: "performance",
		when:     func(f monthFacts) bool { return f.rate >= momentumRate && f.improvement > 0 },
		message: func(f monthFacts) string {
			return fmt.Sprintf("Solid momentum: %.0f%% completed and climbing.", f.rate)
		},
	},
	{
		category: "performance",
		when:     func(f monthFacts) bool { return f.rate < momentumRate },
		message: func(f monthFacts) string {
			return fmt.Sprintf("%d of %d tasks completed — smaller tasks may help.", f.completed, f.total)
		},
	},

	// ── Volume ─────────────────────────────────────────────────────
	{
		category: "volume",
		when:     func(f monthFacts) bool { return f.completed >= 50 },
		message: func(f monthFacts) string {
			return fmt.Sprintf("High output: %d tasks finished this month.", f.completed)
		},
	},
	{
		category: "volume",
		when:     func(f monthFacts) bool { return f.completed >= 20 },
		message: func(f monthFacts) string {
			return fmt.Sprintf("Steady output: %d tasks finished this month.", f.completed)
		},
	},

	// ── Estimation ─────────────────────────────────────────────────
	{
		category: "estimation",
		when: func(f monthFacts) bool {
			return f.accuracy.OverallAccuracy != nil && *f.accuracy.OverallAccuracy >= sharpAccuracy
		},
		message: func(f monthFacts) string {
			return fmt.Sprintf("Your time estimates are sharp: %.0f%% accuracy.", *f.accuracy.OverallAccuracy)
		},
	},
	{
		category: "estimation",
		when: func(f monthFacts) bool {
			return f.accuracy.OverallAccuracy != nil && *f.accuracy.OverallAccuracy < roughAccuracy
		},
		message: func(f monthFacts) string {
			return fmt.Sprintf("Estimates ran %.0f%% accurate — try timing a few tasks.", *f.accuracy.OverallAccuracy)
		},
	},

	// ── Trend ──────────────────────────────────────────────────────
	{
		category: "trend",
		when:     func(f monthFacts) bool { return f.total > 0 && f.improvement >= 10 },
		message: func(f monthFacts) string {
			return fmt.Sprintf("Completion rate up %.0f points over last month.", f.improvement)
		},
	},
	{
		category: "trend",
		when:     func(f monthFacts) bool { return f.total > 0 && f.improvement <= -10 },
		message: func(f monthFacts) string {
			return fmt.Sprintf("Completion rate down %.0f points from last month.", -f.improvement)
		},
	},
}

// insightsFor evaluates the rule table in order, emitting at most one
// message per category. Output order is table order, never randomized.
func insightsFor(f monthFacts) []string {
	insights := []string{}
	fired := map[string]bool{}

	for _, rule := range insightRules {
		if fired[rule.category] {
			continue
		}
		if rule.when(f) {
			insights = append(insights, rule.message(f))
			fired[rule.category] = true
		}
	}
	return insights
}

// celebrationRule mirrors insightRule for the top-level celebration text.
type celebrationRule struct {
	when    func(monthFacts) bool
	message string
}

// celebrationRules reuses the same rate thresholds as the insight table.
// First match wins; no match means no celebration.
var celebrationRules = []celebrationRule{
	{
		when:    func(f monthFacts) bool { return f.total == 0 },
		message: "Ready when you are — add your first task!",
	},
	{
		when:    func(f monthFacts) bool { return f.rate >= excellentRate },
		message: "Outstanding! You crushed this month. 🎉",
	},
	{
		when:    func(f monthFacts) bool { return f.rate >= solidRate },
		message: "Great month — keep the streak going!",
	},
	{
		when:    func(f monthFacts) bool { return f.rate >= momentumRate && f.improvement > 0 },
		message: "You're building momentum. Nice work!",
	},
}

// celebrationFor picks the first matching celebration message, or "" when
// the month doesn't warrant one.
func celebrationFor(f monthFacts) string {
	for _, rule := range celebrationRules {
		if rule.when(f) {
			return rule.message
		}
	}
	return ""
}
