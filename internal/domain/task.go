// Package domain holds the Pacely task model and analytics value types.
// A Task is a unit of personal work: create → (estimate) → complete → analyze.
package domain

import "time"

// Task is a tracked unit of work. Estimated and actual minutes are
// pointers: absent is a real state, distinct from a zero-minute duration.
// ActualMinutes is set only when the task is completed.
type Task struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description,omitempty"`
	EstimatedMinutes *int      `json:"estimated_minutes,omitempty"`
	ActualMinutes    *int      `json:"actual_minutes,omitempty"`
	Done             bool      `json:"done"`
	CreatedAt        time.Time `json:"created_at"`
	CompletedAt      time.Time `json:"completed_at,omitzero"`
}

// HasEstimate reports whether the task carries a time estimate.
func (t *Task) HasEstimate() bool {
	return t.EstimatedMinutes != nil
}

// Measurable reports whether the task can contribute to estimation
// accuracy: completed, with both an estimate and an actual duration.
func (t *Task) Measurable() bool {
	return t.Done && t.EstimatedMinutes != nil && t.ActualMinutes != nil
}

// CompletedIn reports whether the task was completed inside [start, end).
func (t *Task) CompletedIn(start, end time.Time) bool {
	if !t.Done || t.CompletedAt.IsZero() {
		return false
	}
	return !t.CompletedAt.Before(start) && t.CompletedAt.Before(end)
}

// CreatedIn reports whether the task was created inside [start, end).
func (t *Task) CreatedIn(start, end time.Time) bool {
	return !t.CreatedAt.Before(start) && t.CreatedAt.Before(end)
}
