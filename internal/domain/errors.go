package domain

import "errors"

// ─── Sentinel Errors ────────────────────────────────────────────────────────
// Domain errors are pure — no infrastructure dependency.

var (
	// Duration codec errors
	ErrInvalidDurationFormat = errors.New("invalid duration format")
	ErrDurationOutOfRange    = errors.New("duration out of range (1m to 24h)")

	// Analytics errors
	ErrInsufficientData = errors.New("not enough data to analyze")

	// Task store errors
	ErrTaskNotFound = errors.New("task not found")
	ErrTaskDone     = errors.New("task is already completed")
	ErrTaskNotDone  = errors.New("task is not completed")
	ErrEmptyTitle   = errors.New("task title must not be empty")
)
