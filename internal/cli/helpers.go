package cli

import (
	"fmt"
	"strings"

	"github.com/pacely/pacely/internal/domain"
	"github.com/pacely/pacely/internal/infra/sqlite"
)

// shortID returns the display prefix of a task ID.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// findTask resolves a full or prefixed task ID to a stored task.
// Ambiguous prefixes are an error, not a guess.
func findTask(db *sqlite.DB, ref string) (*domain.Task, error) {
	tasks, err := db.ListTasks(sqlite.TaskFilter{})
	if err != nil {
		return nil, err
	}

	var match *domain.Task
	for i := range tasks {
		if !strings.HasPrefix(tasks[i].ID, ref) {
			continue
		}
		if match != nil {
			return nil, fmt.Errorf("task ID %q is ambiguous", ref)
		}
		match = &tasks[i]
	}
	if match == nil {
		return nil, domain.ErrTaskNotFound
	}
	return match, nil
}

// checkbox renders a task's completion state for list output.
func checkbox(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}
