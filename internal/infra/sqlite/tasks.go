package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/pacely/pacely/internal/domain"
)

// TaskFilter narrows ListTasks. Zero value lists everything.
type TaskFilter struct {
	Done             *bool        // nil = both open and completed
	CompletedBetween [2]time.Time // [start, end), applied when both are non-zero
	Limit            int          // 0 = no limit
}

const taskColumns = `id, title, description, estimated_minutes, actual_minutes, done, created_at, completed_at`

// InsertTask creates a new task record.
func (d *DB) InsertTask(task domain.Task) error {
	if task.Title == "" {
		return domain.ErrEmptyTitle
	}
	_, err := d.db.Exec(
		`INSERT INTO tasks (`+taskColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		task.ID, task.Title, task.Description,
		nullableInt(task.EstimatedMinutes), nullableInt(task.ActualMinutes),
		task.Done, task.CreatedAt.Unix(), nullableUnix(task.CompletedAt),
	)
	return err
}

// GetTask retrieves a task by ID.
func (d *DB) GetTask(id string) (*domain.Task, error) {
	row := d.db.QueryRow(
		`SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id,
	)
	t, err := scanTask(row)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrTaskNotFound
	}
	return t, nil
}

// UpdateTask rewrites a task's editable fields (title, description,
// estimate). Completion state is changed through CompleteTask/ReopenTask.
func (d *DB) UpdateTask(task domain.Task) error {
	if task.Title == "" {
		return domain.ErrEmptyTitle
	}
	result, err := d.db.Exec(
		`UPDATE tasks SET title = ?, description = ?, estimated_minutes = ? WHERE id = ?`,
		task.Title, task.Description, nullableInt(task.EstimatedMinutes), task.ID,
	)
	if err != nil {
		return err
	}
	n, _ := result.RowsAffected()
	if n == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

// CompleteTask marks a task done at the given time, recording the actual
// duration when one was measured. Completing a completed task is an error.
func (d *DB) CompleteTask(id string, actualMinutes *int, at time.Time) error {
	task, err := d.GetTask(id)
	if err != nil {
		return err
	}
	if task.Done {
		return domain.ErrTaskDone
	}

	_, err = d.db.Exec(
		`UPDATE tasks SET done = 1, actual_minutes = ?, completed_at = ? WHERE id = ?`,
		nullableInt(actualMinutes), at.Unix(), id,
	)
	return err
}

// ReopenTask clears a task's completion state, including the recorded
// actual duration (it belongs to the completion, not the task).
func (d *DB) ReopenTask(id string) error {
	task, err := d.GetTask(id)
	if err != nil {
		return err
	}
	if !task.Done {
		return domain.ErrTaskNotDone
	}

	_, err = d.db.Exec(
		`UPDATE tasks SET done = 0, actual_minutes = NULL, completed_at = NULL WHERE id = ?`, id,
	)
	return err
}

// DeleteTask removes a task record.
func (d *DB) DeleteTask(id string) error {
	result, err := d.db.Exec(`DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, _ := result.RowsAffected()
	if n == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

// ListTasks returns tasks matching the filter, newest first.
func (d *DB) ListTasks(filter TaskFilter) ([]domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks`
	var where []string
	var args []any

	if filter.Done != nil {
		where = append(where, `done = ?`)
		args = append(args, *filter.Done)
	}
	if !filter.CompletedBetween[0].IsZero() && !filter.CompletedBetween[1].IsZero() {
		where = append(where, `completed_at >= ? AND completed_at < ?`)
		args = append(args, filter.CompletedBetween[0].Unix(), filter.CompletedBetween[1].Unix())
	}

	for i, w := range where {
		if i == 0 {
			query += ` WHERE ` + w
		} else {
			query += ` AND ` + w
		}
	}
	query += ` ORDER BY created_at DESC`
	if filter.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, filter.Limit)
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []domain.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *t)
	}
	return tasks, rows.Err()
}

// CountTasks returns (total, completed) across the whole store.
func (d *DB) CountTasks() (int, int, error) {
	var total, completed int
	err := d.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(done), 0) FROM tasks`,
	).Scan(&total, &completed)
	return total, completed, err
}

func scanTask(s scanner) (*domain.Task, error) {
	var t domain.Task
	var estimated, actual, completedAt sql.NullInt64
	var createdAt int64

	err := s.Scan(&t.ID, &t.Title, &t.Description,
		&estimated, &actual, &t.Done, &createdAt, &completedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scan task: %w", err)
	}

	t.CreatedAt = time.Unix(createdAt, 0)
	if estimated.Valid {
		v := int(estimated.Int64)
		t.EstimatedMinutes = &v
	}
	if actual.Valid {
		v := int(actual.Int64)
		t.ActualMinutes = &v
	}
	if completedAt.Valid {
		t.CompletedAt = time.Unix(completedAt.Int64, 0)
	}
	return &t, nil
}
