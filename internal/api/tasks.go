package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pacely/pacely/internal/app/duration"
	"github.com/pacely/pacely/internal/domain"
	"github.com/pacely/pacely/internal/infra/metrics"
	"github.com/pacely/pacely/internal/infra/sqlite"
)

// ─── Task CRUD (/api/tasks) ──────────────────────────────────────────────────
// Estimate and actual durations travel as human text ("1h30m") and are
// parsed through the duration codec at this boundary. Parse failures go
// straight back to the caller — never coerced to a default.

type taskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Estimate    string `json:"estimate,omitempty"` // "1h30m", "45m", "90" …
}

type completeRequest struct {
	Actual string `json:"actual,omitempty"`
}

// taskResponse augments a task with display strings so the web client
// never re-implements duration formatting.
type taskResponse struct {
	domain.Task
	EstimateText string `json:"estimate_text,omitempty"`
	ActualText   string `json:"actual_text,omitempty"`
}

func toResponse(t domain.Task) taskResponse {
	resp := taskResponse{Task: t}
	if t.EstimatedMinutes != nil {
		resp.EstimateText = duration.Format(*t.EstimatedMinutes)
	}
	if t.ActualMinutes != nil {
		resp.ActualText = duration.Format(*t.ActualMinutes)
	}
	return resp
}

func (s *Server) handleListTasks(w http.ResponseWriter, r *http.Request) {
	var filter sqlite.TaskFilter
	switch r.URL.Query().Get("state") {
	case "done":
		done := true
		filter.Done = &done
	case "open":
		done := false
		filter.Done = &done
	}

	tasks, err := s.db.ListTasks(filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	out := make([]taskResponse, len(tasks))
	for i, t := range tasks {
		out[i] = toResponse(t)
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"tasks": out,
	})
}

func (s *Server) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	var req taskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Title == "" {
		writeDomainError(w, domain.ErrEmptyTitle)
		return
	}

	task := domain.Task{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		CreatedAt:   time.Now(),
	}
	if req.Estimate != "" {
		minutes, err := duration.Parse(req.Estimate)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		task.EstimatedMinutes = &minutes
	}

	if err := s.db.InsertTask(task); err != nil {
		writeDomainError(w, err)
		return
	}
	metrics.RecordTaskCreated()
	writeJSON(w, http.StatusCreated, toResponse(task))
}

func (s *Server) handleGetTask(w http.ResponseWriter, r *http.Request) {
	task, err := s.db.GetTask(chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toResponse(*task))
}

func (s *Server) handleUpdateTask(w http.ResponseWriter, r *http.Request) {
	task, err := s.db.GetTask(chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}

	var req taskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if req.Title != "" {
		task.Title = req.Title
	}
	if req.Description != "" {
		task.Description = req.Description
	}
	if req.Estimate != "" {
		minutes, err := duration.Parse(req.Estimate)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		task.EstimatedMinutes = &minutes
	}

	if err := s.db.UpdateTask(*task); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toResponse(*task))
}

func (s *Server) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	if err := s.db.DeleteTask(chi.URLParam(r, "id")); err != nil {
		writeDomainError(w, err)
		return
	}
	metrics.RecordTaskDeleted()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleCompleteTask(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req completeRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	var actual *int
	if req.Actual != "" {
		minutes, err := duration.Parse(req.Actual)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		actual = &minutes
	}

	if err := s.db.CompleteTask(id, actual, time.Now()); err != nil {
		writeDomainError(w, err)
		return
	}
	metrics.RecordTaskCompleted()

	task, err := s.db.GetTask(id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toResponse(*task))
}

func (s *Server) handleReopenTask(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.db.ReopenTask(id); err != nil {
		writeDomainError(w, err)
		return
	}

	task, err := s.db.GetTask(id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toResponse(*task))
}
