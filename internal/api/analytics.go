package api

import (
	"net/http"
	"time"

	"github.com/pacely/pacely/internal/app/analytics"
	"github.com/pacely/pacely/internal/infra/sqlite"
)

// ─── Analytics (/api/analytics) ──────────────────────────────────────────────
// The handlers fetch a task snapshot and hand it to the pure analytics
// engine; no aggregation logic lives at this layer.

func (s *Server) handleMonthlySummary(w http.ResponseWriter, r *http.Request) {
	year, month, loc, err := s.monthParams(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	tasks, err := s.db.ListTasks(sqlite.TaskFilter{})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, analytics.Summarize(tasks, year, month, loc))
}

func (s *Server) handleAccuracy(w http.ResponseWriter, r *http.Request) {
	year, month, loc, err := s.monthParams(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	start := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	tasks, err := s.db.ListTasks(sqlite.TaskFilter{
		CompletedBetween: [2]time.Time{start, start.AddDate(0, 1, 0)},
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, analytics.AnalyzeAccuracy(tasks))
}
