// Package api provides the HTTP server for Pacely. It exposes the task
// store and the analytics engine as a JSON API consumed by the web client.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pacely/pacely/internal/domain"
	"github.com/pacely/pacely/internal/infra/metrics"
	"github.com/pacely/pacely/internal/infra/sqlite"
)

// Server is the Pacely HTTP API server.
type Server struct {
	db             *sqlite.DB
	timezone       *time.Location
	metricsEnabled bool
}

// NewServer creates a new API server over the given task store.
// Analytics month boundaries use loc (nil = local time).
func NewServer(db *sqlite.DB, loc *time.Location) *Server {
	if loc == nil {
		loc = time.Local
	}
	return &Server{db: db, timezone: loc}
}

// EnableMetrics enables the /metrics Prometheus endpoint.
func (s *Server) EnableMetrics() { s.metricsEnabled = true }

// Handler returns the chi router with all routes mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(corsMiddleware)
	r.Use(metricsMiddleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"status": "ok",
		})
	})

	r.Route("/api/tasks", func(r chi.Router) {
		r.Get("/", s.handleListTasks)
		r.Post("/", s.handleCreateTask)
		r.Get("/{id}", s.handleGetTask)
		r.Patch("/{id}", s.handleUpdateTask)
		r.Delete("/{id}", s.handleDeleteTask)
		r.Post("/{id}/complete", s.handleCompleteTask)
		r.Post("/{id}/reopen", s.handleReopenTask)
	})

	r.Route("/api/analytics", func(r chi.Router) {
		r.Get("/monthly", s.handleMonthlySummary)
		r.Get("/accuracy", s.handleAccuracy)
	})

	if s.metricsEnabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	// Serve the static web client for all other routes
	webDir := findWebDir()
	if webDir != "" {
		fileServer := http.FileServer(http.Dir(webDir))
		r.Handle("/*", fileServer)
	} else {
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]string{
				"status": "Pacely is running",
			})
		})
	}

	return r
}

// findWebDir locates the bundled web client in various contexts.
func findWebDir() string {
	candidates := []string{
		"web",          // Running from project root
		"../web",       // Running from build dir
		"/app/web",     // Container
		filepath.Join(os.Getenv("PACELY_HOME"), "web"),
	}

	for _, dir := range candidates {
		if stat, err := os.Stat(dir); err == nil && stat.IsDir() {
			if _, err := os.Stat(filepath.Join(dir, "index.html")); err == nil {
				return dir
			}
		}
	}
	return ""
}

// monthParams resolves the year/month/timezone query parameters, defaulting
// to the current month in the server's analytics timezone.
func (s *Server) monthParams(r *http.Request) (int, time.Month, *time.Location, error) {
	loc := s.timezone
	if tz := r.URL.Query().Get("tz"); tz != "" {
		l, err := time.LoadLocation(tz)
		if err != nil {
			return 0, 0, nil, errors.New("invalid timezone: " + tz)
		}
		loc = l
	}

	now := time.Now().In(loc)
	year, month := now.Year(), now.Month()

	if y := r.URL.Query().Get("year"); y != "" {
		v, err := strconv.Atoi(y)
		if err != nil || v < 1 {
			return 0, 0, nil, errors.New("invalid year: " + y)
		}
		year = v
	}
	if m := r.URL.Query().Get("month"); m != "" {
		v, err := strconv.Atoi(m)
		if err != nil || v < 1 || v > 12 {
			return 0, 0, nil, errors.New("month must be 1-12")
		}
		month = time.Month(v)
	}
	return year, month, loc, nil
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]interface{}{
		"error": map[string]interface{}{
			"message": msg,
			"type":    "error",
		},
	})
}

// writeDomainError maps domain sentinel errors onto HTTP statuses.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrTaskNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrInvalidDurationFormat),
		errors.Is(err, domain.ErrDurationOutOfRange),
		errors.Is(err, domain.ErrEmptyTitle),
		errors.Is(err, domain.ErrTaskDone),
		errors.Is(err, domain.ErrTaskNotDone):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

// corsMiddleware adds CORS headers for the local web client.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ─── Request metrics ─────────────────────────────────────────────────────────

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (sw *statusWriter) WriteHeader(code int) {
	sw.status = code
	sw.ResponseWriter.WriteHeader(code)
}

// metricsMiddleware records per-request Prometheus metrics, with task IDs
// normalized out of the endpoint label.
func metricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(sw, r)

		endpoint := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			endpoint = rctx.RoutePattern()
		}
		metrics.RecordHTTPRequest(r.Method, endpoint, strconv.Itoa(sw.status), time.Since(start))
	})
}
