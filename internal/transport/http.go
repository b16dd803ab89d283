package transport

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/avaleri/burnboard/internal/domain/activity"
	"github.com/avaleri/burnboard/internal/domain/project"
	"github.com/avaleri/burnboard/internal/domain/user"
	"github.com/avaleri/burnboard/internal/repository"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Services bundles the domain services the REST surface exposes.
type Services struct {
	Projects   *project.Service
	Activities *activity.Service
	Users      *user.Service
}

// Server wires HTTP handlers.
type Server struct {
	svcs   Services
	logger *slog.Logger
}

// NewServer creates an HTTP router over the domain services. A nil metrics
// disables the latency middleware.
func NewServer(svcs Services, logger *slog.Logger, metrics *Metrics) *chi.Mux {
	r := chi.NewRouter()

	if metrics != nil {
		r.Use(LatencyMiddleware(metrics))
	}

	srv := &Server{svcs: svcs, logger: logger}

	r.Get("/project", srv.listProjects)
	r.Post("/project", srv.createProject)
	r.Get("/activity", srv.listActivities)
	r.Post("/activity", srv.recordActivity)
	r.Get("/user", srv.listUsers)
	r.Post("/user", srv.createUser)
	r.Get("/health", srv.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) listProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := s.svcs.Projects.List(r.Context())
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, "failed to list projects")
		return
	}
	if projects == nil {
		projects = []project.Project{}
	}
	s.writeData(w, http.StatusOK, projects)
}

func (s *Server) createProject(w http.ResponseWriter, r *http.Request) {
	var req project.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := s.svcs.Projects.Create(r.Context(), req)
	if err != nil {
		if errors.Is(err, project.ErrInvalidInput) {
			s.writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		s.writeError(w, http.StatusInternalServerError, "failed to create project")
		return
	}
	s.writeData(w, http.StatusCreated, created)
}

func (s *Server) listActivities(w http.ResponseWriter, r *http.Request) {
	projectID := r.URL.Query().Get("projectId")
	if projectID == "" {
		s.writeError(w, http.StatusBadRequest, "projectId is required")
		return
	}

	since, err := parseDateParam(r.URL.Query().Get("date"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	activities, err := s.svcs.Activities.ListWindow(r.Context(), projectID, since)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, "failed to list activities")
		return
	}
	if activities == nil {
		activities = []activity.Activity{}
	}
	s.writeData(w, http.StatusOK, activities)
}

func (s *Server) recordActivity(w http.ResponseWriter, r *http.Request) {
	var act activity.Activity
	if err := json.NewDecoder(r.Body).Decode(&act); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := s.svcs.Activities.Record(r.Context(), &act); err != nil {
		switch {
		case errors.Is(err, activity.ErrInvalidInput):
			s.writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, repository.ErrForeignKeyViolation):
			s.writeError(w, http.StatusBadRequest, "unknown project")
		default:
			s.writeError(w, http.StatusInternalServerError, "failed to record activity")
		}
		return
	}
	s.writeData(w, http.StatusCreated, act)
}

func (s *Server) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.svcs.Users.List(r.Context())
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, "failed to list users")
		return
	}
	if users == nil {
		users = []user.User{}
	}
	s.writeData(w, http.StatusOK, users)
}

func (s *Server) createUser(w http.ResponseWriter, r *http.Request) {
	var req user.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := s.svcs.Users.Create(r.Context(), req)
	if err != nil {
		if errors.Is(err, user.ErrInvalidInput) {
			s.writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		s.writeError(w, http.StatusInternalServerError, "failed to create user")
		return
	}
	s.writeData(w, http.StatusCreated, created)
}

// parseDateParam accepts an epoch-millisecond lower bound with an optional
// "gte:" prefix. Both spellings behave as an inclusive lower bound; an empty
// value leaves the window unbounded.
func parseDateParam(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	value := strings.TrimPrefix(raw, "gte:")
	millis, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date parameter %q", raw)
	}
	return time.UnixMilli(millis).UTC(), nil
}

type envelope struct {
	OK    bool   `json:"ok"`
	Data  any    `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}

func (s *Server) writeData(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(envelope{OK: true, Data: data}); err != nil && s.logger != nil {
		s.logger.Error("failed to encode response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(envelope{OK: false, Error: msg})
}
