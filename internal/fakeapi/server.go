// Package fakeapi is an in-memory implementation of the job-board HTTP API
// used by tests and the development server. It issues HS256 tokens on login
// and requires them for every write.
package fakeapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/jobboard/internal/client/models"
	"github.com/dmitrijs2005/jobboard/internal/common"
	"github.com/dmitrijs2005/jobboard/internal/logging"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type ctxKey struct{}

// Server wires HTTP handlers over a JobStore and a fixed user table.
type Server struct {
	jobs     *JobStore
	users    map[string]string
	secret   []byte
	tokenTTL time.Duration
	log      logging.Logger
}

type Option func(*Server)

// WithUser registers a login. Passwords are compared as plain text.
func WithUser(email, password string) Option {
	return func(s *Server) { s.users[email] = password }
}

func WithTokenTTL(d time.Duration) Option {
	return func(s *Server) { s.tokenTTL = d }
}

func WithLogger(l logging.Logger) Option {
	return func(s *Server) { s.log = l }
}

func New(jobs *JobStore, secret []byte, opts ...Option) *Server {
	s := &Server{
		jobs:     jobs,
		users:    map[string]string{},
		secret:   secret,
		tokenTTL: time.Hour,
		log:      logging.Discard(),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Router builds the HTTP router.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Post(common.LoginPath, s.handleLogin)

	r.Route(common.JobsPath, func(r chi.Router) {
		r.Get("/", s.handleList)
		r.Get("/{id}", s.handleGet)

		r.Group(func(r chi.Router) {
			r.Use(s.requireToken)
			r.Post("/", s.handleCreate)
			r.Put("/{id}", s.handleUpdate)
			r.Delete("/{id}", s.handleDelete)
		})
	})
	return r
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.log.Info(r.Context(), "request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"request_id", r.Header.Get(common.RequestIDHeader),
			"elapsed", time.Since(start),
		)
	})
}

func (s *Server) requireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, ok := strings.CutPrefix(r.Header.Get(common.AuthorizationHeader), common.BearerPrefix)
		if !ok || raw == "" {
			http.Error(w, "missing bearer token", http.StatusUnauthorized)
			return
		}
		email, err := EmailFromToken(raw, s.secret)
		if err != nil {
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, email)))
	})
}

// UserFromContext returns the email of the authenticated caller.
func UserFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(ctxKey{}).(string)
	return v, ok
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	want, ok := s.users[req.Email]
	if !ok || want != req.Password {
		http.Error(w, "Invalid email or password", http.StatusUnauthorized)
		return
	}
	tok, err := IssueToken(req.Email, s.secret, s.tokenTTL)
	if err != nil {
		http.Error(w, "token error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, models.LoginResponse{Token: tok, Email: req.Email})
}

func (s *Server) handleList(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.jobs.List())
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	j, err := s.jobs.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, j)
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	u, ok := decodeUpdate(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusCreated, s.jobs.Create(u))
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	u, ok := decodeUpdate(w, r)
	if !ok {
		return
	}
	j, err := s.jobs.Update(chi.URLParam(r, "id"), u)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, j)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.jobs.Delete(chi.URLParam(r, "id")); err != nil {
		writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func decodeUpdate(w http.ResponseWriter, r *http.Request) (models.JobUpdate, bool) {
	var u models.JobUpdate
	if err := json.NewDecoder(r.Body).Decode(&u); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return u, false
	}
	if u.Title == "" {
		http.Error(w, "title is required", http.StatusBadRequest)
		return u, false
	}
	return u, true
}

func writeStoreError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrJobNotFound) {
		http.Error(w, "Job not found", http.StatusNotFound)
		return
	}
	http.Error(w, err.Error(), http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
