// Package web serves tilemerge over HTTP: health and leaderboard JSON
// endpoints, and a websocket endpoint that runs one game per connection.
package web

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/vovakirdan/tilemerge/internal/config"
	"github.com/vovakirdan/tilemerge/internal/registry"
	"github.com/vovakirdan/tilemerge/internal/storage"
)

// Server bundles the router, leaderboard and game settings.
type Server struct {
	r      *chi.Mux
	store  *storage.Store
	game   config.GameConfig
	logger *log.Logger
}

// New constructs a Server, installs middleware, and registers routes.
// store and logger may be nil.
func New(store *storage.Store, game config.GameConfig, logger *log.Logger) *Server {
	if logger == nil {
		logger = config.NewLogger("info")
	}
	s := &Server{
		r:      chi.NewRouter(),
		store:  store,
		game:   game,
		logger: logger.WithPrefix("tilemerge-web"),
	}

	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(chimw.Recoverer)

	// JSON endpoints get a handler deadline; the websocket is long-lived.
	s.r.Group(func(r chi.Router) {
		r.Use(chimw.Timeout(10 * time.Second))
		r.Use(jsonContentType)

		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"ok":true}`))
		})
		r.Get("/variants", s.handleVariants)
		r.Get("/scores/{variant}", s.handleScores)

		r.NotFound(func(w http.ResponseWriter, r *http.Request) {
			writeError(w, http.StatusNotFound, "not_found")
		})
	})

	s.r.Get("/ws", s.handleWS)

	return s
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) { s.r.ServeHTTP(w, r) }

// ListenAndServe serves on addr until ctx is done, then shuts down.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting HTTP server", "address", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

// handleVariants lists the registered boards.
func (s *Server) handleVariants(w http.ResponseWriter, r *http.Request) {
	type variantRes struct {
		ID    string `json:"id"`
		Title string `json:"title"`
		Size  int    `json:"size"`
	}
	out := []variantRes{}
	for _, v := range registry.List() {
		out = append(out, variantRes{ID: v.ID, Title: v.Title, Size: v.Size})
	}
	_ = json.NewEncoder(w).Encode(out)
}

// handleScores returns the top runs for a variant. ?limit=N caps the list.
func (s *Server) handleScores(w http.ResponseWriter, r *http.Request) {
	variant := chi.URLParam(r, "variant")
	if !registry.Exists(variant) {
		writeError(w, http.StatusNotFound, "unknown_variant")
		return
	}
	if s.store == nil {
		writeError(w, http.StatusServiceUnavailable, "no_storage")
		return
	}

	limit := storage.DefaultLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "bad_limit")
			return
		}
		limit = n
	}

	scores, err := s.store.TopScores(variant, limit)
	if err != nil {
		s.logger.Error("query scores", "variant", variant, "error", err)
		writeError(w, http.StatusInternalServerError, "db_error")
		return
	}
	if scores == nil {
		scores = []storage.ScoreEntry{}
	}
	_ = json.NewEncoder(w).Encode(scores)
}
