// Package server exposes the slideshow controller over HTTP.
//
// The server runs shows headlessly on memory surfaces: a POST to
// /api/shows loads a deck from the configured store, attaches a show to a
// fresh surface, and fires the surface's ready signal. Every state change
// is published to a [remote.StateStore] so external displays can poll the
// current position without holding a connection to this instance.
//
// # Routes
//
//	GET    /api/decks                      list stored deck names
//	GET    /api/decks/{name}               fetch one deck document
//	POST   /api/shows                      start a show from a deck
//	GET    /api/shows                      list running shows
//	GET    /api/shows/{id}                 fetch one show's state
//	POST   /api/shows/{id}/commands/{name} dispatch a playback command
//	DELETE /api/shows/{id}                 destroy a show
package server

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/slidekit/carousel/pkg/deck/store"
	"github.com/slidekit/carousel/pkg/observability"
	"github.com/slidekit/carousel/pkg/remote"
	"github.com/slidekit/carousel/pkg/show"
)

// readyTimeout bounds how long show creation waits for deferred
// initialization. Memory surfaces signal ready immediately, so this only
// trips on custom surfaces that never load.
const readyTimeout = 5 * time.Second

// Server wires the deck store, the show registry, and the snapshot store
// behind an HTTP API.
type Server struct {
	decks    store.Store
	registry *show.Registry
	states   remote.StateStore
	logger   *log.Logger

	mu          sync.Mutex
	decksByShow map[string]string
}

// New creates a server. All collaborators are required except states,
// which falls back to an in-process store.
func New(decks store.Store, registry *show.Registry, states remote.StateStore, logger *log.Logger) *Server {
	if states == nil {
		states = remote.NewMemoryStore()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		decks:       decks,
		registry:    registry,
		states:      states,
		logger:      logger,
		decksByShow: make(map[string]string),
	}
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Route("/api", func(r chi.Router) {
		r.Get("/decks", s.handleListDecks)
		r.Get("/decks/{name}", s.handleGetDeck)

		r.Post("/shows", s.handleCreateShow)
		r.Get("/shows", s.handleListShows)
		r.Get("/shows/{id}", s.handleGetShow)
		r.Post("/shows/{id}/commands/{name}", s.handleCommand)
		r.Delete("/shows/{id}", s.handleDestroyShow)
	})
	return r
}

// logRequests emits one structured line per request.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
		)
	})
}

// deckFor returns the deck name a show was started from.
func (s *Server) deckFor(showID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.decksByShow[showID]
}

// publisher builds the per-show event observer. It mirrors every state
// change into the snapshot store and cleans up after destroy. Observers
// run on the mutating goroutine, so store writes get their own bounded
// context.
func (s *Server) publisher(deckName string, slideCount int) func(show.Event) {
	return func(ev show.Event) {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		if ev.Type == show.EventDestroy {
			s.mu.Lock()
			delete(s.decksByShow, ev.ShowID)
			s.mu.Unlock()

			if err := s.states.Delete(ctx, ev.ShowID); err != nil {
				s.logger.Warn("snapshot delete failed", "show", ev.ShowID, "error", err)
			}
			return
		}

		err := s.states.Save(ctx, remote.Snapshot{
			ShowID:     ev.ShowID,
			Deck:       deckName,
			Index:      ev.Index,
			SlideCount: slideCount,
			Playing:    ev.Playing,
			UpdatedAt:  time.Now().UTC(),
		})
		observability.Stores().OnSnapshotSave(ev.ShowID, err)
		if err != nil {
			s.logger.Warn("snapshot save failed", "show", ev.ShowID, "error", err)
		}
	}
}
