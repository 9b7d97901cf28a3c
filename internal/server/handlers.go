package server

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/slidekit/carousel/pkg/errors"
	"github.com/slidekit/carousel/pkg/show"
)

// =============================================================================
// Wire Types
// =============================================================================

// showState is the externally visible state of one running show.
type showState struct {
	ID         string `json:"id"`
	Deck       string `json:"deck"`
	Index      int    `json:"index"`
	SlideCount int    `json:"slide_count"`
	Playing    bool   `json:"playing"`
	Ready      bool   `json:"ready"`
}

type createShowRequest struct {
	Deck string `json:"deck"`
}

type commandRequest struct {
	Index *int `json:"index,omitempty"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// =============================================================================
// Deck Handlers
// =============================================================================

func (s *Server) handleListDecks(w http.ResponseWriter, r *http.Request) {
	names, err := s.decks.List(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string][]string{"decks": names})
}

func (s *Server) handleGetDeck(w http.ResponseWriter, r *http.Request) {
	d, err := s.decks.Get(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, d)
}

// =============================================================================
// Show Handlers
// =============================================================================

func (s *Server) handleCreateShow(w http.ResponseWriter, r *http.Request) {
	var req createShowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request body"))
		return
	}
	if req.Deck == "" {
		s.writeError(w, errors.New(errors.ErrCodeInvalidInput, "deck name is required"))
		return
	}

	d, err := s.decks.Get(r.Context(), req.Deck)
	if err != nil {
		s.writeError(w, err)
		return
	}

	surface := show.NewMemorySurface(d.Options.CanvasSize())
	for _, sl := range d.Slides {
		surface.AddSlide(sl.IntrinsicSize())
	}

	cfg := d.ShowConfig()
	cfg.Observer = s.publisher(req.Deck, len(d.Slides))

	sh, err := s.registry.Init(surface, cfg)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.mu.Lock()
	s.decksByShow[sh.ID()] = req.Deck
	s.mu.Unlock()

	surface.Load()

	ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
	defer cancel()
	if err := sh.Wait(ctx); err != nil {
		s.writeError(w, err)
		return
	}

	s.logger.Info("show started", "show", sh.ID(), "deck", req.Deck, "slides", len(d.Slides))
	s.writeJSON(w, http.StatusCreated, s.stateOf(sh))
}

func (s *Server) handleListShows(w http.ResponseWriter, r *http.Request) {
	states := make([]showState, 0, s.registry.Len())
	for _, id := range s.registry.IDs() {
		if sh, ok := s.registry.Get(id); ok {
			states = append(states, s.stateOf(sh))
		}
	}
	s.writeJSON(w, http.StatusOK, map[string][]showState{"shows": states})
}

func (s *Server) handleGetShow(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	sh, ok := s.registry.Get(id)
	if !ok {
		s.writeError(w, errors.New(errors.ErrCodeShowNotFound, "no show attached to surface %q", id))
		return
	}
	s.writeJSON(w, http.StatusOK, s.stateOf(sh))
}

func (s *Server) handleCommand(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	name := chi.URLParam(r, "name")

	var req commandRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request body"))
			return
		}
	}

	var args []int
	if req.Index != nil {
		args = append(args, *req.Index)
	}
	if err := s.registry.Dispatch(id, name, args...); err != nil {
		s.writeError(w, err)
		return
	}

	sh, ok := s.registry.Get(id)
	if !ok {
		// Pause and destroy succeed against absent shows.
		w.WriteHeader(http.StatusNoContent)
		return
	}
	s.writeJSON(w, http.StatusOK, s.stateOf(sh))
}

func (s *Server) handleDestroyShow(w http.ResponseWriter, r *http.Request) {
	if err := s.registry.Dispatch(chi.URLParam(r, "id"), show.CommandDestroy); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// Helpers
// =============================================================================

func (s *Server) stateOf(sh *show.Show) showState {
	return showState{
		ID:         sh.ID(),
		Deck:       s.deckFor(sh.ID()),
		Index:      sh.CurrentIndex(),
		SlideCount: sh.SlideCount(),
		Playing:    sh.Playing(),
		Ready:      sh.IsReady(),
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn("response encode failed", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	s.writeJSON(w, statusFor(code), errorResponse{Error: errorBody{
		Code:    string(code),
		Message: errors.UserMessage(err),
	}})
}

// statusFor maps the error taxonomy onto HTTP status codes.
func statusFor(code errors.Code) int {
	switch code {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidConfig,
		errors.ErrCodeInvalidDeck, errors.ErrCodeUnknownCommand:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeDeckNotFound, errors.ErrCodeShowNotFound:
		return http.StatusNotFound
	case errors.ErrCodeNotInitialized:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
