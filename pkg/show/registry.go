package show

import (
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/slidekit/carousel/pkg/errors"
)

// Command names accepted by [Registry.Dispatch]. Initialization is not
// dispatchable by name since it needs a surface and a config; use
// [Registry.Init].
const (
	CommandNext      = "next"
	CommandPrevious  = "previous"
	CommandJump      = "jump"
	CommandPlay      = "play"
	CommandPause     = "pause"
	CommandPlayPause = "playpause"
	CommandDestroy   = "destroy"
)

// Registry owns the association from surface identity to show state. It
// is the only place show records live; surfaces carry no state of their
// own.
type Registry struct {
	sched  Scheduler
	logger *log.Logger

	mu    sync.Mutex
	shows map[string]*Show
}

// NewRegistry creates a registry. A nil scheduler selects the real-time
// TickerScheduler; a nil logger selects log.Default().
func NewRegistry(sched Scheduler, logger *log.Logger) *Registry {
	if sched == nil {
		sched = NewTickerScheduler()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Registry{
		sched:  sched,
		logger: logger,
		shows:  make(map[string]*Show),
	}
}

// Init attaches a show to the surface and schedules its deferred
// initialization. If the surface already has a show attached the call is
// a no-op and returns the existing show.
func (r *Registry) Init(surface Surface, cfg Config) (*Show, error) {
	id := surface.ID()
	if id == "" {
		return nil, errors.New(errors.ErrCodeInvalidInput, "surface has no identifier")
	}
	if err := cfg.normalize(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	if existing, ok := r.shows[id]; ok {
		r.mu.Unlock()
		return existing, nil
	}
	s := newShow(surface, cfg, r.sched, r.logger, r.remove)
	r.shows[id] = s
	r.mu.Unlock()

	r.logger.Debug("show registered", "show", id)
	go s.awaitReady()
	return s, nil
}

// Get returns the show attached to the surface with the given ID.
func (r *Registry) Get(id string) (*Show, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.shows[id]
	return s, ok
}

// IDs returns the identifiers of all attached shows, sorted.
func (r *Registry) IDs() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := make([]string, 0, len(r.shows))
	for id := range r.shows {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Len returns the number of attached shows.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.shows)
}

// remove detaches a show's state. Called by Show.Destroy.
func (r *Registry) remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.shows, id)
}

// Dispatch invokes a command by name against the show attached to the
// given surface ID. The jump command requires one argument, the target
// index; all other commands take none.
//
// An unrecognized command name is an ErrCodeUnknownCommand error
// regardless of target. Commands addressed to an unknown surface are an
// ErrCodeShowNotFound error, except pause and destroy, which are
// documented no-ops on uninitialized targets.
func (r *Registry) Dispatch(id, command string, args ...int) error {
	if !knownCommand(command) {
		return errors.New(errors.ErrCodeUnknownCommand, "unknown command: %q", command)
	}

	s, ok := r.Get(id)
	if !ok {
		if command == CommandPause || command == CommandDestroy {
			return nil
		}
		return errors.New(errors.ErrCodeShowNotFound, "no show attached to surface %q", id)
	}

	switch command {
	case CommandNext:
		return s.Next()
	case CommandPrevious:
		return s.Previous()
	case CommandJump:
		if len(args) != 1 {
			return errors.New(errors.ErrCodeInvalidInput, "jump requires exactly one index argument")
		}
		return s.Jump(args[0])
	case CommandPlay:
		return s.Play()
	case CommandPause:
		return s.Pause()
	case CommandPlayPause:
		return s.PlayPause()
	case CommandDestroy:
		return s.Destroy()
	}
	return errors.New(errors.ErrCodeUnknownCommand, "unknown command: %q", command)
}

// Commands returns the dispatchable command names, sorted.
func Commands() []string {
	return []string{
		CommandDestroy,
		CommandJump,
		CommandNext,
		CommandPause,
		CommandPlay,
		CommandPlayPause,
		CommandPrevious,
	}
}

func knownCommand(name string) bool {
	switch name {
	case CommandNext, CommandPrevious, CommandJump, CommandPlay,
		CommandPause, CommandPlayPause, CommandDestroy:
		return true
	}
	return false
}
