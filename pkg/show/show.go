// Package show implements the slideshow controller: per-surface state,
// deferred initialization, navigation commands, and the autoplay timer.
//
// A show attaches to a [Surface] (a container with slide [Element]s) and
// owns the full widget lifecycle: measurement and layout once the surface
// reports ready, optional control rendering, reveal of exactly one slide
// at a time, and a cancellable repeating autoplay timer.
//
// # Architecture
//
// State lives in a [Show] record owned by a [Registry] keyed by surface
// ID; nothing is attached to the elements themselves. The visual steps
// (layout, control rendering, reveal) are strategies with default
// implementations, overridable via [Config]. Timing is abstracted behind
// [Scheduler] so tests drive the autoplay clock deterministically.
//
// # Usage
//
//	registry := show.NewRegistry(nil, logger)
//	s, err := registry.Init(surface, show.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//	if err := s.Wait(ctx); err != nil {
//	    return err
//	}
//	s.Next()     // pauses autoplay, reveals the following slide
//	s.PlayPause()
//	s.Destroy()
//
// # Concurrency
//
// Every command runs to completion under the show's internal lock; timer
// ticks serialize through the same lock, so a command and a tick never
// interleave mid-mutation. Manual navigation always pauses autoplay first
// and autoplay never resumes on its own.
package show

import (
	"context"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/slidekit/carousel/pkg/errors"
	"github.com/slidekit/carousel/pkg/observability"
)

// Show is the controller state for one surface. All exported methods are
// safe for concurrent use.
type Show struct {
	id      string
	surface Surface
	cfg     Config
	sched   Scheduler
	logger  *log.Logger
	detach  func(id string)

	mu        sync.Mutex
	geo       Geometry
	current   int
	timer     Handle
	gen       uint64
	ready     bool
	destroyed bool

	readyCh   chan struct{}
	destroyCh chan struct{}
}

func newShow(surface Surface, cfg Config, sched Scheduler, logger *log.Logger, detach func(string)) *Show {
	return &Show{
		id:        surface.ID(),
		surface:   surface,
		cfg:       cfg,
		sched:     sched,
		logger:    logger,
		detach:    detach,
		readyCh:   make(chan struct{}),
		destroyCh: make(chan struct{}),
	}
}

// awaitReady is the one-time deferred continuation: it waits for the
// surface's load-completion signal and then performs measurement, layout,
// control rendering, and autostart. It closes over this show only, so
// concurrent initializations of other surfaces cannot interfere.
func (s *Show) awaitReady() {
	select {
	case <-s.surface.Ready():
		s.complete()
	case <-s.destroyCh:
	}
}

func (s *Show) complete() {
	s.mu.Lock()
	if s.destroyed {
		s.mu.Unlock()
		return
	}

	slides := s.surface.Slides()
	sizes := make([]Size, len(slides))
	for i, el := range slides {
		w, h := el.Measure()
		sizes[i] = Size{Width: w, Height: h}
	}

	// Explicitly configured container dimensions win over measurement.
	cw, ch := s.cfg.Width, s.cfg.Height
	if cw == 0 || ch == 0 {
		mw, mh := s.surface.Size()
		if cw == 0 {
			cw = mw
		}
		if ch == 0 {
			ch = mh
		}
	}

	s.geo = Geometry{
		Container: Size{Width: cw, Height: ch},
		Slides:    slides,
		Sizes:     sizes,
	}
	s.current = 0

	s.cfg.Layout.LayoutSlides(s.surface, s.geo)
	if s.cfg.Controls {
		s.cfg.ControlsRenderer.RenderControls(s.surface, Controls{
			Previous: s.Previous,
			Toggle:   s.PlayPause,
			Next:     s.Next,
		})
	}
	s.surface.AddMarker(MarkerInitialized)
	s.ready = true

	observability.Shows().OnReady(s.id, len(slides))
	s.logger.Debug("show ready", "show", s.id, "slides", len(slides), "container", s.geo.Container)

	events := []Event{{Type: EventReady, ShowID: s.id, Index: 0, Playing: false}}
	if s.cfg.Autostart && len(slides) > 1 {
		events = append(events, s.playLocked())
	}
	s.mu.Unlock()

	// Deliver the ready events before releasing waiters, so anyone
	// returning from Wait observes a fully announced show.
	s.notify(events...)
	close(s.readyCh)
}

// ID returns the show's stable identifier (the surface ID).
func (s *Show) ID() string {
	return s.id
}

// Surface returns the surface this show is attached to.
func (s *Show) Surface() Surface {
	return s.surface
}

// Config returns the resolved configuration.
func (s *Show) Config() Config {
	return s.cfg
}

// IsReady reports whether deferred initialization has completed.
func (s *Show) IsReady() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ready
}

// Wait blocks until deferred initialization completes, the show is
// destroyed, or ctx is done.
func (s *Show) Wait(ctx context.Context) error {
	select {
	case <-s.readyCh:
		return nil
	case <-s.destroyCh:
		return errors.New(errors.ErrCodeNotInitialized, "show %s destroyed before initialization completed", s.id)
	case <-ctx.Done():
		return ctx.Err()
	}
}

// CurrentIndex returns the index of the revealed slide.
func (s *Show) CurrentIndex() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// SlideCount returns the number of slides, or 0 before initialization
// completes.
func (s *Show) SlideCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.geo.Slides)
}

// Playing reports whether the autoplay timer is running.
func (s *Show) Playing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timer != nil
}

// Next reveals the following slide, wrapping past the last one. If
// autoplay is running it is paused first and does not resume.
func (s *Show) Next() error {
	return s.navigate(func(current, count int) int { return current + 1 })
}

// Previous reveals the preceding slide, wrapping before the first one. If
// autoplay is running it is paused first and does not resume.
func (s *Show) Previous() error {
	return s.navigate(func(current, count int) int { return current + count - 1 })
}

// Jump reveals the slide at index n. Any integer is accepted: n is
// normalized with true modulo, so negative indices wrap from the end. If
// autoplay is running it is paused first and does not resume.
func (s *Show) Jump(n int) error {
	return s.navigate(func(current, count int) int { return n })
}

func (s *Show) navigate(target func(current, count int) int) error {
	s.mu.Lock()
	if err := s.ensureReadyLocked(); err != nil {
		s.mu.Unlock()
		return err
	}
	count := len(s.geo.Slides)
	if count == 0 {
		s.mu.Unlock()
		return nil
	}

	var events []Event
	if ev, ok := s.pauseLocked(); ok {
		events = append(events, ev)
	}
	events = append(events, s.revealLocked(wrapIndex(target(s.current, count), count)))
	s.mu.Unlock()

	s.notify(events...)
	return nil
}

// Play starts the autoplay timer. Calling Play while already playing is a
// no-op, as is playing a show with fewer than two slides.
func (s *Show) Play() error {
	s.mu.Lock()
	if err := s.ensureReadyLocked(); err != nil {
		s.mu.Unlock()
		return err
	}
	if s.timer != nil || len(s.geo.Slides) <= 1 {
		s.mu.Unlock()
		return nil
	}
	ev := s.playLocked()
	s.mu.Unlock()

	s.notify(ev)
	return nil
}

// Pause cancels the autoplay timer. Pausing a show that is not playing
// (or not initialized) is a no-op.
func (s *Show) Pause() error {
	s.mu.Lock()
	ev, ok := s.pauseLocked()
	s.mu.Unlock()

	if ok {
		s.notify(ev)
	}
	return nil
}

// PlayPause pauses the show if playing, otherwise starts autoplay.
func (s *Show) PlayPause() error {
	s.mu.Lock()
	if err := s.ensureReadyLocked(); err != nil {
		s.mu.Unlock()
		return err
	}

	var events []Event
	if ev, ok := s.pauseLocked(); ok {
		events = append(events, ev)
	} else if len(s.geo.Slides) > 1 {
		events = append(events, s.playLocked())
	}
	s.mu.Unlock()

	s.notify(events...)
	return nil
}

// Destroy cancels any running timer, removes markers and rendered
// controls, and detaches the show's state from its registry. The surface
// returns to uninitialized; a subsequent Init fully reinitializes it.
// Destroying an already destroyed show is a no-op.
func (s *Show) Destroy() error {
	s.mu.Lock()
	if s.destroyed {
		s.mu.Unlock()
		return nil
	}
	s.destroyed = true

	var events []Event
	if ev, ok := s.pauseLocked(); ok {
		events = append(events, ev)
	}
	if s.ready {
		s.surface.RemoveMarker(MarkerInitialized)
		s.surface.UnmountControls()
	}
	close(s.destroyCh)
	events = append(events, Event{Type: EventDestroy, ShowID: s.id, Index: s.current, Playing: false})
	detach := s.detach
	s.mu.Unlock()

	if detach != nil {
		detach(s.id)
	}
	observability.Shows().OnDestroy(s.id)
	s.logger.Debug("show destroyed", "show", s.id)

	s.notify(events...)
	return nil
}

// tick advances to the next slide on behalf of the autoplay timer. The
// generation guards against a tick that was already in flight when the
// timer was cancelled (or restarted) from another goroutine.
func (s *Show) tick(gen uint64) {
	s.mu.Lock()
	if s.destroyed || s.timer == nil || s.gen != gen {
		s.mu.Unlock()
		return
	}
	ev := s.revealLocked(wrapIndex(s.current+1, len(s.geo.Slides)))
	s.mu.Unlock()

	s.notify(ev)
}

// revealLocked is the sole mutator of the current index and the only
// place visual reveal state changes after layout.
func (s *Show) revealLocked(next int) Event {
	old := s.current
	s.cfg.Reveal.Reveal(s.geo, old, next)
	s.current = next

	observability.Shows().OnReveal(s.id, old, next)
	s.logger.Debug("reveal", "show", s.id, "from", old, "to", next)

	return Event{Type: EventReveal, ShowID: s.id, Index: next, Playing: s.timer != nil}
}

func (s *Show) playLocked() Event {
	s.gen++
	gen := s.gen
	s.surface.AddMarker(MarkerPlaying)
	s.timer = s.sched.Every(s.cfg.SlideTime, func() { s.tick(gen) })

	observability.Shows().OnPlay(s.id, s.cfg.SlideTime)
	s.logger.Debug("autoplay started", "show", s.id, "interval", s.cfg.SlideTime)

	return Event{Type: EventPlay, ShowID: s.id, Index: s.current, Playing: true}
}

func (s *Show) pauseLocked() (Event, bool) {
	if s.timer == nil {
		return Event{}, false
	}
	s.timer.Stop()
	s.timer = nil
	s.surface.RemoveMarker(MarkerPlaying)

	observability.Shows().OnPause(s.id)
	s.logger.Debug("autoplay paused", "show", s.id)

	return Event{Type: EventPause, ShowID: s.id, Index: s.current, Playing: false}, true
}

func (s *Show) ensureReadyLocked() error {
	if s.destroyed {
		return errors.New(errors.ErrCodeNotInitialized, "show %s has been destroyed", s.id)
	}
	if !s.ready {
		return errors.New(errors.ErrCodeNotInitialized, "show %s has not completed initialization", s.id)
	}
	return nil
}

// notify delivers events to the configured observer outside the show's
// internal lock.
func (s *Show) notify(events ...Event) {
	if s.cfg.Observer == nil {
		return
	}
	for _, ev := range events {
		s.cfg.Observer(ev)
	}
}
