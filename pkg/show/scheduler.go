package show

import (
	"sync"
	"time"
)

// Handle is a running repeating-callback registration.
type Handle interface {
	// Stop cancels the registration. Stop is idempotent and returns
	// synchronously; after it returns no new tick is started (a tick
	// already blocked on the show's lock is discarded by the show via its
	// generation check).
	Stop()
}

// Scheduler produces cancellable repeating callbacks. The controller uses
// one scheduler per registry; shows obtain a fresh handle each time
// autoplay starts.
type Scheduler interface {
	// Every invokes tick repeatedly at the given interval until the
	// returned handle is stopped.
	Every(interval time.Duration, tick func()) Handle
}

// =============================================================================
// TickerScheduler - production scheduler
// =============================================================================

// TickerScheduler runs callbacks on real time using one goroutine per
// handle.
type TickerScheduler struct{}

// NewTickerScheduler creates a real-time scheduler.
func NewTickerScheduler() *TickerScheduler {
	return &TickerScheduler{}
}

// Every starts a goroutine that invokes tick at the given interval.
func (s *TickerScheduler) Every(interval time.Duration, tick func()) Handle {
	if interval <= 0 {
		interval = DefaultSlideTime
	}

	h := &tickerHandle{done: make(chan struct{})}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-h.done:
				return
			case <-ticker.C:
				// Re-check before firing so a Stop that raced the ticker
				// wins.
				select {
				case <-h.done:
					return
				default:
				}
				tick()
			}
		}
	}()
	return h
}

type tickerHandle struct {
	done chan struct{}
	once sync.Once
}

func (h *tickerHandle) Stop() {
	h.once.Do(func() { close(h.done) })
}

// Ensure TickerScheduler implements Scheduler.
var _ Scheduler = (*TickerScheduler)(nil)

// =============================================================================
// ManualScheduler - deterministic scheduler for tests
// =============================================================================

// ManualScheduler runs callbacks on a virtual clock advanced explicitly by
// the caller. Ticks fire synchronously inside Advance, in due order, which
// makes timer-driven behavior fully deterministic in tests.
type ManualScheduler struct {
	mu    sync.Mutex
	now   time.Duration
	tasks []*manualTask
}

type manualTask struct {
	interval time.Duration
	next     time.Duration
	tick     func()
	stopped  bool
}

// NewManualScheduler creates a virtual-time scheduler starting at zero.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// Every registers a repeating task due first at now+interval.
func (s *ManualScheduler) Every(interval time.Duration, tick func()) Handle {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := &manualTask{
		interval: interval,
		next:     s.now + interval,
		tick:     tick,
	}
	s.tasks = append(s.tasks, t)
	return &manualHandle{sched: s, task: t}
}

// Advance moves the virtual clock forward by d, firing every due tick in
// order. Ticks run without the scheduler lock held, so they may stop their
// own handle (pause) or register new ones (play).
func (s *ManualScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	target := s.now + d
	for {
		t := s.nextDueLocked(target)
		if t == nil {
			break
		}
		s.now = t.next
		t.next += t.interval
		tick := t.tick
		s.mu.Unlock()
		tick()
		s.mu.Lock()
	}
	s.now = target
	s.mu.Unlock()
}

// nextDueLocked returns the earliest active task due at or before target,
// or nil when none is due.
func (s *ManualScheduler) nextDueLocked(target time.Duration) *manualTask {
	var due *manualTask
	for _, t := range s.tasks {
		if t.stopped || t.next > target {
			continue
		}
		if due == nil || t.next < due.next {
			due = t
		}
	}
	return due
}

// Active returns the number of running (not stopped) tasks.
func (s *ManualScheduler) Active() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, t := range s.tasks {
		if !t.stopped {
			n++
		}
	}
	return n
}

type manualHandle struct {
	sched *ManualScheduler
	task  *manualTask
}

func (h *manualHandle) Stop() {
	h.sched.mu.Lock()
	defer h.sched.mu.Unlock()
	h.task.stopped = true
}

// Ensure ManualScheduler implements Scheduler.
var _ Scheduler = (*ManualScheduler)(nil)
