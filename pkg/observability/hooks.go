// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about show lifecycle changes and store operations.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the core library dependency-free from observability frameworks
//   - Allows different backends (OpenTelemetry, Prometheus, DataDog, etc.)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetShowHooks(&myShowHooks{})
//	    observability.SetStoreHooks(&myStoreHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Shows().OnReveal(showID, from, to)
//	observability.Stores().OnDeckLoad(name, slideCount, err)
package observability

import (
	"sync"
	"time"
)

// =============================================================================
// Show Hooks
// =============================================================================

// ShowHooks receives events from the slideshow controller.
type ShowHooks interface {
	// OnReady records a completed deferred initialization.
	OnReady(showID string, slideCount int)

	// OnReveal records a slide change.
	OnReveal(showID string, from, to int)

	// OnPlay records the start of autoplay.
	OnPlay(showID string, interval time.Duration)

	// OnPause records the end of autoplay.
	OnPause(showID string)

	// OnDestroy records a show teardown.
	OnDestroy(showID string)
}

// =============================================================================
// Store Hooks
// =============================================================================

// StoreHooks receives events from deck and snapshot storage backends.
type StoreHooks interface {
	// OnDeckLoad records a deck read (err is nil on success).
	OnDeckLoad(name string, slideCount int, err error)

	// OnDeckSave records a deck write.
	OnDeckSave(name string, err error)

	// OnSnapshotSave records a playback snapshot write.
	OnSnapshotSave(showID string, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopShowHooks is a no-op implementation of ShowHooks.
type NoopShowHooks struct{}

func (NoopShowHooks) OnReady(string, int)          {}
func (NoopShowHooks) OnReveal(string, int, int)    {}
func (NoopShowHooks) OnPlay(string, time.Duration) {}
func (NoopShowHooks) OnPause(string)               {}
func (NoopShowHooks) OnDestroy(string)             {}

// NoopStoreHooks is a no-op implementation of StoreHooks.
type NoopStoreHooks struct{}

func (NoopStoreHooks) OnDeckLoad(string, int, error) {}
func (NoopStoreHooks) OnDeckSave(string, error)      {}
func (NoopStoreHooks) OnSnapshotSave(string, error)  {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	showHooks  ShowHooks  = NoopShowHooks{}
	storeHooks StoreHooks = NoopStoreHooks{}
	hooksMu    sync.RWMutex
)

// SetShowHooks registers custom show hooks.
// This should be called once at application startup before any show is created.
func SetShowHooks(h ShowHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		showHooks = h
	}
}

// SetStoreHooks registers custom store hooks.
// This should be called once at application startup before any store operations.
func SetStoreHooks(h StoreHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		storeHooks = h
	}
}

// Shows returns the registered show hooks.
func Shows() ShowHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return showHooks
}

// Stores returns the registered store hooks.
func Stores() StoreHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return storeHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	showHooks = NoopShowHooks{}
	storeHooks = NoopStoreHooks{}
}
