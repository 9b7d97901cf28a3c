package observability

import (
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	// Show hooks
	s := NoopShowHooks{}
	s.OnReady("show-1", 3)
	s.OnReveal("show-1", 0, 1)
	s.OnPlay("show-1", time.Second)
	s.OnPause("show-1")
	s.OnDestroy("show-1")

	// Store hooks
	st := NoopStoreHooks{}
	st.OnDeckLoad("launch", 3, nil)
	st.OnDeckSave("launch", nil)
	st.OnSnapshotSave("show-1", nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	// Verify defaults are noop
	if _, ok := Shows().(NoopShowHooks); !ok {
		t.Error("Shows() should return NoopShowHooks by default")
	}
	if _, ok := Stores().(NoopStoreHooks); !ok {
		t.Error("Stores() should return NoopStoreHooks by default")
	}

	// Set custom hooks
	customShow := &testShowHooks{}
	SetShowHooks(customShow)
	if Shows() != customShow {
		t.Error("SetShowHooks should set custom hooks")
	}

	customStore := &testStoreHooks{}
	SetStoreHooks(customStore)
	if Stores() != customStore {
		t.Error("SetStoreHooks should set custom hooks")
	}

	// Reset and verify
	Reset()
	if _, ok := Shows().(NoopShowHooks); !ok {
		t.Error("Reset() should restore NoopShowHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testShowHooks{}
	SetShowHooks(custom)

	// Setting nil should be ignored
	SetShowHooks(nil)

	if Shows() != custom {
		t.Error("SetShowHooks(nil) should be ignored")
	}

	Reset()
}

// Test implementations
type testShowHooks struct{ NoopShowHooks }
type testStoreHooks struct{ NoopStoreHooks }
