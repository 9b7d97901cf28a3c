package show

import (
	"sort"
	"testing"

	"github.com/slidekit/carousel/pkg/errors"
)

// blankSurface is a surface without an identifier.
type blankSurface struct {
	*MemorySurface
}

func (blankSurface) ID() string { return "" }

func TestInitRejectsEmptySurfaceID(t *testing.T) {
	registry := NewRegistry(NewManualScheduler(), testLogger())

	_, err := registry.Init(blankSurface{NewMemorySurface(800, 600)}, DefaultConfig())
	if errors.GetCode(err) != errors.ErrCodeInvalidInput {
		t.Errorf("code = %v, want INVALID_INPUT", errors.GetCode(err))
	}
}

func TestDispatchCommands(t *testing.T) {
	registry, _, s := startShow(t, NewManualScheduler(), 5, paused())
	id := s.ID()

	steps := []struct {
		command     string
		args        []int
		wantIndex   int
		wantPlaying bool
	}{
		{command: CommandNext, wantIndex: 1},
		{command: CommandNext, wantIndex: 2},
		{command: CommandPrevious, wantIndex: 1},
		{command: CommandJump, args: []int{4}, wantIndex: 4},
		{command: CommandJump, args: []int{-1}, wantIndex: 4},
		{command: CommandPlay, wantIndex: 4, wantPlaying: true},
		{command: CommandPause, wantIndex: 4},
		{command: CommandPlayPause, wantIndex: 4, wantPlaying: true},
		{command: CommandPlayPause, wantIndex: 4},
	}

	for i, st := range steps {
		if err := registry.Dispatch(id, st.command, st.args...); err != nil {
			t.Fatalf("step %d: Dispatch(%s) error: %v", i, st.command, err)
		}
		if got := s.CurrentIndex(); got != st.wantIndex {
			t.Errorf("step %d (%s): index = %d, want %d", i, st.command, got, st.wantIndex)
		}
		if got := s.Playing(); got != st.wantPlaying {
			t.Errorf("step %d (%s): playing = %v, want %v", i, st.command, got, st.wantPlaying)
		}
	}

	if err := registry.Dispatch(id, CommandDestroy); err != nil {
		t.Fatalf("Dispatch(destroy) error: %v", err)
	}
	if registry.Len() != 0 {
		t.Errorf("Len() after destroy = %d, want 0", registry.Len())
	}
}

func TestDispatchJumpRequiresOneArgument(t *testing.T) {
	registry, _, s := startShow(t, NewManualScheduler(), 3, paused())

	for _, args := range [][]int{nil, {1, 2}} {
		err := registry.Dispatch(s.ID(), CommandJump, args...)
		if errors.GetCode(err) != errors.ErrCodeInvalidInput {
			t.Errorf("Dispatch(jump, %v) code = %v, want INVALID_INPUT", args, errors.GetCode(err))
		}
	}
}

func TestDispatchUnknownCommand(t *testing.T) {
	registry, _, s := startShow(t, NewManualScheduler(), 3, paused())

	// Unknown command names fail regardless of target.
	err := registry.Dispatch(s.ID(), "rewind")
	if errors.GetCode(err) != errors.ErrCodeUnknownCommand {
		t.Errorf("code for known target = %v, want UNKNOWN_COMMAND", errors.GetCode(err))
	}
	err = registry.Dispatch("no-such-surface", "rewind")
	if errors.GetCode(err) != errors.ErrCodeUnknownCommand {
		t.Errorf("code for missing target = %v, want UNKNOWN_COMMAND", errors.GetCode(err))
	}
}

func TestDispatchMissingShow(t *testing.T) {
	registry := NewRegistry(NewManualScheduler(), testLogger())

	for _, command := range []string{CommandNext, CommandPrevious, CommandPlay, CommandPlayPause} {
		err := registry.Dispatch("absent", command)
		if errors.GetCode(err) != errors.ErrCodeShowNotFound {
			t.Errorf("Dispatch(%s) code = %v, want SHOW_NOT_FOUND", command, errors.GetCode(err))
		}
	}
	err := registry.Dispatch("absent", CommandJump, 2)
	if errors.GetCode(err) != errors.ErrCodeShowNotFound {
		t.Errorf("Dispatch(jump) code = %v, want SHOW_NOT_FOUND", errors.GetCode(err))
	}

	// Pause and destroy are documented no-ops against absent targets.
	if err := registry.Dispatch("absent", CommandPause); err != nil {
		t.Errorf("Dispatch(pause) = %v, want nil", err)
	}
	if err := registry.Dispatch("absent", CommandDestroy); err != nil {
		t.Errorf("Dispatch(destroy) = %v, want nil", err)
	}
}

func TestRegistryIDsSorted(t *testing.T) {
	registry := NewRegistry(NewManualScheduler(), testLogger())

	for i := 0; i < 4; i++ {
		surface := NewMemorySurface(800, 600)
		surface.AddSlide(400, 300)
		if _, err := registry.Init(surface, paused()); err != nil {
			t.Fatal(err)
		}
	}

	ids := registry.IDs()
	if len(ids) != 4 {
		t.Fatalf("len(IDs()) = %d, want 4", len(ids))
	}
	if !sort.StringsAreSorted(ids) {
		t.Errorf("IDs() = %v, want sorted", ids)
	}
	for _, id := range ids {
		if _, ok := registry.Get(id); !ok {
			t.Errorf("Get(%q) should find the show", id)
		}
	}
}

func TestCommandsList(t *testing.T) {
	commands := Commands()
	if !sort.StringsAreSorted(commands) {
		t.Errorf("Commands() = %v, want sorted", commands)
	}
	if len(commands) != 7 {
		t.Errorf("len(Commands()) = %d, want 7", len(commands))
	}
	for _, name := range commands {
		if !knownCommand(name) {
			t.Errorf("Commands() lists %q but knownCommand rejects it", name)
		}
	}
}
