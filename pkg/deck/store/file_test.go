package store

import (
	"context"
	"testing"

	"github.com/slidekit/carousel/pkg/deck"
	"github.com/slidekit/carousel/pkg/errors"
)

func testDeck(title string) *deck.Deck {
	return &deck.Deck{
		Title: title,
		Slides: []deck.Slide{
			{Title: "one", Body: "first"},
			{Title: "two", Body: "second"},
		},
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore() error: %v", err)
	}
	defer s.Close()

	if err := s.Put(ctx, "launch", testDeck("Launch Day")); err != nil {
		t.Fatalf("Put() error: %v", err)
	}

	got, err := s.Get(ctx, "launch")
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if got.Title != "Launch Day" {
		t.Errorf("Title = %q, want %q", got.Title, "Launch Day")
	}
	if len(got.Slides) != 2 {
		t.Errorf("len(Slides) = %d, want 2", len(got.Slides))
	}
}

func TestFileStoreList(t *testing.T) {
	ctx := context.Background()
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	for _, name := range []string{"zebra", "alpha", "mid"} {
		if err := s.Put(ctx, name, testDeck(name)); err != nil {
			t.Fatalf("Put(%q) error: %v", name, err)
		}
	}

	names, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	want := []string{"alpha", "mid", "zebra"}
	if len(names) != len(want) {
		t.Fatalf("List() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("List()[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestFileStoreGetMissing(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	_, err = s.Get(context.Background(), "missing")
	if errors.GetCode(err) != errors.ErrCodeDeckNotFound {
		t.Errorf("Get() code = %v, want %v", errors.GetCode(err), errors.ErrCodeDeckNotFound)
	}
}

func TestFileStoreDelete(t *testing.T) {
	ctx := context.Background()
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	if err := s.Put(ctx, "launch", testDeck("Launch Day")); err != nil {
		t.Fatal(err)
	}
	if err := s.Delete(ctx, "launch"); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if _, err := s.Get(ctx, "launch"); errors.GetCode(err) != errors.ErrCodeDeckNotFound {
		t.Error("deck should be gone after Delete")
	}

	// Deleting a missing deck is a no-op.
	if err := s.Delete(ctx, "launch"); err != nil {
		t.Errorf("Delete() of missing deck should be nil, got %v", err)
	}
}

func TestFileStoreRejectsBadNames(t *testing.T) {
	ctx := context.Background()
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	for _, name := range []string{"", "../escape", "a/b"} {
		if err := s.Put(ctx, name, testDeck("x")); err == nil {
			t.Errorf("Put(%q) should fail", name)
		}
		if _, err := s.Get(ctx, name); err == nil {
			t.Errorf("Get(%q) should fail", name)
		}
	}
}
