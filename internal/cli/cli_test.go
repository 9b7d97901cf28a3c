package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/slidekit/carousel/pkg/errors"
)

const sampleDeck = `title = "Launch Day"

[[slides]]
title = "Welcome"
body = "Doors open at 9."

[[slides]]
title = "Agenda"
body = "Keynote, demos, Q&A."
`

func TestRootCommandSubcommands(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	want := []string{"present", "serve", "inspect", "decks", "completion"}
	for _, name := range want {
		found := false
		for _, sub := range root.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("root command is missing subcommand %q", name)
		}
	}
}

func TestLoadDeckFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "launch.toml")
	if err := os.WriteFile(path, []byte(sampleDeck), 0o644); err != nil {
		t.Fatal(err)
	}

	c := New(io.Discard, LogInfo)
	d, err := c.loadDeck(context.Background(), path, t.TempDir())
	if err != nil {
		t.Fatalf("loadDeck() error: %v", err)
	}
	if d.Title != "Launch Day" || len(d.Slides) != 2 {
		t.Errorf("deck = %q with %d slides, want Launch Day with 2", d.Title, len(d.Slides))
	}
}

func TestLoadDeckMissing(t *testing.T) {
	c := New(io.Discard, LogInfo)
	_, err := c.loadDeck(context.Background(), "no-such-deck", t.TempDir())
	if errors.GetCode(err) != errors.ErrCodeDeckNotFound {
		t.Errorf("code = %v, want %v", errors.GetCode(err), errors.ErrCodeDeckNotFound)
	}
}

func TestExcerpt(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "short body unchanged", body: "hello world", want: "hello world"},
		{name: "newlines flattened", body: "line one\nline two", want: "line one line two"},
		{name: "empty body", body: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := excerpt(tt.body); got != tt.want {
				t.Errorf("excerpt(%q) = %q, want %q", tt.body, got, tt.want)
			}
		})
	}
}

func TestExcerptTruncates(t *testing.T) {
	long := ""
	for i := 0; i < 20; i++ {
		long += "abcdefghij "
	}
	got := excerpt(long)
	if len([]rune(got)) != bodyExcerptLen {
		t.Errorf("len(excerpt) = %d runes, want %d", len([]rune(got)), bodyExcerptLen)
	}
}
