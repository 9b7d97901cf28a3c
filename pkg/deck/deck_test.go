package deck

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/slidekit/carousel/pkg/errors"
)

const sampleDeck = `
title = "Launch Day"
author = "ops"

[options]
slide_time_ms = 4000
autostart = false

[[slides]]
title = "Welcome"
body = "Doors open at 9."

[[slides]]
title = "Agenda"
body = "Keynote, demos, Q&A."
width = 640
height = 480
`

func TestParse(t *testing.T) {
	d, err := Parse([]byte(sampleDeck))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	if d.Title != "Launch Day" {
		t.Errorf("Title = %q, want %q", d.Title, "Launch Day")
	}
	if len(d.Slides) != 2 {
		t.Fatalf("len(Slides) = %d, want 2", len(d.Slides))
	}
	if d.Options.SlideTimeMS != 4000 {
		t.Errorf("SlideTimeMS = %d, want 4000", d.Options.SlideTimeMS)
	}
	if d.Options.Autostart == nil || *d.Options.Autostart {
		t.Error("Autostart should be explicitly false")
	}
	if d.Options.Controls != nil {
		t.Error("Controls should be unset")
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"not toml", `{"title": "nope"}`},
		{"missing title", "[[slides]]\nbody = \"x\"\n"},
		{"empty slide", "title = \"t\"\n[[slides]]\n"},
		{"negative slide time", "title = \"t\"\n[options]\nslide_time_ms = -1\n[[slides]]\nbody = \"x\"\n"},
		{"negative slide size", "title = \"t\"\n[[slides]]\nbody = \"x\"\nwidth = -5.0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			if err == nil {
				t.Fatal("Parse() should fail")
			}
			if errors.GetCode(err) != errors.ErrCodeInvalidDeck {
				t.Errorf("code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidDeck)
			}
		})
	}
}

func TestShowConfig(t *testing.T) {
	d, err := Parse([]byte(sampleDeck))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	cfg := d.ShowConfig()
	if cfg.SlideTime != 4*time.Second {
		t.Errorf("SlideTime = %v, want %v", cfg.SlideTime, 4*time.Second)
	}
	if cfg.Autostart {
		t.Error("Autostart should be false (deck override)")
	}
	if !cfg.Controls {
		t.Error("Controls should default to true")
	}
	if cfg.Width != 0 || cfg.Height != 0 {
		t.Errorf("container size = %gx%g, want measured (0x0)", cfg.Width, cfg.Height)
	}
}

func TestShowConfigDefaults(t *testing.T) {
	d := &Deck{Title: "t", Slides: []Slide{{Body: "x"}}}
	cfg := d.ShowConfig()

	if cfg.SlideTime != 2500*time.Millisecond {
		t.Errorf("SlideTime = %v, want 2.5s default", cfg.SlideTime)
	}
	if !cfg.Autostart || !cfg.Controls {
		t.Error("Autostart and Controls should default to true")
	}
}

func TestIntrinsicSize(t *testing.T) {
	s := Slide{Body: "x"}
	w, h := s.IntrinsicSize()
	if w != DefaultCanvasWidth || h != DefaultCanvasHeight {
		t.Errorf("IntrinsicSize() = %gx%g, want canvas defaults", w, h)
	}

	s = Slide{Body: "x", Width: 640, Height: 480}
	w, h = s.IntrinsicSize()
	if w != 640 || h != 480 {
		t.Errorf("IntrinsicSize() = %gx%g, want 640x480", w, h)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	d, err := Parse([]byte(sampleDeck))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	data, err := Marshal(d)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	got, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse(Marshal()) error: %v", err)
	}
	if got.Title != d.Title || len(got.Slides) != len(d.Slides) {
		t.Errorf("round trip mismatch: %+v vs %+v", got, d)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "launch.toml")
	if err := os.WriteFile(path, []byte(sampleDeck), 0o644); err != nil {
		t.Fatal(err)
	}

	d, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if d.Title != "Launch Day" {
		t.Errorf("Title = %q, want %q", d.Title, "Launch Day")
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err == nil {
		t.Fatal("Load() should fail for a missing file")
	}
	if errors.GetCode(err) != errors.ErrCodeDeckNotFound {
		t.Errorf("code = %v, want %v", errors.GetCode(err), errors.ErrCodeDeckNotFound)
	}
}
