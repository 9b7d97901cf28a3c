// Package deck defines the slide deck model: the content a show presents.
//
// A deck is an ordered sequence of slides plus per-deck playback options.
// Decks are stored as TOML documents:
//
//	title = "Launch Day"
//	author = "ops"
//
//	[options]
//	slide_time_ms = 4000
//	autostart = false
//
//	[[slides]]
//	title = "Welcome"
//	body = "Doors open at 9."
//
//	[[slides]]
//	title = "Agenda"
//	body = "Keynote, demos, Q&A."
//
// Options left unset fall back to the controller defaults (2.5s slide
// time, autostart and controls enabled, measured container size).
package deck

import (
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/slidekit/carousel/pkg/errors"
	"github.com/slidekit/carousel/pkg/show"
)

// Fallback dimensions for headless presentation, used when neither the
// deck nor the slide declares a size. Units are abstract pixels.
const (
	DefaultCanvasWidth  = 1024.0
	DefaultCanvasHeight = 768.0
)

// Deck is one presentable slide deck.
type Deck struct {
	Title   string  `toml:"title"`
	Author  string  `toml:"author,omitempty"`
	Options Options `toml:"options,omitempty"`
	Slides  []Slide `toml:"slides"`
}

// Options are per-deck playback settings. Zero/nil fields mean "use the
// controller default".
type Options struct {
	// Width and Height fix the canvas size for layout. Zero means
	// measured from the surface (headless surfaces use the canvas
	// fallback).
	Width  float64 `toml:"width,omitempty"`
	Height float64 `toml:"height,omitempty"`

	// SlideTimeMS is the autoplay interval in milliseconds.
	SlideTimeMS int `toml:"slide_time_ms,omitempty"`

	// Autostart begins autoplay right after initialization. Defaults to
	// true when unset.
	Autostart *bool `toml:"autostart,omitempty"`

	// Controls renders the previous/playpause/next block. Defaults to
	// true when unset.
	Controls *bool `toml:"controls,omitempty"`
}

// Slide is one displayed item.
type Slide struct {
	Title string `toml:"title,omitempty"`
	Body  string `toml:"body,omitempty"`

	// Width and Height declare the slide's intrinsic size for headless
	// presentation. Zero falls back to the canvas default.
	Width  float64 `toml:"width,omitempty"`
	Height float64 `toml:"height,omitempty"`
}

// IntrinsicSize returns the slide's declared size, falling back to the
// canvas defaults for headless surfaces.
func (s Slide) IntrinsicSize() (width, height float64) {
	width, height = s.Width, s.Height
	if width <= 0 {
		width = DefaultCanvasWidth
	}
	if height <= 0 {
		height = DefaultCanvasHeight
	}
	return width, height
}

// CanvasSize returns the deck's declared canvas size, falling back to the
// defaults for headless surfaces.
func (o Options) CanvasSize() (width, height float64) {
	width, height = o.Width, o.Height
	if width <= 0 {
		width = DefaultCanvasWidth
	}
	if height <= 0 {
		height = DefaultCanvasHeight
	}
	return width, height
}

// ShowConfig maps the deck's options onto a controller configuration,
// starting from the documented defaults. Surface measurement still wins
// for container size unless the deck pins Width/Height explicitly.
func (d *Deck) ShowConfig() show.Config {
	cfg := show.DefaultConfig()
	cfg.Width = d.Options.Width
	cfg.Height = d.Options.Height
	if d.Options.SlideTimeMS > 0 {
		cfg.SlideTime = millis(d.Options.SlideTimeMS)
	}
	if d.Options.Autostart != nil {
		cfg.Autostart = *d.Options.Autostart
	}
	if d.Options.Controls != nil {
		cfg.Controls = *d.Options.Controls
	}
	return cfg
}

func millis(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}

// Validate checks the deck for structural problems.
func (d *Deck) Validate() error {
	if d.Title == "" {
		return errors.New(errors.ErrCodeInvalidDeck, "deck has no title")
	}
	if d.Options.SlideTimeMS < 0 {
		return errors.New(errors.ErrCodeInvalidDeck, "slide_time_ms cannot be negative: %d", d.Options.SlideTimeMS)
	}
	if d.Options.Width < 0 || d.Options.Height < 0 {
		return errors.New(errors.ErrCodeInvalidDeck, "canvas size cannot be negative")
	}
	for i, s := range d.Slides {
		if s.Title == "" && s.Body == "" {
			return errors.New(errors.ErrCodeInvalidDeck, "slide %d has neither title nor body", i+1)
		}
		if s.Width < 0 || s.Height < 0 {
			return errors.New(errors.ErrCodeInvalidDeck, "slide %d has a negative size", i+1)
		}
	}
	return nil
}

// Parse decodes and validates a TOML deck document.
func Parse(data []byte) (*Deck, error) {
	var d Deck
	if err := toml.Unmarshal(data, &d); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDeck, err, "parse deck")
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

// Marshal encodes the deck as a TOML document.
func Marshal(d *Deck) ([]byte, error) {
	data, err := toml.Marshal(d)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode deck %q", d.Title)
	}
	return data, nil
}

// Load reads and parses a deck file from disk.
func Load(path string) (*Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeDeckNotFound, err, "deck file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeStore, err, "read deck file %s", path)
	}
	return Parse(data)
}
