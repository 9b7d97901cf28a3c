// Package pkg provides the core libraries for the carousel slideshow runner.
//
// # Overview
//
// Carousel presents slide decks as cycling slideshows: exactly one slide is
// revealed at a time, navigation wraps at the ends, and an autoplay timer
// advances the deck until the viewer takes over. The pkg directory is
// organized into five areas:
//
//  1. [show] - The slideshow controller (state, commands, autoplay, reveal)
//  2. [deck] - The slide deck model and its storage backends
//  3. [remote] - Shared playback snapshots for remote control
//  4. [errors] - Structured error codes used across CLI and API
//  5. [observability] - Optional instrumentation hooks
//
// # Architecture
//
// The typical flow through carousel:
//
//	TOML deck document
//	         ↓
//	    [deck] package (parse, validate, store)
//	         ↓
//	    [show] package (attach to a surface, layout, reveal, autoplay)
//	         ↓
//	    terminal presenter / HTTP control API
//	         ↓
//	    [remote] package (playback snapshots for external pollers)
//
// # Quick Start
//
// Load a deck and run it on a headless surface:
//
//	import (
//	    "context"
//	    "github.com/slidekit/carousel/pkg/deck"
//	    "github.com/slidekit/carousel/pkg/show"
//	)
//
//	d, err := deck.Load("launch.toml")
//	if err != nil {
//	    return err
//	}
//
//	surface := show.NewMemorySurface(d.Options.CanvasSize())
//	for _, sl := range d.Slides {
//	    surface.AddSlide(sl.IntrinsicSize())
//	}
//
//	registry := show.NewRegistry(nil, nil)
//	s, err := registry.Init(surface, d.ShowConfig())
//	if err != nil {
//	    return err
//	}
//	surface.Load()
//	if err := s.Wait(context.Background()); err != nil {
//	    return err
//	}
//
//	s.Next()      // manual navigation pauses autoplay
//	s.PlayPause() // resume
//	s.Destroy()   // detach and clean up
//
// [show]: github.com/slidekit/carousel/pkg/show
// [deck]: github.com/slidekit/carousel/pkg/deck
// [remote]: github.com/slidekit/carousel/pkg/remote
// [errors]: github.com/slidekit/carousel/pkg/errors
// [observability]: github.com/slidekit/carousel/pkg/observability
package pkg
