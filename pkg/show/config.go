package show

import (
	"time"

	"github.com/slidekit/carousel/pkg/errors"
)

// DefaultSlideTime is the autoplay interval used when none is configured.
const DefaultSlideTime = 2500 * time.Millisecond

// Config controls how a show is initialized and how it behaves.
//
// The zero value is not useful; start from DefaultConfig so the documented
// defaults (autostart on, controls on, 2.5s slide time) apply, then
// override individual fields.
type Config struct {
	// Width fixes the container width used for layout. When 0 the width
	// is measured from the surface once it is ready.
	Width float64

	// Height fixes the container height used for layout. When 0 the
	// height is measured from the surface once it is ready.
	Height float64

	// SlideTime is the autoplay interval. When 0, DefaultSlideTime is
	// used; negative values are rejected.
	SlideTime time.Duration

	// Autostart begins autoplay immediately after initialization when the
	// show has more than one slide.
	Autostart bool

	// Controls renders the previous/playpause/next control block onto the
	// surface after initialization.
	Controls bool

	// Layout replaces the default slide-layout strategy (centered within
	// the container, offsets clamped at zero, only the first slide
	// revealed). Nil selects the default.
	Layout Layouter

	// ControlsRenderer replaces the default control-rendering strategy.
	// Nil selects the default, which mounts the control block directly on
	// the surface.
	ControlsRenderer ControlsRenderer

	// Reveal replaces the default reveal strategy (opacity and stacking
	// swap). Nil selects the default.
	Reveal Revealer

	// Observer, when set, receives an Event after every externally
	// visible state change: ready, reveal, play, pause, destroy. Called
	// outside the show's internal lock, so it may call back into the
	// show; it must not block for long, since it runs on the mutating
	// goroutine (including timer ticks).
	Observer func(Event)
}

// DefaultConfig returns the documented default configuration: measured
// container size, 2.5s slide time, autostart and controls enabled, default
// strategies.
func DefaultConfig() Config {
	return Config{
		SlideTime: DefaultSlideTime,
		Autostart: true,
		Controls:  true,
	}
}

// normalize fills unset strategy fields with the defaults and validates
// scalar options.
func (c *Config) normalize() error {
	if c.SlideTime < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "slide time cannot be negative: %s", c.SlideTime)
	}
	if c.SlideTime == 0 {
		c.SlideTime = DefaultSlideTime
	}
	if c.Width < 0 || c.Height < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "container size cannot be negative: %gx%g", c.Width, c.Height)
	}
	if c.Layout == nil {
		c.Layout = NewDefaultLayouter()
	}
	if c.ControlsRenderer == nil {
		c.ControlsRenderer = NewDefaultControlsRenderer()
	}
	if c.Reveal == nil {
		c.Reveal = NewDefaultRevealer()
	}
	return nil
}
