package show

// Layouter positions slides within the surface during deferred
// initialization. It runs exactly once per show, after measurement.
type Layouter interface {
	// LayoutSlides sizes and positions every slide and establishes the
	// initial visual state: slide 0 revealed, all others hidden.
	LayoutSlides(surface Surface, g Geometry)
}

// ControlsRenderer attaches the control block to the surface. It runs once
// per show, only when controls are enabled.
type ControlsRenderer interface {
	RenderControls(surface Surface, controls Controls)
}

// Revealer applies the visual swap between the outgoing and incoming
// slide. It is the only place visual reveal state changes after layout.
type Revealer interface {
	// Reveal hides the slide at old and reveals the slide at next. The
	// indices are already normalized into [0, len(g.Slides)); old and
	// next may be equal on single-slide shows.
	Reveal(g Geometry, old, next int)
}

// NewDefaultLayouter returns the default layout strategy: each slide keeps
// its measured size and is centered within the container, with offsets
// clamped at zero so oversized slides anchor to the top-left edge instead
// of being pushed off-screen.
func NewDefaultLayouter() Layouter {
	return defaultLayouter{}
}

type defaultLayouter struct{}

func (defaultLayouter) LayoutSlides(_ Surface, g Geometry) {
	for i, el := range g.Slides {
		size := g.Sizes[i]
		el.SetSize(size.Width, size.Height)
		el.SetOffset(
			centerOffset(g.Container.Width, size.Width),
			centerOffset(g.Container.Height, size.Height),
		)
		if i == 0 {
			el.SetOpacity(1)
			el.SetLayer(LayerRaised)
		} else {
			el.SetOpacity(0)
			el.SetLayer(LayerLowered)
		}
	}
}

// centerOffset centers a slide span inside the container span. The result
// is clamped at zero so a slide larger than the container is never pushed
// in the negative direction.
func centerOffset(container, slide float64) float64 {
	offset := (container - slide) / 2
	if offset < 0 {
		return 0
	}
	return offset
}

// NewDefaultControlsRenderer returns the default control-rendering
// strategy, which mounts the control block directly on the surface.
func NewDefaultControlsRenderer() ControlsRenderer {
	return defaultControlsRenderer{}
}

type defaultControlsRenderer struct{}

func (defaultControlsRenderer) RenderControls(surface Surface, controls Controls) {
	surface.MountControls(controls)
}

// NewDefaultRevealer returns the default reveal strategy: an instantaneous
// opacity and stacking swap, no animation.
func NewDefaultRevealer() Revealer {
	return defaultRevealer{}
}

type defaultRevealer struct{}

func (defaultRevealer) Reveal(g Geometry, old, next int) {
	if old != next && old >= 0 && old < len(g.Slides) {
		g.Slides[old].SetOpacity(0)
		g.Slides[old].SetLayer(LayerLowered)
	}
	incoming := g.Slides[next]
	incoming.SetOpacity(1)
	incoming.SetLayer(LayerRaised)
}

// wrapIndex normalizes i into [0, n) using true modulo, so negative
// indices wrap around from the end rather than producing a negative
// remainder.
func wrapIndex(i, n int) int {
	if n <= 0 {
		return 0
	}
	return ((i % n) + n) % n
}
