package show

import "testing"

func TestWrapIndex(t *testing.T) {
	tests := []struct {
		name string
		i    int
		n    int
		want int
	}{
		{name: "in range", i: 2, n: 5, want: 2},
		{name: "zero", i: 0, n: 5, want: 0},
		{name: "wraps past end", i: 5, n: 5, want: 0},
		{name: "wraps far past end", i: 12, n: 5, want: 2},
		{name: "negative wraps from end", i: -1, n: 5, want: 4},
		{name: "far negative", i: -7, n: 5, want: 3},
		{name: "no slides", i: 3, n: 0, want: 0},
		{name: "single slide", i: -9, n: 1, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := wrapIndex(tt.i, tt.n); got != tt.want {
				t.Errorf("wrapIndex(%d, %d) = %d, want %d", tt.i, tt.n, got, tt.want)
			}
		})
	}
}

func TestCenterOffset(t *testing.T) {
	tests := []struct {
		name      string
		container float64
		slide     float64
		want      float64
	}{
		{name: "slide smaller", container: 100, slide: 60, want: 20},
		{name: "exact fit", container: 100, slide: 100, want: 0},
		{name: "slide larger clamps to zero", container: 100, slide: 140, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := centerOffset(tt.container, tt.slide); got != tt.want {
				t.Errorf("centerOffset(%g, %g) = %g, want %g", tt.container, tt.slide, got, tt.want)
			}
		})
	}
}

func TestDefaultLayouter(t *testing.T) {
	surface := NewMemorySurface(800, 600)
	small := surface.AddSlide(400, 300)
	tall := surface.AddSlide(200, 900)

	g := Geometry{
		Container: Size{Width: 800, Height: 600},
		Slides:    surface.Slides(),
		Sizes:     []Size{{Width: 400, Height: 300}, {Width: 200, Height: 900}},
	}
	NewDefaultLayouter().LayoutSlides(surface, g)

	if x, y := small.Offset(); x != 200 || y != 150 {
		t.Errorf("small offset = (%g, %g), want (200, 150)", x, y)
	}
	// The oversized dimension anchors at the edge instead of going
	// negative.
	if x, y := tall.Offset(); x != 300 || y != 0 {
		t.Errorf("tall offset = (%g, %g), want (300, 0)", x, y)
	}

	if w, h := small.BoxSize(); w != 400 || h != 300 {
		t.Errorf("small box = (%g, %g), want measured size", w, h)
	}

	// Only the first slide is revealed.
	if small.Opacity() != 1 || small.Layer() != LayerRaised {
		t.Errorf("slide 0 = opacity %g layer %d, want revealed", small.Opacity(), small.Layer())
	}
	if tall.Opacity() != 0 || tall.Layer() != LayerLowered {
		t.Errorf("slide 1 = opacity %g layer %d, want hidden", tall.Opacity(), tall.Layer())
	}
}

func TestDefaultRevealer(t *testing.T) {
	surface := NewMemorySurface(800, 600)
	a := surface.AddSlide(100, 100)
	b := surface.AddSlide(100, 100)
	g := Geometry{Slides: surface.Slides()}

	a.SetOpacity(1)
	a.SetLayer(LayerRaised)

	NewDefaultRevealer().Reveal(g, 0, 1)

	if a.Opacity() != 0 || a.Layer() != LayerLowered {
		t.Errorf("outgoing = opacity %g layer %d, want hidden", a.Opacity(), a.Layer())
	}
	if b.Opacity() != 1 || b.Layer() != LayerRaised {
		t.Errorf("incoming = opacity %g layer %d, want revealed", b.Opacity(), b.Layer())
	}
}

func TestDefaultRevealerSameIndex(t *testing.T) {
	surface := NewMemorySurface(800, 600)
	a := surface.AddSlide(100, 100)
	g := Geometry{Slides: surface.Slides()}

	NewDefaultRevealer().Reveal(g, 0, 0)

	if a.Opacity() != 1 || a.Layer() != LayerRaised {
		t.Errorf("slide = opacity %g layer %d, want revealed", a.Opacity(), a.Layer())
	}
}
