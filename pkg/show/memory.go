package show

import (
	"sync"

	"github.com/google/uuid"
)

// MemorySurface is a headless in-memory Surface. The HTTP control server
// runs shows on it, and tests use it as a fake: every style mutation the
// controller performs is recorded and can be inspected.
//
// A memory surface has no real assets to load; call Load to fire the
// ready signal once all slides have been added.
type MemorySurface struct {
	id     string
	width  float64
	height float64

	mu       sync.Mutex
	slides   []*MemoryElement
	markers  map[string]struct{}
	controls *Controls

	ready    chan struct{}
	loadOnce sync.Once
}

// NewMemorySurface creates a headless surface with the given container
// size and a generated unique ID.
func NewMemorySurface(width, height float64) *MemorySurface {
	return &MemorySurface{
		id:      uuid.NewString(),
		width:   width,
		height:  height,
		markers: make(map[string]struct{}),
		ready:   make(chan struct{}),
	}
}

// AddSlide appends a slide with the given intrinsic size. Slides must be
// added before Load is called.
func (m *MemorySurface) AddSlide(width, height float64) *MemoryElement {
	m.mu.Lock()
	defer m.mu.Unlock()

	el := &MemoryElement{intrinsicW: width, intrinsicH: height}
	m.slides = append(m.slides, el)
	return el
}

// Load fires the ready signal, standing in for the host environment's
// "all assets loaded" event. Load is idempotent.
func (m *MemorySurface) Load() {
	m.loadOnce.Do(func() { close(m.ready) })
}

// ID returns the surface's generated identifier.
func (m *MemorySurface) ID() string { return m.id }

// Size returns the configured container size.
func (m *MemorySurface) Size() (width, height float64) { return m.width, m.height }

// Slides returns the slide elements in display order.
func (m *MemorySurface) Slides() []Element {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]Element, len(m.slides))
	for i, el := range m.slides {
		out[i] = el
	}
	return out
}

// Ready returns the channel closed by Load.
func (m *MemorySurface) Ready() <-chan struct{} { return m.ready }

// AddMarker records a status marker.
func (m *MemorySurface) AddMarker(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.markers[name] = struct{}{}
}

// RemoveMarker removes a status marker.
func (m *MemorySurface) RemoveMarker(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.markers, name)
}

// HasMarker reports whether the marker is currently set.
func (m *MemorySurface) HasMarker(name string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.markers[name]
	return ok
}

// MountControls stores the mounted control block.
func (m *MemorySurface) MountControls(controls Controls) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.controls = &controls
}

// UnmountControls removes the control block.
func (m *MemorySurface) UnmountControls() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.controls = nil
}

// MountedControls returns the mounted control block, if any.
func (m *MemorySurface) MountedControls() (Controls, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.controls == nil {
		return Controls{}, false
	}
	return *m.controls, true
}

// Ensure MemorySurface implements Surface.
var _ Surface = (*MemorySurface)(nil)

// MemoryElement is the slide handle of a MemorySurface. It records every
// style assignment made by the controller.
type MemoryElement struct {
	mu         sync.Mutex
	intrinsicW float64
	intrinsicH float64
	width      float64
	height     float64
	x          float64
	y          float64
	opacity    float64
	layer      int
}

// Measure returns the slide's intrinsic size.
func (e *MemoryElement) Measure() (width, height float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.intrinsicW, e.intrinsicH
}

// SetSize records the slide's box size.
func (e *MemoryElement) SetSize(width, height float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.width, e.height = width, height
}

// SetOffset records the slide's position.
func (e *MemoryElement) SetOffset(x, y float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.x, e.y = x, y
}

// SetOpacity records the slide's visibility.
func (e *MemoryElement) SetOpacity(opacity float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.opacity = opacity
}

// SetLayer records the slide's stacking order.
func (e *MemoryElement) SetLayer(layer int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.layer = layer
}

// BoxSize returns the last size set by the controller.
func (e *MemoryElement) BoxSize() (width, height float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.width, e.height
}

// Offset returns the last position set by the controller.
func (e *MemoryElement) Offset() (x, y float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.x, e.y
}

// Opacity returns the last visibility set by the controller.
func (e *MemoryElement) Opacity() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.opacity
}

// Layer returns the last stacking order set by the controller.
func (e *MemoryElement) Layer() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.layer
}

// Ensure MemoryElement implements Element.
var _ Element = (*MemoryElement)(nil)
