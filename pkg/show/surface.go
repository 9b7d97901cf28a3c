package show

// Marker names applied to a surface to signal controller status to the
// embedding environment (styling hooks, external scripts, tests).
const (
	// MarkerInitialized is added once deferred initialization has completed.
	MarkerInitialized = "carousel-active"

	// MarkerPlaying is present while the autoplay timer is running.
	MarkerPlaying = "carousel-playing"
)

// Stacking layers used by the default reveal strategy. The raised value
// must exceed the lowered value so the incoming slide sits above the
// outgoing one during any overlap.
const (
	LayerRaised  = 2
	LayerLowered = 1
)

// Element is the handle to a single slide inside a surface.
//
// The controller never creates elements; it only measures them once during
// deferred initialization and mutates their visual state afterwards.
// Implementations are provided by the embedding environment (terminal,
// headless, tests).
type Element interface {
	// Measure returns the intrinsic size of the slide in pixels (or the
	// surface's native unit). Called exactly once, after the surface
	// reports ready; results are cached by the controller.
	Measure() (width, height float64)

	// SetSize fixes the slide's box size.
	SetSize(width, height float64)

	// SetOffset positions the slide relative to the surface origin.
	SetOffset(x, y float64)

	// SetOpacity sets the slide's visibility: 1 revealed, 0 hidden.
	SetOpacity(opacity float64)

	// SetLayer sets the slide's stacking order.
	SetLayer(layer int)
}

// Surface is the container collaborator a show is attached to. It stands
// in for whatever hosts the widget: a terminal viewport, a headless
// in-memory container, or a test fake.
type Surface interface {
	// ID returns a stable identifier for this surface. The registry keys
	// show state by it; it must be non-empty and unique per surface.
	ID() string

	// Size returns the measured container size. Only called after Ready
	// has fired, when measurement is reliable.
	Size() (width, height float64)

	// Slides returns the surface's slide elements in display order. The
	// set is fixed for the lifetime of the show.
	Slides() []Element

	// Ready returns a channel that is closed once the surface has
	// finished loading its assets and measurements are reliable. The
	// controller defers measurement and layout until then.
	Ready() <-chan struct{}

	// AddMarker tags the surface with a status marker.
	AddMarker(name string)

	// RemoveMarker removes a previously added marker. Removing a marker
	// that is not present is a no-op.
	RemoveMarker(name string)

	// MountControls attaches a rendered control block to the surface.
	MountControls(controls Controls)

	// UnmountControls removes the control block, if any.
	UnmountControls()
}

// Controls is the rendered control block for a show: three actions wired
// to the owning show's command entry points. How the actions are presented
// (buttons, key bindings, HTTP routes) is up to the surface.
type Controls struct {
	// Previous reveals the preceding slide, pausing autoplay first.
	Previous func() error

	// Toggle starts autoplay if idle and pauses it if running.
	Toggle func() error

	// Next reveals the following slide, pausing autoplay first.
	Next func() error
}

// Size is a width/height pair in surface units.
type Size struct {
	Width  float64
	Height float64
}

// Geometry is the measured geometry of a show, fixed once deferred
// initialization completes. Sizes[i] is the measured size of Slides[i].
type Geometry struct {
	Container Size
	Slides    []Element
	Sizes     []Size
}
