package cli

import (
	"fmt"
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/slidekit/carousel/pkg/deck"
	"github.com/slidekit/carousel/pkg/show"
)

// Presenter styles
var (
	slideTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	slideBodyStyle  = lipgloss.NewStyle().Foreground(colorWhite)
	footerStyle     = lipgloss.NewStyle().Foreground(colorDim)
	playingStyle    = lipgloss.NewStyle().Foreground(colorGreen)
)

// =============================================================================
// termSurface - terminal-backed Surface
// =============================================================================

// termSurface adapts the terminal window to the controller's Surface
// interface. Its size is unknown until bubbletea delivers the first
// WindowSizeMsg; setSize followed by load stands in for the host
// environment finishing its load.
type termSurface struct {
	id string

	mu       sync.Mutex
	width    float64
	height   float64
	slides   []*termSlide
	markers  map[string]struct{}
	controls *show.Controls

	ready    chan struct{}
	loadOnce sync.Once
}

func newTermSurface(slides []deck.Slide) *termSurface {
	s := &termSurface{
		id:      uuid.NewString(),
		markers: make(map[string]struct{}),
		ready:   make(chan struct{}),
	}
	for _, sl := range slides {
		s.slides = append(s.slides, &termSlide{slide: sl})
	}
	return s
}

// setSize records the terminal dimensions in cells.
func (s *termSurface) setSize(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width, s.height = float64(width), float64(height)
}

// load fires the ready signal once the first window size is known.
func (s *termSurface) load() {
	s.loadOnce.Do(func() { close(s.ready) })
}

func (s *termSurface) ID() string { return s.id }

func (s *termSurface) Size() (width, height float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.width, s.height
}

func (s *termSurface) Slides() []show.Element {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]show.Element, len(s.slides))
	for i, sl := range s.slides {
		out[i] = sl
	}
	return out
}

func (s *termSurface) Ready() <-chan struct{} { return s.ready }

func (s *termSurface) AddMarker(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.markers[name] = struct{}{}
}

func (s *termSurface) RemoveMarker(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.markers, name)
}

func (s *termSurface) MountControls(controls show.Controls) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.controls = &controls
}

func (s *termSurface) UnmountControls() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.controls = nil
}

// Ensure termSurface implements Surface.
var _ show.Surface = (*termSurface)(nil)

// termSlide is the terminal slide element. Cell counts stand in for
// pixels: the intrinsic width is the longest line, the height the line
// count.
type termSlide struct {
	slide deck.Slide

	mu      sync.Mutex
	opacity float64
	layer   int
}

func (t *termSlide) Measure() (width, height float64) {
	lines := strings.Split(t.slide.Title+"\n\n"+t.slide.Body, "\n")
	maxWidth := 0
	for _, line := range lines {
		if w := lipgloss.Width(line); w > maxWidth {
			maxWidth = w
		}
	}
	return float64(maxWidth), float64(len(lines))
}

func (t *termSlide) SetSize(width, height float64) {}
func (t *termSlide) SetOffset(x, y float64)        {}

func (t *termSlide) SetOpacity(opacity float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.opacity = opacity
}

func (t *termSlide) SetLayer(layer int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.layer = layer
}

// Ensure termSlide implements Element.
var _ show.Element = (*termSlide)(nil)

// =============================================================================
// PresenterModel - interactive deck playback
// =============================================================================

// eventMsg wraps a controller event for the bubbletea update loop.
type eventMsg show.Event

// PresenterModel is the bubbletea model that runs one deck as a live
// slideshow. Keyboard input maps onto the controller commands; the
// controller's event observer feeds redraws back into the update loop.
type PresenterModel struct {
	deck    *deck.Deck
	surface *termSurface
	show    *show.Show
	events  chan show.Event

	width  int
	height int
	sized  bool
}

// NewPresenterModel attaches a show to a terminal surface and returns the
// model driving it. The show stays uninitialized until the first window
// size arrives.
func NewPresenterModel(registry *show.Registry, d *deck.Deck) (PresenterModel, error) {
	m := PresenterModel{
		deck:    d,
		surface: newTermSurface(d.Slides),
		events:  make(chan show.Event, 32),
	}

	cfg := d.ShowConfig()
	cfg.Observer = func(ev show.Event) {
		select {
		case m.events <- ev:
		default:
		}
	}

	s, err := registry.Init(m.surface, cfg)
	if err != nil {
		return PresenterModel{}, err
	}
	m.show = s
	return m, nil
}

func (m PresenterModel) Init() tea.Cmd {
	return m.waitEvent()
}

// waitEvent blocks on the controller's event stream and feeds the next
// event into Update.
func (m PresenterModel) waitEvent() tea.Cmd {
	return func() tea.Msg {
		return eventMsg(<-m.events)
	}
}

func (m PresenterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		// Only the first size participates in layout; later resizes just
		// redraw.
		if !m.sized {
			m.sized = true
			m.surface.setSize(msg.Width, msg.Height)
			m.surface.load()
		}
		return m, nil

	case eventMsg:
		if msg.Type == show.EventDestroy {
			return m, tea.Quit
		}
		return m, m.waitEvent()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m PresenterModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "q", "ctrl+c", "esc":
		_ = m.show.Destroy()
		return m, tea.Quit
	case "left", "h":
		_ = m.show.Previous()
	case "right", "l":
		_ = m.show.Next()
	case " ":
		_ = m.show.PlayPause()
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			_ = m.show.Jump(int(key[0] - '1'))
		}
	}
	return m, nil
}

func (m PresenterModel) View() string {
	if !m.sized || !m.show.IsReady() {
		return footerStyle.Render("loading…")
	}

	count := m.show.SlideCount()
	idx := m.show.CurrentIndex()
	if count == 0 {
		return footerStyle.Render("deck has no slides")
	}

	sl := m.deck.Slides[idx]
	var b strings.Builder
	if sl.Title != "" {
		b.WriteString(slideTitleStyle.Render(sl.Title))
		b.WriteString("\n\n")
	}
	b.WriteString(slideBodyStyle.Render(sl.Body))

	stage := lipgloss.Place(m.width, m.height-1,
		lipgloss.Center, lipgloss.Center, b.String())

	return stage + "\n" + m.footer(idx, count)
}

func (m PresenterModel) footer(idx, count int) string {
	status := footerStyle.Render("paused")
	if m.show.Playing() {
		status = playingStyle.Render("playing")
	}

	left := fmt.Sprintf(" %s  %s", StyleValue.Render(fmt.Sprintf("%d/%d", idx+1, count)), status)
	help := footerStyle.Render("←/→ navigate  space play/pause  1-9 jump  q quit ")

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(help)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + help
}
