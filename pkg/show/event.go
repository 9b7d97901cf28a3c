package show

// EventType identifies an externally visible state change of a show.
type EventType string

// Event types emitted to a show's observer.
const (
	// EventReady fires once deferred initialization has completed.
	EventReady EventType = "ready"

	// EventReveal fires whenever the revealed slide changes, whether
	// driven by a command or by the autoplay timer.
	EventReveal EventType = "reveal"

	// EventPlay fires when autoplay starts.
	EventPlay EventType = "play"

	// EventPause fires when autoplay stops.
	EventPause EventType = "pause"

	// EventDestroy fires when the show is torn down.
	EventDestroy EventType = "destroy"
)

// Event describes one externally visible state change. Index and Playing
// reflect the show's state after the change.
type Event struct {
	Type    EventType
	ShowID  string
	Index   int
	Playing bool
}
