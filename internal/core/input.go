package core

// EventKind identifies a platform input event.
// Frontends translate their native events into these kinds before handing them to a game.
type EventKind int

const (
	EventNone        EventKind = iota
	EventQuit                  // Window closed, Ctrl+C, q
	EventMouseMotion           // Relative pointer movement
	EventKeyDown               // A key was pressed
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventNone:
		return "None"
	case EventQuit:
		return "Quit"
	case EventMouseMotion:
		return "MouseMotion"
	case EventKeyDown:
		return "KeyDown"
	default:
		return "Unknown"
	}
}

// Key is a platform-neutral key code.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyRestart
)

// Event is a single discrete input event.
type Event struct {
	Kind   EventKind
	DX, DY float64 // Motion delta in world units (EventMouseMotion)
	Key    Key     // Key code (EventKeyDown)
}

// Quit returns a quit event.
func Quit() Event {
	return Event{Kind: EventQuit}
}

// MouseMotion returns a relative motion event.
func MouseMotion(dx, dy float64) Event {
	return Event{Kind: EventMouseMotion, DX: dx, DY: dy}
}

// KeyDown returns a key press event.
func KeyDown(k Key) Event {
	return Event{Kind: EventKeyDown, Key: k}
}

// EventQueue buffers events between frames.
// The driver pushes events as they arrive and drains them once per tick.
type EventQueue struct {
	events []Event
}

// Push appends an event to the queue.
func (q *EventQueue) Push(ev Event) {
	q.events = append(q.events, ev)
}

// Drain returns all queued events in arrival order and empties the queue.
func (q *EventQueue) Drain() []Event {
	out := q.events
	q.events = nil
	return out
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	return len(q.events)
}
