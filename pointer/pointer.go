// Package pointer broadcasts global pointer activity to transient observers.
//
// Widgets that need to react to presses anywhere on screen (click-away
// dismissal) register an observer while they need it and release it when done.
//
// Architecture:
//   - Single-threaded dispatch, driven by the host event loop
//   - Observers are invoked in registration order
//   - Dispatch works on a snapshot, so observers may release themselves or others mid-dispatch
package pointer

// Button identifies the pressed pointer button
type Button uint8

const (
	ButtonNone Button = iota
	ButtonLeft
	ButtonMiddle
	ButtonRight
	ButtonWheelUp   // Wheel notches are delivered to widgets, never to the hub
	ButtonWheelDown
)

// IsWheel returns true for scroll wheel notches
func (b Button) IsWheel() bool {
	return b == ButtonWheelUp || b == ButtonWheelDown
}

// Event is a pointer-down in absolute screen cells
type Event struct {
	X, Y   int
	Button Button
}

// Observer receives pointer-down events
type Observer func(ev Event)

type entry struct {
	id uint64
	fn Observer
}

// Hub fans pointer-down events out to registered observers
type Hub struct {
	entries []entry
	nextID  uint64
}

// NewHub creates an empty hub
func NewHub() *Hub {
	return &Hub{}
}

// Observe registers fn and returns its release function
// Release is idempotent and may be called from inside fn
func (h *Hub) Observe(fn Observer) (release func()) {
	h.nextID++
	id := h.nextID
	h.entries = append(h.entries, entry{id: id, fn: fn})

	released := false
	return func() {
		if released {
			return
		}
		released = true
		h.remove(id)
	}
}

// Dispatch delivers ev to every observer registered when dispatch began
// Observers released by an earlier observer in the same dispatch are skipped
func (h *Hub) Dispatch(ev Event) {
	if len(h.entries) == 0 {
		return
	}
	snapshot := make([]entry, len(h.entries))
	copy(snapshot, h.entries)

	for _, e := range snapshot {
		if !h.active(e.id) {
			continue
		}
		e.fn(ev)
	}
}

// Len returns the number of active observers
func (h *Hub) Len() int {
	return len(h.entries)
}

func (h *Hub) remove(id uint64) {
	for i, e := range h.entries {
		if e.id == id {
			h.entries = append(h.entries[:i], h.entries[i+1:]...)
			return
		}
	}
}

func (h *Hub) active(id uint64) bool {
	for _, e := range h.entries {
		if e.id == id {
			return true
		}
	}
	return false
}
