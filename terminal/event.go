package terminal

import (
	"github.com/gdamore/tcell/v2"
)

// EventType distinguishes input event categories
type EventType uint8

const (
	EventKey EventType = iota
	EventResize
	EventMouse
	EventError  // Read error
	EventClosed // Input closed
)

// Key represents a parsed input key
type Key uint16

const (
	KeyNone Key = iota
	KeyRune     // Printable character (check Event.Rune)
	KeyEscape
	KeyEnter
	KeyTab
	KeyBacktab
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyCtrlC
)

// MouseButton represents mouse button identity
type MouseButton uint8

const (
	MouseBtnNone MouseButton = iota
	MouseBtnLeft
	MouseBtnMiddle
	MouseBtnRight
	MouseBtnWheelUp
	MouseBtnWheelDown
)

// MouseAction represents the type of mouse event
type MouseAction uint8

const (
	MouseActionNone MouseAction = iota
	MouseActionPress
	MouseActionRelease
	MouseActionMove
	MouseActionScroll // Wheel notch, MouseBtn holds the direction
)

// Event represents a terminal input event
type Event struct {
	Type   EventType
	Key    Key
	Rune   rune
	Width  int   // For EventResize
	Height int   // For EventResize
	Err    error // For EventError

	// Mouse event fields
	MouseX      int
	MouseY      int
	MouseBtn    MouseButton
	MouseAction MouseAction
}

// IsPress returns true for a mouse button press
func (e Event) IsPress() bool {
	return e.Type == EventMouse && e.MouseAction == MouseActionPress
}

// IsScroll returns true for a mouse wheel notch
func (e Event) IsScroll() bool {
	return e.Type == EventMouse && e.MouseAction == MouseActionScroll
}

var keyMap = map[tcell.Key]Key{
	tcell.KeyEscape:  KeyEscape,
	tcell.KeyEnter:   KeyEnter,
	tcell.KeyTab:     KeyTab,
	tcell.KeyBacktab: KeyBacktab,
	tcell.KeyUp:      KeyUp,
	tcell.KeyDown:    KeyDown,
	tcell.KeyLeft:    KeyLeft,
	tcell.KeyRight:   KeyRight,
	tcell.KeyCtrlC:   KeyCtrlC,
}

// translate converts a tcell event, returns false for events with no counterpart
func (t *tcellTerm) translate(ev tcell.Event) (Event, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyRune {
			return Event{Type: EventKey, Key: KeyRune, Rune: ev.Rune()}, true
		}
		k, ok := keyMap[ev.Key()]
		if !ok {
			return Event{}, false
		}
		return Event{Type: EventKey, Key: k}, true

	case *tcell.EventResize:
		w, h := ev.Size()
		return Event{Type: EventResize, Width: w, Height: h}, true

	case *tcell.EventMouse:
		x, y := ev.Position()
		btns := ev.Buttons()
		if wheel := wheelOf(btns); wheel != MouseBtnNone {
			return Event{Type: EventMouse, MouseX: x, MouseY: y, MouseBtn: wheel, MouseAction: MouseActionScroll}, true
		}
		t.mu.Lock()
		btn, action := mouseTransition(t.lastButtons, btns)
		t.lastButtons = btns
		t.mu.Unlock()
		if action == MouseActionNone {
			return Event{}, false
		}
		return Event{Type: EventMouse, MouseX: x, MouseY: y, MouseBtn: btn, MouseAction: action}, true

	case *tcell.EventError:
		return Event{Type: EventError, Err: ev}, true
	}
	return Event{}, false
}

// mouseTransition derives press/release from consecutive button masks
// tcell reports held buttons rather than edges
func mouseTransition(prev, cur tcell.ButtonMask) (MouseButton, MouseAction) {
	const buttons = tcell.Button1 | tcell.Button2 | tcell.Button3
	prev &= buttons
	cur &= buttons

	pressed := cur &^ prev
	switch {
	case pressed&tcell.Button1 != 0:
		return MouseBtnLeft, MouseActionPress
	case pressed&tcell.Button2 != 0:
		return MouseBtnRight, MouseActionPress
	case pressed&tcell.Button3 != 0:
		return MouseBtnMiddle, MouseActionPress
	}

	if cur == 0 && prev != 0 {
		return buttonOf(prev), MouseActionRelease
	}
	if cur == 0 {
		return MouseBtnNone, MouseActionMove
	}
	return MouseBtnNone, MouseActionNone
}

// wheelOf returns the wheel direction carried by m, if any
func wheelOf(m tcell.ButtonMask) MouseButton {
	switch {
	case m&tcell.WheelUp != 0:
		return MouseBtnWheelUp
	case m&tcell.WheelDown != 0:
		return MouseBtnWheelDown
	}
	return MouseBtnNone
}

func buttonOf(m tcell.ButtonMask) MouseButton {
	switch {
	case m&tcell.Button1 != 0:
		return MouseBtnLeft
	case m&tcell.Button2 != 0:
		return MouseBtnRight
	case m&tcell.Button3 != 0:
		return MouseBtnMiddle
	}
	return MouseBtnNone
}
