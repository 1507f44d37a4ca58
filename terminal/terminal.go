// Package terminal wraps a tcell screen behind a cell-buffer interface.
//
// Callers render into a row-major []Cell and hand it to Flush, input arrives
// as flat Event values with mouse press/release transitions already derived
// from tcell's button masks.
package terminal

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Attr represents text attributes (bitmask)
type Attr uint8

const (
	AttrNone      Attr = 0
	AttrBold      Attr = 1 << 0
	AttrDim       Attr = 1 << 1
	AttrItalic    Attr = 1 << 2
	AttrUnderline Attr = 1 << 3
	AttrReverse   Attr = 1 << 4
)

// RGB represents a 24-bit color, the zero value means terminal default
type RGB struct {
	R, G, B uint8
}

// IsZero returns true for the terminal-default color
func (c RGB) IsZero() bool {
	return c == RGB{}
}

// Cell represents a single terminal cell
type Cell struct {
	Rune  rune
	Fg    RGB
	Bg    RGB
	Attrs Attr
}

// Terminal provides screen output and input polling
type Terminal interface {
	// Init enters raw mode and the alternate screen
	Init() error

	// Fini restores terminal state, safe to call multiple times
	Fini()

	// Size returns current terminal dimensions
	Size() (width, height int)

	// Flush writes a row-major cell buffer to the screen
	Flush(cells []Cell, width, height int)

	// PollEvent blocks until the next input event
	PollEvent() Event

	// SetMouse enables or disables mouse reporting
	SetMouse(enabled bool)
}

type tcellTerm struct {
	screen tcell.Screen

	mu          sync.Mutex
	initialized bool
	finalized   bool
	lastButtons tcell.ButtonMask
}

// New creates a tcell-backed terminal, Init must be called before use
func New() (Terminal, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	return &tcellTerm{screen: s}, nil
}

// NewFromScreen wraps an existing screen
func NewFromScreen(s tcell.Screen) Terminal {
	return &tcellTerm{screen: s}
}

func (t *tcellTerm) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.initialized {
		return nil
	}
	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	t.screen.HideCursor()
	t.screen.Clear()
	t.initialized = true
	return nil
}

func (t *tcellTerm) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}
	t.finalized = true
	t.screen.Fini()
}

func (t *tcellTerm) Size() (int, int) {
	return t.screen.Size()
}

func (t *tcellTerm) Flush(cells []Cell, width, height int) {
	for y := 0; y < height; y++ {
		row := y * width
		for x := 0; x < width; x++ {
			idx := row + x
			if idx >= len(cells) {
				break
			}
			c := cells[idx]
			ch := c.Rune
			if ch == 0 {
				ch = ' '
			}
			t.screen.SetContent(x, y, ch, nil, toStyle(c))
		}
	}
	t.screen.Show()
}

func (t *tcellTerm) SetMouse(enabled bool) {
	if enabled {
		t.screen.EnableMouse(tcell.MouseButtonEvents)
		return
	}
	t.screen.DisableMouse()
}

func (t *tcellTerm) PollEvent() Event {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return Event{Type: EventClosed}
		}
		if out, ok := t.translate(ev); ok {
			return out
		}
	}
}

func toStyle(c Cell) tcell.Style {
	st := tcell.StyleDefault
	if !c.Fg.IsZero() {
		st = st.Foreground(tcell.NewRGBColor(int32(c.Fg.R), int32(c.Fg.G), int32(c.Fg.B)))
	}
	if !c.Bg.IsZero() {
		st = st.Background(tcell.NewRGBColor(int32(c.Bg.R), int32(c.Bg.G), int32(c.Bg.B)))
	}
	if c.Attrs&AttrBold != 0 {
		st = st.Bold(true)
	}
	if c.Attrs&AttrDim != 0 {
		st = st.Dim(true)
	}
	if c.Attrs&AttrItalic != 0 {
		st = st.Italic(true)
	}
	if c.Attrs&AttrUnderline != 0 {
		st = st.Underline(true)
	}
	if c.Attrs&AttrReverse != 0 {
		st = st.Reverse(true)
	}
	return st
}
