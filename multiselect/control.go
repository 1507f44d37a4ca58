package multiselect

import (
	"io"
	"log/slog"

	"github.com/lixenwraith/reportdeck/pointer"
	"github.com/lixenwraith/reportdeck/selection"
	"github.com/lixenwraith/reportdeck/terminal/tui"
)

// Control is one multi-select instance
// Not safe for concurrent use; the host event loop serializes gestures
type Control struct {
	hub    *pointer.Hub
	labels Labels
	theme  tui.Theme
	log    *slog.Logger

	// maxRows caps visible panel rows, 0 means fit to region
	// Longer lists scroll
	maxRows int

	state   State
	mounted bool
	release func() // Outside-press observer, non-nil only while Open
	scroll  tui.ScrollState

	layout layout
}

// Option configures a Control
type Option func(*Control)

// WithLabels overrides display strings, empty fields keep defaults
func WithLabels(l Labels) Option {
	return func(c *Control) { c.labels = l.Merge(DefaultLabels()) }
}

// WithTheme sets drawing colors
func WithTheme(t tui.Theme) Option {
	return func(c *Control) { c.theme = t }
}

// WithLogger sets the debug logger
func WithLogger(l *slog.Logger) Option {
	return func(c *Control) { c.log = l }
}

// WithPanelHeight caps the number of option rows shown when open
func WithPanelHeight(rows int) Option {
	return func(c *Control) { c.maxRows = rows }
}

// New creates a closed, unmounted control bound to hub
func New(hub *pointer.Hub, opts ...Option) *Control {
	c := &Control{
		hub:    hub,
		labels: DefaultLabels(),
		theme:  tui.DefaultTheme,
		log:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Mount makes the control interactive
func (c *Control) Mount() {
	c.mounted = true
}

// Unmount closes the panel and releases the pointer observer
// Safe to call repeatedly and on controls that were never opened
func (c *Control) Unmount() {
	c.close()
	c.mounted = false
	c.layout = layout{}
}

// State returns the presentation state
func (c *Control) State() State {
	return c.state
}

// IsOpen returns true while the option panel is expanded
func (c *Control) IsOpen() bool {
	return c.state == Open
}

// Labels returns the effective display strings
func (c *Control) Labels() Labels {
	return c.labels
}

// View renders the control's current tree for p
func (c *Control) View(p Props) View {
	return Render(p, c.state, c.labels)
}

// ToggleOpen flips between Closed and Open
func (c *Control) ToggleOpen() {
	if c.state == Open {
		c.close()
		return
	}
	c.open()
}

// Dismiss closes the panel if open
func (c *Control) Dismiss() {
	c.close()
}

// ActivateOption toggles o in the host selection
// Ignored while closed or when o is not one of p.Options
func (c *Control) ActivateOption(p Props, o string) {
	if c.state != Open || !selection.Contains(p.Options, o) {
		return
	}
	c.emit(p, selection.Toggle(p.Selected, o))
}

// ActivateAll selects every option, or clears the selection when all are already selected
// Ignored while closed or when there are no options
func (c *Control) ActivateAll(p Props) {
	if c.state != Open || len(p.Options) == 0 {
		return
	}
	c.emit(p, selection.SelectAll(p.Selected, p.Options))
}

func (c *Control) emit(p Props, next []string) {
	c.log.Debug("selection changed", "label", p.Label, "count", len(next))
	if p.OnChange != nil {
		p.OnChange(next)
	}
}

func (c *Control) open() {
	if !c.mounted || c.state == Open {
		return
	}
	c.state = Open
	c.release = c.hub.Observe(c.onPointer)
	c.log.Debug("control opened")
}

func (c *Control) close() {
	if c.state != Open {
		return
	}
	c.state = Closed
	if c.release != nil {
		c.release()
		c.release = nil
	}
	c.layout.panel = pointer.Rect{}
	c.layout.rows = nil
	c.scroll.Reset()
	c.log.Debug("control closed")
}

// onPointer closes the panel for presses outside the drawn boundary
func (c *Control) onPointer(ev pointer.Event) {
	if c.Contains(ev.X, ev.Y) {
		return
	}
	c.close()
}

// Contains reports whether the absolute cell lies within the last drawn boundary
func (c *Control) Contains(x, y int) bool {
	return c.layout.label.Contains(x, y) ||
		c.layout.trigger.Contains(x, y) ||
		c.layout.panel.Contains(x, y)
}
