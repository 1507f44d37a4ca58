// Package dashboard is the terminal report screen hosting the filter controls.
//
// App owns every selection: the region and category filters and the period.
// Controls receive them as props on each draw and hand new selections back
// through OnChange, after which the report is recomputed.
package dashboard

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/lixenwraith/reportdeck/audio"
	"github.com/lixenwraith/reportdeck/config"
	"github.com/lixenwraith/reportdeck/multiselect"
	"github.com/lixenwraith/reportdeck/period"
	"github.com/lixenwraith/reportdeck/pointer"
	"github.com/lixenwraith/reportdeck/selection"
	"github.com/lixenwraith/reportdeck/store"
	"github.com/lixenwraith/reportdeck/terminal"
	"github.com/lixenwraith/reportdeck/terminal/tui"
)

// ReportSource supplies filter options and entries
type ReportSource interface {
	Regions(ctx context.Context) ([]string, error)
	Categories(ctx context.Context) ([]string, error)
	Entries(ctx context.Context, since time.Time) ([]store.Entry, error)
}

// Player plays interaction tones, satisfied by *audio.Feedback
type Player interface {
	Play(s audio.Sound)
}

// App holds all dashboard state
type App struct {
	ctx   context.Context
	src   ReportSource
	log   *slog.Logger
	theme tui.Theme
	now   func() time.Time
	sound Player

	hub         *pointer.Hub
	regionCtl   *multiselect.Control
	categoryCtl *multiselect.Control
	periodSel   *period.Selector

	// Options offered by the filters
	regions    []string
	categories []string

	// Host-owned selections
	selRegions    []string
	selCategories []string

	rows    []Row
	message string

	width, height int
	tooSmall      bool
}

// Option configures an App
type Option func(*App)

// WithLogger sets the logger
func WithLogger(l *slog.Logger) Option {
	return func(a *App) { a.log = l }
}

// WithPlayer enables interaction tones
func WithPlayer(p Player) Option {
	return func(a *App) { a.sound = p }
}

// WithClock overrides the time source used for the period window
func WithClock(now func() time.Time) Option {
	return func(a *App) { a.now = now }
}

// WithTheme sets drawing colors
func WithTheme(t tui.Theme) Option {
	return func(a *App) { a.theme = t }
}

// New creates a dashboard reading from src
func New(cfg config.Config, src ReportSource, opts ...Option) *App {
	a := &App{
		ctx:   context.Background(),
		src:   src,
		log:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		theme: tui.DefaultTheme,
		now:   time.Now,
		hub:   pointer.NewHub(),
	}
	for _, opt := range opts {
		opt(a)
	}

	ctlOpts := []multiselect.Option{
		multiselect.WithLabels(cfg.Labels),
		multiselect.WithTheme(a.theme),
		multiselect.WithLogger(a.log),
		multiselect.WithPanelHeight(cfg.PanelHeight),
	}
	a.regionCtl = multiselect.New(a.hub, ctlOpts...)
	a.categoryCtl = multiselect.New(a.hub, ctlOpts...)
	a.regionCtl.Mount()
	a.categoryCtl.Mount()

	a.periodSel = period.NewSelector(period.DefaultPeriods(), cfg.Period)
	if got := a.periodSel.Current().Key; got != cfg.Period {
		a.log.Warn("unknown period, using first", "period", cfg.Period, "using", got)
	}
	return a
}

// Load fetches filter options and computes the report
// Selections are restricted to the options that still exist
func (a *App) Load(ctx context.Context) error {
	a.ctx = ctx

	regions, err := a.src.Regions(ctx)
	if err != nil {
		return fmt.Errorf("load regions: %w", err)
	}
	categories, err := a.src.Categories(ctx)
	if err != nil {
		return fmt.Errorf("load categories: %w", err)
	}
	a.regions, a.categories = regions, categories
	a.selRegions = selection.Restrict(a.selRegions, regions)
	a.selCategories = selection.Restrict(a.selCategories, categories)

	a.refresh()
	return nil
}

// Close unmounts the controls, releasing any pointer observers
func (a *App) Close() {
	a.regionCtl.Unmount()
	a.categoryCtl.Unmount()
}

// Rows returns the current report rows
func (a *App) Rows() []Row {
	return a.rows
}

// SelectedRegions returns the region filter
func (a *App) SelectedRegions() []string {
	return a.selRegions
}

// SelectedCategories returns the category filter
func (a *App) SelectedCategories() []string {
	return a.selCategories
}

// Period returns the active reporting window
func (a *App) Period() period.Period {
	return a.periodSel.Current()
}

func (a *App) refresh() {
	since := a.periodSel.Since(a.now())
	entries, err := a.src.Entries(a.ctx, since)
	if err != nil {
		a.log.Error("load entries", "error", err)
		a.message = "erro ao carregar lançamentos"
		a.rows = nil
		return
	}
	a.rows = Aggregate(entries, a.selRegions, a.selCategories)
	a.message = ""
	a.log.Debug("report refreshed", "period", a.periodSel.Current().Key,
		"entries", len(entries), "rows", len(a.rows))
}

func (a *App) regionProps() multiselect.Props {
	return multiselect.Props{
		Label:    "Regiões",
		Options:  a.regions,
		Selected: a.selRegions,
		OnChange: func(next []string) {
			a.play(audio.SelectionSound(len(a.selRegions), len(next)))
			a.selRegions = next
			a.refresh()
		},
	}
}

func (a *App) categoryProps() multiselect.Props {
	return multiselect.Props{
		Label:    "Categorias",
		Options:  a.categories,
		Selected: a.selCategories,
		OnChange: func(next []string) {
			a.play(audio.SelectionSound(len(a.selCategories), len(next)))
			a.selCategories = next
			a.refresh()
		},
	}
}

func (a *App) play(s audio.Sound) {
	if a.sound != nil {
		a.sound.Play(s)
	}
}

// control pairs a control with its props for one event
type control struct {
	ctl   *multiselect.Control
	props multiselect.Props
}

// controls returns the filters, open ones first
func (a *App) controls() []control {
	cs := []control{
		{a.regionCtl, a.regionProps()},
		{a.categoryCtl, a.categoryProps()},
	}
	if !cs[0].ctl.IsOpen() && cs[1].ctl.IsOpen() {
		cs[0], cs[1] = cs[1], cs[0]
	}
	return cs
}

// HandleEvent applies one input event, returns true to quit
func (a *App) HandleEvent(ev terminal.Event) bool {
	switch ev.Type {
	case terminal.EventResize:
		a.width, a.height = ev.Width, ev.Height
	case terminal.EventKey:
		return a.handleKey(ev)
	case terminal.EventMouse:
		if a.tooSmall {
			break
		}
		pev := pointer.Event{X: ev.MouseX, Y: ev.MouseY, Button: toButton(ev.MouseBtn)}
		switch {
		case ev.IsPress():
			a.handlePress(pev)
		case ev.IsScroll():
			a.handleWheel(pev)
		}
	}
	return false
}

func (a *App) handleKey(ev terminal.Event) bool {
	switch ev.Key {
	case terminal.KeyCtrlC:
		return true
	case terminal.KeyEscape:
		if !a.regionCtl.IsOpen() && !a.categoryCtl.IsOpen() {
			return true
		}
		a.regionCtl.Dismiss()
		a.categoryCtl.Dismiss()
	case terminal.KeyTab, terminal.KeyRight:
		a.periodSel.Next()
		a.refresh()
	case terminal.KeyBacktab, terminal.KeyLeft:
		a.periodSel.Prev()
		a.refresh()
	case terminal.KeyRune:
		switch ev.Rune {
		case 'q':
			return true
		case 'r':
			a.toggleOnly(a.regionCtl, a.categoryCtl)
		case 'c':
			a.toggleOnly(a.categoryCtl, a.regionCtl)
		case 'a':
			for _, c := range a.controls() {
				c.ctl.ActivateAll(c.props)
			}
		}
	}
	return false
}

// toggleOnly toggles ctl from the keyboard, closing other first
func (a *App) toggleOnly(ctl, other *multiselect.Control) {
	other.Dismiss()
	wasOpen := ctl.IsOpen()
	ctl.ToggleOpen()
	if !wasOpen && ctl.IsOpen() {
		a.play(audio.SoundOpen)
	}
}

// handlePress routes a press: global observers first, then the controls, then the period row
func (a *App) handlePress(ev pointer.Event) {
	a.hub.Dispatch(ev)

	for _, c := range a.controls() {
		wasOpen := c.ctl.IsOpen()
		if c.ctl.HandleMouse(c.props, ev) {
			if !wasOpen && c.ctl.IsOpen() {
				a.play(audio.SoundOpen)
			}
			return
		}
	}
	if a.periodSel.HandleMouse(ev) {
		a.refresh()
	}
}

// handleWheel scrolls the open panel under the pointer
// Wheel notches never reach the hub, so they cannot dismiss a panel
func (a *App) handleWheel(ev pointer.Event) {
	for _, c := range a.controls() {
		if c.ctl.HandleMouse(c.props, ev) {
			return
		}
	}
}

func toButton(b terminal.MouseButton) pointer.Button {
	switch b {
	case terminal.MouseBtnLeft:
		return pointer.ButtonLeft
	case terminal.MouseBtnMiddle:
		return pointer.ButtonMiddle
	case terminal.MouseBtnRight:
		return pointer.ButtonRight
	case terminal.MouseBtnWheelUp:
		return pointer.ButtonWheelUp
	case terminal.MouseBtnWheelDown:
		return pointer.ButtonWheelDown
	}
	return pointer.ButtonNone
}

// Run loads the report and drives the screen until quit or ctx is done
func (a *App) Run(ctx context.Context, term terminal.Terminal) error {
	if err := a.Load(ctx); err != nil {
		return err
	}
	defer a.Close()

	term.SetMouse(true)
	defer term.SetMouse(false)
	a.width, a.height = term.Size()

	events := make(chan terminal.Event, 16)
	go func() {
		for {
			ev := term.PollEvent()
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
			if ev.Type == terminal.EventClosed {
				return
			}
		}
	}()

	var cells []terminal.Cell
	for {
		cells = a.frame(term, cells)

		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			switch ev.Type {
			case terminal.EventClosed:
				return nil
			case terminal.EventError:
				a.log.Warn("terminal input", "error", ev.Err)
				continue
			}
			if a.HandleEvent(ev) {
				return nil
			}
		}
	}
}

func (a *App) frame(term terminal.Terminal, cells []terminal.Cell) []terminal.Cell {
	w, h := a.width, a.height
	if cap(cells) < w*h {
		cells = make([]terminal.Cell, w*h)
	}
	cells = cells[:w*h]
	a.Draw(cells, w, h)
	term.Flush(cells, w, h)
	return cells
}
