// multiselect-demo shows two filter controls on an otherwise empty screen.
// The second control has no options and renders the empty panel.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/lixenwraith/reportdeck/multiselect"
	"github.com/lixenwraith/reportdeck/pointer"
	"github.com/lixenwraith/reportdeck/terminal"
	"github.com/lixenwraith/reportdeck/terminal/tui"
)

var fruits = []string{
	"Maçã", "Banana", "Laranja", "Uva", "Manga", "Pera",
	"Abacaxi", "Goiaba", "Caju", "Melancia", "Kiwi", "Limão",
}

type demo struct {
	hub      *pointer.Hub
	fruitCtl *multiselect.Control
	emptyCtl *multiselect.Control

	selected []string
	changes  int
	theme    tui.Theme
}

func (d *demo) fruitProps() multiselect.Props {
	return multiselect.Props{
		Label:    "Frutas",
		Options:  fruits,
		Selected: d.selected,
		OnChange: func(next []string) {
			d.selected = next
			d.changes++
		},
	}
}

func (d *demo) emptyProps() multiselect.Props {
	return multiselect.Props{Label: "Sem opções", Placeholder: "Nada a escolher"}
}

func (d *demo) press(ev terminal.Event) {
	pev := pointer.Event{X: ev.MouseX, Y: ev.MouseY}
	switch ev.MouseBtn {
	case terminal.MouseBtnLeft:
		pev.Button = pointer.ButtonLeft
	case terminal.MouseBtnWheelUp:
		pev.Button = pointer.ButtonWheelUp
	case terminal.MouseBtnWheelDown:
		pev.Button = pointer.ButtonWheelDown
	}
	if !pev.Button.IsWheel() {
		d.hub.Dispatch(pev)
	}
	if d.fruitCtl.HandleMouse(d.fruitProps(), pev) {
		return
	}
	d.emptyCtl.HandleMouse(d.emptyProps(), pev)
}

func (d *demo) render(root tui.Region) {
	root.Fill(d.theme.Bg)
	header, body := tui.SplitVFixed(root, 1)
	header.Fill(d.theme.HeaderBg)
	header.Text(1, 0, "MULTISELECT DEMO", d.theme.HeaderFg, d.theme.HeaderBg, terminal.AttrBold)
	header.TextRight(0, "q/Esc sair ", d.theme.HeaderFg, d.theme.HeaderBg, terminal.AttrNone)

	info := fmt.Sprintf("selecionados: [%s]  mudanças: %d", strings.Join(d.selected, ", "), d.changes)
	body.Text(1, body.H-1, tui.Truncate(info, body.W-2), d.theme.StatusFg, d.theme.Bg, terminal.AttrNone)

	area := body.Sub(0, 1, body.W, body.H-2)
	left, right := tui.SplitHFixed(area, min(area.W/2, 36))
	d.fruitCtl.Draw(left.Sub(1, 0, left.W-2, left.H), d.fruitProps())
	d.emptyCtl.Draw(right.Sub(1, 0, right.W-2, right.H), d.emptyProps())
}

func main() {
	term, err := terminal.New()
	if err != nil {
		fmt.Fprintln(os.Stderr, "terminal:", err)
		os.Exit(1)
	}
	if err := term.Init(); err != nil {
		fmt.Fprintln(os.Stderr, "terminal init:", err)
		os.Exit(1)
	}
	defer term.Fini()
	term.SetMouse(true)

	hub := pointer.NewHub()
	d := &demo{
		hub:      hub,
		fruitCtl: multiselect.New(hub, multiselect.WithPanelHeight(8)),
		emptyCtl: multiselect.New(hub),
		theme:    tui.DefaultTheme,
	}
	d.fruitCtl.Mount()
	d.emptyCtl.Mount()
	defer d.fruitCtl.Unmount()
	defer d.emptyCtl.Unmount()

	// Dedicated input goroutine
	eventCh := make(chan terminal.Event, 16)
	go func() {
		for {
			ev := term.PollEvent()
			eventCh <- ev
			if ev.Type == terminal.EventClosed || ev.Type == terminal.EventError {
				return
			}
		}
	}()

	for {
		w, h := term.Size()
		cells := make([]terminal.Cell, w*h)
		d.render(tui.NewRegion(cells, w, 0, 0, w, h))
		term.Flush(cells, w, h)

		ev := <-eventCh
		switch ev.Type {
		case terminal.EventClosed, terminal.EventError:
			return
		case terminal.EventKey:
			if ev.Key == terminal.KeyCtrlC || ev.Key == terminal.KeyEscape ||
				(ev.Key == terminal.KeyRune && ev.Rune == 'q') {
				return
			}
		case terminal.EventMouse:
			if ev.IsPress() || ev.IsScroll() {
				d.press(ev)
			}
		}
	}
}
