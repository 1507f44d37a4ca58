package dashboard

import (
	"fmt"

	"github.com/lixenwraith/reportdeck/multiselect"
	"github.com/lixenwraith/reportdeck/terminal"
	"github.com/lixenwraith/reportdeck/terminal/tui"
)

// Layout
const (
	headerHeight = 1
	periodRow    = 2
	filterRow    = 4
	minWidth     = 50
	minHeight    = 12
)

const helpText = "r regiões  c categorias  a todos  Tab período  Esc fechar  q sair"

// Draw renders the full screen into cells of w*h
func (a *App) Draw(cells []terminal.Cell, w, h int) {
	root := tui.NewRegion(cells, w, 0, 0, w, h)
	root.Fill(a.theme.Bg)

	a.tooSmall = w < minWidth || h < minHeight
	if a.tooSmall {
		root.TextCenter(h/2, fmt.Sprintf("terminal muito pequeno (mín. %dx%d)", minWidth, minHeight),
			a.theme.Error, a.theme.Bg, terminal.AttrBold)
		return
	}

	header, body := tui.SplitVFixed(root, headerHeight)
	a.drawHeader(header)

	// Status row is never covered by an open panel
	body, status := tui.SplitVFixed(body, body.H-1)
	a.drawStatus(status)

	periodLine := root.Row(periodRow)
	periodLine.Text(1, 0, "Período", a.theme.HintFg, a.theme.Bg, terminal.AttrBold)
	a.periodSel.Draw(periodLine.Sub(10, 0, periodLine.W-10, 1))
	root.Sub(1, periodRow+1, w-2, 1).HLine(0, tui.LineSingle, a.theme.Border)

	colW := (w - 3) / 2
	filterTop := filterRow - headerHeight
	tableTop := filterTop + multiselect.CollapsedHeight(a.regionProps()) + 1
	a.drawTable(body.Sub(1, tableTop, w-2, body.H-tableTop))

	// Controls last so an open panel overlays the table
	regions := body.Sub(1, filterTop, colW, body.H-filterTop)
	categories := body.Sub(2+colW, filterTop, colW, body.H-filterTop)
	if a.regionCtl.IsOpen() {
		a.categoryCtl.Draw(categories, a.categoryProps())
		a.regionCtl.Draw(regions, a.regionProps())
	} else {
		a.regionCtl.Draw(regions, a.regionProps())
		a.categoryCtl.Draw(categories, a.categoryProps())
	}
}

func (a *App) drawHeader(r tui.Region) {
	r.Fill(a.theme.HeaderBg)
	r.Text(1, 0, "REPORTDECK", a.theme.HeaderFg, a.theme.HeaderBg, terminal.AttrBold)
	since := a.periodSel.Since(a.now())
	r.TextRight(0, fmt.Sprintf("desde %s ", since.Format("02/01/2006")), a.theme.HeaderFg, a.theme.HeaderBg, terminal.AttrNone)
}

func (a *App) drawStatus(r tui.Region) {
	if a.message != "" {
		r.Text(1, 0, tui.Truncate(a.message, r.W-2), a.theme.Error, a.theme.Bg, terminal.AttrNone)
		return
	}
	r.Text(1, 0, tui.Truncate(helpText, r.W-2), a.theme.StatusFg, a.theme.Bg, terminal.AttrDim)
}

func (a *App) drawTable(r tui.Region) {
	if len(a.rows) == 0 {
		r.Text(0, 0, "Nenhum lançamento no período", a.theme.StatusFg, a.theme.Bg, terminal.AttrItalic)
		return
	}
	lines := tableLines(a.rows)
	for i, line := range lines {
		fg, attr := a.theme.Fg, terminal.AttrNone
		switch {
		case i == 0:
			fg, attr = a.theme.HintFg, terminal.AttrBold
		case i == len(lines)-1:
			attr = terminal.AttrBold
		}
		r.Text(0, i, tui.Truncate(line, r.W), fg, a.theme.Bg, attr)
	}
}
