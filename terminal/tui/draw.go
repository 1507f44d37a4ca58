package tui

import (
	"github.com/lixenwraith/reportdeck/terminal"
)

// LineType specifies box drawing character style
type LineType uint8

const (
	LineSingle  LineType = iota // ┌─┐│└┘
	LineRounded                 // ╭─╮│╰╯
	LineHeavy                   // ┏━┓┃┗┛
)

var boxChars = [...][6]rune{
	LineSingle:  {'┌', '─', '┐', '│', '└', '┘'},
	LineRounded: {'╭', '─', '╮', '│', '╰', '╯'},
	LineHeavy:   {'┏', '━', '┓', '┃', '┗', '┛'},
}

// Box draws a border around the region edge and returns the interior
func (r Region) Box(line LineType, fg, bg terminal.RGB) Region {
	if r.W < 2 || r.H < 2 {
		return r.Sub(0, 0, 0, 0)
	}
	c := boxChars[line]
	r.Cell(0, 0, c[0], fg, bg, terminal.AttrNone)
	r.Cell(r.W-1, 0, c[2], fg, bg, terminal.AttrNone)
	r.Cell(0, r.H-1, c[4], fg, bg, terminal.AttrNone)
	r.Cell(r.W-1, r.H-1, c[5], fg, bg, terminal.AttrNone)
	for x := 1; x < r.W-1; x++ {
		r.Cell(x, 0, c[1], fg, bg, terminal.AttrNone)
		r.Cell(x, r.H-1, c[1], fg, bg, terminal.AttrNone)
	}
	for y := 1; y < r.H-1; y++ {
		r.Cell(0, y, c[3], fg, bg, terminal.AttrNone)
		r.Cell(r.W-1, y, c[3], fg, bg, terminal.AttrNone)
	}
	return r.Inset(1)
}

// HLine draws a horizontal line across the region at row y
func (r Region) HLine(y int, line LineType, fg terminal.RGB) {
	ch := boxChars[line][1]
	for x := 0; x < r.W; x++ {
		r.Cell(x, y, ch, fg, terminal.RGB{}, terminal.AttrNone)
	}
}

// Checkbox draws [x] or [ ] at position
func (r Region) Checkbox(x, y int, checked bool, fg, bg terminal.RGB) {
	mark := ' '
	if checked {
		mark = 'x'
	}
	r.Cell(x, y, '[', fg, bg, terminal.AttrNone)
	r.Cell(x+1, y, mark, fg, bg, terminal.AttrBold)
	r.Cell(x+2, y, ']', fg, bg, terminal.AttrNone)
}

// Chip draws a padded label on a colored background, returns columns used
func (r Region) Chip(x, y int, label string, style Style) int {
	end := r.TextStyled(x, y, " "+label+" ", style)
	return end - x
}
