package tui

import (
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/reportdeck/terminal"
)

// RuneLen returns display width in cells
func RuneLen(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate shortens s to maxLen cells with a trailing …
func Truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxLen {
		return s
	}
	return runewidth.Truncate(s, maxLen, "…")
}

// Text renders text at position, truncating at region edge
// Returns the column after the last cell written
func (r Region) Text(x, y int, s string, fg, bg terminal.RGB, attr terminal.Attr) int {
	if y < 0 || y >= r.H {
		return x
	}
	col := x
	for _, ch := range s {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		if col+w > r.W {
			break
		}
		r.Cell(col, y, ch, fg, bg, attr)
		// Wide runes occupy a trailing cell
		for i := 1; i < w; i++ {
			r.Cell(col+i, y, 0, fg, bg, attr)
		}
		col += w
	}
	return col
}

// TextStyled renders text using Style struct
func (r Region) TextStyled(x, y int, s string, style Style) int {
	return r.Text(x, y, s, style.Fg, style.Bg, style.Attr)
}

// TextRight renders text right-aligned on row
func (r Region) TextRight(y int, s string, fg, bg terminal.RGB, attr terminal.Attr) {
	r.Text(r.W-RuneLen(s), y, s, fg, bg, attr)
}

// TextCenter renders text centered on row
func (r Region) TextCenter(y int, s string, fg, bg terminal.RGB, attr terminal.Attr) {
	r.Text((r.W-RuneLen(s))/2, y, s, fg, bg, attr)
}

// RowText reads back the runes of row y, trailing spaces trimmed
func (r Region) RowText(y int) string {
	out := make([]rune, 0, r.W)
	for x := 0; x < r.W; x++ {
		ch := r.At(x, y).Rune
		if ch == 0 {
			continue
		}
		out = append(out, ch)
	}
	end := len(out)
	for end > 0 && out[end-1] == ' ' {
		end--
	}
	return string(out[:end])
}
