// Package tui provides immediate-mode drawing primitives for the terminal package.
//
// Core abstraction is Region, a rectangular window onto a cell buffer. All
// drawing is relative to region bounds with automatic clipping; widgets keep
// their own state and redraw from it every frame.
//
// Usage pattern:
//
//	cells := make([]terminal.Cell, w*h)
//	root := tui.NewRegion(cells, w, 0, 0, w, h)
//	root.Fill(theme.Bg)
//	header, body := tui.SplitVFixed(root, 1)
//	header.Text(1, 0, "REPORT", theme.HeaderFg, theme.HeaderBg, terminal.AttrBold)
//	term.Flush(cells, w, h)
package tui

import (
	"github.com/lixenwraith/reportdeck/pointer"
	"github.com/lixenwraith/reportdeck/terminal"
)

// Region represents a rectangular area within a cell buffer
// All coordinates are relative to the region's origin
type Region struct {
	Cells  []terminal.Cell
	TotalW int // Total width of the underlying cell buffer
	X, Y   int // Absolute position in cell buffer
	W, H   int
}

// NewRegion creates a region referencing a cell slice with bounds
func NewRegion(cells []terminal.Cell, totalW, x, y, w, h int) Region {
	return Region{Cells: cells, TotalW: totalW, X: x, Y: y, W: w, H: h}
}

// Sub returns a nested region relative to the parent, clipped to parent bounds
func (r Region) Sub(x, y, w, h int) Region {
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	w = max(min(w, r.W-x), 0)
	h = max(min(h, r.H-y), 0)

	return Region{
		Cells:  r.Cells,
		TotalW: r.TotalW,
		X:      r.X + x,
		Y:      r.Y + y,
		W:      w,
		H:      h,
	}
}

// Inset returns a region shrunk by n cells on all sides
func (r Region) Inset(n int) Region {
	return r.Sub(n, n, r.W-2*n, r.H-2*n)
}

// Row returns the single-row sub-region at y
func (r Region) Row(y int) Region {
	return r.Sub(0, y, r.W, 1)
}

// Rect returns the absolute screen rectangle covered by the region
func (r Region) Rect() pointer.Rect {
	return pointer.Rect{X: r.X, Y: r.Y, W: r.W, H: r.H}
}

// Cell sets a single cell with bounds checking
func (r Region) Cell(x, y int, ch rune, fg, bg terminal.RGB, attr terminal.Attr) {
	if x < 0 || x >= r.W || y < 0 || y >= r.H {
		return
	}
	absX := r.X + x
	if uint(absX) >= uint(r.TotalW) {
		return
	}
	idx := (r.Y+y)*r.TotalW + absX
	if uint(idx) < uint(len(r.Cells)) {
		r.Cells[idx] = terminal.Cell{Rune: ch, Fg: fg, Bg: bg, Attrs: attr}
	}
}

// At returns the cell at region-relative position, zero Cell when out of bounds
func (r Region) At(x, y int) terminal.Cell {
	if x < 0 || x >= r.W || y < 0 || y >= r.H {
		return terminal.Cell{}
	}
	idx := (r.Y+y)*r.TotalW + r.X + x
	if uint(idx) >= uint(len(r.Cells)) {
		return terminal.Cell{}
	}
	return r.Cells[idx]
}

// Fill fills entire region with background color
func (r Region) Fill(bg terminal.RGB) {
	for y := 0; y < r.H; y++ {
		for x := 0; x < r.W; x++ {
			r.Cell(x, y, ' ', terminal.RGB{}, bg, terminal.AttrNone)
		}
	}
}

// SplitVFixed splits into a top region of topH rows and the remainder
func SplitVFixed(r Region, topH int) (top, bottom Region) {
	topH = max(min(topH, r.H), 0)
	return r.Sub(0, 0, r.W, topH), r.Sub(0, topH, r.W, r.H-topH)
}

// SplitHFixed splits into a left region of leftW columns and the remainder
func SplitHFixed(r Region, leftW int) (left, right Region) {
	leftW = max(min(leftW, r.W), 0)
	return r.Sub(0, 0, leftW, r.H), r.Sub(leftW, 0, r.W-leftW, r.H)
}
