package tui

import "github.com/lixenwraith/reportdeck/terminal"

// Style bundles foreground, background, and attributes for text rendering
type Style struct {
	Fg   terminal.RGB
	Bg   terminal.RGB
	Attr terminal.Attr
}

// Theme defines semantic colors for widgets
type Theme struct {
	Bg       terminal.RGB
	Fg       terminal.RGB
	CursorBg terminal.RGB
	PanelBg  terminal.RGB

	Selected   terminal.RGB
	Unselected terminal.RGB
	ChipBg     terminal.RGB
	ChipFg     terminal.RGB

	Border   terminal.RGB
	HeaderBg terminal.RGB
	HeaderFg terminal.RGB
	StatusFg terminal.RGB
	HintFg   terminal.RGB
	Error    terminal.RGB
}

// DefaultTheme provides reasonable defaults
var DefaultTheme = Theme{
	Bg:         terminal.RGB{R: 20, G: 20, B: 30},
	Fg:         terminal.RGB{R: 200, G: 200, B: 200},
	CursorBg:   terminal.RGB{R: 50, G: 50, B: 70},
	PanelBg:    terminal.RGB{R: 30, G: 30, B: 45},
	Selected:   terminal.RGB{R: 80, G: 200, B: 80},
	Unselected: terminal.RGB{R: 100, G: 100, B: 100},
	ChipBg:     terminal.RGB{R: 40, G: 70, B: 110},
	ChipFg:     terminal.RGB{R: 230, G: 240, B: 255},
	Border:     terminal.RGB{R: 60, G: 80, B: 100},
	HeaderBg:   terminal.RGB{R: 40, G: 60, B: 90},
	HeaderFg:   terminal.RGB{R: 255, G: 255, B: 255},
	StatusFg:   terminal.RGB{R: 140, G: 140, B: 140},
	HintFg:     terminal.RGB{R: 100, G: 180, B: 200},
	Error:      terminal.RGB{R: 255, G: 80, B: 80},
}
