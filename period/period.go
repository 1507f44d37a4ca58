// Package period provides the single-choice reporting window selector.
package period

import (
	"time"

	"github.com/lixenwraith/reportdeck/pointer"
	"github.com/lixenwraith/reportdeck/terminal"
	"github.com/lixenwraith/reportdeck/terminal/tui"
)

// Period is a trailing reporting window
type Period struct {
	Key   string
	Label string
	Days  int
}

// DefaultPeriods returns the stock windows, shortest first
func DefaultPeriods() []Period {
	return []Period{
		{Key: "7d", Label: "7 dias", Days: 7},
		{Key: "30d", Label: "30 dias", Days: 30},
		{Key: "90d", Label: "90 dias", Days: 90},
		{Key: "365d", Label: "12 meses", Days: 365},
	}
}

// Selector holds exactly one active period
type Selector struct {
	periods []Period
	current int
	theme   tui.Theme

	segments []pointer.Rect // Hit rect per period from the last Draw
}

// Known reports whether key names one of the default periods
func Known(key string) bool {
	for _, p := range DefaultPeriods() {
		if p.Key == key {
			return true
		}
	}
	return false
}

// Keys lists the default period keys in display order
func Keys() []string {
	periods := DefaultPeriods()
	keys := make([]string, len(periods))
	for i, p := range periods {
		keys[i] = p.Key
	}
	return keys
}

// NewSelector creates a selector on key, falling back to the first period
func NewSelector(periods []Period, key string) *Selector {
	if len(periods) == 0 {
		periods = DefaultPeriods()
	}
	s := &Selector{periods: periods, theme: tui.DefaultTheme}
	s.Select(key)
	return s
}

// Current returns the active period
func (s *Selector) Current() Period {
	return s.periods[s.current]
}

// Periods returns the available windows
func (s *Selector) Periods() []Period {
	return s.periods
}

// Select activates the period with key, returns false if unknown
func (s *Selector) Select(key string) bool {
	for i, p := range s.periods {
		if p.Key == key {
			s.current = i
			return true
		}
	}
	return false
}

// Next advances to the following period, wrapping around
func (s *Selector) Next() {
	s.current = (s.current + 1) % len(s.periods)
}

// Prev moves to the preceding period, wrapping around
func (s *Selector) Prev() {
	s.current = (s.current - 1 + len(s.periods)) % len(s.periods)
}

// Since returns the start of the active window ending at now, truncated to the day
func (s *Selector) Since(now time.Time) time.Time {
	y, m, d := now.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	return day.AddDate(0, 0, -(s.Current().Days - 1))
}

// Draw renders the periods as a segmented row, returns columns used
func (s *Selector) Draw(r tui.Region) int {
	s.segments = s.segments[:0]
	x := 0
	for i, p := range s.periods {
		style := tui.Style{Fg: s.theme.StatusFg, Bg: s.theme.CursorBg}
		if i == s.current {
			style = tui.Style{Fg: s.theme.ChipFg, Bg: s.theme.ChipBg, Attr: terminal.AttrBold}
		}
		start := x
		x += r.Chip(x, 0, p.Label, style)
		s.segments = append(s.segments, r.Sub(start, 0, x-start, 1).Rect())
		x++
	}
	return max(x-1, 0)
}

// HandleMouse selects the clicked segment, returns true if a segment was hit
func (s *Selector) HandleMouse(ev pointer.Event) bool {
	if ev.Button != pointer.ButtonLeft {
		return false
	}
	for i, seg := range s.segments {
		if seg.Contains(ev.X, ev.Y) {
			s.current = i
			return true
		}
	}
	return false
}
