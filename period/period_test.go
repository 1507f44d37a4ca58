package period

import (
	"testing"
	"time"

	"github.com/lixenwraith/reportdeck/pointer"
	"github.com/lixenwraith/reportdeck/terminal"
	"github.com/lixenwraith/reportdeck/terminal/tui"
)

func TestSelectorNavigation(t *testing.T) {
	s := NewSelector(nil, "90d")
	if s.Current().Key != "90d" {
		t.Fatalf("Current() = %q, want 90d", s.Current().Key)
	}

	s.Next()
	if s.Current().Key != "365d" {
		t.Errorf("Next() = %q, want 365d", s.Current().Key)
	}
	s.Next()
	if s.Current().Key != "7d" {
		t.Errorf("Next() should wrap to 7d, got %q", s.Current().Key)
	}
	s.Prev()
	if s.Current().Key != "365d" {
		t.Errorf("Prev() should wrap to 365d, got %q", s.Current().Key)
	}

	if s.Select("1y") {
		t.Error("unknown key accepted")
	}
	if s.Current().Key != "365d" {
		t.Error("failed Select changed the current period")
	}
}

func TestSelectorUnknownInitialKey(t *testing.T) {
	s := NewSelector(DefaultPeriods(), "bogus")
	if s.Current().Key != "7d" {
		t.Errorf("fallback = %q, want 7d", s.Current().Key)
	}
}

func TestSince(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 4, 5, 0, time.UTC)

	s := NewSelector(nil, "7d")
	want := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)
	if got := s.Since(now); !got.Equal(want) {
		t.Errorf("Since(7d) = %v, want %v", got, want)
	}

	s.Select("30d")
	want = time.Date(2026, 2, 9, 0, 0, 0, 0, time.UTC)
	if got := s.Since(now); !got.Equal(want) {
		t.Errorf("Since(30d) = %v, want %v", got, want)
	}
}

func TestDrawAndClick(t *testing.T) {
	const w = 60
	cells := make([]terminal.Cell, w)
	r := tui.NewRegion(cells, w, 0, 0, w, 1)
	r.Fill(terminal.RGB{})

	s := NewSelector(nil, "7d")
	used := s.Draw(r)

	if got := r.RowText(0); got != " 7 dias   30 dias   90 dias   12 meses" {
		t.Errorf("row = %q", got)
	}
	if used != 39 {
		t.Errorf("Draw used %d columns, want 39", used)
	}

	// Third segment starts at column 19
	if !s.HandleMouse(pointer.Event{X: 22, Y: 0, Button: pointer.ButtonLeft}) {
		t.Fatal("segment click not handled")
	}
	if s.Current().Key != "90d" {
		t.Errorf("clicked period = %q, want 90d", s.Current().Key)
	}
	if s.HandleMouse(pointer.Event{X: 50, Y: 0, Button: pointer.ButtonLeft}) {
		t.Error("click past the segments handled")
	}
}

func TestKnown(t *testing.T) {
	for _, key := range Keys() {
		if !Known(key) {
			t.Errorf("Known(%q) = false", key)
		}
	}
	for _, key := range []string{"", "14d", "30D"} {
		if Known(key) {
			t.Errorf("Known(%q) = true", key)
		}
	}
	if got := len(Keys()); got != len(DefaultPeriods()) {
		t.Errorf("Keys() has %d entries, want %d", got, len(DefaultPeriods()))
	}
}
