package tui

// ScrollState tracks the first visible item of a list taller than its viewport
type ScrollState struct {
	Offset  int // First visible item index
	Total   int // Total item count
	Visible int // Items that fit in the viewport
}

// Resize updates total and visible counts and reclamps the offset
func (s *ScrollState) Resize(total, visible int) {
	s.Total = total
	s.Visible = visible
	s.Clamp()
}

// ScrollBy adjusts offset by delta, clamping to valid range
func (s *ScrollState) ScrollBy(delta int) {
	s.Offset += delta
	s.Clamp()
}

// Clamp ensures offset is within valid range
func (s *ScrollState) Clamp() {
	s.Offset = ClampScroll(s.Offset, s.Visible, s.Total)
}

// Reset scrolls back to the top and forgets the last geometry
func (s *ScrollState) Reset() {
	*s = ScrollState{}
}

// Above returns the number of items hidden above the viewport
func (s *ScrollState) Above() int {
	return s.Offset
}

// Below returns the number of items hidden below the viewport
func (s *ScrollState) Below() int {
	return max(s.Total-s.Offset-s.Visible, 0)
}

// PageDelta returns recommended page scroll amount
func PageDelta(visible int) int {
	return max(visible/2, 1)
}

// ClampScroll ensures scroll offset is within valid range
func ClampScroll(scroll, visible, total int) int {
	if total <= visible {
		return 0
	}
	maxScroll := total - visible
	if scroll < 0 {
		return 0
	}
	if scroll > maxScroll {
		return maxScroll
	}
	return scroll
}
