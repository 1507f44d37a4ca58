package pointer

import "testing"

func TestHubDispatchOrder(t *testing.T) {
	h := NewHub()
	var got []int
	h.Observe(func(Event) { got = append(got, 1) })
	h.Observe(func(Event) { got = append(got, 2) })

	h.Dispatch(Event{X: 1, Y: 1, Button: ButtonLeft})

	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Fatalf("dispatch order = %v, want [1 2]", got)
	}
}

func TestHubReleaseIdempotent(t *testing.T) {
	h := NewHub()
	calls := 0
	release := h.Observe(func(Event) { calls++ })
	other := h.Observe(func(Event) {})

	release()
	release()

	if h.Len() != 1 {
		t.Fatalf("Len() = %d after double release, want 1", h.Len())
	}
	h.Dispatch(Event{})
	if calls != 0 {
		t.Errorf("released observer called %d times", calls)
	}

	other()
	if h.Len() != 0 {
		t.Errorf("Len() = %d, want 0", h.Len())
	}
}

func TestHubReleaseDuringDispatch(t *testing.T) {
	h := NewHub()
	var second func()
	secondCalls := 0

	var first func()
	first = h.Observe(func(Event) {
		first()
		second()
	})
	second = h.Observe(func(Event) { secondCalls++ })

	h.Dispatch(Event{})

	if secondCalls != 0 {
		t.Errorf("observer released earlier in dispatch was still called")
	}
	if h.Len() != 0 {
		t.Errorf("Len() = %d, want 0", h.Len())
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 2, Y: 3, W: 4, H: 2}

	tests := []struct {
		x, y int
		want bool
	}{
		{2, 3, true},
		{5, 4, true},
		{6, 4, false},
		{5, 5, false},
		{1, 3, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}

	if (Rect{X: 0, Y: 0}).Contains(0, 0) {
		t.Error("empty rect contains a cell")
	}
}
