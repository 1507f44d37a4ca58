package audio

import (
	"testing"
	"time"
)

// TestFeedbackGracefulDegradation verifies playback is safe without initialization
func TestFeedbackGracefulDegradation(t *testing.T) {
	f := NewFeedback(0.5)

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("feedback panicked without initialization: %v", r)
		}
	}()

	f.Play(SoundSelect)
	f.Play(SoundDeselect)
	f.Play(SoundOpen)
	f.Play(Sound(99))
	f.Cleanup()
}

// TestFeedbackInitialization tolerates environments without audio devices
func TestFeedbackInitialization(t *testing.T) {
	f := NewFeedback(0.5)
	if err := f.Initialize(); err != nil {
		t.Logf("speaker unavailable (expected in test environment): %v", err)
		return
	}
	if err := f.Initialize(); err != nil {
		t.Errorf("second Initialize should be a no-op, got %v", err)
	}
	f.Play(SoundOpen)
	f.Cleanup()
}

func TestBlipLength(t *testing.T) {
	st, err := blip(sampleRate, 440, 10*time.Millisecond, 1)
	if err != nil {
		t.Fatalf("blip: %v", err)
	}

	want := sampleRate.N(10 * time.Millisecond)
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := st.Stream(buf)
		total += n
		if !ok || n == 0 {
			break
		}
	}
	if total != want {
		t.Errorf("blip produced %d samples, want %d", total, want)
	}
}

func TestEnvelopeShape(t *testing.T) {
	src := constant{v: 1}
	env := newEnvelope(&src, 10*time.Millisecond, 2*time.Millisecond, 4*time.Millisecond, sampleRate)

	buf := make([][2]float64, sampleRate.N(10*time.Millisecond)+10)
	n, _ := env.Stream(buf)
	if n != sampleRate.N(10*time.Millisecond) {
		t.Fatalf("envelope streamed %d samples", n)
	}
	if buf[0][0] != 0 {
		t.Errorf("attack should start silent, got %f", buf[0][0])
	}
	mid := n / 2
	if buf[mid][0] != 1 {
		t.Errorf("sustain level = %f, want 1", buf[mid][0])
	}
	if buf[n-1][0] >= buf[mid][0] {
		t.Errorf("release did not fade: %f", buf[n-1][0])
	}
}

func TestSelectionSound(t *testing.T) {
	if SelectionSound(1, 2) != SoundSelect {
		t.Error("growth should select")
	}
	if SelectionSound(3, 0) != SoundDeselect {
		t.Error("shrink should deselect")
	}
}

type constant struct{ v float64 }

func (c *constant) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		samples[i][0], samples[i][1] = c.v, c.v
	}
	return len(samples), true
}

func (c *constant) Err() error { return nil }
