// Package audio plays short click tones for dashboard interactions.
//
// Audio is optional: every Play method is a no-op until Initialize succeeds,
// so hosts without a sound device run unchanged.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Sound identifies a feedback tone
type Sound uint8

const (
	SoundSelect   Sound = iota // Selection grew
	SoundDeselect              // Selection shrank
	SoundOpen                  // Panel opened
)

var tones = [...]struct {
	freq     float64
	duration time.Duration
}{
	SoundSelect:   {freq: 1320, duration: 40 * time.Millisecond},
	SoundDeselect: {freq: 660, duration: 40 * time.Millisecond},
	SoundOpen:     {freq: 880, duration: 25 * time.Millisecond},
}

// Feedback mixes click tones into the speaker
type Feedback struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewFeedback creates an uninitialized feedback player with volume 0.0 - 1.0
func NewFeedback(volume float64) *Feedback {
	return &Feedback{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Initialize opens the speaker, repeated calls are no-ops
func (f *Feedback) Initialize() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	speaker.Play(f.mixer)
	f.initialized = true
	return nil
}

// Cleanup silences pending tones
func (f *Feedback) Cleanup() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.initialized {
		return
	}
	speaker.Lock()
	f.mixer.Clear()
	speaker.Unlock()
	// beep has no speaker Close, clearing the mixer is enough to stop output
	f.initialized = false
}

// Play queues a tone
func (f *Feedback) Play(s Sound) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.initialized || int(s) >= len(tones) {
		return
	}
	t := tones[s]
	st, err := blip(sampleRate, t.freq, t.duration, f.volume)
	if err != nil {
		return
	}
	speaker.Lock()
	f.mixer.Add(st)
	speaker.Unlock()
}

// SelectionSound picks the tone for a selection change of prev to next members
func SelectionSound(prev, next int) Sound {
	if next < prev {
		return SoundDeselect
	}
	return SoundSelect
}
