// Package audio plays short feedback blips for movement and rotation. Sound
// is strictly best-effort: any failure logs once and the engine stays
// silent, the renderer never waits on it.
package audio

import (
	"log"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Blip frequencies; a lower thud for steps, a brighter tick for turns.
const (
	stepFreq = 220.0
	turnFreq = 440.0
)

// Engine owns the speaker. An engine that failed to initialize, or was
// muted, is safe to call and does nothing.
type Engine struct {
	ok bool
}

// New initializes the speaker unless muted. Init failure is non-fatal.
func New(mute bool) *Engine {
	e := &Engine{}
	if mute {
		return e
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		log.Printf("audio initialization failed: %v (continuing without sound)", err)
		return e
	}
	e.ok = true
	return e
}

// Enabled reports whether the speaker came up.
func (e *Engine) Enabled() bool {
	return e.ok
}

// Step plays the footstep blip.
func (e *Engine) Step() {
	e.blip(stepFreq, 40*time.Millisecond)
}

// Turn plays the rotation tick.
func (e *Engine) Turn() {
	e.blip(turnFreq, 25*time.Millisecond)
}

func (e *Engine) blip(freq float64, d time.Duration) {
	if !e.ok {
		return
	}
	tone, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(d), tone))
}

// Close releases the speaker.
func (e *Engine) Close() {
	if e.ok {
		speaker.Close()
	}
}
