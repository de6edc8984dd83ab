// Package audio plays short phase-transition cues for the live preview.
// Tones are synthesized procedurally: a sine oscillator shaped by an
// attack/release envelope, mixed through the speaker.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/aubryn/sigilweave/phase"
)

const (
	sampleRate   = beep.SampleRate(48000)
	toneDuration = 140 * time.Millisecond
	attackSec    = 0.012
	releaseSec   = 0.08
	toneGain     = 0.25
)

// Ascending pentatonic steps, one per phase.
var phaseFreq = [4]float64{220.0, 293.66, 392.0, 329.63}

// Cue owns speaker initialization and plays one tone per phase entry.
type Cue struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewCue initializes the speaker. Callers without working audio output get
// an error and should continue silently.
func NewCue() (*Cue, error) {
	c := &Cue{mixer: &beep.Mixer{}}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return nil, errors.Wrap(err, "init speaker")
	}
	speaker.Play(c.mixer)
	c.initialized = true
	return c, nil
}

// Play queues the tone for the given phase. Safe on a nil receiver so
// callers can keep the cue optional.
func (c *Cue) Play(p phase.Phase) {
	if c == nil || int(p) >= len(phaseFreq) {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.initialized {
		return
	}
	buf := sineTone(phaseFreq[p], toneDuration)
	applyEnvelope(buf, attackSec, releaseSec)
	speaker.Lock()
	c.mixer.Add(&bufferStreamer{buf: buf})
	speaker.Unlock()
}

// Close silences and shuts down the mixer.
func (c *Cue) Close() {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.initialized {
		speaker.Lock()
		c.mixer.Clear()
		speaker.Unlock()
		c.initialized = false
	}
}

// sineTone generates mono float64 samples at unity gain.
func sineTone(freq float64, d time.Duration) []float64 {
	n := sampleRate.N(d)
	buf := make([]float64, n)
	phaseAcc := 0.0
	inc := freq / float64(sampleRate)
	for i := range buf {
		buf[i] = math.Sin(2*math.Pi*phaseAcc) * toneGain
		phaseAcc += inc
		if phaseAcc >= 1 {
			phaseAcc -= 1
		}
	}
	return buf
}

// applyEnvelope applies an attack/release ramp in place to avoid clicks.
func applyEnvelope(buf []float64, attack, release float64) {
	total := len(buf)
	attackSamples := int(attack * float64(sampleRate))
	releaseSamples := int(release * float64(sampleRate))
	releaseStart := total - releaseSamples
	if releaseStart < attackSamples {
		releaseStart = attackSamples
	}
	for i := range buf {
		vol := 1.0
		if i < attackSamples && attackSamples > 0 {
			vol = float64(i) / float64(attackSamples)
		} else if i >= releaseStart && releaseSamples > 0 {
			vol = float64(total-i) / float64(releaseSamples)
		}
		buf[i] *= vol
	}
}

// bufferStreamer plays a mono sample buffer once and drains.
type bufferStreamer struct {
	buf []float64
	pos int
}

func (b *bufferStreamer) Stream(samples [][2]float64) (int, bool) {
	if b.pos >= len(b.buf) {
		return 0, false
	}
	n := 0
	for i := range samples {
		if b.pos >= len(b.buf) {
			break
		}
		v := b.buf[b.pos]
		samples[i][0] = v
		samples[i][1] = v
		b.pos++
		n++
	}
	return n, true
}

func (b *bufferStreamer) Err() error { return nil }
