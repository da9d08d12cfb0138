package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// Sound identifies a feedback effect
type Sound int

const (
	SoundStep Sound = iota // one slot moved
	SoundSnap              // jump to a decision point
	SoundBump              // move rejected by a wall
	SoundWin               // goal reached
)

// Effect timings
const (
	stepDuration  = 40 * time.Millisecond
	snapDuration  = 120 * time.Millisecond
	bumpDuration  = 150 * time.Millisecond
	chimeDuration = 180 * time.Millisecond
	attack        = 5 * time.Millisecond
	release       = 30 * time.Millisecond
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope wraps s with an attack/release envelope over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if releaseStart := e.totalSamples - e.releaseSamples; e.position >= releaseStart && e.releaseSamples > 0 {
			vol = math.Max(0, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// math.Log2(0) is -Inf, so zero volume is expressed as silence
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

func tone(freq float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, d, wave, rate), d, attack, release, rate)
}

// NewEffect builds the streamer for a sound at the given master volume
func NewEffect(s Sound, rate beep.SampleRate, vol float64) beep.Streamer {
	switch s {
	case SoundStep:
		return newVolume(tone(660, stepDuration, WaveSine, rate), vol*0.4)
	case SoundSnap:
		// Rising two-step blip
		return newVolume(beep.Seq(
			tone(520, snapDuration/2, WaveSine, rate),
			tone(780, snapDuration/2, WaveSine, rate),
		), vol*0.5)
	case SoundBump:
		return newVolume(tone(110, bumpDuration, WaveSaw, rate), vol*0.3)
	case SoundWin:
		return newVolume(winChime(rate), vol)
	}
	return nil
}

// winChime plays an ascending major arpeggio
func winChime(rate beep.SampleRate) beep.Streamer {
	notes := []float64{523.25, 659.25, 783.99, 1046.50}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, f := range notes {
		sine, err := generators.SineTone(rate, f)
		if err != nil {
			// Frequency above Nyquist for this rate, fall back to the oscillator
			parts = append(parts, tone(f, chimeDuration, WaveSine, rate))
			continue
		}
		n := rate.N(chimeDuration)
		parts = append(parts, NewEnvelope(beep.Take(n, sine), chimeDuration, attack, release*2, rate))
	}
	return beep.Seq(parts...)
}
