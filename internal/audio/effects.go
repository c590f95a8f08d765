package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Sound lengths
const (
	bumpDuration    = 70 * time.Millisecond
	bumpAttack      = 5 * time.Millisecond
	bumpRelease     = 40 * time.Millisecond
	chimeNoteLength = 160 * time.Millisecond
	chimeAttack     = 10 * time.Millisecond
	chimeRelease    = 90 * time.Millisecond
	musicNoteLength = 320 * time.Millisecond
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveTriangle
)

func sample(wave WaveType, phase float64) float64 {
	switch wave {
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case WaveTriangle:
		return 1 - 4*math.Abs(phase-0.5)
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// oscillator generates a fixed-length tone
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a tone of the given frequency and length.
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
		val := sample(o.wave, o.phase)
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope fades s in over attack and out over the final release of duration.
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
		vol := gain(e.position, e.totalSamples, e.attackSamples, e.releaseSamples)
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// gain returns the attack/release volume at position pos of a note.
func gain(pos, total, attack, release int) float64 {
	vol := 1.0
	if attack > 0 && pos < attack {
		vol = float64(pos) / float64(attack)
	}
	if release > 0 && pos >= total-release {
		tail := float64(total-pos) / float64(release)
		if tail < vol {
			vol = tail
		}
	}
	if vol < 0 {
		return 0
	}
	return vol
}

// newVolume scales s linearly; math.Log2(0) is -Inf so zero means silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateBumpSound generates a short low thud for walking into a wall.
func CreateBumpSound(rate beep.SampleRate, vol float64) beep.Streamer {
	osc := NewOscillator(110, bumpDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, bumpDuration, bumpAttack, bumpRelease, rate)
	return newVolume(shaped, vol)
}

// CreateVictorySound generates a rising C major arpeggio.
func CreateVictorySound(rate beep.SampleRate, vol float64) beep.Streamer {
	notes := []float64{523.25, 659.25, 783.99, 1046.50}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, freq := range notes {
		osc := NewOscillator(freq, chimeNoteLength, WaveSine, rate)
		parts = append(parts, NewEnvelope(osc, chimeNoteLength, chimeAttack, chimeRelease, rate))
	}
	return newVolume(beep.Seq(parts...), vol)
}

// melody loops a note sequence forever.
type melody struct {
	notes       []float64
	noteSamples int
	attack      int
	release     int
	rate        beep.SampleRate

	index    int
	position int
	phase    float64
}

// NewMusic creates the endless background tune.
func NewMusic(rate beep.SampleRate) beep.Streamer {
	return &melody{
		// A minor arpeggio walking down and back up.
		notes:       []float64{220.00, 261.63, 329.63, 440.00, 392.00, 329.63, 261.63, 246.94},
		noteSamples: rate.N(musicNoteLength),
		attack:      rate.N(20 * time.Millisecond),
		release:     rate.N(120 * time.Millisecond),
		rate:        rate,
	}
}

func (m *melody) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		freq := m.notes[m.index]
		val := sample(WaveTriangle, m.phase) * gain(m.position, m.noteSamples, m.attack, m.release)
		samples[i][0] = val
		samples[i][1] = val

		m.phase += freq / float64(m.rate)
		m.phase -= math.Floor(m.phase)
		m.position++
		if m.position >= m.noteSamples {
			m.position = 0
			m.index = (m.index + 1) % len(m.notes)
		}
	}
	return len(samples), true
}

func (m *melody) Err() error { return nil }
