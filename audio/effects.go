package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/skyfall/core"
	"github.com/lixenwraith/skyfall/parameter"
	"github.com/lixenwraith/skyfall/vmath"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a raw wave, optionally sliding linearly to a second frequency
type oscillator struct {
	freq     float64
	endFreq  float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *vmath.FastRand
}

// NewOscillator creates a fixed-frequency oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding from freq to endFreq over duration
func NewSweep(freq, endFreq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		endFreq:  endFreq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      vmath.NewFastRand(uint64(freq*1000) + 1),
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
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.position) / float64(o.duration)
		freq := o.freq + (o.endFreq-o.freq)*progress
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(total-att-rel, 0)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
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
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps a stream with linear gain vol
// math.Log2(0) is -Inf, so zero volume is expressed as silent
func newVolume(s beep.Streamer, vol float64) *effects.Volume {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateHitSound is a harsh descending saw buzz
func CreateHitSound(rate beep.SampleRate) beep.Streamer {
	osc := NewSweep(180, 90, parameter.HitSoundDuration, WaveSaw, rate)
	shaped := NewEnvelope(osc, parameter.HitSoundDuration, parameter.HitSoundAttack, parameter.HitSoundRelease, rate)
	return newVolume(shaped, 0.5)
}

// CreatePickupSound is a bright rising chirp
func CreatePickupSound(rate beep.SampleRate) beep.Streamer {
	osc := NewSweep(660, 1320, parameter.PickupSoundDuration, WaveSine, rate)
	shaped := NewEnvelope(osc, parameter.PickupSoundDuration, parameter.PickupSoundAttack, parameter.PickupSoundRelease, rate)
	return newVolume(shaped, 0.6)
}

// CreatePlaneSound is a swelling noise pass
func CreatePlaneSound(rate beep.SampleRate) beep.Streamer {
	noise := NewOscillator(0, parameter.PlaneSoundDuration, WaveNoise, rate)
	shaped := NewEnvelope(noise, parameter.PlaneSoundDuration, parameter.PlaneSoundAttack, parameter.PlaneSoundRelease, rate)
	return newVolume(shaped, 0.25)
}

// CreateGameOverSound is three falling square notes
func CreateGameOverSound(rate beep.SampleRate) beep.Streamer {
	notes := []float64{392.00, 311.13, 261.63} // G4, Eb4, C4
	seq := make([]beep.Streamer, 0, len(notes))
	for _, f := range notes {
		osc := NewOscillator(f, parameter.GameOverNoteDuration, WaveSquare, rate)
		seq = append(seq, NewEnvelope(osc, parameter.GameOverNoteDuration, parameter.GameOverNoteAttack, parameter.GameOverNoteRelease, rate))
	}
	return newVolume(beep.Seq(seq...), 0.3)
}

// CreateClickSound is a short blip for menu buttons
func CreateClickSound(rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(1200, parameter.ClickSoundDuration, WaveSine, rate)
	shaped := NewEnvelope(osc, parameter.ClickSoundDuration, parameter.ClickSoundAttack, parameter.ClickSoundRelease, rate)
	return newVolume(shaped, 0.4)
}

// GetSoundEffect returns the streamer for a sound type, nil for unknown types
func GetSoundEffect(soundType core.SoundType, rate beep.SampleRate) beep.Streamer {
	switch soundType {
	case core.SoundHit:
		return CreateHitSound(rate)
	case core.SoundPickup:
		return CreatePickupSound(rate)
	case core.SoundPlane:
		return CreatePlaneSound(rate)
	case core.SoundGameOver:
		return CreateGameOverSound(rate)
	case core.SoundClick:
		return CreateClickSound(rate)
	default:
		return nil
	}
}

// musicNotes is the bass line of one bar
var musicNotes = [...]float64{110.00, 130.81, 98.00, 146.83} // A2, C3, G2, D3

// NewMusicBar returns one bar of the background bass line
// Looped with beep.Loop for continuous playback
func NewMusicBar(rate beep.SampleRate) beep.Streamer {
	seq := make([]beep.Streamer, 0, len(musicNotes))
	for _, f := range musicNotes {
		osc := NewOscillator(f, parameter.MusicBeat, WaveSine, rate)
		seq = append(seq, NewEnvelope(osc, parameter.MusicBeat, parameter.MusicBeat/8, parameter.MusicBeat/2, rate))
	}
	return beep.Seq(seq...)
}
