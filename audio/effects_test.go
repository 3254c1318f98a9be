package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/skyfall/core"
	"github.com/lixenwraith/skyfall/parameter"
)

// drain streams s to exhaustion and returns sample count and peak amplitude
func drain(s beep.Streamer) (int, float64) {
	buf := make([][2]float64, 512)
	total := 0
	peak := 0.0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for j := 0; j < n; j++ {
			peak = math.Max(peak, math.Abs(buf[j][0]))
		}
		total += n
		if !ok {
			break
		}
	}
	return total, peak
}

func TestOscillatorLength(t *testing.T) {
	rate := beep.SampleRate(1000)
	n, peak := drain(NewOscillator(10, 500*time.Millisecond, WaveSquare, rate))
	if n != 500 {
		t.Errorf("Expected 500 samples, got %d", n)
	}
	if peak != 1.0 {
		t.Errorf("Expected unit square peak, got %f", peak)
	}
}

func TestEnvelopeRampsAndEnds(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(0, time.Second, WaveSquare, rate) // phase stays 0, constant +1
	env := NewEnvelope(osc, 100*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond, rate)

	buf := make([][2]float64, 200)
	n, _ := env.Stream(buf)
	if n != 100 {
		t.Fatalf("Expected envelope to cut at 100 samples, got %d", n)
	}
	if buf[0][0] != 0 {
		t.Errorf("Expected silent first sample, got %f", buf[0][0])
	}
	if buf[50][0] != 1 {
		t.Errorf("Expected full sustain, got %f", buf[50][0])
	}
	if buf[99][0] >= 0.2 {
		t.Errorf("Expected release near zero, got %f", buf[99][0])
	}
}

func TestEveryEffectIsFinite(t *testing.T) {
	for st := core.SoundType(0); st < core.SoundTypeCount; st++ {
		s := GetSoundEffect(st, sampleRate)
		if s == nil {
			t.Errorf("Expected effect for sound %d", st)
			continue
		}
		n, peak := drain(s)
		if n == 0 {
			t.Errorf("Expected samples for sound %d", st)
		}
		if n > sampleRate.N(2*time.Second) {
			t.Errorf("Expected short effect for sound %d, got %d samples", st, n)
		}
		if peak > 1.0 {
			t.Errorf("Expected no clipping for sound %d, got peak %f", st, peak)
		}
	}
	if GetSoundEffect(core.SoundTypeCount, sampleRate) != nil {
		t.Error("Expected nil for unknown sound")
	}
}

func TestMusicBarLength(t *testing.T) {
	n, _ := drain(NewMusicBar(sampleRate))
	want := sampleRate.N(parameter.MusicBeat) * len(musicNotes)
	if n != want {
		t.Errorf("Expected %d samples, got %d", want, n)
	}
}

func TestZeroVolumeIsSilent(t *testing.T) {
	v := newVolume(NewOscillator(440, time.Second, WaveSine, sampleRate), 0)
	if !v.Silent {
		t.Error("Expected zero volume to be silent")
	}
}

func TestSoundManagerWithoutSpeaker(t *testing.T) {
	sm := NewSoundManager()
	sm.Play(core.SoundHit)
	sm.Play(core.SoundHit)
	sm.Play(core.SoundType(-1))
	sm.SetMusic(true)

	if got := sm.PlayedCount(core.SoundHit); got != 2 {
		t.Errorf("Expected 2 hit requests, got %d", got)
	}

	sm.SetMuted(true)
	if !sm.IsMuted() {
		t.Error("Expected muted")
	}
	sm.Cleanup()
}
