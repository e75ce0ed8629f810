package audio

import (
	"math"
	"testing"
	"time"

	"github.com/automoto/blastarena/components"
	cfg "github.com/automoto/blastarena/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"pgregory.net/rapid"
)

func drain(t *testing.T, s interface {
	Stream([][2]float64) (int, bool)
}) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok || n == 0 {
			return out
		}
	}
}

func TestEveryCueHasATone(t *testing.T) {
	for id := cfg.SoundShot; id <= cfg.SoundElimination; id++ {
		tone, ok := Tones[id]
		require.True(t, ok, "sound %d", id)
		assert.Positive(t, tone.Duration)
		assert.Positive(t, tone.Gain)
	}
	_, ok := Tones[cfg.SoundNone]
	assert.False(t, ok)
}

func TestStreamerLength(t *testing.T) {
	tone := Tone{Freq: 440, Duration: 100 * time.Millisecond, Wave: WaveSine, Gain: 0.5}
	samples := drain(t, NewStreamer(tone, 1))
	assert.Len(t, samples, sampleRate.N(100*time.Millisecond))
}

func TestStreamerFadesOut(t *testing.T) {
	tone := Tone{Freq: 100, Duration: 50 * time.Millisecond, Wave: WaveSquare, Gain: 0.5}
	samples := drain(t, NewStreamer(tone, 1))
	require.NotEmpty(t, samples)

	assert.InDelta(t, 0.5, math.Abs(samples[0][0]), 1e-9)
	assert.Less(t, math.Abs(samples[len(samples)-1][0]), 0.01)
}

func TestStreamerZeroVolumeIsSilent(t *testing.T) {
	samples := drain(t, NewStreamer(Tones[cfg.SoundExplosion], 0))
	for _, s := range samples {
		assert.Zero(t, s[0])
		assert.Zero(t, s[1])
	}
}

func TestStreamerStaysWithinGain(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		tone := Tone{
			Freq:     rapid.Float64Range(0, 4000).Draw(rt, "freq"),
			Slide:    rapid.Float64Range(-4000, 4000).Draw(rt, "slide"),
			Duration: time.Duration(rapid.IntRange(1, 200).Draw(rt, "ms")) * time.Millisecond,
			Wave:     Wave(rapid.IntRange(0, 2).Draw(rt, "wave")),
			Gain:     rapid.Float64Range(0, 1).Draw(rt, "gain"),
		}
		volume := rapid.Float64Range(0, 2).Draw(rt, "volume")

		var buf [256][2]float64
		s := NewStreamer(tone, volume)
		for {
			n, ok := s.Stream(buf[:])
			for _, v := range buf[:n] {
				if math.Abs(v[0]) > tone.Gain*volume+1e-9 || v[0] != v[1] {
					rt.Fatalf("sample %v out of range for gain %v volume %v", v, tone.Gain, volume)
				}
			}
			if !ok || n == 0 {
				return
			}
		}
	})
}

func TestPlayerWithoutDevice(t *testing.T) {
	p := NewPlayer()
	w := donburi.NewWorld()
	p.Subscribe(w)

	assert.NotPanics(t, func() {
		p.Play(components.AudioCueEvent{Sound: cfg.SoundShot, Volume: 1})
		p.Play(components.AudioCueEvent{Sound: cfg.SoundNone})
		components.AudioCue.Publish(w, components.AudioCueEvent{Sound: cfg.SoundHit, Volume: 1.5})
		events.ProcessAllEvents(w)
		p.Close()
	})
	assert.Zero(t, p.mixer.Len())
}
