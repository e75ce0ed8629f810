// Package audio turns audio cue signals into short synthesized tones.
package audio

import (
	"log"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/automoto/blastarena/components"
	cfg "github.com/automoto/blastarena/config"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/yohamta/donburi"
)

const sampleRate = beep.SampleRate(44100)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveNoise
)

// Tone describes the synthesized sound for one cue.
type Tone struct {
	Freq     float64 // start frequency in Hz
	Slide    float64 // frequency change in Hz per second
	Duration time.Duration
	Wave     Wave
	Gain     float64
}

// Tones maps every cue to its tone. Cues without an entry are silent.
var Tones = map[cfg.SoundID]Tone{
	cfg.SoundShot:        {Freq: 880, Slide: -2000, Duration: 60 * time.Millisecond, Wave: WaveSquare, Gain: 0.15},
	cfg.SoundSpecialShot: {Freq: 660, Slide: -1200, Duration: 120 * time.Millisecond, Wave: WaveSquare, Gain: 0.2},
	cfg.SoundHit:         {Freq: 220, Slide: -400, Duration: 120 * time.Millisecond, Wave: WaveSquare, Gain: 0.25},
	cfg.SoundFreeze:      {Freq: 1320, Slide: 800, Duration: 200 * time.Millisecond, Wave: WaveSine, Gain: 0.25},
	cfg.SoundBounce:      {Freq: 440, Slide: 1500, Duration: 50 * time.Millisecond, Wave: WaveSine, Gain: 0.2},
	cfg.SoundExplosion:   {Freq: 0, Duration: 350 * time.Millisecond, Wave: WaveNoise, Gain: 0.3},
	cfg.SoundWallImpact:  {Freq: 120, Duration: 40 * time.Millisecond, Wave: WaveSquare, Gain: 0.1},
	cfg.SoundPickup:      {Freq: 523, Slide: 1600, Duration: 180 * time.Millisecond, Wave: WaveSine, Gain: 0.25},
	cfg.SoundElimination: {Freq: 330, Slide: -500, Duration: 500 * time.Millisecond, Wave: WaveSquare, Gain: 0.25},
}

// oscillator plays a tone with a linear fade-out.
type oscillator struct {
	tone   Tone
	volume float64
	phase  float64
	pos    int
	length int
	noise  *rand.Rand
}

// NewStreamer returns a finite streamer for tone scaled by volume.
func NewStreamer(tone Tone, volume float64) beep.Streamer {
	length := sampleRate.N(tone.Duration)
	osc := &oscillator{
		tone:   tone,
		volume: volume,
		length: length,
		noise:  rand.New(rand.NewSource(int64(tone.Freq) + int64(length))),
	}
	return beep.Take(length, osc)
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(o.pos) / float64(sampleRate)

		var val float64
		switch o.tone.Wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = 1
			if o.phase >= 0.5 {
				val = -1
			}
		case WaveNoise:
			val = o.noise.Float64()*2 - 1
		}

		fade := 1.0
		if o.length > 0 {
			fade = 1 - float64(o.pos)/float64(o.length)
		}
		val *= o.tone.Gain * o.volume * math.Max(fade, 0)

		samples[i][0] = val
		samples[i][1] = val

		freq := math.Max(o.tone.Freq+o.tone.Slide*t, 0)
		o.phase += freq / float64(sampleRate)
		o.phase -= math.Floor(o.phase)
		o.pos++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// Player mixes cue tones onto the speaker. Every method is safe to call
// before Init or after a failed Init; nothing is played then.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Init opens the audio device. Calling it again is a no-op.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play mixes in the tone for one cue.
func (p *Player) Play(ev components.AudioCueEvent) {
	tone, ok := Tones[ev.Sound]
	if !ok {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}

	speaker.Lock()
	p.mixer.Add(NewStreamer(tone, ev.Volume))
	speaker.Unlock()
}

// Subscribe plays every audio cue published on w.
func (p *Player) Subscribe(w donburi.World) {
	components.AudioCue.Subscribe(w, func(w donburi.World, ev components.AudioCueEvent) {
		p.Play(ev)
	})
}

// Close silences the mixer and releases the device.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
	log.Println("Audio closed")
}
