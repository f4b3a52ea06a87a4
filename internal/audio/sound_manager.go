package audio

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)
)

// Effect lengths.
const (
	laserDuration     = 120 * time.Millisecond
	explosionDuration = 350 * time.Millisecond
	blipDuration      = 80 * time.Millisecond
)

// SoundManager plays effects through the local sound card.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	// Initialize speaker with sample rate and buffer size
	err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Close stops all sounds.
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// Laser plays a short falling zap.
func (sm *SoundManager) Laser() {
	sm.play(beep.Take(sampleRate.N(laserDuration), NewLaserGenerator(sampleRate, laserDuration)))
}

// Explosion plays a decaying noise burst.
func (sm *SoundManager) Explosion() {
	sm.play(beep.Take(sampleRate.N(explosionDuration), NewExplosionGenerator(sampleRate, explosionDuration, time.Now().UnixNano())))
}

// ReloadDone plays a short high blip.
func (sm *SoundManager) ReloadDone() {
	tone, err := generators.SineTone(sampleRate, 880)
	if err != nil {
		return
	}
	sm.play(beep.Take(sampleRate.N(blipDuration), &volume{Streamer: tone, gain: 0.15}))
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// LaserGenerator sweeps a sine from high to low pitch.
type LaserGenerator struct {
	sr     beep.SampleRate
	pos    int
	length int
	phase  float64
}

// NewLaserGenerator creates a laser zap lasting d.
func NewLaserGenerator(sr beep.SampleRate, d time.Duration) *LaserGenerator {
	return &LaserGenerator{
		sr:     sr,
		length: max(sr.N(d), 1),
	}
}

func (g *LaserGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		progress := math.Min(float64(g.pos)/float64(g.length), 1)
		freq := 1400 - 1100*progress
		g.phase += 2 * math.Pi * freq / float64(g.sr)

		sample := math.Sin(g.phase) * (1 - progress) * 0.25

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *LaserGenerator) Err() error {
	return nil
}

// ExplosionGenerator produces white noise under an exponential decay.
type ExplosionGenerator struct {
	sr     beep.SampleRate
	pos    int
	length int
	rng    *rand.Rand
	last   float64
}

// NewExplosionGenerator creates an explosion lasting roughly d.
func NewExplosionGenerator(sr beep.SampleRate, d time.Duration, seed int64) *ExplosionGenerator {
	return &ExplosionGenerator{
		sr:     sr,
		length: max(sr.N(d), 1),
		rng:    rand.New(rand.NewSource(seed)),
	}
}

func (g *ExplosionGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.length)
		envelope := math.Exp(-5 * t)

		// One-pole low-pass keeps the rumble
		noise := g.rng.Float64()*2 - 1
		g.last += 0.2 * (noise - g.last)
		sample := g.last * envelope * 0.6

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ExplosionGenerator) Err() error {
	return nil
}

// volume scales a streamer by a constant gain.
type volume struct {
	beep.Streamer
	gain float64
}

func (v *volume) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = v.Streamer.Stream(samples)
	for i := range samples[:n] {
		samples[i][0] *= v.gain
		samples[i][1] *= v.gain
	}
	return n, ok
}
