// Package feedback plays a short audible tick as a stand-in for haptic
// feedback on desktop, where no vibration motor exists.
package feedback

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// Clicker synthesizes a short tick through the system speaker every time
// Pulse is called. It satisfies tabstrip.Haptics.
type Clicker struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewClicker creates an uninitialized clicker. Call Init before use;
// Pulse on an uninitialized clicker is a no-op.
func NewClicker() *Clicker {
	return &Clicker{mixer: &beep.Mixer{}}
}

// Init opens the speaker and starts the mixer.
func (c *Clicker) Init() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*50)); err != nil {
		return err
	}
	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

// Close silences any playing ticks. The speaker itself stays open; beep
// exposes no way to shut it down.
func (c *Clicker) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	c.mixer.Clear()
	c.initialized = false
}

// Pulse plays one tick.
func (c *Clicker) Pulse() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	streamer := beep.Take(sampleRate.N(time.Millisecond*30), newTickGenerator(sampleRate))
	speaker.Lock()
	c.mixer.Add(streamer)
	speaker.Unlock()
}

// tickGenerator generates a short high-pitched tick with a sharp attack
// and an exponential decay.
type tickGenerator struct {
	sr  beep.SampleRate
	pos int
}

func newTickGenerator(sr beep.SampleRate) *tickGenerator {
	return &tickGenerator{sr: sr}
}

func (g *tickGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		envelope := math.Exp(-t * 120)
		sample := 0.25 * envelope * math.Sin(2*math.Pi*1800*t)
		sample += 0.1 * envelope * math.Sin(2*math.Pi*3600*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *tickGenerator) Err() error {
	return nil
}
