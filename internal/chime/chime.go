package chime

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"

	sprint "github.com/phanxgames/strawberrysprint"
)

// Options tune the pop sound.
type Options struct {
	SampleRate int
	Tone       float64       // base frequency in Hz
	Length     time.Duration // length of one pop
	Volume     float64       // beep volume, 0 = unchanged, negative is quieter
}

// pentatonic steps in semitones; successive eats climb through them.
var pentatonic = [...]float64{0, 2, 4, 7, 9, 12}

// Chime plays a short plink each time a berry is eaten. It implements
// sprint.EventSink. Until Initialize succeeds every call is silent.
type Chime struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	opts        Options
	mixer       *beep.Mixer
	initialized bool
	log         *zap.Logger
}

// New creates a chime. Call Initialize to open the audio device.
func New(opts Options, log *zap.Logger) *Chime {
	if opts.SampleRate <= 0 {
		opts.SampleRate = 44100
	}
	if opts.Tone <= 0 {
		opts.Tone = 880
	}
	if opts.Length <= 0 {
		opts.Length = 60 * time.Millisecond
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Chime{
		rate:  beep.SampleRate(opts.SampleRate),
		opts:  opts,
		mixer: &beep.Mixer{},
		log:   log,
	}
}

// Initialize opens the speaker and starts the mixer.
func (c *Chime) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}
	if err := speaker.Init(c.rate, c.rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

// EmitEvent plays a pop for every eaten berry.
func (c *Chime) EmitEvent(e sprint.SceneEvent) {
	if e.Type == sprint.EventBerryEaten {
		c.Pop(e.Score)
	}
}

// Pop plays one plink pitched by score.
func (c *Chime) Pop(score int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Lock()
	c.mixer.Add(c.streamer(score))
	speaker.Unlock()
}

func (c *Chime) streamer(score int) beep.Streamer {
	s := beep.Take(c.rate.N(c.opts.Length), newPlink(c.rate, noteFor(c.opts.Tone, score), c.opts.Length))
	if c.opts.Volume == 0 {
		return s
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: c.opts.Volume}
}

// Close silences the mixer and releases the speaker.
func (c *Chime) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Lock()
	c.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	c.initialized = false
	c.log.Debug("audio closed")
}

// noteFor returns the frequency for the score-th eat.
func noteFor(base float64, score int) float64 {
	if score < 1 {
		score = 1
	}
	step := pentatonic[(score-1)%len(pentatonic)]
	return base * math.Pow(2, step/12)
}

// plink is a sine tone with an exponential decay envelope.
type plink struct {
	freq     float64
	phase    float64
	rate     beep.SampleRate
	duration int
	position int
}

func newPlink(rate beep.SampleRate, freq float64, length time.Duration) *plink {
	return &plink{freq: freq, rate: rate, duration: rate.N(length)}
}

func (p *plink) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if p.position >= p.duration {
			return i, i > 0
		}
		env := math.Exp(-5 * float64(p.position) / float64(p.duration))
		val := 0.3 * env * math.Sin(2*math.Pi*p.phase)
		samples[i][0] = val
		samples[i][1] = val

		p.phase += p.freq / float64(p.rate)
		p.phase -= math.Floor(p.phase)
		p.position++
	}
	return len(samples), true
}

func (p *plink) Err() error { return nil }
