package sprint

import (
	"testing"
	"time"
)

const frame = time.Second / 60

// seqRandom replays a fixed list of values, cycling when exhausted.
type seqRandom struct {
	vals []float64
	i    int
}

func (r *seqRandom) Float64() float64 {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v
}

// cornerRandom always returns 0, which spawns every berry at the top-left
// corner of the spawn band (80, 90).
func cornerRandom() RandomSource {
	return &seqRandom{vals: []float64{0}}
}

// eventLog records every event emitted by a controller.
type eventLog struct {
	events []SceneEvent
}

func (l *eventLog) EmitEvent(e SceneEvent) {
	l.events = append(l.events, e)
}

func (l *eventLog) count(t EventType) int {
	n := 0
	for _, e := range l.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

// newMounted returns a controller mounted 1:1 into a 1000x562 surface.
func newMounted(t *testing.T, rng RandomSource) *Controller {
	t.Helper()
	c := NewController(DefaultConfig())
	c.SetRandomSource(rng)
	c.Mount(SurfaceRect{Width: 1000, Height: 562})
	return c
}

func runFrames(c *Controller, n int) {
	for i := 0; i < n; i++ {
		c.Frame(frame)
	}
}

func expectPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	fn()
}
