package chime

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	sprint "github.com/phanxgames/strawberrysprint"
)

func TestPlinkStreamsFixedLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	p := newPlink(rate, 880, 10*time.Millisecond)
	want := rate.N(10 * time.Millisecond)

	total := 0
	buf := make([][2]float64, 128)
	for {
		n, ok := p.Stream(buf)
		for i := 0; i < n; i++ {
			if math.Abs(buf[i][0]) > 0.3 || buf[i][0] != buf[i][1] {
				t.Fatalf("sample %d = %v out of range or not mono", total+i, buf[i])
			}
		}
		total += n
		if !ok {
			break
		}
	}
	if total != want {
		t.Errorf("streamed %d samples, want %d", total, want)
	}
	if p.Err() != nil {
		t.Errorf("Err = %v", p.Err())
	}
}

func TestPlinkDecays(t *testing.T) {
	rate := beep.SampleRate(8000)
	p := newPlink(rate, 440, 100*time.Millisecond)
	buf := make([][2]float64, rate.N(100*time.Millisecond))
	p.Stream(buf)

	peak := func(from, to int) float64 {
		m := 0.0
		for _, s := range buf[from:to] {
			m = math.Max(m, math.Abs(s[0]))
		}
		return m
	}
	n := len(buf)
	if peak(0, n/4) <= peak(3*n/4, n) {
		t.Error("tone should decay")
	}
}

func TestNoteForClimbsScale(t *testing.T) {
	if got := noteFor(440, 1); got != 440 {
		t.Errorf("first note = %v, want 440", got)
	}
	if got := noteFor(440, 6); math.Abs(got-880) > 1e-9 {
		t.Errorf("sixth note = %v, want 880", got)
	}
	if noteFor(440, 7) != noteFor(440, 1) {
		t.Error("scale should wrap")
	}
	if noteFor(440, 0) != 440 {
		t.Error("score below 1 should use the base tone")
	}
}

func TestChimeSilentUntilInitialized(t *testing.T) {
	c := New(Options{}, nil)
	c.EmitEvent(sprint.SceneEvent{Type: sprint.EventBerryEaten, Score: 1})
	c.Pop(2)
	c.Close()
	if c.opts.SampleRate != 44100 || c.opts.Tone != 880 {
		t.Errorf("defaults not applied: %+v", c.opts)
	}
}

func TestStreamerAppliesVolume(t *testing.T) {
	c := New(Options{Volume: -1}, nil)
	if _, ok := c.streamer(1).(*effects.Volume); !ok {
		t.Error("non-zero volume should wrap the streamer")
	}
}
