package sprint

import (
	"context"
	"errors"
	"testing"
	"time"
)

type shotRecorder struct {
	labels []string
}

func (s *shotRecorder) Screenshot(label string) {
	s.labels = append(s.labels, label)
}

func TestLoadTestScript(t *testing.T) {
	data := []byte(`
steps:
  - action: screenshot
    label: initial
  - action: click
    x: 100
    y: 200
  - action: wait
    frames: 3
  - action: spawnAt
    x: 500
    y: 353
`)

	runner, err := LoadTestScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.steps) != 4 {
		t.Fatalf("expected 4 steps, got %d", len(runner.steps))
	}
	if runner.steps[0].Action != "screenshot" || runner.steps[0].Label != "initial" {
		t.Error("step 0 mismatch")
	}
	if runner.steps[1].Action != "click" || runner.steps[1].X != 100 || runner.steps[1].Y != 200 {
		t.Error("step 1 mismatch")
	}
	if runner.steps[2].Action != "wait" || runner.steps[2].Frames != 3 {
		t.Error("step 2 mismatch")
	}
}

func TestLoadTestScript_Invalid(t *testing.T) {
	if _, err := LoadTestScript([]byte("steps: [unterminated")); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestLoadTestScript_Empty(t *testing.T) {
	if _, err := LoadTestScript([]byte("steps: []")); err == nil {
		t.Error("expected error for empty steps")
	}
}

func TestLoadTestScript_UnknownAction(t *testing.T) {
	if _, err := LoadTestScript([]byte("steps:\n  - action: jump\n")); err == nil {
		t.Error("expected error for unknown action")
	}
}

func TestRunnerClickSpawnsBerry(t *testing.T) {
	c := newMounted(t, cornerRandom())
	shots := &shotRecorder{}
	c.SetScreenshotter(shots)

	runner, err := LoadTestScript([]byte(`
steps:
  - action: move
    x: 300
    y: 300
  - action: click
    x: 300
    y: 300
  - action: screenshot
    label: after-click
`))
	if err != nil {
		t.Fatal(err)
	}
	c.SetTestRunner(runner)

	for i := 0; i < 10 && !runner.Done(); i++ {
		c.Frame(frame)
	}

	if !runner.Done() {
		t.Fatal("runner should finish")
	}
	if n := len(c.State().Berries); n != 5 {
		t.Errorf("berries = %d, want 5", n)
	}
	if !c.State().Pointer.Inside {
		t.Error("pointer should be inside after move")
	}
	if len(shots.labels) != 1 || shots.labels[0] != "after-click" {
		t.Errorf("screenshots = %v", shots.labels)
	}
}

func TestRunnerCommands(t *testing.T) {
	c := newMounted(t, cornerRandom())
	runner, err := LoadTestScript([]byte(`
steps:
  - action: spawn
  - action: pause
  - action: wait
    frames: 5
  - action: reset
  - action: log
`))
	if err != nil {
		t.Fatal(err)
	}
	c.SetTestRunner(runner)

	for i := 0; i < 30 && !runner.Done(); i++ {
		c.Frame(frame)
	}

	if !runner.Done() {
		t.Fatal("runner should finish")
	}
	if !c.IsPaused() {
		t.Error("pause step should leave the scene paused")
	}
	if n := len(c.State().Berries); n != 4 {
		t.Errorf("berries = %d, want 4 after reset", n)
	}
}

func TestRunLoopStopsAtMaxTicks(t *testing.T) {
	c := newMounted(t, cornerRandom())
	err := RunLoop(context.Background(), c, time.Millisecond, 5)
	if err != nil {
		t.Fatalf("RunLoop: %v", err)
	}
	if got := c.State().Now; got != 5*time.Millisecond {
		t.Errorf("clock = %v, want 5ms", got)
	}
}

func TestRunLoopCancel(t *testing.T) {
	c := newMounted(t, cornerRandom())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := RunLoop(ctx, c, time.Millisecond, 0); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}
