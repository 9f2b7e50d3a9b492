package sprint

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string  `yaml:"action"`
	Label  string  `yaml:"label,omitempty"`
	X      float64 `yaml:"x,omitempty"`
	Y      float64 `yaml:"y,omitempty"`
	Frames int     `yaml:"frames,omitempty"`
}

// testScript is the top-level YAML structure for a test script.
type testScript struct {
	Steps []testStep `yaml:"steps"`
}

var knownActions = map[string]bool{
	"enter": true, "move": true, "leave": true, "click": true,
	"spawn": true, "spawnAt": true, "pause": true, "reset": true,
	"wait": true, "screenshot": true, "log": true,
}

// TestRunner sequences injected pointer events, commands and screenshots
// across frames for scripted runs. Attach to a Controller via SetTestRunner.
//
// Pointer steps (move, click) take device coordinates; spawnAt takes stage
// coordinates.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a YAML test script and returns a TestRunner ready
// to be attached to a Controller via SetTestRunner.
func LoadTestScript(data []byte) (*TestRunner, error) {
	var script testScript
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		if !knownActions[st.Action] {
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a TestRunner. Its step method is called at the start
// of every Frame.
func (c *Controller) SetTestRunner(runner *TestRunner) {
	c.runner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the test runner by one frame.
func (r *TestRunner) step(c *Controller) {
	if r.done {
		return
	}
	in := c.input
	// Wait for pending injections to drain before advancing.
	if in.Pending() > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "enter":
		in.PointerEnter()
	case "move":
		in.InjectMove(st.X, st.Y)
	case "leave":
		in.InjectLeave()
	case "click":
		in.InjectClick(st.X, st.Y)
	case "spawn":
		c.SpawnBerry()
	case "spawnAt":
		c.SpawnBerryAt(st.X, st.Y)
	case "pause":
		c.TogglePause()
	case "reset":
		c.ResetArt()
	case "screenshot":
		if c.shooter != nil {
			c.shooter.Screenshot(st.Label)
		}
	case "log":
		c.LogState()
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && in.Pending() == 0 {
		r.done = true
	}
}
