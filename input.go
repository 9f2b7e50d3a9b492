package sprint

// InputTracker turns raw pointer events on the stage surface into the
// logical PointerState the steering reads. It has a single writer and keeps
// no queue of real events: every reading overwrites the previous one.
//
// Event-driven hosts call PointerEnter, PointerLeave, PointerMove and
// PointerClick directly. Polling hosts (a game loop reading the cursor each
// frame) call Sample and let the tracker derive those events.
type InputTracker struct {
	stage *Stage
	state *PointerState

	onEnter func()
	onLeave func()
	onClick func(x, y float64)

	// Polling state.
	sampled        bool
	down           bool
	downInside     bool
	lastDX, lastDY float64

	injectQueue []syntheticPointerEvent
}

func newInputTracker(stage *Stage, state *PointerState) *InputTracker {
	return &InputTracker{stage: stage, state: state}
}

// State returns the current logical reading.
func (t *InputTracker) State() PointerState {
	return *t.state
}

// PointerEnter marks the pointer as over the stage.
func (t *InputTracker) PointerEnter() {
	if t.state.Inside {
		return
	}
	t.state.Inside = true
	if t.onEnter != nil {
		t.onEnter()
	}
}

// PointerLeave marks the pointer as off the stage.
func (t *InputTracker) PointerLeave() {
	if !t.state.Inside {
		return
	}
	t.state.Inside = false
	if t.onLeave != nil {
		t.onLeave()
	}
}

// PointerMove records a device-space position in stage coordinates.
func (t *InputTracker) PointerMove(dx, dy float64) {
	t.state.X, t.state.Y = t.stage.DeviceToLogical(dx, dy)
}

// PointerClick reports a click at a device-space position.
func (t *InputTracker) PointerClick(dx, dy float64) {
	if t.onClick == nil {
		return
	}
	x, y := t.stage.DeviceToLogical(dx, dy)
	t.onClick(x, y)
}

// Sample feeds one polled reading of the device cursor. While synthetic
// events are queued the real reading is ignored.
func (t *InputTracker) Sample(dx, dy float64, pressed bool) {
	if len(t.injectQueue) > 0 {
		return
	}
	t.sample(dx, dy, pressed)
}

// sample runs the pointer state machine for one reading.
func (t *InputTracker) sample(dx, dy float64, pressed bool) {
	inside := t.stage.ContainsDevice(dx, dy)

	// Fire enter/leave when the hover state changes.
	if inside && !t.state.Inside {
		t.PointerEnter()
	} else if !inside && t.state.Inside {
		t.PointerLeave()
	}

	if inside && (!t.sampled || dx != t.lastDX || dy != t.lastDY) {
		t.PointerMove(dx, dy)
	}
	t.sampled = true
	t.lastDX, t.lastDY = dx, dy

	if pressed && !t.down {
		// Just pressed: remember whether it started on the stage.
		t.down = true
		t.downInside = inside
	} else if !pressed && t.down {
		// Just released: a click needs press and release both on the stage.
		t.down = false
		if t.downInside && inside {
			t.PointerClick(dx, dy)
		}
		t.downInside = false
	}
}

// resetPolling forgets the press state.
func (t *InputTracker) resetPolling() {
	t.sampled = false
	t.down = false
	t.downInside = false
}
