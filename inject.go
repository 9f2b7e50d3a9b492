package sprint

// syntheticPointerEvent represents a single injected pointer reading.
// Device coordinates are used and converted through the stage transform,
// identical to real input.
type syntheticPointerEvent struct {
	x, y    float64
	pressed bool
	leave   bool
}

// InjectMove queues a hover reading at the given device coordinates.
// The event is consumed on a later frame, one per frame.
func (t *InputTracker) InjectMove(x, y float64) {
	t.injectQueue = append(t.injectQueue, syntheticPointerEvent{x: x, y: y})
}

// InjectPress queues a press at the given device coordinates.
func (t *InputTracker) InjectPress(x, y float64) {
	t.injectQueue = append(t.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectRelease queues a release at the given device coordinates.
func (t *InputTracker) InjectRelease(x, y float64) {
	t.injectQueue = append(t.injectQueue, syntheticPointerEvent{x: x, y: y})
}

// InjectClick is a convenience that queues a press followed by a release
// at the same device coordinates. Consumes two frames.
func (t *InputTracker) InjectClick(x, y float64) {
	t.InjectPress(x, y)
	t.InjectRelease(x, y)
}

// InjectLeave queues the pointer leaving the stage.
func (t *InputTracker) InjectLeave() {
	t.injectQueue = append(t.injectQueue, syntheticPointerEvent{leave: true})
}

// Pending returns the number of queued synthetic events.
func (t *InputTracker) Pending() int {
	return len(t.injectQueue)
}

// processInjected pops one synthetic event and feeds it through the pointer
// state machine. Returns true if an event was consumed.
func (t *InputTracker) processInjected() bool {
	if len(t.injectQueue) == 0 {
		return false
	}
	evt := t.injectQueue[0]
	copy(t.injectQueue, t.injectQueue[1:])
	t.injectQueue = t.injectQueue[:len(t.injectQueue)-1]

	if evt.leave {
		t.PointerLeave()
		t.down = false
		t.downInside = false
		return true
	}
	t.sample(evt.x, evt.y, evt.pressed)
	return true
}
