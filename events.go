package sprint

// EventType identifies a kind of scene event.
type EventType uint8

const (
	EventBerrySpawned  EventType = iota // a berry was created
	EventBerryEaten                     // a berry became eaten; Score is the new total
	EventBerryRemoved                   // a berry's pop finished and its node was detached
	EventPauseToggled                   // Paused holds the new state
	EventReset                          // entity state was reinitialized
	EventPointerEnter                   // the pointer entered the stage
	EventPointerLeave                   // the pointer left the stage
)

// String returns the event name.
func (t EventType) String() string {
	switch t {
	case EventBerrySpawned:
		return "berry_spawned"
	case EventBerryEaten:
		return "berry_eaten"
	case EventBerryRemoved:
		return "berry_removed"
	case EventPauseToggled:
		return "pause_toggled"
	case EventReset:
		return "reset"
	case EventPointerEnter:
		return "pointer_enter"
	case EventPointerLeave:
		return "pointer_leave"
	default:
		return "unknown"
	}
}

// SceneEvent carries scene notifications to hosts and bridges.
type SceneEvent struct {
	Type    EventType
	BerryID uint32
	X, Y    float64
	Score   int
	Paused  bool
}

// EventSink receives scene events. Sinks run synchronously on the tick's
// goroutine and must not call back into the Controller.
type EventSink interface {
	EmitEvent(event SceneEvent)
}

// EventSinkFunc adapts a function to EventSink.
type EventSinkFunc func(SceneEvent)

// EmitEvent calls f(event).
func (f EventSinkFunc) EmitEvent(event SceneEvent) { f(event) }
