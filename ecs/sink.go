package ecs

import (
	sprint "github.com/phanxgames/strawberrysprint"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// SceneEventType is the Donburi event type for sprint scene events.
var SceneEventType = events.NewEventType[sprint.SceneEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Scene events
// are queued on SceneEventType and delivered by ProcessEvents.
func NewDonburiSink(world donburi.World) sprint.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event sprint.SceneEvent) {
	SceneEventType.Publish(s.world, event)
}
