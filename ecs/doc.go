// Package ecs bridges sprint scene events into a [Donburi] world.
//
// [NewDonburiSink] publishes every [sprint.SceneEvent] as a typed Donburi
// event. Subscribe to [SceneEventType] in your systems to receive them, or
// attach a [Mirror] to keep one entity per berry plus a scoreboard entity in
// step with the scene.
//
// Usage:
//
//	world := donburi.NewWorld()
//	ctrl.AddEventSink(ecs.NewDonburiSink(world))
//	mirror := ecs.NewMirror(world)
//	// each frame, after ctrl.Frame:
//	events.ProcessAllEvents(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
