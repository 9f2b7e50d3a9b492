// Package sprint is the real-time scene behind Strawberry Sprint: a kitty
// chases the pointer across a fixed logical stage and eats berries that
// spawn on a timer, tracking a score.
//
// # Quick start
//
// A host creates a [Controller], mounts it into a [Surface], and calls
// [Controller.Frame] once per display refresh:
//
//	ctrl := sprint.NewController(sprint.DefaultConfig())
//	ctrl.Mount(sprint.SurfaceRect{Width: 1000, Height: 562})
//	for {
//		ctrl.SamplePointer(cursorX, cursorY, buttonDown)
//		ctrl.Frame(time.Second / 60)
//		// draw ctrl.Stage() ...
//	}
//
// The ebitenhost and termhost packages are ready-made hosts.
//
// # Stage and nodes
//
// Every visual element is a [Node] mounted into one of three layers of the
// [Stage]: [LayerBackground], [LayerEntities] and [LayerHUD]. Layers only
// decide draw order. Image nodes reference opaque resource keys
// ([ImageKitty], [ImageBerry], [ImageBackground]); hosts decide how to draw
// them.
//
// # Simulation
//
// Each unpaused frame runs one tick: the kitty eases toward the pointer (or
// a rest point when the pointer is off the stage), touching berries are
// eaten and popped, the berry list is compacted, and a new berry spawns when
// the cooldown has elapsed and fewer than the cap are alive. Paused frames
// still run cosmetic animations but leave the simulation untouched.
//
// # Commands
//
// [Controller.SpawnBerry], [Controller.TogglePause], [Controller.ResetArt]
// and [Controller.IsPaused] form the command surface. They are no-ops before
// Mount. Scene events reach hosts through [EventSink]; the ecs package
// bridges them into a Donburi world.
package sprint
