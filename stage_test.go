package sprint

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func TestNewStageRejectsEmptySize(t *testing.T) {
	expectPanic(t, "zero width", func() { NewStage(0, 100) })
	expectPanic(t, "negative height", func() { NewStage(100, -1) })
}

func TestStageLayersInDrawOrder(t *testing.T) {
	s := NewStage(100, 100)
	kids := s.Root().Children()
	if len(kids) != int(layerCount) {
		t.Fatalf("root children = %d, want %d", len(kids), layerCount)
	}
	for l := Layer(0); l < layerCount; l++ {
		if kids[l] != s.Layer(l) || kids[l].Name != l.String() {
			t.Errorf("layer %d out of order", l)
		}
	}
}

func TestStageMountRequiresAttach(t *testing.T) {
	s := NewStage(100, 100)
	n := NewGroup("n")
	expectPanic(t, "mount before attach", func() { s.Mount(n, LayerEntities) })
	expectPanic(t, "unmount before attach", func() { s.Unmount(n) })

	s.Attach(SurfaceRect{Width: 100, Height: 100})
	s.Mount(n, LayerEntities)
	if !s.IsMounted(n) {
		t.Fatal("node should be mounted")
	}

	s.Detach()
	expectPanic(t, "mount after detach", func() { s.Mount(NewGroup("m"), LayerHUD) })
}

func TestStageUnmountIsIdempotent(t *testing.T) {
	s := NewStage(100, 100)
	s.Attach(SurfaceRect{Width: 100, Height: 100})
	n := NewGroup("n")
	s.Mount(n, LayerEntities)

	s.Unmount(n)
	s.Unmount(n)
	s.Unmount(nil)

	if s.IsMounted(n) {
		t.Error("node should be detached")
	}
	if s.Layer(LayerEntities).NumChildren() != 0 {
		t.Error("entities layer should be empty")
	}
}

func TestStageDeviceToLogical(t *testing.T) {
	s := NewStage(1000, 562)
	// Window twice as large, offset by (10, 20).
	s.Attach(SurfaceRect{X: 10, Y: 20, Width: 2000, Height: 1124})

	x, y := s.DeviceToLogical(1010, 726)
	if !approxEqual(x, 500, 1e-9) || !approxEqual(y, 353, 1e-9) {
		t.Errorf("DeviceToLogical = (%v, %v), want (500, 353)", x, y)
	}
	dx, dy := s.LogicalToDevice(500, 353)
	if !approxEqual(dx, 1010, 1e-9) || !approxEqual(dy, 726, 1e-9) {
		t.Errorf("LogicalToDevice = (%v, %v), want (1010, 726)", dx, dy)
	}
	if !s.ContainsDevice(15, 25) || s.ContainsDevice(5, 25) {
		t.Error("ContainsDevice should follow the viewport")
	}
}

func TestStageWalkSkipsHidden(t *testing.T) {
	s := NewStage(100, 100)
	s.Attach(SurfaceRect{Width: 100, Height: 100})
	shown := NewGroup("shown")
	hidden := NewGroup("hidden")
	hidden.Visible = false
	hidden.AddChild(NewGroup("under_hidden"))
	s.Mount(shown, LayerHUD)
	s.Mount(hidden, LayerBackground)

	var names []string
	s.Walk(func(n *Node) { names = append(names, n.Name) })

	for _, name := range names {
		if name == "hidden" || name == "under_hidden" {
			t.Errorf("Walk visited %q", name)
		}
	}
	if names[len(names)-1] != "shown" {
		t.Errorf("HUD node should be drawn last, got order %v", names)
	}
}

func TestStageUpdateDropsFinishedAnimators(t *testing.T) {
	s := NewStage(100, 100)
	s.Attach(SurfaceRect{Width: 100, Height: 100})
	n := NewGroup("n")
	s.Mount(n, LayerEntities)
	s.addAnimator(TweenAlpha(n, 0, 0.1, ease.Linear))
	s.addAnimator(newBobTween(n, 2, 1))

	s.Update(0.2)
	if s.Animations() != 1 {
		t.Errorf("animations = %d, want 1 (bob keeps running)", s.Animations())
	}
	n.Dispose()
	s.Update(0.1)
	if s.Animations() != 0 {
		t.Errorf("animations = %d, want 0 after dispose", s.Animations())
	}
}
