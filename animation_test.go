package sprint

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTweenPopReachesTarget(t *testing.T) {
	n := NewGroup("berry")
	n.SetScale(0.42, 0.42)

	calls := 0
	g := TweenPop(n, 0.1, 1.6, 0.22, ease.OutQuad)
	g.OnDone = func() { calls++ }

	for i := 0; i < 20; i++ {
		g.Update(1.0 / 60)
	}

	if !g.Finished() {
		t.Fatal("pop should be finished")
	}
	if calls != 1 {
		t.Errorf("OnDone calls = %d, want 1", calls)
	}
	if math.Abs(n.Alpha-0.1) > 1e-4 {
		t.Errorf("Alpha = %v, want 0.1", n.Alpha)
	}
	if math.Abs(n.ScaleX-0.672) > 1e-4 || math.Abs(n.ScaleY-0.672) > 1e-4 {
		t.Errorf("Scale = (%v, %v), want 0.672", n.ScaleX, n.ScaleY)
	}
}

func TestTweenGroupStopsOnDisposedTarget(t *testing.T) {
	n := NewGroup("berry")
	calls := 0
	g := TweenAlpha(n, 0, 1, ease.Linear)
	g.OnDone = func() { calls++ }

	g.Update(0.1)
	alpha := n.Alpha
	n.Dispose()
	g.Update(0.1)
	g.Update(0.1)

	if !g.Done {
		t.Error("group should stop once the target is disposed")
	}
	if calls != 1 {
		t.Errorf("OnDone calls = %d, want 1", calls)
	}
	if n.Alpha != alpha {
		t.Error("no writes should happen after disposal")
	}
}

func TestTweenScale(t *testing.T) {
	n := NewGroup("n")
	g := TweenScale(n, 2, 3, 0.5, ease.Linear)
	g.Update(0.25)
	if math.Abs(n.ScaleX-1.5) > 1e-4 || math.Abs(n.ScaleY-2) > 1e-4 {
		t.Errorf("midway scale = (%v, %v), want (1.5, 2)", n.ScaleX, n.ScaleY)
	}
	if !n.transformDirty {
		t.Error("tween should mark the node dirty")
	}
}

func TestBobTweenStaysWithinAmplitude(t *testing.T) {
	n := NewGroup("berry")
	n.SetPosition(100, 200)
	b := newBobTween(n, 6, 1.2)

	minY, maxY := n.Y, n.Y
	for i := 0; i < 600; i++ {
		b.Update(1.0 / 60)
		minY = math.Min(minY, n.Y)
		maxY = math.Max(maxY, n.Y)
	}
	if minY < 194-1e-3 || maxY > 200+1e-3 {
		t.Errorf("Y range [%v, %v], want within [194, 200]", minY, maxY)
	}
	if minY > 194.5 {
		t.Errorf("bob peak %v never approached 194", minY)
	}
	if b.Finished() {
		t.Error("bob should run until stopped")
	}

	b.stop()
	y := n.Y
	b.Update(0.3)
	if !b.Finished() || n.Y != y {
		t.Error("stopped bob should not move the node")
	}
}
