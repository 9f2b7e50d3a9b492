package sprint

import (
	"math"
	"math/rand/v2"
	"testing"
	"time"
)

func TestSteerStaysInBounds(t *testing.T) {
	cfg := DefaultConfig()
	st := &SceneState{Kitty: Kitty{X: 200, Y: 200}}
	rng := rand.New(rand.NewPCG(1, 2))

	for i := 0; i < 5000; i++ {
		if i%25 == 0 {
			st.Pointer = PointerState{
				X:      rng.Float64()*1400 - 200,
				Y:      rng.Float64()*900 - 150,
				Inside: rng.Float64() < 0.8,
			}
		}
		steer(st, &cfg)
		k := st.Kitty
		if k.X < 80 || k.X > 920 || k.Y < 90 || k.Y > 442 {
			t.Fatalf("tick %d: kitty at (%v, %v) outside bounds", i, k.X, k.Y)
		}
		if sp := math.Hypot(k.VX, k.VY); sp > cfg.MaxSpeed+1e-9 {
			t.Fatalf("tick %d: speed %v exceeds %v", i, sp, cfg.MaxSpeed)
		}
	}
}

func TestSteerClampsSpeedPreservingDirection(t *testing.T) {
	cfg := DefaultConfig()
	st := &SceneState{
		Kitty:   Kitty{X: 80, Y: 90, VX: 30, VY: 0},
		Pointer: PointerState{X: 920, Y: 90, Inside: true},
	}
	steer(st, &cfg)

	if math.Abs(st.Kitty.VX-14) > 1e-9 || st.Kitty.VY != 0 {
		t.Errorf("velocity = (%v, %v), want (14, 0)", st.Kitty.VX, st.Kitty.VY)
	}
	if math.Abs(st.Kitty.X-94) > 1e-9 {
		t.Errorf("X = %v, want 94", st.Kitty.X)
	}
}

func TestSteerTargetsRestPointWhenOutside(t *testing.T) {
	cfg := DefaultConfig()
	st := &SceneState{Pointer: PointerState{X: 10, Y: 10, Inside: false}}
	x, y := steerTarget(st, &cfg)
	rx, ry := cfg.restPoint()
	if x != rx || y != ry {
		t.Errorf("target = (%v, %v), want rest point (%v, %v)", x, y, rx, ry)
	}

	st.Pointer.Inside = true
	if x, y := steerTarget(st, &cfg); x != 10 || y != 10 {
		t.Errorf("target = (%v, %v), want pointer (10, 10)", x, y)
	}
}

func TestSteerOneTick(t *testing.T) {
	cfg := DefaultConfig()
	st := &SceneState{
		Kitty:   Kitty{X: 400, Y: 300, VX: 1, VY: -1},
		Pointer: PointerState{X: 500, Y: 350, Inside: true},
	}
	steer(st, &cfg)

	wantVX := 1*0.82 + 100*0.02
	wantVY := -1*0.82 + 50*0.02
	if math.Abs(st.Kitty.VX-wantVX) > 1e-12 || math.Abs(st.Kitty.VY-wantVY) > 1e-12 {
		t.Errorf("velocity = (%v, %v), want (%v, %v)", st.Kitty.VX, st.Kitty.VY, wantVX, wantVY)
	}
	if math.Abs(st.Kitty.X-(400+wantVX)) > 1e-12 || math.Abs(st.Kitty.Y-(300+wantVY)) > 1e-12 {
		t.Errorf("position = (%v, %v)", st.Kitty.X, st.Kitty.Y)
	}
}

func TestKittyBob(t *testing.T) {
	cfg := DefaultConfig()
	if kittyBob(0, &cfg) != 0 {
		t.Error("bob at t=0 should be 0")
	}
	for _, ms := range []int{17, 250, 1000, 12345} {
		if b := kittyBob(time.Duration(ms)*time.Millisecond, &cfg); math.Abs(b) > 2.6+1e-12 {
			t.Errorf("bob(%dms) = %v exceeds amplitude", ms, b)
		}
	}
	cfg.KittyBobPeriod = 0
	if kittyBob(time.Second, &cfg) != 0 {
		t.Error("zero period should disable the bob")
	}
}
