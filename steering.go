package sprint

import (
	"math"
	"time"
)

// steerTarget returns the point the kitty eases toward this tick.
func steerTarget(st *SceneState, cfg *Config) (x, y float64) {
	if st.Pointer.Inside {
		return st.Pointer.X, st.Pointer.Y
	}
	return cfg.restPoint()
}

// steer advances the kitty one tick: damped pursuit of the target, speed
// limit, integration, then a clamp into the stage margins.
func steer(st *SceneState, cfg *Config) {
	k := &st.Kitty
	tx, ty := steerTarget(st, cfg)
	dx := tx - k.X
	dy := ty - k.Y

	k.VX = k.VX*cfg.Damping + dx*cfg.Gain
	k.VY = k.VY*cfg.Damping + dy*cfg.Gain

	if sp := math.Hypot(k.VX, k.VY); sp > cfg.MaxSpeed {
		k.VX = k.VX / sp * cfg.MaxSpeed
		k.VY = k.VY / sp * cfg.MaxSpeed
	}

	k.X = clamp(k.X+k.VX, cfg.MarginX, cfg.Width-cfg.MarginX)
	k.Y = clamp(k.Y+k.VY, cfg.MarginTop, cfg.Height-cfg.MarginBottom)
}

// kittyBob is the render-only vertical offset at stage time now.
func kittyBob(now time.Duration, cfg *Config) float64 {
	if cfg.KittyBobPeriod <= 0 {
		return 0
	}
	return math.Sin(float64(now)/float64(cfg.KittyBobPeriod)) * cfg.KittyBobAmp
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
