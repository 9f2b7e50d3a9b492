package sprint

import "math"

// touching reports whether the kitty is inside a berry's collision circle.
// The threshold is the fixed berry radius plus the kitty radius, independent
// of sprite art.
func touching(k *Kitty, b *Berry, kittyRadius float64) bool {
	return math.Hypot(k.X-b.X, k.Y-b.Y) < b.R+kittyRadius
}

// detectCollisions marks every live berry the kitty touches as eaten, bumps
// the score, and hands each one to onEat. Eaten berries are skipped.
func detectCollisions(st *SceneState, cfg *Config, onEat func(*Berry)) int {
	eaten := 0
	for _, b := range st.Berries {
		if b.Eaten {
			continue
		}
		if !touching(&st.Kitty, b, cfg.KittyRadius) {
			continue
		}
		if st.markEaten(b) {
			eaten++
			if onEat != nil {
				onEat(b)
			}
		}
	}
	return eaten
}
