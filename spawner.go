package sprint

import "time"

// RandomSource supplies uniform values in [0, 1). *rand.Rand from math/rand
// and math/rand/v2 both satisfy it.
type RandomSource interface {
	Float64() float64
}

// spawnPosition picks a uniformly random point inside the spawn band.
func spawnPosition(rng RandomSource, cfg *Config) (x, y float64) {
	x = cfg.SpawnInsetX + rng.Float64()*(cfg.Width-2*cfg.SpawnInsetX)
	y = cfg.SpawnTop + rng.Float64()*(cfg.Height-cfg.SpawnTop-cfg.SpawnBottom)
	return x, y
}

// bobPeriod picks a per-berry bob period.
func bobPeriod(rng RandomSource, cfg *Config) time.Duration {
	return cfg.BerryBobMin + time.Duration(rng.Float64()*float64(cfg.BerryBobJitter))
}

// shouldAutoSpawn applies the timer and capacity gates.
func shouldAutoSpawn(st *SceneState, cfg *Config) bool {
	return st.Now-st.LastSpawn > cfg.SpawnCooldown && st.LiveBerries() < cfg.LiveCap
}
