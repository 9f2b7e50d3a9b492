package sprint

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Frame is the per-display-refresh callback. It runs the attached test
// runner, consumes one synthetic pointer event, advances the stage clock and
// cosmetic animations, and, unless paused, performs one simulation tick.
//
// Frame is a no-op before Mount and after Unmount.
func (c *Controller) Frame(dt time.Duration) {
	if c.stage == nil || !c.stage.Mounted() {
		return
	}
	if c.runner != nil {
		c.runner.step(c)
	}
	c.input.processInjected()

	c.state.Now += dt
	if !c.state.Paused {
		c.advance(&c.state)
	}
	c.stage.Update(frameSeconds(dt))
	for _, fn := range c.afterFrame {
		fn()
	}
}

// advance performs one simulation tick on st: steering, collision,
// compaction, then the auto-spawn gate.
func (c *Controller) advance(st *SceneState) {
	steer(st, &c.cfg)
	c.kittyNode.SetPosition(st.Kitty.X, st.Kitty.Y+kittyBob(st.Now, &c.cfg))

	detectCollisions(st, &c.cfg, c.eat)

	if n := st.Compact(c.cfg.CompactThreshold); n > 0 {
		c.log.Debug("berries compacted", zap.Int("removed", n), zap.Int("kept", len(st.Berries)))
	}

	if shouldAutoSpawn(st, &c.cfg) {
		c.SpawnBerry()
		st.LastSpawn = st.Now
	}
}

// RunLoop drives c.Frame at a fixed interval until ctx is done or maxTicks
// frames have run (0 = no limit). It is the headless counterpart of a
// rendering host. Returns ctx.Err() when cancelled, nil when maxTicks is hit.
func RunLoop(ctx context.Context, c *Controller, interval time.Duration, maxTicks uint64) error {
	if interval <= 0 {
		interval = time.Second / 60
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var ticks uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			c.Frame(interval)
			ticks++
			if maxTicks > 0 && ticks >= maxTicks {
				return nil
			}
		}
	}
}
