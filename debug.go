package sprint

import (
	"fmt"

	"go.uber.org/zap"
)

// globalDebug is read by node operations, which have no Controller pointer.
var globalDebug bool

// SetDebugMode enables or disables debug mode for the whole process, so it
// applies to every Controller and Stage at once. When enabled, disposed-node
// access panics and LogState writes at Info level instead of Debug.
func SetDebugMode(enabled bool) {
	globalDebug = enabled
}

// DebugMode reports whether debug mode is enabled.
func DebugMode() bool {
	return globalDebug
}

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. Only called in debug mode.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("sprint debug: %s on disposed node %q (ID %d)", op, n.Name, n.ID))
	}
}

// LogState writes a one-line summary of the scene.
func (c *Controller) LogState() {
	st := &c.state
	fields := []zap.Field{
		zap.Bool("paused", st.Paused),
		zap.Int("score", st.Score),
		zap.Int("berries", len(st.Berries)),
		zap.Int("live", st.LiveBerries()),
		zap.Float64("kitty_x", st.Kitty.X),
		zap.Float64("kitty_y", st.Kitty.Y),
		zap.Bool("pointer_inside", st.Pointer.Inside),
		zap.Duration("clock", st.Now),
	}
	if c.stage != nil {
		fields = append(fields, zap.Int("animations", c.stage.Animations()))
	}
	if globalDebug {
		c.log.Info("scene state", fields...)
		return
	}
	c.log.Debug("scene state", fields...)
}
