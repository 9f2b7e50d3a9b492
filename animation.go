package sprint

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields on a Node simultaneously.
// Call Update(dt) each frame. The group auto-applies values and marks the
// node dirty. If the target node is disposed, the group stops immediately.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	target *Node
	Done   bool

	// OnDone runs once, on the frame the group finishes or its target is
	// found disposed.
	OnDone func()
}

// Update advances all tweens by dt seconds, writes values to the target fields,
// and marks the node dirty. If the target node has been disposed, Done is set
// to true and no writes occur.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}

	if g.target != nil && g.target.IsDisposed() {
		g.finish()
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}

	if g.target != nil {
		g.target.MarkDirty()
	}
	if allDone {
		g.finish()
	}
}

// Finished reports whether the group has completed.
func (g *TweenGroup) Finished() bool {
	return g.Done
}

func (g *TweenGroup) finish() {
	g.Done = true
	if g.OnDone != nil {
		fn := g.OnDone
		g.OnDone = nil
		fn()
	}
}

// TweenScale creates a TweenGroup that animates node.ScaleX and node.ScaleY to
// the given target values over the specified duration using the easing function.
func TweenScale(node *Node, toSX, toSY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2, target: node}
	g.tweens[0] = gween.New(float32(node.ScaleX), float32(toSX), duration, fn)
	g.tweens[1] = gween.New(float32(node.ScaleY), float32(toSY), duration, fn)
	g.fields[0] = &node.ScaleX
	g.fields[1] = &node.ScaleY
	return g
}

// TweenAlpha creates a TweenGroup that animates node.Alpha to the target value
// over the specified duration using the easing function.
func TweenAlpha(node *Node, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1, target: node}
	g.tweens[0] = gween.New(float32(node.Alpha), float32(to), duration, fn)
	g.fields[0] = &node.Alpha
	return g
}

// TweenPop fades and grows a node in one group: alpha to toAlpha and both
// scales multiplied by grow.
func TweenPop(node *Node, toAlpha, grow float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 3, target: node}
	g.tweens[0] = gween.New(float32(node.Alpha), float32(toAlpha), duration, fn)
	g.tweens[1] = gween.New(float32(node.ScaleX), float32(node.ScaleX*grow), duration, fn)
	g.tweens[2] = gween.New(float32(node.ScaleY), float32(node.ScaleY*grow), duration, fn)
	g.fields[0] = &node.Alpha
	g.fields[1] = &node.ScaleX
	g.fields[2] = &node.ScaleY
	return g
}

// bobTween moves a node's Y up by amplitude and back, forever, with the given
// period in seconds. It ends when the node is disposed or stop is called.
type bobTween struct {
	node    *Node
	baseY   float64
	amp     float32
	half    float32
	rising  bool
	tween   *gween.Tween
	stopped bool
}

func newBobTween(node *Node, amplitude float64, period float32) *bobTween {
	b := &bobTween{
		node:   node,
		baseY:  node.Y,
		amp:    float32(amplitude),
		half:   period / 2,
		rising: true,
	}
	b.tween = gween.New(0, b.amp, b.half, ease.InOutSine)
	return b
}

func (b *bobTween) Update(dt float32) {
	if b.Finished() {
		return
	}
	off, finished := b.tween.Update(dt)
	b.node.Y = b.baseY - float64(off)
	b.node.MarkDirty()
	if finished {
		b.rising = !b.rising
		if b.rising {
			b.tween = gween.New(0, b.amp, b.half, ease.InOutSine)
		} else {
			b.tween = gween.New(b.amp, 0, b.half, ease.InOutSine)
		}
	}
}

func (b *bobTween) Finished() bool {
	return b.stopped || b.node.IsDisposed()
}

func (b *bobTween) stop() {
	b.stopped = true
}
