package sprint

import "fmt"

// Surface is the host area a Stage is mounted into. Bounds is expressed in
// device units (window pixels, terminal cells, ...).
type Surface interface {
	Bounds() Rect
}

// SurfaceRect is a Surface with fixed bounds.
type SurfaceRect Rect

// Bounds returns the rectangle itself.
func (r SurfaceRect) Bounds() Rect { return Rect(r) }

// animator is a cosmetic, time-bounded task driven by Stage.Update.
type animator interface {
	Update(dt float32)
	Finished() bool
}

// Stage is the fixed logical coordinate space of the scene. It owns the node
// tree (one container per Layer), the device→logical mapping, and the
// cosmetic animations attached to its nodes.
type Stage struct {
	width, height float64

	root   *Node
	layers [layerCount]*Node

	mounted  bool
	viewport Rect
	view     [6]float64
	inverse  [6]float64

	animators []animator
}

// NewStage creates an unmounted stage of the given logical size.
// Panics if either dimension is not positive.
func NewStage(width, height float64) *Stage {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("sprint: invalid stage size %vx%v", width, height))
	}
	s := &Stage{
		width:   width,
		height:  height,
		root:    NewGroup("stage"),
		view:    identityTransform,
		inverse: identityTransform,
	}
	for l := Layer(0); l < layerCount; l++ {
		s.layers[l] = NewGroup(l.String())
		s.root.AddChild(s.layers[l])
	}
	return s
}

// Attach mounts the stage into a host surface.
func (s *Stage) Attach(surface Surface) {
	s.mounted = true
	s.SetViewport(surface.Bounds())
}

// Detach unmounts the stage. Node operations panic until it is attached again.
func (s *Stage) Detach() {
	s.mounted = false
}

// Mounted reports whether the stage is attached to a surface.
func (s *Stage) Mounted() bool {
	return s.mounted
}

// Size returns the logical width and height.
func (s *Stage) Size() (w, h float64) {
	return s.width, s.height
}

// SetViewport updates the device rectangle the stage is fitted into.
// An empty viewport falls back to a 1:1 mapping.
func (s *Stage) SetViewport(r Rect) {
	s.viewport = r
	if r.Empty() {
		s.view = identityTransform
	} else {
		s.view = fitTransform(r, s.width, s.height)
	}
	s.inverse = invertAffine(s.view)
}

// Viewport returns the device rectangle set by Attach or SetViewport.
func (s *Stage) Viewport() Rect {
	return s.viewport
}

// View returns the logical→device matrix.
func (s *Stage) View() [6]float64 {
	return s.view
}

// DeviceToLogical converts a device-space point to stage coordinates.
func (s *Stage) DeviceToLogical(dx, dy float64) (x, y float64) {
	return transformPoint(s.inverse, dx, dy)
}

// LogicalToDevice converts a stage-space point to device coordinates.
func (s *Stage) LogicalToDevice(x, y float64) (dx, dy float64) {
	return transformPoint(s.view, x, y)
}

// ContainsDevice reports whether a device point lies on the stage's surface.
func (s *Stage) ContainsDevice(dx, dy float64) bool {
	if s.viewport.Empty() {
		return dx >= 0 && dx <= s.width && dy >= 0 && dy <= s.height
	}
	return s.viewport.Contains(dx, dy)
}

// Root returns the stage's root container.
func (s *Stage) Root() *Node {
	return s.root
}

// Layer returns the container node for a layer.
func (s *Stage) Layer(l Layer) *Node {
	if l >= layerCount {
		panic(fmt.Sprintf("sprint: invalid layer %d", l))
	}
	return s.layers[l]
}

// Mount attaches a node to the given layer. Panics if the stage is not mounted.
func (s *Stage) Mount(n *Node, l Layer) {
	s.mustBeMounted("Mount")
	s.Layer(l).AddChild(n)
}

// Unmount detaches a node from the stage tree. Detaching a node that is
// already detached is a no-op. Panics if the stage is not mounted.
func (s *Stage) Unmount(n *Node) {
	s.mustBeMounted("Unmount")
	if n == nil || !s.IsMounted(n) {
		return
	}
	n.RemoveFromParent()
}

// IsMounted reports whether n is currently reachable from the stage root.
func (s *Stage) IsMounted(n *Node) bool {
	for p := n; p != nil; p = p.Parent {
		if p == s.root {
			return true
		}
	}
	return false
}

func (s *Stage) mustBeMounted(op string) {
	if !s.mounted {
		panic("sprint: " + op + " on unmounted stage")
	}
}

// addAnimator schedules a cosmetic animation. It runs until it reports
// Finished, independently of the simulation's pause state.
func (s *Stage) addAnimator(a animator) {
	s.animators = append(s.animators, a)
}

// Animations returns the number of in-flight cosmetic animations.
func (s *Stage) Animations() int {
	return len(s.animators)
}

// Update advances cosmetic animations by dt seconds, drops the finished ones,
// and refreshes world transforms for hosts to read.
func (s *Stage) Update(dt float32) {
	live := s.animators[:0]
	for _, a := range s.animators {
		a.Update(dt)
		if !a.Finished() {
			live = append(live, a)
		}
	}
	for i := len(live); i < len(s.animators); i++ {
		s.animators[i] = nil
	}
	s.animators = live

	updateWorldTransform(s.root, identityTransform, 1.0, false)
}

// Walk visits every visible node in draw order: layers bottom to top, then
// depth-first in child order.
func (s *Stage) Walk(fn func(n *Node)) {
	walkVisible(s.root, fn)
}

func walkVisible(n *Node, fn func(n *Node)) {
	if !n.Visible {
		return
	}
	fn(n)
	for _, child := range n.children {
		walkVisible(child, fn)
	}
}
