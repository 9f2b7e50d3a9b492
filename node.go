package sprint

import "fmt"

// nodeIDCounter is a plain counter (no atomic: the scene is single-threaded).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// NodeAttrs carries the creation-time attributes of a node. Only the fields
// relevant to the node's kind are read.
type NodeAttrs struct {
	Name string

	// NodeImage: opaque resource key plus the logical size the host should
	// draw it at, anchored by (AnchorX, AnchorY) in [0, 1].
	Image            string
	AnchorX, AnchorY float64

	// NodeImage and NodeRect.
	Width, Height float64

	// NodeRect.
	CornerRadius float64
	Fill         Color
	Stroke       Color

	// NodeText.
	Text     string
	FontSize float64
	Bold     bool
}

// Node is the fundamental scene element. A single flat struct is used for
// every kind to avoid interface dispatch on the render path.
type Node struct {
	// Identity
	ID   uint32
	Name string
	Kind NodeKind

	// Hierarchy
	Parent   *Node
	children []*Node

	// Transform (local)
	X, Y     float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64

	// Computed during Stage.Update.
	worldTransform [6]float64
	worldAlpha     float64
	transformDirty bool

	Alpha   float64
	Visible bool

	// Kind-specific attributes.
	Image            string
	AnchorX, AnchorY float64
	Width, Height    float64
	CornerRadius     float64
	Fill             Color
	Stroke           Color
	Text             string
	FontSize         float64
	Bold             bool

	// UserData is free for the owner of the node.
	UserData any

	disposed bool
}

// NewNode creates an unmounted node of the given kind.
func NewNode(kind NodeKind, attrs NodeAttrs) *Node {
	n := &Node{
		ID:           nextNodeID(),
		Name:         attrs.Name,
		Kind:         kind,
		ScaleX:       1,
		ScaleY:       1,
		Alpha:        1,
		Visible:      true,
		Image:        attrs.Image,
		AnchorX:      attrs.AnchorX,
		AnchorY:      attrs.AnchorY,
		Width:        attrs.Width,
		Height:       attrs.Height,
		CornerRadius: attrs.CornerRadius,
		Fill:         attrs.Fill,
		Stroke:       attrs.Stroke,
		Text:         attrs.Text,
		FontSize:     attrs.FontSize,
		Bold:         attrs.Bold,
	}
	if kind == NodeText && n.Fill == (Color{}) {
		n.Fill = Color{0.07, 0.07, 0.07, 1}
	}
	n.transformDirty = true
	return n
}

// NewGroup creates a container node with no visual representation.
func NewGroup(name string) *Node {
	return NewNode(NodeGroup, NodeAttrs{Name: name})
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("sprint: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, n) {
		panic("sprint: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
	markSubtreeDirty(child)
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("sprint: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
	markSubtreeDirty(child)
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// SetText replaces the content of a text node.
func (n *Node) SetText(s string) {
	if n.Kind != NodeText {
		panic(fmt.Sprintf("sprint: SetText on %s node %q", n.Kind, n.Name))
	}
	n.Text = s
}

// --- Disposal ---

// Dispose removes this node from its parent, marks it as disposed,
// and recursively disposes all descendants. Calling it twice is a no-op.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.Parent = nil
	n.UserData = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}

// markSubtreeDirty sets transformDirty on node and all its descendants.
func markSubtreeDirty(node *Node) {
	node.transformDirty = true
	for _, child := range node.children {
		markSubtreeDirty(child)
	}
}
