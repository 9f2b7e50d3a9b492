package sprint

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// RGBA8 returns the color as 8-bit straight-alpha components.
func (c Color) RGBA8() (r, g, b, a uint8) {
	return unit8(c.R), unit8(c.G), unit8(c.B), unit8(c.A)
}

func unit8(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// Vec2 is a 2D vector used for positions, offsets, sizes, and directions
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// NodeKind distinguishes rendering behavior for a Node.
type NodeKind uint8

const (
	NodeGroup NodeKind = iota // container with no visual output
	NodeImage                 // opaque image resource referenced by key
	NodeRect                  // filled, optionally rounded rectangle
	NodeText                  // single run of text
)

// String returns the kind name used in logs and debug output.
func (k NodeKind) String() string {
	switch k {
	case NodeGroup:
		return "group"
	case NodeImage:
		return "image"
	case NodeRect:
		return "rect"
	case NodeText:
		return "text"
	default:
		return "unknown"
	}
}

// Layer selects one of the stage's fixed draw layers. Layers only control
// draw order; no simulation logic depends on them.
type Layer uint8

const (
	LayerBackground Layer = iota // stage backdrop
	LayerEntities                // kitty and berries
	LayerHUD                     // score box and labels
	layerCount
)

// String returns the layer name.
func (l Layer) String() string {
	switch l {
	case LayerBackground:
		return "background"
	case LayerEntities:
		return "entities"
	case LayerHUD:
		return "hud"
	default:
		return "invalid"
	}
}

// Image resource keys used by the scene. Hosts map them to whatever they can
// draw; the core never loads or inspects image data.
const (
	ImageBackground = "background"
	ImageKitty      = "kitty"
	ImageBerry      = "berry"
)
