package ebitenhost

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	sprint "github.com/phanxgames/strawberrysprint"
)

// --- White pixel singleton (no sync.Once: the host is single-threaded) ---

var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a lazily-initialized 1x1 white pixel image.
// Used by untextured shapes.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixelImage
}

// circlePoints returns a closed polygon approximating a circle.
func circlePoints(cx, cy, r float64, segments int) []sprint.Vec2 {
	pts := make([]sprint.Vec2, segments)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(segments)
		pts[i] = sprint.Vec2{X: cx + r*math.Cos(a), Y: cy + r*math.Sin(a)}
	}
	return pts
}

// roundedRectPoints returns a convex polygon for a w×h rectangle with its
// top-left at the origin and corners of radius r.
func roundedRectPoints(w, h, r float64, perCorner int) []sprint.Vec2 {
	r = math.Min(r, math.Min(w, h)/2)
	if r <= 0 {
		return []sprint.Vec2{{X: 0, Y: 0}, {X: w, Y: 0}, {X: w, Y: h}, {X: 0, Y: h}}
	}
	corners := [4]struct{ cx, cy, start float64 }{
		{w - r, r, -math.Pi / 2},
		{w - r, h - r, 0},
		{r, h - r, math.Pi / 2},
		{r, r, math.Pi},
	}
	pts := make([]sprint.Vec2, 0, 4*(perCorner+1))
	for _, c := range corners {
		for i := 0; i <= perCorner; i++ {
			a := c.start + (math.Pi/2)*float64(i)/float64(perCorner)
			pts = append(pts, sprint.Vec2{X: c.cx + r*math.Cos(a), Y: c.cy + r*math.Sin(a)})
		}
	}
	return pts
}

// buildFan fan-triangulates a convex polygon into white vertices.
func buildFan(points []sprint.Vec2) ([]ebiten.Vertex, []uint16) {
	n := len(points)
	if n < 3 {
		return nil, nil
	}
	verts := make([]ebiten.Vertex, n)
	inds := make([]uint16, 0, (n-2)*3)
	for i, p := range points {
		verts[i] = ebiten.Vertex{
			DstX: float32(p.X), DstY: float32(p.Y),
			SrcX: 0.5, SrcY: 0.5,
			ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1,
		}
	}
	for i := 1; i < n-1; i++ {
		inds = append(inds, 0, uint16(i), uint16(i+1))
	}
	return verts, inds
}

// transformVertices applies an affine transform and tint to src, writing
// into dst. dst must have at least len(src) elements.
//
// Color components are premultiplied by the tint's alpha.
func transformVertices(src, dst []ebiten.Vertex, transform [6]float64, tint sprint.Color) {
	a, b, c, d, tx, ty := transform[0], transform[1], transform[2], transform[3], transform[4], transform[5]
	cr := float32(tint.R)
	cg := float32(tint.G)
	cb := float32(tint.B)
	ca := float32(tint.A)

	for i := range src {
		s := &src[i]
		ox := float64(s.DstX)
		oy := float64(s.DstY)
		dst[i] = ebiten.Vertex{
			DstX:   float32(a*ox + c*oy + tx),
			DstY:   float32(b*ox + d*oy + ty),
			SrcX:   s.SrcX,
			SrcY:   s.SrcY,
			ColorR: s.ColorR * cr * ca,
			ColorG: s.ColorG * cg * ca,
			ColorB: s.ColorB * cb * ca,
			ColorA: s.ColorA * ca,
		}
	}
}

// fillPolygon draws a convex polygon given in local space.
func fillPolygon(dst *ebiten.Image, points []sprint.Vec2, m [6]float64, tint sprint.Color) {
	src, inds := buildFan(points)
	if src == nil {
		return
	}
	out := make([]ebiten.Vertex, len(src))
	transformVertices(src, out, m, tint)
	dst.DrawTriangles(out, inds, ensureWhitePixel(), &ebiten.DrawTrianglesOptions{})
}

// multiply composes two affine matrices: result = p * c.
func multiply(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// geoM converts an affine matrix to an ebiten.GeoM.
func geoM(m [6]float64) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(1, 0, m[1])
	g.SetElement(0, 1, m[2])
	g.SetElement(1, 1, m[3])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 2, m[5])
	return g
}
