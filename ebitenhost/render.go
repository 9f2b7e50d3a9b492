package ebitenhost

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	sprint "github.com/phanxgames/strawberrysprint"
)

// Fallback palette for images that were not loaded.
var (
	colorSky      = sprint.Color{R: 0.84, G: 0.93, B: 0.98, A: 1}
	colorGrass    = sprint.Color{R: 0.62, G: 0.84, B: 0.55, A: 1}
	colorKitty    = sprint.Color{R: 0.98, G: 0.75, B: 0.35, A: 1}
	colorBerry    = sprint.Color{R: 0.89, G: 0.16, B: 0.26, A: 1}
	colorLeaf     = sprint.Color{R: 0.24, G: 0.62, B: 0.29, A: 1}
	colorLetterbx = color.RGBA{R: 20, G: 20, B: 24, A: 255}
)

const circleSegments = 32

// renderer draws a stage's visible nodes onto an ebiten image.
type renderer struct {
	images map[string]*ebiten.Image
	fonts  *fontSet
}

func (r *renderer) draw(dst *ebiten.Image, st *sprint.Stage) {
	dst.Fill(colorLetterbx)
	view := st.View()
	st.Walk(func(n *sprint.Node) {
		m := multiply(view, n.WorldTransform())
		alpha := n.WorldAlpha()
		switch n.Kind {
		case sprint.NodeImage:
			r.drawImage(dst, n, m, alpha)
		case sprint.NodeRect:
			r.drawRect(dst, n, m, alpha)
		case sprint.NodeText:
			r.drawText(dst, n, m, alpha)
		}
	})
}

// imageOrigin is the local top-left of an image node after anchoring.
func imageOrigin(n *sprint.Node) (float64, float64) {
	return -n.AnchorX * n.Width, -n.AnchorY * n.Height
}

func (r *renderer) drawImage(dst *ebiten.Image, n *sprint.Node, m [6]float64, alpha float64) {
	ox, oy := imageOrigin(n)
	if img, ok := r.images[n.Image]; ok {
		b := img.Bounds()
		var op ebiten.DrawImageOptions
		op.GeoM.Scale(n.Width/float64(b.Dx()), n.Height/float64(b.Dy()))
		op.GeoM.Translate(ox, oy)
		op.GeoM.Concat(geoM(m))
		op.ColorScale.ScaleAlpha(float32(alpha))
		op.Filter = ebiten.FilterLinear
		dst.DrawImage(img, &op)
		return
	}

	switch n.Image {
	case sprint.ImageBackground:
		sky := tinted(colorSky, alpha)
		fillPolygon(dst, roundedRectPoints(n.Width, n.Height, 0, 0), m, sky)
		grass := multiply(m, [6]float64{1, 0, 0, 1, 0, n.Height * 0.7})
		fillPolygon(dst, roundedRectPoints(n.Width, n.Height*0.3, 0, 0), grass, tinted(colorGrass, alpha))
	case sprint.ImageKitty:
		cx, cy := ox+n.Width/2, oy+n.Height/2
		rad := min(n.Width, n.Height) / 2
		fillPolygon(dst, circlePoints(cx, cy, rad, circleSegments), m, tinted(colorKitty, alpha))
	case sprint.ImageBerry:
		cx, cy := ox+n.Width/2, oy+n.Height/2
		rad := min(n.Width, n.Height) / 2
		fillPolygon(dst, circlePoints(cx, cy+rad*0.1, rad*0.9, circleSegments), m, tinted(colorBerry, alpha))
		fillPolygon(dst, circlePoints(cx, cy-rad*0.8, rad*0.3, circleSegments/2), m, tinted(colorLeaf, alpha))
	}
}

func (r *renderer) drawRect(dst *ebiten.Image, n *sprint.Node, m [6]float64, alpha float64) {
	if n.Stroke.A > 0 {
		outer := multiply(m, [6]float64{1, 0, 0, 1, -1, -1})
		fillPolygon(dst, roundedRectPoints(n.Width+2, n.Height+2, n.CornerRadius+1, 6), outer, tinted(n.Stroke, alpha))
	}
	fillPolygon(dst, roundedRectPoints(n.Width, n.Height, n.CornerRadius, 6), m, tinted(n.Fill, alpha))
}

func (r *renderer) drawText(dst *ebiten.Image, n *sprint.Node, m [6]float64, alpha float64) {
	if r.fonts == nil || n.Text == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM = geoM(m)
	c := n.Fill
	op.ColorScale.Scale(float32(c.R), float32(c.G), float32(c.B), 1)
	op.ColorScale.ScaleAlpha(float32(c.A * alpha))
	text.Draw(dst, n.Text, r.fonts.face(n.FontSize, n.Bold), op)
}

// drawPauseLabel draws the pause button text in the bottom-right corner of
// the window, outside the stage transform.
func (r *renderer) drawPauseLabel(dst *ebiten.Image, label string) {
	if r.fonts == nil {
		return
	}
	face := r.fonts.face(13, true)
	w, h := text.Measure(label, face, 0)
	b := dst.Bounds()
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(b.Dx())-w-12, float64(b.Dy())-h-10)
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(dst, label, face, op)
}

func tinted(c sprint.Color, alpha float64) sprint.Color {
	c.A *= alpha
	return c
}
