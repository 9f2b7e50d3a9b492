package ebitenhost

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsOverlay shows FPS, TPS and scene counters in the top-right corner.
// The text is refreshed every ~0.5 seconds.
type fpsOverlay struct {
	img     *ebiten.Image
	visible bool
	elapsed float64
	line    string
}

func (o *fpsOverlay) toggle() {
	o.visible = !o.visible
	o.elapsed = 0.5
}

func (o *fpsOverlay) update(dt float64, berries, animations int) {
	if !o.visible {
		return
	}
	o.elapsed += dt
	if o.elapsed < 0.5 {
		return
	}
	o.elapsed = 0
	o.line = fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nberries %d  anims %d",
		ebiten.ActualFPS(), ebiten.ActualTPS(), berries, animations)
}

func (o *fpsOverlay) draw(dst *ebiten.Image) {
	if !o.visible || o.line == "" {
		return
	}
	if o.img == nil {
		o.img = ebiten.NewImage(150, 48)
	}
	o.img.Clear()
	o.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(o.img, o.line)

	var op ebiten.DrawImageOptions
	op.GeoM.Translate(float64(dst.Bounds().Dx()-150-8), 8)
	dst.DrawImage(o.img, &op)
}
