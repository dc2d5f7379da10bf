package ebitenview

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/phanxgames/zoomer"
)

// fpsOverlay shows frame rate and engine stats in the top-left corner. The
// text is refreshed every ~0.5 seconds.
type fpsOverlay struct {
	img        *ebiten.Image
	lastUpdate float64
}

func newFPSOverlay() *fpsOverlay {
	// Enough for four lines of DebugPrint text.
	return &fpsOverlay{img: ebiten.NewImage(160, 64), lastUpdate: 1}
}

func (o *fpsOverlay) update(dt float64, s zoomer.FrameStats) {
	o.lastUpdate += dt
	if o.lastUpdate < 0.5 {
		return
	}
	o.lastUpdate = 0

	o.img.Clear()
	// Semi-transparent background for readability
	o.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(o.img, overlayText(ebiten.ActualFPS(), s))
}

func (o *fpsOverlay) draw(screen *ebiten.Image) {
	screen.DrawImage(o.img, nil)
}

func overlayText(fps float64, s zoomer.FrameStats) string {
	return fmt.Sprintf("FPS: %.1f\nreuse: %.0f%%\ncomputed: %d\nfudge: %v",
		fps, 100*s.ReuseRatio(), s.Computed, s.Fudge)
}
