package showcase

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsRefresh is how often the overlay text is redrawn, in seconds.
const fpsRefresh = 0.5

// fpsOverlay displays FPS, TPS and the active page in the top-left corner.
// The image is created on first draw and refreshed every fpsRefresh seconds.
type fpsOverlay struct {
	img     *ebiten.Image
	elapsed float64
	stale   bool
}

func (o *fpsOverlay) update(dt float64) {
	o.elapsed += dt
	if o.elapsed >= fpsRefresh {
		o.elapsed = 0
		o.stale = true
	}
}

func (o *fpsOverlay) draw(screen *ebiten.Image, url string) {
	if o.img == nil {
		// Enough for three lines of debug font.
		o.img = ebiten.NewImage(160, 48)
		o.stale = true
	}
	if o.stale {
		o.stale = false
		o.img.Clear()
		// Semi-transparent background for readability
		o.img.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(o.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f\n%s", ebiten.ActualFPS(), ebiten.ActualTPS(), url))
	}
	screen.DrawImage(o.img, nil)
}
