package showcase

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/zeebo/errs"
	"go.uber.org/zap"
)

// ScreenshotError is the error class for frame capture failures.
var ScreenshotError = errs.Class("screenshot")

// defaultScreenshotDir is used when AppOptions.ScreenshotDir is empty.
const defaultScreenshotDir = "screenshots"

// Screenshot queues a labeled capture of the next drawn frame. The PNG is
// written to the app's screenshot directory with a timestamped name.
func (a *App) Screenshot(label string) {
	a.screenshots = append(a.screenshots, label)
}

// flushScreenshots captures screen once for every queued label. Called at
// the end of Draw. Failures are logged; the queue is always cleared.
func (a *App) flushScreenshots(screen *ebiten.Image) {
	if len(a.screenshots) == 0 {
		return
	}
	defer func() { a.screenshots = a.screenshots[:0] }()

	if err := os.MkdirAll(a.screenshotDir, 0o755); err != nil {
		a.log.Warn("screenshot directory", zap.String("dir", a.screenshotDir), zap.Error(err))
		return
	}

	b := screen.Bounds()
	pixels := make([]byte, 4*b.Dx()*b.Dy())
	screen.ReadPixels(pixels)
	img := unpremultiply(pixels, b.Dx(), b.Dy())

	stamp := time.Now().Format("20060102_150405")
	for _, label := range a.screenshots {
		path := filepath.Join(a.screenshotDir, fmt.Sprintf("%s_%s.png", stamp, sanitizeLabel(label)))
		if err := writePNG(path, img); err != nil {
			a.log.Warn("screenshot failed", zap.String("label", label), zap.Error(err))
			continue
		}
		a.log.Info("screenshot saved", zap.String("path", path), zap.String("url", a.url))
	}
}

// unpremultiply converts ebiten's premultiplied RGBA pixels to straight
// alpha.
func unpremultiply(pixels []byte, w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i+3 < len(pixels) && i+3 < len(img.Pix); i += 4 {
		r, g, b, al := pixels[i], pixels[i+1], pixels[i+2], pixels[i+3]
		if al > 0 && al < 255 {
			r = uint8(min(int(r)*255/int(al), 255))
			g = uint8(min(int(g)*255/int(al), 255))
			b = uint8(min(int(b)*255/int(al), 255))
		}
		img.Pix[i] = r
		img.Pix[i+1] = g
		img.Pix[i+2] = b
		img.Pix[i+3] = al
	}
	return img
}

func writePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return ScreenshotError.Wrap(err)
	}
	defer func() { err = errs.Combine(err, ScreenshotError.Wrap(f.Close())) }()
	return ScreenshotError.Wrap(png.Encode(f, img))
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
