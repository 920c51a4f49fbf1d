package showcase

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"home", "home"},
		{"after-wheel", "after-wheel"},
		{"frame.01", "frame.01"},
		{"has spaces", "has_spaces"},
		{"/detail/two", "_detail_two"},
		{"special!@#", "special___"},
		{"", "unlabeled"},
		{"   ", "unlabeled"},
	}
	for _, tt := range tests {
		got := sanitizeLabel(tt.in)
		if got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestUnpremultiply(t *testing.T) {
	pixels := []byte{
		100, 50, 0, 128, // half transparent
		10, 20, 30, 255, // opaque
		0, 0, 0, 0, // empty
	}
	img := unpremultiply(pixels, 3, 1)
	if got := img.NRGBAAt(0, 0); got != (color.NRGBA{199, 99, 0, 128}) {
		t.Errorf("pixel 0 = %v", got)
	}
	if got := img.NRGBAAt(1, 0); got != (color.NRGBA{10, 20, 30, 255}) {
		t.Errorf("pixel 1 = %v", got)
	}
	if got := img.NRGBAAt(2, 0); got != (color.NRGBA{}) {
		t.Errorf("pixel 2 = %v", got)
	}
}

func TestWritePNG(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "frame.png")
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	require.NoError(t, writePNG(path, img))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.NotZero(t, info.Size())

	err = writePNG(filepath.Join(dir, "missing", "frame.png"), img)
	require.True(t, ScreenshotError.Has(err))
}

func TestScreenshotQueue(t *testing.T) {
	a := newTestApp(t, "/")
	a.Screenshot("a")
	a.Screenshot("b")
	require.Equal(t, []string{"a", "b"}, a.screenshots)
	require.Equal(t, defaultScreenshotDir, a.screenshotDir)
}
