package showcase

import (
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// Context carries the collaborators every track and media needs. It is built
// once by the owner of the scene and threaded through constructors; nothing
// in it is replaced after construction.
type Context struct {
	Textures *Textures
	Arena    *Arena
	Animator *Animator
	Log      *zap.Logger
}

// texture looks up the texture for an asset key. A missing key is a caller
// precondition violation: it is logged and the media renders without a
// texture.
func (c *Context) texture(key string) *ebiten.Image {
	img, ok := c.Textures.Get(key)
	if !ok {
		c.Log.Warn("texture missing for asset", zap.String("key", key))
		mon.Counter(metricTextureMissing).Inc(1)
	}
	return img
}

// Screen is the shared viewport/scene extent pair. The Canvas owns it and
// rewrites it on resize; tracks and media hold a pointer and read it.
type Screen struct {
	Viewport Viewport
	Sizes    Sizes
}
