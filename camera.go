package showcase

import "math"

const (
	defaultCameraFov = 45.0
	defaultCameraZ   = 5.0
)

// Camera is a perspective camera looking down -Z at the media plane (z = 0).
// It converts the pixel viewport into the visible scene extent and maps scene
// coordinates to screen pixels.
type Camera struct {
	// Fov is the vertical field of view in degrees.
	Fov float64
	// Z is the camera distance from the media plane.
	Z float64

	viewport Viewport
	sizes    Sizes

	viewMatrix    [6]float64
	invViewMatrix [6]float64
	dirty         bool
}

// NewCamera creates a camera with the default 45° field of view at z = 5.
func NewCamera(viewport Viewport) *Camera {
	c := &Camera{Fov: defaultCameraFov, Z: defaultCameraZ, dirty: true}
	c.SetViewport(viewport)
	return c
}

// SetViewport updates the aspect ratio and recomputes the scene sizes.
func (c *Camera) SetViewport(viewport Viewport) {
	c.viewport = viewport
	c.dirty = true
	c.computeSizes()
}

// Viewport returns the viewport the camera was last resized to.
func (c *Camera) Viewport() Viewport {
	return c.viewport
}

// Sizes returns the visible extent of the media plane in scene units.
func (c *Camera) Sizes() Sizes {
	return c.sizes
}

// computeSizes derives the visible extent from the projection:
//
//	height = 2 * tan(fov/2) * z
//	width  = height * aspect
func (c *Camera) computeSizes() {
	fov := c.Fov * math.Pi / 180
	height := 2 * math.Tan(fov/2) * c.Z
	aspect := 0.0
	if c.viewport.Height > 0 {
		aspect = c.viewport.Width / c.viewport.Height
	}
	c.sizes = Sizes{Width: height * aspect, Height: height}
}

// computeViewMatrix recomputes the cached scene-to-screen matrix if dirty.
//
// viewMatrix = Translate(vpW/2, vpH/2) * Scale(vpW/W, -vpH/H)
func (c *Camera) computeViewMatrix() [6]float64 {
	if !c.dirty {
		return c.viewMatrix
	}
	c.dirty = false

	sx, sy := 0.0, 0.0
	if c.sizes.Width > 0 {
		sx = c.viewport.Width / c.sizes.Width
	}
	if c.sizes.Height > 0 {
		sy = -c.viewport.Height / c.sizes.Height
	}
	c.viewMatrix = [6]float64{sx, 0, 0, sy, c.viewport.Width / 2, c.viewport.Height / 2}
	c.invViewMatrix = invertAffine(c.viewMatrix)
	return c.viewMatrix
}

// SceneToScreen converts scene coordinates to screen pixels.
func (c *Camera) SceneToScreen(x, y float64) (sx, sy float64) {
	return transformPoint(c.computeViewMatrix(), x, y)
}

// ScreenToScene converts screen pixels to scene coordinates.
func (c *Camera) ScreenToScene(sx, sy float64) (x, y float64) {
	c.computeViewMatrix()
	return transformPoint(c.invViewMatrix, sx, sy)
}

// VisibleBounds returns the visible media plane as a scene-space rectangle
// (X/Y is the bottom-left corner).
func (c *Camera) VisibleBounds() Rect {
	return Rect{X: -c.sizes.Width / 2, Y: -c.sizes.Height / 2, Width: c.sizes.Width, Height: c.sizes.Height}
}

// --- Culling ---

// worldAABB computes the axis-aligned bounding box of the unit quad centered
// on the origin after applying transform.
func worldAABB(transform [6]float64) Rect {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, corner := range [4][2]float64{{-0.5, -0.5}, {0.5, -0.5}, {0.5, 0.5}, {-0.5, 0.5}} {
		x, y := transformPoint(transform, corner[0], corner[1])
		minX = math.Min(minX, x)
		minY = math.Min(minY, y)
		maxX = math.Max(maxX, x)
		maxY = math.Max(maxY, y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// shouldCull reports whether a textured node lies entirely outside the
// visible media plane.
func (c *Camera) shouldCull(n *Node) bool {
	return !worldAABB(n.worldTransform).Intersects(c.VisibleBounds())
}
