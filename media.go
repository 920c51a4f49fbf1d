package showcase

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"
)

// Presentation constants. They only shape the look of the gallery.
const (
	fisheyeCenterScale = 1.1
	fisheyeEdgeScale   = 1.0
	curveAmplitude     = 2.5
	maxTilt            = math.Pi * 0.125
	opacityLerp        = 0.1
	dimmedOpacity      = 0.4
)

// MediaStyle toggles the decorative parts of the media transform.
type MediaStyle struct {
	// Fisheye scales media up to 1.1x at the scene center, 1.0x at the edges.
	Fisheye bool
	// Curve bends the row downward away from the center with a cosine.
	Curve bool
	// Tilt rotates media up to ±π/8 by horizontal position.
	Tilt bool
	// ImageClass names the child element carrying data-src. When empty or
	// absent the media element itself carries it.
	ImageClass string
}

// DefaultMediaStyle enables every decoration.
var DefaultMediaStyle = MediaStyle{Fisheye: true, Curve: true, Tilt: true}

// MeshTransform is a snapshot of a mesh's local transform.
type MeshTransform struct {
	Position Vec2
	Rotation float64
	Scale    Vec2
}

// MediaOptions configures NewMedia.
type MediaOptions struct {
	Context *Context
	Screen  *Screen
	Element Element
	Index   int
	Parent  Handle
	Style   MediaStyle
}

// Media is one image rendered as a textured quad that mirrors the scroll
// position of its layout element.
type Media struct {
	ctx     *Context
	screen  *Screen
	element Element
	index   int
	style   MediaStyle

	key     string
	texture *ebiten.Image
	node    Handle

	bounds Rect
	extra  Vec2

	opacity struct {
		current, target, multiplier float64
	}
	showTask *Task
}

// NewMedia creates the media's node under opts.Parent and computes its
// initial bounds. The texture map must already hold the element's asset.
func NewMedia(opts MediaOptions) *Media {
	m := &Media{
		ctx:     opts.Context,
		screen:  opts.Screen,
		element: opts.Element,
		index:   opts.Index,
		style:   opts.Style,
	}
	m.opacity.current = 1
	m.opacity.target = 1

	m.key = m.assetKey()
	m.texture = m.ctx.texture(m.key)
	m.node = m.ctx.Arena.New("media", opts.Parent)
	n := m.mesh()
	n.Texture = m.texture
	n.SetAlpha(0)

	m.ComputeBounds()
	return m
}

func (m *Media) assetKey() string {
	if m.style.ImageClass == "" {
		return m.element.Attr("data-src")
	}
	if img := m.element.Query(m.style.ImageClass); img != nil {
		return img.Attr("data-src")
	}
	return m.element.Attr("data-src")
}

// mesh resolves the media's node. It returns a throwaway node once the media
// has been destroyed so late calls never touch a reused slot.
func (m *Media) mesh() *Node {
	if n := m.ctx.Arena.Get(m.node); n != nil {
		return n
	}
	return &Node{ScaleX: 1, ScaleY: 1}
}

// --- Accessors ---

// Index returns the media's position in its track.
func (m *Media) Index() int { return m.index }

// Element returns the layout element the media mirrors.
func (m *Media) Element() Element { return m.element }

// Node returns the media's scene handle.
func (m *Media) Node() Handle { return m.node }

// TextureKey returns the asset key the texture was looked up with.
func (m *Media) TextureKey() string { return m.key }

// Bounds returns the bounds snapshot taken at the last resize.
func (m *Media) Bounds() Rect { return m.bounds }

// Extra returns the accumulated wrap offset.
func (m *Media) Extra() Vec2 { return m.extra }

// Position returns the mesh position in scene units.
func (m *Media) Position() Vec2 {
	n := m.mesh()
	return Vec2{n.X, n.Y}
}

// Scale returns the mesh size in scene units.
func (m *Media) Scale() Vec2 {
	n := m.mesh()
	return Vec2{n.ScaleX, n.ScaleY}
}

// Transform returns a snapshot of the mesh transform.
func (m *Media) Transform() MeshTransform {
	n := m.mesh()
	return MeshTransform{Position: Vec2{n.X, n.Y}, Rotation: n.Rotation, Scale: Vec2{n.ScaleX, n.ScaleY}}
}

// Opacity returns the rendered opacity: selection opacity times the
// show/hide multiplier.
func (m *Media) Opacity() float64 {
	return m.opacity.current * m.opacity.multiplier
}

// SetMultiplier sets the show/hide multiplier directly, cancelling any
// running show or hide.
func (m *Media) SetMultiplier(v float64) {
	m.showTask.Cancel()
	m.opacity.multiplier = v
	m.applyAlpha()
}

// SetSelected sets the selection opacity target: 1 when selected, dimmed
// otherwise. The current value eases toward it on Update.
func (m *Media) SetSelected(selected bool) {
	if selected {
		m.opacity.target = 1
	} else {
		m.opacity.target = dimmedOpacity
	}
}

// --- Bounds and transform ---

// ComputeBounds snapshots the element rectangle and lays the mesh out at
// zero scroll. Must run after every resize.
func (m *Media) ComputeBounds() {
	m.bounds = m.element.BoundingRect()
	m.UpdateScale()
	m.UpdateX(0)
	m.UpdateY(0)
}

// UpdateScale sizes the mesh as the element's viewport fraction of the
// scene, then applies the fisheye factor for the current X position.
func (m *Media) UpdateScale() {
	vp, s := m.screen.Viewport, m.screen.Sizes
	var fw, fh float64
	if vp.Width > 0 {
		fw = m.bounds.Width / vp.Width
	}
	if vp.Height > 0 {
		fh = m.bounds.Height / vp.Height
	}
	n := m.mesh()
	sx, sy := s.Width*fw, s.Height*fh
	if m.style.Fisheye {
		k := MapRange(0, s.Width/2, fisheyeCenterScale, fisheyeEdgeScale, math.Abs(n.X))
		sx *= k
		sy *= k
	}
	n.SetScale(sx, sy)
}

// UpdateX places the mesh at the element's horizontal position shifted by
// scroll, then applies the wrap offset.
func (m *Media) UpdateX(scroll float64) {
	vp, s := m.screen.Viewport, m.screen.Sizes
	var fx float64
	if vp.Width > 0 {
		fx = (m.bounds.X + scroll) / vp.Width
	}
	n := m.mesh()
	n.SetPosition(-s.Width/2+n.ScaleX/2+fx*s.Width+m.extra.X, n.Y)
}

// UpdateY places the mesh at the element's vertical position shifted by
// scroll, applies the wrap offset and the cosine curve.
func (m *Media) UpdateY(scroll float64) {
	vp, s := m.screen.Viewport, m.screen.Sizes
	var fy float64
	if vp.Height > 0 {
		fy = (m.bounds.Y + scroll) / vp.Height
	}
	n := m.mesh()
	y := s.Height/2 - n.ScaleY/2 - fy*s.Height + m.extra.Y
	if m.style.Curve && s.Width > 0 {
		y += math.Cos(n.X/s.Width*math.Pi*0.5)*curveAmplitude - curveAmplitude
	}
	n.SetPosition(n.X, y)
}

// UpdateRotation tilts the mesh by its horizontal position: level at the
// center, ±π/8 at the scene edges.
func (m *Media) UpdateRotation() {
	if !m.style.Tilt {
		return
	}
	s := m.screen.Sizes
	n := m.mesh()
	n.SetRotation(MapRange(-s.Width/2, s.Width/2, maxTilt, -maxTilt, n.X))
}

// Update runs one frame: rotation, scale, position for the damped scroll,
// scroll speed for the vertex bend, and opacity easing.
func (m *Media) Update(scroll Vec2, speed float64) {
	m.UpdateRotation()
	m.UpdateScale()
	m.UpdateX(scroll.X)
	m.UpdateY(scroll.Y)
	m.mesh().Bend = speed

	m.opacity.current = Interpolate(m.opacity.current, m.opacity.target, opacityLerp)
	m.applyAlpha()
}

func (m *Media) applyAlpha() {
	m.mesh().SetAlpha(m.Opacity())
}

// --- Wrap ---

// wrapX shifts the media by one period once it has fully left the scene on
// the side it is travelling toward. margin widens the off-screen test.
// Returns true when a wrap happened.
func (m *Media) wrapX(dir Direction, period, margin float64) bool {
	if period <= 0 {
		return false
	}
	half := m.screen.Sizes.Width / 2
	n := m.mesh()
	edge := n.ScaleX/2 + margin
	switch dir {
	case DirectionLeft:
		if n.X+edge <= -half {
			m.extra.X += period
			return true
		}
	case DirectionRight:
		if n.X-edge >= half {
			m.extra.X -= period
			return true
		}
	}
	return false
}

// wrapY is wrapX for the vertical axis. DirectionDown means the content is
// moving toward -Y.
func (m *Media) wrapY(dir Direction, period, margin float64) bool {
	if period <= 0 {
		return false
	}
	half := m.screen.Sizes.Height / 2
	n := m.mesh()
	edge := n.ScaleY/2 + margin
	switch dir {
	case DirectionDown:
		if n.Y+edge <= -half {
			m.extra.Y += period
			return true
		}
	case DirectionUp:
		if n.Y-edge >= half {
			m.extra.Y -= period
			return true
		}
	}
	return false
}

// --- Events ---

// OnResize clears the wrap offset, re-reads bounds and lays the mesh out
// at scroll.
func (m *Media) OnResize(scroll Vec2) {
	m.extra = Vec2{}
	m.ComputeBounds()
	m.UpdateX(scroll.X)
	m.UpdateY(scroll.Y)
}

// --- Animations ---

// Show fades the multiplier from 0 to 1. It replaces any running show or
// hide; the returned task may be cancelled.
func (m *Media) Show() *Task {
	m.showTask.Cancel()
	m.showTask = m.ctx.Animator.Animate(defaultShowDuration, ease.OutExpo).
		Field(0, 1, func(v float64) {
			m.opacity.multiplier = v
			m.applyAlpha()
		})
	return m.showTask
}

// Hide fades the multiplier from its current value to 0.
func (m *Media) Hide() *Task {
	m.showTask.Cancel()
	m.showTask = m.ctx.Animator.Animate(defaultHideDuration, ease.OutExpo).
		Field(m.opacity.multiplier, 0, func(v float64) {
			m.opacity.multiplier = v
			m.applyAlpha()
		})
	return m.showTask
}

// release hands the mesh over to a new owner. The media keeps working
// against a throwaway node and Destroy no longer touches the released one.
func (m *Media) release() Handle {
	m.showTask.Cancel()
	h := m.node
	m.node = Handle{}
	return h
}

// Destroy cancels animations and disposes the mesh.
func (m *Media) Destroy() {
	m.showTask.Cancel()
	m.ctx.Arena.Dispose(m.node)
}
