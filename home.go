package showcase

import (
	"math"

	"go.uber.org/zap"
)

// Layout classes read by the home track.
const (
	homeGalleryClass = "home__gallery"
	homeMediaClass   = "home__gallery__media"
	homeImageClass   = "home__gallery__media__image"
)

// homeSpeedFactor converts the remaining scroll distance into the bend
// amount handed to the renderer.
const homeSpeedFactor = 0.0025

// HomeMediaStyle is flat: the home grid neither curves nor tilts.
var HomeMediaStyle = MediaStyle{ImageClass: homeImageClass}

// Home is the landing-page track: a grid that scrolls freely on both axes
// and wraps around in both directions.
type Home struct {
	ctx    *Context
	screen *Screen

	group   Handle
	gallery Element
	medias  []*Media

	x, y  ScrollState
	speed ScrollState
	// baseline is the scroll position captured on touch down.
	baseline Vec2
	// scroll is the damped position applied on the previous tick.
	scroll Vec2
	period Vec2
}

var _ Track = (*Home)(nil)

// NewHome builds the home track from the page's gallery element.
func NewHome(opts TrackOptions) *Home {
	h := &Home{
		ctx:    opts.Context,
		screen: opts.Screen,
		x:      NewScrollState(defaultScrollLerp),
		y:      NewScrollState(defaultScrollLerp),
		speed:  NewScrollState(defaultScrollLerp),
	}
	h.group = h.ctx.Arena.New("home", opts.Parent)

	var elements []Element
	if opts.Root != nil {
		h.gallery = opts.Root.Query(homeGalleryClass)
		elements = opts.Root.QueryAll(homeMediaClass)
	}
	h.medias = newMedias(opts, elements, h.group, HomeMediaStyle)
	h.OnResize()
	return h
}

// Medias returns the track's media in layout order.
func (h *Home) Medias() []*Media { return h.medias }

// Scroll returns the damped scroll position.
func (h *Home) Scroll() Vec2 { return h.scroll }

// Speed returns the damped scroll speed.
func (h *Home) Speed() float64 { return h.speed.Current }

// Period returns the wrap period in scene units.
func (h *Home) Period() Vec2 { return h.period }

// Show fades every media in.
func (h *Home) Show() { showAll(h.medias) }

// Hide fades every media out.
func (h *Home) Hide() { hideAll(h.medias) }

// OnResize recomputes the wrap period and puts the grid back at its origin.
func (h *Home) OnResize() {
	h.period = periodOf(h.gallery, h.screen)
	h.x.Reset(0)
	h.y.Reset(0)
	h.baseline = Vec2{}
	h.scroll = Vec2{}
	for _, m := range h.medias {
		m.OnResize(h.scroll)
	}
}

// OnTouchDown captures the drag baseline.
func (h *Home) OnTouchDown(TouchEvent) {
	h.baseline = h.scroll
}

// OnTouchMove drags the grid on both axes.
func (h *Home) OnTouchMove(e TouchEvent) {
	h.x.Target = h.baseline.X - e.X.Distance
	h.y.Target = h.baseline.Y - e.Y.Distance
}

// OnTouchUp is a no-op: the grid keeps easing toward its target, and Update
// derives speed from the remaining distance every tick.
func (h *Home) OnTouchUp(TouchEvent) {}

// OnWheel scrolls on both axes.
func (h *Home) OnWheel(e WheelEvent) {
	h.x.Target += e.PixelX
	h.y.Target += e.PixelY
}

// Update damps both axes, wraps media that left the scene and lays the grid
// out at the new position.
func (h *Home) Update(ScrollState) {
	dx := h.x.Target - h.x.Current
	dy := h.y.Target - h.y.Current
	h.speed.Target = math.Sqrt(dx*dx+dy*dy) * homeSpeedFactor
	h.speed.Damp()

	h.x.Damp()
	h.y.Damp()
	h.x.Direction = horizontalDirection(h.scroll.X, h.x.Current, h.x.Direction)
	h.y.Direction = verticalDirection(h.scroll.Y, h.y.Current, h.y.Direction)
	h.scroll = Vec2{h.x.Current, h.y.Current}

	for _, m := range h.medias {
		if m.wrapX(h.x.Direction, h.period.X, 0) {
			h.logWrap(m, "x")
		}
		if m.wrapY(h.y.Direction, h.period.Y, 0) {
			h.logWrap(m, "y")
		}
		m.Update(h.scroll, h.speed.Current)
	}
}

func (h *Home) logWrap(m *Media, axis string) {
	mon.Counter(metricWrap).Inc(1)
	h.ctx.Log.Debug("media wrapped",
		zap.String("track", "home"),
		zap.String("axis", axis),
		zap.Int("index", m.Index()),
		zap.Float64("extra_x", m.Extra().X),
		zap.Float64("extra_y", m.Extra().Y))
}

// Destroy disposes the grid.
func (h *Home) Destroy() {
	destroyAll(h.medias)
	h.ctx.Arena.Dispose(h.group)
}
