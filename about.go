package showcase

import "go.uber.org/zap"

// Layout classes read by the about track.
const (
	aboutGalleryClass = "about__gallery"
	aboutWrapperClass = "about__gallery__wrapper"
	aboutMediaClass   = "about__gallery__media"
	aboutImageClass   = "about__gallery__media__image"
)

const (
	// aboutDrift is the idle scroll added every tick, signed by direction.
	aboutDrift = 0.5
	// aboutPageFollow feeds the page scroll's remaining distance into the
	// gallery target.
	aboutPageFollow = 0.1
	// aboutWrapMargin widens the off-screen test so media wrap out of sight.
	aboutWrapMargin = 0.25
)

// AboutMediaStyle curves and tilts every strip.
var AboutMediaStyle = MediaStyle{Fisheye: true, Curve: true, Tilt: true, ImageClass: aboutImageClass}

// Gallery is one auto-drifting, horizontally wrapping strip of the about
// page.
type Gallery struct {
	ctx    *Context
	screen *Screen
	index  int

	group   Handle
	element Element
	wrapper Element
	medias  []*Media

	scroll ScrollState
	width  float64
}

// NewGallery builds a strip from one about__gallery element.
func NewGallery(opts TrackOptions, element Element, index int, parent Handle) *Gallery {
	g := &Gallery{
		ctx:     opts.Context,
		screen:  opts.Screen,
		index:   index,
		element: element,
		scroll:  NewScrollState(defaultScrollLerp),
	}
	g.scroll.Velocity = aboutDrift
	g.group = g.ctx.Arena.New("gallery", parent)
	g.wrapper = element.Query(aboutWrapperClass)
	g.medias = newMedias(opts, element.QueryAll(aboutMediaClass), g.group, AboutMediaStyle)
	g.OnResize()
	return g
}

// Medias returns the strip's media in layout order.
func (g *Gallery) Medias() []*Media { return g.medias }

// Scroll returns the strip's scroll state.
func (g *Gallery) Scroll() ScrollState { return g.scroll }

// Width returns the wrap period in scene units.
func (g *Gallery) Width() float64 { return g.width }

// Show fades the strip in.
func (g *Gallery) Show() { showAll(g.medias) }

// Hide fades the strip out.
func (g *Gallery) Hide() { hideAll(g.medias) }

// OnResize recomputes the wrap period and rewinds the strip.
func (g *Gallery) OnResize() {
	g.width = periodOf(g.wrapper, g.screen).X
	g.scroll.Current = 0
	g.scroll.Target = 0
	for _, m := range g.medias {
		m.OnResize(Vec2{})
	}
}

// OnTouchDown captures the drag baseline.
func (g *Gallery) OnTouchDown(TouchEvent) {
	g.scroll.Start = g.scroll.Current
}

// OnTouchMove drags the strip relative to where the touch began.
func (g *Gallery) OnTouchMove(e TouchEvent) {
	g.scroll.Target = g.scroll.Start - e.X.Distance
}

// OnTouchUp is a no-op.
func (g *Gallery) OnTouchUp(TouchEvent) {}

// Update drifts the strip in its last direction, feeds in page scroll
// motion, wraps media and follows the page vertically.
func (g *Gallery) Update(page ScrollState) {
	distance := page.Current - page.Target

	switch {
	case g.scroll.Current > g.scroll.Target:
		g.scroll.Direction = DirectionLeft
		g.scroll.Velocity = -aboutDrift
	case g.scroll.Current < g.scroll.Target:
		g.scroll.Direction = DirectionRight
		g.scroll.Velocity = aboutDrift
	}
	g.scroll.Target += g.scroll.Velocity
	g.scroll.Target += distance * aboutPageFollow
	g.scroll.Damp()

	for _, m := range g.medias {
		if m.wrapX(g.scroll.Direction, g.width, aboutWrapMargin) {
			mon.Counter(metricWrap).Inc(1)
			g.ctx.Log.Debug("media wrapped",
				zap.String("track", "about"),
				zap.Int("gallery", g.index),
				zap.Int("index", m.Index()),
				zap.Float64("extra", m.Extra().X))
		}
		m.Update(Vec2{X: g.scroll.Current}, 0)
	}

	if n := g.ctx.Arena.Get(g.group); n != nil {
		var y float64
		if g.screen.Viewport.Height > 0 {
			y = page.Current / g.screen.Viewport.Height * g.screen.Sizes.Height
		}
		n.SetPosition(n.X, y)
	}
}

// Destroy disposes the strip.
func (g *Gallery) Destroy() {
	destroyAll(g.medias)
	g.ctx.Arena.Dispose(g.group)
}

// About is the about-page track: a stack of independently drifting strips
// that move up with the page.
type About struct {
	ctx       *Context
	group     Handle
	galleries []*Gallery
}

var _ Track = (*About)(nil)

// NewAbout builds one Gallery per about__gallery element.
func NewAbout(opts TrackOptions) *About {
	a := &About{ctx: opts.Context}
	a.group = a.ctx.Arena.New("about", opts.Parent)
	if opts.Root != nil {
		for i, el := range opts.Root.QueryAll(aboutGalleryClass) {
			a.galleries = append(a.galleries, NewGallery(opts, el, i, a.group))
		}
	}
	return a
}

// Galleries returns the strips in layout order.
func (a *About) Galleries() []*Gallery { return a.galleries }

// Show fades every strip in.
func (a *About) Show() {
	for _, g := range a.galleries {
		g.Show()
	}
}

// Hide fades every strip out.
func (a *About) Hide() {
	for _, g := range a.galleries {
		g.Hide()
	}
}

// OnResize resizes every strip.
func (a *About) OnResize() {
	for _, g := range a.galleries {
		g.OnResize()
	}
}

// OnTouchDown fans out to every strip.
func (a *About) OnTouchDown(e TouchEvent) {
	for _, g := range a.galleries {
		g.OnTouchDown(e)
	}
}

// OnTouchMove fans out to every strip.
func (a *About) OnTouchMove(e TouchEvent) {
	for _, g := range a.galleries {
		g.OnTouchMove(e)
	}
}

// OnTouchUp fans out to every strip.
func (a *About) OnTouchUp(e TouchEvent) {
	for _, g := range a.galleries {
		g.OnTouchUp(e)
	}
}

// OnWheel is ignored: the wheel scrolls the page, which the strips follow
// through Update.
func (a *About) OnWheel(WheelEvent) {}

// Update advances every strip against the page scroll.
func (a *About) Update(page ScrollState) {
	for _, g := range a.galleries {
		g.Update(page)
	}
}

// Destroy disposes every strip.
func (a *About) Destroy() {
	for _, g := range a.galleries {
		g.Destroy()
	}
	a.ctx.Arena.Dispose(a.group)
}
