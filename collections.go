package showcase

import (
	"fmt"
	"math"
	"strconv"

	"go.uber.org/zap"
)

// Layout classes read and written by the collections track.
const (
	collectionsGalleryClass = "collections__gallery"
	collectionsWrapperClass = "collections__gallery__wrapper"
	collectionsTitlesClass  = "collections__titles"
	collectionsArticleClass = "collections__article"
	collectionsMediaClass   = "collections__gallery__media"
	collectionsImageClass   = "collections__gallery__media__image"

	// CollectionsActiveClass marks the article of the selected collection.
	CollectionsActiveClass = "collections__article--active"
)

// CollectionsMediaStyle curves and tilts the row.
var CollectionsMediaStyle = MediaStyle{Fisheye: true, Curve: true, Tilt: true, ImageClass: collectionsImageClass}

// SelectFunc receives the selected media index and the collection it
// belongs to.
type SelectFunc func(index, collection int)

// Collections is the clamped horizontal gallery of the collections page.
// It tracks which media is nearest the center and, when built as the
// destination of a transition, lands the hero mesh on its counterpart.
type Collections struct {
	ctx    *Context
	screen *Screen

	group      Handle
	gallery    Element
	wrapper    Element
	titles     Element
	articles   []Element
	medias     []*Media
	transition *Transition

	scroll ScrollState
	index  int

	// OnSelect is called whenever the selected media changes.
	OnSelect SelectFunc
}

var _ Track = (*Collections)(nil)

// NewCollections builds the collections track from the page layout.
func NewCollections(opts TrackOptions) *Collections {
	c := &Collections{
		ctx:        opts.Context,
		screen:     opts.Screen,
		transition: opts.Transition,
		scroll:     NewScrollState(defaultScrollLerp),
		index:      -1,
	}
	c.group = c.ctx.Arena.New("collections", opts.Parent)

	var elements []Element
	if opts.Root != nil {
		c.gallery = opts.Root.Query(collectionsGalleryClass)
		c.wrapper = opts.Root.Query(collectionsWrapperClass)
		c.titles = opts.Root.Query(collectionsTitlesClass)
		c.articles = opts.Root.QueryAll(collectionsArticleClass)
		elements = opts.Root.QueryAll(collectionsMediaClass)
	}
	c.medias = newMedias(opts, elements, c.group, CollectionsMediaStyle)
	c.OnResize()
	return c
}

// Medias returns the track's media in layout order.
func (c *Collections) Medias() []*Media { return c.medias }

// Scroll returns the scroll state.
func (c *Collections) Scroll() ScrollState { return c.scroll }

// Index returns the selected media index, or -1 before the first update.
func (c *Collections) Index() int { return c.index }

// Selected returns the selected media, or nil.
func (c *Collections) Selected() *Media {
	if c.index < 0 || c.index >= len(c.medias) {
		return nil
	}
	return c.medias[c.index]
}

// Show reveals the gallery. With a pending transition the hero lands on
// its counterpart first; the rest of the gallery appears when it does.
func (c *Collections) Show() {
	if c.transition == nil || c.transition.Done() {
		showAll(c.medias)
		return
	}
	t := c.transition
	target := c.findByKey(t.TextureKey())
	if target == nil {
		mon.Counter(metricTransitionFallback).Inc(1)
		c.ctx.Log.Info("transition target not in gallery, showing without handoff",
			zap.String("key", t.TextureKey()))
		t.Destroy()
		c.transition = nil
		showAll(c.medias)
		return
	}

	s := c.centerOn(target)
	c.scroll.Reset(s)
	c.layout()

	c.ctx.Log.Debug("transition handoff",
		zap.Int("index", target.Index()),
		zap.Float64("scroll", s))
	t.Animate(target.Transform(), func() {
		target.SetMultiplier(1)
		for _, m := range c.medias {
			if m != target {
				m.Show()
			}
		}
		c.scroll.Reset(s)
		c.transition = nil
	})
}

// findByKey returns the media showing the texture key, or nil.
func (c *Collections) findByKey(key string) *Media {
	if key == "" {
		return nil
	}
	for _, m := range c.medias {
		if m.TextureKey() == key {
			return m
		}
	}
	return nil
}

// centerOn returns the clamped scroll offset that puts m in the middle of
// the viewport.
func (c *Collections) centerOn(m *Media) float64 {
	b := m.Bounds()
	s := -b.X - b.Width/2 + c.screen.Viewport.Width/2
	return Clamp(-c.scroll.Limit, 0, s)
}

// Hide fades every media out.
func (c *Collections) Hide() { hideAll(c.medias) }

// OnResize re-reads the wrapper width and moves the gallery back to its
// start.
func (c *Collections) OnResize() {
	c.scroll.Reset(0)
	for _, m := range c.medias {
		m.OnResize(Vec2{})
	}
	c.scroll.Limit = 0
	if c.wrapper != nil && len(c.medias) > 0 {
		c.scroll.Limit = math.Max(0, c.wrapper.BoundingRect().Width-c.medias[0].Element().ClientWidth())
	}
}

// OnTouchDown captures the drag baseline.
func (c *Collections) OnTouchDown(TouchEvent) {
	c.scroll.Last = c.scroll.Current
}

// OnTouchMove drags the gallery horizontally.
func (c *Collections) OnTouchMove(e TouchEvent) {
	c.scroll.Target = c.scroll.Last - e.X.Distance
}

// OnTouchUp is a no-op.
func (c *Collections) OnTouchUp(TouchEvent) {}

// OnWheel maps vertical wheel motion onto the horizontal gallery.
func (c *Collections) OnWheel(e WheelEvent) {
	c.scroll.Target -= e.PixelY
}

// Update clamps and damps the scroll, moves the gallery element, updates the
// selection and lays the meshes out. With no media it does nothing.
func (c *Collections) Update(ScrollState) {
	if len(c.medias) == 0 {
		return
	}
	c.scroll.ClampTarget(-c.scroll.Limit, 0)
	c.scroll.Damp()
	c.scroll.Direction = horizontalDirection(c.scroll.Last, c.scroll.Current, c.scroll.Direction)
	c.scroll.Last = c.scroll.Current
	c.layout()
}

// layout writes the gallery transform, refreshes the selection and places
// every mesh at the current scroll.
func (c *Collections) layout() {
	if c.gallery != nil {
		c.gallery.SetTransform(fmt.Sprintf("translateX(%gpx)", c.scroll.Current))
	}
	if index := c.selectedIndex(); index != c.index {
		c.onChange(index)
	}
	for i, m := range c.medias {
		m.SetSelected(i == c.index)
		m.Update(Vec2{X: c.scroll.Current}, 0)
	}
}

// selectedIndex maps the scroll position onto [0, n-1].
func (c *Collections) selectedIndex() int {
	n := len(c.medias)
	if n <= 1 || c.scroll.Limit <= 0 {
		return 0
	}
	w0 := c.medias[0].Bounds().Width
	f := math.Abs((c.scroll.Current - w0/2) / c.scroll.Limit)
	index := int(math.Floor(f * float64(n-1)))
	if index < 0 {
		return 0
	}
	if index > n-1 {
		return n - 1
	}
	return index
}

// onChange applies a new selection to the layout and notifies OnSelect.
func (c *Collections) onChange(index int) {
	c.index = index
	mon.Counter(metricSelectionChanged).Inc(1)

	collection := index
	if attr := c.medias[index].Element().Attr("data-index"); attr != "" {
		if v, err := strconv.Atoi(attr); err == nil {
			collection = v
		} else {
			c.ctx.Log.Warn("bad data-index", zap.String("value", attr), zap.Error(err))
		}
	}
	for i, a := range c.articles {
		a.SetClass(CollectionsActiveClass, i == collection)
	}
	if c.titles != nil {
		c.titles.SetTransform(fmt.Sprintf("translateY(-%d%%) translate(-50%%, -50%%) rotate(90deg)", 25*collection))
	}
	if c.OnSelect != nil {
		c.OnSelect(index, collection)
	}
}

// Destroy disposes the gallery and any transition still in flight.
func (c *Collections) Destroy() {
	c.transition.Destroy()
	c.transition = nil
	destroyAll(c.medias)
	c.ctx.Arena.Dispose(c.group)
}
