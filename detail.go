package showcase

// Layout classes read by the detail track.
const (
	detailMediaClass = "detail__media"
	detailImageClass = "detail__media__image"
)

// DetailMediaStyle keeps the product image flat and unscaled.
var DetailMediaStyle = MediaStyle{ImageClass: detailImageClass}

// Detail is the product page track: a single static hero image.
type Detail struct {
	ctx   *Context
	group Handle
	hero  *Media
}

var (
	_ Track        = (*Detail)(nil)
	_ HeroProvider = (*Detail)(nil)
)

// NewDetail builds the hero media from the detail__media element. A page
// without one yields an empty track.
func NewDetail(opts TrackOptions) *Detail {
	d := &Detail{ctx: opts.Context}
	d.group = d.ctx.Arena.New("detail", opts.Parent)
	if opts.Root == nil {
		return d
	}
	if el := opts.Root.Query(detailMediaClass); el != nil {
		d.hero = NewMedia(MediaOptions{
			Context: opts.Context,
			Screen:  opts.Screen,
			Element: el,
			Parent:  d.group,
			Style:   DetailMediaStyle,
		})
	}
	return d
}

// Hero returns the product media, or nil.
func (d *Detail) Hero() *Media { return d.hero }

// Show fades the hero in.
func (d *Detail) Show() {
	if d.hero != nil {
		d.hero.Show()
	}
}

// Hide fades the hero out. Not called when the hero flies to the
// collections page.
func (d *Detail) Hide() {
	if d.hero != nil {
		d.hero.Hide()
	}
}

// OnResize lays the hero out again.
func (d *Detail) OnResize() {
	if d.hero != nil {
		d.hero.OnResize(Vec2{})
	}
}

// OnTouchDown is a no-op.
func (d *Detail) OnTouchDown(TouchEvent) {}

// OnTouchMove is a no-op.
func (d *Detail) OnTouchMove(TouchEvent) {}

// OnTouchUp is a no-op.
func (d *Detail) OnTouchUp(TouchEvent) {}

// OnWheel is a no-op.
func (d *Detail) OnWheel(WheelEvent) {}

// Update keeps the hero's opacity and layout current.
func (d *Detail) Update(ScrollState) {
	if d.hero != nil {
		d.hero.Update(Vec2{}, 0)
	}
}

// Destroy disposes the hero unless a transition took it.
func (d *Detail) Destroy() {
	if d.hero != nil {
		d.hero.Destroy()
	}
	d.ctx.Arena.Dispose(d.group)
}
