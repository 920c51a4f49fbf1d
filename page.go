package showcase

import (
	"fmt"

	"github.com/tanema/gween/ease"
	"go.uber.org/zap"
)

// PageState is the lifecycle stage of a page.
type PageState int

const (
	PageHidden PageState = iota
	PageShowing
	PageVisible
	PageHiding
	PageDestroyed
)

// String returns the state name.
func (s PageState) String() string {
	switch s {
	case PageHidden:
		return "hidden"
	case PageShowing:
		return "showing"
	case PageVisible:
		return "visible"
	case PageHiding:
		return "hiding"
	case PageDestroyed:
		return "destroyed"
	default:
		return fmt.Sprintf("PageState(%d)", int(s))
	}
}

const (
	// defaultPageLimit is the scroll limit before the first resize.
	defaultPageLimit = 1000
	// detailShowDelay holds the detail page back while the hero settles.
	detailShowDelay = 2.0
)

// PageOptions configures NewPage.
type PageOptions struct {
	Animator *Animator
	Log      *zap.Logger
	Content  *Content
	// ShowDelay postpones the default reveal, in seconds.
	ShowDelay float32
}

// Page is the layout side of a routed page: its content element, a damped
// vertical scroll written to the wrapper element, and a show/hide
// lifecycle.
//
// Lifecycle: hidden -> showing -> visible -> hiding -> destroyed. Input is
// only accepted while visible.
type Page struct {
	animator *Animator
	log      *zap.Logger
	content  *Content
	wrapper  Element

	state     PageState
	scroll    ScrollState
	alpha     float64
	showDelay float32
	task      *Task
}

// NewPage creates a hidden page for content and resets its wrapper.
func NewPage(opts PageOptions) *Page {
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}
	p := &Page{
		animator:  opts.Animator,
		log:       log,
		content:   opts.Content,
		scroll:    NewScrollState(defaultScrollLerp),
		showDelay: opts.ShowDelay,
	}
	p.scroll.Limit = defaultPageLimit
	if root := p.Root(); root != nil {
		p.wrapper = root.Query(p.wrapperClass())
	}
	if p.wrapper != nil {
		p.wrapper.SetTransform("translateY(0px)")
	}
	return p
}

func (p *Page) wrapperClass() string {
	return string(p.Template()) + "__wrapper"
}

// Template returns the page's template.
func (p *Page) Template() Template {
	if p.content == nil {
		return ""
	}
	return p.content.PageTemplate()
}

// Content returns the routed content.
func (p *Page) Content() *Content { return p.content }

// Root returns the page's root element, or nil.
func (p *Page) Root() Element {
	if p.content == nil || p.content.Root == nil {
		return nil
	}
	return p.content.Root
}

// State returns the lifecycle state.
func (p *Page) State() PageState { return p.state }

// Alpha returns the page opacity driven by show and hide.
func (p *Page) Alpha() float64 { return p.alpha }

// Scroll returns the page scroll state.
func (p *Page) Scroll() ScrollState { return p.scroll }

// Show reveals the page. anim replaces the default fade; it must be a task
// from the same Animator. The page becomes visible when the reveal ends.
func (p *Page) Show(anim *Task) *Task {
	if p.state != PageHidden {
		return p.task
	}
	p.state = PageShowing
	if anim == nil {
		anim = p.animator.Animate(defaultShowDuration, ease.OutQuad).
			Delay(p.showDelay).
			Field(0, 1, func(v float64) { p.alpha = v })
	}
	p.task = anim.OnDone(func() {
		p.state = PageVisible
		p.log.Debug("page visible", zap.String("template", string(p.Template())))
	})
	return p.task
}

// Hide stops input and fades the page out. The page is destroyed when the
// returned task completes. While a hide is running the same task is
// returned; a cancelled hide is restarted from the current alpha. Hiding a
// hidden or destroyed page returns a task that is already complete.
func (p *Page) Hide() *Task {
	switch {
	case p.state == PageHiding && p.task.Active():
		return p.task
	case p.state == PageHidden || p.state == PageDestroyed:
		p.state = PageDestroyed
		return completedTask()
	}
	p.task.Cancel()
	p.state = PageHiding
	p.task = p.animator.Animate(defaultHideDuration, ease.OutQuad).
		Field(p.alpha, 0, func(v float64) { p.alpha = v }).
		OnDone(func() {
			p.state = PageDestroyed
		})
	return p.task
}

// OnResize sets the scroll limit from the wrapper's height.
func (p *Page) OnResize(vp Viewport) {
	if p.wrapper == nil {
		return
	}
	p.scroll.Limit = p.wrapper.ClientHeight() - vp.Height
	if p.scroll.Limit < 0 {
		p.scroll.Limit = 0
	}
}

// OnWheel scrolls the page. Ignored unless visible.
func (p *Page) OnWheel(e WheelEvent) {
	if p.state != PageVisible {
		return
	}
	p.scroll.Target += e.PixelY
}

// Update clamps and damps the scroll and writes it to the wrapper.
func (p *Page) Update() {
	p.scroll.ClampTarget(0, p.scroll.Limit)
	p.scroll.Damp()
	p.scroll.Current = SnapZero(p.scroll.Current, pageScrollSnap)
	if p.wrapper != nil {
		p.wrapper.SetTransform(fmt.Sprintf("translateY(-%gpx)", p.scroll.Current))
	}
}

// PageFactory builds the page for routed content.
type PageFactory func(opts PageOptions) *Page

// PageRegistry maps templates to page factories.
type PageRegistry map[Template]PageFactory

// DefaultPages returns the built-in pages. The detail page reveals late so
// the hero image lands first.
func DefaultPages() PageRegistry {
	return PageRegistry{
		TemplateHome:        NewPage,
		TemplateAbout:       NewPage,
		TemplateCollections: NewPage,
		TemplateDetail: func(opts PageOptions) *Page {
			opts.ShowDelay = detailShowDelay
			return NewPage(opts)
		},
	}
}

// Build returns the page for content. Templates without a factory get a
// plain page.
func (r PageRegistry) Build(opts PageOptions) *Page {
	if opts.Content != nil {
		if factory, ok := r[opts.Content.PageTemplate()]; ok && factory != nil {
			return factory(opts)
		}
	}
	return NewPage(opts)
}
