package showcase

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func testContent(template Template, wrapperHeight float64) *Content {
	return &Content{
		URL:      "/" + string(template),
		Template: string(template),
		Root: NewBox(string(template), Rect{0, 0, 1000, 500},
			NewBox(string(template)+"__wrapper", Rect{0, 0, 1000, wrapperHeight})),
	}
}

func newTestPage(an *Animator, template Template, wrapperHeight float64) *Page {
	return DefaultPages().Build(PageOptions{
		Animator: an,
		Content:  testContent(template, wrapperHeight),
	})
}

func wrapperOf(p *Page) *Box {
	return p.Root().Query(p.wrapperClass()).(*Box)
}

func TestPageInitialState(t *testing.T) {
	p := newTestPage(NewAnimator(), TemplateAbout, 1500)
	if p.State() != PageHidden {
		t.Errorf("state = %v, want hidden", p.State())
	}
	if p.Scroll().Limit != defaultPageLimit {
		t.Errorf("limit = %v before resize, want %v", p.Scroll().Limit, defaultPageLimit)
	}
	if got := wrapperOf(p).Transform(); got != "translateY(0px)" {
		t.Errorf("wrapper transform = %q", got)
	}
	if p.Template() != TemplateAbout {
		t.Errorf("template = %q", p.Template())
	}
}

func TestPageShowHideLifecycle(t *testing.T) {
	an := NewAnimator()
	p := newTestPage(an, TemplateHome, 500)

	show := p.Show(nil)
	if p.State() != PageShowing {
		t.Fatalf("state = %v, want showing", p.State())
	}
	if again := p.Show(nil); again != show {
		t.Error("second Show started another reveal")
	}
	advance(an, defaultShowDuration)
	if p.State() != PageVisible || !approxEqual(p.Alpha(), 1, 1e-3) {
		t.Fatalf("after show: state %v alpha %v", p.State(), p.Alpha())
	}

	hide := p.Hide()
	if p.State() != PageHiding {
		t.Fatalf("state = %v, want hiding", p.State())
	}
	if p.Hide() != hide {
		t.Error("Hide while hiding should return the running task")
	}
	advance(an, defaultHideDuration)
	if !hide.Done() || p.State() != PageDestroyed {
		t.Errorf("after hide: done %v state %v", hide.Done(), p.State())
	}
	if !approxEqual(p.Alpha(), 0, 1e-3) {
		t.Errorf("alpha = %v after hide", p.Alpha())
	}
}

func TestPageDetailShowsLate(t *testing.T) {
	an := NewAnimator()
	p := newTestPage(an, TemplateDetail, 500)
	p.Show(nil)

	advance(an, defaultShowDuration)
	if p.State() != PageShowing || p.Alpha() != 0 {
		t.Errorf("detail revealed early: state %v alpha %v", p.State(), p.Alpha())
	}
	advance(an, detailShowDelay)
	if p.State() != PageVisible {
		t.Errorf("state = %v after the delay, want visible", p.State())
	}
}

func TestPageHideHiddenPage(t *testing.T) {
	p := newTestPage(NewAnimator(), TemplateHome, 500)
	task := p.Hide()
	if !task.Done() {
		t.Error("hiding a hidden page should complete immediately")
	}
	if p.State() != PageDestroyed {
		t.Errorf("state = %v, want destroyed", p.State())
	}
	ran := false
	task.OnDone(func() { ran = true })
	if !ran {
		t.Error("OnDone on a completed hide did not run")
	}
}

func TestPageHideDuringShow(t *testing.T) {
	an := NewAnimator()
	p := newTestPage(an, TemplateHome, 500)
	show := p.Show(nil)
	advance(an, 0.25)

	hide := p.Hide()
	if !show.Cancelled() {
		t.Error("hide did not cancel the reveal")
	}
	advance(an, defaultHideDuration)
	if !hide.Done() || p.State() != PageDestroyed {
		t.Errorf("hide done %v, state %v", hide.Done(), p.State())
	}
}

func TestPageCancelledHideRestarts(t *testing.T) {
	an := NewAnimator()
	p := newTestPage(an, TemplateHome, 500)
	p.Show(nil)
	advance(an, defaultShowDuration)

	first := p.Hide()
	first.Cancel()
	first.Cancel()
	second := p.Hide()
	if second == first || !second.Active() {
		t.Fatal("Hide after a cancelled hide should start a new one")
	}
	advance(an, defaultHideDuration)
	if p.State() != PageDestroyed {
		t.Errorf("state = %v, want destroyed", p.State())
	}
}

func TestPageCustomShow(t *testing.T) {
	an := NewAnimator()
	p := newTestPage(an, TemplateHome, 500)
	var v float64
	p.Show(an.Animate(0.1, ease.Linear).Field(0, 1, func(x float64) { v = x }))
	advance(an, 0.1)
	if p.State() != PageVisible || !approxEqual(v, 1, 1e-3) {
		t.Errorf("custom reveal: state %v value %v", p.State(), v)
	}
	if p.Alpha() != 0 {
		t.Errorf("alpha = %v, custom reveal should not touch it", p.Alpha())
	}
}

func TestPageScroll(t *testing.T) {
	an := NewAnimator()
	p := newTestPage(an, TemplateAbout, 1500)
	p.OnResize(Viewport{Width: 1000, Height: 500})
	if p.Scroll().Limit != 1000 {
		t.Fatalf("limit = %v, want 1000", p.Scroll().Limit)
	}

	// Input is ignored until the page is visible.
	p.OnWheel(WheelEvent{PixelY: 300})
	if p.Scroll().Target != 0 {
		t.Errorf("hidden page accepted wheel: %v", p.Scroll().Target)
	}
	p.Show(nil)
	advance(an, defaultShowDuration)

	p.OnWheel(WheelEvent{PixelY: 5000})
	p.Update()
	if p.Scroll().Target != 1000 {
		t.Errorf("target = %v, want clamped to 1000", p.Scroll().Target)
	}
	if got := wrapperOf(p).Transform(); got != "translateY(-100px)" {
		t.Errorf("wrapper transform = %q, want translateY(-100px)", got)
	}

	p.OnWheel(WheelEvent{PixelY: -9000})
	for i := 0; i < 200; i++ {
		p.Update()
	}
	if p.Scroll().Current != 0 {
		t.Errorf("current = %v, want snapped to 0", p.Scroll().Current)
	}
	if got := wrapperOf(p).Transform(); got != "translateY(-0px)" {
		t.Errorf("wrapper transform = %q at top", got)
	}

	p.Hide()
	p.OnWheel(WheelEvent{PixelY: 300})
	if p.Scroll().Target != 0 {
		t.Error("hiding page accepted wheel")
	}
}

func TestPageShortContentHasNoScroll(t *testing.T) {
	p := newTestPage(NewAnimator(), TemplateHome, 300)
	p.OnResize(Viewport{Width: 1000, Height: 500})
	if p.Scroll().Limit != 0 {
		t.Errorf("limit = %v, want 0", p.Scroll().Limit)
	}
}

func TestPageRegistryFallback(t *testing.T) {
	p := PageRegistry{}.Build(PageOptions{
		Animator: NewAnimator(),
		Content:  testContent("gallery", 500),
	})
	if p.Template() != "gallery" || p.State() != PageHidden {
		t.Errorf("fallback page = %q %v", p.Template(), p.State())
	}
	if p.showDelay != 0 {
		t.Errorf("fallback page delay = %v", p.showDelay)
	}
}

func TestPageStateString(t *testing.T) {
	if PageHiding.String() != "hiding" || PageState(42).String() != "PageState(42)" {
		t.Errorf("unexpected names %q %q", PageHiding, PageState(42))
	}
}
