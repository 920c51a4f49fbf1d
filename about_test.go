package showcase

import (
	"math"
	"testing"
)

// aboutRoot builds two strips of three 400px media on 1500px wrappers, a
// 15 unit period on testScreen.
func aboutRoot() *Box {
	strip := func(y float64) *Box {
		var media []*Box
		for i := 0; i < 3; i++ {
			media = append(media, NewBox(aboutMediaClass, Rect{float64(i) * 500, y, 400, 200},
				NewBox(aboutImageClass, Rect{}).WithAttr("data-src", "about.jpg")))
		}
		return NewBox(aboutGalleryClass, Rect{0, y, 1000, 200},
			NewBox(aboutWrapperClass, Rect{0, y, 1500, 200}, media...))
	}
	return NewBox("about", Rect{0, 0, 1000, 500},
		NewBox("about__wrapper", Rect{0, 0, 1000, 1500}, strip(200), strip(900)))
}

func newTestAbout(ctx *Context) *About {
	return NewAbout(TrackOptions{
		Context: ctx,
		Screen:  testScreen(),
		Root:    aboutRoot(),
		Parent:  ctx.Arena.Root(),
	})
}

func TestAboutBuild(t *testing.T) {
	a := newTestAbout(newTestContext())
	if len(a.Galleries()) != 2 {
		t.Fatalf("galleries = %d, want 2", len(a.Galleries()))
	}
	for i, g := range a.Galleries() {
		if len(g.Medias()) != 3 {
			t.Errorf("gallery %d medias = %d, want 3", i, len(g.Medias()))
		}
		assertNear(t, "width", g.Width(), 15)
	}
}

func TestGalleryDrifts(t *testing.T) {
	a := newTestAbout(newTestContext())
	g := a.Galleries()[0]

	for i := 0; i < 10; i++ {
		a.Update(ScrollState{})
	}
	assertNear(t, "target", g.Scroll().Target, 10*aboutDrift)
	if g.Scroll().Current <= 0 || g.Scroll().Direction != DirectionRight {
		t.Errorf("idle strip = %+v, want drifting right", g.Scroll())
	}

	// Dragging left flips the drift.
	a.OnTouchDown(TouchEvent{})
	a.OnTouchMove(TouchEvent{X: Axis{Distance: 100}})
	a.OnTouchUp(TouchEvent{})
	a.Update(ScrollState{})
	if g.Scroll().Direction != DirectionLeft || g.Scroll().Velocity != -aboutDrift {
		t.Errorf("after drag = %+v, want drifting left", g.Scroll())
	}
}

func TestGalleryFollowsPageScroll(t *testing.T) {
	a := newTestAbout(newTestContext())
	g := a.Galleries()[1]

	// The page is 100px behind its target: 10px flows into the strip.
	a.Update(ScrollState{Current: 0, Target: 100})
	assertNear(t, "target", g.Scroll().Target, aboutDrift-10)
}

func TestGalleryGroupFollowsPage(t *testing.T) {
	ctx := newTestContext()
	a := newTestAbout(ctx)
	a.Update(ScrollState{Current: 250, Target: 250})
	for i, g := range a.Galleries() {
		n := ctx.Arena.Get(g.group)
		assertNear(t, "group y", n.Y, 2.5)
		if i == 0 && n.X != 0 {
			t.Errorf("group x = %v, want 0", n.X)
		}
	}
}

func TestAboutIgnoresWheel(t *testing.T) {
	a := newTestAbout(newTestContext())
	a.OnWheel(WheelEvent{PixelY: 500})
	for _, g := range a.Galleries() {
		if g.Scroll().Target != 0 {
			t.Errorf("wheel moved a strip: %+v", g.Scroll())
		}
	}
}

func TestAboutTouchFansOut(t *testing.T) {
	a := newTestAbout(newTestContext())
	a.OnTouchDown(TouchEvent{})
	a.OnTouchMove(TouchEvent{X: Axis{Distance: -300}})
	for i, g := range a.Galleries() {
		if g.Scroll().Target != 300 {
			t.Errorf("gallery %d target = %v, want 300", i, g.Scroll().Target)
		}
	}
}

func TestGalleryHeldDragKeepsTarget(t *testing.T) {
	a := newTestAbout(newTestContext())
	g := a.Galleries()[0]
	for i := 0; i < 5; i++ {
		a.Update(ScrollState{})
	}
	start := g.Scroll().Current

	a.OnTouchDown(TouchEvent{})
	for i := 0; i < 20; i++ {
		a.OnTouchMove(TouchEvent{X: Axis{Distance: -100}})
		assertNear(t, "target", g.Scroll().Target, start+100)
		a.Update(ScrollState{})
	}
	if g.Scroll().Current <= start {
		t.Errorf("current = %v, want past drag start %v", g.Scroll().Current, start)
	}
}

func TestGalleryWraps(t *testing.T) {
	a := newTestAbout(newTestContext())
	a.OnTouchDown(TouchEvent{})
	a.OnTouchMove(TouchEvent{X: Axis{Distance: -3000}})
	for i := 0; i < 300; i++ {
		a.Update(ScrollState{})
	}
	wrapped := false
	for _, g := range a.Galleries() {
		for i, m := range g.Medias() {
			if x := m.Position().X; math.Abs(x) >= g.Width() {
				t.Errorf("media %d at x=%v left the strip", i, x)
			}
			if m.Extra().X != 0 {
				wrapped = true
			}
		}
	}
	if !wrapped {
		t.Error("no media wrapped after two periods")
	}
}

func TestAboutResizeAndDestroy(t *testing.T) {
	ctx := newTestContext()
	a := newTestAbout(ctx)
	a.Show()
	for i := 0; i < 30; i++ {
		a.Update(ScrollState{})
	}
	a.OnResize()
	for _, g := range a.Galleries() {
		if g.Scroll().Current != 0 || g.Scroll().Target != 0 {
			t.Errorf("resize kept scroll %+v", g.Scroll())
		}
	}
	a.Hide()
	a.Destroy()
	if ctx.Arena.Len() != 1 {
		t.Errorf("arena len = %d, want 1 (root)", ctx.Arena.Len())
	}
}
