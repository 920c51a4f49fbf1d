package showcase

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T, start string) *App {
	t.Helper()
	a, err := NewApp(AppOptions{
		Document: loadTestDocument(t),
		Viewport: Viewport{Width: 1000, Height: 500},
		StartURL: start,
	})
	require.NoError(t, err)
	return a
}

// tick runs one frame the way Update does, minus device polling.
func tick(a *App) {
	if a.runner != nil {
		a.runner.step(a)
	}
	a.input.processInjected(a)
	a.step(1.0 / 60)
}

func settleNavigation(t *testing.T, a *App) {
	t.Helper()
	for i := 0; i < 300 && a.Pending(); i++ {
		tick(a)
	}
	require.False(t, a.Pending(), "navigation did not finish")
}

func TestNewApp(t *testing.T) {
	a := newTestApp(t, "")
	require.Equal(t, "/", a.URL())
	require.Equal(t, TemplateHome, a.Page().Template())
	require.IsType(t, &Home{}, a.Canvas().Track())
	require.Equal(t, PageShowing, a.Page().State())

	bg, ok := ParseHexColor("#f4efe6")
	require.True(t, ok)
	require.Equal(t, bg, a.background)
}

func TestNewAppErrors(t *testing.T) {
	_, err := NewApp(AppOptions{})
	require.True(t, DocumentError.Has(err))

	_, err = NewApp(AppOptions{Document: loadTestDocument(t), StartURL: "/missing"})
	require.True(t, DocumentError.Has(err))
}

func TestAppNavigate(t *testing.T) {
	a := newTestApp(t, "/")
	require.True(t, DocumentError.Has(a.Navigate("/missing")))
	require.False(t, a.Pending())

	require.NoError(t, a.Navigate("/about"))
	require.True(t, a.Pending())
	require.Equal(t, "/", a.URL(), "old page stays until it has hidden")

	settleNavigation(t, a)
	require.Equal(t, "/about", a.URL())
	require.Equal(t, TemplateAbout, a.Page().Template())
	require.IsType(t, &About{}, a.Canvas().Track())
	bg, _ := ParseHexColor("#c97e6b")
	require.Equal(t, bg, a.background)

	for i := 0; i < 90; i++ {
		tick(a)
	}
	require.Equal(t, PageVisible, a.Page().State())
}

func TestAppNavigateRestart(t *testing.T) {
	a := newTestApp(t, "/")
	require.NoError(t, a.Navigate("/about"))
	tick(a)
	require.NoError(t, a.Navigate("/collections"))

	settleNavigation(t, a)
	require.Equal(t, "/collections", a.URL())
	require.IsType(t, &Collections{}, a.Canvas().Track())

	// The abandoned destination never opened.
	for i := 0; i < 90; i++ {
		tick(a)
	}
	require.Equal(t, "/collections", a.URL())
}

func TestAppDetailToCollectionsHandoff(t *testing.T) {
	a := newTestApp(t, "/detail/two")
	require.IsType(t, &Detail{}, a.Canvas().Track())
	hero := a.Canvas().Track().(*Detail).Hero().Node()

	require.NoError(t, a.Navigate("/collections"))
	tr := a.Canvas().Transition()
	require.NotNil(t, tr)
	require.Equal(t, "collections/2.jpg", tr.TextureKey())

	settleNavigation(t, a)
	col, ok := a.Canvas().Track().(*Collections)
	require.True(t, ok)
	require.True(t, a.Canvas().Arena().Valid(hero), "hero must survive the page swap")

	for i := 0; i < 200 && !tr.Done(); i++ {
		tick(a)
	}
	require.True(t, tr.Done())
	require.False(t, a.Canvas().Arena().Valid(hero))
	require.Nil(t, col.transition)
}

func TestAppLayoutResizes(t *testing.T) {
	a := newTestApp(t, "/")
	w, h := a.Layout(1000, 500)
	require.Equal(t, 1000, w)
	require.Equal(t, 500, h)

	a.Layout(2000, 1000)
	require.Equal(t, Viewport{Width: 2000, Height: 1000}, a.Canvas().Screen().Viewport)
	home, _ := a.doc.Page("/")
	m := home.Root.QueryAll(homeMediaClass)[0]
	require.Equal(t, Rect{200, 200, 400, 200}, m.BoundingRect())
}

func TestAppWheelReachesPageAndCanvas(t *testing.T) {
	a := newTestApp(t, "/about")
	for i := 0; i < 90; i++ {
		tick(a)
	}
	require.Equal(t, PageVisible, a.Page().State())

	a.OnWheel(WheelEvent{PixelY: 200})
	require.Equal(t, 200.0, a.Page().Scroll().Target)

	a = newTestApp(t, "/")
	a.OnWheel(WheelEvent{PixelY: 200})
	tick(a)
	require.InDelta(t, 20, a.Canvas().Track().(*Home).Scroll().Y, 1e-9)
}
