package showcase

import (
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// defaultBackground fills the window when a page sets no background color.
var defaultBackground = Color{R: 0.06, G: 0.06, B: 0.06, A: 1}

// AppOptions configures NewApp.
type AppOptions struct {
	Document *Document
	Textures *Textures
	Log      *zap.Logger
	Viewport Viewport
	StartURL string
	// Pages and Tracks default to DefaultPages and DefaultTracks.
	Pages  PageRegistry
	Tracks TrackRegistry
	Debug  bool
	// ShowFPS draws frame rate and the active URL in the corner.
	ShowFPS bool
	// ScreenshotDir receives captures queued with Screenshot.
	ScreenshotDir string
}

// App ties the layout document, the active page and the canvas together and
// runs them as an ebiten.Game.
type App struct {
	doc      *Document
	log      *zap.Logger
	animator *Animator
	input    *Input
	canvas   *Canvas
	pages    PageRegistry

	viewport   Viewport
	page       *Page
	url        string
	background Color

	pending    *Task
	pendingURL string

	runner *ScriptRunner
	fps    *fpsOverlay

	screenshots   []string
	screenshotDir string
}

var (
	_ ebiten.Game  = (*App)(nil)
	_ InputHandler = (*App)(nil)
)

// NewApp lays the document out for opts.Viewport and opens opts.StartURL.
func NewApp(opts AppOptions) (*App, error) {
	if opts.Document == nil {
		return nil, DocumentError.New("no document")
	}
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}
	pages := opts.Pages
	if pages == nil {
		pages = DefaultPages()
	}
	start := opts.StartURL
	if start == "" {
		start = "/"
	}
	content, ok := opts.Document.Page(start)
	if !ok {
		return nil, DocumentError.New("no page for start url %q", start)
	}

	a := &App{
		doc:        opts.Document,
		log:        log,
		animator:   NewAnimator(),
		input:      NewInput(),
		pages:      pages,
		viewport:   opts.Viewport,
		background: defaultBackground,

		screenshotDir: opts.ScreenshotDir,
	}
	if a.screenshotDir == "" {
		a.screenshotDir = defaultScreenshotDir
	}
	a.doc.Reflow(a.viewport)
	a.canvas = NewCanvas(CanvasOptions{
		Textures: opts.Textures,
		Animator: a.animator,
		Log:      log,
		Tracks:   opts.Tracks,
		Viewport: a.viewport,
	})
	a.canvas.SetDebug(opts.Debug)
	if opts.ShowFPS {
		a.fps = &fpsOverlay{}
	}
	a.activate(content)
	return a, nil
}

// Page returns the active page.
func (a *App) Page() *Page { return a.page }

// Canvas returns the scene coordinator.
func (a *App) Canvas() *Canvas { return a.canvas }

// Input returns the input tracker, for injecting synthetic input.
func (a *App) Input() *Input { return a.input }

// Animator returns the animator shared by pages and tracks.
func (a *App) Animator() *Animator { return a.animator }

// URL returns the URL of the active page.
func (a *App) URL() string { return a.url }

// Pending reports whether a navigation is waiting for the old page to hide.
func (a *App) Pending() bool { return a.pending.Active() }

// SetScript attaches a scripted input session. It is stepped at the start
// of every Update.
func (a *App) SetScript(r *ScriptRunner) { a.runner = r }

// Navigate hides the active page and, once it is gone, swaps in the page at
// url. Navigating while a previous navigation is pending cancels it and
// restarts toward the new url.
func (a *App) Navigate(url string) error {
	content, ok := a.doc.Page(url)
	if !ok {
		return DocumentError.New("no page for url %q", url)
	}
	if a.pending.Active() {
		a.log.Debug("navigation restarted",
			zap.String("from", a.pendingURL),
			zap.String("to", url))
		a.pending.Cancel()
	}

	a.canvas.OnChangeStart(a.page.Template(), url)
	a.pendingURL = url
	hide := a.page.Hide()
	a.pending = hide
	hide.OnDone(func() {
		a.pending = nil
		a.activate(content)
	})
	return nil
}

// activate creates and reveals the page for content and builds its track.
func (a *App) activate(content *Content) {
	a.page = a.pages.Build(PageOptions{
		Animator: a.animator,
		Log:      a.log,
		Content:  content,
	})
	a.url = content.URL
	a.background = defaultBackground
	if c, ok := ParseHexColor(content.Background); ok {
		a.background = c
	}

	a.canvas.OnChangeEnd(a.page.Template(), a.page.Root())
	a.page.OnResize(a.viewport)
	a.page.Show(nil)

	mon.Counter(metricNavigation).Inc(1)
	a.log.Info("page opened",
		zap.String("url", content.URL),
		zap.String("template", string(a.page.Template())))
}

// OnResize reflows the document and resizes the page and canvas.
func (a *App) OnResize(vp Viewport) {
	a.viewport = vp
	a.doc.Reflow(vp)
	a.page.OnResize(vp)
	a.canvas.OnResize(vp)
}

// --- Input ---

// OnTouchDown forwards to the canvas.
func (a *App) OnTouchDown(e TouchEvent) { a.canvas.OnTouchDown(e) }

// OnTouchMove forwards to the canvas.
func (a *App) OnTouchMove(e TouchEvent) { a.canvas.OnTouchMove(e) }

// OnTouchUp forwards to the canvas.
func (a *App) OnTouchUp(e TouchEvent) { a.canvas.OnTouchUp(e) }

// OnWheel scrolls both the page and the canvas.
func (a *App) OnWheel(e WheelEvent) {
	a.page.OnWheel(e)
	a.canvas.OnWheel(e)
}

// --- ebiten.Game ---

// Update runs one tick: script, input, then step.
func (a *App) Update() error {
	if a.runner != nil {
		a.runner.step(a)
	}
	a.input.Process(a)
	a.step(float32(1 / float64(ebiten.TPS())))
	return nil
}

// step advances page scroll, the canvas and every animation by dt seconds.
func (a *App) step(dt float32) {
	defer mon.TaskNamed("frame_update")(nil)(nil)

	a.page.Update()
	a.canvas.Update(a.page.Scroll())
	a.animator.Update(dt)
	if a.fps != nil {
		a.fps.update(float64(dt))
	}
}

// Draw fills the page background, renders the canvas and captures any
// queued screenshots.
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(a.background.toRGBA())
	a.canvas.Draw(screen)
	if a.fps != nil {
		a.fps.draw(screen, a.url)
	}
	a.flushScreenshots(screen)
}

// RunConfig holds window settings for Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int
}

// Run opens a resizable window and runs app until it is closed.
func Run(app *App, cfg RunConfig) error {
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(app)
}

// Layout tracks the window size. A change resizes everything.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	vp := Viewport{Width: float64(outsideWidth), Height: float64(outsideHeight)}
	if vp != a.viewport {
		a.OnResize(vp)
	}
	return outsideWidth, outsideHeight
}
