package showcase

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// CanvasOptions configures NewCanvas.
type CanvasOptions struct {
	Textures *Textures
	Animator *Animator
	Log      *zap.Logger
	// Tracks maps templates to tracks. Nil means DefaultTracks.
	Tracks   TrackRegistry
	Viewport Viewport
}

// Canvas is the scene coordinator. It owns the node arena, the camera and
// the single live Track, and it choreographs track swaps and hero
// transitions on page changes.
type Canvas struct {
	ctx    *Context
	arena  *Arena
	camera *Camera
	screen Screen
	tracks TrackRegistry

	template   Template
	track      Track
	transition *Transition

	quad  *quadMesh
	debug bool
	frame int
}

// NewCanvas creates an empty canvas sized to opts.Viewport.
func NewCanvas(opts CanvasOptions) *Canvas {
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}
	animator := opts.Animator
	if animator == nil {
		animator = NewAnimator()
	}
	tracks := opts.Tracks
	if tracks == nil {
		tracks = DefaultTracks()
	}
	arena := NewArena()
	c := &Canvas{
		ctx: &Context{
			Textures: opts.Textures,
			Arena:    arena,
			Animator: animator,
			Log:      log,
		},
		arena:  arena,
		camera: NewCamera(opts.Viewport),
		tracks: tracks,
		quad:   newQuadMesh(meshSegments),
	}
	c.screen = Screen{Viewport: opts.Viewport, Sizes: c.camera.Sizes()}
	return c
}

// Context returns the collaborators shared with tracks.
func (c *Canvas) Context() *Context { return c.ctx }

// Arena returns the scene's node arena.
func (c *Canvas) Arena() *Arena { return c.arena }

// Camera returns the scene camera.
func (c *Canvas) Camera() *Camera { return c.camera }

// Screen returns the current viewport and scene sizes.
func (c *Canvas) Screen() Screen { return c.screen }

// Template returns the template of the live track.
func (c *Canvas) Template() Template { return c.template }

// Track returns the live track, or nil.
func (c *Canvas) Track() Track { return c.track }

// Transition returns the hero transition waiting for the next track, or nil.
func (c *Canvas) Transition() *Transition { return c.transition }

// SetDebug enables periodic draw statistics at debug level.
func (c *Canvas) SetDebug(enabled bool) { c.debug = enabled }

// --- Events ---

// OnResize recomputes the scene sizes for viewport and lets the live track
// re-read its layout.
func (c *Canvas) OnResize(viewport Viewport) {
	c.camera.SetViewport(viewport)
	c.screen.Viewport = viewport
	c.screen.Sizes = c.camera.Sizes()
	if c.track != nil {
		c.track.OnResize()
	}
}

// OnChangeStart begins a page change. The live track hides, except a
// detail track whose hero is about to fly to the collections page through
// a Transition. A restarted change keeps a transition that is still headed
// the same way.
func (c *Canvas) OnChangeStart(from Template, toURL string) {
	handoff := from == TemplateDetail && TemplateForURL(toURL) == TemplateCollections
	if _, ok := c.track.(HeroProvider); !ok || !handoff {
		if c.track != nil {
			c.track.Hide()
		}
	}
	if c.transition != nil {
		if handoff {
			return
		}
		c.transition.Destroy()
		c.transition = nil
	}
	if !handoff {
		return
	}
	hp, ok := c.track.(HeroProvider)
	if !ok {
		return
	}
	c.transition = NewTransition(c.ctx, hp.Hero(), c.arena.Root())
}

// OnChangeEnd finishes a page change: the outgoing track is destroyed and
// the track for to is built from root. A pending transition goes to the
// collections track; any other template drops it.
func (c *Canvas) OnChangeEnd(to Template, root Element) {
	if c.track != nil {
		c.track.Destroy()
		c.track = nil
	}
	c.template = to

	var transition *Transition
	if to == TemplateCollections {
		transition = c.transition
	} else {
		c.transition.Destroy()
	}
	c.transition = nil

	c.track = c.tracks.Build(to, TrackOptions{
		Context:    c.ctx,
		Screen:     &c.screen,
		Root:       root,
		Parent:     c.arena.Root(),
		Transition: transition,
	})
	if c.track == nil {
		transition.Destroy()
		c.ctx.Log.Debug("no track for template", zap.String("template", string(to)))
		return
	}
	c.track.Show()
	if c.debug {
		c.debugCheckTree()
	}
}

// OnTouchDown forwards to the live track.
func (c *Canvas) OnTouchDown(e TouchEvent) {
	if c.track != nil {
		c.track.OnTouchDown(e)
	}
}

// OnTouchMove forwards to the live track.
func (c *Canvas) OnTouchMove(e TouchEvent) {
	if c.track != nil {
		c.track.OnTouchMove(e)
	}
}

// OnTouchUp forwards to the live track.
func (c *Canvas) OnTouchUp(e TouchEvent) {
	if c.track != nil {
		c.track.OnTouchUp(e)
	}
}

// OnWheel forwards to the live track.
func (c *Canvas) OnWheel(e WheelEvent) {
	if c.track != nil {
		c.track.OnWheel(e)
	}
}

// Update advances the live track. Without one it does nothing.
func (c *Canvas) Update(page ScrollState) {
	if c.track == nil {
		return
	}
	c.track.Update(page)
}

// --- Rendering ---

// Draw refreshes world transforms and renders every visible textured node
// through the camera.
func (c *Canvas) Draw(target *ebiten.Image) {
	var stats drawStats
	var t0 time.Time
	if c.debug {
		t0 = time.Now()
	}

	c.arena.UpdateTransforms()
	c.drawNode(target, c.arena.Root(), &stats)

	if c.debug {
		stats.drawTime = time.Since(t0)
		stats.nodes = c.arena.Len()
		c.debugLog(stats)
	}
}

func (c *Canvas) drawNode(target *ebiten.Image, h Handle, stats *drawStats) {
	n := c.arena.Get(h)
	if n == nil || !n.Visible {
		return
	}
	if n.Texture != nil && n.worldAlpha > 0 {
		if c.camera.shouldCull(n) {
			stats.culled++
		} else {
			c.quad.draw(target, n, c.camera)
			stats.drawn++
		}
	}
	for _, child := range n.children {
		c.drawNode(target, child, stats)
	}
}

// Destroy tears down the live track and any pending transition.
func (c *Canvas) Destroy() {
	c.transition.Destroy()
	c.transition = nil
	if c.track != nil {
		c.track.Destroy()
		c.track = nil
	}
}
