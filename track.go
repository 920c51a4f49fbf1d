package showcase

// Track is a scrollable gallery of Media bound to one page template. The
// Canvas owns at most one live Track and drives it once per tick.
type Track interface {
	InputHandler

	// Show reveals the track's media.
	Show()
	// Hide conceals the track's media. The track stays alive until Destroy.
	Hide()
	// OnResize re-reads layout bounds against the shared Screen.
	OnResize()
	// Update advances the track by one tick. page is the damped scroll state
	// of the active page.
	Update(page ScrollState)
	// Destroy cancels the track's animations and disposes its scene nodes.
	Destroy()
}

// HeroProvider is implemented by tracks that can hand a media over to the
// next page's track during a transition.
type HeroProvider interface {
	Hero() *Media
}

// TrackOptions carries everything a TrackFactory needs.
type TrackOptions struct {
	Context *Context
	Screen  *Screen
	// Root is the page content element the track reads its layout from.
	Root Element
	// Parent is the scene node the track attaches its group to.
	Parent Handle
	// Transition is the in-flight hero handoff, if any. Only tracks that
	// understand handoffs read it.
	Transition *Transition
}

// TrackFactory builds the Track for a template.
type TrackFactory func(opts TrackOptions) Track

// TrackRegistry maps templates to track factories. Templates without a
// factory have no canvas presence.
type TrackRegistry map[Template]TrackFactory

// DefaultTracks returns the registry of built-in tracks.
func DefaultTracks() TrackRegistry {
	return TrackRegistry{
		TemplateHome:        func(opts TrackOptions) Track { return NewHome(opts) },
		TemplateCollections: func(opts TrackOptions) Track { return NewCollections(opts) },
		TemplateAbout:       func(opts TrackOptions) Track { return NewAbout(opts) },
		TemplateDetail:      func(opts TrackOptions) Track { return NewDetail(opts) },
	}
}

// Build returns the track for template, or nil when none is registered.
func (r TrackRegistry) Build(template Template, opts TrackOptions) Track {
	factory, ok := r[template]
	if !ok || factory == nil {
		return nil
	}
	return factory(opts)
}

// newMedias creates one Media per element under parent.
func newMedias(opts TrackOptions, elements []Element, parent Handle, style MediaStyle) []*Media {
	medias := make([]*Media, 0, len(elements))
	for i, el := range elements {
		medias = append(medias, NewMedia(MediaOptions{
			Context: opts.Context,
			Screen:  opts.Screen,
			Element: el,
			Index:   i,
			Parent:  parent,
			Style:   style,
		}))
	}
	return medias
}

// periodOf converts an element's extent into scene units along both axes.
func periodOf(el Element, screen *Screen) Vec2 {
	if el == nil {
		return Vec2{}
	}
	b := el.BoundingRect()
	var p Vec2
	if screen.Viewport.Width > 0 {
		p.X = b.Width / screen.Viewport.Width * screen.Sizes.Width
	}
	if screen.Viewport.Height > 0 {
		p.Y = b.Height / screen.Viewport.Height * screen.Sizes.Height
	}
	return p
}

func showAll(medias []*Media) {
	for _, m := range medias {
		m.Show()
	}
}

func hideAll(medias []*Media) {
	for _, m := range medias {
		m.Hide()
	}
}

func destroyAll(medias []*Media) {
	for _, m := range medias {
		m.Destroy()
	}
}
