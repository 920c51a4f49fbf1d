// Package showcase renders scroll-synchronized image galleries with
// [Ebitengine].
//
// A site is described by a YAML layout [Document]: routable pages, each a
// tree of elements with rectangles, classes and data-src attributes. Every
// gallery image on a page becomes a textured quad in a perspective scene
// whose position, scale and tilt follow the element's rectangle shifted by
// the gallery's damped scroll. The scene is owned by a [Canvas]; the page
// side (opacity, page scroll, lifecycle) by a [Page]; an [App] ties both to
// the window.
//
// # Quick start
//
// Load a document, decode its textures, and run:
//
//	doc, err := showcase.LoadDocument("site.yaml")
//	// ...
//	textures, err := showcase.Preload(ctx, doc.Assets(), showcase.PreloadOptions{
//		Open: showcase.DirOpener("assets"),
//	})
//	// ...
//	app, err := showcase.NewApp(showcase.AppOptions{
//		Document: doc,
//		Textures: textures,
//		Viewport: showcase.Viewport{Width: 1280, Height: 720},
//	})
//	// ...
//	err = showcase.Run(app, showcase.RunConfig{Title: "showcase", Width: 1280, Height: 720})
//
// # Tracks
//
// A [Track] is the scene half of one page template:
//
//   - [Home] is a grid scrolled freely on both axes that wraps around in
//     both directions and bends with scroll speed.
//   - [Collections] is a clamped horizontal strip that selects the media
//     nearest the center and marks its article active.
//   - [About] stacks auto-drifting strips that follow the page scroll.
//   - [Detail] shows a single product image.
//
// Tracks are built per template from a [TrackRegistry]. Leaving a detail
// page for the collections page hands the product image to a [Transition],
// which flies it onto its counterpart in the collections strip.
//
// # Scroll
//
// All motion goes through [ScrollState]: input writes the target, and the
// current value moves a fixed fraction of the remaining distance every tick.
// The engine never reads the wall clock; animations advance through an
// [Animator] stepped once per tick.
//
// [Ebitengine]: https://ebitengine.org
package showcase
