package showcase

import (
	"image/color"
	"strconv"
	"strings"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// toRGBA converts the color to a premultiplied color.RGBA.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	return Clamp(0, 1, v)
}

// ParseHexColor parses "#rgb" or "#rrggbb". ok is false for anything else.
func ParseHexColor(s string) (c Color, ok bool) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return Color{}, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Color{}, false
	}
	return Color{
		R: float64(v>>16&0xff) / 255,
		G: float64(v>>8&0xff) / 255,
		B: float64(v&0xff) / 255,
		A: 1,
	}, true
}

// Vec2 is a 2D vector used for scroll offsets, wrap offsets and positions.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle in layout pixels. The coordinate system
// has its origin at the top-left, with Y increasing downward. A Rect read
// from an Element is the Bounds snapshot of that element.
type Rect struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Viewport is the visible window size in layout pixels.
type Viewport struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Sizes is the visible extent of the scene in scene units at the media plane.
// The scene origin is the viewport center with Y increasing upward.
type Sizes struct {
	Width, Height float64
}

// Template names a page kind. Pages and tracks are registered per template.
type Template string

const (
	TemplateHome        Template = "home"
	TemplateAbout       Template = "about"
	TemplateCollections Template = "collections"
	TemplateDetail      Template = "detail"
)

// Direction is the last observed direction of travel along one scroll axis.
type Direction uint8

const (
	DirectionNone  Direction = iota // no movement observed yet
	DirectionLeft                   // content moving toward -X
	DirectionRight                  // content moving toward +X
	DirectionUp                     // content moving toward +Y (scene space)
	DirectionDown                   // content moving toward -Y (scene space)
)

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	default:
		return "none"
	}
}
