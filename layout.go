package showcase

import (
	"fmt"
	"strings"
)

// Element is the layout-side view of a page element: a live rectangle,
// attributes, a class list and a transform. Tracks and pages read bounds from
// Elements and write class/transform changes back to them.
type Element interface {
	// BoundingRect returns the element's rectangle in viewport pixels.
	BoundingRect() Rect
	ClientWidth() float64
	ClientHeight() float64
	// Attr returns the attribute value, or "" when absent.
	Attr(name string) string
	HasClass(name string) bool
	SetClass(name string, on bool)
	// SetTransform records a CSS-like transform string.
	SetTransform(transform string)
	// Query returns the first descendant with the given class, or nil.
	Query(class string) Element
	// QueryAll returns every descendant with the given class in document order.
	QueryAll(class string) []Element
}

// Box is the in-memory Element implementation. Rect is authored against the
// document's design viewport; Reflow rescales it into the live rectangle.
type Box struct {
	Class    string            `yaml:"class"`
	Rect     Rect              `yaml:"rect"`
	Attrs    map[string]string `yaml:"attrs,omitempty"`
	Children []*Box            `yaml:"children,omitempty"`

	live      Rect
	classes   map[string]bool
	transform string
}

// NewBox creates a box with the given classes (space separated) and rect.
// The live rectangle equals rect until the next Reflow.
func NewBox(class string, rect Rect, children ...*Box) *Box {
	b := &Box{Class: class, Rect: rect, Children: children}
	b.init()
	return b
}

// init parses the class attribute and seeds the live rectangle for the
// whole subtree.
func (b *Box) init() {
	b.classes = make(map[string]bool)
	for _, c := range strings.Fields(b.Class) {
		b.classes[c] = true
	}
	b.live = b.Rect
	for _, c := range b.Children {
		c.init()
	}
}

// WithAttr sets an attribute and returns the box for chaining.
func (b *Box) WithAttr(name, value string) *Box {
	if b.Attrs == nil {
		b.Attrs = make(map[string]string)
	}
	b.Attrs[name] = value
	return b
}

// reflow rescales the authored rectangle by factor into the live rectangle.
func (b *Box) reflow(factor float64) {
	b.live = Rect{
		X:      b.Rect.X * factor,
		Y:      b.Rect.Y * factor,
		Width:  b.Rect.Width * factor,
		Height: b.Rect.Height * factor,
	}
	for _, c := range b.Children {
		c.reflow(factor)
	}
}

// BoundingRect returns the live rectangle.
func (b *Box) BoundingRect() Rect { return b.live }

// ClientWidth returns the live width.
func (b *Box) ClientWidth() float64 { return b.live.Width }

// ClientHeight returns the live height.
func (b *Box) ClientHeight() float64 { return b.live.Height }

// Attr returns an attribute value or "".
func (b *Box) Attr(name string) string {
	return b.Attrs[name]
}

// HasClass reports whether the class list contains name.
func (b *Box) HasClass(name string) bool {
	return b.classes[name]
}

// SetClass adds or removes name from the class list.
func (b *Box) SetClass(name string, on bool) {
	if b.classes == nil {
		b.classes = make(map[string]bool)
	}
	if on {
		b.classes[name] = true
	} else {
		delete(b.classes, name)
	}
}

// SetTransform records a transform string.
func (b *Box) SetTransform(transform string) {
	b.transform = transform
}

// Transform returns the last transform written with SetTransform.
func (b *Box) Transform() string {
	return b.transform
}

// Query returns the first descendant carrying class, or nil.
func (b *Box) Query(class string) Element {
	if found := b.find(class); found != nil {
		return found
	}
	return nil
}

func (b *Box) find(class string) *Box {
	for _, c := range b.Children {
		if c.HasClass(class) {
			return c
		}
		if found := c.find(class); found != nil {
			return found
		}
	}
	return nil
}

// QueryAll returns every descendant carrying class in document order.
func (b *Box) QueryAll(class string) []Element {
	var out []Element
	b.walk(func(c *Box) {
		if c.HasClass(class) {
			out = append(out, c)
		}
	})
	return out
}

// walk visits every descendant depth-first in document order.
func (b *Box) walk(fn func(*Box)) {
	for _, c := range b.Children {
		fn(c)
		c.walk(fn)
	}
}

// String implements fmt.Stringer for debug output.
func (b *Box) String() string {
	return fmt.Sprintf("Box(%q %v)", b.Class, b.live)
}
