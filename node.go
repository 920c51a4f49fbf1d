package showcase

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Handle identifies a Node inside an Arena. Handles are generation-checked:
// once a node is disposed every handle to it resolves to nil, even if the
// slot is reused. The zero Handle never resolves.
type Handle struct {
	index uint32
	gen   uint32
}

// IsZero reports whether h is the zero handle.
func (h Handle) IsZero() bool {
	return h.gen == 0
}

// Node is a scene element. Position is in scene units with Y up; a textured
// node renders as a unit quad centered on its origin, so ScaleX/ScaleY are the
// rendered width and height.
type Node struct {
	Name string

	// Transform (local)
	X, Y     float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64

	// Visibility
	Alpha   float64
	Visible bool

	// Texture is the image drawn across the quad. Nil means the node only
	// groups its children.
	Texture *ebiten.Image
	// Bend pushes the quad's interior toward the camera in proportion to
	// scroll speed, so fast scrolling bulges the image.
	Bend float64

	// Computed during updateWorldTransform
	worldTransform [6]float64
	worldAlpha     float64
	transformDirty bool

	parent   Handle
	children []Handle
}

type slot struct {
	node *Node
	gen  uint32
}

// Arena owns every node of a scene. Tracks and media hold Handles instead of
// node pointers, so destroying a subtree never leaves a dangling parent link.
// Arena is not safe for concurrent use; the engine is single-threaded.
type Arena struct {
	slots []slot
	free  []uint32
	root  Handle
	live  int
}

// NewArena creates an arena with a pre-created root node.
func NewArena() *Arena {
	a := &Arena{}
	a.root = a.alloc("root")
	return a
}

// Root returns the handle of the arena's root node.
func (a *Arena) Root() Handle {
	return a.root
}

// Len returns the number of live nodes, including the root.
func (a *Arena) Len() int {
	return a.live
}

// New creates a node and attaches it to parent. A zero or stale parent
// attaches the node to the root.
func (a *Arena) New(name string, parent Handle) Handle {
	h := a.alloc(name)
	if a.Get(parent) == nil {
		parent = a.root
	}
	a.attach(h, parent)
	return h
}

func (a *Arena) alloc(name string) Handle {
	n := &Node{
		Name:           name,
		ScaleX:         1,
		ScaleY:         1,
		Alpha:          1,
		Visible:        true,
		transformDirty: true,
	}
	a.live++
	if k := len(a.free); k > 0 {
		idx := a.free[k-1]
		a.free = a.free[:k-1]
		s := &a.slots[idx]
		s.gen++
		s.node = n
		return Handle{index: idx, gen: s.gen}
	}
	a.slots = append(a.slots, slot{node: n, gen: 1})
	return Handle{index: uint32(len(a.slots) - 1), gen: 1}
}

// Get resolves a handle. It returns nil for the zero handle and for handles
// whose node has been disposed.
func (a *Arena) Get(h Handle) *Node {
	if h.gen == 0 || int(h.index) >= len(a.slots) {
		return nil
	}
	s := &a.slots[h.index]
	if s.gen != h.gen {
		return nil
	}
	return s.node
}

// Valid reports whether h resolves to a live node.
func (a *Arena) Valid(h Handle) bool {
	return a.Get(h) != nil
}

// Parent returns the parent handle of h, or the zero handle for the root and
// for stale handles.
func (a *Arena) Parent(h Handle) Handle {
	n := a.Get(h)
	if n == nil {
		return Handle{}
	}
	return n.parent
}

// Children returns the child handles of h. The returned slice MUST NOT be
// mutated by the caller.
func (a *Arena) Children(h Handle) []Handle {
	n := a.Get(h)
	if n == nil {
		return nil
	}
	return n.children
}

// --- Tree manipulation ---

// SetParent moves child under parent. Panics if either handle is stale or the
// move would create a cycle.
func (a *Arena) SetParent(child, parent Handle) {
	c := a.Get(child)
	p := a.Get(parent)
	if c == nil || p == nil {
		panic("showcase: SetParent on disposed node")
	}
	if a.isAncestor(child, parent) {
		panic("showcase: reparenting would create a cycle")
	}
	a.detach(child)
	a.attach(child, parent)
	a.markSubtreeDirty(child)
}

// Dispose removes h from its parent and disposes it and all descendants.
// Disposing a stale handle or the root is a no-op.
func (a *Arena) Dispose(h Handle) {
	if h == a.root || a.Get(h) == nil {
		return
	}
	a.detach(h)
	a.dispose(h)
}

func (a *Arena) dispose(h Handle) {
	n := a.Get(h)
	if n == nil {
		return
	}
	for _, child := range n.children {
		a.dispose(child)
	}
	n.children = nil
	n.Texture = nil
	s := &a.slots[h.index]
	s.node = nil
	s.gen++
	a.free = append(a.free, h.index)
	a.live--
}

func (a *Arena) attach(child, parent Handle) {
	c := a.Get(child)
	p := a.Get(parent)
	c.parent = parent
	p.children = append(p.children, child)
}

// detach removes child from its parent's child list and clears the link.
// Uses copy+zero to avoid retaining a stale handle in the backing array.
func (a *Arena) detach(child Handle) {
	c := a.Get(child)
	p := a.Get(c.parent)
	c.parent = Handle{}
	if p == nil {
		return
	}
	for i, h := range p.children {
		if h == child {
			copy(p.children[i:], p.children[i+1:])
			p.children[len(p.children)-1] = Handle{}
			p.children = p.children[:len(p.children)-1]
			return
		}
	}
}

// isAncestor reports whether candidate is node or one of its ancestors.
func (a *Arena) isAncestor(candidate, node Handle) bool {
	for h := node; !h.IsZero(); h = a.Parent(h) {
		if h == candidate {
			return true
		}
	}
	return false
}

// markSubtreeDirty sets transformDirty on h and all its descendants.
func (a *Arena) markSubtreeDirty(h Handle) {
	n := a.Get(h)
	if n == nil {
		return
	}
	n.transformDirty = true
	for _, child := range n.children {
		a.markSubtreeDirty(child)
	}
}
