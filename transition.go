package showcase

import (
	"github.com/tanema/gween/ease"
	"go.uber.org/zap"
)

// defaultTransitionDuration is the flight time of the hero mesh.
const defaultTransitionDuration = 1.5

// Transition carries a hero mesh from the outgoing track to the incoming
// one. It owns the hero node from creation until it finishes or is
// destroyed; the outgoing track no longer touches it.
type Transition struct {
	ctx  *Context
	node Handle
	key  string
	task *Task
	done bool
}

// NewTransition takes ownership of hero's mesh and reparents it under
// parent. It returns nil when there is no hero.
func NewTransition(ctx *Context, hero *Media, parent Handle) *Transition {
	if hero == nil {
		return nil
	}
	key := hero.TextureKey()
	node := hero.release()
	if !ctx.Arena.Valid(node) {
		return nil
	}
	ctx.Arena.SetParent(node, parent)
	ctx.Log.Debug("transition started", zap.String("key", key))
	return &Transition{ctx: ctx, node: node, key: key}
}

// TextureKey returns the asset key of the hero's texture. The incoming
// track matches its media against it.
func (t *Transition) TextureKey() string { return t.key }

// Node returns the hero node. It is stale once the transition is over.
func (t *Transition) Node() Handle { return t.node }

// Transform returns the hero's current transform.
func (t *Transition) Transform() MeshTransform {
	n := t.ctx.Arena.Get(t.node)
	if n == nil {
		return MeshTransform{}
	}
	return MeshTransform{Position: Vec2{n.X, n.Y}, Rotation: n.Rotation, Scale: Vec2{n.ScaleX, n.ScaleY}}
}

// Done reports whether the transition finished or was destroyed.
func (t *Transition) Done() bool { return t == nil || t.done }

// Animate flies the hero to the target transform. When the flight lands,
// done runs and the hero node is disposed: the incoming track's own media
// has taken its place.
func (t *Transition) Animate(to MeshTransform, done func()) *Task {
	n := t.ctx.Arena.Get(t.node)
	if n == nil || t.done {
		if done != nil {
			done()
		}
		t.finish()
		return nil
	}
	t.task.Cancel()
	t.task = t.ctx.Animator.Animate(defaultTransitionDuration, ease.InOutExpo).
		Field(n.X, to.Position.X, func(v float64) { t.set(func(n *Node) { n.SetPosition(v, n.Y) }) }).
		Field(n.Y, to.Position.Y, func(v float64) { t.set(func(n *Node) { n.SetPosition(n.X, v) }) }).
		Field(n.Rotation, to.Rotation, func(v float64) { t.set(func(n *Node) { n.SetRotation(v) }) }).
		Field(n.ScaleX, to.Scale.X, func(v float64) { t.set(func(n *Node) { n.SetScale(v, n.ScaleY) }) }).
		Field(n.ScaleY, to.Scale.Y, func(v float64) { t.set(func(n *Node) { n.SetScale(n.ScaleX, v) }) }).
		OnDone(func() {
			if done != nil {
				done()
			}
			t.finish()
		})
	return t.task
}

func (t *Transition) set(fn func(*Node)) {
	if n := t.ctx.Arena.Get(t.node); n != nil {
		fn(n)
	}
}

func (t *Transition) finish() {
	if t.done {
		return
	}
	t.done = true
	t.ctx.Arena.Dispose(t.node)
	t.ctx.Log.Debug("transition finished", zap.String("key", t.key))
}

// Destroy cancels the flight and disposes the hero. Safe to call more than
// once and on a nil transition.
func (t *Transition) Destroy() {
	if t == nil {
		return
	}
	t.task.Cancel()
	t.finish()
}
