package showcase

import (
	"time"

	"go.uber.org/zap"
)

// debugLogEvery is how many frames pass between debug stat lines.
const debugLogEvery = 60

// drawStats holds per-frame draw metrics. Only populated when the canvas is
// in debug mode.
type drawStats struct {
	drawTime time.Duration
	nodes    int
	drawn    int
	culled   int
}

// debugLog writes draw stats once every debugLogEvery frames.
func (c *Canvas) debugLog(stats drawStats) {
	if !c.debug {
		return
	}
	c.frame++
	if c.frame%debugLogEvery != 0 {
		return
	}
	c.ctx.Log.Debug("frame",
		zap.Duration("draw", stats.drawTime),
		zap.Int("nodes", stats.nodes),
		zap.Int("drawn", stats.drawn),
		zap.Int("culled", stats.culled),
		zap.String("template", string(c.template)),
		zap.Int("tasks", c.ctx.Animator.Len()))
}

// debugMaxTreeDepth is the depth past which the scene is probably leaking
// groups.
const debugMaxTreeDepth = 32

// debugCheckTree warns when the arena grows deeper than debugMaxTreeDepth.
// Returns the deepest depth found.
func (c *Canvas) debugCheckTree() int {
	depth := c.treeDepth(c.arena.Root())
	if depth > debugMaxTreeDepth {
		c.ctx.Log.Warn("scene tree too deep",
			zap.Int("depth", depth),
			zap.Int("threshold", debugMaxTreeDepth))
	}
	return depth
}

func (c *Canvas) treeDepth(h Handle) int {
	deepest := 0
	for _, child := range c.arena.Children(h) {
		if d := c.treeDepth(child); d > deepest {
			deepest = d
		}
	}
	return deepest + 1
}
