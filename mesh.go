package showcase

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// meshSegments is the grid resolution of a media quad per axis. The bend
// needs interior vertices to show.
const meshSegments = 8

// minBendDepth keeps bent vertices in front of the camera.
const minBendDepth = 0.1

// quadMesh is the reusable vertex/index buffer for one textured quad.
// Indices are fixed; vertices are rewritten for every drawn node.
type quadMesh struct {
	segments int
	verts    []ebiten.Vertex
	indices  []uint16
}

func newQuadMesh(segments int) *quadMesh {
	if segments < 1 {
		segments = 1
	}
	row := segments + 1
	q := &quadMesh{
		segments: segments,
		verts:    make([]ebiten.Vertex, row*row),
		indices:  make([]uint16, 0, segments*segments*6),
	}
	for j := 0; j < segments; j++ {
		for i := 0; i < segments; i++ {
			a := uint16(j*row + i)
			b := a + 1
			c := a + uint16(row)
			d := c + 1
			q.indices = append(q.indices, a, b, c, b, d, c)
		}
	}
	return q
}

// bendDepth is the z displacement of a vertex at scene position (x, y): two
// cosine lobes peaking at the scene center, scaled by the scroll speed.
func bendDepth(x, y float64, sizes Sizes, bend float64) float64 {
	if bend == 0 || sizes.Width <= 0 || sizes.Height <= 0 {
		return 0
	}
	return (math.Sin(y/sizes.Height*math.Pi+math.Pi/2) + math.Sin(x/sizes.Width*math.Pi+math.Pi/2)) * math.Abs(bend)
}

// project fills the vertex buffer for n: every grid point is placed in the
// scene by the node's world transform, pushed toward the camera by the bend
// and projected to screen pixels. Colors carry the premultiplied alpha.
func (q *quadMesh) project(n *Node, cam *Camera, tex *ebiten.Image) {
	view := cam.computeViewMatrix()
	sizes := cam.Sizes()
	b := tex.Bounds()
	tw, th := float64(b.Dx()), float64(b.Dy())
	alpha := float32(n.worldAlpha)
	row := q.segments + 1

	for j := 0; j <= q.segments; j++ {
		v := float64(j) / float64(q.segments)
		for i := 0; i <= q.segments; i++ {
			u := float64(i) / float64(q.segments)
			x, y := transformPoint(n.worldTransform, u-0.5, 0.5-v)
			if dz := bendDepth(x, y, sizes, n.Bend); dz != 0 {
				k := cam.Z / math.Max(cam.Z-dz, minBendDepth)
				x, y = x*k, y*k
			}
			sx, sy := transformPoint(view, x, y)
			q.verts[j*row+i] = ebiten.Vertex{
				DstX:   float32(sx),
				DstY:   float32(sy),
				SrcX:   float32(float64(b.Min.X) + u*tw),
				SrcY:   float32(float64(b.Min.Y) + v*th),
				ColorR: alpha,
				ColorG: alpha,
				ColorB: alpha,
				ColorA: alpha,
			}
		}
	}
}

// draw projects n and submits it to target.
func (q *quadMesh) draw(target *ebiten.Image, n *Node, cam *Camera) {
	q.project(n, cam, n.Texture)
	op := &ebiten.DrawTrianglesOptions{Filter: ebiten.FilterLinear}
	target.DrawTriangles(q.verts, q.indices, n.Texture, op)
}
