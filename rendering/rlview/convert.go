package rlview

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"toyviewer/core"
	"toyviewer/viewer"
)

func toRaylibVec(v mgl32.Vec3) rl.Vector3 {
	return rl.NewVector3(v[0], v[1], v[2])
}

func toRaylibColor(c core.Color) rl.Color {
	r, g, b := c.RGB()
	return rl.NewColor(r, g, b, 255)
}

// faceCache keeps world-space faces per node until the node or one of its
// ancestors moves
type faceCache struct {
	faces map[*core.Node][]viewer.Face
}

func newFaceCache() *faceCache {
	return &faceCache{faces: make(map[*core.Node][]viewer.Face)}
}

func (c *faceCache) Faces(n *core.Node) []viewer.Face {
	if f, ok := c.faces[n]; ok {
		return f
	}
	f := viewer.WorldFaces(n)
	c.faces[n] = f
	return f
}

// Invalidate drops the cached faces of nodes and all their descendants
func (c *faceCache) Invalidate(nodes ...*core.Node) {
	for _, n := range nodes {
		n.Traverse(func(d *core.Node) bool {
			delete(c.faces, d)
			return true
		})
	}
}
