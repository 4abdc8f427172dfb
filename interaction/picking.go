package interaction

import (
	"slices"

	"github.com/go-gl/mathgl/mgl32"

	"toyviewer/core"
)

// Viewport is the pixel size of the surface pointer events are reported in
type Viewport struct {
	Width  float32 `json:"width"`
	Height float32 `json:"height"`
}

// Valid reports whether the viewport can map pixels to NDC
func (v Viewport) Valid() bool {
	return v.Width > 0 && v.Height > 0
}

// Hit is one ray/node intersection
type Hit struct {
	Node     *core.Node
	Distance float32
	Point    mgl32.Vec3
}

// Intersect tests ray against every pickable descendant of root and returns
// the hits sorted nearest first. Hits at equal distance keep traversal order.
func Intersect(ray core.Ray, root *core.Node) []Hit {
	if root == nil {
		return nil
	}
	var hits []Hit
	root.Traverse(func(n *core.Node) bool {
		if n == root || !n.IsPickable() {
			return true
		}
		if t, ok := n.Raycast(ray); ok {
			hits = append(hits, Hit{Node: n, Distance: t, Point: ray.At(t)})
		}
		return true
	})
	slices.SortStableFunc(hits, func(a, b Hit) int {
		switch {
		case a.Distance < b.Distance:
			return -1
		case a.Distance > b.Distance:
			return 1
		}
		return 0
	})
	return hits
}

// ResolvePick returns the nearest pickable node under the pixel (x, y) of
// the viewport, or nil. The camera aspect is taken from the viewport so
// picks stay aligned after a resize.
func ResolvePick(x, y float32, vp Viewport, cam *core.Camera, root *core.Node) *core.Node {
	if cam == nil || root == nil || !vp.Valid() {
		return nil
	}
	ndcX, ndcY := core.ScreenToNDC(x, y, vp.Width, vp.Height)
	view := cam.WithAspect(vp.Width, vp.Height)
	hits := Intersect(view.Ray(ndcX, ndcY), root)
	if len(hits) == 0 {
		return nil
	}
	return hits[0].Node
}
