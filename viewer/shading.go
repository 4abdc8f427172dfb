package viewer

import (
	"github.com/go-gl/mathgl/mgl32"

	"toyviewer/core"
)

// Face is a world-space triangle of a mesh node
type Face struct {
	A, B, C mgl32.Vec3
	Normal  mgl32.Vec3
}

// WorldFaces returns the triangles of n transformed to world space.
// Degenerate triangles are skipped.
func WorldFaces(n *core.Node) []Face {
	if n == nil || n.Mesh == nil {
		return nil
	}
	world := n.WorldMatrix()
	faces := make([]Face, 0, n.Mesh.TriangleCount())
	for i := 0; i < n.Mesh.TriangleCount(); i++ {
		a, b, c := n.Mesh.Triangle(i)
		a = mgl32.TransformCoordinate(a, world)
		b = mgl32.TransformCoordinate(b, world)
		c = mgl32.TransformCoordinate(c, world)
		normal := b.Sub(a).Cross(c.Sub(a))
		if normal.Len() == 0 {
			continue
		}
		faces = append(faces, Face{A: a, B: b, C: c, Normal: normal.Normalize()})
	}
	return faces
}

// Shade returns the flat Lambert color of a surface with the given normal:
// base * (ambient + sum of directional terms) + emissive. Faces are lit
// from either side.
func Shade(scene *core.Scene, mat *core.Material, normal mgl32.Vec3) core.Color {
	if mat == nil {
		return core.Black
	}
	light := scene.AmbientLight()
	for _, l := range scene.Lights {
		if l.Kind != core.LightDirectional {
			continue
		}
		d := normal.Dot(l.ToLight())
		if d < 0 {
			d = -d
		}
		light = light.Add(l.Color.Scale(d * l.Intensity))
	}
	return mat.Color.Modulate(light).Add(mat.EmissiveColor())
}
