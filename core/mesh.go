package core

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// ShapeKind names the generator a mesh came from
type ShapeKind string

const (
	ShapeBox      ShapeKind = "box"
	ShapeSphere   ShapeKind = "sphere"
	ShapeCylinder ShapeKind = "cylinder"
	ShapeCone     ShapeKind = "cone"
	ShapeCapsule  ShapeKind = "capsule"
	ShapePlane    ShapeKind = "plane"
)

// Mesh is an indexed triangle list in local space with its bounding box
type Mesh struct {
	Kind      ShapeKind
	Positions []mgl32.Vec3
	Indices   []uint32
	Min, Max  mgl32.Vec3
}

// TriangleCount returns the number of triangles
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Triangle returns the corners of triangle i
func (m *Mesh) Triangle(i int) (a, b, c mgl32.Vec3) {
	return m.Positions[m.Indices[3*i]], m.Positions[m.Indices[3*i+1]], m.Positions[m.Indices[3*i+2]]
}

// Center returns the midpoint of the bounding box
func (m *Mesh) Center() mgl32.Vec3 {
	return m.Min.Add(m.Max).Mul(0.5)
}

func (m *Mesh) computeBounds() {
	if len(m.Positions) == 0 {
		m.Min, m.Max = mgl32.Vec3{}, mgl32.Vec3{}
		return
	}
	m.Min, m.Max = m.Positions[0], m.Positions[0]
	for _, p := range m.Positions[1:] {
		for k := 0; k < 3; k++ {
			if p[k] < m.Min[k] {
				m.Min[k] = p[k]
			}
			if p[k] > m.Max[k] {
				m.Max[k] = p[k]
			}
		}
	}
}

// NewBoxMesh creates a box centered on the origin
func NewBoxMesh(width, height, depth float32) *Mesh {
	x, y, z := width/2, height/2, depth/2
	m := &Mesh{
		Kind: ShapeBox,
		Positions: []mgl32.Vec3{
			{-x, -y, -z}, {x, -y, -z}, {x, y, -z}, {-x, y, -z},
			{-x, -y, z}, {x, -y, z}, {x, y, z}, {-x, y, z},
		},
		Indices: []uint32{
			4, 5, 6, 4, 6, 7, // +Z
			1, 0, 3, 1, 3, 2, // -Z
			5, 1, 2, 5, 2, 6, // +X
			0, 4, 7, 0, 7, 3, // -X
			7, 6, 2, 7, 2, 3, // +Y
			0, 1, 5, 0, 5, 4, // -Y
		},
	}
	m.computeBounds()
	return m
}

// NewPlaneMesh creates a single quad on the XY plane facing +Z
func NewPlaneMesh(width, height float32) *Mesh {
	x, y := width/2, height/2
	m := &Mesh{
		Kind:      ShapePlane,
		Positions: []mgl32.Vec3{{-x, -y, 0}, {x, -y, 0}, {x, y, 0}, {-x, y, 0}},
		Indices:   []uint32{0, 1, 2, 0, 2, 3},
	}
	m.computeBounds()
	return m
}

// NewSphereMesh creates a UV sphere
func NewSphereMesh(radius float32, segments, rings int) *Mesh {
	rings = max(rings, 2)
	profile := make([]mgl32.Vec2, 0, rings+1)
	for ring := 0; ring <= rings; ring++ {
		theta := float32(ring) * math32.Pi / float32(rings)
		profile = append(profile, mgl32.Vec2{radius * math32.Sin(theta), -radius * math32.Cos(theta)})
	}
	m := lathe(profile, segments)
	m.Kind = ShapeSphere
	return m
}

// NewCylinderMesh creates a capped, possibly tapered cylinder along Y
func NewCylinderMesh(radiusTop, radiusBottom, height float32, radialSegments int) *Mesh {
	h := height / 2
	profile := []mgl32.Vec2{{0, -h}, {radiusBottom, -h}, {radiusTop, h}, {0, h}}
	m := lathe(profile, radialSegments)
	m.Kind = ShapeCylinder
	return m
}

// NewConeMesh creates a cone; 4 radial segments give a square pyramid
func NewConeMesh(radius, height float32, radialSegments int) *Mesh {
	m := NewCylinderMesh(0, radius, height, radialSegments)
	m.Kind = ShapeCone
	return m
}

// NewCapsuleMesh creates a capsule whose straight section is length long;
// total height is length + 2*radius
func NewCapsuleMesh(radius, length float32, capSegments, radialSegments int) *Mesh {
	capSegments = max(capSegments, 1)
	h := length / 2
	profile := make([]mgl32.Vec2, 0, 2*capSegments+2)
	for i := 0; i <= capSegments; i++ {
		a := -math32.Pi/2 + float32(i)*(math32.Pi/2)/float32(capSegments)
		profile = append(profile, mgl32.Vec2{radius * math32.Cos(a), -h + radius*math32.Sin(a)})
	}
	for i := 0; i <= capSegments; i++ {
		a := float32(i) * (math32.Pi / 2) / float32(capSegments)
		profile = append(profile, mgl32.Vec2{radius * math32.Cos(a), h + radius*math32.Sin(a)})
	}
	m := lathe(profile, radialSegments)
	m.Kind = ShapeCapsule
	return m
}

// lathe revolves a (radius, y) profile around the Y axis.
// Vertex placement follows x = r*sin(phi), z = r*cos(phi) so a 4-segment
// lathe has its corners on the axes.
func lathe(profile []mgl32.Vec2, segments int) *Mesh {
	segments = max(segments, 3)
	m := &Mesh{}
	for _, p := range profile {
		for seg := 0; seg <= segments; seg++ {
			phi := float32(seg) * 2.0 * math32.Pi / float32(segments)
			m.Positions = append(m.Positions, mgl32.Vec3{p[0] * math32.Sin(phi), p[1], p[0] * math32.Cos(phi)})
		}
	}
	for ring := 0; ring < len(profile)-1; ring++ {
		for seg := 0; seg < segments; seg++ {
			current := uint32(ring*(segments+1) + seg)
			next := current + uint32(segments) + 1

			m.Indices = append(m.Indices, current, current+1, next)
			m.Indices = append(m.Indices, current+1, next+1, next)
		}
	}
	m.computeBounds()
	return m
}
