package core

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// triangleEpsilon rejects rays (nearly) parallel to a triangle
const triangleEpsilon = 1e-7

// Ray is a half-line; Direction is normalized for world-space rays
type Ray struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3
}

// At returns Origin + t*Direction
func (r Ray) At(t float32) mgl32.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// Transform maps the ray through m. The direction is not renormalized so
// parameters along the transformed ray match the original ray.
func (r Ray) Transform(m mgl32.Mat4) Ray {
	return Ray{
		Origin:    mgl32.TransformCoordinate(r.Origin, m),
		Direction: mgl32.TransformNormal(r.Direction, m),
	}
}

// IntersectAABB tests the ray against an axis-aligned box (slab method).
// Returns the entry distance, or the exit distance when starting inside.
func (r Ray) IntersectAABB(minB, maxB mgl32.Vec3) (float32, bool) {
	tmin := float32(-math32.MaxFloat32)
	tmax := float32(math32.MaxFloat32)

	for axis := 0; axis < 3; axis++ {
		o, d := r.Origin[axis], r.Direction[axis]
		if d == 0 {
			if o < minB[axis] || o > maxB[axis] {
				return 0, false
			}
			continue
		}
		t1 := (minB[axis] - o) / d
		t2 := (maxB[axis] - o) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = max(tmin, t1)
		tmax = min(tmax, t2)
	}

	if tmax < tmin || tmax < 0 {
		return 0, false
	}
	if tmin < 0 {
		return tmax, true
	}
	return tmin, true
}

// IntersectTriangle is a double-sided Möller–Trumbore test.
// Only hits in front of the origin (t > 0) count.
func (r Ray) IntersectTriangle(a, b, c mgl32.Vec3) (float32, bool) {
	edge1 := b.Sub(a)
	edge2 := c.Sub(a)
	p := r.Direction.Cross(edge2)
	det := edge1.Dot(p)
	if math32.Abs(det) < triangleEpsilon {
		return 0, false
	}
	inv := 1 / det

	s := r.Origin.Sub(a)
	u := s.Dot(p) * inv
	if u < 0 || u > 1 {
		return 0, false
	}
	q := s.Cross(edge1)
	v := r.Direction.Dot(q) * inv
	if v < 0 || u+v > 1 {
		return 0, false
	}
	t := edge2.Dot(q) * inv
	if t <= 0 {
		return 0, false
	}
	return t, true
}

// IntersectMesh returns the nearest triangle hit of a local-space ray
func (r Ray) IntersectMesh(m *Mesh) (float32, bool) {
	if m == nil || len(m.Indices) == 0 {
		return 0, false
	}
	if _, ok := r.IntersectAABB(m.Min, m.Max); !ok {
		return 0, false
	}
	best := float32(math32.MaxFloat32)
	hit := false
	for i := 0; i < m.TriangleCount(); i++ {
		a, b, c := m.Triangle(i)
		if t, ok := r.IntersectTriangle(a, b, c); ok && t < best {
			best = t
			hit = true
		}
	}
	return best, hit
}
