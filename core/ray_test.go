package core

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestRayIntersectAABB(t *testing.T) {
	minB, maxB := mgl32.Vec3{-1, -1, -1}, mgl32.Vec3{1, 1, 1}

	tests := []struct {
		name  string
		ray   Ray
		hit   bool
		wantT float32
	}{
		{
			name:  "Straight on",
			ray:   Ray{Origin: mgl32.Vec3{0, 0, 5}, Direction: mgl32.Vec3{0, 0, -1}},
			hit:   true,
			wantT: 4,
		},
		{
			name: "Pointing away",
			ray:  Ray{Origin: mgl32.Vec3{0, 0, 5}, Direction: mgl32.Vec3{0, 0, 1}},
			hit:  false,
		},
		{
			name: "Parallel outside slab",
			ray:  Ray{Origin: mgl32.Vec3{2, 0, 5}, Direction: mgl32.Vec3{0, 0, -1}},
			hit:  false,
		},
		{
			name:  "Starting inside",
			ray:   Ray{Origin: mgl32.Vec3{0, 0, 0}, Direction: mgl32.Vec3{1, 0, 0}},
			hit:   true,
			wantT: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.ray.IntersectAABB(minB, maxB)
			if ok != tt.hit {
				t.Fatalf("hit = %v, want %v", ok, tt.hit)
			}
			if ok && !approx(got, tt.wantT, 1e-5) {
				t.Errorf("t = %v, want %v", got, tt.wantT)
			}
		})
	}
}

func TestRayIntersectTriangleDoubleSided(t *testing.T) {
	a, b, c := mgl32.Vec3{-1, -1, 0}, mgl32.Vec3{1, -1, 0}, mgl32.Vec3{0, 1, 0}

	front := Ray{Origin: mgl32.Vec3{0, 0, 3}, Direction: mgl32.Vec3{0, 0, -1}}
	back := Ray{Origin: mgl32.Vec3{0, 0, -3}, Direction: mgl32.Vec3{0, 0, 1}}
	miss := Ray{Origin: mgl32.Vec3{2, 2, 3}, Direction: mgl32.Vec3{0, 0, -1}}
	edgeOn := Ray{Origin: mgl32.Vec3{-5, 0, 0}, Direction: mgl32.Vec3{1, 0, 0}}

	if got, ok := front.IntersectTriangle(a, b, c); !ok || !approx(got, 3, 1e-5) {
		t.Errorf("front face: t=%v ok=%v", got, ok)
	}
	if got, ok := back.IntersectTriangle(a, b, c); !ok || !approx(got, 3, 1e-5) {
		t.Errorf("back face: t=%v ok=%v", got, ok)
	}
	if _, ok := miss.IntersectTriangle(a, b, c); ok {
		t.Error("expected miss outside triangle")
	}
	if _, ok := edgeOn.IntersectTriangle(a, b, c); ok {
		t.Error("expected miss for ray parallel to triangle")
	}
}

func TestRayIntersectMeshNearest(t *testing.T) {
	box := NewBoxMesh(2, 2, 2)
	ray := Ray{Origin: mgl32.Vec3{0, 0, 10}, Direction: mgl32.Vec3{0, 0, -1}}

	got, ok := ray.IntersectMesh(box)
	if !ok {
		t.Fatal("expected hit on box")
	}
	// Front face at z=1, not the back face at z=-1
	if !approx(got, 9, 1e-5) {
		t.Errorf("t = %v, want 9", got)
	}

	if _, ok := ray.IntersectMesh(nil); ok {
		t.Error("nil mesh must not hit")
	}
}

func TestRayTransformKeepsParameter(t *testing.T) {
	ray := Ray{Origin: mgl32.Vec3{0, 0, 10}, Direction: mgl32.Vec3{0, 0, -1}}
	// World scale 2 around a unit box: inverse maps to half-size units
	world := mgl32.Scale3D(2, 2, 2)
	local := ray.Transform(world.Inv())

	got, ok := local.IntersectMesh(NewBoxMesh(1, 1, 1))
	if !ok {
		t.Fatal("expected hit")
	}
	// Scaled box front face sits at z=1 in world space
	if !approx(got, 9, 1e-4) {
		t.Errorf("t = %v, want 9 in world units", got)
	}
}
