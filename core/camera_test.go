package core

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestCameraCenterRay(t *testing.T) {
	cam := NewPerspectiveCamera(60, 1, 0.1, 1000)
	ray := cam.Ray(0, 0)

	if ray.Origin != cam.Position {
		t.Errorf("ray origin = %v, want camera position %v", ray.Origin, cam.Position)
	}
	want := mgl32.Vec3{-1, -1, -1}.Normalize()
	if !vecApprox(ray.Direction, want, 1e-4) {
		t.Errorf("direction = %v, want %v", ray.Direction, want)
	}
}

func TestCameraProjectRoundTrip(t *testing.T) {
	cam := NewPerspectiveCamera(60, 16.0/9.0, 0.1, 1000)
	points := []mgl32.Vec3{
		{0, 0, 0},
		{1, 0.5, -0.5},
		{-2, 1.8, 0.5},
	}

	for _, p := range points {
		ndc, ok := cam.Project(p)
		if !ok {
			t.Fatalf("%v is in front of the camera", p)
		}
		ray := cam.Ray(ndc[0], ndc[1])
		// Closest approach of the ray to p
		toP := p.Sub(ray.Origin)
		closest := ray.At(toP.Dot(ray.Direction))
		if d := closest.Sub(p).Len(); d > 1e-3 {
			t.Errorf("ray through projection of %v misses by %v", p, d)
		}
	}

	if _, ok := cam.Project(mgl32.Vec3{10, 10, 10}); ok {
		t.Error("point behind the camera must not project")
	}
}

func TestCameraWithAspect(t *testing.T) {
	cam := NewPerspectiveCamera(60, 1, 0.1, 1000)
	wide := cam.WithAspect(1600, 800)
	if wide.Aspect != 2 || cam.Aspect != 1 {
		t.Errorf("WithAspect changed the wrong camera: %v %v", wide.Aspect, cam.Aspect)
	}
	if same := cam.WithAspect(0, 800); same.Aspect != 1 {
		t.Error("degenerate size must keep aspect")
	}
}

func TestWorldToScreenCenter(t *testing.T) {
	cam := NewPerspectiveCamera(60, 800.0/600.0, 0.1, 1000)
	x, y, ok := cam.WorldToScreen(mgl32.Vec3{}, 800, 600)
	if !ok || !approx(x, 400, 1e-2) || !approx(y, 300, 1e-2) {
		t.Errorf("WorldToScreen(origin) = %v, %v, %v", x, y, ok)
	}
}
