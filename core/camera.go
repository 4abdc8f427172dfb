package core

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Camera is a perspective camera looking from Position at Target.
// FovY is the vertical field of view in degrees.
type Camera struct {
	Position mgl32.Vec3
	Target   mgl32.Vec3
	Up       mgl32.Vec3
	FovY     float32
	Aspect   float32
	Near     float32
	Far      float32
}

// NewPerspectiveCamera returns a camera at (5,5,5) looking at the origin
func NewPerspectiveCamera(fovY, aspect, near, far float32) *Camera {
	return &Camera{
		Position: mgl32.Vec3{5, 5, 5},
		Up:       mgl32.Vec3{0, 1, 0},
		FovY:     fovY,
		Aspect:   aspect,
		Near:     near,
		Far:      far,
	}
}

// WithAspect returns a copy of c using the aspect ratio of a width x height
// surface. Degenerate sizes keep the current aspect.
func (c Camera) WithAspect(width, height float32) Camera {
	if width > 0 && height > 0 {
		c.Aspect = width / height
	}
	return c
}

// View returns the world-to-camera matrix
func (c *Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Target, c.Up)
}

// Projection returns the perspective projection matrix
func (c *Camera) Projection() mgl32.Mat4 {
	aspect := c.Aspect
	if aspect <= 0 {
		aspect = 1
	}
	return mgl32.Perspective(mgl32.DegToRad(c.FovY), aspect, c.Near, c.Far)
}

// ViewProjection returns Projection * View
func (c *Camera) ViewProjection() mgl32.Mat4 {
	return c.Projection().Mul4(c.View())
}

// Ray builds a picking ray through a point in normalized device
// coordinates. The ray starts at the camera so hit distances are measured
// from the eye.
func (c *Camera) Ray(ndcX, ndcY float32) Ray {
	invViewProj := c.ViewProjection().Inv()

	// Near and far points in NDC
	nearPoint := mgl32.Vec4{ndcX, ndcY, -1.0, 1.0}
	farPoint := mgl32.Vec4{ndcX, ndcY, 1.0, 1.0}

	// Transform to world space
	nearWorld := invViewProj.Mul4x1(nearPoint)
	farWorld := invViewProj.Mul4x1(farPoint)

	// Perspective divide
	if nearWorld[3] != 0 {
		nearWorld = nearWorld.Mul(1.0 / nearWorld[3])
	}
	if farWorld[3] != 0 {
		farWorld = farWorld.Mul(1.0 / farWorld[3])
	}

	dir := farWorld.Vec3().Sub(nearWorld.Vec3())
	if dir.Len() == 0 {
		dir = c.Target.Sub(c.Position)
	}
	return Ray{Origin: c.Position, Direction: dir.Normalize()}
}

// Project maps a world point to NDC; ok is false behind the camera
func (c *Camera) Project(p mgl32.Vec3) (ndc mgl32.Vec3, ok bool) {
	clip := c.ViewProjection().Mul4x1(p.Vec4(1))
	if clip[3] <= 0 {
		return mgl32.Vec3{}, false
	}
	return clip.Vec3().Mul(1 / clip[3]), true
}

// WorldToScreen maps a world point to pixel coordinates on a surface
func (c *Camera) WorldToScreen(p mgl32.Vec3, width, height float32) (x, y float32, ok bool) {
	ndc, ok := c.Project(p)
	if !ok {
		return 0, 0, false
	}
	x, y = NDCToScreen(ndc[0], ndc[1], width, height)
	return x, y, true
}
