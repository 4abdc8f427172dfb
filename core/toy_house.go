package core

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	sphereSegments = 24
	sphereRings    = 16
	capsuleCaps    = 4
	capsuleRadial  = 8
)

// ToyHouseOptions controls the decorative parts of the toy house scene
type ToyHouseOptions struct {
	StarCount  int
	StarExtent float32
	StarSeed   uint64
	Background Color
}

// DefaultToyHouseOptions matches the original viewer
func DefaultToyHouseOptions() ToyHouseOptions {
	return ToyHouseOptions{
		StarCount:  5000,
		StarExtent: 200,
		StarSeed:   1,
		Background: Black,
	}
}

// BuildToyHouse creates the toy house product (house, doll, teddy bear),
// the ground plane, the lights and the star field, and indexes the scene.
// Every mesh node owns its material so highlighting one part never bleeds
// into another.
func BuildToyHouse(opts ToyHouseOptions) *Scene {
	s := NewScene()
	s.Background = opts.Background

	product := NewGroup("")
	product.Add(buildHouse()...)
	product.Add(buildDoll(), buildTeddyBear())
	product.Traverse(func(n *Node) bool {
		if n.Mesh != nil {
			n.CastShadow = true
			n.ReceiveShadow = true
		}
		return true
	})
	s.Root.Add(product)

	// Ground plane for shadows; intentionally unnamed
	ground := NewMeshNode("", NewPlaneMesh(20, 20), NewStandardMaterial(0xaafeed, 1, 0))
	ground.Rotation = mgl32.Vec3{-math32.Pi / 2, 0, 0}
	ground.ReceiveShadow = true
	s.Root.Add(ground)

	sun := NewDirectionalLight(0xaaedba, 0.8, mgl32.Vec3{5, 10, 7.5})
	sun.CastShadow = true
	sun.ShadowMapSize = 1024
	sun.ShadowNear = 0.5
	sun.ShadowFar = 20
	s.Lights = []Light{NewAmbientLight(0xaaaeea, 0.4), sun}

	if opts.StarCount > 0 {
		s.Stars = NewStarField(opts.StarCount, opts.StarExtent, opts.StarSeed)
	}

	s.Index()
	return s
}

func part(name string, mesh *Mesh, mat *Material, x, y, z float32) *Node {
	n := NewMeshNode(name, mesh, mat.Clone())
	n.Position = mgl32.Vec3{x, y, z}
	return n
}

func buildHouse() []*Node {
	house := NewStandardMaterial(0xd2b48c, 0.7, 0.1)
	roofMat := NewStandardMaterial(0xa52a2a, 0.5, 0.1)
	window := NewStandardMaterial(0x87ceeb, 0.1, 0.1)
	doorMat := NewStandardMaterial(0x5c4033, 0.6, 0.1)

	body := part("Toy House Body", NewBoxMesh(4, 3, 4), house, 0, 1.5, 0)

	// Four-sided cone, turned so its faces line up with the walls
	roof := part("Toy House Roof", NewConeMesh(3, 1.5, 4), roofMat, 0, 3+0.75, 0)
	roof.Rotation = mgl32.Vec3{0, math32.Pi / 4, 0}

	chimney := part("Toy House Chimney", NewBoxMesh(0.5, 1, 0.5), roofMat, 1.5, 3+0.5, -1.5)
	door := part("Toy House Door", NewBoxMesh(0.8, 1.5, 0.1), doorMat, 0, 0.75, 2.05)

	const windowSize, windowThickness = 0.8, 0.1
	front := part("Toy House Front Window", NewBoxMesh(windowSize, windowSize, windowThickness), window, 1.2, 1.8, 2.05)
	left := part("Toy House Left Window", NewBoxMesh(windowThickness, windowSize, windowSize), window, -2.05, 1.8, 0.5)
	right := part("Toy House Right Window", NewBoxMesh(windowThickness, windowSize, windowSize), window, 2.05, 1.8, 0.5)

	return []*Node{body, roof, chimney, door, front, left, right}
}

func buildDoll() *Node {
	skin := NewStandardMaterial(0xffdbb0, 0.6, 0.1)
	hair := NewStandardMaterial(0xa0522d, 0.4, 0.1)
	dress := NewStandardMaterial(0xff69b4, 0.5, 0.1)

	doll := NewGroup("Doll")
	doll.Position = mgl32.Vec3{0, 0.3, 2.5}

	arm := NewCapsuleMesh(0.08, 0.4, capsuleCaps, capsuleRadial)
	leg := NewCapsuleMesh(0.1, 0.5, capsuleCaps, capsuleRadial)

	leftArm := part("Doll Left Arm", arm, dress, -0.3, 0.4, 0)
	leftArm.Rotation = mgl32.Vec3{0, 0, math32.Pi / 6}
	rightArm := part("Doll Right Arm", arm, dress, 0.3, 0.4, 0)
	rightArm.Rotation = mgl32.Vec3{0, 0, -math32.Pi / 6}

	doll.Add(
		part("Doll Body", NewCylinderMesh(0.2, 0.3, 0.6, 32), dress, 0, 0.3, 0),
		part("Doll Head", NewSphereMesh(0.2, sphereSegments, sphereRings), skin, 0, 0.8, 0),
		part("Doll Hair", NewSphereMesh(0.22, sphereSegments, sphereRings), hair, 0, 0.95, 0),
		leftArm,
		rightArm,
		part("Doll Left Leg", leg, dress, -0.15, -0.05, 0),
		part("Doll Right Leg", leg, dress, 0.15, -0.05, 0),
	)
	return doll
}

func buildTeddyBear() *Node {
	fur := NewStandardMaterial(0xffc0cb, 0.7, 0.1)
	eye := NewStandardMaterial(0x333333, 0.1, 0.1)
	pupil := NewStandardMaterial(0x000000, 1, 0)
	nose := NewStandardMaterial(0x6b4423, 0.4, 0.1)
	mouthMat := NewStandardMaterial(0xff69b4, 1, 0)
	innerEar := NewStandardMaterial(0xf5b7c7, 0.7, 0.1)

	bear := NewGroup("Teddy Bear")
	bear.Position = mgl32.Vec3{0, 0.5, 0}

	eyeMesh := NewSphereMesh(0.05, 16, 12)
	pupilMesh := NewSphereMesh(0.02, 16, 12)
	earMesh := NewSphereMesh(0.1, sphereSegments, sphereRings)
	innerEarMesh := NewSphereMesh(0.05, 16, 12)
	armMesh := NewCapsuleMesh(0.15, 0.5, capsuleCaps, capsuleRadial)
	legMesh := NewCapsuleMesh(0.18, 0.6, capsuleCaps, capsuleRadial)

	mouth := part("Teddy Bear Mouth", NewCylinderMesh(0.01, 0.01, 0.15, 32), mouthMat, 0, 0.95, 0.35)
	mouth.Rotation = mgl32.Vec3{math32.Pi / 2, 0, 0}

	leftArm := part("Teddy Bear Left Arm", armMesh, fur, -0.6, 0.7, 0)
	leftArm.Rotation = mgl32.Vec3{0, 0, math32.Pi / 4}
	rightArm := part("Teddy Bear Right Arm", armMesh, fur, 0.6, 0.7, 0)
	rightArm.Rotation = mgl32.Vec3{0, 0, -math32.Pi / 4}

	bear.Add(
		part("Teddy Bear Body", NewSphereMesh(0.5, sphereSegments, sphereRings), fur, 0, 0.5, 0),
		part("Teddy Bear Head", NewSphereMesh(0.35, sphereSegments, sphereRings), fur, 0, 1.1, 0),
		part("Teddy Bear Left Eye", eyeMesh, eye, -0.12, 1.25, 0.3),
		part("Teddy Bear Right Eye", eyeMesh, eye, 0.12, 1.25, 0.3),
		part("Teddy Bear Left Pupil", pupilMesh, pupil, -0.12, 1.25, 0.35),
		part("Teddy Bear Right Pupil", pupilMesh, pupil, 0.12, 1.25, 0.35),
		part("Teddy Bear Nose", NewSphereMesh(0.07, sphereSegments, sphereRings), nose, 0, 1.05, 0.37),
		mouth,
		part("Teddy Bear Left Ear", earMesh, fur, -0.25, 1.35, 0),
		part("Teddy Bear Right Ear", earMesh, fur, 0.25, 1.35, 0),
		part("Teddy Bear Left Inner Ear", innerEarMesh, innerEar, -0.25, 1.35, 0.05),
		part("Teddy Bear Right Inner Ear", innerEarMesh, innerEar, 0.25, 1.35, 0.05),
		leftArm,
		rightArm,
		part("Teddy Bear Left Leg", legMesh, fur, -0.3, 0.1, 0.1),
		part("Teddy Bear Right Leg", legMesh, fur, 0.3, 0.1, 0.1),
	)
	return bear
}
