package core

import (
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl32"
)

// StarField is a decorative point cloud. It is never pickable.
type StarField struct {
	Positions []mgl32.Vec3
	Color     Color
	Size      float32
}

// NewStarField scatters count points uniformly inside a cube of the given
// edge length centered on the origin. The same seed yields the same field.
func NewStarField(count int, extent float32, seed uint64) *StarField {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	sf := &StarField{
		Positions: make([]mgl32.Vec3, count),
		Color:     White,
		Size:      0.1,
	}
	for i := range sf.Positions {
		sf.Positions[i] = mgl32.Vec3{
			(rng.Float32() - 0.5) * extent,
			(rng.Float32() - 0.5) * extent,
			(rng.Float32() - 0.5) * extent,
		}
	}
	return sf
}
