package core

import (
	"github.com/go-gl/mathgl/mgl32"
)

// LightKind distinguishes the supported light types
type LightKind string

const (
	LightAmbient     LightKind = "ambient"
	LightDirectional LightKind = "directional"
)

// Light is an ambient or directional light. Directional lights shine from
// Position towards Target.
type Light struct {
	Kind      LightKind
	Color     Color
	Intensity float32

	Position mgl32.Vec3
	Target   mgl32.Vec3

	CastShadow    bool
	ShadowMapSize int
	ShadowNear    float32
	ShadowFar     float32
}

// NewAmbientLight creates an ambient light
func NewAmbientLight(color Color, intensity float32) Light {
	return Light{Kind: LightAmbient, Color: color, Intensity: intensity}
}

// NewDirectionalLight creates a directional light aimed at the origin
func NewDirectionalLight(color Color, intensity float32, position mgl32.Vec3) Light {
	return Light{
		Kind:      LightDirectional,
		Color:     color,
		Intensity: intensity,
		Position:  position,
	}
}

// ToLight returns the normalized direction from a surface towards the light
func (l Light) ToLight() mgl32.Vec3 {
	d := l.Position.Sub(l.Target)
	if d.Len() == 0 {
		return mgl32.Vec3{0, 1, 0}
	}
	return d.Normalize()
}
