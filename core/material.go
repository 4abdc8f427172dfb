package core

import (
	"github.com/jinzhu/copier"
)

// Material describes the surface of a mesh node.
// Emissive is nil for materials without an emissive channel; such
// materials cannot carry a glow highlight.
type Material struct {
	Color     Color
	Emissive  *Color
	Roughness float32
	Metalness float32
}

// NewStandardMaterial returns a lit material with an (initially black) emissive channel
func NewStandardMaterial(color Color, roughness, metalness float32) *Material {
	emissive := Black
	return &Material{
		Color:     color,
		Emissive:  &emissive,
		Roughness: roughness,
		Metalness: metalness,
	}
}

// NewBasicMaterial returns an unlit material without an emissive channel
func NewBasicMaterial(color Color) *Material {
	return &Material{Color: color, Roughness: 1}
}

// SupportsEmissive reports whether the material has an emissive channel
func (m *Material) SupportsEmissive() bool {
	return m != nil && m.Emissive != nil
}

// SetEmissive overwrites the emissive channel. No-op when unsupported.
func (m *Material) SetEmissive(c Color) {
	if !m.SupportsEmissive() {
		return
	}
	*m.Emissive = c
}

// EmissiveColor returns the emissive channel or black
func (m *Material) EmissiveColor() Color {
	if !m.SupportsEmissive() {
		return Black
	}
	return *m.Emissive
}

// Clone returns a deep copy; the emissive channel is not shared with m
func (m *Material) Clone() *Material {
	if m == nil {
		return nil
	}
	out := &Material{}
	if err := copier.CopyWithOption(out, m, copier.Option{DeepCopy: true}); err != nil {
		// copier only fails on mismatched kinds, which cannot happen for
		// identical struct types
		panic(err)
	}
	return out
}

// Equal compares every field, dereferencing the emissive channel
func (m *Material) Equal(o *Material) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.Color != o.Color || m.Roughness != o.Roughness || m.Metalness != o.Metalness {
		return false
	}
	if (m.Emissive == nil) != (o.Emissive == nil) {
		return false
	}
	return m.Emissive == nil || *m.Emissive == *o.Emissive
}
