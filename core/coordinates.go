package core

import (
	"github.com/chewxy/math32"
)

// Polar represents a position on the XZ plane in polar form
// Theta is measured from +X towards +Z
type Polar struct {
	Radius float32
	Theta  float32 // radians
}

// DegreesToRadians converts degrees to radians
func DegreesToRadians(degrees float32) float32 {
	return degrees * math32.Pi / 180.0
}

// RadiansToDegrees converts radians to degrees
func RadiansToDegrees(radians float32) float32 {
	return radians * 180.0 / math32.Pi
}

// CartesianToPolar converts a point on the XZ plane to polar coordinates
func CartesianToPolar(x, z float32) Polar {
	return Polar{
		Radius: math32.Sqrt(x*x + z*z),
		Theta:  math32.Atan2(z, x),
	}
}

// PolarToCartesian converts polar coordinates back to an (x, z) pair
func PolarToCartesian(p Polar) (x, z float32) {
	return p.Radius * math32.Cos(p.Theta), p.Radius * math32.Sin(p.Theta)
}

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp interpolates linearly between a and b
func Lerp(a, b, t float32) float32 {
	return a*(1-t) + b*t
}

// ScreenToNDC maps a pixel position inside a width x height surface to
// normalized device coordinates. Y is flipped so +1 is the top edge.
// Out-of-surface positions are clamped to the [-1, 1] square.
func ScreenToNDC(px, py, width, height float32) (x, y float32) {
	if width <= 0 || height <= 0 {
		return 0, 0
	}
	x = (2.0*px)/width - 1.0
	y = 1.0 - (2.0*py)/height // Flip Y
	return Clamp(x, -1, 1), Clamp(y, -1, 1)
}

// NDCToScreen is the inverse of ScreenToNDC for points inside the surface
func NDCToScreen(x, y, width, height float32) (px, py float32) {
	return (x + 1.0) * 0.5 * width, (1.0 - y) * 0.5 * height
}
