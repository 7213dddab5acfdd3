package radialmath

import "math"

// CircleMaxError is the largest allowed distance, in pixels, between a chord
// of a generated circle and the ideal circle.
const CircleMaxError = 0.1

// CirclePoint returns the point at radius and angle in screen space (y down),
// with angle 0 at the top and angles increasing clockwise.
func CirclePoint(radius, angle float64) (x, y float64) {
	return radius * math.Sin(angle), -radius * math.Cos(angle)
}

// OptimalVertexCount returns how many segments a circle of the given radius
// needs to keep chord error under CircleMaxError.
func OptimalVertexCount(radius float64) int {
	if radius <= CircleMaxError {
		// Too small for the tolerance to matter; a triangle is enough.
		return 3
	}
	optimalAngle := math.Acos(1 - CircleMaxError/radius)
	count := int(math.Ceil(TwoPi / optimalAngle))
	if count < 3 {
		return 3
	}
	return count
}

// Lerp linearly interpolates between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
