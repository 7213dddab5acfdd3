package radialmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptimalVertexCountKeepsChordErrorBounded(t *testing.T) {
	for _, radius := range []float64{5, 24, 100, 300, 1200} {
		n := OptimalVertexCount(radius)
		step := TwoPi / float64(n)
		// Sagitta of one chord.
		chordError := radius * (1 - math.Cos(step/2))
		assert.LessOrEqual(t, chordError, CircleMaxError, "radius=%v", radius)
		assert.Equal(t, int(math.Ceil(TwoPi/math.Acos(1-CircleMaxError/radius))), n)
	}
}

func TestOptimalVertexCountGrowsWithRadius(t *testing.T) {
	assert.Less(t, OptimalVertexCount(50), OptimalVertexCount(500))
	assert.Equal(t, 3, OptimalVertexCount(0.05))
}

func TestCirclePoint(t *testing.T) {
	x, y := CirclePoint(10, 0)
	assert.InDelta(t, 0, x, 1e-9)
	assert.InDelta(t, -10, y, 1e-9)

	x, y = CirclePoint(10, math.Pi/2)
	assert.InDelta(t, 10, x, 1e-9)
	assert.InDelta(t, 0, y, 1e-9)
}
