package radialmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStickToAngleDeadZone(t *testing.T) {
	for _, deadZone := range []float64{0, 0.1, 0.2, 0.5, 0.99, 1} {
		for _, angle := range []float64{0, 0.7, math.Pi, 4.1, 5.9} {
			// Exactly on the dead zone boundary and inside it.
			for _, scale := range []float64{0, 0.5, 1} {
				r := deadZone * scale
				v := Vec2{X: r * math.Sin(angle), Y: r * math.Cos(angle)}
				if v.Length() > deadZone {
					continue
				}
				_, ok := StickToAngle(v, deadZone)
				assert.False(t, ok, "deadZone=%v angle=%v scale=%v", deadZone, angle, scale)
			}
		}
	}
}

func TestStickToAngleDirections(t *testing.T) {
	tests := []struct {
		name string
		v    Vec2
		want float64
	}{
		{"up", Vec2{0, 1}, 0},
		{"right", Vec2{1, 0}, math.Pi / 2},
		{"down", Vec2{0, -1}, math.Pi},
		{"left", Vec2{-1, 0}, 3 * math.Pi / 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := StickToAngle(tt.v, 0.2)
			assert.True(t, ok)
			assert.InDelta(t, tt.want, got, 1e-9)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.Less(t, got, TwoPi)
		})
	}
}

func TestStickFromAxesFlipsVertical(t *testing.T) {
	// Screen-space "up" on a gamepad is a negative vertical axis value.
	angle, ok := StickToAngle(StickFromAxes(0, -1), 0.2)
	assert.True(t, ok)
	assert.InDelta(t, 0, angle, 1e-9)
}

func TestAngleToIndex(t *testing.T) {
	tests := []struct {
		name  string
		angle float64
		count int
		want  int
	}{
		{"no items", 1.0, 0, -1},
		{"single item", 3.0, 1, 0},
		{"top of eight", 0, 8, 0},
		{"wraps just before full turn", TwoPi - 1e-4, 8, 0},
		{"rounds to nearest", TwoPi / 8 * 0.6, 8, 1},
		{"stays below half slice", TwoPi / 8 * 0.4, 8, 0},
		{"bottom of twelve", math.Pi, 12, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AngleToIndex(tt.angle, tt.count))
		})
	}
}

func TestNormalizeAngle(t *testing.T) {
	assert.InDelta(t, math.Pi, NormalizeAngle(-math.Pi), 1e-9)
	assert.InDelta(t, 0, NormalizeAngle(TwoPi), 1e-9)
	assert.InDelta(t, 1, NormalizeAngle(1), 1e-9)
}
