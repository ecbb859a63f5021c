package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeZeroVector(t *testing.T) {
	n := Vector2{}.Normalize()
	assert.Equal(t, Vector2{}, n)
	assert.False(t, math.IsNaN(n.X))
}

func TestNormalizeUnitLength(t *testing.T) {
	n := Vec(3, 4).Normalize()
	assert.InDelta(t, 1.0, n.Len(), 1e-9)
	assert.InDelta(t, 0.6, n.X, 1e-9)
	assert.InDelta(t, 0.8, n.Y, 1e-9)
}

func TestReflect(t *testing.T) {
	tests := []struct {
		name   string
		v, n   Vector2
		expect Vector2
	}{
		{"floor", Vec(3, 5), Vec(0, -1), Vec(3, -5)},
		{"wall", Vec(-2, 1), Vec(1, 0), Vec(2, 1)},
		{"parallel", Vec(0, 4), Vec(1, 0), Vec(0, 4)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.v.Reflect(tt.n)
			assert.InDelta(t, tt.expect.X, got.X, 1e-9)
			assert.InDelta(t, tt.expect.Y, got.Y, 1e-9)
		})
	}
}

func TestCircleCircleIsStrict(t *testing.T) {
	assert.True(t, CircleCircle(Vec(0, 0), 5, Vec(9, 0), 5))
	assert.False(t, CircleCircle(Vec(0, 0), 5, Vec(10, 0), 5))
}

func TestCircleRect(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 20, H: 10}
	assert.True(t, CircleRect(Vec(20, 15), 1, r), "centre inside")
	assert.True(t, CircleRect(Vec(5, 15), 6, r), "touching from the left")
	assert.False(t, CircleRect(Vec(5, 15), 5, r), "exactly tangent")
	assert.False(t, CircleRect(Vec(40, 40), 5, r))
}

func TestRectRect(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	assert.True(t, RectRect(a, Rect{X: 5, Y: 5, W: 10, H: 10}))
	assert.False(t, RectRect(a, Rect{X: 10, Y: 0, W: 5, H: 5}))
}

func TestClampAndSign(t *testing.T) {
	assert.Equal(t, 5.0, Clamp(10, 0, 5))
	assert.Equal(t, 0.0, Clamp(-1, 0, 5))
	assert.Equal(t, 3.0, Clamp(3, 0, 5))
	assert.Equal(t, -1.0, Sign(-0.1))
	assert.Equal(t, 0.0, Sign(0))
	assert.Equal(t, 1.0, Sign(7))
	assert.Equal(t, 2.5, Abs(-2.5))
}

func TestAngleHelpers(t *testing.T) {
	a := AngleBetween(Vec(0, 0), Vec(0, 10))
	assert.InDelta(t, math.Pi/2, a, 1e-9)
	v := FromAngle(a, 2)
	assert.InDelta(t, 0, v.X, 1e-9)
	assert.InDelta(t, 2, v.Y, 1e-9)
	assert.InDelta(t, 5, Distance(Vec(1, 1), Vec(4, 5)), 1e-9)
}
