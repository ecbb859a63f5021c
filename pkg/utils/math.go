// pkg/utils/math.go
package utils

import "math"

// Abs returns the absolute value of x.
func Abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// Sign returns -1, 0 or 1 depending on the sign of x.
func Sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

// Clamp limits value to the [min, max] range.
func Clamp(value, min, max float64) float64 {
	return math.Max(min, math.Min(max, value))
}

// Vector2 is a point or a direction on the playfield, in pixels.
type Vector2 struct {
	X, Y float64
}

// Vec is a shorthand constructor.
func Vec(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vector2) Scale(s float64) Vector2 {
	return Vector2{X: v.X * s, Y: v.Y * s}
}

func (v Vector2) Dot(o Vector2) float64 {
	return v.X*o.X + v.Y*o.Y
}

func (v Vector2) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalize returns the unit vector of v. A zero vector stays zero.
func (v Vector2) Normalize() Vector2 {
	l := v.Len()
	if l == 0 {
		return Vector2{}
	}
	return Vector2{X: v.X / l, Y: v.Y / l}
}

// Reflect mirrors v about a unit normal: v - 2(v·n)n.
func (v Vector2) Reflect(normal Vector2) Vector2 {
	d := v.Dot(normal)
	return Vector2{X: v.X - 2*d*normal.X, Y: v.Y - 2*d*normal.Y}
}

// IsZero reports whether both components are zero.
func (v Vector2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Distance returns the euclidean distance between a and b.
func Distance(a, b Vector2) float64 {
	return b.Sub(a).Len()
}

// AngleBetween returns the angle of the direction from -> to, in radians.
func AngleBetween(from, to Vector2) float64 {
	return math.Atan2(to.Y-from.Y, to.X-from.X)
}

// FromAngle builds a vector of the given length pointing at angle.
func FromAngle(angle, length float64) Vector2 {
	return Vector2{X: math.Cos(angle) * length, Y: math.Sin(angle) * length}
}

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Vector2) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}

// CircleCircle reports a strict overlap of two circles.
func CircleCircle(p1 Vector2, r1 float64, p2 Vector2, r2 float64) bool {
	return Distance(p1, p2) < r1+r2
}

// CircleRect reports a strict overlap between a circle and a rectangle.
func CircleRect(p Vector2, radius float64, r Rect) bool {
	closestX := Clamp(p.X, r.X, r.X+r.W)
	closestY := Clamp(p.Y, r.Y, r.Y+r.H)
	dx := p.X - closestX
	dy := p.Y - closestY
	return dx*dx+dy*dy < radius*radius
}

// RectRect reports whether two rectangles overlap.
func RectRect(a, b Rect) bool {
	return a.X < b.X+b.W && a.X+a.W > b.X && a.Y < b.Y+b.H && a.Y+a.H > b.Y
}
