// SPDX-License-Identifier: GPL-2.0-or-later

package vec

import (
	"github.com/chewxy/math32"

	"kextrace/math"
)

// Vec3 is a point or direction in world space. Y points up, the
// horizontal plane is X/Z.
type Vec3 struct {
	X, Y, Z float32
}

// Length returns the length of the vector
func (v Vec3) Length() float32 {
	return math32.Sqrt(Dot(v, v))
}

// Length2D returns the length of the vector projected onto X/Z
func (v Vec3) Length2D() float32 {
	return math32.Sqrt(Dot2D(v, v))
}

// Flat returns the vector with its vertical component zeroed
func (v Vec3) Flat() Vec3 {
	return Vec3{v.X, 0, v.Z}
}

// Add returns a + b
func Add(a, b Vec3) Vec3 {
	return Vec3{
		X: a.X + b.X,
		Y: a.Y + b.Y,
		Z: a.Z + b.Z,
	}
}

// Sub returns a - b
func Sub(a, b Vec3) Vec3 {
	return Vec3{
		X: a.X - b.X,
		Y: a.Y - b.Y,
		Z: a.Z - b.Z,
	}
}

// Scale returns the vector multiplied by the skalar s
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{
		X: v.X * s,
		Y: v.Y * s,
		Z: v.Z * s,
	}
}

// Normalize returns the normalized vector
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

// Dot returns a dot b
func Dot(a Vec3, b Vec3) float32 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Dot2D returns a dot b on the horizontal plane
func Dot2D(a Vec3, b Vec3) float32 {
	return a.X*b.X + a.Z*b.Z
}

// Cross returns a cross b
func Cross(a, b Vec3) Vec3 {
	return Vec3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// Lerp computes a weighted average between two points
func Lerp(a, b Vec3, frac float32) Vec3 {
	return Vec3{
		math.Lerp(a.X, b.X, frac),
		math.Lerp(a.Y, b.Y, frac),
		math.Lerp(a.Z, b.Z, frac),
	}
}

// Distance returns the length of a - b
func Distance(a, b Vec3) float32 {
	return Sub(a, b).Length()
}

// Equal returns a == b
func Equal(a Vec3, b Vec3) bool {
	return a.X == b.X && a.Y == b.Y && a.Z == b.Z
}
