// SPDX-License-Identifier: GPL-2.0-or-later

package math

import (
	"github.com/chewxy/math32"
)

// DegToRad converts degrees to radians
func DegToRad(d float32) float32 {
	return d * (Pi / 180)
}

// RadToDeg converts radians to degrees
func RadToDeg(r float32) float32 {
	return r * (180 / Pi)
}

// AngleClamp wraps a radian angle into [-Pi, Pi]
func AngleClamp(a float32) float32 {
	if a >= -Pi && a <= Pi {
		return a
	}
	a = math32.Mod(a+Pi, 2*Pi)
	if a < 0 {
		a += 2 * Pi
	}
	return a - Pi
}

// AngleDiff returns the signed shortest rotation from a1 to a2 in radians,
// within [-Pi, Pi].
func AngleDiff(a1, a2 float32) float32 {
	return AngleClamp(AngleClamp(a2) - AngleClamp(a1))
}

// VectorToAngle returns the yaw of the horizontal part of the direction
// (x, z). A yaw of 0 looks down +Z, Pi/2 down +X.
func VectorToAngle(x, z float32) float32 {
	return math32.Atan2(x, z)
}
