// SPDX-License-Identifier: GPL-2.0-or-later

package math

import (
	"github.com/chewxy/math32"
)

const (
	Pi = math32.Pi
)

func Abs(x float32) float32 {
	return math32.Abs(x)
}

// Lerp computes a weighted average between two values
func Lerp(a, b, frac float32) float32 {
	return a + (b-a)*frac
}

type Number interface {
	int | int64 | float32 | float64
}

// Clamp limits val to [min, max].
func Clamp[K Number](min, val, max K) K {
	switch {
	case val < min:
		return min
	case val > max:
		return max
	}
	return val
}

// Frac limits a segment fraction to [0, 1].
func Frac(f float32) float32 {
	return Clamp(0, f, 1)
}
