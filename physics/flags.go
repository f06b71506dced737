// SPDX-License-Identifier: GPL-2.0-or-later

// Package physics holds the movement and clipping flags shared by actors
// and traces.
package physics

import (
	"strings"
)

type Flags uint32

const (
	ClipStatics   Flags = 1 << iota // clip against grid-bucketed static actors
	ClipActors                      // clip against dynamic actors
	TouchActors                     // fire touch events on touch-only actors
	SlideMove                       // continuous movement, not a straight query
	ClimbSurfaces                   // may latch onto climbable walls
	NoExitWater                     // may not leave a water area
	NoEnterWater                    // may not enter a water area
	AllowDropoff                    // may step off ledges higher than a step

	None Flags = 0
)

var flagNames = []struct {
	f    Flags
	name string
}{
	{ClipStatics, "ClipStatics"},
	{ClipActors, "ClipActors"},
	{TouchActors, "TouchActors"},
	{SlideMove, "SlideMove"},
	{ClimbSurfaces, "ClimbSurfaces"},
	{NoExitWater, "NoExitWater"},
	{NoEnterWater, "NoEnterWater"},
	{AllowDropoff, "AllowDropoff"},
}

// Has reports whether all bits of o are set.
func (f Flags) Has(o Flags) bool {
	return f&o == o
}

// Any reports whether at least one bit of o is set.
func (f Flags) Any(o Flags) bool {
	return f&o != 0
}

func (f Flags) String() string {
	if f == None {
		return "None"
	}
	var parts []string
	for _, n := range flagNames {
		if f&n.f != 0 {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}
