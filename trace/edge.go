// SPDX-License-Identifier: GPL-2.0-or-later

package trace

import (
	"kextrace/level"
	"kextrace/math"
	"kextrace/math/vec"
)

// crossEdge is a 2D line-line test of the segment start->end against the
// edge v1->v2. Only crossings leaving the triangle through the edge count.
// The result d is relative to end: -1 at start, 0 at end. A crossing is
// reported only when d < best.
func crossEdge(start, end, v1, v2 vec.Vec3, best float32) (float32, bool) {
	x := v1.X - v2.X
	z := v2.Z - v1.Z

	d := z*(end.X-start.X) + x*(end.Z-start.Z)
	if d >= 0 {
		return 0, false
	}
	dx := v1.X - end.X
	dz := v1.Z - end.Z
	d = (dz*x + dx*z) / d
	if d >= best {
		return 0, false
	}
	return d, true
}

// nearestEdge returns the edge of p the segment leaves through first.
func nearestEdge(start, end vec.Vec3, p *level.Plane) (int, float32, bool) {
	edge := -1
	var best float32
	for i := 0; i < 3; i++ {
		v1, v2 := p.Edge(i)
		if d, ok := crossEdge(start, end, v1, v2, best); ok {
			edge, best = i, d
		}
	}
	return edge, best, edge >= 0
}

func withEdgeCrossing(tr Trace, d float32) Trace {
	tr.Frac = d
	tr.TFrac = math.Frac(1 + d)
	tr.HitVec = vec.Lerp(tr.Start, tr.End, tr.TFrac)
	return tr
}

// solidEdge turns the edge v1->v2 into a wall facing into the triangle.
func solidEdge(tr Trace, v1, v2 vec.Vec3) Trace {
	x := v1.X - v2.X
	z := v2.Z - v1.Z
	tr.Normal = vec.Vec3{z, 0, x}.Normalize()
	tr.Type = Edge
	return tr
}
