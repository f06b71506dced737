// SPDX-License-Identifier: GPL-2.0-or-later

package trace

import (
	"kextrace/conlog"
	"kextrace/level"
	"kextrace/physics"
)

// traverse walks the plane graph from pl along the segment until something
// is struck or the segment ends inside a plane.
func traverse(tr Trace, pl *level.Plane, prm params) Trace {
	if pl == nil {
		return tr
	}
	slide := tr.Physics.Has(physics.SlideMove)
	visited := make(map[*level.Plane]struct{})

	for {
		visited[pl] = struct{}{}
		tr.Plane = pl
		tr.Hops++

		// bullet traces stop on floors
		if !pl.IsWall() && !slide {
			if r, ok := bulletRay(tr, pl); ok {
				return r
			}
		}

		edge, d, ok := nearestEdge(tr.Start, tr.End, pl)
		if !ok {
			return tr
		}
		tr = withEdgeCrossing(tr, d)
		v1, v2 := pl.Edge(edge)

		c := crossPlane(tr, pl, edge, prm)
		if c.verdict == block || c.verdict == climb {
			tr.HitPlane = c.link
		}
		next := c.next()
		if next == nil {
			return solidEdge(tr, v1, v2)
		}
		if _, seen := visited[next]; seen {
			conlog.DPrintf("trace: plane %d re-entered from plane %d\n", next.Index, pl.Index)
			return solidEdge(tr, v1, v2)
		}
		if tr.Hops >= prm.maxHops {
			conlog.DPrintf("trace: gave up after %d planes\n", tr.Hops)
			return solidEdge(tr, v1, v2)
		}

		if c.verdict == climb {
			tr.Plane = next
		}
		// see if the ray bumps into the wall right away
		if next.IsWall() {
			var r Trace
			var hit bool
			if slide {
				r, hit = hitPlane(tr, next)
			} else {
				r, hit = bulletRay(tr, next)
			}
			if hit {
				if c.verdict == climb {
					r.Type = Climb
				}
				return r
			}
		}
		pl = next
	}
}
