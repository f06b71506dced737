// SPDX-License-Identifier: GPL-2.0-or-later

package trace

import (
	"github.com/chewxy/math32"

	"kextrace/actor"
	"kextrace/level"
	"kextrace/math"
	"kextrace/math/vec"
	"kextrace/physics"
)

// IntersectObject tests the segment of tr against a vertical cylinder of
// the given radius around center, ignoring height. Only objects ahead of
// the segment count, and a hit must be nearer than tr.TFrac to replace it.
func IntersectObject(tr Trace, center vec.Vec3, radius float32) (Trace, bool) {
	tdir := vec.Sub(tr.Start, tr.End)
	odir := vec.Sub(tr.Start, center)

	if vec.Dot2D(tdir, odir) <= 0 {
		return tr, false
	}
	l := tdir.Length2D()
	if l == 0 {
		return tr, false
	}
	ndir := tdir.Scale(1 / l)
	cp := vec.Dot2D(ndir, odir)
	c := vec.Sub(odir, ndir.Scale(cp))
	rd := radius*radius - vec.Dot2D(c, c)
	if rd <= 0 {
		return tr, false
	}
	frac := (cp - math32.Sqrt(rd)) / l
	if frac > 1 {
		return tr, false
	}
	// already inside the cylinder
	frac = math.Frac(frac)
	if frac >= tr.TFrac {
		return tr, false
	}
	tr.Frac = frac - 1
	tr.TFrac = frac
	tr.HitVec = vec.Lerp(tr.Start, tr.End, frac)
	tr.Normal = odir.Flat().Normalize()
	return tr, true
}

// clipActor tests one actor. It reports true when the actor stops the
// trace; touch-only actors get their touch event and let it pass.
func clipActor(tr Trace, a *actor.Actor) (Trace, bool) {
	if !a.Clips() {
		return tr, false
	}
	y := tr.Start.Y
	if y > a.Top() || y+tr.Offset < a.Origin.Y {
		return tr, false
	}
	r, ok := IntersectObject(tr, a.Origin, a.Radius)
	if !ok {
		return tr, false
	}
	if !a.Collision {
		if tr.Source != nil && len(tr.Source.Components) > 0 &&
			tr.Physics.Has(physics.TouchActors) {
			a.OnTouchEvent(tr.Source)
		}
		return tr, false
	}
	r.Type = Object
	r.HitActor = a
	return r, true
}

// scanObjects tests the statics of the grids around the start, then the
// dynamic actors. The first colliding actor ends the scan.
func scanObjects(l *level.Level, tr Trace) Trace {
	tr.Frac = 0
	tr.TFrac = 1
	if l == nil {
		return tr
	}

	if tr.Physics.Has(physics.ClipStatics) {
		for _, g := range l.GridsAt(tr.Start) {
			for i := range g.Statics {
				if r, hit := clipActor(tr, &g.Statics[i]); hit {
					return r
				}
			}
		}
	}

	// only slide movers interact with dynamic actors
	if tr.Source != nil && !tr.Source.Physics.Has(physics.SlideMove) {
		return tr
	}
	if !tr.Physics.Has(physics.ClipActors) || l.Actors == nil {
		return tr
	}
	l.Actors.Each(func(h actor.Handle, a *actor.Actor) bool {
		if skipActor(tr.Source, h, a) {
			return true
		}
		var hit bool
		tr, hit = clipActor(tr, a)
		return !hit
	})
	return tr
}

// skipActor reports whether a is the source, its owner, or owned by it.
func skipActor(src *actor.Actor, h actor.Handle, a *actor.Actor) bool {
	if src == nil {
		return false
	}
	if a == src || src.Owner == h {
		return true
	}
	sh := src.Handle()
	return sh.Valid() && a.Owner == sh
}
