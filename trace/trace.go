// SPDX-License-Identifier: GPL-2.0-or-later

// Package trace resolves movement, line-of-sight and touch queries against
// the plane graph and the actors of a level.
package trace

import (
	"kextrace/actor"
	"kextrace/cvars"
	"kextrace/level"
	"kextrace/math"
	"kextrace/math/vec"
	"kextrace/physics"
)

type HitType int

const (
	NoHit HitType = iota
	Wall
	Slope
	Edge
	Climb
	Object
)

func (h HitType) String() string {
	switch h {
	case NoHit:
		return "NoHit"
	case Wall:
		return "Wall"
	case Slope:
		return "Slope"
	case Edge:
		return "Edge"
	case Climb:
		return "Climb"
	case Object:
		return "Object"
	}
	return "HitType(?)"
}

const (
	// clipping size of traces without a source actor
	defaultWidth  = 10.24
	defaultOffset = 10.24
)

// Trace is the result of one query. It only points into level and actor
// data, which must stay untouched for the duration of the call.
type Trace struct {
	Start, End vec.Vec3
	// Plane is the plane the trace ended up in.
	Plane    *level.Plane
	HitPlane *level.Plane
	HitActor *actor.Actor
	// Frac is where the last edge or object crossing lies, relative to
	// End: -1 at Start, 0 at End.
	Frac float32
	// TFrac is the position of HitVec along Start->End, 0 at Start and
	// 1 at End.
	TFrac   float32
	HitVec  vec.Vec3
	Normal  vec.Vec3
	Type    HitType
	Physics physics.Flags
	Source  *actor.Actor
	Width   float32
	Offset  float32
	// Hops counts the planes entered by the traversal.
	Hops int
}

// Hit reports whether anything was struck.
func (t Trace) Hit() bool {
	return t.Type != NoHit
}

// params are the tunables of one trace call, read once so the call is not
// affected by concurrent cvar changes.
type params struct {
	stepHeight float32
	climbAngle float32 // radians
	maxHops    int
}

func currentParams() params {
	p := params{
		stepHeight: cvars.TraceStepHeight.Value(),
		climbAngle: math.DegToRad(cvars.TraceClimbAngle.Value()),
		maxHops:    int(cvars.TraceMaxHops.Value()),
	}
	if p.maxHops < 1 {
		p.maxHops = 1
	}
	return p
}

func newTrace(start, end vec.Vec3, pl *level.Plane, source *actor.Actor, flags physics.Flags) Trace {
	t := Trace{
		Start:   start,
		End:     end,
		Plane:   pl,
		HitVec:  start,
		TFrac:   1,
		Type:    NoHit,
		Physics: flags,
		Source:  source,
		Width:   defaultWidth,
		Offset:  defaultOffset,
	}
	if source != nil {
		t.Width = source.Radius
		t.Offset = source.Height
	}
	return t
}

// Ray traces a straight segment without a source actor, such as a bullet
// or a line of sight, starting in plane pl.
func Ray(l *level.Level, start, end vec.Vec3, pl *level.Plane, flags physics.Flags) Trace {
	tr := newTrace(start, end, pl, nil, flags)
	tr = traverse(tr, pl, currentParams())
	return finish(l, tr)
}

// Move traces the movement of source from start to end with the source's
// own physics flags.
func Move(l *level.Level, start, end vec.Vec3, pl *level.Plane, source *actor.Actor) Trace {
	var flags physics.Flags
	if source != nil {
		flags = source.Physics
	}
	return MoveWithFlags(l, start, end, pl, source, flags)
}

// MoveWithFlags is Move with explicit physics flags. Before walking the
// plane graph it tries the starting plane and its solid edges directly.
func MoveWithFlags(l *level.Level, start, end vec.Vec3, pl *level.Plane, source *actor.Actor, flags physics.Flags) Trace {
	if source == nil {
		return Ray(l, start, end, pl, flags)
	}
	tr := newTrace(start, end, pl, source, flags)
	if pl != nil {
		tr = moveFromPlane(tr, pl, currentParams())
	}
	return finish(l, tr)
}

func moveFromPlane(tr Trace, pl *level.Plane, prm params) Trace {
	if r, ok := hitPlane(tr, pl); ok {
		return r
	}
	// solid edges of the starting plane
	for i := 0; i < 3; i++ {
		if pl.Links[i] != nil {
			continue
		}
		v1, v2 := pl.Edge(i)
		if d, ok := crossEdge(tr.Start, tr.End, v1, v2, tr.Frac); ok {
			tr = withEdgeCrossing(tr, d)
			tr = solidEdge(tr, v1, v2)
		}
	}
	if tr.Type != NoHit {
		return tr
	}
	return traverse(tr, pl, prm)
}

// finish runs the object pass when the planes did not stop the trace.
func finish(l *level.Level, tr Trace) Trace {
	if tr.Type != NoHit {
		return tr
	}
	tr = scanObjects(l, tr)
	if tr.Type == NoHit {
		tr.HitVec = tr.End
		tr.TFrac = 1
	}
	return tr
}
