// SPDX-License-Identifier: GPL-2.0-or-later

package trace

import (
	"kextrace/level"
	"kextrace/math"
	"kextrace/math/vec"
)

const (
	// floors flatter than this never stop a trace directly
	almostFlat = 0.5
	// walls entirely below End.Y+wallBias are stepped over
	wallBias = 16.384
)

func classify(p *level.Plane) HitType {
	if p.IsWall() {
		return Wall
	}
	return Slope
}

// planeRelevant reports false for walls the end of the trace is above.
func planeRelevant(tr Trace, p *level.Plane) bool {
	return !p.IsWall() || !p.Above(tr.End.Y+wallBias)
}

// hitPlane checks whether the segment ends behind p.
func hitPlane(tr Trace, p *level.Plane) (Trace, bool) {
	if !planeRelevant(tr, p) {
		return tr, false
	}
	if !p.IsWall() && p.Normal.Y > almostFlat {
		return tr, false
	}

	dstart := p.SignedDistance(tr.Start)
	dend := p.SignedDistance(tr.End)

	if dstart > 0 && dend >= dstart {
		// in front of the plane
		return tr, false
	}
	if dend > 0 || dend >= dstart {
		return tr, false
	}

	var f float32
	if dstart > 0 {
		f = dstart / (dstart - dend)
	}
	tr.Type = classify(p)
	tr.HitPlane = p
	tr.Normal = p.Normal
	tr.TFrac = f
	tr.HitVec = vec.Lerp(tr.Start, tr.End, f)
	return tr, true
}

// planeIntersect returns where the segment passes through p. The start has
// to be on or in front of p and the end behind it.
func planeIntersect(start, end vec.Vec3, p *level.Plane) (vec.Vec3, bool) {
	dend := p.SignedDistance(end)
	if dend >= 0 || p.SignedDistance(start) < 0 {
		return vec.Vec3{}, false
	}
	dir := vec.Sub(end, start).Normalize()
	vd := vec.Dot(p.Normal, dir)
	if vd == 0 {
		return vec.Vec3{}, false
	}
	spot := dir.Scale(vec.Distance(end, start) - dend/vd)
	return vec.Add(start, spot), true
}

// bulletRay checks a straight trace against p and makes sure the
// intersection lies inside the triangle: the segment cut at the
// intersection must not leave p through any edge.
func bulletRay(tr Trace, p *level.Plane) (Trace, bool) {
	if !planeRelevant(tr, p) {
		return tr, false
	}
	hit, ok := planeIntersect(tr.Start, tr.End, p)
	if !ok {
		return tr, false
	}
	for i := 0; i < 3; i++ {
		v1, v2 := p.Edge(i)
		if _, out := crossEdge(tr.Start, hit, v1, v2, 0); out {
			return tr, false
		}
	}
	tr.Type = classify(p)
	tr.HitPlane = p
	tr.Normal = p.Normal
	tr.HitVec = hit
	tr.TFrac = math.Frac(vec.Distance(tr.Start, hit) / vec.Distance(tr.Start, tr.End))
	return tr, true
}
