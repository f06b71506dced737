// SPDX-License-Identifier: GPL-2.0-or-later

package level

import (
	"github.com/pkg/errors"

	"kextrace/actor"
	"kextrace/math/vec"
)

type AreaFlags uint32

const (
	AreaWater AreaFlags = 1 << iota
)

// Area groups planes that share environment properties.
type Area struct {
	Index int
	Flags AreaFlags
}

// Grid is a broad-phase bucket of static actors, bounded on X/Z.
type Grid struct {
	MinX, MaxX float32
	MinZ, MaxZ float32
	Statics    []actor.Actor
}

// Contains reports whether p lies strictly inside the grid bounds.
func (g *Grid) Contains(p vec.Vec3) bool {
	return p.X > g.MinX && p.X < g.MaxX &&
		p.Z > g.MinZ && p.Z < g.MaxZ
}

// PlaneDef describes one plane for New. Links and Area index into the
// slices passed to New, -1 means none.
type PlaneDef struct {
	Points        [3]vec.Vec3
	Links         [3]int
	Flags         Flags
	Heights       [3]float32
	CeilingNormal vec.Vec3 // computed from Heights when zero
	Area          int
}

// NoLinks is the link set of a plane bounded by solid edges only.
var NoLinks = [3]int{-1, -1, -1}

// Level is the collision world traced against. Traces only read it; callers
// that mutate a level concurrently with traces must serialize access.
type Level struct {
	Planes []*Plane
	Areas  []*Area
	Grids  []*Grid
	Actors *actor.Arena
}

// New builds a level. Plane normals follow the winding: the front face is
// the one cross(p1-p0, p2-p0) points to. Ceilings face the other way.
func New(defs []PlaneDef, areas []Area, grids []Grid) (*Level, error) {
	l := &Level{
		Planes: make([]*Plane, len(defs)),
		Areas:  make([]*Area, len(areas)),
		Grids:  make([]*Grid, len(grids)),
		Actors: actor.NewArena(),
	}
	for i := range areas {
		a := areas[i]
		a.Index = i
		l.Areas[i] = &a
	}
	for i := range grids {
		g := grids[i]
		if g.MinX > g.MaxX || g.MinZ > g.MaxZ {
			return nil, errors.Errorf("grid %d: inverted bounds", i)
		}
		l.Grids[i] = &g
	}
	for i, d := range defs {
		p, err := newPlane(d, l.Areas)
		if err != nil {
			return nil, errors.Wrapf(err, "plane %d", i)
		}
		p.Index = i
		l.Planes[i] = p
	}
	for i, d := range defs {
		for e, li := range d.Links {
			if li < 0 {
				continue
			}
			if li >= len(l.Planes) {
				return nil, errors.Errorf("plane %d: edge %d links to missing plane %d", i, e, li)
			}
			l.Planes[i].Links[e] = l.Planes[li]
		}
	}
	return l, nil
}

func newPlane(d PlaneDef, areas []*Area) (*Plane, error) {
	p := &Plane{
		Points:        d.Points,
		Flags:         d.Flags,
		Heights:       d.Heights,
		CeilingNormal: d.CeilingNormal,
	}
	n := vec.Cross(vec.Sub(d.Points[1], d.Points[0]), vec.Sub(d.Points[2], d.Points[0]))
	if n.Length() == 0 {
		return nil, errors.New("degenerate triangle")
	}
	p.Normal = n.Normalize()

	if d.Area >= len(areas) {
		return nil, errors.Errorf("area %d out of range", d.Area)
	}
	if d.Area >= 0 {
		p.Area = areas[d.Area]
	}

	if p.Flags&CheckHeight != 0 && vec.Equal(p.CeilingNormal, vec.Vec3{}) {
		var c [3]vec.Vec3
		for i := range c {
			c[i] = vec.Vec3{d.Points[i].X, d.Heights[i], d.Points[i].Z}
		}
		p.CeilingNormal = vec.Cross(vec.Sub(c[2], c[0]), vec.Sub(c[1], c[0])).Normalize()
	}
	return p, nil
}

// GridsAt returns the grids containing p.
func (l *Level) GridsAt(p vec.Vec3) []*Grid {
	var r []*Grid
	for _, g := range l.Grids {
		if g.Contains(p) {
			r = append(r, g)
		}
	}
	return r
}
