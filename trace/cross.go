// SPDX-License-Identifier: GPL-2.0-or-later

package trace

import (
	"kextrace/conlog"
	"kextrace/level"
	"kextrace/math"
	"kextrace/math/vec"
	"kextrace/physics"
)

const (
	// ceilings with a normal Y at or above this are checked per vertex
	verticalCeiling = -0.5
	// a climbable wall does not hand over to a plain wall this close to it
	ledgeClearance = 1.024
)

type verdict int

const (
	pass   verdict = iota // enter the link
	solid                 // edge without a link
	reject                // link refused
	block                 // link refused, link is the hit plane
	climb                 // enter the link, a climbable wall the source faces
)

func (v verdict) String() string {
	switch v {
	case pass:
		return "pass"
	case solid:
		return "solid"
	case reject:
		return "reject"
	case block:
		return "block"
	case climb:
		return "climb"
	}
	return "verdict(?)"
}

type crossing struct {
	verdict verdict
	link    *level.Plane
}

// next returns the plane to continue in, nil if the edge stops the trace.
func (c crossing) next() *level.Plane {
	if c.verdict == pass || c.verdict == climb {
		return c.link
	}
	return nil
}

// crossPlane decides whether the trace may leave p through edge, after
// the crossing point has been stored in tr.HitVec. In order:
//
//	no link                                          solid
//	link ceiling below the crossing height           reject
//	link blocking and not toggled open               block
//	not a slide move                                 pass
//	wall -> floor                                    pass
//	climbable wall -> plain wall at the ledge        reject
//	water -> dry with NoExitWater                    reject
//	dry -> water with NoEnterWater                   reject
//	floor -> wall, wall not further than the floor:
//	    high wall below the end, no AllowDropoff     reject
//	    otherwise (step or drop-off)                 pass
//	floor -> climbable wall the source faces         climb
//	floor -> wall the ray runs into                  block
//	anything else                                    pass
func crossPlane(tr Trace, p *level.Plane, edge int, prm params) crossing {
	link := p.Links[edge]
	if link == nil {
		return crossing{verdict: solid}
	}
	c := crossing{link: link}
	pos := tr.HitVec
	slide := tr.Physics.Has(physics.SlideMove)
	slider := tr.Source != nil && slide

	// slide movers carry a lip above their feet
	ty := pos.Y
	if slider {
		ty += tr.Offset + tr.Source.ViewHeight*0.5
	}

	if link.Flags&level.CheckHeight != 0 {
		if link.CeilingNormal.Y >= verticalCeiling {
			cy := pos.Y
			if slider {
				cy = ty
			}
			if link.CeilingBelow(cy) {
				c.verdict = reject
				return c
			}
		}
		if p.Flags&level.CheckHeight == 0 && link.CeilingHeight(pos) < ty {
			c.verdict = reject
			return c
		}
	}

	if link.Blocks() {
		c.verdict = block
		return c
	}

	if !slide {
		c.verdict = pass
		return c
	}

	if p.IsWall() {
		if !link.IsWall() {
			c.verdict = pass
			return c
		}
		if p.Flags&level.Climb != 0 && link.Flags&level.Climb == 0 &&
			p.Distance(pos)+ledgeClearance > pos.Y {
			c.verdict = reject
			return c
		}
	}

	if p.InWater() && !link.InWater() && tr.Physics.Has(physics.NoExitWater) {
		c.verdict = reject
		return c
	}
	if !p.InWater() && link.InWater() && tr.Physics.Has(physics.NoEnterWater) {
		c.verdict = reject
		return c
	}

	if link.IsWall() && !p.IsWall() {
		if link.Distance(tr.End) <= p.Distance(tr.Start) {
			// steps and drop-offs
			if !planeRelevant(tr, link) &&
				math.Abs(link.MeanHeight()) >= prm.stepHeight &&
				!tr.Physics.Has(physics.AllowDropoff) {
				c.verdict = reject
				return c
			}
			c.verdict = pass
			return c
		}

		if link.Flags&level.Climb != 0 && tr.Source != nil &&
			tr.Source.Physics.Any(physics.SlideMove|physics.ClimbSurfaces) {
			inward := math.AngleClamp(p.EdgeYaw(edge) + math.Pi)
			if diff := math.Abs(math.AngleDiff(inward, tr.Source.Yaw())); diff >= prm.climbAngle {
				conlog.DPrintf("trace: climbing plane %d at %.0f degrees\n", link.Index, math.RadToDeg(diff))
				c.verdict = climb
				return c
			}
		}

		dir := vec.Sub(tr.End, tr.Start)
		if planeRelevant(tr, link) && link.IsFacing(math.VectorToAngle(dir.X, dir.Z)) {
			c.verdict = block
			return c
		}
	}

	c.verdict = pass
	return c
}
