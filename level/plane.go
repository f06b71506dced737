// SPDX-License-Identifier: GPL-2.0-or-later

package level

import (
	"strings"

	"github.com/chewxy/math32"

	"kextrace/math"
	"kextrace/math/vec"
)

type Flags uint32

const (
	Block       Flags = 1 << iota // solid unless Toggle is set
	Toggle                        // a Block plane that is currently open
	Climb                         // climbable wall
	CheckHeight                   // has a ceiling, see Plane.Heights
)

func (f Flags) String() string {
	if f == 0 {
		return "0"
	}
	var parts []string
	for _, n := range []struct {
		f    Flags
		name string
	}{
		{Block, "Block"},
		{Toggle, "Toggle"},
		{Climb, "Climb"},
		{CheckHeight, "CheckHeight"},
	} {
		if f&n.f != 0 {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}

const (
	// planes whose normal Y is at or below this are walls
	wallNormalY = 0.5
	// below this the normal counts as horizontal
	verticalEpsilon = 1e-6
)

// Plane is one triangle of the collision surface. Links[i] is the plane on
// the other side of edge i, which runs from Points[i] to Points[(i+1)%3].
type Plane struct {
	Index  int
	Points [3]vec.Vec3
	Normal vec.Vec3
	Links  [3]*Plane
	Flags  Flags
	// CeilingNormal and Heights describe the ceiling above the plane; only
	// used with CheckHeight. Heights[i] is the ceiling above Points[i].
	CeilingNormal vec.Vec3
	Heights       [3]float32
	Area          *Area
}

func (p *Plane) IsWall() bool {
	return p.Normal.Y <= wallNormalY
}

func (p *Plane) Blocks() bool {
	return p.Flags&Block != 0 && p.Flags&Toggle == 0
}

func (p *Plane) InWater() bool {
	return p.Area != nil && p.Area.Flags&AreaWater != 0
}

// Edge returns the endpoints of edge i.
func (p *Plane) Edge(i int) (vec.Vec3, vec.Vec3) {
	return p.Points[i], p.Points[(i+1)%3]
}

func (p *Plane) meanHeight() float32 {
	return (p.Points[0].Y + p.Points[1].Y + p.Points[2].Y) * (1.0 / 3.0)
}

// MeanHeight returns the average height of the three vertices.
func (p *Plane) MeanHeight() float32 {
	return p.meanHeight()
}

// Above reports whether y lies above all three vertices.
func (p *Plane) Above(y float32) bool {
	return y > p.Points[0].Y && y > p.Points[1].Y && y > p.Points[2].Y
}

// Distance returns the height of the plane at the X/Z position of pos.
// Vertical planes have no single height there; their mean vertex height
// is used instead.
func (p *Plane) Distance(pos vec.Vec3) float32 {
	n := p.Normal
	if math32.Abs(n.Y) < verticalEpsilon {
		return p.meanHeight()
	}
	d := vec.Dot(p.Points[0], n)
	return (d - n.X*pos.X - n.Z*pos.Z) / n.Y
}

// SignedDistance returns how far pos lies in front of the plane.
func (p *Plane) SignedDistance(pos vec.Vec3) float32 {
	return vec.Dot(pos, p.Normal) - vec.Dot(p.Points[0], p.Normal)
}

// CeilingHeight returns the ceiling height above the X/Z position of pos.
func (p *Plane) CeilingHeight(pos vec.Vec3) float32 {
	if p.Flags&CheckHeight == 0 {
		return math32.MaxFloat32
	}
	n := p.CeilingNormal
	if math32.Abs(n.Y) < verticalEpsilon {
		return math32.Max(p.Heights[0], math32.Max(p.Heights[1], p.Heights[2]))
	}
	c := vec.Vec3{p.Points[0].X, p.Heights[0], p.Points[0].Z}
	return (vec.Dot(c, n) - n.X*pos.X - n.Z*pos.Z) / n.Y
}

// CeilingBelow reports whether y reaches any of the ceiling samples.
func (p *Plane) CeilingBelow(y float32) bool {
	return y >= p.Heights[0] || y >= p.Heights[1] || y >= p.Heights[2]
}

// EdgeYaw returns the yaw of the horizontal direction pointing out of the
// triangle across edge i.
func (p *Plane) EdgeYaw(i int) float32 {
	v1, v2 := p.Edge(i)
	return math.VectorToAngle(v1.Z-v2.Z, v2.X-v1.X)
}

// IsFacing reports whether moving horizontally along yaw runs into the
// front face of the plane.
func (p *Plane) IsFacing(yaw float32) bool {
	s, c := math32.Sincos(yaw)
	return s*p.Normal.X+c*p.Normal.Z < 0
}
