// SPDX-License-Identifier: GPL-2.0-or-later

package trace

import (
	"testing"

	"github.com/chewxy/math32"

	"kextrace/level"
	"kextrace/math/vec"
)

const epsilon = 1e-4

func near(a, b float32) bool {
	return math32.Abs(a-b) < epsilon
}

func nearVec(a, b vec.Vec3) bool {
	return near(a.X, b.X) && near(a.Y, b.Y) && near(a.Z, b.Z)
}

// onSegment reports whether p lies on start->end.
func onSegment(p, start, end vec.Vec3) bool {
	l := vec.Distance(start, end)
	return near(vec.Distance(start, p)+vec.Distance(p, end), l)
}

var (
	// floor triangle, x >= 0, z >= 0, x+z <= 10
	tri0 = [3]vec.Vec3{{0, 0, 0}, {0, 0, 10}, {10, 0, 0}}
	// floor triangle on the other side of the hypotenuse of tri0
	tri1 = [3]vec.Vec3{{10, 0, 0}, {0, 0, 10}, {10, 0, 10}}
	// vertical wall on x = 0 facing +X, sharing edge 0 of tri0
	wallUp = [3]vec.Vec3{{0, 0, 10}, {0, 0, 0}, {0, 20, 5}}
	// steep face falling away from edge 0 of tri0
	cliff = [3]vec.Vec3{{0, 0, 10}, {0, 0, 0}, {-5, -60, 5}}
)

func mustLevel(t *testing.T, defs []level.PlaneDef, areas []level.Area, grids []level.Grid) *level.Level {
	t.Helper()
	l, err := level.New(defs, areas, grids)
	if err != nil {
		t.Fatalf("level.New: %v", err)
	}
	return l
}

// singleFloor is tri0 with solid edges.
func singleFloor(t *testing.T) *level.Level {
	return mustLevel(t, []level.PlaneDef{
		{Points: tri0, Links: level.NoLinks, Area: -1},
	}, nil, nil)
}

// floorPair links tri0 and tri1 across the hypotenuse. Plane 1 gets the
// given flags and both planes the given areas.
func floorPair(t *testing.T, flags level.Flags, heights [3]float32, area0, area1 int, areas []level.Area) *level.Level {
	return mustLevel(t, []level.PlaneDef{
		{Points: tri0, Links: [3]int{-1, 1, -1}, Area: area0},
		{Points: tri1, Links: [3]int{0, -1, -1}, Flags: flags, Heights: heights, Area: area1},
	}, areas, nil)
}

// floorAndWall links edge 0 of tri0 to a second plane.
func floorAndWall(t *testing.T, wall [3]vec.Vec3, flags level.Flags) *level.Level {
	return mustLevel(t, []level.PlaneDef{
		{Points: tri0, Links: [3]int{1, -1, -1}, Area: -1},
		{Points: wall, Links: [3]int{0, -1, -1}, Flags: flags, Area: -1},
	}, nil, nil)
}
