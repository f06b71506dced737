// SPDX-License-Identifier: GPL-2.0-or-later

package trace

import (
	"testing"

	"kextrace/level"
	"kextrace/math/vec"
)

func TestHitPlaneBothInFront(t *testing.T) {
	l := floorAndWall(t, wallUp, 0)
	w := l.Planes[1]
	for _, c := range [][2]vec.Vec3{
		{{5, 5, 5}, {3, 5, 5}},
		{{5, 5, 5}, {8, 5, 5}},
		{{1, 2, 3}, {1, 2, 9}},
		{{0.5, 0, 1}, {0.25, 3, 9}},
	} {
		if _, ok := hitPlane(straight(c[0], c[1]), w); ok {
			t.Errorf("hitPlane(%v -> %v) hit a wall both ends are in front of", c[0], c[1])
		}
	}
}

func TestHitPlaneWall(t *testing.T) {
	l := floorAndWall(t, wallUp, 0)
	w := l.Planes[1]
	tr, ok := hitPlane(straight(vec.Vec3{3, 1, 5}, vec.Vec3{-2, 1, 5}), w)
	if !ok {
		t.Fatalf("wall missed")
	}
	if tr.Type != Wall || tr.HitPlane != w || tr.Normal != w.Normal {
		t.Errorf("got %v on %p normal %v want Wall on %p normal %v", tr.Type, tr.HitPlane, tr.Normal, w, w.Normal)
	}
	if !near(tr.TFrac, 0.6) || !nearVec(tr.HitVec, vec.Vec3{0, 1, 5}) {
		t.Errorf("TFrac %v HitVec %v want 0.6 {0 1 5}", tr.TFrac, tr.HitVec)
	}
}

func TestHitPlaneWallBelowRay(t *testing.T) {
	l := floorAndWall(t, wallUp, 0)
	w := l.Planes[1]
	if _, ok := hitPlane(straight(vec.Vec3{3, 10, 5}, vec.Vec3{-2, 10, 5}), w); ok {
		t.Errorf("wall top at 20 stopped a trace ending at 10+16.384")
	}
}

func TestHitPlaneIgnoresFloors(t *testing.T) {
	l := singleFloor(t)
	if _, ok := hitPlane(straight(vec.Vec3{2, 5, 2}, vec.Vec3{3, -5, 3}), l.Planes[0]); ok {
		t.Errorf("hitPlane stopped at a flat floor")
	}
}

func TestBulletRayInside(t *testing.T) {
	l := singleFloor(t)
	p := l.Planes[0]
	start, end := vec.Vec3{2, 5, 2}, vec.Vec3{3, -5, 3}
	tr, ok := bulletRay(straight(start, end), p)
	if !ok {
		t.Fatalf("bullet missed the floor")
	}
	if tr.Type != Slope || tr.HitPlane != p || tr.Normal != p.Normal {
		t.Errorf("got %v on %p normal %v want Slope on %p normal %v", tr.Type, tr.HitPlane, tr.Normal, p, p.Normal)
	}
	if !nearVec(tr.HitVec, vec.Vec3{2.5, 0, 2.5}) {
		t.Errorf("HitVec = %v want {2.5 0 2.5}", tr.HitVec)
	}
	if !near(tr.TFrac, 0.5) {
		t.Errorf("TFrac = %v want 0.5", tr.TFrac)
	}
}

func TestBulletRayOutside(t *testing.T) {
	l := singleFloor(t)
	// passes y = 0 at (10, 0, 3), beyond the hypotenuse
	if _, ok := bulletRay(straight(vec.Vec3{8, 5, 1}, vec.Vec3{12, -5, 5}), l.Planes[0]); ok {
		t.Errorf("bullet hit outside the triangle")
	}
}

func TestBulletRayFromBehind(t *testing.T) {
	l := singleFloor(t)
	if _, ok := bulletRay(straight(vec.Vec3{2, -1, 2}, vec.Vec3{3, -5, 3}), l.Planes[0]); ok {
		t.Errorf("bullet below the floor hit it")
	}
}

func TestPlaneIntersectParallel(t *testing.T) {
	l := singleFloor(t)
	if _, ok := planeIntersect(vec.Vec3{2, 0, 2}, vec.Vec3{3, 0, 3}, l.Planes[0]); ok {
		t.Errorf("segment in the plane intersected it")
	}
}

func TestClassify(t *testing.T) {
	if classify(&level.Plane{Normal: vec.Vec3{1, 0, 0}}) != Wall {
		t.Errorf("vertical plane is not a Wall")
	}
	if classify(&level.Plane{Normal: vec.Vec3{0, 1, 0}}) != Slope {
		t.Errorf("floor is not a Slope")
	}
}
