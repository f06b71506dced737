// SPDX-License-Identifier: GPL-2.0-or-later

package math

import (
	"testing"
)

const angleEpsilon = 1e-5

func near(a, b float32) bool {
	return Abs(a-b) < angleEpsilon
}

func TestAngleClampInside(t *testing.T) {
	got := AngleClamp(1)
	if got != 1 {
		t.Errorf("AngleClamp(1) = %v want 1", got)
	}
}

func TestAngleClampOver(t *testing.T) {
	got := AngleClamp(Pi + 0.5)
	if !near(got, -Pi+0.5) {
		t.Errorf("AngleClamp(Pi+0.5) = %v want %v", got, -Pi+0.5)
	}
}

func TestAngleClampUnder(t *testing.T) {
	got := AngleClamp(-3*Pi + 0.25)
	if !near(got, -Pi+0.25) {
		t.Errorf("AngleClamp(-3Pi+0.25) = %v want %v", got, -Pi+0.25)
	}
}

func TestAngleDiffWraps(t *testing.T) {
	got := AngleDiff(Pi-0.1, -Pi+0.1)
	if !near(got, 0.2) {
		t.Errorf("AngleDiff(Pi-0.1,-Pi+0.1) = %v want 0.2", got)
	}
	got = AngleDiff(Pi/2, -Pi/2)
	if !near(Abs(got), Pi) {
		t.Errorf("|AngleDiff(Pi/2,-Pi/2)| = %v want Pi", Abs(got))
	}
}

func TestDegRad(t *testing.T) {
	if got := DegToRad(180); !near(got, Pi) {
		t.Errorf("DegToRad(180) = %v want Pi", got)
	}
	if got := RadToDeg(Pi / 2); !near(got, 90) {
		t.Errorf("RadToDeg(Pi/2) = %v want 90", got)
	}
}

func TestVectorToAngle(t *testing.T) {
	if got := VectorToAngle(0, 1); got != 0 {
		t.Errorf("VectorToAngle(0,1) = %v want 0", got)
	}
	if got := VectorToAngle(1, 0); !near(got, Pi/2) {
		t.Errorf("VectorToAngle(1,0) = %v want Pi/2", got)
	}
}
