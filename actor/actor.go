// SPDX-License-Identifier: GPL-2.0-or-later

package actor

import (
	"github.com/chewxy/math32"
	"github.com/google/uuid"

	"kextrace/conlog"
	"kextrace/math/vec"
	"kextrace/physics"
)

// Component is the script side of an actor. Only touch events are routed
// through here.
type Component interface {
	OnTouch(self, instigator *Actor)
}

// Actor is a vertical cylinder standing at Origin.
type Actor struct {
	ID         uuid.UUID
	Origin     vec.Vec3 // bottom center
	Radius     float32
	Height     float32
	ViewHeight float32
	// Angles.X is the yaw in radians, Angles.Y the pitch, Angles.Z the roll.
	// A yaw of 0 faces +Z.
	Angles     vec.Vec3
	Owner      Handle
	Collision  bool
	Touch      bool
	Physics    physics.Flags
	Components []Component

	handle Handle
}

// Handle returns the arena handle of the actor. Static actors that never
// went through an arena have the zero handle.
func (a *Actor) Handle() Handle {
	return a.handle
}

// Yaw returns the facing yaw in radians.
func (a *Actor) Yaw() float32 {
	return a.Angles.X
}

// Forward returns the horizontal facing direction.
func (a *Actor) Forward() vec.Vec3 {
	s, c := math32.Sincos(a.Angles.X)
	return vec.Vec3{s, 0, c}
}

// Top returns the highest point of the actor's clipping volume.
func (a *Actor) Top() float32 {
	return a.Origin.Y + a.Height + a.ViewHeight
}

// Clips reports whether the actor takes part in collision or touch tests.
func (a *Actor) Clips() bool {
	return a.Collision || a.Touch
}

// OnTouchEvent notifies every component of a that instigator touched it.
func (a *Actor) OnTouchEvent(instigator *Actor) {
	conlog.DPrintf("touch %v by %v\n", a.ID, instigator.ID)
	for _, c := range a.Components {
		c.OnTouch(a, instigator)
	}
}
