// SPDX-License-Identifier: GPL-2.0-or-later

package actor

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Handle refers to an arena slot. A handle outlives its actor safely: once
// the slot is reused the generation no longer matches.
type Handle struct {
	index      uint32
	generation uint32
}

// Valid reports whether h can refer to an actor at all. The zero Handle is
// never handed out.
func (h Handle) Valid() bool {
	return h.generation != 0
}

type slot struct {
	actor      *Actor
	generation uint32
}

// Arena owns the dynamic actors of a level. It is not safe for concurrent
// mutation; readers share it under the world's read lock.
type Arena struct {
	slots []slot
	free  []uint32
	byID  map[uuid.UUID]Handle
	count int
}

func NewArena() *Arena {
	return &Arena{
		byID: make(map[uuid.UUID]Handle),
	}
}

// Spawn stores a copy of a and returns its handle. The copy gets a fresh ID
// unless a already carries one.
func (r *Arena) Spawn(a Actor) Handle {
	if a.ID == uuid.Nil {
		a.ID = uuid.Must(uuid.NewV7())
	}
	var idx uint32
	if n := len(r.free); n > 0 {
		idx = r.free[n-1]
		r.free = r.free[:n-1]
	} else {
		idx = uint32(len(r.slots))
		r.slots = append(r.slots, slot{})
	}
	s := &r.slots[idx]
	s.generation++
	h := Handle{index: idx, generation: s.generation}
	a.handle = h
	s.actor = &a
	r.byID[a.ID] = h
	r.count++
	return h
}

// Get resolves h. Stale or zero handles resolve to nothing.
func (r *Arena) Get(h Handle) (*Actor, bool) {
	if !h.Valid() || int(h.index) >= len(r.slots) {
		return nil, false
	}
	s := r.slots[h.index]
	if s.generation != h.generation || s.actor == nil {
		return nil, false
	}
	return s.actor, true
}

// Lookup finds the handle of the actor with the given ID.
func (r *Arena) Lookup(id uuid.UUID) (Handle, bool) {
	h, ok := r.byID[id]
	return h, ok
}

// Remove destroys the actor behind h.
func (r *Arena) Remove(h Handle) error {
	a, ok := r.Get(h)
	if !ok {
		return errors.Errorf("actor: stale handle %d/%d", h.index, h.generation)
	}
	delete(r.byID, a.ID)
	r.slots[h.index].actor = nil
	r.free = append(r.free, h.index)
	r.count--
	return nil
}

// Len returns the number of live actors.
func (r *Arena) Len() int {
	return r.count
}

// Each calls f for every live actor in slot order until f returns false.
// Actors removed by f are not visited afterwards.
func (r *Arena) Each(f func(h Handle, a *Actor) bool) {
	n := len(r.slots)
	for i := 0; i < n; i++ {
		s := r.slots[i]
		if s.actor == nil {
			continue
		}
		if !f(Handle{index: uint32(i), generation: s.generation}, s.actor) {
			return
		}
	}
}
