package ecs

import "github.com/jmallory/pagechase/ecs/component"

// System updates a world each simulation tick. dt is the tick duration in
// seconds.
type System interface {
	Update(w *World, dt float64)
}

// World owns entities, component storage, system order, and the frame event
// queue. It is single-threaded; systems run in registration order.
type World struct {
	entities entityStore
	stores   map[component.ID]*SparseSet
	systems  []System
	events   EventQueue

	clock float64
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{stores: map[component.ID]*SparseSet{}}
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity kills an entity and drops all of its components.
func (w *World) DestroyEntity(e Entity) bool {
	if w == nil || !w.entities.destroy(e) {
		return false
	}
	for _, s := range w.stores {
		s.Remove(e)
	}
	return true
}

// IsAlive reports whether an entity handle is still valid.
func (w *World) IsAlive(e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// AddSystem appends a system to the update order.
func (w *World) AddSystem(s System) {
	if w == nil || s == nil {
		return
	}
	w.systems = append(w.systems, s)
}

// Update runs all systems once and drains the event queue afterwards.
// Undrained events from the previous tick are discarded first so stale
// events never leak across frames.
func (w *World) Update(dt float64) {
	if w == nil {
		return
	}
	w.events.flush()
	w.clock += dt
	for _, s := range w.systems {
		if s != nil {
			s.Update(w, dt)
		}
	}
}

// Clock returns accumulated simulation time in seconds.
func (w *World) Clock() float64 {
	if w == nil {
		return 0
	}
	return w.clock
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

func (w *World) store(id component.ID) *SparseSet {
	if w == nil || id == 0 {
		return nil
	}
	if w.stores == nil {
		w.stores = map[component.ID]*SparseSet{}
	}
	s, ok := w.stores[id]
	if !ok {
		s = &SparseSet{}
		w.stores[id] = s
	}
	return s
}

func (w *World) storeIfAny(id component.ID) *SparseSet {
	if w == nil || w.stores == nil {
		return nil
	}
	return w.stores[id]
}

// Query returns all live entities that carry every given component kind.
func (w *World) Query(kinds ...component.Kind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	var smallest *SparseSet
	rest := make([]*SparseSet, 0, len(kinds)-1)
	for _, k := range kinds {
		s := w.storeIfAny(k.ID())
		if s == nil {
			// a kind nothing ever carried can have no intersection
			return nil
		}
		if smallest == nil || s.Len() < smallest.Len() {
			if smallest != nil {
				rest = append(rest, smallest)
			}
			smallest = s
			continue
		}
		rest = append(rest, s)
	}
	out := make([]Entity, 0, smallest.Len())
outer:
	for _, e := range smallest.Entities() {
		if !w.entities.isAlive(e) {
			continue
		}
		for _, s := range rest {
			if !s.Has(e) {
				continue outer
			}
		}
		out = append(out, e)
	}
	return out
}

// First returns the first live entity carrying the given component kind.
func (w *World) First(kind component.Kind) (Entity, bool) {
	if w == nil || kind == nil {
		return 0, false
	}
	s := w.storeIfAny(kind.ID())
	if s == nil {
		return 0, false
	}
	for _, e := range s.Entities() {
		if w.entities.isAlive(e) {
			return e, true
		}
	}
	return 0, false
}
