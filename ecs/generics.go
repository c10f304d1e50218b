package ecs

import "github.com/jmallory/pagechase/ecs/component"

// Add attaches value to e under the handle's kind. It fails for dead
// entities so stale handles cannot resurrect component rows.
func Add[T any](w *World, e Entity, handle component.ComponentHandle[T], value T) error {
	if !handle.Kind().Valid() {
		return component.ErrInvalidKind
	}
	if w == nil || !w.entities.isAlive(e) {
		return component.ErrEntityNotAlive
	}
	w.store(handle.Kind().ID()).Set(e, value)
	return nil
}

// Remove detaches the component from e, reporting whether it was present.
func Remove[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	if w == nil {
		return false
	}
	s := w.storeIfAny(handle.Kind().ID())
	if s == nil {
		return false
	}
	return s.Remove(e)
}

// Has reports whether e carries the component.
func Has[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	return w.storeIfAny(handle.Kind().ID()).Has(e)
}

// Get returns e's component value by copy. Mutations must be written back
// with Add; systems follow a read-modify-Add cycle per tick.
func Get[T any](w *World, e Entity, handle component.ComponentHandle[T]) (T, bool) {
	var zero T
	if w == nil || !w.entities.isAlive(e) {
		return zero, false
	}
	v := w.storeIfAny(handle.Kind().ID()).Get(e)
	if v == nil {
		return zero, false
	}
	cast, ok := v.(T)
	if !ok {
		return zero, false
	}
	return cast, true
}

// ForEach visits every live entity carrying the component.
func ForEach[T any](w *World, handle component.ComponentHandle[T], fn func(e Entity, v T)) {
	if w == nil || fn == nil {
		return
	}
	s := w.storeIfAny(handle.Kind().ID())
	if s == nil {
		return
	}
	// copy the entity list so fn may add/remove rows while iterating
	ents := append([]Entity(nil), s.Entities()...)
	for _, e := range ents {
		if !w.entities.isAlive(e) {
			continue
		}
		if v, ok := Get(w, e, handle); ok {
			fn(e, v)
		}
	}
}
