package ecs

// Event is a frame-scoped notification produced by a system and drained by
// the host before the next tick.
type Event struct {
	Type string
	Data any
}

const (
	EventGhostEaten     = "ghost_eaten"
	EventLifeLost       = "life_lost"
	EventGhostRespawned = "ghost_respawned"
	EventModeChanged    = "mode_changed"
)

// GhostEatenEvent is emitted when a frightened ghost is caught.
type GhostEatenEvent struct {
	Ghost Entity
	Combo int
}

// LifeLostEvent is emitted when a ghost catches the unshielded player.
type LifeLostEvent struct {
	Ghost Entity
}

// GhostRespawnedEvent is emitted when an eaten ghost re-enters play.
type GhostRespawnedEvent struct {
	Ghost Entity
}

// ModeChangedEvent is emitted when the wave scheduler flips ghost modes.
type ModeChangedEvent struct {
	Scattering bool
	Frightened bool
}

// EventQueue is a simple FIFO queue, flushed by World.Update each tick.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
