package system

import (
	"github.com/jmallory/pagechase/ecs"
	"github.com/jmallory/pagechase/ecs/component"
)

// RespawnSystem is a deadline queue ticked by the frame loop. Eaten ghosts
// are scheduled here and re-enter play at their home position when their
// deadline passes. Running inside the tick means there is no second
// execution context racing the simulation over ghost state; each entry
// fires at most once and Clear drops everything on teardown or restart.
type RespawnSystem struct {
	now     float64
	pending []respawnEntry

	scattering func() bool
}

type respawnEntry struct {
	at    float64
	ghost ecs.Entity
}

func NewRespawnSystem() *RespawnSystem {
	return &RespawnSystem{}
}

// SetWaveSource supplies the wave scheduler's scatter flag so respawned
// ghosts rejoin the current wave. Without a source ghosts respawn chasing.
func (s *RespawnSystem) SetWaveSource(scattering func() bool) {
	if s == nil {
		return
	}
	s.scattering = scattering
}

// Schedule queues a ghost to respawn after delay seconds.
func (s *RespawnSystem) Schedule(ghost ecs.Entity, delay float64) {
	if s == nil || !ghost.Valid() {
		return
	}
	if delay < 0 {
		delay = 0
	}
	s.pending = append(s.pending, respawnEntry{at: s.now + delay, ghost: ghost})
}

// Pending returns the number of queued respawns.
func (s *RespawnSystem) Pending() int {
	if s == nil {
		return 0
	}
	return len(s.pending)
}

// Clear drops all queued respawns.
func (s *RespawnSystem) Clear() {
	if s == nil {
		return
	}
	s.pending = s.pending[:0]
}

func (s *RespawnSystem) Update(w *ecs.World, dt float64) {
	if s == nil || w == nil {
		return
	}
	s.now += dt

	remaining := s.pending[:0]
	for _, entry := range s.pending {
		if entry.at > s.now {
			remaining = append(remaining, entry)
			continue
		}
		s.fire(w, entry.ghost)
	}
	s.pending = remaining
}

// fire respawns one ghost. Dead entities and ghosts that were reset since
// being scheduled are skipped; the deadline is already consumed either way.
func (s *RespawnSystem) fire(w *ecs.World, ghost ecs.Entity) {
	if !w.IsAlive(ghost) {
		return
	}
	g, ok := ecs.Get(w, ghost, component.GhostComponent)
	if !ok || !g.Eaten() {
		return
	}

	g.Mode = component.ModeChasing
	if s.scattering != nil && s.scattering() && g.Slot != 0 {
		g.Mode = component.ModeScattering
	}
	g.OrbitSet = false
	_ = ecs.Add(w, ghost, component.GhostComponent, g)
	_ = ecs.Add(w, ghost, component.TransformComponent, component.Transform{X: g.HomeX, Y: g.HomeY})
	_ = ecs.Add(w, ghost, component.VelocityComponent, component.Velocity{})

	w.Events().Push(ecs.Event{
		Type: ecs.EventGhostRespawned,
		Data: ecs.GhostRespawnedEvent{Ghost: ghost},
	})
}
