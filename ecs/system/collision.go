package system

import (
	"math"

	"github.com/jmallory/pagechase/ecs"
	"github.com/jmallory/pagechase/ecs/component"
)

// CollisionReport is the outcome of one tick's player-ghost contacts. The
// collision step is a pure fold over the world; the system applies the
// report afterwards (events, respawn scheduling), which keeps the geometry
// trivially testable.
type CollisionReport struct {
	Eaten           []ecs.Entity
	LifeLost        bool
	LifeLostBy      ecs.Entity // first ghost that cost the life this tick
	RespawnRequests []ecs.Entity
}

// Collide tests every non-eaten ghost against the player. Contact requires
// the distance to be strictly inside the radius. Frightened ghosts flip to
// eaten and request a respawn; otherwise an unshielded player loses a life.
// A shield deflects silently, leaving the ghost untouched. Every
// overlapping ghost is evaluated independently, so one tick can both eat a
// ghost and lose a life to another.
func Collide(w *ecs.World, cfg Tuning) CollisionReport {
	var report CollisionReport
	if w == nil {
		return report
	}

	player, ok := w.First(component.PlayerTagComponent.Kind())
	if !ok {
		return report
	}
	pt, ok := ecs.Get(w, player, component.TransformComponent)
	if !ok {
		return report
	}

	shield := false
	if fx, ok := ecs.Get(w, player, component.ActiveEffectsComponent); ok {
		shield = fx.Shield
	}

	for _, ent := range w.Query(component.GhostComponent.Kind(), component.TransformComponent.Kind()) {
		g, ok := ecs.Get(w, ent, component.GhostComponent)
		if !ok || g.Eaten() {
			continue
		}
		gt, ok := ecs.Get(w, ent, component.TransformComponent)
		if !ok {
			continue
		}

		if math.Hypot(pt.X-gt.X, pt.Y-gt.Y) >= cfg.CollisionRadius {
			continue
		}

		switch {
		case g.Frightened():
			g.Mode = component.ModeEaten
			g.OrbitSet = false
			_ = ecs.Add(w, ent, component.GhostComponent, g)
			report.Eaten = append(report.Eaten, ent)
			report.RespawnRequests = append(report.RespawnRequests, ent)
		case !shield:
			if !report.LifeLost {
				report.LifeLostBy = ent
			}
			report.LifeLost = true
		}
	}
	return report
}

// CollisionSystem runs Collide each tick and applies the report: eat and
// life-loss events on the world queue, respawn deadlines on the queue
// system. The ghost-eat combo doubles per ghost within one frightened phase
// and resets when a new phase starts.
type CollisionSystem struct {
	cfg      Tuning
	respawns *RespawnSystem
	combo    int

	// Report is the last tick's outcome, for hosts that want to poll
	// instead of draining events.
	Report CollisionReport
}

func NewCollisionSystem(cfg Tuning, respawns *RespawnSystem) *CollisionSystem {
	return &CollisionSystem{cfg: cfg, respawns: respawns}
}

func (s *CollisionSystem) SetTuning(cfg Tuning) {
	if s == nil {
		return
	}
	s.cfg = cfg
}

// ResetCombo starts a fresh ghost-eat combo; called when frightened mode
// begins.
func (s *CollisionSystem) ResetCombo() {
	if s == nil {
		return
	}
	s.combo = 0
}

func (s *CollisionSystem) Update(w *ecs.World, dt float64) {
	if s == nil || w == nil {
		return
	}

	report := Collide(w, s.cfg)
	s.Report = report

	for _, ghost := range report.Eaten {
		s.combo++
		w.Events().Push(ecs.Event{
			Type: ecs.EventGhostEaten,
			Data: ecs.GhostEatenEvent{Ghost: ghost, Combo: s.combo},
		})
	}
	if s.respawns != nil {
		for _, ghost := range report.RespawnRequests {
			s.respawns.Schedule(ghost, s.cfg.RespawnDelay)
		}
	}
	if report.LifeLost {
		w.Events().Push(ecs.Event{Type: ecs.EventLifeLost, Data: ecs.LifeLostEvent{Ghost: report.LifeLostBy}})
	}
}
