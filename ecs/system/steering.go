package system

import (
	"math/rand"

	"github.com/jakecoffman/cp"

	"github.com/jmallory/pagechase/ecs"
	"github.com/jmallory/pagechase/ecs/component"
	"github.com/jmallory/pagechase/page"
)

// TargetingSystem runs each ghost's persona, applies boundary correction,
// and writes the resulting steer target. It is the first half of the ghost
// controller loop; movement and collision consume its output in the same
// tick.
type TargetingSystem struct {
	cfg    Tuning
	bounds page.BoundsProvider
	view   page.ViewportProvider
	rng    *rand.Rand

	scripts map[string]*personaScript
}

func NewTargetingSystem(cfg Tuning, bounds page.BoundsProvider, view page.ViewportProvider, rng *rand.Rand) *TargetingSystem {
	return &TargetingSystem{
		cfg:     cfg,
		bounds:  bounds,
		view:    view,
		rng:     rng,
		scripts: map[string]*personaScript{},
	}
}

// SetTuning swaps the tuning in place, for hot reload.
func (s *TargetingSystem) SetTuning(cfg Tuning) {
	if s == nil {
		return
	}
	s.cfg = cfg
}

// BuildSnapshot assembles the per-tick game state bundle from the world.
func (s *TargetingSystem) BuildSnapshot(w *ecs.World, dt float64) Snapshot {
	snap := Snapshot{ScatterClock: w.Clock(), Dt: dt}
	if s.view != nil {
		snap.Viewport = s.view.Viewport()
	}

	if player, ok := w.First(component.PlayerTagComponent.Kind()); ok {
		if t, ok := ecs.Get(w, player, component.TransformComponent); ok {
			snap.PacmanPos = cp.Vector{X: t.X, Y: t.Y}
			snap.PacmanKnown = true
		}
		if v, ok := ecs.Get(w, player, component.VelocityComponent); ok {
			snap.PacmanVel = cp.Vector{X: v.X, Y: v.Y}
		}
	}

	if pageEnt, ok := w.First(component.DotCounterComponent.Kind()); ok {
		if dc, ok := ecs.Get(w, pageEnt, component.DotCounterComponent); ok {
			snap.DotsRemaining = dc.Remaining
			snap.TotalDots = dc.Total
		}
	}
	return snap
}

func (s *TargetingSystem) Update(w *ecs.World, dt float64) {
	if s == nil || w == nil {
		return
	}
	snap := s.BuildSnapshot(w, dt)

	chasePos := s.findChaseGhost(w)

	for _, ent := range w.Query(component.GhostComponent.Kind(), component.TransformComponent.Kind()) {
		g, ok := ecs.Get(w, ent, component.GhostComponent)
		if !ok || g.Eaten() {
			continue
		}
		t, ok := ecs.Get(w, ent, component.TransformComponent)
		if !ok {
			continue
		}
		pos := cp.Vector{X: t.X, Y: t.Y}

		target, boost := s.personaTarget(&g, pos, snap, chasePos)

		if b, ok := CheckBoundary(pos.X, pos.Y, s.bounds, s.cfg); ok {
			if g.Frightened() {
				target = FrightenedEscapeTarget(pos, b, snap.PacmanPos, s.bounds, s.cfg, s.rng)
			} else {
				target = AdjustTargetForBoundary(pos, target, b, s.bounds, s.cfg)
			}
		}

		_ = ecs.Add(w, ent, component.GhostComponent, g)
		_ = ecs.Add(w, ent, component.SteerTargetComponent, component.SteerTarget{
			X:          target.X,
			Y:          target.Y,
			SpeedBoost: boost,
		})
	}
}

// personaTarget dispatches on mode first, then persona. Ghosts outside the
// orbit regime of the scatter persona keep their orbit angle but stop
// advancing it; only re-entry resumes accumulation.
func (s *TargetingSystem) personaTarget(g *component.Ghost, pos cp.Vector, snap Snapshot, chasePos *cp.Vector) (cp.Vector, float64) {
	switch g.Mode {
	case component.ModeFrightened:
		return FrightenedTarget(pos, snap.PacmanPos, s.cfg), 1
	case component.ModeScattering:
		return ScatterCornerTarget(g.Slot, snap, s.cfg), 1
	}

	switch g.Persona {
	case component.PersonaChase:
		return ChaseTarget(pos, snap, s.cfg, s.rng)
	case component.PersonaAmbush:
		return AmbushTarget(pos, snap, s.cfg), 1
	case component.PersonaPatrol:
		return PatrolTarget(pos, snap, chasePos, s.cfg), 1
	case component.PersonaScatter:
		return ScatterZoneTarget(g, pos, snap, s.cfg), 1
	case component.PersonaScripted:
		return s.scriptedTarget(g, pos, snap), 1
	default:
		return snap.PacmanPos, 1
	}
}

// findChaseGhost returns the slot-0 ghost's position for the patrol
// persona, or nil when no such ghost exists.
func (s *TargetingSystem) findChaseGhost(w *ecs.World) *cp.Vector {
	for _, ent := range w.Query(component.GhostComponent.Kind(), component.TransformComponent.Kind()) {
		g, ok := ecs.Get(w, ent, component.GhostComponent)
		if !ok || g.Slot != 0 {
			continue
		}
		if t, ok := ecs.Get(w, ent, component.TransformComponent); ok {
			return &cp.Vector{X: t.X, Y: t.Y}
		}
	}
	return nil
}
