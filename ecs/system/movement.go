package system

import (
	"github.com/jakecoffman/cp"

	"github.com/jmallory/pagechase/ecs"
	"github.com/jmallory/pagechase/ecs/component"
)

// MovementSystem integrates ghosts toward their steer targets. Together
// with targeting (before it) and collision (after it) this is the per-frame
// ghost controller loop.
type MovementSystem struct {
	cfg Tuning
}

func NewMovementSystem(cfg Tuning) *MovementSystem {
	return &MovementSystem{cfg: cfg}
}

func (s *MovementSystem) SetTuning(cfg Tuning) {
	if s == nil {
		return
	}
	s.cfg = cfg
}

func (s *MovementSystem) Update(w *ecs.World, dt float64) {
	if s == nil || w == nil || dt <= 0 {
		return
	}

	for _, ent := range w.Query(
		component.GhostComponent.Kind(),
		component.TransformComponent.Kind(),
		component.SteerTargetComponent.Kind(),
	) {
		g, ok := ecs.Get(w, ent, component.GhostComponent)
		if !ok || g.Eaten() {
			continue
		}
		t, _ := ecs.Get(w, ent, component.TransformComponent)
		target, _ := ecs.Get(w, ent, component.SteerTargetComponent)

		speed := g.BaseSpeed
		if speed <= 0 {
			speed = s.cfg.GhostBaseSpeed
		}
		if target.SpeedBoost > 0 {
			speed *= target.SpeedBoost
		}
		if g.Frightened() {
			speed *= s.cfg.FrightenedSpeedScale
		}

		pos := cp.Vector{X: t.X, Y: t.Y}
		delta := cp.Vector{X: target.X, Y: target.Y}.Sub(pos)
		dist := delta.Length()
		if dist < 1e-9 {
			_ = ecs.Add(w, ent, component.VelocityComponent, component.Velocity{})
			continue
		}

		step := speed * dt
		if step > dist {
			step = dist
		}
		vel := delta.Mult(speed / dist)
		pos = pos.Add(delta.Mult(step / dist))

		_ = ecs.Add(w, ent, component.TransformComponent, component.Transform{X: pos.X, Y: pos.Y})
		_ = ecs.Add(w, ent, component.VelocityComponent, component.Velocity{X: vel.X, Y: vel.Y})
	}
}
