package system

import (
	"math"
	"testing"

	"github.com/jmallory/pagechase/ecs"
	"github.com/jmallory/pagechase/ecs/component"
)

func TestMovementStepsTowardTarget(t *testing.T) {
	cfg := DefaultTuning()
	w := ecs.NewWorld()
	ghost := spawnGhost(t, w, component.Ghost{Mode: component.ModeChasing, BaseSpeed: 100}, 0, 0)
	if err := ecs.Add(w, ghost, component.SteerTargetComponent, component.SteerTarget{X: 1000, Y: 0, SpeedBoost: 1}); err != nil {
		t.Fatalf("add steer target: %v", err)
	}

	sys := NewMovementSystem(cfg)
	sys.Update(w, 0.5)

	tr, _ := ecs.Get(w, ghost, component.TransformComponent)
	if math.Abs(tr.X-50) > 1e-9 || tr.Y != 0 {
		t.Fatalf("expected (50, 0), got (%v, %v)", tr.X, tr.Y)
	}
	vel, _ := ecs.Get(w, ghost, component.VelocityComponent)
	if math.Abs(vel.X-100) > 1e-9 || vel.Y != 0 {
		t.Fatalf("expected velocity (100, 0), got (%v, %v)", vel.X, vel.Y)
	}
}

func TestMovementDoesNotOvershoot(t *testing.T) {
	cfg := DefaultTuning()
	w := ecs.NewWorld()
	ghost := spawnGhost(t, w, component.Ghost{Mode: component.ModeChasing, BaseSpeed: 1000}, 0, 0)
	_ = ecs.Add(w, ghost, component.SteerTargetComponent, component.SteerTarget{X: 10, Y: 0, SpeedBoost: 1})

	sys := NewMovementSystem(cfg)
	sys.Update(w, 1)

	tr, _ := ecs.Get(w, ghost, component.TransformComponent)
	if tr.X != 10 || tr.Y != 0 {
		t.Fatalf("expected to stop on the target, got (%v, %v)", tr.X, tr.Y)
	}
}

func TestMovementSpeedModel(t *testing.T) {
	cfg := DefaultTuning()

	cases := []struct {
		name  string
		ghost component.Ghost
		boost float64
		want  float64 // expected x after one second
	}{
		{"boosted", component.Ghost{Mode: component.ModeChasing, BaseSpeed: 100}, 1.3, 130},
		{"frightened_halved", component.Ghost{Mode: component.ModeFrightened, BaseSpeed: 100}, 1, 100 * cfg.FrightenedSpeedScale},
		{"default_base_speed", component.Ghost{Mode: component.ModeChasing}, 1, cfg.GhostBaseSpeed},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := ecs.NewWorld()
			ghost := spawnGhost(t, w, c.ghost, 0, 0)
			_ = ecs.Add(w, ghost, component.SteerTargetComponent, component.SteerTarget{X: 100000, Y: 0, SpeedBoost: c.boost})

			NewMovementSystem(cfg).Update(w, 1)

			tr, _ := ecs.Get(w, ghost, component.TransformComponent)
			if math.Abs(tr.X-c.want) > 1e-9 {
				t.Fatalf("expected x %v, got %v", c.want, tr.X)
			}
		})
	}
}

func TestMovementLeavesEatenGhostsAlone(t *testing.T) {
	cfg := DefaultTuning()
	w := ecs.NewWorld()
	ghost := spawnGhost(t, w, component.Ghost{Mode: component.ModeEaten, BaseSpeed: 100}, 5, 5)
	_ = ecs.Add(w, ghost, component.SteerTargetComponent, component.SteerTarget{X: 500, Y: 500, SpeedBoost: 1})

	NewMovementSystem(cfg).Update(w, 1)

	tr, _ := ecs.Get(w, ghost, component.TransformComponent)
	if tr.X != 5 || tr.Y != 5 {
		t.Fatalf("eaten ghost moved to (%v, %v)", tr.X, tr.Y)
	}
}
