package system

import (
	"testing"

	"github.com/jmallory/pagechase/ecs"
	"github.com/jmallory/pagechase/ecs/component"
)

func spawnPack(t *testing.T, w *ecs.World) []ecs.Entity {
	t.Helper()
	personas := []component.Persona{
		component.PersonaChase,
		component.PersonaAmbush,
		component.PersonaPatrol,
		component.PersonaScatter,
	}
	ghosts := make([]ecs.Entity, len(personas))
	for i, p := range personas {
		ghosts[i] = spawnGhost(t, w, component.Ghost{
			Persona: p,
			Mode:    component.ModeChasing,
			Slot:    i,
		}, float64(100*i), 500)
	}
	return ghosts
}

func TestModeWaveFlip(t *testing.T) {
	cfg := DefaultTuning()
	w := ecs.NewWorld()
	ghosts := spawnPack(t, w)
	sys := NewModeSystem(cfg)

	sys.Update(w, cfg.ChaseWaveDuration-0.1)
	if sys.Scattering() {
		t.Fatal("wave flipped early")
	}

	sys.Update(w, 0.2)
	if !sys.Scattering() {
		t.Fatal("expected scatter wave after the chase wave expires")
	}
	for i, ghost := range ghosts {
		g, _ := ecs.Get(w, ghost, component.GhostComponent)
		want := component.ModeScattering
		if i == 0 {
			want = component.ModeChasing // the chase ghost never scatters
		}
		if g.Mode != want {
			t.Fatalf("slot %d: expected %v, got %v", i, want, g.Mode)
		}
	}

	events := w.Events().Drain()
	if len(events) != 1 || events[0].Type != ecs.EventModeChanged {
		t.Fatalf("expected one mode-changed event, got %v", events)
	}
	if data := events[0].Data.(ecs.ModeChangedEvent); !data.Scattering || data.Frightened {
		t.Fatalf("expected scatter wave event, got %+v", data)
	}

	sys.Update(w, cfg.ScatterWaveDuration+0.1)
	if sys.Scattering() {
		t.Fatal("expected chase wave after the scatter wave expires")
	}
}

func TestModeFrighten(t *testing.T) {
	cfg := DefaultTuning()
	w := ecs.NewWorld()
	ghosts := spawnPack(t, w)
	eaten := spawnGhost(t, w, component.Ghost{
		Persona: component.PersonaScatter,
		Mode:    component.ModeEaten,
		Slot:    3,
	}, 800, 500)

	sys := NewModeSystem(cfg)
	sys.Frighten(w)
	if !sys.FrightenedActive() {
		t.Fatal("frightened phase should be running")
	}

	for _, ghost := range ghosts {
		if g, _ := ecs.Get(w, ghost, component.GhostComponent); g.Mode != component.ModeFrightened {
			t.Fatalf("ghost %v: expected frightened, got %v", ghost, g.Mode)
		}
	}
	if g, _ := ecs.Get(w, eaten, component.GhostComponent); !g.Eaten() {
		t.Fatal("an eaten ghost is exempt from frightened mode")
	}

	events := w.Events().Drain()
	if len(events) != 1 || events[0].Type != ecs.EventModeChanged {
		t.Fatalf("expected one mode-changed event, got %v", events)
	}
	if data := events[0].Data.(ecs.ModeChangedEvent); !data.Frightened {
		t.Fatalf("expected frightened event, got %+v", data)
	}

	t.Run("phase_expiry_rejoins_wave", func(t *testing.T) {
		sys.Update(w, cfg.FrightenedDuration+0.1)
		if sys.FrightenedActive() {
			t.Fatal("frightened phase should have expired")
		}
		for _, ghost := range ghosts {
			if g, _ := ecs.Get(w, ghost, component.GhostComponent); g.Mode != component.ModeChasing {
				t.Fatalf("ghost %v: expected chasing after expiry, got %v", ghost, g.Mode)
			}
		}
	})

	t.Run("wave_timer_paused_while_frightened", func(t *testing.T) {
		sys.Frighten(w)
		w.Events().Drain()
		sys.Update(w, cfg.FrightenedDuration/2)
		if !sys.FrightenedActive() {
			t.Fatal("phase ended early")
		}
		if sys.Scattering() {
			t.Fatal("waves must not advance during a frightened phase")
		}
	})
}
