package system

import (
	"github.com/jmallory/pagechase/ecs"
	"github.com/jmallory/pagechase/ecs/component"
)

// ModeSystem drives the chase/scatter waves and the frightened timer. The
// chase ghost (slot 0) never scatters. Eaten ghosts are left alone; they
// pick up the current wave mode when they respawn.
type ModeSystem struct {
	cfg Tuning

	waveTimer       float64
	scattering      bool
	frightenedTimer float64
}

func NewModeSystem(cfg Tuning) *ModeSystem {
	return &ModeSystem{cfg: cfg, waveTimer: cfg.ChaseWaveDuration}
}

func (s *ModeSystem) SetTuning(cfg Tuning) {
	if s == nil {
		return
	}
	s.cfg = cfg
}

// Scattering reports whether the current wave is a scatter wave.
func (s *ModeSystem) Scattering() bool {
	return s != nil && s.scattering
}

// FrightenedActive reports whether a frightened phase is running.
func (s *ModeSystem) FrightenedActive() bool {
	return s != nil && s.frightenedTimer > 0
}

// Frighten starts a frightened phase: every ghost still in play turns
// frightened for the configured duration. Eaten ghosts are exempt; a ghost
// is never frightened and eaten at once.
func (s *ModeSystem) Frighten(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	s.frightenedTimer = s.cfg.FrightenedDuration
	ecs.ForEach(w, component.GhostComponent, func(e ecs.Entity, g component.Ghost) {
		if g.Eaten() {
			return
		}
		g.Mode = component.ModeFrightened
		_ = ecs.Add(w, e, component.GhostComponent, g)
	})
	w.Events().Push(ecs.Event{
		Type: ecs.EventModeChanged,
		Data: ecs.ModeChangedEvent{Scattering: s.scattering, Frightened: true},
	})
}

func (s *ModeSystem) Update(w *ecs.World, dt float64) {
	if s == nil || w == nil {
		return
	}

	if s.frightenedTimer > 0 {
		s.frightenedTimer -= dt
		if s.frightenedTimer > 0 {
			return
		}
		// phase over: frightened ghosts rejoin the current wave
		s.applyWave(w)
		return
	}

	s.waveTimer -= dt
	if s.waveTimer > 0 {
		return
	}
	s.scattering = !s.scattering
	if s.scattering {
		s.waveTimer = s.cfg.ScatterWaveDuration
	} else {
		s.waveTimer = s.cfg.ChaseWaveDuration
	}
	s.applyWave(w)
}

// applyWave stamps the wave mode onto every ghost still in play.
func (s *ModeSystem) applyWave(w *ecs.World) {
	ecs.ForEach(w, component.GhostComponent, func(e ecs.Entity, g component.Ghost) {
		if g.Eaten() {
			return
		}
		mode := component.ModeChasing
		if s.scattering && g.Slot != 0 {
			mode = component.ModeScattering
		}
		if g.Mode == mode {
			return
		}
		g.Mode = mode
		g.OrbitSet = false
		_ = ecs.Add(w, e, component.GhostComponent, g)
	})
	w.Events().Push(ecs.Event{
		Type: ecs.EventModeChanged,
		Data: ecs.ModeChangedEvent{Scattering: s.scattering},
	})
}
