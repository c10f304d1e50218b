package system

import (
	"math"

	"github.com/jakecoffman/cp"

	"github.com/jmallory/pagechase/common"
	"github.com/jmallory/pagechase/ecs"
	"github.com/jmallory/pagechase/ecs/component"
	"github.com/jmallory/pagechase/page"
)

// IndicatorSystem derives edge-clamped arrows for ghosts outside the
// viewport. Presentation only; nothing in the simulation reads the result.
type IndicatorSystem struct {
	cfg  Tuning
	view page.ViewportProvider
}

func NewIndicatorSystem(cfg Tuning, view page.ViewportProvider) *IndicatorSystem {
	return &IndicatorSystem{cfg: cfg, view: view}
}

func (s *IndicatorSystem) SetTuning(cfg Tuning) {
	if s == nil {
		return
	}
	s.cfg = cfg
}

func (s *IndicatorSystem) Update(w *ecs.World, dt float64) {
	if s == nil || w == nil || s.view == nil {
		return
	}
	vp := s.view.Viewport()

	for _, ent := range w.Query(component.GhostComponent.Kind(), component.TransformComponent.Kind()) {
		g, ok := ecs.Get(w, ent, component.GhostComponent)
		if !ok {
			continue
		}
		t, _ := ecs.Get(w, ent, component.TransformComponent)
		pos := cp.Vector{X: t.X, Y: t.Y}

		if g.Eaten() || vp.ContainsVect(pos) {
			_ = ecs.Add(w, ent, component.IndicatorComponent, component.Indicator{})
			continue
		}

		_ = ecs.Add(w, ent, component.IndicatorComponent, s.arrowFor(pos, vp, g.Frightened()))
	}
}

// arrowFor pins an arrow to the viewport edge facing the ghost. The edge is
// chosen by whether the center-to-ghost direction is more vertical or more
// horizontal (the 45 degree diagonals are the threshold); the arrow sits
// where the center-to-ghost ray leaves the viewport, clamped inside the
// configured inset.
func (s *IndicatorSystem) arrowFor(ghost cp.Vector, vp cp.BB, frightened bool) component.Indicator {
	center := vp.Center()
	dx := ghost.X - center.X
	dy := ghost.Y - center.Y
	angle := math.Atan2(dy, dx)
	inset := s.cfg.IndicatorInset

	ind := component.Indicator{Visible: true, Rotation: angle, Frightened: frightened}

	if math.Abs(dy) > math.Abs(dx) {
		if dy < 0 {
			ind.Edge = component.EdgeTop
			ind.Y = vp.B + inset
		} else {
			ind.Edge = component.EdgeBottom
			ind.Y = vp.T - inset
		}
		x := center.X
		if dy != 0 {
			x = center.X + dx*(ind.Y-center.Y)/dy
		}
		ind.X = common.Clamp(x, vp.L+inset, vp.R-inset)
		return ind
	}

	if dx < 0 {
		ind.Edge = component.EdgeLeft
		ind.X = vp.L + inset
	} else {
		ind.Edge = component.EdgeRight
		ind.X = vp.R - inset
	}
	y := center.Y
	if dx != 0 {
		y = center.Y + dy*(ind.X-center.X)/dx
	}
	ind.Y = common.Clamp(y, vp.B+inset, vp.T-inset)
	return ind
}
