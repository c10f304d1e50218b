package system

import (
	"fmt"
	"math"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/jakecoffman/cp"

	"github.com/jmallory/pagechase/ecs/component"
	"github.com/jmallory/pagechase/prefabs"
)

// personaScript is a compiled tengo persona. The script sees the ghost and
// player state as globals and must assign target_x / target_y at top level:
//
//	math := import("math")
//	target_x := pacman_x + math.sin(clock*2) * 200
//	target_y := pacman_y
//
// Compilation happens once per script path; a broken script is remembered so
// the error is reported once, not every frame.
type personaScript struct {
	compiled *tengo.Compiled
	broken   bool
}

var scriptGlobals = []string{
	"ghost_x", "ghost_y",
	"pacman_x", "pacman_y",
	"pacman_vx", "pacman_vy",
	"clock",
	"dots_remaining", "dots_total",
}

func compilePersonaScript(path string) (*personaScript, error) {
	src, err := prefabs.LoadScript(path)
	if err != nil {
		return nil, fmt.Errorf("persona script: load %s: %w", path, err)
	}

	script := tengo.NewScript(src)
	for _, name := range scriptGlobals {
		_ = script.Add(name, 0.0)
	}
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("persona script: compile %s: %w", path, err)
	}
	return &personaScript{compiled: compiled}, nil
}

func (p *personaScript) run(pos cp.Vector, snap Snapshot) (cp.Vector, error) {
	c := p.compiled.Clone()
	_ = c.Set("ghost_x", pos.X)
	_ = c.Set("ghost_y", pos.Y)
	_ = c.Set("pacman_x", snap.PacmanPos.X)
	_ = c.Set("pacman_y", snap.PacmanPos.Y)
	_ = c.Set("pacman_vx", snap.PacmanVel.X)
	_ = c.Set("pacman_vy", snap.PacmanVel.Y)
	_ = c.Set("clock", snap.ScatterClock)
	_ = c.Set("dots_remaining", float64(snap.DotsRemaining))
	_ = c.Set("dots_total", float64(snap.TotalDots))

	if err := c.Run(); err != nil {
		return cp.Vector{}, err
	}

	tx := c.Get("target_x").Float()
	ty := c.Get("target_y").Float()
	if math.IsNaN(tx) || math.IsInf(tx, 0) || math.IsNaN(ty) || math.IsInf(ty, 0) {
		return cp.Vector{}, fmt.Errorf("script produced non-finite target")
	}
	return cp.Vector{X: tx, Y: ty}, nil
}

// scriptedTarget runs the ghost's persona script, degrading to a direct
// chase of the player on any load, compile, or runtime failure.
func (s *TargetingSystem) scriptedTarget(g *component.Ghost, pos cp.Vector, snap Snapshot) cp.Vector {
	if g == nil || g.ScriptPath == "" {
		return snap.PacmanPos
	}
	if s.scripts == nil {
		s.scripts = map[string]*personaScript{}
	}

	ps, ok := s.scripts[g.ScriptPath]
	if !ok {
		compiled, err := compilePersonaScript(g.ScriptPath)
		if err != nil {
			fmt.Printf("ai: persona script %s: %v\n", g.ScriptPath, err)
			s.scripts[g.ScriptPath] = &personaScript{broken: true}
			return snap.PacmanPos
		}
		ps = compiled
		s.scripts[g.ScriptPath] = ps
	}
	if ps.broken {
		return snap.PacmanPos
	}

	target, err := ps.run(pos, snap)
	if err != nil {
		fmt.Printf("ai: persona script %s: %v\n", g.ScriptPath, err)
		ps.broken = true
		return snap.PacmanPos
	}
	return target
}

// InvalidateScripts drops all cached script compilations, for hot reload.
func (s *TargetingSystem) InvalidateScripts() {
	if s == nil {
		return
	}
	s.scripts = map[string]*personaScript{}
}
