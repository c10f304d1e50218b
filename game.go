package main

import (
	"fmt"
	"image/color"
	"log"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/jmallory/pagechase/ecs"
	"github.com/jmallory/pagechase/ecs/component"
	"github.com/jmallory/pagechase/ecs/system"
	"github.com/jmallory/pagechase/page"
	"github.com/jmallory/pagechase/prefabs"
)

const (
	baseWidth  = 1280
	baseHeight = 720

	tickDt      = 1.0 / 60.0
	playerSpeed = 240.0
	dotRadius   = 16.0
)

type dot struct {
	x, y  float64
	power bool
	eaten bool
}

type Game struct {
	frames int

	world  *ecs.World
	layout *page.Layout
	tuning system.Tuning

	targeting  *system.TargetingSystem
	movement   *system.MovementSystem
	collision  *system.CollisionSystem
	respawn    *system.RespawnSystem
	modes      *system.ModeSystem
	indicators *system.IndicatorSystem

	player  ecs.Entity
	pageEnt ecs.Entity
	ghosts  []ecs.Entity

	dots  []dot
	score int
	lives int

	paused   bool
	gameOver bool

	watcher *prefabs.Watcher
}

func NewGame(pageName string) *Game {
	layout, err := page.LoadLayout(pageName)
	if err != nil {
		log.Printf("failed to load page %s: %v", pageName, err)
		layout = page.NewLayout(page.DefaultLayoutSpec())
	}
	layout.SetViewportSize(baseWidth, baseHeight)

	tuning, err := system.LoadTuning("tuning.yaml")
	if err != nil {
		log.Printf("using default tuning: %v", err)
	}

	g := &Game{
		layout: layout,
		tuning: tuning,
		lives:  3,
	}
	g.buildWorld()

	if watcher, err := prefabs.NewWatcher("prefabs", "prefabs/scripts"); err == nil {
		g.watcher = watcher
	}

	return g
}

func (g *Game) buildWorld() {
	rng := rand.New(rand.NewSource(42))
	w := ecs.NewWorld()

	g.respawn = system.NewRespawnSystem()
	g.modes = system.NewModeSystem(g.tuning)
	g.respawn.SetWaveSource(g.modes.Scattering)
	g.targeting = system.NewTargetingSystem(g.tuning, g.layout, g.layout, rng)
	g.movement = system.NewMovementSystem(g.tuning)
	g.collision = system.NewCollisionSystem(g.tuning, g.respawn)
	g.indicators = system.NewIndicatorSystem(g.tuning, g.layout)

	w.AddSystem(g.modes)
	w.AddSystem(g.targeting)
	w.AddSystem(g.movement)
	w.AddSystem(g.collision)
	w.AddSystem(g.respawn)
	w.AddSystem(g.indicators)

	spec := g.layout.Spec()
	midX := spec.Width / 2
	startY := g.layout.HeaderBottom() + 200

	g.player = w.CreateEntity()
	_ = ecs.Add(w, g.player, component.PlayerTagComponent, component.PlayerTag{})
	_ = ecs.Add(w, g.player, component.TransformComponent, component.Transform{X: midX, Y: startY})
	_ = ecs.Add(w, g.player, component.VelocityComponent, component.Velocity{})
	_ = ecs.Add(w, g.player, component.ActiveEffectsComponent, component.ActiveEffects{})

	personas := []component.Persona{
		component.PersonaChase,
		component.PersonaAmbush,
		component.PersonaPatrol,
		component.PersonaScatter,
		component.PersonaScripted,
	}
	g.ghosts = g.ghosts[:0]
	for slot, persona := range personas {
		homeX := midX + float64(slot-2)*120
		homeY := g.layout.FooterTop() - 200
		ghost := component.Ghost{
			Persona: persona,
			Mode:    component.ModeChasing,
			Slot:    slot,
			HomeX:   homeX,
			HomeY:   homeY,
		}
		if persona == component.PersonaScripted {
			ghost.ScriptPath = "zigzag.tengo"
		}
		e := w.CreateEntity()
		_ = ecs.Add(w, e, component.GhostComponent, ghost)
		_ = ecs.Add(w, e, component.TransformComponent, component.Transform{X: homeX, Y: homeY})
		_ = ecs.Add(w, e, component.VelocityComponent, component.Velocity{})
		g.ghosts = append(g.ghosts, e)
	}

	g.layDots(spec)

	g.pageEnt = w.CreateEntity()
	_ = ecs.Add(w, g.pageEnt, component.DotCounterComponent, component.DotCounter{
		Remaining: len(g.dots),
		Total:     len(g.dots),
	})

	g.world = w
}

// layDots spreads dots in rows between the header and footer, skipping
// solid sections. Every 20th dot is a power dot.
func (g *Game) layDots(spec page.LayoutSpec) {
	g.dots = g.dots[:0]
	minY := g.layout.HeaderBottom() + 2*g.tuning.BoundaryMargin
	maxY := g.layout.FooterTop() - 2*g.tuning.BoundaryMargin
	i := 0
	for y := minY; y <= maxY; y += 160 {
		for x := 120.0; x <= spec.Width-120; x += 140 {
			if _, solid := g.layout.SectionBoundary(x, y); solid {
				continue
			}
			g.dots = append(g.dots, dot{x: x, y: y, power: i%20 == 19})
			i++
		}
	}
}

func (g *Game) restart() {
	g.respawn.Clear()
	g.score = 0
	g.lives = 3
	g.gameOver = false
	g.buildWorld()
}

func (g *Game) Update() error {
	g.frames++
	g.drainWatcher()

	if ebiten.IsKeyPressed(ebiten.KeyEscape) && g.frames%10 == 0 {
		g.paused = !g.paused
	}
	if g.paused {
		g.updatePauseUI()
		return nil
	}
	if g.gameOver {
		if ebiten.IsKeyPressed(ebiten.KeyEnter) {
			g.restart()
		}
		return nil
	}

	g.updatePlayer()
	g.eatDots()
	g.world.Update(tickDt)
	g.applyEvents()
	g.followPlayer()
	return nil
}

func (g *Game) updatePlayer() {
	var vx, vy float64
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		vx -= playerSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		vx += playerSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		vy -= playerSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		vy += playerSpeed
	}

	t, _ := ecs.Get(g.world, g.player, component.TransformComponent)
	t.X += vx * tickDt
	t.Y += vy * tickDt

	spec := g.layout.Spec()
	if t.X < 20 {
		t.X = 20
	}
	if t.X > spec.Width-20 {
		t.X = spec.Width - 20
	}
	minY := g.layout.HeaderBottom() + 20
	maxY := g.layout.FooterTop() - 20
	if t.Y < minY {
		t.Y = minY
	}
	if t.Y > maxY {
		t.Y = maxY
	}

	_ = ecs.Add(g.world, g.player, component.TransformComponent, t)
	_ = ecs.Add(g.world, g.player, component.VelocityComponent, component.Velocity{X: vx, Y: vy})
}

func (g *Game) eatDots() {
	t, _ := ecs.Get(g.world, g.player, component.TransformComponent)
	remaining := 0
	for i := range g.dots {
		d := &g.dots[i]
		if d.eaten {
			continue
		}
		if math.Hypot(t.X-d.x, t.Y-d.y) < dotRadius {
			d.eaten = true
			if d.power {
				g.score += 50
				g.modes.Frighten(g.world)
				g.collision.ResetCombo()
			} else {
				g.score += 10
			}
			continue
		}
		remaining++
	}

	dc, _ := ecs.Get(g.world, g.pageEnt, component.DotCounterComponent)
	dc.Remaining = remaining
	_ = ecs.Add(g.world, g.pageEnt, component.DotCounterComponent, dc)

	if remaining == 0 {
		g.gameOver = true
	}
}

func (g *Game) applyEvents() {
	for _, evt := range g.world.Events().Drain() {
		switch evt.Type {
		case ecs.EventGhostEaten:
			data, ok := evt.Data.(ecs.GhostEatenEvent)
			if !ok {
				continue
			}
			points := 200 << (data.Combo - 1)
			if points > 1600 {
				points = 1600
			}
			g.score += points
		case ecs.EventLifeLost:
			g.lives--
			g.resetPositions()
			if g.lives <= 0 {
				g.gameOver = true
			}
		}
	}
}

// resetPositions sends everyone home after a caught player, dropping any
// pending respawns so stale deadlines cannot touch the fresh ghosts.
func (g *Game) resetPositions() {
	g.respawn.Clear()

	spec := g.layout.Spec()
	_ = ecs.Add(g.world, g.player, component.TransformComponent, component.Transform{
		X: spec.Width / 2,
		Y: g.layout.HeaderBottom() + 200,
	})
	_ = ecs.Add(g.world, g.player, component.VelocityComponent, component.Velocity{})

	for _, e := range g.ghosts {
		gh, ok := ecs.Get(g.world, e, component.GhostComponent)
		if !ok {
			continue
		}
		gh.Mode = component.ModeChasing
		gh.OrbitSet = false
		_ = ecs.Add(g.world, e, component.GhostComponent, gh)
		_ = ecs.Add(g.world, e, component.TransformComponent, component.Transform{X: gh.HomeX, Y: gh.HomeY})
		_ = ecs.Add(g.world, e, component.VelocityComponent, component.Velocity{})
	}
}

func (g *Game) followPlayer() {
	t, _ := ecs.Get(g.world, g.player, component.TransformComponent)
	g.layout.ScrollTo(t.Y - baseHeight/2)
}

func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	reload := false
	for {
		select {
		case _, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			reload = true
		default:
			if reload {
				g.reloadTuning()
			}
			return
		}
	}
}

func (g *Game) reloadTuning() {
	tuning, err := system.LoadTuning("tuning.yaml")
	if err != nil {
		log.Printf("tuning reload failed: %v", err)
		return
	}
	g.tuning = tuning
	g.targeting.SetTuning(tuning)
	g.movement.SetTuning(tuning)
	g.collision.SetTuning(tuning)
	g.modes.SetTuning(tuning)
	g.indicators.SetTuning(tuning)
	g.targeting.InvalidateScripts()
	log.Printf("tuning reloaded")
}

var personaColors = map[component.Persona]color.NRGBA{
	component.PersonaChase:    {R: 0xff, G: 0x40, B: 0x40, A: 0xff},
	component.PersonaAmbush:   {R: 0xff, G: 0x9c, B: 0xd9, A: 0xff},
	component.PersonaPatrol:   {R: 0x40, G: 0xd0, B: 0xe0, A: 0xff},
	component.PersonaScatter:  {R: 0xff, G: 0xa0, B: 0x20, A: 0xff},
	component.PersonaScripted: {R: 0x90, G: 0xff, B: 0x60, A: 0xff},
}

func (g *Game) Draw(screen *ebiten.Image) {
	scroll := g.layout.ScrollY()
	spec := g.layout.Spec()

	// page bands
	screen.Fill(color.NRGBA{R: 0x10, G: 0x10, B: 0x18, A: 0xff})
	drawBand := func(y0, y1 float64, c color.NRGBA) {
		vector.DrawFilledRect(screen, 0, float32(y0-scroll), float32(spec.Width), float32(y1-y0), c, false)
	}
	drawBand(0, g.layout.HeaderBottom(), color.NRGBA{R: 0x22, G: 0x22, B: 0x3a, A: 0xff})
	drawBand(g.layout.FooterTop(), spec.Height, color.NRGBA{R: 0x22, G: 0x22, B: 0x3a, A: 0xff})
	for _, s := range spec.Sections {
		c := color.NRGBA{R: 0x1a, G: 0x1a, B: 0x2c, A: 0xff}
		if s.Solid {
			c = color.NRGBA{R: 0x2e, G: 0x2e, B: 0x48, A: 0xff}
		}
		vector.DrawFilledRect(screen, float32(s.X), float32(s.Y-scroll), float32(s.Width), float32(s.Height), c, false)
	}

	// dots
	for _, d := range g.dots {
		if d.eaten {
			continue
		}
		r := float32(3)
		c := color.NRGBA{R: 0xe8, G: 0xd8, B: 0xa0, A: 0xff}
		if d.power {
			r = 7
			c = color.NRGBA{R: 0xff, G: 0xf0, B: 0x60, A: 0xff}
		}
		vector.DrawFilledCircle(screen, float32(d.x), float32(d.y-scroll), r, c, true)
	}

	// player
	if t, ok := ecs.Get(g.world, g.player, component.TransformComponent); ok {
		vector.DrawFilledCircle(screen, float32(t.X), float32(t.Y-scroll), 14, color.NRGBA{R: 0xff, G: 0xe0, B: 0x00, A: 0xff}, true)
	}

	// ghosts
	for _, e := range g.ghosts {
		gh, ok := ecs.Get(g.world, e, component.GhostComponent)
		if !ok || gh.Eaten() {
			continue
		}
		t, _ := ecs.Get(g.world, e, component.TransformComponent)
		c := personaColors[gh.Persona]
		if gh.Frightened() {
			c = color.NRGBA{R: 0x30, G: 0x30, B: 0xff, A: 0xff}
		}
		vector.DrawFilledCircle(screen, float32(t.X), float32(t.Y-scroll), 13, c, true)
	}

	g.drawIndicators(screen)

	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"Score: %d    Lives: %d    Dots: %d    FPS: %.1f",
		g.score, g.lives, g.dotsRemaining(), ebiten.ActualFPS(),
	))

	if g.paused {
		g.drawPauseUI(screen)
	}
	if g.gameOver {
		ebitenutil.DebugPrintAt(screen, "GAME OVER - press Enter to restart", baseWidth/2-120, baseHeight/2)
	}
}

// drawIndicators draws the off-screen arrows as small triangles pointing
// along their computed rotation.
func (g *Game) drawIndicators(screen *ebiten.Image) {
	scroll := g.layout.ScrollY()
	for _, e := range g.ghosts {
		ind, ok := ecs.Get(g.world, e, component.IndicatorComponent)
		if !ok || !ind.Visible {
			continue
		}
		gh, _ := ecs.Get(g.world, e, component.GhostComponent)
		c := personaColors[gh.Persona]
		if ind.Frightened {
			c = color.NRGBA{R: 0x30, G: 0x30, B: 0xff, A: 0xff}
		}

		cx := float32(ind.X)
		cy := float32(ind.Y - scroll)
		var path vector.Path
		for i := 0; i < 3; i++ {
			a := ind.Rotation + float64(i)*2*math.Pi/3
			px := cx + float32(math.Cos(a))*10
			py := cy + float32(math.Sin(a))*10
			if i == 0 {
				path.MoveTo(px, py)
			} else {
				path.LineTo(px, py)
			}
		}
		path.Close()
		vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
		for i := range vs {
			vs[i].ColorR = float32(c.R) / 0xff
			vs[i].ColorG = float32(c.G) / 0xff
			vs[i].ColorB = float32(c.B) / 0xff
			vs[i].ColorA = 1
		}
		screen.DrawTriangles(vs, is, whitePixel, &ebiten.DrawTrianglesOptions{AntiAlias: true})
	}
}

var whitePixel = func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img.SubImage(img.Bounds().Inset(1)).(*ebiten.Image)
}()

func (g *Game) dotsRemaining() int {
	dc, _ := ecs.Get(g.world, g.pageEnt, component.DotCounterComponent)
	return dc.Remaining
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}
