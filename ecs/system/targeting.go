package system

import (
	"math"
	"math/rand"

	"github.com/jakecoffman/cp"

	"github.com/jmallory/pagechase/common"
	"github.com/jmallory/pagechase/ecs/component"
)

// Snapshot is the immutable-per-call game state bundle handed to the persona
// target functions. It is rebuilt from the world every tick.
type Snapshot struct {
	PacmanPos   cp.Vector
	PacmanVel   cp.Vector
	PacmanKnown bool

	DotsRemaining int
	TotalDots     int

	// ScatterClock is accumulated simulation time, driving the ambush orbit
	// phase and the patrol side swap.
	ScatterClock float64
	// Dt is this tick's duration in seconds.
	Dt float64

	Viewport cp.BB
}

func angleVector(angle, length float64) cp.Vector {
	return cp.Vector{X: math.Cos(angle) * length, Y: math.Sin(angle) * length}
}

// ChaseTarget is the aggressive pursuer: it leads the player by a fixed
// prediction time and escalates speed as the dots run out. The returned
// multiplier is 1 outside the boost tiers. With a small probability the
// target is perturbed by uniform noise so a player can't exploit a fully
// deterministic pursuer; rng may be nil, which disables the noise.
func ChaseTarget(pos cp.Vector, snap Snapshot, cfg Tuning, rng *rand.Rand) (cp.Vector, float64) {
	target := snap.PacmanPos.Add(snap.PacmanVel.Mult(cfg.ChasePredictTime))

	boost := 1.0
	if snap.TotalDots > 0 {
		frac := float64(snap.DotsRemaining) / float64(snap.TotalDots)
		switch {
		case frac < cfg.ChaseTier1Frac:
			boost = cfg.ChaseTier1Boost
		case frac < cfg.ChaseTier2Frac:
			boost = cfg.ChaseTier2Boost
		}
	}

	if rng != nil && rng.Float64() < cfg.ChaseNoiseChance {
		target.X += (rng.Float64()*2 - 1) * cfg.ChaseNoiseRange
		target.Y += (rng.Float64()*2 - 1) * cfg.ChaseNoiseRange
	}
	return target, boost
}

// AmbushTarget is the predictive flanker: it aims a fixed distance to the
// side of where the player will be in one second. Against a stationary
// player it orbits instead, phase driven by the scatter clock.
func AmbushTarget(pos cp.Vector, snap Snapshot, cfg Tuning) cp.Vector {
	if snap.PacmanVel.Length() > 0 {
		predicted := snap.PacmanPos.Add(snap.PacmanVel.Mult(cfg.AmbushPredictTime))
		approach := math.Atan2(predicted.Y-pos.Y, predicted.X-pos.X)
		return predicted.Add(angleVector(approach+math.Pi/2, cfg.AmbushFlankDist))
	}
	orbit := snap.ScatterClock*cfg.AmbushOrbitRate + math.Pi/2
	return snap.PacmanPos.Add(angleVector(orbit, cfg.AmbushOrbitRadius))
}

// PatrolTarget is the pincer flanker: it takes the side of the player
// opposite-perpendicular to the chase ghost's approach, swapping sides on a
// fixed cadence. chasePos is the slot-0 ghost's position; when nil the
// persona degrades to targeting the player directly, which makes it behave
// as a plain chaser until a chase ghost exists again.
func PatrolTarget(pos cp.Vector, snap Snapshot, chasePos *cp.Vector, cfg Tuning) cp.Vector {
	if chasePos == nil {
		return snap.PacmanPos
	}

	approach := math.Atan2(snap.PacmanPos.Y-chasePos.Y, snap.PacmanPos.X-chasePos.X)
	side := 1.0
	if cfg.PatrolSwapPeriod > 0 && int(math.Floor(snap.ScatterClock/cfg.PatrolSwapPeriod))%2 == 1 {
		side = -1.0
	}
	target := snap.PacmanPos.Add(angleVector(approach+side*math.Pi/2, cfg.PatrolFlankDist))

	if math.Abs(pos.Y-snap.PacmanPos.Y) < cfg.PatrolVerticalRange {
		target.Y = snap.PacmanPos.Y - cfg.PatrolVerticalLift
	}
	return target
}

// ScatterZoneTarget is the unpredictable zone controller with three
// distance regimes: retreat-and-block when the player is close, direct
// close-in when far, and a steady orbit in between. The orbit angle lives on
// the ghost, lazily initialized to the ghost-to-player angle, and advances
// monotonically while the ghost stays in the orbit regime.
func ScatterZoneTarget(g *component.Ghost, pos cp.Vector, snap Snapshot, cfg Tuning) cp.Vector {
	delta := pos.Sub(snap.PacmanPos)
	dist := delta.Length()

	switch {
	case dist < cfg.ScatterNearDist:
		retreat := math.Atan2(delta.Y, delta.X)
		osc := math.Sin(snap.ScatterClock*cfg.ScatterOscRate) * cfg.ScatterOscDegrees * math.Pi / 180
		return snap.PacmanPos.Add(angleVector(retreat+osc, cfg.ScatterRetreatRadius))
	case dist > cfg.ScatterFarDist:
		return snap.PacmanPos
	default:
		if g != nil {
			if !g.OrbitSet {
				g.OrbitAngle = math.Atan2(snap.PacmanPos.Y-pos.Y, snap.PacmanPos.X-pos.X)
				g.OrbitSet = true
			}
			g.OrbitAngle += cfg.ScatterOrbitRate * snap.Dt
			return snap.PacmanPos.Add(angleVector(g.OrbitAngle, cfg.ScatterOrbitRadius))
		}
		return snap.PacmanPos.Add(angleVector(0, cfg.ScatterOrbitRadius))
	}
}

// FrightenedTarget pushes the ghost a fixed distance directly away from the
// player, with no smoothing.
func FrightenedTarget(pos cp.Vector, pacman cp.Vector, cfg Tuning) cp.Vector {
	away := math.Atan2(pos.Y-pacman.Y, pos.X-pacman.X)
	return pos.Add(angleVector(away, cfg.FrightenedFleeDist))
}

// ScatterCornerTarget maps a ghost slot to one of four viewport corner
// targets whose vertical placement tracks the player's y. Slots outside
// [0,3] clamp to the nearest corner. Slot 0 is defined for completeness even
// though the chase ghost never scatters. When the player position is
// unknown the viewport center is returned.
func ScatterCornerTarget(slot int, snap Snapshot, cfg Tuning) cp.Vector {
	if !snap.PacmanKnown {
		return snap.Viewport.Center()
	}

	slot = common.ClampInt(slot, 0, 3)
	x := snap.Viewport.L + cfg.CornerInset
	if slot%2 == 1 {
		x = snap.Viewport.R - cfg.CornerInset
	}
	y := snap.PacmanPos.Y - cfg.CornerOffsetY
	if slot >= 2 {
		y = snap.PacmanPos.Y + cfg.CornerOffsetY
	}
	return cp.Vector{X: x, Y: y}
}
