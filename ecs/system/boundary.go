package system

import (
	"math"
	"math/rand"

	"github.com/jakecoffman/cp"

	"github.com/jmallory/pagechase/page"
)

// BoundaryType names the horizontal band a point crossed.
type BoundaryType string

const (
	BoundarySection BoundaryType = "section"
	BoundaryHeader  BoundaryType = "header"
	BoundaryFooter  BoundaryType = "footer"
)

// Boundary describes a crossed band and the y it sits at. It is produced
// and consumed within a single tick.
type Boundary struct {
	Type BoundaryType
	Y    float64
}

// CheckBoundary reports whether (x, y) is at or beyond a band of the play
// area. Solid sections are checked first, then the header/footer bands with
// the configured margin, the footer clamped to the page height. A nil
// provider degrades to margin-only bounds with no footer.
func CheckBoundary(x, y float64, bounds page.BoundsProvider, cfg Tuning) (Boundary, bool) {
	if bounds != nil {
		if sy, ok := bounds.SectionBoundary(x, y); ok {
			return Boundary{Type: BoundarySection, Y: sy}, true
		}
	}

	minY := cfg.BoundaryMargin
	maxY := math.MaxFloat64
	if bounds != nil {
		minY = bounds.HeaderBottom() + cfg.BoundaryMargin
		maxY = bounds.FooterTop() - cfg.BoundaryMargin
		if h := bounds.PageHeight(); maxY > h {
			maxY = h
		}
	}

	if y <= minY {
		return Boundary{Type: BoundaryHeader, Y: minY}, true
	}
	if y >= maxY {
		return Boundary{Type: BoundaryFooter, Y: maxY}, true
	}
	return Boundary{}, false
}

// safeSide returns the y a target should clamp to: the configured clearance
// on the playable side of the boundary relative to the ghost.
func safeSide(ghost cp.Vector, b Boundary, cfg Tuning) float64 {
	switch b.Type {
	case BoundaryHeader:
		return b.Y + cfg.BoundaryClamp
	case BoundaryFooter:
		return b.Y - cfg.BoundaryClamp
	default:
		// The section edge reported is the one nearer the ghost, so the
		// way out is past that edge, away from the band's interior.
		if ghost.Y < b.Y {
			return b.Y + cfg.BoundaryClamp
		}
		return b.Y - cfg.BoundaryClamp
	}
}

// AdjustTargetForBoundary corrects a non-frightened ghost's target when the
// ghost has run into a band. If the target itself crosses the same band its
// y clamps to the safe side; a target horizontally close to the ghost is
// additionally pushed further along its horizontal direction so the ghost
// routes around the obstruction instead of grinding against it.
func AdjustTargetForBoundary(ghost, target cp.Vector, b Boundary, bounds page.BoundsProvider, cfg Tuning) cp.Vector {
	if tb, ok := CheckBoundary(target.X, target.Y, bounds, cfg); ok && tb.Type == b.Type {
		target.Y = safeSide(ghost, b, cfg)
		if math.Abs(target.X-ghost.X) < cfg.BoundaryPushRange {
			dir := 1.0
			if target.X < ghost.X {
				dir = -1.0
			}
			target.X += dir * cfg.BoundaryPushDist
		}
	}
	return target
}

// FrightenedEscapeTarget picks an escape route for a frightened ghost
// blocked by a band: left/right horizontal escapes, an opposite-side
// vertical escape chosen by boundary type, and one randomized-angle escape.
// The first candidate clear of the blocking band wins; if every candidate
// re-crosses it the ghost falls back to fleeing horizontally away from the
// player. rng may be nil, which fixes the randomized candidate straight up.
func FrightenedEscapeTarget(ghost cp.Vector, b Boundary, pacman cp.Vector, bounds page.BoundsProvider, cfg Tuning, rng *rand.Rand) cp.Vector {
	vertical := -cfg.EscapeVertical
	switch b.Type {
	case BoundaryHeader:
		vertical = cfg.EscapeVertical
	case BoundaryFooter:
		vertical = -cfg.EscapeVertical
	default:
		if ghost.Y < b.Y {
			vertical = cfg.EscapeVertical
		} else {
			vertical = -cfg.EscapeVertical
		}
	}

	angle := -math.Pi / 2
	if rng != nil {
		angle = rng.Float64() * 2 * math.Pi
	}

	candidates := []cp.Vector{
		{X: ghost.X - cfg.EscapeHorizontal, Y: ghost.Y},
		{X: ghost.X + cfg.EscapeHorizontal, Y: ghost.Y},
		{X: ghost.X, Y: ghost.Y + vertical},
		ghost.Add(angleVector(angle, cfg.EscapeRandom)),
	}

	for _, cand := range candidates {
		cb, ok := CheckBoundary(cand.X, cand.Y, bounds, cfg)
		if !ok || cb.Type != b.Type || cb.Y != b.Y {
			return cand
		}
	}

	dir := 1.0
	if ghost.X < pacman.X {
		dir = -1.0
	}
	return cp.Vector{X: ghost.X + dir*cfg.EscapeHorizontal, Y: ghost.Y}
}
