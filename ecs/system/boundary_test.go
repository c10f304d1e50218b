package system

import (
	"testing"

	"github.com/jakecoffman/cp"
)

// stubBounds is a fixed-geometry page for boundary tests: header bottom at
// 90, footer top at 2280, page height 2400, with an optional solid section
// band reported for any x.
type stubBounds struct {
	headerBottom float64
	footerTop    float64
	pageHeight   float64

	sectionTop    float64
	sectionBottom float64
	hasSection    bool

	// pin reports the same section edge for every query, blocking all
	// escape candidates at once.
	pin  bool
	pinY float64
}

func (s *stubBounds) HeaderBottom() float64 { return s.headerBottom }
func (s *stubBounds) FooterTop() float64    { return s.footerTop }
func (s *stubBounds) PageHeight() float64   { return s.pageHeight }

func (s *stubBounds) SectionBoundary(x, y float64) (float64, bool) {
	if s.pin {
		return s.pinY, true
	}
	if !s.hasSection || y < s.sectionTop || y > s.sectionBottom {
		return 0, false
	}
	if y-s.sectionTop < s.sectionBottom-y {
		return s.sectionTop, true
	}
	return s.sectionBottom, true
}

func testBounds() *stubBounds {
	return &stubBounds{headerBottom: 90, footerTop: 2280, pageHeight: 2400}
}

func TestCheckBoundary(t *testing.T) {
	cfg := DefaultTuning()

	cases := []struct {
		name     string
		bounds   *stubBounds
		y        float64
		wantType BoundaryType
		wantY    float64
		wantHit  bool
	}{
		{"open_middle", testBounds(), 1000, "", 0, false},
		{"at_header_margin", testBounds(), 120, BoundaryHeader, 120, true},
		{"inside_header", testBounds(), 40, BoundaryHeader, 120, true},
		{"at_footer_margin", testBounds(), 2250, BoundaryFooter, 2250, true},
		{"below_page", testBounds(), 2600, BoundaryFooter, 2250, true},
		{"just_clear_of_header", testBounds(), 120.5, "", 0, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b, hit := CheckBoundary(400, c.y, c.bounds, cfg)
			if hit != c.wantHit {
				t.Fatalf("hit = %v, want %v", hit, c.wantHit)
			}
			if !hit {
				return
			}
			if b.Type != c.wantType || b.Y != c.wantY {
				t.Fatalf("got %v at %v, want %v at %v", b.Type, b.Y, c.wantType, c.wantY)
			}
		})
	}

	t.Run("footer_clamps_to_page_height", func(t *testing.T) {
		bounds := testBounds()
		bounds.footerTop = 2500 // footerTop - margin would exceed the page
		b, hit := CheckBoundary(400, 2450, bounds, cfg)
		if !hit || b.Type != BoundaryFooter || b.Y != bounds.pageHeight {
			t.Fatalf("expected footer at page height, got %+v hit=%v", b, hit)
		}
	})

	t.Run("section_takes_priority", func(t *testing.T) {
		bounds := testBounds()
		bounds.hasSection = true
		bounds.sectionTop = 60
		bounds.sectionBottom = 140
		// y 80 is inside both the header margin band and the section;
		// the section callback must win.
		b, hit := CheckBoundary(400, 80, bounds, cfg)
		if !hit || b.Type != BoundarySection || b.Y != 60 {
			t.Fatalf("expected section at 60, got %+v hit=%v", b, hit)
		}
	})

	t.Run("nil_provider_header_only", func(t *testing.T) {
		if b, hit := CheckBoundary(400, cfg.BoundaryMargin, nil, cfg); !hit || b.Type != BoundaryHeader {
			t.Fatalf("expected header at margin, got %+v hit=%v", b, hit)
		}
		if _, hit := CheckBoundary(400, 1e9, nil, cfg); hit {
			t.Fatal("nil provider must not report a footer")
		}
	})
}

func TestAdjustTargetForBoundary(t *testing.T) {
	cfg := DefaultTuning()
	bounds := testBounds()

	t.Run("clear_target_untouched", func(t *testing.T) {
		ghost := cp.Vector{X: 400, Y: 100}
		target := cp.Vector{X: 900, Y: 1000}
		b, _ := CheckBoundary(ghost.X, ghost.Y, bounds, cfg)
		if got := AdjustTargetForBoundary(ghost, target, b, bounds, cfg); got != target {
			t.Fatalf("expected unchanged target, got %v", got)
		}
	})

	t.Run("header_target_clamps_and_pushes", func(t *testing.T) {
		ghost := cp.Vector{X: 400, Y: 100}
		target := cp.Vector{X: 450, Y: 30}
		b, _ := CheckBoundary(ghost.X, ghost.Y, bounds, cfg)

		got := AdjustTargetForBoundary(ghost, target, b, bounds, cfg)
		if want := b.Y + cfg.BoundaryClamp; got.Y != want {
			t.Fatalf("expected y clamped to %v, got %v", want, got.Y)
		}
		if want := target.X + cfg.BoundaryPushDist; got.X != want {
			t.Fatalf("expected horizontal push to %v, got %v", want, got.X)
		}
	})

	t.Run("distant_target_clamps_without_push", func(t *testing.T) {
		ghost := cp.Vector{X: 400, Y: 100}
		target := cp.Vector{X: 900, Y: 30}
		b, _ := CheckBoundary(ghost.X, ghost.Y, bounds, cfg)

		got := AdjustTargetForBoundary(ghost, target, b, bounds, cfg)
		if got.X != target.X {
			t.Fatalf("target far from ghost must keep its x, got %v", got.X)
		}
		if got.Y != b.Y+cfg.BoundaryClamp {
			t.Fatalf("expected clamped y, got %v", got.Y)
		}
	})

	t.Run("section_clamps_past_the_near_edge", func(t *testing.T) {
		bounds := testBounds()
		bounds.hasSection = true
		bounds.sectionTop = 980
		bounds.sectionBottom = 1120

		ghost := cp.Vector{X: 400, Y: 985}
		target := cp.Vector{X: 900, Y: 1115}
		b, hit := CheckBoundary(ghost.X, ghost.Y, bounds, cfg)
		if !hit || b.Type != BoundarySection {
			t.Fatalf("setup: expected section hit, got %+v", b)
		}

		got := AdjustTargetForBoundary(ghost, target, b, bounds, cfg)
		if want := b.Y - cfg.BoundaryClamp; got.Y != want {
			t.Fatalf("ghost near the top edge should clamp outside it: want %v, got %v", want, got.Y)
		}
	})
}

func TestFrightenedEscapeTarget(t *testing.T) {
	cfg := DefaultTuning()
	pacman := cp.Vector{X: 600, Y: 600}

	t.Run("header_escapes_downward", func(t *testing.T) {
		// Horizontal candidates keep the ghost's y and stay inside the
		// header band, so the downward vertical candidate is the first
		// clear one.
		bounds := testBounds()
		ghost := cp.Vector{X: 400, Y: 100}
		b, _ := CheckBoundary(ghost.X, ghost.Y, bounds, cfg)

		got := FrightenedEscapeTarget(ghost, b, pacman, bounds, cfg, nil)
		want := cp.Vector{X: ghost.X, Y: ghost.Y + cfg.EscapeVertical}
		if got != want {
			t.Fatalf("expected downward vertical escape %v, got %v", want, got)
		}
	})

	t.Run("section_bottom_edge_escapes_down", func(t *testing.T) {
		// The ghost sits nearer the band's bottom edge, so the escape
		// heads further down, out of the band.
		bounds := testBounds()
		bounds.hasSection = true
		bounds.sectionTop = 0
		bounds.sectionBottom = 160

		ghost := cp.Vector{X: 400, Y: 150}
		b, hit := CheckBoundary(ghost.X, ghost.Y, bounds, cfg)
		if !hit || b.Type != BoundarySection {
			t.Fatalf("setup: expected section hit, got %+v", b)
		}

		got := FrightenedEscapeTarget(ghost, b, pacman, bounds, cfg, nil)
		want := cp.Vector{X: ghost.X, Y: ghost.Y + cfg.EscapeVertical}
		if got != want {
			t.Fatalf("expected downward vertical escape %v, got %v", want, got)
		}
	})

	t.Run("footer_vertical_escape_goes_up", func(t *testing.T) {
		bounds := testBounds()
		wideFooter := *bounds
		ghost := cp.Vector{X: 400, Y: 2300}
		b, _ := CheckBoundary(ghost.X, ghost.Y, &wideFooter, cfg)
		if b.Type != BoundaryFooter {
			t.Fatalf("setup: expected footer hit, got %+v", b)
		}

		vertical := cp.Vector{X: ghost.X, Y: ghost.Y - cfg.EscapeVertical}
		if cb, hit := CheckBoundary(vertical.X, vertical.Y, &wideFooter, cfg); hit {
			t.Fatalf("setup: vertical candidate should be clear, got %+v", cb)
		}

		got := FrightenedEscapeTarget(ghost, b, pacman, &wideFooter, cfg, nil)
		// Horizontal candidates stay at the same blocked y, so the
		// upward vertical candidate is the first clear one.
		if got != vertical {
			t.Fatalf("expected upward vertical escape %v, got %v", vertical, got)
		}
	})

	t.Run("all_blocked_falls_back_away_from_player", func(t *testing.T) {
		// Every query reports the same section edge, so no candidate is
		// clear and the horizontal fallback fires.
		bounds := testBounds()
		bounds.pin = true
		bounds.pinY = 0

		ghost := cp.Vector{X: 400, Y: 120}
		b, hit := CheckBoundary(ghost.X, ghost.Y, bounds, cfg)
		if !hit || b.Type != BoundarySection {
			t.Fatalf("setup: expected pinned section, got %+v", b)
		}

		got := FrightenedEscapeTarget(ghost, b, pacman, bounds, cfg, nil)
		want := cp.Vector{X: ghost.X - cfg.EscapeHorizontal, Y: ghost.Y}
		if got != want {
			t.Fatalf("ghost left of player should flee further left: want %v, got %v", want, got)
		}
	})
}
