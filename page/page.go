// Package page models the scrolling surface the chase is played over: a
// header band, a footer band, and content sections in between. It stands in
// for the rendered document the original game ran on top of, so the
// simulation only ever sees geometry.
package page

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"gopkg.in/yaml.v3"

	"github.com/jmallory/pagechase/prefabs"
)

// BoundsProvider supplies the vertical play-area geometry the boundary
// system needs. All coordinates are page coordinates with y growing
// downward.
type BoundsProvider interface {
	// HeaderBottom is the y of the header band's lower edge.
	HeaderBottom() float64
	// FooterTop is the y of the footer band's upper edge.
	FooterTop() float64
	// PageHeight is the total scrollable height.
	PageHeight() float64
	// SectionBoundary reports the y of a solid section edge crossed at
	// (x, y), if any.
	SectionBoundary(x, y float64) (float64, bool)
}

// ViewportProvider supplies the currently visible rectangle.
type ViewportProvider interface {
	Viewport() cp.BB
}

type BandSpec struct {
	Height float64 `yaml:"height"`
}

type SectionSpec struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Solid  bool    `yaml:"solid"`
}

type LayoutSpec struct {
	Width    float64       `yaml:"width"`
	Height   float64       `yaml:"height"`
	Header   BandSpec      `yaml:"header"`
	Footer   BandSpec      `yaml:"footer"`
	Sections []SectionSpec `yaml:"sections"`
}

// Layout is a runtime page: static band/section geometry plus a mutable
// scroll position that defines the viewport.
type Layout struct {
	spec    LayoutSpec
	scrollY float64
	viewW   float64
	viewH   float64
}

// DefaultLayoutSpec is the built-in demo page: a hero header, three content
// sections (the middle one solid), and a footer.
func DefaultLayoutSpec() LayoutSpec {
	return LayoutSpec{
		Width:  1280,
		Height: 2400,
		Header: BandSpec{Height: 90},
		Footer: BandSpec{Height: 120},
		Sections: []SectionSpec{
			{X: 140, Y: 320, Width: 1000, Height: 60, Solid: false},
			{X: 240, Y: 980, Width: 800, Height: 140, Solid: true},
			{X: 140, Y: 1720, Width: 1000, Height: 60, Solid: false},
		},
	}
}

// LoadLayout reads a page layout from the prefab store, falling back to the
// built-in demo page when name is empty.
func LoadLayout(name string) (*Layout, error) {
	if name == "" {
		return NewLayout(DefaultLayoutSpec()), nil
	}
	data, err := prefabs.Load(name)
	if err != nil {
		return nil, fmt.Errorf("page: load %s: %w", name, err)
	}
	var spec LayoutSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("page: unmarshal %s: %w", name, err)
	}
	if spec.Width <= 0 || spec.Height <= 0 {
		return nil, fmt.Errorf("page: %s: non-positive page size", name)
	}
	return NewLayout(spec), nil
}

// NewLayout wraps a spec with viewport state sized to the page width.
func NewLayout(spec LayoutSpec) *Layout {
	return &Layout{spec: spec, viewW: spec.Width, viewH: 720}
}

func (l *Layout) Spec() LayoutSpec {
	if l == nil {
		return LayoutSpec{}
	}
	return l.spec
}

func (l *Layout) HeaderBottom() float64 {
	if l == nil {
		return 0
	}
	return l.spec.Header.Height
}

func (l *Layout) FooterTop() float64 {
	if l == nil {
		return 0
	}
	return l.spec.Height - l.spec.Footer.Height
}

func (l *Layout) PageHeight() float64 {
	if l == nil {
		return 0
	}
	return l.spec.Height
}

func (l *Layout) PageWidth() float64 {
	if l == nil {
		return 0
	}
	return l.spec.Width
}

// SectionBoundary reports the nearer horizontal edge of a solid section the
// point sits inside. Non-solid sections are decoration and never block.
func (l *Layout) SectionBoundary(x, y float64) (float64, bool) {
	if l == nil {
		return 0, false
	}
	for _, s := range l.spec.Sections {
		if !s.Solid {
			continue
		}
		if x < s.X || x > s.X+s.Width || y < s.Y || y > s.Y+s.Height {
			continue
		}
		top := s.Y
		bottom := s.Y + s.Height
		if y-top < bottom-y {
			return top, true
		}
		return bottom, true
	}
	return 0, false
}

// SetViewportSize sets the visible window size in page units.
func (l *Layout) SetViewportSize(w, h float64) {
	if l == nil || w <= 0 || h <= 0 {
		return
	}
	l.viewW = w
	l.viewH = h
}

// ScrollTo moves the viewport so it stays within the page.
func (l *Layout) ScrollTo(y float64) {
	if l == nil {
		return
	}
	max := l.spec.Height - l.viewH
	if max < 0 {
		max = 0
	}
	if y < 0 {
		y = 0
	}
	if y > max {
		y = max
	}
	l.scrollY = y
}

// ScrollY returns the viewport's top edge in page coordinates.
func (l *Layout) ScrollY() float64 {
	if l == nil {
		return 0
	}
	return l.scrollY
}

// Viewport returns the visible rectangle. B is the top edge and T the bottom
// edge in page coordinates (y grows downward).
func (l *Layout) Viewport() cp.BB {
	if l == nil {
		return cp.BB{}
	}
	return cp.BB{L: 0, B: l.scrollY, R: l.viewW, T: l.scrollY + l.viewH}
}
