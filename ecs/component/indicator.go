package component

// IndicatorEdge names the viewport edge an off-screen arrow is pinned to.
type IndicatorEdge string

const (
	EdgeTop    IndicatorEdge = "top"
	EdgeBottom IndicatorEdge = "bottom"
	EdgeLeft   IndicatorEdge = "left"
	EdgeRight  IndicatorEdge = "right"
)

// Indicator is the derived presentation state for a ghost's off-screen
// arrow. Purely visual; the simulation never reads it back.
type Indicator struct {
	Visible    bool
	X          float64
	Y          float64
	Rotation   float64 // radians, arrow points from viewport center to ghost
	Edge       IndicatorEdge
	Frightened bool
}

var IndicatorComponent = NewComponent[Indicator]()
