package component

// Transform is an entity's position in page coordinates. Y grows downward,
// matching the scrolling surface the chase is played over.
type Transform struct {
	X float64
	Y float64
}

var TransformComponent = NewComponent[Transform]()

// Velocity is an entity's per-axis speed in px/s.
type Velocity struct {
	X float64
	Y float64
}

var VelocityComponent = NewComponent[Velocity]()
