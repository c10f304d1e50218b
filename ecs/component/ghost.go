package component

// Persona selects a ghost's fixed targeting algorithm.
type Persona string

const (
	PersonaChase    Persona = "chase"
	PersonaAmbush   Persona = "ambush"
	PersonaPatrol   Persona = "patrol"
	PersonaScatter  Persona = "scatter"
	PersonaScripted Persona = "scripted"
)

// Mode is a ghost's current behavior mode.
type Mode string

const (
	ModeChasing    Mode = "chasing"
	ModeScattering Mode = "scattering"
	ModeFrightened Mode = "frightened"
	ModeEaten      Mode = "eaten"
)

// Ghost is the mutable per-ghost state. Slot 0 is reserved for the chase
// ghost; the patrol persona pivots around it and the wave scheduler never
// sends it scattering.
//
// OrbitAngle belongs to the scatter persona's orbit regime only. It is
// lazily initialized (OrbitSet flips to true) on the first tick the ghost
// enters that regime and advances monotonically while it stays there.
type Ghost struct {
	Persona Persona
	Mode    Mode
	Slot    int

	OrbitAngle float64
	OrbitSet   bool

	// ScriptPath names a tengo persona script for PersonaScripted ghosts.
	ScriptPath string

	BaseSpeed float64

	// HomeX, HomeY is where the ghost re-enters play after being eaten.
	HomeX float64
	HomeY float64
}

var GhostComponent = NewComponent[Ghost]()

// Eaten reports whether the ghost is out of play awaiting respawn. An eaten
// ghost is never frightened.
func (g Ghost) Eaten() bool {
	return g.Mode == ModeEaten
}

// Frightened reports whether the ghost is currently fleeable and eatable.
func (g Ghost) Frightened() bool {
	return g.Mode == ModeFrightened
}
