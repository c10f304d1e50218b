package component

// SteerTarget is the desired point a ghost seeks this tick, written by the
// targeting system after boundary adjustment and consumed by movement.
// SpeedBoost is a multiplier on the ghost's base speed (1 when unset by the
// persona).
type SteerTarget struct {
	X          float64
	Y          float64
	SpeedBoost float64
}

var SteerTargetComponent = NewComponent[SteerTarget]()
