package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

// ActiveEffects is the power-up flag bundle on the player. Shield deflects
// ghost contact without losing a life.
type ActiveEffects struct {
	Shield bool
}

var ActiveEffectsComponent = NewComponent[ActiveEffects]()

// DotCounter tracks the dots laid out over the page. It lives on the page
// entity; the chase persona's speed tiers read the remaining fraction.
type DotCounter struct {
	Remaining int
	Total     int
}

var DotCounterComponent = NewComponent[DotCounter]()
