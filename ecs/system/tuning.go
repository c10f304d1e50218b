package system

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/jmallory/pagechase/prefabs"
)

// Tuning holds every behavior constant of the chase. Defaults reproduce the
// shipped balance; a prefab YAML may override any subset and the host can
// hot-reload it mid-game.
type Tuning struct {
	// chase persona
	ChasePredictTime float64 `yaml:"chase_predict_time"`
	ChaseNoiseChance float64 `yaml:"chase_noise_chance"`
	ChaseNoiseRange  float64 `yaml:"chase_noise_range"`
	ChaseTier1Frac   float64 `yaml:"chase_tier1_frac"`
	ChaseTier1Boost  float64 `yaml:"chase_tier1_boost"`
	ChaseTier2Frac   float64 `yaml:"chase_tier2_frac"`
	ChaseTier2Boost  float64 `yaml:"chase_tier2_boost"`

	// ambush persona
	AmbushPredictTime float64 `yaml:"ambush_predict_time"`
	AmbushFlankDist   float64 `yaml:"ambush_flank_dist"`
	AmbushOrbitRadius float64 `yaml:"ambush_orbit_radius"`
	AmbushOrbitRate   float64 `yaml:"ambush_orbit_rate"`

	// patrol persona
	PatrolFlankDist     float64 `yaml:"patrol_flank_dist"`
	PatrolSwapPeriod    float64 `yaml:"patrol_swap_period"`
	PatrolVerticalRange float64 `yaml:"patrol_vertical_range"`
	PatrolVerticalLift  float64 `yaml:"patrol_vertical_lift"`

	// scatter-zone persona
	ScatterNearDist      float64 `yaml:"scatter_near_dist"`
	ScatterFarDist       float64 `yaml:"scatter_far_dist"`
	ScatterRetreatRadius float64 `yaml:"scatter_retreat_radius"`
	ScatterOscRate       float64 `yaml:"scatter_osc_rate"`
	ScatterOscDegrees    float64 `yaml:"scatter_osc_degrees"`
	ScatterOrbitRadius   float64 `yaml:"scatter_orbit_radius"`
	ScatterOrbitRate     float64 `yaml:"scatter_orbit_rate"`

	// shared mode targets
	FrightenedFleeDist float64 `yaml:"frightened_flee_dist"`
	CornerInset        float64 `yaml:"corner_inset"`
	CornerOffsetY      float64 `yaml:"corner_offset_y"`

	// boundary handling
	BoundaryMargin    float64 `yaml:"boundary_margin"`
	BoundaryClamp     float64 `yaml:"boundary_clamp"`
	BoundaryPushDist  float64 `yaml:"boundary_push_dist"`
	BoundaryPushRange float64 `yaml:"boundary_push_range"`
	EscapeHorizontal  float64 `yaml:"escape_horizontal"`
	EscapeVertical    float64 `yaml:"escape_vertical"`
	EscapeRandom      float64 `yaml:"escape_random"`

	// collision and respawn
	CollisionRadius float64 `yaml:"collision_radius"`
	RespawnDelay    float64 `yaml:"respawn_delay"`

	// movement and waves
	GhostBaseSpeed       float64 `yaml:"ghost_base_speed"`
	FrightenedSpeedScale float64 `yaml:"frightened_speed_scale"`
	ChaseWaveDuration    float64 `yaml:"chase_wave_duration"`
	ScatterWaveDuration  float64 `yaml:"scatter_wave_duration"`
	FrightenedDuration   float64 `yaml:"frightened_duration"`

	// off-screen indicators
	IndicatorInset float64 `yaml:"indicator_inset"`
}

// DefaultTuning returns the shipped balance.
func DefaultTuning() Tuning {
	return Tuning{
		ChasePredictTime: 0.33,
		ChaseNoiseChance: 0.1,
		ChaseNoiseRange:  50,
		ChaseTier1Frac:   0.3,
		ChaseTier1Boost:  1.3,
		ChaseTier2Frac:   0.5,
		ChaseTier2Boost:  1.15,

		AmbushPredictTime: 1.0,
		AmbushFlankDist:   150,
		AmbushOrbitRadius: 150,
		AmbushOrbitRate:   1.2,

		PatrolFlankDist:     100,
		PatrolSwapPeriod:    3,
		PatrolVerticalRange: 100,
		PatrolVerticalLift:  200,

		ScatterNearDist:      150,
		ScatterFarDist:       400,
		ScatterRetreatRadius: 200,
		ScatterOscRate:       3,
		ScatterOscDegrees:    60,
		ScatterOrbitRadius:   250,
		ScatterOrbitRate:     1.8,

		FrightenedFleeDist: 200,
		CornerInset:        100,
		CornerOffsetY:      300,

		BoundaryMargin:    30,
		BoundaryClamp:     50,
		BoundaryPushDist:  200,
		BoundaryPushRange: 200,
		EscapeHorizontal:  300,
		EscapeVertical:    200,
		EscapeRandom:      200,

		CollisionRadius: 25,
		RespawnDelay:    3,

		GhostBaseSpeed:       170,
		FrightenedSpeedScale: 0.5,
		ChaseWaveDuration:    20,
		ScatterWaveDuration:  7,
		FrightenedDuration:   6,

		IndicatorInset: 24,
	}
}

// LoadTuning reads a tuning prefab, overlaying it on the defaults so partial
// files only override what they name.
func LoadTuning(name string) (Tuning, error) {
	cfg := DefaultTuning()
	data, err := prefabs.Load(name)
	if err != nil {
		return cfg, fmt.Errorf("tuning: load %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultTuning(), fmt.Errorf("tuning: unmarshal %s: %w", name, err)
	}
	return cfg, nil
}
