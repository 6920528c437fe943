package go_pointmass

import (
	"fmt"

	"github.com/gehtsoft-usa/go_pointmass/bmath/unit"
	"github.com/gehtsoft-usa/go_pointmass/bmath/vector"
)

const cMinimumVelocity float64 = 50.0 //ft/s
const cMaximumDrop float64 = 15000    //ft
const cMaximumTime float64 = 60       //s

//Flags switch the forces of the model on and off
type Flags struct {
	UseDrag     bool
	UseGravity  bool
	UseCoriolis bool
}

//DefaultFlags returns the flags with all forces enabled
func DefaultFlags() Flags {
	return Flags{UseDrag: true, UseGravity: true, UseCoriolis: true}
}

//Limits keep the conditions which terminate the trajectory.
//
//Zero fields are replaced by the defaults: 50ft/s, 15000ft and 60s.
type Limits struct {
	MinimumVelocity unit.Velocity
	MaximumDrop     unit.Distance
	MaximumTime     unit.Time
}

//DefaultLimits returns the default trajectory limits
func DefaultLimits() Limits {
	return Limits{
		MinimumVelocity: unit.MustCreateVelocity(cMinimumVelocity, unit.VelocityFPS),
		MaximumDrop:     unit.MustCreateDistance(cMaximumDrop, unit.DistanceFoot),
		MaximumTime:     unit.MustCreateTime(cMaximumTime, unit.TimeSecond),
	}
}

func (v Limits) withDefaults() Limits {
	d := DefaultLimits()
	if v.MinimumVelocity.In(unit.VelocityMPS) <= 0 {
		v.MinimumVelocity = d.MinimumVelocity
	}
	if v.MaximumDrop.In(unit.DistanceMeter) <= 0 {
		v.MaximumDrop = d.MaximumDrop
	}
	if v.MaximumTime.In(unit.TimeSecond) <= 0 {
		v.MaximumTime = d.MaximumTime
	}
	return v
}

//SimulationParams collects everything needed to build a SimulationConfig
type SimulationParams struct {
	Projectile Projectile
	Atmosphere Atmosphere
	Wind       Wind
	Shooter    ShooterGeometry
	Scope      ScopeGeometry
	Flags      Flags
	Limits     Limits
	TimeStep   unit.Time
}

//SimulationConfig is the validated and immutable configuration of a simulation
type SimulationConfig struct {
	params SimulationParams

	timeStep      float64 //s
	densityRatio  float64
	speedOfSound  float64 //m/s
	dragFactor    float64 //1/m
	mass          float64 //kg
	gravity       vector.Vector
	earthRotation vector.Vector
	wind          vector.Vector

	minimumVelocity float64 //m/s
	maximumDrop     float64 //m
	maximumTime     float64 //s
}

//CreateSimulationConfig validates the parameters and calculates the constants of the simulation
func CreateSimulationConfig(params SimulationParams) (SimulationConfig, error) {
	if err := params.Projectile.validate(); err != nil {
		return SimulationConfig{}, fmt.Errorf("SimulationConfig: projectile: %w", err)
	}
	if err := params.Shooter.validate(); err != nil {
		return SimulationConfig{}, fmt.Errorf("SimulationConfig: shooter: %w", err)
	}
	densityRatio, err := params.Atmosphere.DensityRatio()
	if err != nil {
		return SimulationConfig{}, fmt.Errorf("SimulationConfig: atmosphere: %w", err)
	}
	dt := params.TimeStep.In(unit.TimeSecond)
	if dt <= 0 {
		return SimulationConfig{}, fmt.Errorf("SimulationConfig: %w",
			configError("time step", "must be greater than zero, got %s", params.TimeStep))
	}
	params.Limits = params.Limits.withDefaults()

	return SimulationConfig{
		params:          params,
		timeStep:        dt,
		densityRatio:    densityRatio,
		speedOfSound:    params.Atmosphere.SpeedOfSound().In(unit.VelocityMPS),
		dragFactor:      params.Projectile.dragFactor(),
		mass:            params.Projectile.Weight().In(unit.WeightKilogram),
		gravity:         params.Shooter.gravityVector(),
		earthRotation:   params.Shooter.earthRotation(),
		wind:            params.Wind.vector(),
		minimumVelocity: params.Limits.MinimumVelocity.In(unit.VelocityMPS),
		maximumDrop:     params.Limits.MaximumDrop.In(unit.DistanceMeter),
		maximumTime:     params.Limits.MaximumTime.In(unit.TimeSecond),
	}, nil
}

//MustCreateSimulationConfig creates the configuration but panics instead of returned a error
func MustCreateSimulationConfig(params SimulationParams) SimulationConfig {
	c, err := CreateSimulationConfig(params)
	if err != nil {
		panic(err)
	}
	return c
}

//Params returns a copy of the parameters the configuration was built from
func (c SimulationConfig) Params() SimulationParams {
	return c.params
}

//Projectile returns the projectile
func (c SimulationConfig) Projectile() Projectile {
	return c.params.Projectile
}

//Atmosphere returns the atmosphere
func (c SimulationConfig) Atmosphere() Atmosphere {
	return c.params.Atmosphere
}

//Wind returns the wind
func (c SimulationConfig) Wind() Wind {
	return c.params.Wind
}

//Shooter returns the shooter geometry
func (c SimulationConfig) Shooter() ShooterGeometry {
	return c.params.Shooter
}

//Scope returns the scope geometry
func (c SimulationConfig) Scope() ScopeGeometry {
	return c.params.Scope
}

//Flags returns the force switches
func (c SimulationConfig) Flags() Flags {
	return c.params.Flags
}

//Limits returns the trajectory limits with the defaults applied
func (c SimulationConfig) Limits() Limits {
	return c.params.Limits
}

//TimeStep returns the integration step
func (c SimulationConfig) TimeStep() unit.Time {
	return c.params.TimeStep
}

//DensityRatio returns the ratio of the air density to the standard one
func (c SimulationConfig) DensityRatio() float64 {
	return c.densityRatio
}

//SpeedOfSound returns the speed of sound
func (c SimulationConfig) SpeedOfSound() unit.Velocity {
	return c.params.Atmosphere.SpeedOfSound()
}
