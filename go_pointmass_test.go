package go_pointmass_test

import (
	"testing"

	"github.com/gehtsoft-usa/go_pointmass"
	"github.com/gehtsoft-usa/go_pointmass/bmath/unit"
	"github.com/stretchr/testify/require"
)

//scenarioParams returns 220gr .308 G7 0.5 at 3000ft/s, standard atmosphere,
//no wind and the scope 1.5" above the bore
func scenarioParams() go_pointmass.SimulationParams {
	return go_pointmass.SimulationParams{
		Projectile: go_pointmass.MustCreateProjectile(
			unit.MustCreateWeight(220, unit.WeightGrain),
			unit.MustCreateDistance(0.308, unit.DistanceInch),
			unit.MustCreateVelocity(3000, unit.VelocityFPS),
			0.5, go_pointmass.DragTableG7),
		Atmosphere: go_pointmass.CreateStandardAtmosphere(),
		Wind:       go_pointmass.CreateNoWind(),
		Shooter:    go_pointmass.CreateLevelShooterGeometry(),
		Scope:      go_pointmass.CreateScopeGeometry(unit.MustCreateDistance(1.5, unit.DistanceInch)),
		Flags:      go_pointmass.DefaultFlags(),
		TimeStep:   unit.MustCreateTime(0.00005, unit.TimeSecond),
	}
}

func createConfig(t *testing.T, params go_pointmass.SimulationParams) go_pointmass.SimulationConfig {
	t.Helper()
	c, err := go_pointmass.CreateSimulationConfig(params)
	require.NoError(t, err)
	return c
}

func zeroAngles() go_pointmass.Angles {
	return go_pointmass.CreateZeroAngles()
}

func degrees(pitch, yaw float64) go_pointmass.Angles {
	return go_pointmass.CreateAngles(
		unit.MustCreateAngular(pitch, unit.AngularDegree),
		unit.MustCreateAngular(yaw, unit.AngularDegree))
}

func yards(v float64) unit.Distance {
	return unit.MustCreateDistance(v, unit.DistanceYard)
}

func inches(v float64) unit.Distance {
	return unit.MustCreateDistance(v, unit.DistanceInch)
}
