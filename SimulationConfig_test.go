package go_pointmass_test

import (
	"testing"

	"github.com/gehtsoft-usa/go_pointmass"
	"github.com/gehtsoft-usa/go_pointmass/bmath/unit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSimulationConfig(t *testing.T) {
	c := createConfig(t, scenarioParams())
	assert.InDelta(t, 1.0, c.DensityRatio(), 1e-3)
	assert.Equal(t, go_pointmass.DragTableG7, c.Projectile().DragTable())
	assert.InDelta(t, 50, c.Limits().MinimumVelocity.In(unit.VelocityFPS), 1e-9)
	assert.InDelta(t, 15000, c.Limits().MaximumDrop.In(unit.DistanceFoot), 1e-9)
	assert.InDelta(t, 60, c.Limits().MaximumTime.In(unit.TimeSecond), 1e-9)
}

func TestSimulationConfigValidation(t *testing.T) {
	cases := map[string]func(p *go_pointmass.SimulationParams){
		"time step": func(p *go_pointmass.SimulationParams) {
			p.TimeStep = unit.MustCreateTime(0, unit.TimeSecond)
		},
		"negative time step": func(p *go_pointmass.SimulationParams) {
			p.TimeStep = unit.MustCreateTime(-1, unit.TimeMillisecond)
		},
		"projectile": func(p *go_pointmass.SimulationParams) {
			p.Projectile = go_pointmass.Projectile{}
		},
		"atmosphere": func(p *go_pointmass.SimulationParams) {
			p.Atmosphere = go_pointmass.Atmosphere{}
		},
		"shooter": func(p *go_pointmass.SimulationParams) {
			p.Shooter = go_pointmass.ShooterGeometry{}
		},
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			p := scenarioParams()
			mutate(&p)
			_, err := go_pointmass.CreateSimulationConfig(p)
			assert.ErrorIs(t, err, go_pointmass.ErrInvalidConfig)
		})
	}
}

func TestCreateProjectileValidation(t *testing.T) {
	weight := unit.MustCreateWeight(220, unit.WeightGrain)
	caliber := unit.MustCreateDistance(0.308, unit.DistanceInch)
	velocity := unit.MustCreateVelocity(3000, unit.VelocityFPS)

	_, err := go_pointmass.CreateProjectile(unit.MustCreateWeight(0, unit.WeightGrain), caliber, velocity, 0.5, go_pointmass.DragTableG7)
	assert.ErrorIs(t, err, go_pointmass.ErrInvalidConfig)
	_, err = go_pointmass.CreateProjectile(weight, unit.MustCreateDistance(-1, unit.DistanceInch), velocity, 0.5, go_pointmass.DragTableG7)
	assert.ErrorIs(t, err, go_pointmass.ErrInvalidConfig)
	_, err = go_pointmass.CreateProjectile(weight, caliber, unit.MustCreateVelocity(0, unit.VelocityFPS), 0.5, go_pointmass.DragTableG7)
	assert.ErrorIs(t, err, go_pointmass.ErrInvalidConfig)
	_, err = go_pointmass.CreateProjectile(weight, caliber, velocity, 0, go_pointmass.DragTableG7)
	assert.ErrorIs(t, err, go_pointmass.ErrInvalidConfig)
	_, err = go_pointmass.CreateProjectile(weight, caliber, velocity, 0.5, go_pointmass.DragTable(0))
	assert.ErrorIs(t, err, go_pointmass.ErrInvalidConfig)

	p, err := go_pointmass.CreateProjectile(weight, caliber, velocity, 0.5, go_pointmass.DragTableG7)
	require.NoError(t, err)
	assert.InDelta(t, 0.331, p.SectionalDensity(), 1e-3)
}

func TestShooterValidation(t *testing.T) {
	deg := func(v float64) unit.Angular { return unit.MustCreateAngular(v, unit.AngularDegree) }

	_, err := go_pointmass.CreateShooterGeometry(deg(91), deg(0), deg(0))
	assert.ErrorIs(t, err, go_pointmass.ErrInvalidConfig)
	_, err = go_pointmass.CreateShooterGeometry(deg(45), deg(0), deg(90))
	assert.ErrorIs(t, err, go_pointmass.ErrInvalidConfig)
	_, err = go_pointmass.CreateShooterGeometryWithGravity(deg(45), deg(0), deg(0), unit.MustCreateAcceleration(0, unit.AccelerationMPS2))
	assert.ErrorIs(t, err, go_pointmass.ErrInvalidConfig)

	s, err := go_pointmass.CreateShooterGeometry(deg(45), deg(270), deg(-10))
	require.NoError(t, err)
	assert.InDelta(t, 32.174, s.Gravity().In(unit.AccelerationFPS2), 1e-3)
}
