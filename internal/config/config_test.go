package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gehtsoft-usa/go_pointmass"
	"github.com/gehtsoft-usa/go_pointmass/bmath/unit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, "console", c.LogFormat)
	assert.Equal(t, 0.00005, c.TimeStep)
	assert.Equal(t, 3000.0, c.Projectile.Velocity)
	assert.Equal(t, 220.0, c.Projectile.Mass)
	assert.Equal(t, 0.308, c.Projectile.Caliber)
	assert.Equal(t, 0.5, c.Projectile.BallisticCoefficient)
	assert.Equal(t, "G7", c.Projectile.DragTable)
	assert.Equal(t, 59.0, c.Conditions.Temperature)
	assert.Equal(t, 29.92, c.Conditions.Pressure)
	assert.Equal(t, 1.5, c.Scope.Height)
	assert.True(t, c.Flags.Drag)
	assert.True(t, c.Flags.Gravity)
	assert.True(t, c.Flags.Coriolis)
	assert.True(t, c.Zero.Enabled)
	assert.Equal(t, 100.0, c.Zero.Distance)
	assert.Equal(t, 0.001, c.Zero.Tolerance)
	assert.Equal(t, 20, c.Zero.MaxIterations)
	assert.Nil(t, c.Zero.Conditions)
	assert.Equal(t, 1000.0, c.Table.End)
	assert.Equal(t, 100.0, c.Table.Step)
	assert.False(t, c.Metrics.Enabled)
	assert.False(t, c.Tracing.Enabled)
	assert.False(t, c.Tracing.Pretty)
	assert.Equal(t, 0.005, c.Table.Tolerance)
}

func TestLoad_JSON(t *testing.T) {
	path := writeConfig(t, "pointmass.json", `{
		"logLevel": "debug",
		"projectile": {"velocity": 2800, "mass": 175, "bc": 0.475, "dragTable": "g1"},
		"conditions": {"temperature": 20, "windSpeed": 10, "windDirection": 90},
		"zero": {"distance": 200, "conditions": {"temperature": 40, "pressure": 30.1}}
	}`)

	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", c.LogLevel)
	assert.Equal(t, 2800.0, c.Projectile.Velocity)
	assert.Equal(t, 175.0, c.Projectile.Mass)
	assert.Equal(t, 0.308, c.Projectile.Caliber, "unset values keep the defaults")
	assert.Equal(t, "g1", c.Projectile.DragTable)
	assert.Equal(t, 20.0, c.Conditions.Temperature)
	assert.Equal(t, 10.0, c.Conditions.WindSpeed)
	assert.Equal(t, 200.0, c.Zero.Distance)
	require.NotNil(t, c.Zero.Conditions)
	assert.Equal(t, 40.0, c.Zero.Conditions.Temperature)
	assert.Equal(t, 30.1, c.Zero.Conditions.Pressure)
}

func TestLoad_YAML(t *testing.T) {
	path := writeConfig(t, "pointmass.yaml", `
table:
  start: 100
  end: 600
  step: 50
shooter:
  latitude: 45
  bearing: 90
`)

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 100.0, c.Table.Start)
	assert.Equal(t, 600.0, c.Table.End)
	assert.Equal(t, 50.0, c.Table.Step)
	assert.Equal(t, 45.0, c.Shooter.Latitude)
	assert.Equal(t, 90.0, c.Shooter.Bearing)
}

func TestLoad_TOML(t *testing.T) {
	path := writeConfig(t, "pointmass.toml", `
timeStep = 0.0001

[flags]
coriolis = false

[tracing]
enabled = true
pretty = true
`)

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0.0001, c.TimeStep)
	assert.False(t, c.Flags.Coriolis)
	assert.True(t, c.Flags.Drag)
	assert.True(t, c.Tracing.Enabled)
	assert.True(t, c.Tracing.Pretty)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("POINTMASS_PROJECTILE_VELOCITY", "2650")
	t.Setenv("POINTMASS_LOGFORMAT", "json")
	t.Setenv("POINTMASS_ZERO_ENABLED", "false")

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 2650.0, c.Projectile.Velocity)
	assert.Equal(t, "json", c.LogFormat)
	assert.False(t, c.Zero.Enabled)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestLoad_InvalidFile(t *testing.T) {
	path := writeConfig(t, "broken.json", `{"projectile": `)
	_, err := Load(path)
	require.Error(t, err)
}

func TestFiringConfig(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	c.Scope.Pitch = 2
	c.Conditions.WindSpeed = 5
	c.Conditions.WindDirection = 90

	sc, err := c.FiringConfig()
	require.NoError(t, err)

	assert.Equal(t, go_pointmass.DragTableG7, sc.Projectile().DragTable())
	assert.InDelta(t, 3000, sc.Projectile().MuzzleVelocity().In(unit.VelocityFPS), 1e-9)
	assert.InDelta(t, 220, sc.Projectile().Weight().In(unit.WeightGrain), 1e-9)
	assert.InDelta(t, 1.5, sc.Scope().Height().In(unit.DistanceInch), 1e-9)
	assert.InDelta(t, 2, sc.Scope().Pitch().In(unit.AngularMOA), 1e-9)
	assert.InDelta(t, 5, sc.Wind().Velocity().In(unit.VelocityMPH), 1e-9)
	assert.InDelta(t, 0.00005, sc.TimeStep().In(unit.TimeSecond), 1e-12)
	assert.InDelta(t, 1, sc.DensityRatio(), 1e-3)
	assert.Equal(t, go_pointmass.DefaultFlags(), sc.Flags())
}

func TestZeroingConfig(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	c.Scope.Pitch = 2
	c.Scope.Yaw = -1
	c.Zero.Conditions = &ConditionsConfig{Temperature: 0, Pressure: 29.92, Humidity: 0.5}

	sc, err := c.ZeroingConfig()
	require.NoError(t, err)

	assert.Zero(t, sc.Scope().Pitch().In(unit.AngularMOA))
	assert.Zero(t, sc.Scope().Yaw().In(unit.AngularMOA))
	assert.InDelta(t, 0, sc.Atmosphere().Temperature().In(unit.TemperatureFahrenheit), 1e-9)
	assert.InDelta(t, 0.5, sc.Atmosphere().Humidity(), 1e-9)
	assert.Greater(t, sc.DensityRatio(), 1.0, "cold air is denser")
}

func TestZeroingConfig_UsesFiringConditions(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	c.Conditions.Temperature = 95

	sc, err := c.ZeroingConfig()
	require.NoError(t, err)
	assert.InDelta(t, 95, sc.Atmosphere().Temperature().In(unit.TemperatureFahrenheit), 1e-9)
}

func TestZeroingConfig_Shooter(t *testing.T) {
	path := writeConfig(t, "pointmass.yaml", `
shooter:
  latitude: 45
  incline: 15
zero:
  shooter:
    latitude: 30
    bearing: 90
`)
	c, err := Load(path)
	require.NoError(t, err)
	require.NotNil(t, c.Zero.Shooter)

	zeroing, err := c.ZeroingConfig()
	require.NoError(t, err)
	assert.InDelta(t, 30, zeroing.Shooter().Latitude().In(unit.AngularDegree), 1e-9)
	assert.InDelta(t, 90, zeroing.Shooter().Bearing().In(unit.AngularDegree), 1e-9)
	assert.InDelta(t, 0, zeroing.Shooter().Incline().In(unit.AngularDegree), 1e-9, "zeroed on flat ground")
	assert.InDelta(t, 32.174, zeroing.Shooter().Gravity().In(unit.AccelerationFPS2), 1e-9, "gravity falls back to the firing one")

	firing, err := c.FiringConfig()
	require.NoError(t, err)
	assert.InDelta(t, 45, firing.Shooter().Latitude().In(unit.AngularDegree), 1e-9)
	assert.InDelta(t, 15, firing.Shooter().Incline().In(unit.AngularDegree), 1e-9)
}

func TestZeroingConfig_UsesFiringShooter(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.Nil(t, c.Zero.Shooter)
	c.Shooter.Incline = 10

	zeroing, err := c.ZeroingConfig()
	require.NoError(t, err)
	assert.InDelta(t, 10, zeroing.Shooter().Incline().In(unit.AngularDegree), 1e-9)
}

func TestConfig_Invalid(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)

	bad := c
	bad.Projectile.DragTable = "G3"
	_, err = bad.FiringConfig()
	assert.ErrorIs(t, err, go_pointmass.ErrInvalidConfig)

	bad = c
	bad.Conditions.Humidity = 2
	_, err = bad.FiringConfig()
	assert.ErrorIs(t, err, go_pointmass.ErrInvalidConfig)

	bad = c
	bad.TimeStep = 0
	_, err = bad.FiringConfig()
	assert.ErrorIs(t, err, go_pointmass.ErrInvalidConfig)

	bad = c
	bad.Zero.Shooter = &ShooterConfig{Incline: 90}
	_, err = bad.ZeroingConfig()
	assert.ErrorIs(t, err, go_pointmass.ErrInvalidConfig)

	bad = c
	bad.Zero.Distance = 0
	_, err = bad.Target()
	assert.ErrorIs(t, err, go_pointmass.ErrInvalidConfig)

	bad = c
	bad.Table.Step = 0
	_, err = bad.RangeTable()
	assert.ErrorIs(t, err, go_pointmass.ErrInvalidConfig)
}

func TestTargetAndRangeTable(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	c.Zero.Height = 2

	target, err := c.Target()
	require.NoError(t, err)
	assert.InDelta(t, 100, target.Distance().In(unit.DistanceYard), 1e-9)
	assert.InDelta(t, 2, target.Height().In(unit.DistanceInch), 1e-9)

	table, err := c.RangeTable()
	require.NoError(t, err)
	assert.InDelta(t, 0, table.Start().In(unit.DistanceYard), 1e-9)
	assert.InDelta(t, 1000, table.End().In(unit.DistanceYard), 1e-9)
	assert.InDelta(t, 100, table.Step().In(unit.DistanceYard), 1e-9)
}
