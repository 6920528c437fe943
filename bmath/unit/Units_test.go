package unit_test

import (
	"testing"

	"github.com/gehtsoft-usa/go_pointmass/bmath/unit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type converter interface {
	In(units byte) float64
	Value(units byte) (float64, error)
}

func backAndForth(t *testing.T, name string, value float64, units byte, create func(float64, byte) (converter, error)) {
	t.Helper()
	v, err := create(value, units)
	require.NoError(t, err, "%s %d", name, units)
	x, err := v.Value(units)
	require.NoError(t, err)
	assert.InDelta(t, value, x, 1e-7, "%s %d", name, units)
}

func TestBackAndForth(t *testing.T) {
	cases := []struct {
		name   string
		units  []byte
		create func(float64, byte) (converter, error)
	}{
		{"Distance", []byte{unit.DistanceInch, unit.DistanceFoot, unit.DistanceYard, unit.DistanceMile, unit.DistanceNauticalMile,
			unit.DistanceMillimeter, unit.DistanceCentimeter, unit.DistanceMeter, unit.DistanceKilometer, unit.DistanceLine},
			func(v float64, u byte) (converter, error) { return unit.CreateDistance(v, u) }},
		{"Angular", []byte{unit.AngularRadian, unit.AngularDegree, unit.AngularMOA, unit.AngularMil, unit.AngularMRad,
			unit.AngularThousand, unit.AngularInchesPer100Yd, unit.AngularCmPer100M},
			func(v float64, u byte) (converter, error) { return unit.CreateAngular(v, u) }},
		{"Velocity", []byte{unit.VelocityMPS, unit.VelocityKMH, unit.VelocityFPS, unit.VelocityMPH, unit.VelocityKT},
			func(v float64, u byte) (converter, error) { return unit.CreateVelocity(v, u) }},
		{"Weight", []byte{unit.WeightGrain, unit.WeightOunce, unit.WeightGram, unit.WeightPound, unit.WeightKilogram, unit.WeightNewton},
			func(v float64, u byte) (converter, error) { return unit.CreateWeight(v, u) }},
		{"Pressure", []byte{unit.PressureMmHg, unit.PressureInHg, unit.PressureBar, unit.PressureHPa, unit.PressurePSI, unit.PressurePascal},
			func(v float64, u byte) (converter, error) { return unit.CreatePressure(v, u) }},
		{"Temperature", []byte{unit.TemperatureFahrenheit, unit.TemperatureCelsius, unit.TemperatureKelvin, unit.TemperatureRankin},
			func(v float64, u byte) (converter, error) { return unit.CreateTemperature(v, u) }},
		{"Energy", []byte{unit.EnergyFootPound, unit.EnergyJoule},
			func(v float64, u byte) (converter, error) { return unit.CreateEnergy(v, u) }},
		{"Acceleration", []byte{unit.AccelerationMPS2, unit.AccelerationFPS2, unit.AccelerationG},
			func(v float64, u byte) (converter, error) { return unit.CreateAcceleration(v, u) }},
		{"Time", []byte{unit.TimeSecond, unit.TimeMillisecond, unit.TimeMicrosecond, unit.TimeMinute},
			func(v float64, u byte) (converter, error) { return unit.CreateTime(v, u) }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			for _, u := range c.units {
				backAndForth(t, c.name, 3, u, c.create)
			}
		})
	}
}

func TestKnownConversions(t *testing.T) {
	assert.InDelta(t, 91.44, unit.MustCreateDistance(100, unit.DistanceYard).In(unit.DistanceMeter), 1e-9)
	assert.InDelta(t, 914.4, unit.MustCreateVelocity(3000, unit.VelocityFPS).In(unit.VelocityMPS), 1e-9)
	assert.InDelta(t, 0.0142557602, unit.MustCreateWeight(220, unit.WeightGrain).In(unit.WeightKilogram), 1e-9)
	assert.InDelta(t, 101320.76, unit.MustCreatePressure(29.92, unit.PressureInHg).In(unit.PressurePascal), 0.01)
	assert.InDelta(t, 15, unit.MustCreateTemperature(59, unit.TemperatureFahrenheit).In(unit.TemperatureCelsius), 1e-9)
	assert.InDelta(t, 288.15, unit.MustCreateTemperature(15, unit.TemperatureCelsius).In(unit.TemperatureKelvin), 1e-9)
	assert.InDelta(t, 9.80665, unit.MustCreateAcceleration(1, unit.AccelerationG).In(unit.AccelerationMPS2), 1e-12)
	assert.InDelta(t, 1.35581795, unit.MustCreateEnergy(1, unit.EnergyFootPound).In(unit.EnergyJoule), 1e-8)
	assert.InDelta(t, 0.05, unit.MustCreateTime(50, unit.TimeMillisecond).In(unit.TimeSecond), 1e-12)
	assert.InDelta(t, 60, unit.MustCreateAngular(1, unit.AngularDegree).In(unit.AngularMOA), 1e-9)
	assert.InDelta(t, 1.047, unit.MustCreateAngular(1, unit.AngularMOA).In(unit.AngularInchesPer100Yd), 1e-3)
	assert.InDelta(t, 10, unit.MustCreateAngular(1, unit.AngularMRad).In(unit.AngularCmPer100M), 1e-4)
}

func TestUnsupportedUnits(t *testing.T) {
	_, err := unit.CreateDistance(1, unit.VelocityFPS)
	assert.Error(t, err)
	_, err = unit.CreateTemperature(1, unit.DistanceMeter)
	assert.Error(t, err)
	_, err = unit.CreateAngular(1, 200)
	assert.Error(t, err)
	assert.Panics(t, func() { unit.MustCreateVelocity(1, unit.WeightGrain) })

	d := unit.MustCreateDistance(1, unit.DistanceMeter)
	assert.Equal(t, 0.0, d.In(unit.TimeSecond))
	_, err = d.Value(unit.TimeSecond)
	assert.Error(t, err)
}

func TestConvertKeepsValue(t *testing.T) {
	d := unit.MustCreateDistance(1, unit.DistanceYard).Convert(unit.DistanceFoot)
	assert.Equal(t, unit.DistanceFoot, d.Units())
	assert.InDelta(t, 3, d.In(unit.DistanceFoot), 1e-12)

	a := unit.MustCreateAngular(1, unit.AngularMOA).Add(unit.MustCreateAngular(2, unit.AngularMOA))
	assert.InDelta(t, 3, a.In(unit.AngularMOA), 1e-9)
	assert.Equal(t, unit.AngularMOA, a.Units())
}

func TestString(t *testing.T) {
	assert.Equal(t, "100.000yd", unit.MustCreateDistance(100, unit.DistanceYard).String())
	assert.Equal(t, "1.5\"", unit.MustCreateDistance(1.5, unit.DistanceInch).String())
	assert.Equal(t, "3000.0ft/s", unit.MustCreateVelocity(3000, unit.VelocityFPS).String())
	assert.Equal(t, "220gr", unit.MustCreateWeight(220, unit.WeightGrain).String())
	assert.Equal(t, "59.0°F", unit.MustCreateTemperature(59, unit.TemperatureFahrenheit).String())
	assert.Equal(t, "2.78cm/100m", unit.MustCreateAngular(2.78, unit.AngularCmPer100M).String())
	assert.Equal(t, "29.92inHg", unit.MustCreatePressure(29.92, unit.PressureInHg).String())
}
