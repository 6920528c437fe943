package go_pointmass

import (
	"fmt"
	"math"

	"github.com/gehtsoft-usa/go_pointmass/bmath/unit"
)

const cStandardTemperature float64 = 59.0 //°F
const cStandardPressure float64 = 29.92    //inHg
const cStandardDensity float64 = 1.2250    //kg/m³, 59°F, 29.92inHg, dry air
const cIcaoStandardTemperature float64 = 288.15
const cTemperatureGradient float64 = -6.5e-03 //K/m
const cPressureExponent float64 = 5.255876
const cDryAirGasConstant float64 = 287.05     //J/(kg·K)
const cWaterVapourGasConstant float64 = 461.495 //J/(kg·K)
const cAdiabaticIndex float64 = 1.4

//Atmosphere describes the atmosphere conditions
type Atmosphere struct {
	altitude    unit.Distance
	temperature unit.Temperature
	pressure    unit.Pressure
	humidity    float64
}

//CreateStandardAtmosphere creates the standard atmosphere (59°F, 29.92inHg, dry air)
func CreateStandardAtmosphere() Atmosphere {
	return Atmosphere{
		altitude:    unit.MustCreateDistance(0, unit.DistanceFoot),
		temperature: unit.MustCreateTemperature(cStandardTemperature, unit.TemperatureFahrenheit),
		pressure:    unit.MustCreatePressure(cStandardPressure, unit.PressureInHg),
		humidity:    0,
	}
}

//CreateAtmosphere creates the atmosphere with the specified parameters
//
//humidity is relative humidity in 0..1 range
func CreateAtmosphere(temperature unit.Temperature, pressure unit.Pressure, humidity float64) (Atmosphere, error) {
	a := Atmosphere{
		altitude:    unit.MustCreateDistance(0, unit.DistanceFoot),
		temperature: temperature,
		pressure:    pressure,
		humidity:    humidity,
	}
	if err := a.validate(); err != nil {
		return Atmosphere{}, err
	}
	return a, nil
}

//CreateICAOAtmosphere creates default ICAO atmosphere for the specified altitude
func CreateICAOAtmosphere(altitude unit.Distance) (Atmosphere, error) {
	t := cIcaoStandardTemperature + altitude.In(unit.DistanceMeter)*cTemperatureGradient
	if t <= 0 {
		return Atmosphere{}, configError("altitude", "%s is above the modelled atmosphere", altitude)
	}
	p := cStandardPressure * math.Pow(t/cIcaoStandardTemperature, cPressureExponent)
	return Atmosphere{
		altitude:    altitude,
		temperature: unit.MustCreateTemperature(t, unit.TemperatureKelvin).Convert(unit.TemperatureFahrenheit),
		pressure:    unit.MustCreatePressure(p, unit.PressureInHg),
		humidity:    0,
	}, nil
}

func (a Atmosphere) validate() error {
	if a.pressure.In(unit.PressurePascal) <= 0 {
		return configError("pressure", "must be greater than zero, got %s", a.pressure)
	}
	if a.humidity < 0 || a.humidity > 1 || math.IsNaN(a.humidity) {
		return configError("humidity", "must be in 0..1 range, got %.3f", a.humidity)
	}
	if a.temperature.In(unit.TemperatureKelvin) <= 0 {
		return configError("temperature", "must be above absolute zero, got %s", a.temperature)
	}
	return nil
}

//Altitude returns the altitude the atmosphere was created for (zero unless created by CreateICAOAtmosphere)
func (a Atmosphere) Altitude() unit.Distance {
	return a.altitude
}

//Temperature returns the air temperature
func (a Atmosphere) Temperature() unit.Temperature {
	return a.temperature
}

//Pressure returns the air pressure
func (a Atmosphere) Pressure() unit.Pressure {
	return a.pressure
}

//Humidity returns the relative humidity set in 0 to 1 coefficient
//
//multiply this value by 100 to get percents
func (a Atmosphere) Humidity() float64 {
	return a.humidity
}

func (a Atmosphere) String() string {
	return fmt.Sprintf("Pressure:%s,Temperature:%s,Humidity:%.2f%%",
		a.pressure, a.temperature, a.humidity*100)
}

//vapourPressure returns the partial pressure of water vapour in Pa
//
//saturation pressure is calculated using Tetens formula
func (a Atmosphere) vapourPressure() float64 {
	tc := a.temperature.In(unit.TemperatureCelsius)
	saturation := 6.1078 * math.Pow(10, 7.5*tc/(tc+237.3)) * 100
	return a.humidity * saturation
}

//Density returns the air density in kg/m³
func (a Atmosphere) Density() (float64, error) {
	if err := a.validate(); err != nil {
		return 0, err
	}
	t := a.temperature.In(unit.TemperatureKelvin)
	pv := a.vapourPressure()
	pd := a.pressure.In(unit.PressurePascal) - pv
	if pd <= 0 {
		return 0, configError("humidity", "vapour pressure %.0fPa exceeds the air pressure", pv)
	}
	return pd/(cDryAirGasConstant*t) + pv/(cWaterVapourGasConstant*t), nil
}

//DensityRatio returns the ratio of the air density to the standard density
func (a Atmosphere) DensityRatio() (float64, error) {
	d, err := a.Density()
	if err != nil {
		return 0, err
	}
	return d / cStandardDensity, nil
}

//SpeedOfSound returns the speed of sound at the atmosphere temperature
func (a Atmosphere) SpeedOfSound() unit.Velocity {
	t := a.temperature.In(unit.TemperatureKelvin)
	return unit.MustCreateVelocity(math.Sqrt(cAdiabaticIndex*cDryAirGasConstant*t), unit.VelocityMPS).Convert(unit.VelocityFPS)
}
