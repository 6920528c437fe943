package unit

//VelocityMPS is the value indicating that velocity value is expressed in meters per second
const VelocityMPS byte = 60

//VelocityKMH is the value indicating that velocity value is expressed in kilometers per hour
const VelocityKMH byte = 61

//VelocityFPS is the value indicating that velocity value is expressed in feet per second
const VelocityFPS byte = 62

//VelocityMPH is the value indicating that velocity value is expressed in miles per hour
const VelocityMPH byte = 63

//VelocityKT is the value indicating that velocity value is expressed in knots
const VelocityKT byte = 64

var velocityUnits = map[byte]linearUnit{
	VelocityMPS: {factor: 1, symbol: "m/s", accuracy: 0},
	VelocityKMH: {factor: 1 / 3.6, symbol: "km/h", accuracy: 1},
	VelocityFPS: {factor: 0.3048, symbol: "ft/s", accuracy: 1},
	VelocityMPH: {factor: 0.44704, symbol: "mph", accuracy: 1},
	VelocityKT:  {factor: 1852.0 / 3600, symbol: "kt", accuracy: 1},
}

//Velocity struct keeps velocity or speed values
type Velocity struct {
	value        float64
	defaultUnits byte
}

//CreateVelocity creates a velocity value.
//
//units are measurement unit and may be any value from
//unit.Velocity* constants.
func CreateVelocity(value float64, units byte) (Velocity, error) {
	v, err := toCanonical("Velocity", velocityUnits, value, units)
	if err != nil {
		return Velocity{}, err
	}
	return Velocity{value: v, defaultUnits: units}, nil
}

//MustCreateVelocity creates the velocity value but panics instead of returned a error
func MustCreateVelocity(value float64, units byte) Velocity {
	v, err := CreateVelocity(value, units)
	if err != nil {
		panic(err)
	}
	return v
}

//Value returns the value of the velocity in the specified units.
func (v Velocity) Value(units byte) (float64, error) {
	return fromCanonical("Velocity", velocityUnits, v.value, units)
}

//Convert converts the value into the specified units.
func (v Velocity) Convert(units byte) Velocity {
	return Velocity{value: v.value, defaultUnits: units}
}

//In converts the value in the specified units.
//Returns 0 if unit conversion is not possible.
func (v Velocity) In(units byte) float64 {
	x, err := v.Value(units)
	if err != nil {
		return 0
	}
	return x
}

func (v Velocity) String() string {
	return formatLinear(velocityUnits, v.value, v.defaultUnits)
}

//Units return the units in which the value is measured
func (v Velocity) Units() byte {
	return v.defaultUnits
}
