package unit

//AccelerationMPS2 is the value indicating that acceleration value is expressed in meters per second squared
const AccelerationMPS2 byte = 80

//AccelerationFPS2 is the value indicating that acceleration value is expressed in feet per second squared
const AccelerationFPS2 byte = 81

//AccelerationG is the value indicating that acceleration value is expressed in multiples of standard gravity
const AccelerationG byte = 82

var accelerationUnits = map[byte]linearUnit{
	AccelerationMPS2: {factor: 1, symbol: "m/s²", accuracy: 3},
	AccelerationFPS2: {factor: 0.3048, symbol: "ft/s²", accuracy: 3},
	AccelerationG:    {factor: 9.80665, symbol: "g", accuracy: 4},
}

//Acceleration struct keeps an acceleration
type Acceleration struct {
	value        float64
	defaultUnits byte
}

//CreateAcceleration creates an acceleration value.
//
//units are measurement unit and may be any value from
//unit.Acceleration* constants.
func CreateAcceleration(value float64, units byte) (Acceleration, error) {
	v, err := toCanonical("Acceleration", accelerationUnits, value, units)
	if err != nil {
		return Acceleration{}, err
	}
	return Acceleration{value: v, defaultUnits: units}, nil
}

//MustCreateAcceleration creates the acceleration value but panics instead of returned a error
func MustCreateAcceleration(value float64, units byte) Acceleration {
	v, err := CreateAcceleration(value, units)
	if err != nil {
		panic(err)
	}
	return v
}

//Value returns the value of the acceleration in the specified units.
func (v Acceleration) Value(units byte) (float64, error) {
	return fromCanonical("Acceleration", accelerationUnits, v.value, units)
}

//Convert converts the value into the specified units.
func (v Acceleration) Convert(units byte) Acceleration {
	return Acceleration{value: v.value, defaultUnits: units}
}

//In converts the value in the specified units.
//Returns 0 if unit conversion is not possible.
func (v Acceleration) In(units byte) float64 {
	x, err := v.Value(units)
	if err != nil {
		return 0
	}
	return x
}

func (v Acceleration) String() string {
	return formatLinear(accelerationUnits, v.value, v.defaultUnits)
}

//Units return the units in which the value is measured
func (v Acceleration) Units() byte {
	return v.defaultUnits
}
