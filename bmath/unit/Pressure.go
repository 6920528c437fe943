package unit

//PressureMmHg is the value indicating that pressure value is expressed in millimeters of mercury
const PressureMmHg byte = 40

//PressureInHg is the value indicating that pressure value is expressed in inches of mercury
const PressureInHg byte = 41

//PressureBar is the value indicating that pressure value is expressed in bars
const PressureBar byte = 42

//PressureHPa is the value indicating that pressure value is expressed in hectopascals
const PressureHPa byte = 43

//PressurePSI is the value indicating that pressure value is expressed in pounds per square inch
const PressurePSI byte = 44

//PressurePascal is the value indicating that pressure value is expressed in pascals
const PressurePascal byte = 45

var pressureUnits = map[byte]linearUnit{
	PressureMmHg:   {factor: 133.322387415, symbol: "mmHg", accuracy: 0},
	PressureInHg:   {factor: 3386.389, symbol: "inHg", accuracy: 2},
	PressureBar:    {factor: 100000, symbol: "bar", accuracy: 2},
	PressureHPa:    {factor: 100, symbol: "hPa", accuracy: 4},
	PressurePSI:    {factor: 6894.757293168, symbol: "psi", accuracy: 4},
	PressurePascal: {factor: 1, symbol: "Pa", accuracy: 0},
}

//Pressure struct keeps the pressure value
type Pressure struct {
	value        float64
	defaultUnits byte
}

//CreatePressure creates a pressure value.
//
//units are measurement unit and may be any value from
//unit.Pressure* constants.
func CreatePressure(value float64, units byte) (Pressure, error) {
	v, err := toCanonical("Pressure", pressureUnits, value, units)
	if err != nil {
		return Pressure{}, err
	}
	return Pressure{value: v, defaultUnits: units}, nil
}

//MustCreatePressure creates the pressure value but panics instead of returned a error
func MustCreatePressure(value float64, units byte) Pressure {
	v, err := CreatePressure(value, units)
	if err != nil {
		panic(err)
	}
	return v
}

//Value returns the value of the pressure in the specified units.
func (v Pressure) Value(units byte) (float64, error) {
	return fromCanonical("Pressure", pressureUnits, v.value, units)
}

//Convert converts the value into the specified units.
func (v Pressure) Convert(units byte) Pressure {
	return Pressure{value: v.value, defaultUnits: units}
}

//In converts the value in the specified units.
//Returns 0 if unit conversion is not possible.
func (v Pressure) In(units byte) float64 {
	x, err := v.Value(units)
	if err != nil {
		return 0
	}
	return x
}

func (v Pressure) String() string {
	return formatLinear(pressureUnits, v.value, v.defaultUnits)
}

//Units return the units in which the value is measured
func (v Pressure) Units() byte {
	return v.defaultUnits
}
