package unit

//DistanceInch is the value indicating that the distance value is set in inches
const DistanceInch byte = 10

//DistanceFoot is the value indicating that the distance value is set in feet
const DistanceFoot byte = 11

//DistanceYard is the value indicating that the distance value is set in yards
const DistanceYard byte = 12

//DistanceMile is the value indicating that the distance value is set in miles
const DistanceMile byte = 13

//DistanceNauticalMile is the value indicating that the distance value is set in nautical miles
const DistanceNauticalMile byte = 14

//DistanceMillimeter is the value indicating that the distance value is set in millimeters
const DistanceMillimeter byte = 15

//DistanceCentimeter is the value indicating that the distance value is set in centimeters
const DistanceCentimeter byte = 16

//DistanceMeter is the value indicating that the distance value is set in meters
const DistanceMeter byte = 17

//DistanceKilometer is the value indicating that the distance value is set in kilometers
const DistanceKilometer byte = 18

//DistanceLine is the value indicating that the distance value is set in lines (1/10 of inch)
const DistanceLine byte = 19

var distanceUnits = map[byte]linearUnit{
	DistanceInch:         {factor: 0.0254, symbol: "\"", accuracy: 1},
	DistanceFoot:         {factor: 0.3048, symbol: "'", accuracy: 2},
	DistanceYard:         {factor: 0.9144, symbol: "yd", accuracy: 3},
	DistanceMile:         {factor: 1609.344, symbol: "mi", accuracy: 3},
	DistanceNauticalMile: {factor: 1852, symbol: "nm", accuracy: 3},
	DistanceMillimeter:   {factor: 0.001, symbol: "mm", accuracy: 0},
	DistanceCentimeter:   {factor: 0.01, symbol: "cm", accuracy: 1},
	DistanceMeter:        {factor: 1, symbol: "m", accuracy: 2},
	DistanceKilometer:    {factor: 1000, symbol: "km", accuracy: 3},
	DistanceLine:         {factor: 0.00254, symbol: "ln", accuracy: 1},
}

//Distance structure keeps the distance value
type Distance struct {
	value        float64
	defaultUnits byte
}

//CreateDistance creates a distance value.
//
//units are measurement unit and may be any value from
//unit.Distance* constants.
func CreateDistance(value float64, units byte) (Distance, error) {
	v, err := toCanonical("Distance", distanceUnits, value, units)
	if err != nil {
		return Distance{}, err
	}
	return Distance{value: v, defaultUnits: units}, nil
}

//MustCreateDistance creates the distance value but panics instead of returned a error
func MustCreateDistance(value float64, units byte) Distance {
	v, err := CreateDistance(value, units)
	if err != nil {
		panic(err)
	}
	return v
}

//Value returns the value of the distance in the specified units.
//
//The method returns a error in case the unit is
//not supported.
func (v Distance) Value(units byte) (float64, error) {
	return fromCanonical("Distance", distanceUnits, v.value, units)
}

//Convert converts the value into the specified units.
func (v Distance) Convert(units byte) Distance {
	return Distance{value: v.value, defaultUnits: units}
}

//In converts the value in the specified units.
//Returns 0 if unit conversion is not possible.
func (v Distance) In(units byte) float64 {
	x, err := v.Value(units)
	if err != nil {
		return 0
	}
	return x
}

func (v Distance) String() string {
	return formatLinear(distanceUnits, v.value, v.defaultUnits)
}

//Units return the units in which the value is measured
func (v Distance) Units() byte {
	return v.defaultUnits
}
