package unit

//TimeSecond is the value indicating that time value is expressed in seconds
const TimeSecond byte = 90

//TimeMillisecond is the value indicating that time value is expressed in milliseconds
const TimeMillisecond byte = 91

//TimeMicrosecond is the value indicating that time value is expressed in microseconds
const TimeMicrosecond byte = 92

//TimeMinute is the value indicating that time value is expressed in minutes
const TimeMinute byte = 93

var timeUnits = map[byte]linearUnit{
	TimeSecond:      {factor: 1, symbol: "s", accuracy: 3},
	TimeMillisecond: {factor: 0.001, symbol: "ms", accuracy: 3},
	TimeMicrosecond: {factor: 1e-06, symbol: "µs", accuracy: 1},
	TimeMinute:      {factor: 60, symbol: "min", accuracy: 3},
}

//Time struct keeps an amount of time
type Time struct {
	value        float64
	defaultUnits byte
}

//CreateTime creates a time value.
//
//units are measurement unit and may be any value from
//unit.Time* constants.
func CreateTime(value float64, units byte) (Time, error) {
	v, err := toCanonical("Time", timeUnits, value, units)
	if err != nil {
		return Time{}, err
	}
	return Time{value: v, defaultUnits: units}, nil
}

//MustCreateTime creates the time value but panics instead of returned a error
func MustCreateTime(value float64, units byte) Time {
	v, err := CreateTime(value, units)
	if err != nil {
		panic(err)
	}
	return v
}

//Value returns the value of the time in the specified units.
func (v Time) Value(units byte) (float64, error) {
	return fromCanonical("Time", timeUnits, v.value, units)
}

//Convert converts the value into the specified units.
func (v Time) Convert(units byte) Time {
	return Time{value: v.value, defaultUnits: units}
}

//In converts the value in the specified units.
//Returns 0 if unit conversion is not possible.
func (v Time) In(units byte) float64 {
	x, err := v.Value(units)
	if err != nil {
		return 0
	}
	return x
}

func (v Time) String() string {
	return formatLinear(timeUnits, v.value, v.defaultUnits)
}

//Units return the units in which the value is measured
func (v Time) Units() byte {
	return v.defaultUnits
}
