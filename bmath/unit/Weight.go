package unit

//WeightGrain is the value indicating that weight value is expressed in grains
const WeightGrain byte = 70

//WeightOunce is the value indicating that weight value is expressed in ounces
const WeightOunce byte = 71

//WeightGram is the value indicating that weight value is expressed in grams
const WeightGram byte = 72

//WeightPound is the value indicating that weight value is expressed in pounds
const WeightPound byte = 73

//WeightKilogram is the value indicating that weight value is expressed in kilograms
const WeightKilogram byte = 74

//WeightNewton is the value indicating that weight value is expressed in newtons of weight at standard gravity
const WeightNewton byte = 75

var weightUnits = map[byte]linearUnit{
	WeightGrain:    {factor: 6.479891e-05, symbol: "gr", accuracy: 0},
	WeightOunce:    {factor: 0.028349523125, symbol: "oz", accuracy: 1},
	WeightGram:     {factor: 0.001, symbol: "g", accuracy: 1},
	WeightPound:    {factor: 0.45359237, symbol: "lb", accuracy: 3},
	WeightKilogram: {factor: 1, symbol: "kg", accuracy: 3},
	WeightNewton:   {factor: 1 / 9.80665, symbol: "N", accuracy: 3},
}

//Weight struct keeps the weight (mass) of an object
type Weight struct {
	value        float64
	defaultUnits byte
}

//CreateWeight creates a weight value.
//
//units are measurement unit and may be any value from
//unit.Weight* constants.
func CreateWeight(value float64, units byte) (Weight, error) {
	v, err := toCanonical("Weight", weightUnits, value, units)
	if err != nil {
		return Weight{}, err
	}
	return Weight{value: v, defaultUnits: units}, nil
}

//MustCreateWeight creates the weight value but panics instead of returned a error
func MustCreateWeight(value float64, units byte) Weight {
	v, err := CreateWeight(value, units)
	if err != nil {
		panic(err)
	}
	return v
}

//Value returns the value of the weight in the specified units.
func (v Weight) Value(units byte) (float64, error) {
	return fromCanonical("Weight", weightUnits, v.value, units)
}

//Convert converts the value into the specified units.
func (v Weight) Convert(units byte) Weight {
	return Weight{value: v.value, defaultUnits: units}
}

//In converts the value in the specified units.
//Returns 0 if unit conversion is not possible.
func (v Weight) In(units byte) float64 {
	x, err := v.Value(units)
	if err != nil {
		return 0
	}
	return x
}

func (v Weight) String() string {
	return formatLinear(weightUnits, v.value, v.defaultUnits)
}

//Units return the units in which the value is measured
func (v Weight) Units() byte {
	return v.defaultUnits
}
