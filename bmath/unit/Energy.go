package unit

//EnergyFootPound is the value indicating that energy value is expressed in foot-pounds
const EnergyFootPound byte = 30

//EnergyJoule is the value indicating that energy value is expressed in joules
const EnergyJoule byte = 31

var energyUnits = map[byte]linearUnit{
	EnergyFootPound: {factor: 1.3558179483314003, symbol: "ft·lb", accuracy: 0},
	EnergyJoule:     {factor: 1, symbol: "J", accuracy: 0},
}

//Energy struct keeps the kinetic energy
type Energy struct {
	value        float64
	defaultUnits byte
}

//CreateEnergy creates an energy value.
//
//units are measurement unit and may be any value from
//unit.Energy* constants.
func CreateEnergy(value float64, units byte) (Energy, error) {
	v, err := toCanonical("Energy", energyUnits, value, units)
	if err != nil {
		return Energy{}, err
	}
	return Energy{value: v, defaultUnits: units}, nil
}

//MustCreateEnergy creates the energy value but panics instead of returned a error
func MustCreateEnergy(value float64, units byte) Energy {
	v, err := CreateEnergy(value, units)
	if err != nil {
		panic(err)
	}
	return v
}

//Value returns the value of the energy in the specified units.
func (v Energy) Value(units byte) (float64, error) {
	return fromCanonical("Energy", energyUnits, v.value, units)
}

//Convert converts the value into the specified units.
func (v Energy) Convert(units byte) Energy {
	return Energy{value: v.value, defaultUnits: units}
}

//In converts the value in the specified units.
//Returns 0 if unit conversion is not possible.
func (v Energy) In(units byte) float64 {
	x, err := v.Value(units)
	if err != nil {
		return 0
	}
	return x
}

func (v Energy) String() string {
	return formatLinear(energyUnits, v.value, v.defaultUnits)
}

//Units return the units in which the value is measured
func (v Energy) Units() byte {
	return v.defaultUnits
}
