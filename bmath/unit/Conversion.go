//Package unit keeps typed physical quantities.
//
//Every quantity is stored in its canonical SI unit (meter, meter per second,
//kilogram, radian, pascal, kelvin, joule, meter per second squared, second)
//and remembers the unit it was created in, so it can be printed back the way
//the user entered it.
package unit

import "fmt"

//linearUnit describes a unit which differs from the canonical unit by a factor
type linearUnit struct {
	factor   float64 //value of one unit in canonical units
	symbol   string
	accuracy int
}

func toCanonical(kind string, units map[byte]linearUnit, value float64, u byte) (float64, error) {
	d, ok := units[u]
	if !ok {
		return 0, fmt.Errorf("%s: unit %d is not supported", kind, u)
	}
	return value * d.factor, nil
}

func fromCanonical(kind string, units map[byte]linearUnit, value float64, u byte) (float64, error) {
	d, ok := units[u]
	if !ok {
		return 0, fmt.Errorf("%s: unit %d is not supported", kind, u)
	}
	return value / d.factor, nil
}

func formatLinear(units map[byte]linearUnit, value float64, u byte) string {
	d, ok := units[u]
	if !ok {
		return fmt.Sprintf("%.6f?", value)
	}
	return fmt.Sprintf("%.*f%s", d.accuracy, value/d.factor, d.symbol)
}
