package go_pointmass

import (
	"math"

	"github.com/gehtsoft-usa/go_pointmass/bmath/unit"
)

//Adjustment tells where to hold to hit the line of sight point
type Adjustment byte

const (
	//AdjustmentNone means the miss is within the tolerance
	AdjustmentNone Adjustment = iota
	//AdjustmentUp means the projectile is below the line of sight
	AdjustmentUp
	//AdjustmentDown means the projectile is above the line of sight
	AdjustmentDown
	//AdjustmentLeft means the projectile is to the right of the line of sight
	AdjustmentLeft
	//AdjustmentRight means the projectile is to the left of the line of sight
	AdjustmentRight
)

func (a Adjustment) String() string {
	switch a {
	case AdjustmentUp:
		return "U"
	case AdjustmentDown:
		return "D"
	case AdjustmentLeft:
		return "L"
	case AdjustmentRight:
		return "R"
	default:
		return "*"
	}
}

//Measurement is the user facing projection of a trajectory point
type Measurement struct {
	Distance            unit.Distance
	Elevation           unit.Distance
	ElevationAngle      unit.Angular
	ElevationAdjustment Adjustment
	Windage             unit.Distance
	WindageAngle        unit.Angular
	WindageAdjustment   Adjustment
	Velocity            unit.Velocity
	Mach                float64
	Energy              unit.Energy
	OptimalGameWeight   unit.Weight
	Acceleration        unit.Acceleration
	Time                unit.Time
}

//Measure projects the packet into the user facing quantities.
//
//Angles are the angular size of the deviation seen from the muzzle, in MOA.
//Adjustments are AdjustmentNone unless the deviation exceeds the tolerance.
func Measure(p Packet, tolerance unit.Distance) Measurement {
	distance := p.Distance()
	elevation := p.Elevation()
	windage := p.Windage()
	tol := math.Abs(tolerance.In(unit.DistanceMeter))

	e := elevation.In(unit.DistanceMeter)
	w := windage.In(unit.DistanceMeter)
	var ea, wa Adjustment
	switch {
	case e > tol:
		ea = AdjustmentDown
	case e < -tol:
		ea = AdjustmentUp
	}
	switch {
	case w > tol:
		wa = AdjustmentLeft
	case w < -tol:
		wa = AdjustmentRight
	}

	return Measurement{
		Distance:            distance,
		Elevation:           elevation,
		ElevationAngle:      angleOf(e, distance),
		ElevationAdjustment: ea,
		Windage:             windage,
		WindageAngle:        angleOf(w, distance),
		WindageAdjustment:   wa,
		Velocity:            p.Velocity(),
		Mach:                p.Mach(),
		Energy:              p.Energy(),
		OptimalGameWeight:   p.OptimalGameWeight(),
		Acceleration:        p.Acceleration(),
		Time:                p.Time(),
	}
}

func angleOf(offset float64, distance unit.Distance) unit.Angular {
	d := distance.In(unit.DistanceMeter)
	var a float64
	if d > 0 {
		a = math.Atan(offset / d)
	}
	return unit.MustCreateAngular(a, unit.AngularRadian).Convert(unit.AngularMOA)
}
