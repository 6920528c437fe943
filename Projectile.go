package go_pointmass

import (
	"fmt"
	"math"

	"github.com/gehtsoft-usa/go_pointmass/bmath/unit"
)

//cBallisticCoefficientToSI converts lb/in² into kg/m²
const cBallisticCoefficientToSI float64 = 703.0695796

//Projectile keeps description of a projectile and its muzzle velocity
type Projectile struct {
	weight               unit.Weight
	caliber              unit.Distance
	muzzleVelocity       unit.Velocity
	ballisticCoefficient float64
	table                DragTable
}

//CreateProjectile creates the description of a projectile.
//
//ballisticCoefficient is expressed in lb/in² against the standard
//projectile of the drag table.
func CreateProjectile(weight unit.Weight, caliber unit.Distance, muzzleVelocity unit.Velocity,
	ballisticCoefficient float64, table DragTable) (Projectile, error) {
	p := Projectile{
		weight:               weight,
		caliber:              caliber,
		muzzleVelocity:       muzzleVelocity,
		ballisticCoefficient: ballisticCoefficient,
		table:                table,
	}
	if err := p.validate(); err != nil {
		return Projectile{}, err
	}
	return p, nil
}

func (v Projectile) validate() error {
	if v.weight.In(unit.WeightKilogram) <= 0 {
		return configError("weight", "must be greater than zero, got %s", v.weight)
	}
	if v.caliber.In(unit.DistanceMeter) <= 0 {
		return configError("caliber", "must be greater than zero, got %s", v.caliber)
	}
	if v.muzzleVelocity.In(unit.VelocityMPS) <= 0 {
		return configError("muzzle velocity", "must be greater than zero, got %s", v.muzzleVelocity)
	}
	if v.ballisticCoefficient <= 0 || math.IsNaN(v.ballisticCoefficient) {
		return configError("ballistic coefficient", "must be greater than zero, got %.3f", v.ballisticCoefficient)
	}
	if !v.table.Valid() {
		return configError("drag table", "unknown drag table %s", v.table)
	}
	return nil
}

//MustCreateProjectile creates the projectile but panics instead of returned a error
func MustCreateProjectile(weight unit.Weight, caliber unit.Distance, muzzleVelocity unit.Velocity,
	ballisticCoefficient float64, table DragTable) Projectile {
	p, err := CreateProjectile(weight, caliber, muzzleVelocity, ballisticCoefficient, table)
	if err != nil {
		panic(err)
	}
	return p
}

//Weight returns the weight of the projectile
func (v Projectile) Weight() unit.Weight {
	return v.weight
}

//Caliber returns the diameter of the projectile
func (v Projectile) Caliber() unit.Distance {
	return v.caliber
}

//MuzzleVelocity returns the velocity of the projectile at the muzzle
func (v Projectile) MuzzleVelocity() unit.Velocity {
	return v.muzzleVelocity
}

//BallisticCoefficient returns the ballistic coefficient in lb/in²
func (v Projectile) BallisticCoefficient() float64 {
	return v.ballisticCoefficient
}

//DragTable returns the drag table the ballistic coefficient is expressed against
func (v Projectile) DragTable() DragTable {
	return v.table
}

//SectionalDensity returns the sectional density in lb/in²
func (v Projectile) SectionalDensity() float64 {
	d := v.caliber.In(unit.DistanceInch)
	return v.weight.In(unit.WeightPound) / (d * d)
}

func (v Projectile) String() string {
	return fmt.Sprintf("Weight:%s,Caliber:%s,Velocity:%s,BC:%.3f %s",
		v.weight, v.caliber, v.muzzleVelocity, v.ballisticCoefficient, v.table)
}

//dragFactor returns ρ₀·π/(8·BC) in 1/m
func (v Projectile) dragFactor() float64 {
	return cStandardDensity * math.Pi / (8 * v.ballisticCoefficient * cBallisticCoefficientToSI)
}
