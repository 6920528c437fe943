package go_pointmass

import (
	"fmt"
	"math"

	"github.com/gehtsoft-usa/go_pointmass/bmath/unit"
	"github.com/gehtsoft-usa/go_pointmass/bmath/vector"
)

//Wind keeps the wind speed and the direction the wind blows from.
//
//The direction is measured clockwise from the line of sight:
//0 is a head wind, 90° blows from the right to the left.
type Wind struct {
	velocity  unit.Velocity
	direction unit.Angular
}

//CreateWind creates the wind description
func CreateWind(velocity unit.Velocity, direction unit.Angular) Wind {
	return Wind{velocity: velocity, direction: direction}
}

//CreateNoWind creates the calm
func CreateNoWind() Wind {
	return Wind{
		velocity:  unit.MustCreateVelocity(0, unit.VelocityMPH),
		direction: unit.MustCreateAngular(0, unit.AngularDegree),
	}
}

//Velocity returns the wind speed
func (v Wind) Velocity() unit.Velocity {
	return v.velocity
}

//Direction returns the direction the wind blows from
func (v Wind) Direction() unit.Angular {
	return v.direction
}

func (v Wind) String() string {
	return fmt.Sprintf("Velocity:%s,Direction:%s", v.velocity, v.direction)
}

//vector returns the air velocity in the line-of-sight frame, m/s
func (v Wind) vector() vector.Vector {
	speed := v.velocity.In(unit.VelocityMPS)
	s, c := math.Sincos(v.direction.In(unit.AngularRadian))
	return vector.Create(-speed*c, 0, -speed*s)
}
