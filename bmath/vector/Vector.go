//Package vector provides the 3d vector type and the frame rotations
//required for the point-mass trajectory calculation.
//
//The line-of-sight frame is used everywhere: X points downrange,
//Y points up and Z points to the right of the shooter.
package vector

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

//Vector is a 3D vector
type Vector = r3.Vec

//Create creates a vector from its coordinates
func Create(x, y, z float64) Vector {
	return Vector{X: x, Y: y, Z: z}
}

//Normalize returns a vector of magnitude one which is collinear to the vector.
//
//A vector shorter than 1e-10 is returned unchanged.
func Normalize(v Vector) Vector {
	if r3.Norm(v) < 1e-10 {
		return v
	}
	return r3.Unit(v)
}

//PivotX rotates the vector about the X (downrange) axis.
//
//A positive angle rolls Y toward Z (clockwise cant seen from behind).
func PivotX(v Vector, angle float64) Vector {
	s, c := math.Sincos(angle)
	return Vector{X: v.X, Y: v.Y*c - v.Z*s, Z: v.Y*s + v.Z*c}
}

//PivotY rotates the vector about the Y (vertical) axis.
//
//A positive angle turns X toward Z, i.e. to the right.
func PivotY(v Vector, angle float64) Vector {
	s, c := math.Sincos(angle)
	return Vector{X: v.X*c - v.Z*s, Y: v.Y, Z: v.X*s + v.Z*c}
}

//PivotZ rotates the vector about the Z (horizontal) axis.
//
//A positive angle turns X toward Y, i.e. up.
func PivotZ(v Vector, angle float64) Vector {
	s, c := math.Sincos(angle)
	return Vector{X: v.X*c - v.Y*s, Y: v.X*s + v.Y*c, Z: v.Z}
}
