package go_pointmass

import (
	"github.com/gehtsoft-usa/go_pointmass/bmath/vector"
	"gonum.org/v1/gonum/spatial/r3"
)

//Acceleration returns the net acceleration of the projectile in the state, m/s²
//
//The acceleration is the sum of the drag, the gravity and the Coriolis acceleration,
//each of them may be switched off by the configuration flags.
func (c SimulationConfig) Acceleration(s State) vector.Vector {
	var a vector.Vector
	if c.params.Flags.UseDrag {
		a = r3.Add(a, c.dragAcceleration(s.Velocity))
	}
	if c.params.Flags.UseGravity {
		a = r3.Add(a, c.gravity)
	}
	if c.params.Flags.UseCoriolis {
		a = r3.Add(a, r3.Scale(-2, r3.Cross(c.earthRotation, s.Velocity)))
	}
	return a
}

//dragAcceleration is -ρ/ρ₀·Cd(M)·ρ₀π/(8·BC)·|v-w|·(v-w)
func (c SimulationConfig) dragAcceleration(velocity vector.Vector) vector.Vector {
	air := r3.Sub(velocity, c.wind)
	speed := r3.Norm(air)
	if speed == 0 {
		return vector.Vector{}
	}
	cd := c.params.Projectile.table.Coefficient(speed / c.speedOfSound)
	return r3.Scale(-c.densityRatio*cd*c.dragFactor*speed, air)
}

//Mach returns the mach number of the velocity relative to the air
func (c SimulationConfig) Mach(velocity vector.Vector) float64 {
	return r3.Norm(r3.Sub(velocity, c.wind)) / c.speedOfSound
}
