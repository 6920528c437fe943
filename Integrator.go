package go_pointmass

import (
	"fmt"

	"github.com/gehtsoft-usa/go_pointmass/bmath/vector"
	"gonum.org/v1/gonum/spatial/r3"
)

//State keeps the position (m), the velocity (m/s) and the elapsed time (s) of the projectile.
//
//Vectors are in the line-of-sight frame: X downrange, Y up and Z to the right.
type State struct {
	Position vector.Vector
	Velocity vector.Vector
	Time     float64
}

func (s State) String() string {
	return fmt.Sprintf("t=%.5fs position=%v velocity=%v", s.Time, s.Position, s.Velocity)
}

//Step advances the state by dt seconds using the explicit midpoint method
func Step(s State, c SimulationConfig, dt float64) State {
	a1 := c.Acceleration(s)
	half := dt / 2
	mid := State{
		Position: r3.Add(s.Position, r3.Scale(half, s.Velocity)),
		Velocity: r3.Add(s.Velocity, r3.Scale(half, a1)),
		Time:     s.Time + half,
	}
	a2 := c.Acceleration(mid)
	return State{
		Position: r3.Add(s.Position, r3.Scale(dt, mid.Velocity)),
		Velocity: r3.Add(s.Velocity, r3.Scale(dt, a2)),
		Time:     s.Time + dt,
	}
}
