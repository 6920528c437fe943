package go_pointmass

import (
	"math"

	"github.com/gehtsoft-usa/go_pointmass/bmath/unit"
	"gonum.org/v1/gonum/spatial/r3"
)

//Packet keeps information about one point of the trajectory.
type Packet struct {
	state        State
	mach         float64
	mass         float64 //kg
	acceleration float64 //m/s²
}

func createPacket(s State, c SimulationConfig) Packet {
	return Packet{
		state:        s,
		mach:         c.Mach(s.Velocity),
		mass:         c.mass,
		acceleration: r3.Norm(c.Acceleration(s)),
	}
}

//State returns the raw state of the projectile
func (v Packet) State() State {
	return v.state
}

//Time return the amount of time spent since the shot moment
func (v Packet) Time() unit.Time {
	return unit.MustCreateTime(v.state.Time, unit.TimeSecond)
}

//Distance returns the distance travelled along the line of sight
func (v Packet) Distance() unit.Distance {
	return unit.MustCreateDistance(v.state.Position.X, unit.DistanceMeter).Convert(unit.DistanceYard)
}

//Elevation returns the vertical deviation of the projectile from the line of sight
//
//The positive value means the projectile is above the line of sight.
func (v Packet) Elevation() unit.Distance {
	return unit.MustCreateDistance(v.state.Position.Y, unit.DistanceMeter).Convert(unit.DistanceInch)
}

//Windage returns the horizontal deviation of the projectile from the line of sight
//
//The positive value means the projectile is to the right of the line of sight.
func (v Packet) Windage() unit.Distance {
	return unit.MustCreateDistance(v.state.Position.Z, unit.DistanceMeter).Convert(unit.DistanceInch)
}

//Velocity returns the current projectile velocity
func (v Packet) Velocity() unit.Velocity {
	return unit.MustCreateVelocity(r3.Norm(v.state.Velocity), unit.VelocityMPS).Convert(unit.VelocityFPS)
}

//Mach returns the proportion between the projectile velocity relative to the air and the speed of sound
func (v Packet) Mach() float64 {
	return v.mach
}

//Energy returns the kinetic energy of the projectile
func (v Packet) Energy() unit.Energy {
	speed := r3.Norm(v.state.Velocity)
	return unit.MustCreateEnergy(v.mass*speed*speed/2, unit.EnergyJoule).Convert(unit.EnergyFootPound)
}

//Acceleration returns the magnitude of the net acceleration
func (v Packet) Acceleration() unit.Acceleration {
	return unit.MustCreateAcceleration(v.acceleration, unit.AccelerationMPS2).Convert(unit.AccelerationFPS2)
}

//OptimalGameWeight returns the weight of game to which a kill shot is
//probable with the kinetic energy that the projectile currently have
func (v Packet) OptimalGameWeight() unit.Weight {
	w := unit.MustCreateWeight(v.mass, unit.WeightKilogram).In(unit.WeightGrain)
	speed := unit.MustCreateVelocity(r3.Norm(v.state.Velocity), unit.VelocityMPS).In(unit.VelocityFPS)
	return unit.MustCreateWeight(math.Pow(w, 2)*math.Pow(speed, 3)*1.5e-12, unit.WeightPound)
}
