package go_pointmass

import (
	"fmt"
	"iter"

	"github.com/gehtsoft-usa/go_pointmass/bmath/unit"
	"github.com/gehtsoft-usa/go_pointmass/bmath/vector"
	"gonum.org/v1/gonum/spatial/r3"
)

//Termination tells why the trajectory has stopped
type Termination byte

const (
	//TerminationNone means the trajectory is still running
	TerminationNone Termination = iota
	//TerminationMinimumVelocity means the projectile slowed below the minimum velocity
	TerminationMinimumVelocity
	//TerminationMaximumDrop means the projectile fell below the maximum drop
	TerminationMaximumDrop
	//TerminationStalled means the projectile stopped moving downrange
	TerminationStalled
	//TerminationMaximumTime means the flight time exceeded the limit
	TerminationMaximumTime
)

func (t Termination) String() string {
	switch t {
	case TerminationNone:
		return "running"
	case TerminationMinimumVelocity:
		return "minimum velocity"
	case TerminationMaximumDrop:
		return "maximum drop"
	case TerminationStalled:
		return "stalled"
	case TerminationMaximumTime:
		return "maximum time"
	default:
		return fmt.Sprintf("Termination(%d)", byte(t))
	}
}

//Trajectory produces the points of one flight, one integration step per point.
//
//The trajectory is a single pass sequence: it can't be restarted
//and it isn't safe for concurrent use.
type Trajectory struct {
	config      SimulationConfig
	state       State
	packet      Packet
	started     bool
	termination Termination
}

//NewTrajectory creates the trajectory of a projectile launched with the angles
//
//The scope pitch and yaw are added to the angles, the scope cant rolls
//the muzzle position and the launch direction about the line of sight.
func NewTrajectory(config SimulationConfig, angles Angles) *Trajectory {
	return &Trajectory{config: config, state: initialState(config, angles)}
}

func initialState(c SimulationConfig, angles Angles) State {
	scope := c.params.Scope
	cant := scope.Cant().In(unit.AngularRadian)
	pitch := angles.Pitch().In(unit.AngularRadian) + scope.Pitch().In(unit.AngularRadian)
	yaw := angles.Yaw().In(unit.AngularRadian) + scope.Yaw().In(unit.AngularRadian)

	muzzle := vector.Create(0, -scope.Height().In(unit.DistanceMeter), -scope.Offset().In(unit.DistanceMeter))
	direction := vector.PivotX(vector.PivotY(vector.PivotZ(vector.Create(1, 0, 0), pitch), yaw), cant)
	return State{
		Position: vector.PivotX(muzzle, cant),
		Velocity: r3.Scale(c.params.Projectile.MuzzleVelocity().In(unit.VelocityMPS), direction),
	}
}

//Next advances the trajectory to the next point.
//
//The first call returns the muzzle point. Next returns false once
//the trajectory is terminated, see Termination.
func (t *Trajectory) Next() bool {
	if t.termination != TerminationNone {
		return false
	}
	if t.started {
		t.state = Step(t.state, t.config, t.config.timeStep)
		if t.termination = t.check(); t.termination != TerminationNone {
			return false
		}
	}
	t.started = true
	t.packet = createPacket(t.state, t.config)
	return true
}

func (t *Trajectory) check() Termination {
	s := t.state
	switch {
	case r3.Norm(s.Velocity) < t.config.minimumVelocity:
		return TerminationMinimumVelocity
	case s.Position.Y < -t.config.maximumDrop:
		return TerminationMaximumDrop
	case s.Velocity.X <= 0:
		return TerminationStalled
	case s.Time > t.config.maximumTime:
		return TerminationMaximumTime
	}
	return TerminationNone
}

//Packet returns the current point
func (t *Trajectory) Packet() Packet {
	return t.packet
}

//Termination returns the reason the trajectory has stopped
func (t *Trajectory) Termination() Termination {
	return t.termination
}

//All returns the sequence of the remaining points.
//
//The sequence shares the pass with Next: breaking the loop and
//iterating again continues after the last point seen.
func (t *Trajectory) All() iter.Seq[Packet] {
	return func(yield func(Packet) bool) {
		for t.Next() {
			if !yield(t.packet) {
				return
			}
		}
	}
}

//SeekDistance advances the trajectory to the first point at or past the distance.
//
//If the trajectory terminates earlier the error wraps ErrTargetNotReached.
func (t *Trajectory) SeekDistance(distance unit.Distance) (Packet, error) {
	d := distance.In(unit.DistanceMeter)
	if t.started && t.termination == TerminationNone && t.packet.state.Position.X >= d {
		return t.packet, nil
	}
	for t.Next() {
		if t.packet.state.Position.X >= d {
			return t.packet, nil
		}
	}
	return Packet{}, fmt.Errorf("Trajectory: %w: %s requested, stopped at %s (%s)",
		ErrTargetNotReached, distance, t.packet.Distance(), t.termination)
}
