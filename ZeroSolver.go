package go_pointmass

import (
	"fmt"
	"math"

	"github.com/gehtsoft-usa/go_pointmass/bmath/unit"
	"github.com/rs/zerolog"
)

const cMaxIterations int = 20

//Target is the point the trajectory has to pass through
type Target struct {
	distance  unit.Distance
	height    unit.Distance
	offset    unit.Distance
	tolerance unit.Distance
}

//CreateTarget creates the zeroing target.
//
//height is the vertical offset above the line of sight, offset is the
//horizontal offset to the right of it. Both misses must be within the
//tolerance for the zero to be found.
func CreateTarget(distance, height, offset, tolerance unit.Distance) (Target, error) {
	if distance.In(unit.DistanceMeter) <= 0 {
		return Target{}, configError("target distance", "must be greater than zero, got %s", distance)
	}
	if tolerance.In(unit.DistanceMeter) <= 0 {
		return Target{}, configError("target tolerance", "must be greater than zero, got %s", tolerance)
	}
	return Target{distance: distance, height: height, offset: offset, tolerance: tolerance}, nil
}

//MustCreateTarget creates the target but panics instead of returned a error
func MustCreateTarget(distance, height, offset, tolerance unit.Distance) Target {
	t, err := CreateTarget(distance, height, offset, tolerance)
	if err != nil {
		panic(err)
	}
	return t
}

//Distance returns the distance to the target
func (v Target) Distance() unit.Distance {
	return v.distance
}

//Height returns the vertical offset of the target
func (v Target) Height() unit.Distance {
	return v.height
}

//Offset returns the horizontal offset of the target
func (v Target) Offset() unit.Distance {
	return v.offset
}

//Tolerance returns the allowed miss
func (v Target) Tolerance() unit.Distance {
	return v.tolerance
}

func (v Target) String() string {
	return fmt.Sprintf("Distance:%s,Height:%s,Offset:%s,Tolerance:%s", v.distance, v.height, v.offset, v.tolerance)
}

//ZeroRecorder receives the progress of the zero solver
type ZeroRecorder interface {
	//ObserveIteration is called after the miss of every iteration is measured
	ObserveIteration(iteration int, elevation, windage unit.Distance)
	//ObserveSolve is called once with the number of iterations and the outcome
	ObserveSolve(iterations int, err error)
}

type nopRecorder struct{}

func (nopRecorder) ObserveIteration(int, unit.Distance, unit.Distance) {}
func (nopRecorder) ObserveSolve(int, error)                            {}

//ZeroSolver finds the launch angles which make the trajectory pass through a target
type ZeroSolver struct {
	maxIterations int
	logger        zerolog.Logger
	recorder      ZeroRecorder
}

//ZeroOption configures the zero solver
type ZeroOption func(*ZeroSolver)

//WithMaxIterations sets the maximum number of trajectories simulated (20 by default)
func WithMaxIterations(n int) ZeroOption {
	return func(s *ZeroSolver) {
		if n > 0 {
			s.maxIterations = n
		}
	}
}

//WithLogger sets the logger; every iteration is logged at debug level
func WithLogger(logger zerolog.Logger) ZeroOption {
	return func(s *ZeroSolver) {
		s.logger = logger
	}
}

//WithRecorder sets the recorder of the solver progress
func WithRecorder(recorder ZeroRecorder) ZeroOption {
	return func(s *ZeroSolver) {
		if recorder != nil {
			s.recorder = recorder
		}
	}
}

//CreateZeroSolver creates the zero solver
func CreateZeroSolver(opts ...ZeroOption) ZeroSolver {
	s := ZeroSolver{
		maxIterations: cMaxIterations,
		logger:        zerolog.Nop(),
		recorder:      nopRecorder{},
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

//MaxIterations returns the maximum number of iterations
func (s ZeroSolver) MaxIterations() int {
	return s.maxIterations
}

//Solve finds the pitch and yaw which put the trajectory through the target.
//
//Every iteration simulates the whole trajectory up to the first point at or past
//the target distance and corrects the angles by the angular size of the miss.
//The error wraps ErrNotConverged (as *ConvergenceError) when the misses
//are still out of tolerance after the last iteration, or ErrTargetNotReached
//when the trajectory terminates before the target.
func (s ZeroSolver) Solve(config SimulationConfig, target Target) (Angles, error) {
	distance := target.distance.In(unit.DistanceMeter)
	height := target.height.In(unit.DistanceMeter)
	offset := target.offset.In(unit.DistanceMeter)
	tolerance := target.tolerance.In(unit.DistanceMeter)

	var pitch, yaw float64
	log := s.logger.With().Str("component", "zero").Stringer("target", target).Logger()

	for iteration := 1; ; iteration++ {
		angles := radians(pitch, yaw)
		p, err := NewTrajectory(config, angles).SeekDistance(target.distance)
		if err != nil {
			log.Warn().Err(err).Int("iteration", iteration).Msg("trajectory did not reach the target")
			s.recorder.ObserveSolve(iteration, err)
			return Angles{}, fmt.Errorf("ZeroSolver: %w", err)
		}

		missV := height - p.state.Position.Y
		missH := offset - p.state.Position.Z
		s.recorder.ObserveIteration(iteration,
			unit.MustCreateDistance(missV, unit.DistanceMeter).Convert(unit.DistanceInch),
			unit.MustCreateDistance(missH, unit.DistanceMeter).Convert(unit.DistanceInch))
		log.Debug().
			Int("iteration", iteration).
			Stringer("angles", angles).
			Float64("elevation_miss_m", missV).
			Float64("windage_miss_m", missH).
			Msg("zero iteration")

		if math.Abs(missV) <= tolerance && math.Abs(missH) <= tolerance {
			log.Info().Int("iterations", iteration).Stringer("angles", angles).Msg("zero found")
			s.recorder.ObserveSolve(iteration, nil)
			return angles, nil
		}
		if iteration >= s.maxIterations {
			err := &ConvergenceError{Iterations: iteration, Elevation: missV, Windage: missH}
			log.Warn().Err(err).Msg("zero not found")
			s.recorder.ObserveSolve(iteration, err)
			return Angles{}, fmt.Errorf("ZeroSolver: %w", err)
		}

		pitch += math.Atan(missV / distance)
		yaw += math.Atan(missH / distance)
	}
}

func radians(pitch, yaw float64) Angles {
	return CreateAngles(
		unit.MustCreateAngular(pitch, unit.AngularRadian).Convert(unit.AngularMOA),
		unit.MustCreateAngular(yaw, unit.AngularRadian).Convert(unit.AngularMOA))
}
