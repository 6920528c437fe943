package go_pointmass_test

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/gehtsoft-usa/go_pointmass"
	"github.com/gehtsoft-usa/go_pointmass/bmath/unit"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	iterations []int
	elevations []float64
	solved     int
	err        error
}

func (r *recorder) ObserveIteration(iteration int, elevation, windage unit.Distance) {
	r.iterations = append(r.iterations, iteration)
	r.elevations = append(r.elevations, elevation.In(unit.DistanceInch))
}

func (r *recorder) ObserveSolve(iterations int, err error) {
	r.solved = iterations
	r.err = err
}

func defaultTarget() go_pointmass.Target {
	return go_pointmass.MustCreateTarget(yards(100), inches(0), inches(0), inches(0.001))
}

func TestZeroConvergence(t *testing.T) {
	c := createConfig(t, scenarioParams())
	rec := &recorder{}
	solver := go_pointmass.CreateZeroSolver(go_pointmass.WithRecorder(rec))

	angles, err := solver.Solve(c, defaultTarget())
	require.NoError(t, err)
	assert.Greater(t, angles.Pitch().In(unit.AngularMOA), 0.0)
	assert.LessOrEqual(t, rec.solved, solver.MaxIterations())
	assert.NoError(t, rec.err)
	assert.Len(t, rec.iterations, rec.solved)

	packet, err := go_pointmass.NewTrajectory(c, angles).SeekDistance(yards(100))
	require.NoError(t, err)
	assert.LessOrEqual(t, math.Abs(packet.Elevation().In(unit.DistanceInch)), 0.001)
	assert.LessOrEqual(t, math.Abs(packet.Windage().In(unit.DistanceInch)), 0.001)
}

func TestZeroScenarioFiring(t *testing.T) {
	zeroConfig := createConfig(t, scenarioParams())
	angles, err := go_pointmass.CreateZeroSolver().Solve(zeroConfig, defaultTarget())
	require.NoError(t, err)

	firing := go_pointmass.NewTrajectory(createConfig(t, scenarioParams()), angles)
	require.True(t, firing.Next())
	assert.InDelta(t, -1.5, firing.Packet().Elevation().In(unit.DistanceInch), 1e-3)

	p300, err := firing.SeekDistance(yards(300))
	require.NoError(t, err)
	assert.Less(t, p300.Elevation().In(unit.DistanceInch), 0.0)
}

func TestZeroWithOffsetTarget(t *testing.T) {
	p := scenarioParams()
	p.Wind = go_pointmass.CreateWind(unit.MustCreateVelocity(10, unit.VelocityMPH), unit.MustCreateAngular(90, unit.AngularDegree))
	c := createConfig(t, p)
	target := go_pointmass.MustCreateTarget(yards(200), inches(2), inches(0.5), inches(0.01))

	angles, err := go_pointmass.CreateZeroSolver().Solve(c, target)
	require.NoError(t, err)
	packet, err := go_pointmass.NewTrajectory(c, angles).SeekDistance(yards(200))
	require.NoError(t, err)
	assert.InDelta(t, 2, packet.Elevation().In(unit.DistanceInch), 0.01)
	assert.InDelta(t, 0.5, packet.Windage().In(unit.DistanceInch), 0.01)
	assert.Greater(t, angles.Yaw().In(unit.AngularMOA), 0.0, "wind from the right needs the bore turned right")
}

func TestZeroNotConverged(t *testing.T) {
	c := createConfig(t, scenarioParams())
	rec := &recorder{}
	_, err := go_pointmass.CreateZeroSolver(go_pointmass.WithMaxIterations(1), go_pointmass.WithRecorder(rec)).
		Solve(c, defaultTarget())

	require.ErrorIs(t, err, go_pointmass.ErrNotConverged)
	var convergence *go_pointmass.ConvergenceError
	require.True(t, errors.As(err, &convergence))
	assert.Equal(t, 1, convergence.Iterations)
	assert.Greater(t, convergence.Elevation, 0.0, "the projectile is below the line of sight without correction")
	assert.Equal(t, 1, rec.solved)
	assert.ErrorIs(t, rec.err, go_pointmass.ErrNotConverged)
}

func TestZeroTargetNotReached(t *testing.T) {
	p := scenarioParams()
	p.Limits.MaximumTime = unit.MustCreateTime(100, unit.TimeMillisecond)
	c := createConfig(t, p)
	target := go_pointmass.MustCreateTarget(yards(1000), inches(0), inches(0), inches(0.001))

	_, err := go_pointmass.CreateZeroSolver().Solve(c, target)
	assert.ErrorIs(t, err, go_pointmass.ErrTargetNotReached)
	assert.NotErrorIs(t, err, go_pointmass.ErrNotConverged)
}

func TestZeroLogsIterations(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	c := createConfig(t, scenarioParams())

	_, err := go_pointmass.CreateZeroSolver(go_pointmass.WithLogger(logger)).Solve(c, defaultTarget())
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"message":"zero iteration"`)
	assert.Contains(t, buf.String(), `"message":"zero found"`)
}

func TestCreateTargetValidation(t *testing.T) {
	_, err := go_pointmass.CreateTarget(yards(0), inches(0), inches(0), inches(0.001))
	assert.ErrorIs(t, err, go_pointmass.ErrInvalidConfig)
	_, err = go_pointmass.CreateTarget(yards(100), inches(0), inches(0), inches(0))
	assert.ErrorIs(t, err, go_pointmass.ErrInvalidConfig)
	assert.Panics(t, func() { go_pointmass.MustCreateTarget(yards(-1), inches(0), inches(0), inches(1)) })
}
