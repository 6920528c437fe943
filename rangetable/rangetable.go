//Package rangetable samples trajectories at fixed downrange intervals.
//
//The trajectory itself knows nothing about tables: a Table pulls the
//points and reports the first point at or past every step.
package rangetable

import (
	"context"
	"fmt"
	"iter"
	"math"

	"github.com/gehtsoft-usa/go_pointmass"
	"github.com/gehtsoft-usa/go_pointmass/bmath/unit"
	"golang.org/x/sync/errgroup"
)

//Table describes the distances a range table reports
type Table struct {
	start     unit.Distance
	end       unit.Distance
	step      unit.Distance
	tolerance unit.Distance
}

//CreateTable creates the range table description.
//
//Rows are reported at start, start+step, ... up to end. tolerance is
//used to classify the hold adjustment of every row.
func CreateTable(start, end, step, tolerance unit.Distance) (Table, error) {
	if start.In(unit.DistanceMeter) < 0 {
		return Table{}, fmt.Errorf("Table: %w: start can't be negative, got %s", go_pointmass.ErrInvalidConfig, start)
	}
	if step.In(unit.DistanceMeter) <= 0 {
		return Table{}, fmt.Errorf("Table: %w: step must be greater than zero, got %s", go_pointmass.ErrInvalidConfig, step)
	}
	if end.In(unit.DistanceMeter) < start.In(unit.DistanceMeter) {
		return Table{}, fmt.Errorf("Table: %w: end %s is before start %s", go_pointmass.ErrInvalidConfig, end, start)
	}
	return Table{start: start, end: end, step: step, tolerance: tolerance}, nil
}

//MustCreateTable creates the table but panics instead of returned a error
func MustCreateTable(start, end, step, tolerance unit.Distance) Table {
	t, err := CreateTable(start, end, step, tolerance)
	if err != nil {
		panic(err)
	}
	return t
}

//Start returns the distance of the first row
func (t Table) Start() unit.Distance {
	return t.start
}

//End returns the distance of the last row
func (t Table) End() unit.Distance {
	return t.end
}

//Step returns the distance between rows
func (t Table) Step() unit.Distance {
	return t.step
}

//Tolerance returns the tolerance used for the hold adjustment
func (t Table) Tolerance() unit.Distance {
	return t.tolerance
}

//Sample returns the first packet at or past every row distance.
//
//Row k is at start+k*step, the last row is the last one not past end.
//Packets past end+step are never pulled.
func (t Table) Sample(packets iter.Seq[go_pointmass.Packet]) iter.Seq[go_pointmass.Packet] {
	return func(yield func(go_pointmass.Packet) bool) {
		start := t.start.In(unit.DistanceMeter)
		step := t.step.In(unit.DistanceMeter)
		end := t.end.In(unit.DistanceMeter)
		last := t.RowCount() - 1
		k := 0
		for p := range packets {
			d := p.State().Position.X
			if d > end+step || k > last {
				return
			}
			if d < start+float64(k)*step {
				continue
			}
			if !yield(p) {
				return
			}
			k++
		}
	}
}

//RowCount returns the number of rows of a table the trajectory runs through
func (t Table) RowCount() int {
	span := (t.end.In(unit.DistanceMeter) - t.start.In(unit.DistanceMeter)) / t.step.In(unit.DistanceMeter)
	//the meter conversion may leave span a few ulps short of a whole number
	return int(math.Floor(span+1e-9)) + 1
}

//Rows pulls the trajectory and returns the measurements of every row
func (t Table) Rows(trajectory *go_pointmass.Trajectory) []go_pointmass.Measurement {
	var rows []go_pointmass.Measurement
	for p := range t.Sample(trajectory.All()) {
		rows = append(rows, go_pointmass.Measure(p, t.tolerance))
	}
	return rows
}

//Zero is the zeroing pass of a run
type Zero struct {
	Config go_pointmass.SimulationConfig
	Target go_pointmass.Target
}

//Run is one simulation of a comparison
type Run struct {
	Name   string
	Config go_pointmass.SimulationConfig
	//Angles are added to the angles found by Zero
	Angles go_pointmass.Angles
	//Zero is solved first when set
	Zero *Zero
}

//Result keeps the rows of one run
type Result struct {
	Name        string
	Angles      go_pointmass.Angles
	Rows        []go_pointmass.Measurement
	Termination go_pointmass.Termination
}

//Compare calculates the rows of every run concurrently.
//
//Results are returned in the order of runs. The first error cancels
//the remaining runs.
func Compare(ctx context.Context, table Table, solver go_pointmass.ZeroSolver, runs ...Run) ([]Result, error) {
	results := make([]Result, len(runs))
	g, ctx := errgroup.WithContext(ctx)
	for i, run := range runs {
		g.Go(func() error {
			r, err := calculate(ctx, table, solver, run)
			if err != nil {
				return fmt.Errorf("run %q: %w", run.Name, err)
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func calculate(ctx context.Context, table Table, solver go_pointmass.ZeroSolver, run Run) (Result, error) {
	angles := run.Angles
	if run.Zero != nil {
		zero, err := solver.Solve(run.Zero.Config, run.Zero.Target)
		if err != nil {
			return Result{}, err
		}
		angles = zero.Add(run.Angles)
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	trajectory := go_pointmass.NewTrajectory(run.Config, angles)
	result := Result{Name: run.Name, Angles: angles}
	for p := range table.Sample(trajectory.All()) {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		result.Rows = append(result.Rows, go_pointmass.Measure(p, table.tolerance))
	}
	result.Termination = trajectory.Termination()
	return result, nil
}
