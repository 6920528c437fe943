//Package observability exports the metrics and traces of the runner.
package observability

import (
	"errors"
	"fmt"
	"math"

	"github.com/gehtsoft-usa/go_pointmass"
	"github.com/gehtsoft-usa/go_pointmass/bmath/unit"
	"github.com/prometheus/client_golang/prometheus"
)

//Outcome labels of the solves
const (
	OutcomeConverged        = "converged"
	OutcomeNotConverged     = "not_converged"
	OutcomeTargetNotReached = "target_not_reached"
	OutcomeError            = "error"
)

//Collector keeps the Prometheus metrics of the zero solver and the range tables.
//
//Collector implements go_pointmass.ZeroRecorder and is safe for concurrent use.
type Collector struct {
	gatherer prometheus.Gatherer

	ZeroIterations  prometheus.Counter
	ZeroMiss        *prometheus.HistogramVec
	ZeroSolves      *prometheus.CounterVec
	ZeroSolveLength prometheus.Histogram
	TableRows       *prometheus.GaugeVec
}

//NewCollector registers the metrics against the registerer,
//the global Prometheus registry is used when nil.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	iterations, err := register(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "pointmass_zero_iterations_total",
		Help: "Total number of trajectories simulated by the zero solver.",
	}), "pointmass_zero_iterations_total")
	if err != nil {
		return nil, err
	}

	miss, err := register(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "pointmass_zero_miss_inches",
		Help:    "Absolute miss of every zero solver iteration in inches, labeled by axis.",
		Buckets: prometheus.ExponentialBuckets(0.0001, 10, 8),
	}, []string{"axis"}), "pointmass_zero_miss_inches")
	if err != nil {
		return nil, err
	}

	solves, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "pointmass_zero_solves_total",
		Help: "Total number of zero solves, labeled by outcome.",
	}, []string{"outcome"}), "pointmass_zero_solves_total")
	if err != nil {
		return nil, err
	}

	length, err := register(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "pointmass_zero_solve_iterations",
		Help:    "Number of iterations a zero solve took.",
		Buckets: prometheus.LinearBuckets(1, 1, 20),
	}), "pointmass_zero_solve_iterations")
	if err != nil {
		return nil, err
	}

	rows, err := register(reg, prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "pointmass_table_rows",
		Help: "Number of rows of the last range table, labeled by run and termination.",
	}, []string{"run", "termination"}), "pointmass_table_rows")
	if err != nil {
		return nil, err
	}

	return &Collector{
		gatherer:        gatherer,
		ZeroIterations:  iterations,
		ZeroMiss:        miss,
		ZeroSolves:      solves,
		ZeroSolveLength: length,
		TableRows:       rows,
	}, nil
}

//Gatherer returns the gatherer the metrics are collected from
func (c *Collector) Gatherer() prometheus.Gatherer {
	return c.gatherer
}

//ObserveIteration records the miss of a zero solver iteration
func (c *Collector) ObserveIteration(iteration int, elevation, windage unit.Distance) {
	if c == nil {
		return
	}
	c.ZeroIterations.Inc()
	c.ZeroMiss.WithLabelValues("elevation").Observe(math.Abs(elevation.In(unit.DistanceInch)))
	c.ZeroMiss.WithLabelValues("windage").Observe(math.Abs(windage.In(unit.DistanceInch)))
}

//ObserveSolve records the outcome of a zero solve
func (c *Collector) ObserveSolve(iterations int, err error) {
	if c == nil {
		return
	}
	c.ZeroSolves.WithLabelValues(Outcome(err)).Inc()
	c.ZeroSolveLength.Observe(float64(iterations))
}

//ObserveTable records the size of a range table
func (c *Collector) ObserveTable(run string, rows int, termination go_pointmass.Termination) {
	if c == nil {
		return
	}
	c.TableRows.WithLabelValues(run, termination.String()).Set(float64(rows))
}

//WriteTextfile writes the metrics in the Prometheus text format,
//for the node exporter textfile collector.
func (c *Collector) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, c.gatherer); err != nil {
		return fmt.Errorf("write metrics to %s: %w", path, err)
	}
	return nil
}

//Outcome classifies the error of a zero solve
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeConverged
	case errors.Is(err, go_pointmass.ErrNotConverged):
		return OutcomeNotConverged
	case errors.Is(err, go_pointmass.ErrTargetNotReached):
		return OutcomeTargetNotReached
	default:
		return OutcomeError
	}
}

//register registers the collector or returns the one already registered under the name
func register[T prometheus.Collector](reg prometheus.Registerer, collector T, name string) (T, error) {
	if err := reg.Register(collector); err != nil {
		var zero T
		are, ok := err.(prometheus.AlreadyRegisteredError)
		if !ok {
			return zero, err
		}
		existing, ok := are.ExistingCollector.(T)
		if !ok {
			return zero, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return existing, nil
	}
	return collector, nil
}
