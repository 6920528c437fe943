//Command pointmass zeroes the rifle and prints the range table of the firing conditions.
//
//	pointmass -config pointmass.yaml
//
//The rows are written as structured log records.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/gehtsoft-usa/go_pointmass"
	"github.com/gehtsoft-usa/go_pointmass/bmath/unit"
	"github.com/gehtsoft-usa/go_pointmass/internal/config"
	"github.com/gehtsoft-usa/go_pointmass/internal/logging"
	"github.com/gehtsoft-usa/go_pointmass/internal/observability"
	"github.com/gehtsoft-usa/go_pointmass/rangetable"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

func main() {
	configPath := flag.String("config", "", "path to the configuration file (json, yaml or toml)")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, *configPath, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, configPath string, stdout, stderr io.Writer) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	log, err := logging.New(stdout, logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	if err != nil {
		return err
	}

	shutdown, err := observability.InitTracing(ctx, observability.TracingConfig{
		Enabled:     cfg.Tracing.Enabled,
		ServiceName: cfg.Tracing.ServiceName,
		Pretty:      cfg.Tracing.Pretty,
	}, stderr, log)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer observability.ShutdownWithTimeout(context.Background(), shutdown, log)

	var collector *observability.Collector
	opts := []go_pointmass.ZeroOption{
		go_pointmass.WithLogger(log),
		go_pointmass.WithMaxIterations(cfg.Zero.MaxIterations),
	}
	if cfg.Metrics.Enabled {
		collector, err = observability.NewCollector(prometheus.NewRegistry())
		if err != nil {
			return fmt.Errorf("create metrics: %w", err)
		}
		opts = append(opts, go_pointmass.WithRecorder(collector))
	}
	solver := go_pointmass.CreateZeroSolver(opts...)

	firing, err := cfg.FiringConfig()
	if err != nil {
		return err
	}
	table, err := cfg.RangeTable()
	if err != nil {
		return err
	}

	angles := go_pointmass.CreateZeroAngles()
	if cfg.Zero.Enabled {
		if angles, err = zero(ctx, cfg, solver); err != nil {
			return err
		}
	}

	result, err := fire(ctx, table, solver, firing, angles)
	if err != nil {
		return err
	}
	logRows(log, result)

	if collector != nil {
		collector.ObserveTable(result.Name, len(result.Rows), result.Termination)
		if err := collector.WriteTextfile(cfg.Metrics.Textfile); err != nil {
			return err
		}
	}
	return nil
}

func zero(ctx context.Context, cfg config.Config, solver go_pointmass.ZeroSolver) (go_pointmass.Angles, error) {
	_, span := observability.Tracer().Start(ctx, "zero")
	defer span.End()

	zeroing, err := cfg.ZeroingConfig()
	if err != nil {
		return go_pointmass.Angles{}, err
	}
	target, err := cfg.Target()
	if err != nil {
		return go_pointmass.Angles{}, err
	}
	span.SetAttributes(attribute.Stringer("target", target))

	angles, err := solver.Solve(zeroing, target)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, observability.Outcome(err))
		return go_pointmass.Angles{}, err
	}
	span.SetAttributes(
		attribute.Float64("pitch_moa", angles.Pitch().In(unit.AngularMOA)),
		attribute.Float64("yaw_moa", angles.Yaw().In(unit.AngularMOA)),
	)
	return angles, nil
}

func fire(ctx context.Context, table rangetable.Table, solver go_pointmass.ZeroSolver,
	firing go_pointmass.SimulationConfig, angles go_pointmass.Angles) (rangetable.Result, error) {
	ctx, span := observability.Tracer().Start(ctx, "range table")
	defer span.End()

	results, err := rangetable.Compare(ctx, table, solver, rangetable.Run{
		Name:   firing.Projectile().DragTable().String(),
		Config: firing,
		Angles: angles,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return rangetable.Result{}, err
	}
	result := results[0]
	span.SetAttributes(
		attribute.Int("rows", len(result.Rows)),
		attribute.Stringer("termination", result.Termination),
	)
	return result, nil
}

func logRows(log zerolog.Logger, result rangetable.Result) {
	log.Info().
		Str("run", result.Name).
		Stringer("angles", result.Angles).
		Stringer("termination", result.Termination).
		Msg("range table")
	for _, m := range result.Rows {
		log.Info().
			Stringer("distance", m.Distance).
			Stringer("elevation", m.Elevation).
			Stringer("elevation_angle", m.ElevationAngle).
			Stringer("elevation_adjustment", m.ElevationAdjustment).
			Stringer("windage", m.Windage).
			Stringer("windage_angle", m.WindageAngle).
			Stringer("windage_adjustment", m.WindageAdjustment).
			Stringer("velocity", m.Velocity).
			Float64("mach", m.Mach).
			Stringer("energy", m.Energy).
			Stringer("ogw", m.OptimalGameWeight).
			Stringer("acceleration", m.Acceleration).
			Stringer("time", m.Time).
			Msg("row")
	}
}
