package go_pointmass

import (
	"errors"
	"fmt"
)

var (
	//ErrInvalidConfig is returned when a physical parameter is out of its valid range
	ErrInvalidConfig = errors.New("invalid configuration")
	//ErrNotConverged is returned when the zero solver exhausts its iterations
	ErrNotConverged = errors.New("zero did not converge")
	//ErrTargetNotReached is returned when the trajectory terminates before the requested distance
	ErrTargetNotReached = errors.New("target distance not reached")
)

//ConfigError describes the rejected configuration field
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrInvalidConfig, e.Field, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}

func configError(field, format string, args ...any) error {
	return &ConfigError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

//ConvergenceError keeps the miss of the last zero iteration
type ConvergenceError struct {
	Iterations int
	//Elevation and Windage are the misses at the target distance, in meters
	Elevation float64
	Windage   float64
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("%s after %d iterations (elevation miss %.6fm, windage miss %.6fm)",
		ErrNotConverged, e.Iterations, e.Elevation, e.Windage)
}

func (e *ConvergenceError) Unwrap() error {
	return ErrNotConverged
}
