package go_pointmass

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/interp"
)

//DragTable selects one of the standard drag curves.
//
//The ballistic coefficient (BC) of a projectile is expressed against
//a standard projectile. Different drag tables use different standard
//projectiles, for example G1 uses a flat based 2 caliber long projectile
//with a 2 caliber ogive.
//
//G1 and G7 are the most used for small arms ballistics
type DragTable byte

const (
	DragTableG1 DragTable = iota + 1
	DragTableG2
	DragTableG5
	DragTableG6
	DragTableG7
	DragTableG8
	DragTableGI
	DragTableGS
)

var dragTableNames = map[DragTable]string{
	DragTableG1: "G1",
	DragTableG2: "G2",
	DragTableG5: "G5",
	DragTableG6: "G6",
	DragTableG7: "G7",
	DragTableG8: "G8",
	DragTableGI: "GI",
	DragTableGS: "GS",
}

func (t DragTable) String() string {
	if name, ok := dragTableNames[t]; ok {
		return name
	}
	return fmt.Sprintf("DragTable(%d)", byte(t))
}

//Valid returns true if the value is one of the known drag tables
func (t DragTable) Valid() bool {
	_, ok := dragCurves[t]
	return ok
}

//ParseDragTable returns the drag table by its name (G1, G2, G5, G6, G7, G8, GI or GS).
//
//The name is case insensitive.
func ParseDragTable(name string) (DragTable, error) {
	name = strings.ToUpper(strings.TrimSpace(name))
	for t, n := range dragTableNames {
		if n == name {
			return t, nil
		}
	}
	return 0, &ConfigError{Field: "drag table", Reason: fmt.Sprintf("unknown drag table %q", name)}
}

//Coefficient returns the drag coefficient for the mach number.
//
//Values between the breakpoints are interpolated linearly. Mach numbers
//outside of the table return the coefficient of the nearest end.
//Unknown tables return zero.
func (t DragTable) Coefficient(mach float64) float64 {
	c, ok := dragCurves[t]
	if !ok {
		return 0
	}
	return c.coefficient(mach)
}

type dragPoint struct {
	Mach, Cd float64
}

type dragCurve struct {
	first, last dragPoint
	fit         interp.PiecewiseLinear
}

func (c *dragCurve) coefficient(mach float64) float64 {
	switch {
	case mach <= c.first.Mach:
		return c.first.Cd
	case mach >= c.last.Mach:
		return c.last.Cd
	default:
		return c.fit.Predict(mach)
	}
}

func createDragCurve(points []dragPoint) (*dragCurve, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("DragTable: at least two points are required")
	}
	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		if i > 0 && p.Mach <= points[i-1].Mach {
			return nil, fmt.Errorf("DragTable: mach %.3f at %d isn't greater than the previous point", p.Mach, i)
		}
		xs[i] = p.Mach
		ys[i] = p.Cd
	}
	c := &dragCurve{first: points[0], last: points[len(points)-1]}
	if err := c.fit.Fit(xs, ys); err != nil {
		return nil, fmt.Errorf("DragTable: %w", err)
	}
	return c, nil
}

func mustCreateDragCurve(points []dragPoint) *dragCurve {
	c, err := createDragCurve(points)
	if err != nil {
		panic(err)
	}
	return c
}

//read-only after package initialization
var dragCurves = map[DragTable]*dragCurve{
	DragTableG1: mustCreateDragCurve(g1Table),
	DragTableG2: mustCreateDragCurve(g2Table),
	DragTableG5: mustCreateDragCurve(g5Table),
	DragTableG6: mustCreateDragCurve(g6Table),
	DragTableG7: mustCreateDragCurve(g7Table),
	DragTableG8: mustCreateDragCurve(g8Table),
	DragTableGI: mustCreateDragCurve(giTable),
	DragTableGS: mustCreateDragCurve(gsTable),
}
