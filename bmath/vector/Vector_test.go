package vector_test

import (
	"math"
	"testing"

	"github.com/gehtsoft-usa/go_pointmass/bmath/vector"
	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/spatial/r3"
)

func assertVector(t *testing.T, expected, actual vector.Vector) {
	t.Helper()
	assert.InDelta(t, expected.X, actual.X, 1e-12, "X")
	assert.InDelta(t, expected.Y, actual.Y, 1e-12, "Y")
	assert.InDelta(t, expected.Z, actual.Z, 1e-12, "Z")
}

func TestVectorCreation(t *testing.T) {
	v := vector.Create(1, 2, 3)
	assert.Equal(t, vector.Vector{X: 1, Y: 2, Z: 3}, v)
	assert.InDelta(t, 3.74165738677, r3.Norm(v), 1e-7)
}

func TestNormalize(t *testing.T) {
	v := vector.Normalize(vector.Create(3, 0, 4))
	assertVector(t, vector.Create(0.6, 0, 0.8), v)

	zero := vector.Normalize(vector.Create(0, 0, 0))
	assert.Equal(t, vector.Create(0, 0, 0), zero)
}

func TestPivot(t *testing.T) {
	x := vector.Create(1, 0, 0)
	y := vector.Create(0, 1, 0)

	assertVector(t, y, vector.PivotZ(x, math.Pi/2))
	assertVector(t, vector.Create(0, 0, 1), vector.PivotY(x, math.Pi/2))
	assertVector(t, vector.Create(0, 0, 1), vector.PivotX(y, math.Pi/2))
	assertVector(t, x, vector.PivotX(x, 1.234))
}

func TestPivotKeepsLength(t *testing.T) {
	v := vector.Create(1, -2, 0.5)
	n := r3.Norm(v)
	for _, a := range []float64{-2, -0.3, 0, 0.01, 1.7} {
		assert.InDelta(t, n, r3.Norm(vector.PivotX(v, a)), 1e-12)
		assert.InDelta(t, n, r3.Norm(vector.PivotY(v, a)), 1e-12)
		assert.InDelta(t, n, r3.Norm(vector.PivotZ(v, a)), 1e-12)
		assertVector(t, v, vector.PivotZ(vector.PivotZ(v, a), -a))
	}
}
