package go_pointmass_test

import (
	"math"
	"testing"

	"github.com/gehtsoft-usa/go_pointmass"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allTables = []go_pointmass.DragTable{
	go_pointmass.DragTableG1, go_pointmass.DragTableG2, go_pointmass.DragTableG5, go_pointmass.DragTableG6,
	go_pointmass.DragTableG7, go_pointmass.DragTableG8, go_pointmass.DragTableGI, go_pointmass.DragTableGS,
}

func TestDragBreakpoints(t *testing.T) {
	g7 := go_pointmass.DragTableG7
	assert.InDelta(t, 0.1198, g7.Coefficient(0), 1e-12)
	assert.InDelta(t, 0.3803, g7.Coefficient(1), 1e-12)
	assert.InDelta(t, 0.1618, g7.Coefficient(5), 1e-12)
	assert.InDelta(t, 0.4805, go_pointmass.DragTableG1.Coefficient(1), 1e-12)
}

func TestDragInterpolation(t *testing.T) {
	assert.InDelta(t, (0.1464+0.1660)/2, go_pointmass.DragTableG7.Coefficient(0.9125), 1e-9)
	assert.InDelta(t, (0.2629+0.2558)/2, go_pointmass.DragTableG1.Coefficient(0.025), 1e-9)
}

func TestDragClamping(t *testing.T) {
	for _, table := range allTables {
		low := table.Coefficient(0)
		high := table.Coefficient(4)
		assert.Equal(t, low, table.Coefficient(-1), table.String())
		assert.Equal(t, table.Coefficient(10), table.Coefficient(100), table.String())
		assert.False(t, math.IsNaN(table.Coefficient(math.Inf(1))), table.String())
		assert.Greater(t, low, 0.0, table.String())
		assert.Greater(t, high, 0.0, table.String())
	}
	assert.Equal(t, 0.1618, go_pointmass.DragTableG7.Coefficient(7.5))
}

func TestUnknownDragTable(t *testing.T) {
	unknown := go_pointmass.DragTable(99)
	assert.False(t, unknown.Valid())
	assert.Equal(t, 0.0, unknown.Coefficient(1))
	assert.Equal(t, "DragTable(99)", unknown.String())
}

func TestParseDragTable(t *testing.T) {
	for _, table := range allTables {
		parsed, err := go_pointmass.ParseDragTable(table.String())
		require.NoError(t, err)
		assert.Equal(t, table, parsed)
		assert.True(t, parsed.Valid())
	}

	parsed, err := go_pointmass.ParseDragTable(" g7 ")
	require.NoError(t, err)
	assert.Equal(t, go_pointmass.DragTableG7, parsed)

	_, err = go_pointmass.ParseDragTable("G3")
	assert.ErrorIs(t, err, go_pointmass.ErrInvalidConfig)
}
