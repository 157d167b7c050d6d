package internal

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testGeometry = Geometry{Width: 640, Height: 360, Margin: 20, TopBorder: 60, BottomBorder: 50}

func TestGeometryBands(t *testing.T) {
	assert.Equal(t, 250.0, testGeometry.PlotHeight())
	assert.Equal(t, 310.0, testGeometry.Floor())
	assert.Equal(t, 185.0, testGeometry.MidLine())
}

func TestColumnX(t *testing.T) {
	for i, want := range []float64{30, 170, 310, 450, 590} {
		x, err := testGeometry.ColumnX(i, 5)
		require.NoError(t, err)
		assert.InDelta(t, want, x, 1e-9, "column %d", i)
	}
}

func TestColumnXNeedsTwoPoints(t *testing.T) {
	for _, n := range []int{0, 1} {
		_, err := testGeometry.ColumnX(0, n)

		var dataErr *InsufficientDataError
		require.True(t, errors.As(err, &dataErr))
		assert.Equal(t, n, dataErr.Points)
	}
}

func TestColumnY(t *testing.T) {
	assert.InDelta(t, 310, testGeometry.ColumnY(0, 4), 1e-9)
	assert.InDelta(t, 185, testGeometry.ColumnY(2, 4), 1e-9)
	assert.InDelta(t, 60, testGeometry.ColumnY(4, 4), 1e-9)
}

func TestLabelXIgnoresStyleMargin(t *testing.T) {
	g := testGeometry
	g.Margin = 30

	x, err := g.ColumnX(4, 5)
	require.NoError(t, err)
	assert.InDelta(t, 580, x, 1e-9) // 4 * (640-60-40)/4 + 40

	x, err = g.LabelX(4, 5)
	require.NoError(t, err)
	assert.InDelta(t, 600, x, 1e-9) // 4 * (640-40-40)/4 + 40
}
