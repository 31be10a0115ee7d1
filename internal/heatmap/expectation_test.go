package heatmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	"github.com/locus-ml/locus/internal/backend/cpu"
	"github.com/locus-ml/locus/internal/tensor"
)

func TestCoordExpectation_MatchesWeightedMean(t *testing.T) {
	weights := []float64{0.1, 0.2, 0.4, 0.2, 0.1}
	hm := fromF64(t, tensor.Shape{1, 5}, weights)

	mu := CoordExpectation(hm, -1, 1, nil)

	coords, err := NormalizedLinspace[float64](5, cpu.New())
	require.NoError(t, err)
	want := stat.Mean(coords.Data(), weights)
	assert.InDelta(t, want, mu.Data()[0], 1e-12)
}

func TestCoordExpectation_SkewedDistribution(t *testing.T) {
	weights := []float64{0.7, 0.1, 0.1, 0.05, 0.05}
	hm := fromF64(t, tensor.Shape{1, 5}, weights)

	mu := CoordExpectation(hm, -1, 1, nil)

	coords, err := NormalizedLinspace[float64](5, cpu.New())
	require.NoError(t, err)
	assert.InDelta(t, stat.Mean(coords.Data(), weights), mu.Data()[0], 1e-12)
}

func TestCoordExpectation_2DAxes(t *testing.T) {
	// mass concentrated in the last column, middle row
	hm := oneHot(t, tensor.Shape{1, 3, 5}, 1*5+4)

	muX := CoordExpectation(hm, -1, 2, nil)
	muY := CoordExpectation(hm, -2, 2, nil)

	assert.InDelta(t, 0.8, muX.Data()[0], 1e-12)
	assert.InDelta(t, 0.0, muY.Data()[0], 1e-12)
}

func TestCoordExpectation_NoBatchDims(t *testing.T) {
	hm := oneHot(t, tensor.Shape{3, 3}, 0)

	mu := CoordExpectation(hm, -1, 2, nil)

	assert.Equal(t, tensor.Shape{1}, mu.Shape())
	assert.InDelta(t, -2.0/3, mu.Data()[0], 1e-12)
}

func TestCoordVariance_OneHotIsZero(t *testing.T) {
	hm := oneHot(t, tensor.Shape{1, 5, 5}, 2*5+2)

	varX := CoordVariance(hm, -1, 2)
	varY := CoordVariance(hm, -2, 2)

	assert.InDelta(t, 0.0, varX.Data()[0], 1e-12)
	assert.InDelta(t, 0.0, varY.Data()[0], 1e-12)
}

func TestCoordVariance_MatchesWeightedMoment(t *testing.T) {
	weights := []float64{0.25, 0.3, 0.2, 0.15, 0.1}
	hm := fromF64(t, tensor.Shape{1, 5}, weights)

	variance := CoordVariance(hm, -1, 1)

	coords, err := NormalizedLinspace[float64](5, cpu.New())
	require.NoError(t, err)
	mean := stat.Mean(coords.Data(), weights)
	want := stat.MomentAbout(2, coords.Data(), mean, weights)
	assert.InDelta(t, want, variance.Data()[0], 1e-12)
}

func TestCoordVariance_UniformHeatmap(t *testing.T) {
	data := make([]float64, 25)
	for i := range data {
		data[i] = 1.0 / 25
	}
	hm := fromF64(t, tensor.Shape{1, 5, 5}, data)

	// uniform over [-0.8, -0.4, 0, 0.4, 0.8]: E[X²] = 0.32
	assert.InDelta(t, 0.32, CoordVariance(hm, -1, 2).Data()[0], 1e-12)
	assert.InDelta(t, 0.32, CoordVariance(hm, -2, 2).Data()[0], 1e-12)
}

func TestCoordExpectation_InvalidDimPanics(t *testing.T) {
	hm := oneHot(t, tensor.Shape{1, 3, 3}, 0)

	assert.Panics(t, func() { CoordExpectation(hm, -3, 2, nil) })
	assert.Panics(t, func() { CoordExpectation(hm, 0, 2, nil) })
}
