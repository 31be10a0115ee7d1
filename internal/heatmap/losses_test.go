package heatmap

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/locus-ml/locus/internal/tensor"
)

func TestKLRegLosses_SelfDivergenceIsZero(t *testing.T) {
	mu := fromF64(t, tensor.Shape{1, 1, 2}, []float64{0.2, -0.3})
	target, err := MakeGauss(mu, []int{9, 9}, 1.0, true)
	require.NoError(t, err)

	losses := KLRegLosses(target, mu, 1.0)

	assert.Equal(t, tensor.Shape{1, 1}, losses.Shape())
	assert.InDelta(t, 0.0, losses.Data()[0], 1e-10)
}

func TestKLRegLosses_NonNegative(t *testing.T) {
	muActual := fromF64(t, tensor.Shape{1, 1, 2}, []float64{-0.5, 0.5})
	muTarget := fromF64(t, tensor.Shape{1, 1, 2}, []float64{0.5, -0.5})
	hm, err := MakeGauss(muActual, []int{9, 9}, 1.0, true)
	require.NoError(t, err)

	losses := KLRegLosses(hm, muTarget, 1.0)

	assert.Greater(t, losses.Data()[0], 0.0)
}

func TestJSRegLosses_SymmetricAndBounded(t *testing.T) {
	muA := fromF64(t, tensor.Shape{1, 1, 2}, []float64{-0.5, 0.5})
	muB := fromF64(t, tensor.Shape{1, 1, 2}, []float64{0.5, -0.5})
	hmA, err := MakeGauss(muA, []int{9, 9}, 1.0, true)
	require.NoError(t, err)
	hmB, err := MakeGauss(muB, []int{9, 9}, 1.0, true)
	require.NoError(t, err)

	ab := JSRegLosses(hmA, muB, 1.0)
	ba := JSRegLosses(hmB, muA, 1.0)

	assert.InDelta(t, ab.Data()[0], ba.Data()[0], 1e-10)
	assert.Greater(t, ab.Data()[0], 0.0)
	assert.Less(t, ab.Data()[0], math.Ln2+1e-10)
}

func TestJSRegLosses_SmallerThanKL(t *testing.T) {
	muActual := fromF64(t, tensor.Shape{1, 1, 2}, []float64{-0.8, 0})
	muTarget := fromF64(t, tensor.Shape{1, 1, 2}, []float64{0.8, 0})
	hm, err := MakeGauss(muActual, []int{7, 7}, 1.0, true)
	require.NoError(t, err)

	kl := KLRegLosses(hm, muTarget, 1.0)
	js := JSRegLosses(hm, muTarget, 1.0)

	assert.Less(t, js.Data()[0], kl.Data()[0])
}

func TestRegLosses_InvalidSigmaPanics(t *testing.T) {
	mu := fromF64(t, tensor.Shape{1, 1, 2}, []float64{0, 0})
	hm, err := MakeGauss(mu, []int{5, 5}, 1.0, true)
	require.NoError(t, err)

	assert.Panics(t, func() { KLRegLosses(hm, mu, 0) })
	assert.Panics(t, func() { JSRegLosses(hm, mu, -1) })
}

func TestVarianceRegLosses_UniformHeatmap(t *testing.T) {
	data := make([]float64, 25)
	for i := range data {
		data[i] = 1.0 / 25
	}
	hm := fromF64(t, tensor.Shape{1, 5, 5}, data)

	// uniform 5x5: normalized variance 0.32 per axis, pixel variance
	// 0.32 * (5/2)² = 2.0 per axis
	exact := VarianceRegLosses(hm, math.Sqrt2, 2)
	assert.InDelta(t, 0.0, exact.Data()[0], 1e-10)

	// target variance 1 leaves an error of (2-1)² on each axis
	off := VarianceRegLosses(hm, 1.0, 2)
	assert.InDelta(t, 2.0, off.Data()[0], 1e-10)
}

func TestVarianceRegLosses_OneHot(t *testing.T) {
	hm := oneHot(t, tensor.Shape{1, 5, 5}, 2*5+2)

	// zero variance against target σ²=1 gives 1² per axis
	losses := VarianceRegLosses(hm, 1.0, 2)
	assert.InDelta(t, 2.0, losses.Data()[0], 1e-10)
}

func TestEuclideanLosses_KnownDistances(t *testing.T) {
	actual := fromF64(t, tensor.Shape{1, 2, 2}, []float64{0, 0, 0.3, -0.4})
	target := fromF64(t, tensor.Shape{1, 2, 2}, []float64{0.3, 0.4, 0.3, -0.4})

	losses := EuclideanLosses(actual, target)

	assert.Equal(t, tensor.Shape{1, 2}, losses.Shape())
	assert.InDeltaSlice(t, []float64{0.5, 0}, losses.Data(), 1e-12)
}

func TestEuclideanLosses_ShapeMismatchPanics(t *testing.T) {
	actual := fromF64(t, tensor.Shape{1, 2}, []float64{0, 0})
	target := fromF64(t, tensor.Shape{2, 2}, []float64{0, 0, 0, 0})

	assert.Panics(t, func() { EuclideanLosses(actual, target) })
}

func TestAverageLoss_NoMask(t *testing.T) {
	losses := fromF64(t, tensor.Shape{2, 2}, []float64{1, 2, 3, 4})

	avg := AverageLoss[float64](losses, nil)

	assert.InDelta(t, 2.5, avg.Item(), 1e-12)
}

func TestAverageLoss_Mask(t *testing.T) {
	losses := fromF64(t, tensor.Shape{4}, []float64{1, 2, 3, 4})
	mask := fromF64(t, tensor.Shape{4}, []float64{1, 0, 1, 0})

	avg := AverageLoss(losses, mask)

	assert.InDelta(t, 2.0, avg.Item(), 1e-12)
}

func TestAverageLoss_AllMaskedOut(t *testing.T) {
	losses := fromF64(t, tensor.Shape{3}, []float64{5, 6, 7})
	mask := fromF64(t, tensor.Shape{3}, []float64{0, 0, 0})

	avg := AverageLoss(losses, mask)

	assert.Equal(t, 0.0, avg.Item())
}
