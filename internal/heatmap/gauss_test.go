package heatmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/locus-ml/locus/internal/backend/cpu"
	"github.com/locus-ml/locus/internal/tensor"
)

func fromF64(t *testing.T, shape tensor.Shape, data []float64) *tensor.Tensor[float64, *cpu.CPUBackend] {
	t.Helper()
	x, err := tensor.FromSlice(data, shape, cpu.New())
	require.NoError(t, err)
	return x
}

func TestMakeGauss_2D(t *testing.T) {
	expected := []float64{
		0.002969, 0.013306, 0.021938, 0.013306, 0.002969,
		0.013306, 0.059634, 0.098320, 0.059634, 0.013306,
		0.021938, 0.098320, 0.162103, 0.098320, 0.021938,
		0.013306, 0.059634, 0.098320, 0.059634, 0.013306,
		0.002969, 0.013306, 0.021938, 0.013306, 0.002969,
	}

	means := fromF64(t, tensor.Shape{2}, []float64{0, 0})
	actual, err := MakeGauss(means, []int{5, 5}, 1.0, true)
	require.NoError(t, err)

	assert.Equal(t, tensor.Shape{5, 5}, actual.Shape())
	assert.InDeltaSlice(t, expected, actual.Data(), 1e-5)
}

func TestMakeGauss_3D(t *testing.T) {
	expected := []float64{
		0.000035, 0.000002, 0.000000,
		0.009165, 0.000570, 0.000002,
		0.147403, 0.009165, 0.000035,

		0.000142, 0.000009, 0.000000,
		0.036755, 0.002285, 0.000009,
		0.591145, 0.036755, 0.000142,

		0.000035, 0.000002, 0.000000,
		0.009165, 0.000570, 0.000002,
		0.147403, 0.009165, 0.000035,
	}

	means := fromF64(t, tensor.Shape{3}, []float64{-1, 1, 0})
	actual, err := MakeGauss(means, []int{3, 3, 3}, 0.6, true)
	require.NoError(t, err)

	assert.Equal(t, tensor.Shape{3, 3, 3}, actual.Shape())
	assert.InDeltaSlice(t, expected, actual.Data(), 1e-5)
}

func TestMakeGauss_Unnormalized(t *testing.T) {
	means := fromF64(t, tensor.Shape{2}, []float64{0, 0})
	actual, err := MakeGauss(means, []int{5, 5}, 1.0, false)
	require.NoError(t, err)

	maxVal := 0.0
	for _, v := range actual.Data() {
		if v > maxVal {
			maxVal = v
		}
	}
	assert.Equal(t, 1.0, maxVal)
}

func TestMakeGauss_Rectangular(t *testing.T) {
	expected := []float64{
		0.496683, 0.182719, 0.024728, 0.001231, 0.000023,
		0.182719, 0.067219, 0.009097, 0.000453, 0.000008,
		0.024728, 0.009097, 0.001231, 0.000061, 0.000001,
	}

	means := fromF64(t, tensor.Shape{2}, []float64{-1, -1})
	actual, err := MakeGauss(means, []int{3, 5}, 1.0, true)
	require.NoError(t, err)

	assert.Equal(t, tensor.Shape{3, 5}, actual.Shape())
	assert.InDeltaSlice(t, expected, actual.Data(), 1e-5)
}

func TestMakeGauss_BatchedMeansSumToOne(t *testing.T) {
	means := fromF64(t, tensor.Shape{2, 3, 2}, []float64{
		0, 0, -0.5, 0.5, 1, -1,
		0.3, -0.3, -1, -1, 0.9, 0.9,
	})

	actual, err := MakeGauss(means, []int{7, 9}, 1.5, true)
	require.NoError(t, err)
	require.Equal(t, tensor.Shape{2, 3, 7, 9}, actual.Shape())

	data := actual.Data()
	per := 7 * 9
	for i := 0; i < 6; i++ {
		sum := 0.0
		for _, v := range data[i*per : (i+1)*per] {
			sum += v
		}
		assert.InDelta(t, 1.0, sum, 1e-6, "heatmap %d", i)
	}
}

func TestMakeGauss_Validation(t *testing.T) {
	means := fromF64(t, tensor.Shape{2}, []float64{0, 0})

	_, err := MakeGauss(means, []int{}, 1.0, true)
	assert.Error(t, err)

	_, err = MakeGauss(means, []int{5, 0}, 1.0, true)
	assert.Error(t, err)

	_, err = MakeGauss(means, []int{5, 5}, 0, true)
	assert.Error(t, err)

	_, err = MakeGauss(means, []int{3, 3, 3}, 1.0, true)
	assert.Error(t, err)
}
