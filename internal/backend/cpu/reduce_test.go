package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/locus-ml/locus/internal/tensor"
)

func TestSum_Scalar(t *testing.T) {
	b := New()
	a := rawF64(t, tensor.Shape{2, 3}, []float64{1, 2, 3, 4, 5, 6})

	out := b.Sum(a)

	assert.Equal(t, tensor.Shape{}, out.Shape())
	assert.Equal(t, 21.0, out.AsFloat64()[0])
}

func TestSumDim_AllAxesOf3D(t *testing.T) {
	b := New()
	// shape [2,3,4], values 0..23 laid out row-major
	data := make([]float64, 24)
	for i := range data {
		data[i] = float64(i)
	}
	a := rawF64(t, tensor.Shape{2, 3, 4}, data)

	d0 := b.SumDim(a, 0, false)
	assert.Equal(t, tensor.Shape{3, 4}, d0.Shape())
	assert.Equal(t, []float64{12, 14, 16, 18, 20, 22, 24, 26, 28, 30, 32, 34}, d0.AsFloat64())

	d1 := b.SumDim(a, 1, false)
	assert.Equal(t, tensor.Shape{2, 4}, d1.Shape())
	assert.Equal(t, []float64{12, 15, 18, 21, 48, 51, 54, 57}, d1.AsFloat64())

	d2 := b.SumDim(a, 2, false)
	assert.Equal(t, tensor.Shape{2, 3}, d2.Shape())
	assert.Equal(t, []float64{6, 22, 38, 54, 70, 86}, d2.AsFloat64())
}

func TestSumDim_KeepDim(t *testing.T) {
	b := New()
	a := rawF64(t, tensor.Shape{2, 3}, []float64{1, 2, 3, 4, 5, 6})

	out := b.SumDim(a, 1, true)

	assert.Equal(t, tensor.Shape{2, 1}, out.Shape())
	assert.Equal(t, []float64{6, 15}, out.AsFloat64())
}

func TestSumDim_NegativeDim(t *testing.T) {
	b := New()
	a := rawF64(t, tensor.Shape{2, 3}, []float64{1, 2, 3, 4, 5, 6})

	out := b.SumDim(a, -1, false)

	assert.Equal(t, tensor.Shape{2}, out.Shape())
	assert.Equal(t, []float64{6, 15}, out.AsFloat64())
}

func TestSumDim_Float32(t *testing.T) {
	b := New()
	a := rawF32(t, tensor.Shape{2, 2}, []float32{1, 2, 3, 4})

	out := b.SumDim(a, 0, false)

	assert.Equal(t, []float32{4, 6}, out.AsFloat32())
}
