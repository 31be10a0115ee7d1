package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/locus-ml/locus/internal/parallel"
	"github.com/locus-ml/locus/internal/tensor"
)

func rawF64(t *testing.T, shape tensor.Shape, data []float64) *tensor.RawTensor {
	t.Helper()
	r, err := tensor.NewRaw(shape, tensor.Float64, tensor.CPU)
	require.NoError(t, err)
	copy(r.AsFloat64(), data)
	return r
}

func rawF32(t *testing.T, shape tensor.Shape, data []float32) *tensor.RawTensor {
	t.Helper()
	r, err := tensor.NewRaw(shape, tensor.Float32, tensor.CPU)
	require.NoError(t, err)
	copy(r.AsFloat32(), data)
	return r
}

func TestAdd_SameShape(t *testing.T) {
	b := New()
	a := rawF64(t, tensor.Shape{2, 3}, []float64{1, 2, 3, 4, 5, 6})
	c := rawF64(t, tensor.Shape{2, 3}, []float64{10, 20, 30, 40, 50, 60})

	out := b.Add(a, c)

	assert.Equal(t, tensor.Shape{2, 3}, out.Shape())
	assert.Equal(t, []float64{11, 22, 33, 44, 55, 66}, out.AsFloat64())
}

func TestAdd_DoesNotMutateInputs(t *testing.T) {
	b := New()
	a := rawF64(t, tensor.Shape{3}, []float64{1, 2, 3})
	c := rawF64(t, tensor.Shape{3}, []float64{4, 5, 6})

	b.Add(a, c)

	assert.Equal(t, []float64{1, 2, 3}, a.AsFloat64())
	assert.Equal(t, []float64{4, 5, 6}, c.AsFloat64())
}

func TestSub_Float32(t *testing.T) {
	b := New()
	a := rawF32(t, tensor.Shape{4}, []float32{5, 7, 9, 11})
	c := rawF32(t, tensor.Shape{4}, []float32{1, 2, 3, 4})

	out := b.Sub(a, c)

	assert.Equal(t, []float32{4, 5, 6, 7}, out.AsFloat32())
}

func TestMul_BroadcastRowAgainstMatrix(t *testing.T) {
	b := New()
	m := rawF64(t, tensor.Shape{2, 3}, []float64{1, 2, 3, 4, 5, 6})
	row := rawF64(t, tensor.Shape{3}, []float64{10, 100, 1000})

	out := b.Mul(m, row)

	assert.Equal(t, tensor.Shape{2, 3}, out.Shape())
	assert.Equal(t, []float64{10, 200, 3000, 40, 500, 6000}, out.AsFloat64())
}

func TestMul_BroadcastColumn(t *testing.T) {
	b := New()
	m := rawF64(t, tensor.Shape{2, 3}, []float64{1, 2, 3, 4, 5, 6})
	col := rawF64(t, tensor.Shape{2, 1}, []float64{2, 3})

	out := b.Mul(m, col)

	assert.Equal(t, []float64{2, 4, 6, 12, 15, 18}, out.AsFloat64())
}

func TestDiv_BroadcastScalarTensor(t *testing.T) {
	b := New()
	m := rawF64(t, tensor.Shape{2, 2}, []float64{2, 4, 6, 8})
	s := rawF64(t, tensor.Shape{1}, []float64{2})

	out := b.Div(m, s)

	assert.Equal(t, []float64{1, 2, 3, 4}, out.AsFloat64())
}

func TestBinary_MatchesSequentialUnderParallelism(t *testing.T) {
	n := 10000
	data := make([]float64, n)
	for i := range data {
		data[i] = float64(i)
	}

	par := NewWithConfig(parallel.Config{Enabled: true, NumWorkers: 4, MinChunkSize: 16})
	seq := NewWithConfig(parallel.Sequential())

	a := rawF64(t, tensor.Shape{n}, data)
	c := rawF64(t, tensor.Shape{n}, data)

	assert.Equal(t, seq.Mul(a, c).AsFloat64(), par.Mul(a, c).AsFloat64())
}

func TestBinary_ShapeMismatchPanics(t *testing.T) {
	b := New()
	a := rawF64(t, tensor.Shape{2, 3}, make([]float64, 6))
	c := rawF64(t, tensor.Shape{4}, make([]float64, 4))

	assert.Panics(t, func() { b.Add(a, c) })
}

func TestBinary_DTypeMismatchPanics(t *testing.T) {
	b := New()
	a := rawF64(t, tensor.Shape{2}, []float64{1, 2})
	c := rawF32(t, tensor.Shape{2}, []float32{1, 2})

	assert.Panics(t, func() { b.Add(a, c) })
}

func TestAddScalar(t *testing.T) {
	b := New()
	a := rawF64(t, tensor.Shape{3}, []float64{1, 2, 3})

	out := b.AddScalar(a, 0.5)

	assert.Equal(t, []float64{1.5, 2.5, 3.5}, out.AsFloat64())
	assert.Equal(t, []float64{1, 2, 3}, a.AsFloat64())
}

func TestMulScalar_Float32(t *testing.T) {
	b := New()
	a := rawF32(t, tensor.Shape{3}, []float32{1, 2, 3})

	out := b.MulScalar(a, 2)

	assert.Equal(t, []float32{2, 4, 6}, out.AsFloat32())
}

func TestDivScalar(t *testing.T) {
	b := New()
	a := rawF64(t, tensor.Shape{2}, []float64{3, 9})

	out := b.DivScalar(a, 3)

	assert.InDeltaSlice(t, []float64{1, 3}, out.AsFloat64(), 1e-15)
}

func TestExpLog_Roundtrip(t *testing.T) {
	b := New()
	a := rawF64(t, tensor.Shape{4}, []float64{0.1, 1, 2.5, 10})

	out := b.Exp(b.Log(a))

	assert.InDeltaSlice(t, a.AsFloat64(), out.AsFloat64(), 1e-12)
}

func TestSqrt(t *testing.T) {
	b := New()
	a := rawF64(t, tensor.Shape{3}, []float64{4, 9, 16})

	out := b.Sqrt(a)

	assert.InDeltaSlice(t, []float64{2, 3, 4}, out.AsFloat64(), 1e-15)
}

func TestLog_NonPositivePanics(t *testing.T) {
	b := New()
	a := rawF64(t, tensor.Shape{1}, []float64{0})

	assert.Panics(t, func() { b.Log(a) })
}
