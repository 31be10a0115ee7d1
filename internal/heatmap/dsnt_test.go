package heatmap

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/locus-ml/locus/internal/backend/cpu"
	"github.com/locus-ml/locus/internal/tensor"
)

func oneHot(t *testing.T, shape tensor.Shape, flatIdx int) *tensor.Tensor[float64, *cpu.CPUBackend] {
	t.Helper()
	data := make([]float64, shape.NumElements())
	data[flatIdx] = 1
	return fromF64(t, shape, data)
}

func TestDSNT_OneHot2D(t *testing.T) {
	// peak at row 2, column 3 of a 5x5 grid
	hm := oneHot(t, tensor.Shape{1, 1, 5, 5}, 2*5+3)

	coords := DSNT(hm, 2)

	assert.Equal(t, tensor.Shape{1, 1, 2}, coords.Shape())
	assert.InDeltaSlice(t, []float64{0.4, 0}, coords.Data(), 1e-12)
}

func TestDSNT_OneHot3D(t *testing.T) {
	// peak at depth 0, row 1, column 2 of a 3x3x3 grid
	hm := oneHot(t, tensor.Shape{1, 1, 3, 3, 3}, 0*9+1*3+2)

	coords := DSNT(hm, 3)

	assert.Equal(t, tensor.Shape{1, 1, 3}, coords.Shape())
	assert.InDeltaSlice(t, []float64{2.0 / 3, 0, -2.0 / 3}, coords.Data(), 1e-12)
}

func TestDSNT_UniformIsCentred(t *testing.T) {
	data := make([]float64, 5*7)
	for i := range data {
		data[i] = 1.0 / float64(len(data))
	}
	hm := fromF64(t, tensor.Shape{1, 5, 7}, data)

	coords := DSNT(hm, 2)

	assert.InDeltaSlice(t, []float64{0, 0}, coords.Data(), 1e-12)
}

func TestDSNT_BatchOfPoints(t *testing.T) {
	// two points at opposite corners of a 3x3 grid
	data := make([]float64, 2*9)
	data[0] = 1      // top-left for point 0
	data[9+8] = 1    // bottom-right for point 1
	hm := fromF64(t, tensor.Shape{1, 2, 3, 3}, data)

	coords := DSNT(hm, 2)

	assert.Equal(t, tensor.Shape{1, 2, 2}, coords.Shape())
	assert.InDeltaSlice(t, []float64{-2.0 / 3, -2.0 / 3, 2.0 / 3, 2.0 / 3}, coords.Data(), 1e-12)
}

func TestFlatSoftmax_SumsToOnePerHeatmap(t *testing.T) {
	logits := fromF64(t, tensor.Shape{2, 2, 3}, []float64{
		1, 2, 3, 4, 5, 6,
		-1, 0, 1, 100, 100, 100,
	})

	hm := FlatSoftmax(logits, 2)

	assert.Equal(t, tensor.Shape{2, 2, 3}, hm.Shape())
	data := hm.Data()
	for b := 0; b < 2; b++ {
		sum := 0.0
		for _, v := range data[b*6 : (b+1)*6] {
			assert.Greater(t, v, 0.0)
			sum += v
		}
		assert.InDelta(t, 1.0, sum, 1e-12)
	}
}

func TestFlatSoftmax_UniformLogits(t *testing.T) {
	logits := fromF64(t, tensor.Shape{1, 2, 2}, []float64{3, 3, 3, 3})

	hm := FlatSoftmax(logits, 2)

	assert.InDeltaSlice(t, []float64{0.25, 0.25, 0.25, 0.25}, hm.Data(), 1e-12)
}

func TestFlatSoftmax_DSNTRoundtrip(t *testing.T) {
	// a strongly peaked logit map should decode close to the peak's coords
	data := make([]float64, 5*5)
	data[1*5+4] = 50
	logits := fromF64(t, tensor.Shape{1, 5, 5}, data)

	coords := DSNT(FlatSoftmax(logits, 2), 2)

	assert.InDeltaSlice(t, []float64{0.8, -0.4}, coords.Data(), 1e-6)
}
