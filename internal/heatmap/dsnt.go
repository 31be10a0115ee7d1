package heatmap

import (
	"github.com/locus-ml/locus/internal/tensor"
)

// DSNT applies the differentiable spatial to numerical transform,
// converting normalized heatmaps into numerical coordinates.
//
// heatmaps has ndims trailing spatial dimensions. The result replaces
// them with a single trailing dimension of length ndims holding the
// expected location in (x, y[, z]) order, innermost axis first.
func DSNT[T tensor.Float, B tensor.Backend](heatmaps *tensor.Tensor[T, B], ndims int) *tensor.Tensor[T, B] {
	mus := make([]*tensor.Tensor[T, B], ndims)
	for i := 0; i < ndims; i++ {
		mus[i] = CoordExpectation(heatmaps, -1-i, ndims, nil)
	}
	return tensor.Stack(mus, -1)
}

// FlatSoftmax applies softmax jointly over the last ndims dimensions,
// turning unconstrained activations into a single probability
// distribution per heatmap.
func FlatSoftmax[T tensor.Float, B tensor.Backend](inp *tensor.Tensor[T, B], ndims int) *tensor.Tensor[T, B] {
	shape := inp.Shape()
	flatSpatial := 1
	for _, d := range shape[len(shape)-ndims:] {
		flatSpatial *= d
	}
	batchFlat := inp.NumElements() / flatSpatial

	flat := inp.Reshape(batchFlat, flatSpatial).Softmax(-1)
	return flat.Reshape(shape...)
}
