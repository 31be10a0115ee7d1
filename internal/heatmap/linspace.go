// Package heatmap implements differentiable conversion between spatial
// heatmaps and numerical coordinates.
//
// Coordinates live in a normalized space: -1 and 1 are the outer edges of
// the first and last cell along an axis, and each cell contributes the
// value at its centre. Axis ordering follows two complementary
// conventions. Sizes are given outermost to innermost ([depth,] height,
// width), while coordinate vectors are innermost to outermost (x, y[, z]).
//
// All operations are built from backend tensor ops, so wrapping the
// backend with autodiff makes every result differentiable with respect to
// its tensor inputs.
package heatmap

import (
	"fmt"

	"github.com/locus-ml/locus/internal/tensor"
)

// NormalizedLinspace generates a vector of cell-centre coordinates in
// (-1, 1). For length 4:
//
//	 [ -0.75, -0.25,  0.25,  0.75 ]
//	 ^              ^             ^
//	-1              0             1
//
// -1 and 1 always fall conceptually outside the vector.
func NormalizedLinspace[T tensor.Float, B tensor.Backend](length int, b B) (*tensor.Tensor[T, B], error) {
	if length < 1 {
		return nil, fmt.Errorf("normalized linspace: length must be at least 1, got %d", length)
	}

	data := make([]T, length)
	for i := range data {
		data[i] = T(float64(2*i-length+1) / float64(length))
	}
	return tensor.FromSlice(data, tensor.Shape{length}, b)
}
