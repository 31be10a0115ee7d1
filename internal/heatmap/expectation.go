package heatmap

import (
	"fmt"

	"github.com/locus-ml/locus/internal/tensor"
)

// CoordExpectation computes the expected coordinate value E[transform(X)]
// along one spatial axis of normalized heatmaps.
//
// heatmaps has shape [batch..., spatial...] with ndims trailing spatial
// dimensions. dim selects the axis in negative form, from -ndims
// (outermost) to -1 (innermost). transform maps the coordinate vector
// before the expectation is taken and defaults to identity when nil.
//
// The result carries the batch dimensions, or shape [1] when there are
// none.
func CoordExpectation[T tensor.Float, B tensor.Backend](
	heatmaps *tensor.Tensor[T, B],
	dim, ndims int,
	transform func(*tensor.Tensor[T, B]) *tensor.Tensor[T, B],
) *tensor.Tensor[T, B] {
	shape := heatmaps.Shape()
	if ndims < 1 || ndims > len(shape) {
		panic(fmt.Sprintf("coord expectation: ndims %d out of range for shape %v", ndims, shape))
	}
	if dim < -ndims || dim > -1 {
		panic(fmt.Sprintf("coord expectation: dim %d must be in [-%d, -1]", dim, ndims))
	}

	dimSize := shape[len(shape)+dim]
	coords, err := NormalizedLinspace[T](dimSize, heatmaps.Backend())
	if err != nil {
		panic(fmt.Sprintf("coord expectation: %v", err))
	}
	if transform != nil {
		coords = transform(coords)
	}

	firstDims := shape[:len(shape)-ndims]
	hmDims := shape[len(shape)-ndims:]
	batchFlat := 1
	for _, d := range firstDims {
		batchFlat *= d
	}

	// Marginalize every spatial axis except dim.
	summed := heatmaps.Reshape(append(tensor.Shape{batchFlat}, hmDims...)...)
	for i := -ndims; i < 0; i++ {
		if i != dim {
			summed = summed.SumDim(i, true)
		}
	}
	summed = summed.Reshape(batchFlat, dimSize)

	coordsMat := coords.Reshape(coords.NumElements()/dimSize, dimSize)
	expectations := summed.Mul(coordsMat).SumDim(-1, false)

	if len(firstDims) > 0 {
		expectations = expectations.Reshape(firstDims...)
	}
	return expectations
}

// CoordVariance computes the coordinate variance Var[X] = E[(X - E[X])²]
// along one spatial axis of normalized heatmaps. dim and ndims follow the
// CoordExpectation conventions.
//
// The mean stays part of the computation graph, so gradients flow through
// both occurrences of the heatmap.
func CoordVariance[T tensor.Float, B tensor.Backend](
	heatmaps *tensor.Tensor[T, B],
	dim, ndims int,
) *tensor.Tensor[T, B] {
	mu := CoordExpectation(heatmaps, dim, ndims, nil)
	muCol := mu.Reshape(mu.NumElements(), 1)
	return CoordExpectation(heatmaps, dim, ndims, func(x *tensor.Tensor[T, B]) *tensor.Tensor[T, B] {
		d := x.Sub(muCol)
		return d.Mul(d)
	})
}
