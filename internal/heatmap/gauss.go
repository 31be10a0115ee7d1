package heatmap

import (
	"fmt"

	"github.com/locus-ml/locus/internal/tensor"
)

// MakeGauss renders Gaussian heatmaps centred on the given means. The
// result is differentiable with respect to means.
//
// size lists the spatial dimensions in pixels, outermost to innermost
// ([depth,] height, width), while the last dimension of means holds
// normalized coordinates in (x, y[, z]) order. sigma is the standard
// deviation in pixels and applies to every axis, so non-square sizes
// produce anisotropic Gaussians in normalized space.
//
// With normalize set, each Gaussian is scaled to sum to 1 over its
// spatial dimensions. Otherwise the peak value is 1.
func MakeGauss[T tensor.Float, B tensor.Backend](
	means *tensor.Tensor[T, B],
	size []int,
	sigma float64,
	normalize bool,
) (*tensor.Tensor[T, B], error) {
	ndims := len(size)
	if ndims < 1 {
		return nil, fmt.Errorf("make gauss: size must name at least one dimension")
	}
	for _, s := range size {
		if s < 1 {
			return nil, fmt.Errorf("make gauss: dimension sizes must be positive, got %v", size)
		}
	}
	if sigma <= 0 {
		return nil, fmt.Errorf("make gauss: sigma must be positive, got %g", sigma)
	}
	meansShape := means.Shape()
	if meansShape[len(meansShape)-1] != ndims {
		return nil, fmt.Errorf("make gauss: means last dimension is %d, want %d to match size %v",
			meansShape[len(meansShape)-1], ndims, size)
	}

	batchDims := meansShape[:len(meansShape)-1]
	comps := means.Chunk(ndims, -1)

	// One 1D Gaussian per axis; the product of their broadcasts is the
	// separable n-dimensional Gaussian.
	var gauss *tensor.Tensor[T, B]
	for i := 0; i < ndims; i++ {
		// comps[i] pairs with the innermost-first axis order of means,
		// so axis i spans size[ndims-1-i] pixels.
		s := size[ndims-1-i]
		coords, err := NormalizedLinspace[T](s, means.Backend())
		if err != nil {
			return nil, fmt.Errorf("make gauss: %w", err)
		}

		diff := coords.Sub(comps[i])
		dist := diff.Mul(diff)

		// exp(-(x - mu)² / (2 stddev²)) with stddev in normalized units
		stddev := 2 * sigma / float64(s)
		k := -0.5 / (stddev * stddev)
		e := dist.MulScalar(T(k)).Exp()

		// Place the axis at its spatial position, size-1 elsewhere.
		spatial := make(tensor.Shape, ndims)
		for d := range spatial {
			spatial[d] = 1
		}
		spatial[ndims-1-i] = s
		e = e.Reshape(append(batchDims.Clone(), spatial...)...)

		if gauss == nil {
			gauss = e
		} else {
			gauss = gauss.Mul(e)
		}
	}

	if !normalize {
		return gauss, nil
	}

	valSum := gauss
	for d := -1; d >= -ndims; d-- {
		valSum = valSum.SumDim(d, true)
	}
	valSum = valSum.AddScalar(T(1e-24))
	return gauss.Div(valSum), nil
}
