package heatmap

import (
	"fmt"

	"github.com/locus-ml/locus/internal/tensor"
)

// stabilizerEps is added inside logarithms so that empty heatmap cells do
// not produce infinities.
const stabilizerEps = 1e-24

// klDiv computes per-location Kullback-Leibler divergences KL(p || q)
// over the ndims trailing spatial dimensions.
func klDiv[T tensor.Float, B tensor.Backend](p, q *tensor.Tensor[T, B], ndims int) *tensor.Tensor[T, B] {
	unsummed := p.Mul(p.AddScalar(stabilizerEps).Log().Sub(q.AddScalar(stabilizerEps).Log()))
	result := unsummed
	for i := 0; i < ndims; i++ {
		result = result.SumDim(-1, false)
	}
	return result
}

// jsDiv computes per-location Jensen-Shannon divergences over the ndims
// trailing spatial dimensions.
func jsDiv[T tensor.Float, B tensor.Backend](p, q *tensor.Tensor[T, B], ndims int) *tensor.Tensor[T, B] {
	m := p.Add(q).MulScalar(0.5)
	return klDiv(p, m, ndims).MulScalar(0.5).Add(klDiv(q, m, ndims).MulScalar(0.5))
}

// targetGauss renders the regularization target for divergence losses.
func targetGauss[T tensor.Float, B tensor.Backend](heatmaps, muT *tensor.Tensor[T, B], sigmaT float64) (*tensor.Tensor[T, B], int) {
	muShape := muT.Shape()
	ndims := muShape[len(muShape)-1]
	hmShape := heatmaps.Shape()
	gauss, err := MakeGauss(muT, hmShape[len(hmShape)-ndims:], sigmaT, true)
	if err != nil {
		panic(fmt.Sprintf("reg losses: %v", err))
	}
	return gauss, ndims
}

// KLRegLosses computes per-location Kullback-Leibler divergences between
// heatmaps and target Gaussians centred at muT with standard deviation
// sigmaT pixels. The trailing dimension of muT determines the number of
// spatial dimensions.
func KLRegLosses[T tensor.Float, B tensor.Backend](heatmaps, muT *tensor.Tensor[T, B], sigmaT float64) *tensor.Tensor[T, B] {
	gauss, ndims := targetGauss(heatmaps, muT, sigmaT)
	return klDiv(heatmaps, gauss, ndims)
}

// JSRegLosses computes per-location Jensen-Shannon divergences between
// heatmaps and target Gaussians centred at muT with standard deviation
// sigmaT pixels.
func JSRegLosses[T tensor.Float, B tensor.Backend](heatmaps, muT *tensor.Tensor[T, B], sigmaT float64) *tensor.Tensor[T, B] {
	gauss, ndims := targetGauss(heatmaps, muT, sigmaT)
	return jsDiv(heatmaps, gauss, ndims)
}

// VarianceRegLosses penalizes the difference between per-axis heatmap
// variances and the target variance sigmaT² (both in pixel units).
// Returns the per-location sum of squared errors across axes.
func VarianceRegLosses[T tensor.Float, B tensor.Backend](heatmaps *tensor.Tensor[T, B], sigmaT float64, ndims int) *tensor.Tensor[T, B] {
	variances := make([]*tensor.Tensor[T, B], 0, ndims)
	for d := -ndims; d < 0; d++ {
		variances = append(variances, CoordVariance(heatmaps, d, ndims))
	}
	variance := tensor.Stack(variances, -1)

	// Rescale normalized variances to pixel units, axis by axis.
	hmShape := heatmaps.Shape()
	scale := make([]T, ndims)
	for i, s := range hmShape[len(hmShape)-ndims:] {
		half := float64(s) / 2
		scale[i] = T(half * half)
	}
	scaleT, err := tensor.FromSlice(scale, tensor.Shape{ndims}, heatmaps.Backend())
	if err != nil {
		panic(fmt.Sprintf("variance reg losses: %v", err))
	}

	diff := variance.Mul(scaleT).SubScalar(T(sigmaT * sigmaT))
	return diff.Mul(diff).SumDim(-1, false)
}

// EuclideanLosses computes per-point Euclidean distances between actual
// and target coordinates. Both tensors have shape [batch... x] n x d.
func EuclideanLosses[T tensor.Float, B tensor.Backend](actual, target *tensor.Tensor[T, B]) *tensor.Tensor[T, B] {
	if !actual.Shape().Equal(target.Shape()) {
		panic(fmt.Sprintf("euclidean losses: shape mismatch %v vs %v", actual.Shape(), target.Shape()))
	}
	diff := actual.Sub(target)
	return diff.Mul(diff).SumDim(-1, false).Sqrt()
}

// AverageLoss averages per-location losses into a scalar. A non-nil mask
// selects the locations to include; masked-out entries contribute
// nothing to either the numerator or the denominator. When every entry is
// masked out the result is 0.
func AverageLoss[T tensor.Float, B tensor.Backend](losses, mask *tensor.Tensor[T, B]) *tensor.Tensor[T, B] {
	var denom float64
	if mask != nil {
		losses = losses.Mul(mask)
		denom = 0
		for _, v := range mask.Data() {
			denom += float64(v)
		}
	} else {
		denom = float64(losses.NumElements())
	}
	if denom < 1 {
		denom = 1
	}
	return losses.Sum().DivScalar(T(denom))
}
