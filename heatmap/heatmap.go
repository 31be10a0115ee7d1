// Copyright 2026 Locus ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package heatmap converts between spatial heatmaps and numerical
// coordinates differentiably, for training coordinate regression models.
//
// Coordinates are normalized: -1 and 1 are the outer edges of the first
// and last cell along an axis. Spatial sizes are listed outermost to
// innermost ([depth,] height, width) while coordinate vectors run
// innermost to outermost (x, y[, z]).
//
// A typical training pipeline:
//
//	hm := heatmap.FlatSoftmax(logits, 2)
//	coords := heatmap.DSNT(hm, 2)
//	losses := heatmap.EuclideanLosses(coords, target).
//	    Add(heatmap.JSRegLosses(hm, target, 1.0))
//	loss := heatmap.AverageLoss(losses, nil)
package heatmap

import (
	"github.com/locus-ml/locus/internal/heatmap"
	"github.com/locus-ml/locus/tensor"
)

// NormalizedLinspace generates a vector of cell-centre coordinates in
// (-1, 1). For length 4 it produces [-0.75, -0.25, 0.25, 0.75].
func NormalizedLinspace[T tensor.Float, B tensor.Backend](length int, b B) (*tensor.Tensor[T, B], error) {
	return heatmap.NormalizedLinspace[T](length, b)
}

// CoordExpectation computes the expected coordinate value
// E[transform(X)] along one spatial axis of normalized heatmaps. dim
// selects the axis in negative form, -ndims (outermost) to -1
// (innermost); transform defaults to identity when nil.
func CoordExpectation[T tensor.Float, B tensor.Backend](
	heatmaps *tensor.Tensor[T, B],
	dim, ndims int,
	transform func(*tensor.Tensor[T, B]) *tensor.Tensor[T, B],
) *tensor.Tensor[T, B] {
	return heatmap.CoordExpectation(heatmaps, dim, ndims, transform)
}

// CoordVariance computes the coordinate variance Var[X] along one
// spatial axis of normalized heatmaps.
func CoordVariance[T tensor.Float, B tensor.Backend](heatmaps *tensor.Tensor[T, B], dim, ndims int) *tensor.Tensor[T, B] {
	return heatmap.CoordVariance(heatmaps, dim, ndims)
}

// DSNT applies the differentiable spatial to numerical transform,
// replacing the ndims trailing spatial dimensions of normalized heatmaps
// with a trailing dimension of expected coordinates in (x, y[, z]) order.
func DSNT[T tensor.Float, B tensor.Backend](heatmaps *tensor.Tensor[T, B], ndims int) *tensor.Tensor[T, B] {
	return heatmap.DSNT(heatmaps, ndims)
}

// FlatSoftmax applies softmax jointly over the last ndims dimensions,
// producing one probability distribution per heatmap.
func FlatSoftmax[T tensor.Float, B tensor.Backend](inp *tensor.Tensor[T, B], ndims int) *tensor.Tensor[T, B] {
	return heatmap.FlatSoftmax(inp, ndims)
}

// MakeGauss renders Gaussian heatmaps centred on means, differentiably
// with respect to means. size is in pixels, outermost to innermost;
// sigma is the standard deviation in pixels. With normalize set, each
// heatmap sums to 1; otherwise its peak value is 1.
func MakeGauss[T tensor.Float, B tensor.Backend](
	means *tensor.Tensor[T, B],
	size []int,
	sigma float64,
	normalize bool,
) (*tensor.Tensor[T, B], error) {
	return heatmap.MakeGauss(means, size, sigma, normalize)
}

// KLRegLosses computes per-location Kullback-Leibler divergences between
// heatmaps and target Gaussians centred at muT with standard deviation
// sigmaT pixels.
func KLRegLosses[T tensor.Float, B tensor.Backend](heatmaps, muT *tensor.Tensor[T, B], sigmaT float64) *tensor.Tensor[T, B] {
	return heatmap.KLRegLosses(heatmaps, muT, sigmaT)
}

// JSRegLosses computes per-location Jensen-Shannon divergences between
// heatmaps and target Gaussians centred at muT with standard deviation
// sigmaT pixels.
func JSRegLosses[T tensor.Float, B tensor.Backend](heatmaps, muT *tensor.Tensor[T, B], sigmaT float64) *tensor.Tensor[T, B] {
	return heatmap.JSRegLosses(heatmaps, muT, sigmaT)
}

// VarianceRegLosses penalizes the difference between per-axis heatmap
// variances and the target variance sigmaT², both in pixel units.
func VarianceRegLosses[T tensor.Float, B tensor.Backend](heatmaps *tensor.Tensor[T, B], sigmaT float64, ndims int) *tensor.Tensor[T, B] {
	return heatmap.VarianceRegLosses(heatmaps, sigmaT, ndims)
}

// EuclideanLosses computes per-point Euclidean distances between actual
// and target coordinate tensors of shape [batch... x] n x d.
func EuclideanLosses[T tensor.Float, B tensor.Backend](actual, target *tensor.Tensor[T, B]) *tensor.Tensor[T, B] {
	return heatmap.EuclideanLosses(actual, target)
}

// AverageLoss averages per-location losses into a scalar. A non-nil
// mask selects the locations to include; when every location is masked
// out the result is 0.
func AverageLoss[T tensor.Float, B tensor.Backend](losses, mask *tensor.Tensor[T, B]) *tensor.Tensor[T, B] {
	return heatmap.AverageLoss(losses, mask)
}
