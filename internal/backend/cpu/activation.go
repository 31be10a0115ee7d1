package cpu

import (
	"fmt"
	"math"

	"github.com/locus-ml/locus/internal/tensor"
)

// Softmax computes softmax along the specified dimension.
//
// Each row is max-shifted before exponentiation, so arbitrarily large
// activations cannot overflow. Works for any rank and any dim, including
// negative indexing.
func (cpu *CPUBackend) Softmax(x *tensor.RawTensor, dim int) *tensor.RawTensor {
	shape := x.Shape()
	dim = shape.NormalizeDim(dim)

	result, err := tensor.NewRaw(shape, x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("softmax: %v", err))
	}

	switch x.DType() {
	case tensor.Float64:
		softmaxF64(result, x, dim)
	case tensor.Float32:
		softmaxF32(result, x, dim)
	default:
		panic(fmt.Sprintf("softmax: unsupported dtype %s", x.DType()))
	}

	return result
}

func softmaxF64(result, x *tensor.RawTensor, dim int) {
	src := x.AsFloat64()
	dst := result.AsFloat64()
	shape := x.Shape()
	strides := shape.ComputeStrides()

	dimSize := shape[dim]
	dimStride := strides[dim]

	numRows := shape.NumElements() / dimSize
	for row := 0; row < numRows; row++ {
		// Base offset of this row: distribute the row index over every
		// non-reduced dimension.
		base := 0
		rem := row
		for d := len(shape) - 1; d >= 0; d-- {
			if d == dim {
				continue
			}
			coord := rem % shape[d]
			rem /= shape[d]
			base += coord * strides[d]
		}

		maxVal := math.Inf(-1)
		for i := 0; i < dimSize; i++ {
			if v := src[base+i*dimStride]; v > maxVal {
				maxVal = v
			}
		}

		var sum float64
		for i := 0; i < dimSize; i++ {
			idx := base + i*dimStride
			e := math.Exp(src[idx] - maxVal)
			dst[idx] = e
			sum += e
		}

		for i := 0; i < dimSize; i++ {
			dst[base+i*dimStride] /= sum
		}
	}
}

func softmaxF32(result, x *tensor.RawTensor, dim int) {
	src := x.AsFloat32()
	dst := result.AsFloat32()
	shape := x.Shape()
	strides := shape.ComputeStrides()

	dimSize := shape[dim]
	dimStride := strides[dim]

	numRows := shape.NumElements() / dimSize
	for row := 0; row < numRows; row++ {
		base := 0
		rem := row
		for d := len(shape) - 1; d >= 0; d-- {
			if d == dim {
				continue
			}
			coord := rem % shape[d]
			rem /= shape[d]
			base += coord * strides[d]
		}

		maxVal := float32(math.Inf(-1))
		for i := 0; i < dimSize; i++ {
			if v := src[base+i*dimStride]; v > maxVal {
				maxVal = v
			}
		}

		var sum float32
		for i := 0; i < dimSize; i++ {
			idx := base + i*dimStride
			e := float32(math.Exp(float64(src[idx] - maxVal)))
			dst[idx] = e
			sum += e
		}

		for i := 0; i < dimSize; i++ {
			dst[base+i*dimStride] /= sum
		}
	}
}
