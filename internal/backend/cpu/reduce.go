package cpu

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/locus-ml/locus/internal/tensor"
)

// Sum computes the total sum of all elements (scalar result).
func (cpu *CPUBackend) Sum(x *tensor.RawTensor) *tensor.RawTensor {
	result, err := tensor.NewRaw(tensor.Shape{}, x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("sum: %v", err))
	}

	switch x.DType() {
	case tensor.Float64:
		result.AsFloat64()[0] = floats.Sum(x.AsFloat64())
	case tensor.Float32:
		var sum float32
		for _, v := range x.AsFloat32() {
			sum += v
		}
		result.AsFloat32()[0] = sum
	default:
		panic(fmt.Sprintf("sum: unsupported dtype %s", x.DType()))
	}

	return result
}

// SumDim sums tensor elements along one dimension.
//
// dim supports negative indexing (-1 = last dimension), which is how the
// heatmap code addresses spatial axes without knowing how many batch
// dimensions precede them.
func (cpu *CPUBackend) SumDim(x *tensor.RawTensor, dim int, keepDim bool) *tensor.RawTensor {
	shape := x.Shape()
	dim = shape.NormalizeDim(dim)

	var outShape tensor.Shape
	if keepDim {
		outShape = shape.Clone()
		outShape[dim] = 1
	} else {
		outShape = make(tensor.Shape, 0, len(shape)-1)
		for i, d := range shape {
			if i != dim {
				outShape = append(outShape, d)
			}
		}
	}

	result, err := tensor.NewRaw(outShape, x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("sumdim: %v", err))
	}

	// Contiguous fast path: reducing the innermost dimension means each
	// output value is the sum of a contiguous run.
	if dim == len(shape)-1 {
		rowLen := shape[dim]
		switch x.DType() {
		case tensor.Float64:
			src := x.AsFloat64()
			dst := result.AsFloat64()
			for i := range dst {
				dst[i] = floats.Sum(src[i*rowLen : (i+1)*rowLen])
			}
		case tensor.Float32:
			src := x.AsFloat32()
			dst := result.AsFloat32()
			for i := range dst {
				var sum float32
				for _, v := range src[i*rowLen : (i+1)*rowLen] {
					sum += v
				}
				dst[i] = sum
			}
		default:
			panic(fmt.Sprintf("sumdim: unsupported dtype %s", x.DType()))
		}
		return result
	}

	switch x.DType() {
	case tensor.Float64:
		sumDimF64(x.AsFloat64(), result.AsFloat64(), shape, dim)
	case tensor.Float32:
		sumDimF32(x.AsFloat32(), result.AsFloat32(), shape, dim)
	default:
		panic(fmt.Sprintf("sumdim: unsupported dtype %s", x.DType()))
	}

	return result
}

func sumDimF64(src, dst []float64, shape tensor.Shape, dim int) {
	strides := shape.ComputeStrides()
	reduced := shape.Clone()
	reduced[dim] = 1
	outStrides := reduced.ComputeStrides()

	for i := range src {
		outIdx := 0
		rem := i
		for d := 0; d < len(shape); d++ {
			coord := rem / strides[d]
			rem %= strides[d]
			if d != dim {
				outIdx += coord * outStrides[d]
			}
		}
		dst[outIdx] += src[i]
	}
}

func sumDimF32(src, dst []float32, shape tensor.Shape, dim int) {
	strides := shape.ComputeStrides()
	reduced := shape.Clone()
	reduced[dim] = 1
	outStrides := reduced.ComputeStrides()

	for i := range src {
		outIdx := 0
		rem := i
		for d := 0; d < len(shape); d++ {
			coord := rem / strides[d]
			rem %= strides[d]
			if d != dim {
				outIdx += coord * outStrides[d]
			}
		}
		dst[outIdx] += src[i]
	}
}
