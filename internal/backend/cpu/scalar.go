package cpu

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/locus-ml/locus/internal/parallel"
	"github.com/locus-ml/locus/internal/tensor"
)

// Scalar operations. The scalar arrives as float64 and is converted to
// the tensor's dtype before the kernel runs.

// AddScalar adds a scalar to every element.
func (cpu *CPUBackend) AddScalar(x *tensor.RawTensor, scalar float64) *tensor.RawTensor {
	return cpu.scalarOp("addscalar", x, func(dst []float64) {
		floats.AddConst(scalar, dst)
	}, func(dst []float32) {
		s := float32(scalar)
		for i := range dst {
			dst[i] += s
		}
	})
}

// SubScalar subtracts a scalar from every element.
func (cpu *CPUBackend) SubScalar(x *tensor.RawTensor, scalar float64) *tensor.RawTensor {
	return cpu.AddScalar(x, -scalar)
}

// MulScalar multiplies every element by a scalar.
func (cpu *CPUBackend) MulScalar(x *tensor.RawTensor, scalar float64) *tensor.RawTensor {
	return cpu.scalarOp("mulscalar", x, func(dst []float64) {
		floats.Scale(scalar, dst)
	}, func(dst []float32) {
		s := float32(scalar)
		for i := range dst {
			dst[i] *= s
		}
	})
}

// DivScalar divides every element by a scalar.
func (cpu *CPUBackend) DivScalar(x *tensor.RawTensor, scalar float64) *tensor.RawTensor {
	return cpu.scalarOp("divscalar", x, func(dst []float64) {
		for i := range dst {
			dst[i] /= scalar
		}
	}, func(dst []float32) {
		s := float32(scalar)
		for i := range dst {
			dst[i] /= s
		}
	})
}

// scalarOp clones x and applies the in-place kernel to the copy.
func (cpu *CPUBackend) scalarOp(name string, x *tensor.RawTensor, f64 func([]float64), f32 func([]float32)) *tensor.RawTensor {
	result := x.Clone()

	switch x.DType() {
	case tensor.Float64:
		dst := result.AsFloat64()
		parallel.ForRange(len(dst), func(s, e int) {
			f64(dst[s:e])
		}, cpu.par)
	case tensor.Float32:
		dst := result.AsFloat32()
		parallel.ForRange(len(dst), func(s, e int) {
			f32(dst[s:e])
		}, cpu.par)
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s", name, x.DType()))
	}

	return result
}
