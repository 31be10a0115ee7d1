package cpu

import (
	"fmt"
	"math"

	"github.com/locus-ml/locus/internal/parallel"
	"github.com/locus-ml/locus/internal/tensor"
)

// Exp computes element-wise exp(x).
func (cpu *CPUBackend) Exp(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.mathOp("exp", x, math.Exp)
}

// Log computes element-wise ln(x).
// Panics on non-positive input; probability-mass callers add a
// stabilizing epsilon before taking logs.
func (cpu *CPUBackend) Log(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.mathOp("log", x, func(v float64) float64 {
		if v <= 0 {
			panic(fmt.Sprintf("log: non-positive value %g", v))
		}
		return math.Log(v)
	})
}

// Sqrt computes element-wise sqrt(x).
func (cpu *CPUBackend) Sqrt(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.mathOp("sqrt", x, func(v float64) float64 {
		if v < 0 {
			panic(fmt.Sprintf("sqrt: negative value %g", v))
		}
		return math.Sqrt(v)
	})
}

func (cpu *CPUBackend) mathOp(name string, x *tensor.RawTensor, f func(float64) float64) *tensor.RawTensor {
	result, err := tensor.NewRaw(x.Shape(), x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("%s: %v", name, err))
	}

	switch x.DType() {
	case tensor.Float64:
		src := x.AsFloat64()
		dst := result.AsFloat64()
		parallel.ForRange(len(src), func(s, e int) {
			for i := s; i < e; i++ {
				dst[i] = f(src[i])
			}
		}, cpu.par)
	case tensor.Float32:
		src := x.AsFloat32()
		dst := result.AsFloat32()
		parallel.ForRange(len(src), func(s, e int) {
			for i := s; i < e; i++ {
				dst[i] = float32(f(float64(src[i])))
			}
		}, cpu.par)
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s", name, x.DType()))
	}

	return result
}
