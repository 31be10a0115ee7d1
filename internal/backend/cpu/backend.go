// Package cpu implements the CPU compute backend.
//
// float64 kernels lean on gonum for the contiguous fast paths; float32
// kernels are plain loops. Large element ranges are sharded over the
// parallel package. Every operation allocates a fresh result tensor:
// inputs are never written, which keeps the autodiff tape sound and makes
// concurrent use safe without locking.
package cpu

import (
	"fmt"

	"github.com/locus-ml/locus/internal/parallel"
	"github.com/locus-ml/locus/internal/tensor"
)

// CPUBackend implements tensor.Backend on the host CPU.
type CPUBackend struct {
	device tensor.Device
	par    parallel.Config
}

// New creates a CPU backend with default parallelism.
func New() *CPUBackend {
	return &CPUBackend{
		device: tensor.CPU,
		par:    parallel.DefaultConfig(),
	}
}

// NewWithConfig creates a CPU backend with explicit parallelism settings.
func NewWithConfig(cfg parallel.Config) *CPUBackend {
	return &CPUBackend{
		device: tensor.CPU,
		par:    cfg,
	}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Device returns the compute device.
func (cpu *CPUBackend) Device() tensor.Device {
	return cpu.device
}

// binOp selects the element-wise binary kernel.
type binOp int

const (
	opAdd binOp = iota
	opSub
	opMul
	opDiv
)

// Add performs element-wise addition with NumPy-style broadcasting.
func (cpu *CPUBackend) Add(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binary("add", opAdd, a, b)
}

// Sub performs element-wise subtraction with broadcasting.
func (cpu *CPUBackend) Sub(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binary("sub", opSub, a, b)
}

// Mul performs element-wise multiplication with broadcasting.
func (cpu *CPUBackend) Mul(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binary("mul", opMul, a, b)
}

// Div performs element-wise division with broadcasting.
func (cpu *CPUBackend) Div(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binary("div", opDiv, a, b)
}

func (cpu *CPUBackend) binary(name string, op binOp, a, b *tensor.RawTensor) *tensor.RawTensor {
	if a.DType() != b.DType() {
		panic(fmt.Sprintf("%s: dtype mismatch %s vs %s", name, a.DType(), b.DType()))
	}

	outShape, _, err := tensor.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(fmt.Sprintf("%s: %v", name, err))
	}

	result, err := tensor.NewRaw(outShape, a.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("%s: %v", name, err))
	}

	sameShape := a.Shape().Equal(b.Shape())
	switch a.DType() {
	case tensor.Float64:
		if sameShape {
			binarySameF64(op, result.AsFloat64(), a.AsFloat64(), b.AsFloat64(), cpu.par)
		} else {
			binaryBroadcastF64(op, result, a, b, cpu.par)
		}
	case tensor.Float32:
		if sameShape {
			binarySameF32(op, result.AsFloat32(), a.AsFloat32(), b.AsFloat32(), cpu.par)
		} else {
			binaryBroadcastF32(op, result, a, b, cpu.par)
		}
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s", name, a.DType()))
	}

	return result
}
