package cpu

import (
	"gonum.org/v1/gonum/floats"

	"github.com/locus-ml/locus/internal/parallel"
	"github.com/locus-ml/locus/internal/tensor"
)

// Same-shape binary kernels.
//
// The float64 path copies the left operand into the destination and then
// applies gonum's in-place slice routines; the float32 path is a plain
// loop. Both shard contiguous subranges across workers.

func binarySameF64(op binOp, dst, a, b []float64, cfg parallel.Config) {
	parallel.ForRange(len(dst), func(s, e int) {
		d, y := dst[s:e], b[s:e]
		copy(d, a[s:e])
		switch op {
		case opAdd:
			floats.Add(d, y)
		case opSub:
			floats.Sub(d, y)
		case opMul:
			floats.Mul(d, y)
		case opDiv:
			floats.Div(d, y)
		}
	}, cfg)
}

func binarySameF32(op binOp, dst, a, b []float32, cfg parallel.Config) {
	parallel.ForRange(len(dst), func(s, e int) {
		switch op {
		case opAdd:
			for i := s; i < e; i++ {
				dst[i] = a[i] + b[i]
			}
		case opSub:
			for i := s; i < e; i++ {
				dst[i] = a[i] - b[i]
			}
		case opMul:
			for i := s; i < e; i++ {
				dst[i] = a[i] * b[i]
			}
		case opDiv:
			for i := s; i < e; i++ {
				dst[i] = a[i] / b[i]
			}
		}
	}, cfg)
}

// broadcastIndexer returns a mapping from flat output index to flat
// source index under NumPy broadcasting: shapes align from the right and
// size-1 source dimensions contribute stride 0.
func broadcastIndexer(srcShape, outShape tensor.Shape) func(i int) int {
	srcStrides := srcShape.ComputeStrides()
	outStrides := outShape.ComputeStrides()
	offset := len(outShape) - len(srcShape)

	// Per-output-dimension source stride (0 where the source broadcasts).
	strides := make([]int, len(outShape))
	for d := range outShape {
		sd := d - offset
		if sd >= 0 && srcShape[sd] != 1 {
			strides[d] = srcStrides[sd]
		}
	}

	return func(i int) int {
		idx := 0
		rem := i
		for d := 0; d < len(outStrides); d++ {
			coord := rem / outStrides[d]
			rem %= outStrides[d]
			idx += coord * strides[d]
		}
		return idx
	}
}

func binaryBroadcastF64(op binOp, result, a, b *tensor.RawTensor, cfg parallel.Config) {
	dst := result.AsFloat64()
	av, bv := a.AsFloat64(), b.AsFloat64()
	aIdx := broadcastIndexer(a.Shape(), result.Shape())
	bIdx := broadcastIndexer(b.Shape(), result.Shape())

	parallel.ForRange(len(dst), func(s, e int) {
		switch op {
		case opAdd:
			for i := s; i < e; i++ {
				dst[i] = av[aIdx(i)] + bv[bIdx(i)]
			}
		case opSub:
			for i := s; i < e; i++ {
				dst[i] = av[aIdx(i)] - bv[bIdx(i)]
			}
		case opMul:
			for i := s; i < e; i++ {
				dst[i] = av[aIdx(i)] * bv[bIdx(i)]
			}
		case opDiv:
			for i := s; i < e; i++ {
				dst[i] = av[aIdx(i)] / bv[bIdx(i)]
			}
		}
	}, cfg)
}

func binaryBroadcastF32(op binOp, result, a, b *tensor.RawTensor, cfg parallel.Config) {
	dst := result.AsFloat32()
	av, bv := a.AsFloat32(), b.AsFloat32()
	aIdx := broadcastIndexer(a.Shape(), result.Shape())
	bIdx := broadcastIndexer(b.Shape(), result.Shape())

	parallel.ForRange(len(dst), func(s, e int) {
		switch op {
		case opAdd:
			for i := s; i < e; i++ {
				dst[i] = av[aIdx(i)] + bv[bIdx(i)]
			}
		case opSub:
			for i := s; i < e; i++ {
				dst[i] = av[aIdx(i)] - bv[bIdx(i)]
			}
		case opMul:
			for i := s; i < e; i++ {
				dst[i] = av[aIdx(i)] * bv[bIdx(i)]
			}
		case opDiv:
			for i := s; i < e; i++ {
				dst[i] = av[aIdx(i)] / bv[bIdx(i)]
			}
		}
	}, cfg)
}
