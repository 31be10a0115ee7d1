package cpu

import (
	"fmt"

	"github.com/locus-ml/locus/internal/tensor"
)

// Shape manipulation. Data is always row-major and contiguous, so these
// operations reduce to metadata changes plus byte copies, independent of
// dtype.

// Reshape returns a tensor with the same data and a new shape.
// The element count must match.
func (cpu *CPUBackend) Reshape(x *tensor.RawTensor, newShape tensor.Shape) *tensor.RawTensor {
	if err := newShape.Validate(); err != nil {
		panic(fmt.Sprintf("reshape: %v", err))
	}
	if newShape.NumElements() != x.NumElements() {
		panic(fmt.Sprintf("reshape: cannot reshape %v (%d elements) to %v (%d elements)",
			x.Shape(), x.NumElements(), newShape, newShape.NumElements()))
	}
	return x.WithShape(newShape)
}

// Unsqueeze inserts a dimension of size 1 at position dim.
// dim may be negative: -1 appends after the last dimension.
func (cpu *CPUBackend) Unsqueeze(x *tensor.RawTensor, dim int) *tensor.RawTensor {
	ndim := len(x.Shape())
	if dim < 0 {
		dim = ndim + 1 + dim
	}
	if dim < 0 || dim > ndim {
		panic(fmt.Sprintf("unsqueeze: dimension %d out of range for %dD tensor", dim, ndim))
	}

	newShape := make(tensor.Shape, 0, ndim+1)
	newShape = append(newShape, x.Shape()[:dim]...)
	newShape = append(newShape, 1)
	newShape = append(newShape, x.Shape()[dim:]...)
	return x.WithShape(newShape)
}

// Squeeze removes the size-1 dimension at position dim.
func (cpu *CPUBackend) Squeeze(x *tensor.RawTensor, dim int) *tensor.RawTensor {
	shape := x.Shape()
	dim = shape.NormalizeDim(dim)
	if shape[dim] != 1 {
		panic(fmt.Sprintf("squeeze: dimension %d has size %d, want 1", dim, shape[dim]))
	}

	newShape := make(tensor.Shape, 0, len(shape)-1)
	for i, d := range shape {
		if i != dim {
			newShape = append(newShape, d)
		}
	}
	return x.WithShape(newShape)
}

// Cat concatenates tensors along an existing dimension. All tensors must
// agree on dtype and on every dimension except dim.
func (cpu *CPUBackend) Cat(tensors []*tensor.RawTensor, dim int) *tensor.RawTensor {
	if len(tensors) == 0 {
		panic("cat: at least one tensor required")
	}

	first := tensors[0]
	shape := first.Shape()
	ndim := len(shape)
	dim = shape.NormalizeDim(dim)

	totalDim := 0
	for i, t := range tensors {
		tShape := t.Shape()
		if len(tShape) != ndim {
			panic(fmt.Sprintf("cat: tensor %d has %d dimensions, expected %d", i, len(tShape), ndim))
		}
		if t.DType() != first.DType() {
			panic(fmt.Sprintf("cat: tensor %d has dtype %s, expected %s", i, t.DType(), first.DType()))
		}
		for d := 0; d < ndim; d++ {
			if d == dim {
				totalDim += tShape[d]
			} else if tShape[d] != shape[d] {
				panic(fmt.Sprintf("cat: tensor %d dimension %d is %d, expected %d", i, d, tShape[d], shape[d]))
			}
		}
	}

	outShape := shape.Clone()
	outShape[dim] = totalDim
	result, err := tensor.NewRaw(outShape, first.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("cat: %v", err))
	}

	// Treat every tensor as [outer, dim, inner] and interleave blocks.
	outer := 1
	for d := 0; d < dim; d++ {
		outer *= shape[d]
	}
	inner := 1
	for d := dim + 1; d < ndim; d++ {
		inner *= shape[d]
	}
	elemSize := first.DType().Size()

	dst := result.Data()
	pos := 0
	for o := 0; o < outer; o++ {
		for _, t := range tensors {
			blockBytes := t.Shape()[dim] * inner * elemSize
			src := t.Data()[o*blockBytes : (o+1)*blockBytes]
			copy(dst[pos:], src)
			pos += blockBytes
		}
	}

	return result
}

// Chunk splits a tensor into n equal parts along dim.
// The dimension size must be divisible by n.
func (cpu *CPUBackend) Chunk(x *tensor.RawTensor, n, dim int) []*tensor.RawTensor {
	if n <= 0 {
		panic(fmt.Sprintf("chunk: n must be positive, got %d", n))
	}

	shape := x.Shape()
	ndim := len(shape)
	dim = shape.NormalizeDim(dim)

	if shape[dim]%n != 0 {
		panic(fmt.Sprintf("chunk: dimension %d size %d not divisible by %d", dim, shape[dim], n))
	}
	chunkSize := shape[dim] / n

	chunkShape := shape.Clone()
	chunkShape[dim] = chunkSize

	results := make([]*tensor.RawTensor, n)
	for i := range results {
		c, err := tensor.NewRaw(chunkShape, x.DType(), cpu.device)
		if err != nil {
			panic(fmt.Sprintf("chunk: %v", err))
		}
		results[i] = c
	}

	outer := 1
	for d := 0; d < dim; d++ {
		outer *= shape[d]
	}
	inner := 1
	for d := dim + 1; d < ndim; d++ {
		inner *= shape[d]
	}
	elemSize := x.DType().Size()
	blockBytes := chunkSize * inner * elemSize

	src := x.Data()
	pos := 0
	for o := 0; o < outer; o++ {
		for i := 0; i < n; i++ {
			copy(results[i].Data()[o*blockBytes:], src[pos:pos+blockBytes])
			pos += blockBytes
		}
	}

	return results
}
