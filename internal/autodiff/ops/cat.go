package ops

import (
	"fmt"

	"github.com/locus-ml/locus/internal/tensor"
)

// CatOp records output = cat(inputs, dim).
//
// Backward slices the output gradient back into per-input pieces along
// dim. Inputs may have different sizes along dim, so the split is done
// bytewise rather than through the backend's equal-size Chunk.
type CatOp struct {
	inputs []*tensor.RawTensor
	output *tensor.RawTensor
	dim    int
}

// NewCatOp creates a CatOp. dim is the normalized concatenation dimension.
func NewCatOp(inputs []*tensor.RawTensor, output *tensor.RawTensor, dim int) *CatOp {
	return &CatOp{inputs: inputs, output: output, dim: dim}
}

// Backward splits the output gradient into per-input gradients.
func (op *CatOp) Backward(outputGrad *tensor.RawTensor, _ tensor.Backend) []*tensor.RawTensor {
	grads := make([]*tensor.RawTensor, len(op.inputs))
	for i, in := range op.inputs {
		g, err := tensor.NewRaw(in.Shape(), in.DType(), in.Device())
		if err != nil {
			panic(fmt.Sprintf("cat backward: %v", err))
		}
		grads[i] = g
	}

	shape := op.output.Shape()
	outer := 1
	for d := 0; d < op.dim; d++ {
		outer *= shape[d]
	}
	inner := 1
	for d := op.dim + 1; d < len(shape); d++ {
		inner *= shape[d]
	}
	elemSize := op.output.DType().Size()

	src := outputGrad.Data()
	pos := 0
	for o := 0; o < outer; o++ {
		for i, in := range op.inputs {
			blockBytes := in.Shape()[op.dim] * inner * elemSize
			copy(grads[i].Data()[o*blockBytes:], src[pos:pos+blockBytes])
			pos += blockBytes
		}
	}

	return grads
}

// Inputs returns the concatenated tensors.
func (op *CatOp) Inputs() []*tensor.RawTensor { return op.inputs }

// Output returns the concatenation result.
func (op *CatOp) Output() *tensor.RawTensor { return op.output }
