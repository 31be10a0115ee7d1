package ops

import "github.com/locus-ml/locus/internal/tensor"

// ChunkOp records outputs = chunk(x, n, dim), the inverse of Cat.
//
// Backward concatenates the n output gradients back along dim. The tape
// zero-fills gradients for chunks that never reached the loss.
type ChunkOp struct {
	input   *tensor.RawTensor
	outputs []*tensor.RawTensor
	n       int
	dim     int
}

// NewChunkOp creates a ChunkOp. dim is the normalized split dimension.
func NewChunkOp(x *tensor.RawTensor, n, dim int, outputs []*tensor.RawTensor) *ChunkOp {
	return &ChunkOp{input: x, outputs: outputs, n: n, dim: dim}
}

// Backward is not usable directly; the tape routes multi-output
// operations through BackwardMulti.
func (op *ChunkOp) Backward(_ *tensor.RawTensor, _ tensor.Backend) []*tensor.RawTensor {
	panic("chunk backward requires gradients for all outputs, use BackwardMulti")
}

// BackwardMulti concatenates the output gradients into the input gradient.
func (op *ChunkOp) BackwardMulti(outputGrads []*tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	if len(outputGrads) != op.n {
		panic("chunk backward: gradient count does not match chunk count")
	}
	return []*tensor.RawTensor{backend.Cat(outputGrads, op.dim)}
}

// Inputs returns [x].
func (op *ChunkOp) Inputs() []*tensor.RawTensor { return []*tensor.RawTensor{op.input} }

// Output returns the first chunk. The tape detects the
// MultiOutputOperation interface and uses Outputs instead.
func (op *ChunkOp) Output() *tensor.RawTensor { return op.outputs[0] }

// Outputs returns all chunks.
func (op *ChunkOp) Outputs() []*tensor.RawTensor { return op.outputs }
