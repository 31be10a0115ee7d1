package ops

import "github.com/locus-ml/locus/internal/tensor"

// SoftmaxOp records output = softmax(x, dim).
//
// With s = softmax(x) along dim:
//
//	grad_x = s * (outputGrad - sum(outputGrad * s, dim, keepDim))
//
// Built from the backend's Mul, Sub and SumDim, which makes it valid for
// any rank and any dim.
type SoftmaxOp struct {
	input  *tensor.RawTensor
	output *tensor.RawTensor
	dim    int
}

// NewSoftmaxOp creates a SoftmaxOp.
func NewSoftmaxOp(x, output *tensor.RawTensor, dim int) *SoftmaxOp {
	return &SoftmaxOp{input: x, output: output, dim: dim}
}

// Backward computes the softmax Jacobian-vector product.
func (op *SoftmaxOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	s := op.output
	dot := backend.SumDim(backend.Mul(outputGrad, s), op.dim, true)
	grad := backend.Mul(s, backend.Sub(outputGrad, dot))
	return []*tensor.RawTensor{grad}
}

// Inputs returns [x].
func (op *SoftmaxOp) Inputs() []*tensor.RawTensor { return []*tensor.RawTensor{op.input} }

// Output returns softmax(x, dim).
func (op *SoftmaxOp) Output() *tensor.RawTensor { return op.output }
