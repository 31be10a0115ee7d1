package ops

import "github.com/locus-ml/locus/internal/tensor"

// Shape operations move data without changing values, so their backward
// pass just restores the input shape on the gradient.

// ReshapeOp records output = reshape(x, newShape).
type ReshapeOp struct {
	input  *tensor.RawTensor
	output *tensor.RawTensor
}

// NewReshapeOp creates a ReshapeOp.
func NewReshapeOp(x, output *tensor.RawTensor) *ReshapeOp {
	return &ReshapeOp{input: x, output: output}
}

// Backward reshapes the gradient back to the input shape.
func (op *ReshapeOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{backend.Reshape(outputGrad, op.input.Shape())}
}

// Inputs returns [x].
func (op *ReshapeOp) Inputs() []*tensor.RawTensor { return []*tensor.RawTensor{op.input} }

// Output returns the reshaped tensor.
func (op *ReshapeOp) Output() *tensor.RawTensor { return op.output }

// UnsqueezeOp records output = unsqueeze(x, dim).
type UnsqueezeOp struct {
	input  *tensor.RawTensor
	output *tensor.RawTensor
}

// NewUnsqueezeOp creates an UnsqueezeOp.
func NewUnsqueezeOp(x, output *tensor.RawTensor) *UnsqueezeOp {
	return &UnsqueezeOp{input: x, output: output}
}

// Backward drops the inserted dimension from the gradient.
func (op *UnsqueezeOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{backend.Reshape(outputGrad, op.input.Shape())}
}

// Inputs returns [x].
func (op *UnsqueezeOp) Inputs() []*tensor.RawTensor { return []*tensor.RawTensor{op.input} }

// Output returns the unsqueezed tensor.
func (op *UnsqueezeOp) Output() *tensor.RawTensor { return op.output }

// SqueezeOp records output = squeeze(x, dim).
type SqueezeOp struct {
	input  *tensor.RawTensor
	output *tensor.RawTensor
}

// NewSqueezeOp creates a SqueezeOp.
func NewSqueezeOp(x, output *tensor.RawTensor) *SqueezeOp {
	return &SqueezeOp{input: x, output: output}
}

// Backward reinserts the squeezed dimension into the gradient.
func (op *SqueezeOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{backend.Reshape(outputGrad, op.input.Shape())}
}

// Inputs returns [x].
func (op *SqueezeOp) Inputs() []*tensor.RawTensor { return []*tensor.RawTensor{op.input} }

// Output returns the squeezed tensor.
func (op *SqueezeOp) Output() *tensor.RawTensor { return op.output }
