package ops

import "github.com/locus-ml/locus/internal/tensor"

// LogOp records output = ln(x).
//
// d(ln(x))/dx = 1/x.
type LogOp struct {
	input  *tensor.RawTensor
	output *tensor.RawTensor
}

// NewLogOp creates a LogOp.
func NewLogOp(x, output *tensor.RawTensor) *LogOp {
	return &LogOp{input: x, output: output}
}

// Backward computes grad_x = outputGrad / x.
func (op *LogOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{backend.Div(outputGrad, op.input)}
}

// Inputs returns [x].
func (op *LogOp) Inputs() []*tensor.RawTensor { return []*tensor.RawTensor{op.input} }

// Output returns ln(x).
func (op *LogOp) Output() *tensor.RawTensor { return op.output }
