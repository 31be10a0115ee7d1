// Package ops defines the differentiable operations recorded on the
// gradient tape.
//
// Each operation captures its input and output RawTensors during the
// forward pass and knows how to turn an output gradient into input
// gradients during the backward pass. Broadcasting in the forward pass is
// undone by summing gradients back down to the input shapes.
package ops

import "github.com/locus-ml/locus/internal/tensor"

// Operation is a single differentiable step in the computation graph.
type Operation interface {
	// Backward computes gradients for the inputs given the output gradient.
	// The returned slice is parallel to Inputs().
	Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor

	// Inputs returns the input tensors of this operation.
	Inputs() []*tensor.RawTensor

	// Output returns the output tensor of this operation.
	Output() *tensor.RawTensor
}

// MultiOutputOperation is an operation producing several outputs, such as
// Chunk. The tape collects gradients for all outputs before calling
// BackwardMulti; outputs that received no gradient are filled with zeros.
type MultiOutputOperation interface {
	Operation

	// Outputs returns all output tensors of this operation.
	Outputs() []*tensor.RawTensor

	// BackwardMulti computes input gradients given gradients for all
	// outputs. Used by the tape instead of Backward.
	BackwardMulti(outputGrads []*tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor
}
