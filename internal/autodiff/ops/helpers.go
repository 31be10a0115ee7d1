package ops

import (
	"fmt"

	"github.com/locus-ml/locus/internal/tensor"
)

// reduceBroadcast sums a gradient down to the target shape, undoing
// NumPy-style broadcasting from the forward pass.
//
// Broadcasting aligns shapes from the right, so leading extra dimensions
// are summed away first, then any dimension where the target is 1 but the
// gradient is larger.
func reduceBroadcast(grad *tensor.RawTensor, targetShape tensor.Shape, backend tensor.Backend) *tensor.RawTensor {
	if grad.Shape().Equal(targetShape) {
		return grad
	}

	result := grad
	for len(result.Shape()) > len(targetShape) {
		result = backend.SumDim(result, 0, false)
	}

	shape := result.Shape()
	for i := 0; i < len(targetShape); i++ {
		if targetShape[i] == 1 && shape[i] > 1 {
			result = backend.SumDim(result, i, true)
			shape = result.Shape()
		}
	}

	if !result.Shape().Equal(targetShape) {
		result = backend.Reshape(result, targetShape)
	}
	return result
}

// expandTo broadcasts a gradient up to the target shape by adding it to a
// zero tensor of that shape. The backend's broadcasting rules do the work.
func expandTo(grad *tensor.RawTensor, targetShape tensor.Shape, backend tensor.Backend) *tensor.RawTensor {
	if grad.Shape().Equal(targetShape) {
		return grad
	}
	zeros, err := tensor.NewRaw(targetShape, grad.DType(), backend.Device())
	if err != nil {
		panic(fmt.Sprintf("expandTo: %v", err))
	}
	return backend.Add(zeros, grad)
}

// negate returns -grad.
func negate(grad *tensor.RawTensor, backend tensor.Backend) *tensor.RawTensor {
	return backend.MulScalar(grad, -1)
}
