package tensor

// Backend defines the capability interface every compute backend must
// implement. It is the complete operation vocabulary of the heatmap
// engine: every higher-level primitive (coordinate expectations, Gaussian
// synthesis, divergence losses) is composed exclusively of these
// operations, so a differentiation-aware backend can derive the backward
// pass of the whole pipeline by recording them.
//
// Implementations:
//   - cpu.CPUBackend: pure Go kernels (gonum-accelerated float64 paths)
//   - autodiff.AutodiffBackend: decorator adding gradient-tape recording
//
// All operations allocate fresh results; inputs are never mutated.
// Shape or dtype misuse panics with an "op: detail" message.
type Backend interface {
	// Element-wise binary operations with NumPy-style broadcasting.
	Add(a, b *RawTensor) *RawTensor
	Sub(a, b *RawTensor) *RawTensor
	Mul(a, b *RawTensor) *RawTensor
	Div(a, b *RawTensor) *RawTensor

	// Element-wise operations with a scalar.
	// The scalar is given in float64 and converted to the tensor's dtype.
	AddScalar(x *RawTensor, scalar float64) *RawTensor
	SubScalar(x *RawTensor, scalar float64) *RawTensor
	MulScalar(x *RawTensor, scalar float64) *RawTensor
	DivScalar(x *RawTensor, scalar float64) *RawTensor

	// Element-wise math.
	Exp(x *RawTensor) *RawTensor
	Log(x *RawTensor) *RawTensor
	Sqrt(x *RawTensor) *RawTensor

	// Softmax along a dimension, numerically stabilized by max-shifting.
	// dim supports negative indexing (-1 = last dimension).
	Softmax(x *RawTensor, dim int) *RawTensor

	// Reductions. SumDim supports negative dim indexing.
	Sum(x *RawTensor) *RawTensor
	SumDim(x *RawTensor, dim int, keepDim bool) *RawTensor

	// Shape manipulation.
	Reshape(x *RawTensor, newShape Shape) *RawTensor
	Unsqueeze(x *RawTensor, dim int) *RawTensor
	Squeeze(x *RawTensor, dim int) *RawTensor
	Cat(tensors []*RawTensor, dim int) *RawTensor
	Chunk(x *RawTensor, n, dim int) []*RawTensor

	// Metadata.
	Name() string
	Device() Device
}
