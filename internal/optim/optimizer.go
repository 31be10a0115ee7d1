// Package optim provides gradient-based optimizers for parameter
// tensors.
//
// Optimizers consume the gradient map produced by the autodiff tape and
// update parameter values in place, so a training loop looks like:
//
//	opt := optim.NewSGD(params, optim.SGDConfig{LR: 0.01}, backend)
//	for i := 0; i < steps; i++ {
//	    backend.Tape().Clear()
//	    loss := forward(params)
//	    grads := autodiff.Backward(loss, backend)
//	    opt.Step(grads)
//	}
package optim

import "github.com/locus-ml/locus/internal/tensor"

// Optimizer updates parameters from a gradient map.
type Optimizer interface {
	// Step applies one update. Parameters without a gradient in the map
	// are skipped.
	Step(grads map[*tensor.RawTensor]*tensor.RawTensor)
}
