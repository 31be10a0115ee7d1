package optim

import (
	"math"

	"github.com/locus-ml/locus/internal/tensor"
)

// RMSProp implements the RMSProp optimizer, which divides the learning
// rate by a running average of squared gradient magnitudes:
//
//	avg = alpha * avg + (1 - alpha) * grad²
//	param = param - lr * grad / (sqrt(avg) + eps)
//
// It adapts well to the flat loss surfaces produced by softmax heatmaps,
// where plain SGD needs careful learning rate tuning.
type RMSProp[T tensor.Float, B tensor.Backend] struct {
	params   []*tensor.Tensor[T, B]
	lr       float64
	alpha    float64
	eps      float64
	averages map[*tensor.RawTensor][]float64
	backend  B
}

// RMSPropConfig configures the RMSProp optimizer.
type RMSPropConfig struct {
	LR    float64 // learning rate, defaults to 0.01
	Alpha float64 // smoothing constant, defaults to 0.99
	Eps   float64 // denominator stabilizer, defaults to 1e-8
}

// NewRMSProp creates an RMSProp optimizer for the given parameters.
func NewRMSProp[T tensor.Float, B tensor.Backend](params []*tensor.Tensor[T, B], config RMSPropConfig, backend B) *RMSProp[T, B] {
	if config.LR == 0 {
		config.LR = 0.01
	}
	if config.Alpha == 0 {
		config.Alpha = 0.99
	}
	if config.Eps == 0 {
		config.Eps = 1e-8
	}
	return &RMSProp[T, B]{
		params:   params,
		lr:       config.LR,
		alpha:    config.Alpha,
		eps:      config.Eps,
		averages: make(map[*tensor.RawTensor][]float64),
		backend:  backend,
	}
}

// Step applies one RMSProp update to every parameter that has a gradient
// in the map.
func (r *RMSProp[T, B]) Step(grads map[*tensor.RawTensor]*tensor.RawTensor) {
	for _, param := range r.params {
		grad, ok := grads[param.Raw()]
		if !ok {
			continue
		}

		pd := param.Data()
		gd := tensor.New[T](grad, r.backend).Data()

		avg, ok := r.averages[param.Raw()]
		if !ok {
			avg = make([]float64, len(pd))
			r.averages[param.Raw()] = avg
		}

		for i := range pd {
			g := float64(gd[i])
			avg[i] = r.alpha*avg[i] + (1-r.alpha)*g*g
			pd[i] -= T(r.lr * g / (math.Sqrt(avg[i]) + r.eps))
		}
	}
}
