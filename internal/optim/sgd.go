package optim

import "github.com/locus-ml/locus/internal/tensor"

// SGD implements stochastic gradient descent with optional momentum.
//
// Without momentum:
//
//	param = param - lr * grad
//
// With momentum:
//
//	velocity = momentum * velocity + grad
//	param = param - lr * velocity
type SGD[T tensor.Float, B tensor.Backend] struct {
	params     []*tensor.Tensor[T, B]
	lr         float64
	momentum   float64
	velocities map[*tensor.RawTensor][]T
	backend    B
}

// SGDConfig configures the SGD optimizer.
type SGDConfig struct {
	LR       float64 // learning rate, defaults to 0.01
	Momentum float64 // momentum factor in [0, 1), defaults to 0
}

// NewSGD creates an SGD optimizer for the given parameters.
func NewSGD[T tensor.Float, B tensor.Backend](params []*tensor.Tensor[T, B], config SGDConfig, backend B) *SGD[T, B] {
	if config.LR == 0 {
		config.LR = 0.01
	}
	return &SGD[T, B]{
		params:     params,
		lr:         config.LR,
		momentum:   config.Momentum,
		velocities: make(map[*tensor.RawTensor][]T),
		backend:    backend,
	}
}

// Step applies one gradient descent update to every parameter that has a
// gradient in the map.
func (s *SGD[T, B]) Step(grads map[*tensor.RawTensor]*tensor.RawTensor) {
	for _, param := range s.params {
		grad, ok := grads[param.Raw()]
		if !ok {
			continue
		}

		pd := param.Data()
		gd := tensor.New[T](grad, s.backend).Data()

		if s.momentum == 0 {
			for i := range pd {
				pd[i] -= T(s.lr) * gd[i]
			}
			continue
		}

		v, ok := s.velocities[param.Raw()]
		if !ok {
			v = make([]T, len(pd))
			s.velocities[param.Raw()] = v
		}
		for i := range pd {
			v[i] = T(s.momentum)*v[i] + gd[i]
			pd[i] -= T(s.lr) * v[i]
		}
	}
}
