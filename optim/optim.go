// Copyright 2026 Locus ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides gradient-based optimizers.
package optim

import (
	"github.com/locus-ml/locus/internal/optim"
	"github.com/locus-ml/locus/tensor"
)

// Optimizer updates parameters from a gradient map.
type Optimizer = optim.Optimizer

// SGD is the stochastic gradient descent optimizer with optional
// momentum.
type SGD[T tensor.Float, B tensor.Backend] = optim.SGD[T, B]

// SGDConfig configures the SGD optimizer.
type SGDConfig = optim.SGDConfig

// NewSGD creates an SGD optimizer for the given parameters.
//
//	opt := optim.NewSGD(params, optim.SGDConfig{LR: 0.01, Momentum: 0.9}, backend)
func NewSGD[T tensor.Float, B tensor.Backend](params []*tensor.Tensor[T, B], config SGDConfig, backend B) *SGD[T, B] {
	return optim.NewSGD(params, config, backend)
}

// RMSProp divides the learning rate by a running average of squared
// gradient magnitudes.
type RMSProp[T tensor.Float, B tensor.Backend] = optim.RMSProp[T, B]

// RMSPropConfig configures the RMSProp optimizer.
type RMSPropConfig = optim.RMSPropConfig

// NewRMSProp creates an RMSProp optimizer for the given parameters.
func NewRMSProp[T tensor.Float, B tensor.Backend](params []*tensor.Tensor[T, B], config RMSPropConfig, backend B) *RMSProp[T, B] {
	return optim.NewRMSProp(params, config, backend)
}
