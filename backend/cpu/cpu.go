// Copyright 2026 Locus ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides the host CPU compute backend.
package cpu

import (
	internalcpu "github.com/locus-ml/locus/internal/backend/cpu"
	"github.com/locus-ml/locus/tensor"
)

// Backend is the CPU backend implementation. Kernels are pure Go, with
// gonum fast paths for contiguous float64 data and chunked parallelism
// over large tensors.
type Backend = internalcpu.CPUBackend

// Compile-time check that Backend implements tensor.Backend.
var _ tensor.Backend = (*Backend)(nil)

// New creates a CPU backend.
//
//	backend := cpu.New()
//	x := tensor.Zeros[float64](tensor.Shape{2, 3}, backend)
func New() *Backend {
	return internalcpu.New()
}
