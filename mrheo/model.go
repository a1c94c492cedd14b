// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mrheo implements constitutive (rheological) models relating gradients of the
// unknowns to fluxes
//
//  scalar problems (udim == 1):   q_i  = k_ij  ∂T/∂x_j          => rank-2 tensor
//  vector problems (udim == ndim): τ_ij = c_ijkl ∂u_k/∂x_l       => rank-4 tensor
//
//  The rank-4 tensors have minor symmetries; thus c (canonical) and C (Mandel) are
//  interchangeable. C is always computed from c.
package mrheo

import (
	"errors"
	"fmt"

	"github.com/cpmech/gorheo/tensor"
)

// ErrConfig is returned when a parameter has a shape or type the model cannot interpret
var ErrConfig = errors.New("rheo: invalid configuration")

// Verbose activates messages on rebuild and binding
var Verbose = false

// configErr returns an error wrapping ErrConfig
func configErr(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrConfig, fmt.Sprintf(format, args...))
}

// Kind identifies the model variant
type Kind int

// model kinds
const (
	KindConstitutive Kind = iota // k * identity
	KindViscous                  // 2 η I
	KindViscoPlastic             // 2 η_eff I with yield-limited η_eff
	KindViscoElastic             // 2 η I; history terms are ignored
	KindDiffusion                // κ δij (scalar problems)
	KindTransIso                 // transverse-isotropic weak plane
)

// String returns the name of the kind as used by New
func (o Kind) String() string {
	switch o {
	case KindConstitutive:
		return "constitutive"
	case KindViscous:
		return "viscous"
	case KindViscoPlastic:
		return "viscoplastic"
	case KindViscoElastic:
		return "viscoelastic"
	case KindDiffusion:
		return "diffusion"
	case KindTransIso:
		return "transiso"
	}
	return fmt.Sprintf("kind(%d)", int(o))
}

// Solver defines the solver context consumed by models. MarkStale flags that the
// solver must be set up (assembled) again. Models never clear this flag.
type Solver interface {
	MarkStale()
}

// Model defines constitutive models
type Model interface {
	Kind() Kind                                               // Kind returns the model variant
	Ndim() int                                                // Ndim returns the space dimension
	Udim() int                                                // Udim returns the dimension of the unknowns: 1 or ndim
	Rebuild() error                                           // Rebuild recomputes c from the parameters and marks the bound solver as stale
	Tensor() tensor.Tensor                                    // Tensor returns (a copy of) the canonical tensor c
	Mandel() (tensor.Matrix, error)                           // Mandel returns C, the compressed (Mandel) form of c
	Flux(ddu tensor.Matrix, s *State) (tensor.Matrix, error) // Flux computes the flux for the given gradient ddu
	BindSolver(s Solver)                                      // BindSolver associates this model with a solver; nil unbinds
	Solver() Solver                                           // Solver returns the bound solver, if any
	Rebuilds() int                                            // Rebuilds returns the number of times c was built
	Summary() string                                          // Summary returns a description of the parameters
}
