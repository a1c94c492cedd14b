// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mrheo

import (
	"reflect"

	"github.com/cpmech/gorheo/tensor"
	"github.com/cpmech/gosl/io"
)

// core holds the data shared by all models
type core struct {
	kind   Kind          // variant
	ndim   int           // space dimension
	udim   int           // dimension of unknowns
	c      tensor.Tensor // canonical tensor
	solver Solver        // bound solver; not owned
	nbuild int           // number of builds
}

// newCore initialises the shared data with the identity tensor
func newCore(kind Kind, ndim, udim int) (o core, err error) {
	if ndim != 2 && ndim != 3 {
		return o, configErr("%v: space dimension must be 2 or 3; got %d", kind, ndim)
	}
	if udim != 1 && udim != ndim {
		return o, configErr("%v: dimension of unknowns must be 1 or %d; got %d", kind, ndim, udim)
	}
	o.kind, o.ndim, o.udim = kind, ndim, udim
	if udim == 1 {
		o.c.R2 = tensor.Identity2(ndim)
	} else {
		o.c.R4 = tensor.Identity4(ndim)
	}
	return
}

// Kind returns the model variant
func (o *core) Kind() Kind { return o.kind }

// Ndim returns the space dimension
func (o *core) Ndim() int { return o.ndim }

// Udim returns the dimension of the unknowns
func (o *core) Udim() int { return o.udim }

// Rebuilds returns the number of times the tensor was built
func (o *core) Rebuilds() int { return o.nbuild }

// Tensor returns a copy of the canonical tensor c
func (o *core) Tensor() tensor.Tensor { return o.c.Clone() }

// Mandel returns the compressed form C; for scalar problems C == c
func (o *core) Mandel() (tensor.Matrix, error) {
	if o.c.Rank() == 2 {
		return tensor.CloneMat(o.c.R2), nil
	}
	return tensor.Rank4ToMandel(o.c.R4, o.ndim)
}

// Flux computes the flux for the given gradient
//  rank 2: flux = c · dduᵀ        with ddu [1][ndim]
//  rank 4: flux_ij = c_ijkl ddu_kl with ddu [ndim][ndim]
//  Note: the history terms in s are not used
func (o *core) Flux(ddu tensor.Matrix, s *State) (tensor.Matrix, error) {
	if o.c.Rank() == 2 {
		return tensor.MatMulT(o.c.R2, ddu)
	}
	return tensor.Contract42(o.c.R4, ddu)
}

// BindSolver records s and marks it as stale; any previous solver is forgotten
//  Note: a nil s, including a typed nil pointer, unbinds the model
func (o *core) BindSolver(s Solver) {
	if isNil(s) {
		o.solver = nil
		return
	}
	o.solver = s
	if Verbose {
		io.Pfgrey("%v: bound to solver %v\n", o.kind, s)
	}
	s.MarkStale()
}

// Solver returns the bound solver
func (o *core) Solver() Solver { return o.solver }

// update replaces c by the result of build and marks the bound solver as stale
func (o *core) update(build func() (tensor.Tensor, error)) error {
	c, err := build()
	if err != nil {
		return err
	}
	o.c = c
	o.nbuild++
	if Verbose {
		io.Pfgrey("%v: tensor rebuilt (%d)\n", o.kind, o.nbuild)
	}
	if o.solver != nil {
		o.solver.MarkStale()
	}
	return nil
}

// set stores v in dst and rebuilds; dst is restored if the rebuild fails
func set[T any](dst *T, v T, rebuild func() error) error {
	old := *dst
	*dst = v
	if err := rebuild(); err != nil {
		*dst = old
		return err
	}
	return nil
}

// isNil tells whether s is nil or holds a nil pointer
func isNil(s Solver) bool {
	if s == nil {
		return true
	}
	v := reflect.ValueOf(s)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}
