// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mrheo

import (
	"github.com/cpmech/gorheo/sym"
	"github.com/cpmech/gorheo/tensor"
	"github.com/cpmech/gosl/io"
)

func init() {
	allocators["constitutive"] = func(ndim int, raw map[string]interface{}) (Model, error) {
		var p struct {
			K    sym.Expr `mapstructure:"k"`
			Udim int      `mapstructure:"udim"`
		}
		if err := decode("constitutive", raw, &p); err != nil {
			return nil, err
		}
		if p.Udim == 0 {
			p.Udim = ndim
		}
		return model(NewConstitutive(ndim, p.Udim, ConstitutivePrms{K: p.K}))
	}
}

// ConstitutivePrms holds the parameters of the default (identity) model
type ConstitutivePrms struct {
	K sym.Expr // multiplier of identity; default = 1
}

// Constitutive implements c = k I (rank 2 when udim == 1; rank 4 otherwise)
type Constitutive struct {
	core
	prms ConstitutivePrms
}

// NewConstitutive returns a new default model
func NewConstitutive(ndim, udim int, prms ConstitutivePrms) (o *Constitutive, err error) {
	o = new(Constitutive)
	if o.core, err = newCore(KindConstitutive, ndim, udim); err != nil {
		return nil, err
	}
	if prms.K == nil {
		prms.K = sym.N(1)
	}
	o.prms = prms
	if err = o.Rebuild(); err != nil {
		return nil, err
	}
	return
}

// Prms returns a copy of the parameters
func (o *Constitutive) Prms() ConstitutivePrms { return o.prms }

// SetK sets the identity multiplier
func (o *Constitutive) SetK(k sym.Expr) error { return set(&o.prms.K, k, o.Rebuild) }

// Rebuild computes c = k I
func (o *Constitutive) Rebuild() error {
	return o.update(func() (c tensor.Tensor, err error) {
		if o.prms.K == nil {
			return c, configErr("constitutive: k must be given")
		}
		if o.udim == 1 {
			c.R2 = tensor.SimplifyMat(tensor.Scale(o.prms.K, tensor.Identity2(o.ndim)))
			return
		}
		c.R4 = tensor.Simplify4(tensor.Scale4(o.prms.K, tensor.Identity4(o.ndim)))
		return
	})
}

// Summary returns a description of the parameters
func (o *Constitutive) Summary() string {
	return io.Sf("%v (ndim=%d, udim=%d): k = %v", o.kind, o.ndim, o.udim, o.prms.K)
}
