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
	allocators["transiso"] = func(ndim int, raw map[string]interface{}) (Model, error) {
		var p struct {
			Eta0     sym.Expr      `mapstructure:"eta_0"`
			Eta1     sym.Expr      `mapstructure:"eta_1"`
			Director tensor.Vector `mapstructure:"director"`
		}
		if err := decode("transiso", raw, &p); err != nil {
			return nil, err
		}
		return model(NewTransIso(ndim, TransIsoPrms(p)))
	}
}

// TransIsoPrms holds the parameters of the transverse-isotropic model
type TransIsoPrms struct {
	Eta0     sym.Expr      // η0: viscosity normal to the director; default = 1
	Eta1     sym.Expr      // η1: viscosity of the weak plane; default = 1
	Director tensor.Vector // n: normal of the weak plane; default = last axis
}

// TransIso implements a weak-plane anisotropic viscosity
//
//  λ_ijkl = η0 I_ijkl + (η1 - η0) [ ½(ni nk δjl + nj nk δil + ni nl δjk + nj nl δik) - 2 ni nj nk nl ]
//
//  Note: n must have unit length; this is not checked
type TransIso struct {
	core
	prms TransIsoPrms
}

// NewTransIso returns a new transverse-isotropic model
func NewTransIso(ndim int, prms TransIsoPrms) (o *TransIso, err error) {
	o = new(TransIso)
	if o.core, err = newCore(KindTransIso, ndim, ndim); err != nil {
		return nil, err
	}
	if prms.Eta0 == nil {
		prms.Eta0 = sym.N(1)
	}
	if prms.Eta1 == nil {
		prms.Eta1 = sym.N(1)
	}
	if prms.Director == nil {
		prms.Director = make(tensor.Vector, ndim)
		for i := 0; i < ndim; i++ {
			prms.Director[i] = sym.N(0)
		}
		prms.Director[ndim-1] = sym.N(1)
	}
	o.prms = prms
	if err = o.Rebuild(); err != nil {
		return nil, err
	}
	return
}

// Prms returns a copy of the parameters
func (o *TransIso) Prms() TransIsoPrms { return o.prms }

// SetEta0 sets η0
func (o *TransIso) SetEta0(η sym.Expr) error { return set(&o.prms.Eta0, η, o.Rebuild) }

// SetEta1 sets η1
func (o *TransIso) SetEta1(η sym.Expr) error { return set(&o.prms.Eta1, η, o.Rebuild) }

// SetDirector sets n; its length must equal ndim
func (o *TransIso) SetDirector(n tensor.Vector) error { return set(&o.prms.Director, n, o.Rebuild) }

// Rebuild computes λ by summation over all (i,j,k,l), then simplifies it through the Mandel form
func (o *TransIso) Rebuild() error {
	return o.update(func() (c tensor.Tensor, err error) {
		d, n := o.ndim, o.prms.Director
		if len(n) != d {
			return c, configErr("%v: director must have %d components; got %d", o.kind, d, len(n))
		}
		for i, e := range n {
			if e == nil {
				return c, configErr("%v: director component %d is nil", o.kind, i)
			}
		}
		if o.prms.Eta0 == nil || o.prms.Eta1 == nil {
			return c, configErr("%v: eta_0 and eta_1 must be given", o.kind)
		}
		δ := tensor.Identity2(d)
		I := tensor.Identity4(d)
		half, two := sym.N(0.5), sym.N(2)
		Δη := sym.Sub(o.prms.Eta1, o.prms.Eta0)
		λ := tensor.Zeros4(d)
		for i := 0; i < d; i++ {
			for j := 0; j < d; j++ {
				for k := 0; k < d; k++ {
					for l := 0; l < d; l++ {
						a := sym.Mul(half, sym.Add(
							sym.Mul(n[i], n[k], δ[j][l]),
							sym.Mul(n[j], n[k], δ[i][l]),
							sym.Mul(n[i], n[l], δ[j][k]),
							sym.Mul(n[j], n[l], δ[i][k]),
						))
						b := sym.Mul(two, n[i], n[j], n[k], n[l])
						λ[i][j][k][l] = sym.Add(sym.Mul(o.prms.Eta0, I[i][j][k][l]), sym.Mul(Δη, sym.Sub(a, b)))
					}
				}
			}
		}
		C, err := tensor.Rank4ToMandel(λ, d)
		if err != nil {
			return
		}
		c.R4, err = tensor.MandelToRank4(tensor.SimplifyMat(C), d)
		return
	})
}

// Summary returns a description of the parameters
func (o *TransIso) Summary() string {
	return io.Sf("%v (ndim=%d): eta_0 = %v, eta_1 = %v, director = %v",
		o.kind, o.ndim, o.prms.Eta0, o.prms.Eta1, o.prms.Director)
}
