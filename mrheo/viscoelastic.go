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
	allocators["viscoelastic"] = func(ndim int, raw map[string]interface{}) (Model, error) {
		var p struct {
			rawViscosity `mapstructure:",squash"`
			ShearModulus sym.Expr `mapstructure:"shear_modulus"`
			DeltaTe      sym.Expr `mapstructure:"delta_t_e"`
		}
		if err := decode("viscoelastic", raw, &p); err != nil {
			return nil, err
		}
		η, err := p.get()
		if err != nil {
			return nil, err
		}
		return model(NewViscoElastic(ndim, ViscoElasticPrms{Viscosity: η, ShearModulus: p.ShearModulus, DeltaTe: p.DeltaTe}))
	}
}

// ViscoElasticPrms holds the parameters of the viscoelastic (Maxwell) model
type ViscoElasticPrms struct {
	Viscosity    Viscosity // default = scalar 1
	ShearModulus sym.Expr  // μ; default = 1
	DeltaTe      sym.Expr  // elastic relaxation time increment; default = not yet defined
}

// ViscoElastic implements c = 2 η I. The history terms in State are not used;
// thus Flux returns the purely viscous response.
type ViscoElastic struct {
	core
	prms ViscoElasticPrms
}

// NewViscoElastic returns a new viscoelastic model
func NewViscoElastic(ndim int, prms ViscoElasticPrms) (o *ViscoElastic, err error) {
	o = new(ViscoElastic)
	if o.core, err = newCore(KindViscoElastic, ndim, ndim); err != nil {
		return nil, err
	}
	if prms.Viscosity.Form == 0 {
		prms.Viscosity = ScalarViscosity(sym.N(1))
	}
	if prms.ShearModulus == nil {
		prms.ShearModulus = sym.N(1)
	}
	if prms.DeltaTe == nil {
		prms.DeltaTe = sym.Undefined("delta_t_e")
	}
	o.prms = prms
	if err = o.Rebuild(); err != nil {
		return nil, err
	}
	return
}

// Prms returns a copy of the parameters
func (o *ViscoElastic) Prms() ViscoElasticPrms { return o.prms }

// SetViscosity sets the viscosity
func (o *ViscoElastic) SetViscosity(η Viscosity) error { return set(&o.prms.Viscosity, η, o.Rebuild) }

// SetShearModulus sets μ
func (o *ViscoElastic) SetShearModulus(μ sym.Expr) error {
	return set(&o.prms.ShearModulus, μ, o.Rebuild)
}

// SetDeltaTe sets the elastic relaxation time increment
func (o *ViscoElastic) SetDeltaTe(dt sym.Expr) error { return set(&o.prms.DeltaTe, dt, o.Rebuild) }

// MaxwellTime returns η/μ for scalar viscosities
func (o *ViscoElastic) MaxwellTime() (sym.Expr, error) {
	if o.prms.Viscosity.Form != ScalarForm {
		return nil, configErr("%v: Maxwell time requires a scalar viscosity", o.kind)
	}
	return sym.Div(o.prms.Viscosity.Scalar, o.prms.ShearModulus), nil
}

// Rebuild computes c = 2 η
func (o *ViscoElastic) Rebuild() error {
	return o.update(func() (c tensor.Tensor, err error) {
		if o.prms.ShearModulus == nil || o.prms.DeltaTe == nil {
			return c, configErr("%v: shear modulus and delta_t_e must be given", o.kind)
		}
		c.R4, err = o.prms.Viscosity.tensor(o.ndim)
		return
	})
}

// Flux returns the viscous flux; s is accepted but its history terms are ignored
func (o *ViscoElastic) Flux(ddu tensor.Matrix, s *State) (tensor.Matrix, error) {
	if Verbose && !s.Empty() {
		io.Pfyel("%v: history terms are ignored\n", o.kind)
	}
	return o.core.Flux(ddu, s)
}

// Summary returns a description of the parameters
func (o *ViscoElastic) Summary() string {
	return io.Sf("%v (ndim=%d): viscosity = %v, shear_modulus = %v, delta_t_e = %v",
		o.kind, o.ndim, o.prms.Viscosity, o.prms.ShearModulus, o.prms.DeltaTe)
}
