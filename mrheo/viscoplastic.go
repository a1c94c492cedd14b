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
	allocators["viscoplastic"] = func(ndim int, raw map[string]interface{}) (Model, error) {
		var p struct {
			BgViscosity    sym.Expr `mapstructure:"bg_viscosity"`
			YieldStress    sym.Expr `mapstructure:"yield_stress"`
			MinViscosity   sym.Expr `mapstructure:"min_viscosity"`
			MaxViscosity   sym.Expr `mapstructure:"max_viscosity"`
			YieldStressMin sym.Expr `mapstructure:"yield_stress_min"`
			EdotII         sym.Expr `mapstructure:"edot_II"`
			Epsilon        sym.Expr `mapstructure:"epsilon_edot_II"`
		}
		if err := decode("viscoplastic", raw, &p); err != nil {
			return nil, err
		}
		return model(NewViscoPlastic(ndim, ViscoPlasticPrms(p)))
	}
}

// ViscoPlasticPrms holds the parameters of the viscoplastic model. Nil fields take defaults.
type ViscoPlasticPrms struct {
	BgViscosity    sym.Expr // background viscosity; default = 1
	YieldStress    sym.Expr // yield stress; default = not yet defined
	MinViscosity   sym.Expr // lower bound of effective viscosity; default = 0.01
	MaxViscosity   sym.Expr // upper bound of effective viscosity; default = 100
	YieldStressMin sym.Expr // floor of the blended viscosity; default = 0.001
	EdotII         sym.Expr // second invariant of strain rate; default = not yet defined
	Epsilon        sym.Expr // regularisation of edot_II; default = 0
}

// defaults fills nil fields
func (o *ViscoPlasticPrms) defaults() {
	fill := func(p *sym.Expr, v sym.Expr) {
		if *p == nil {
			*p = v
		}
	}
	fill(&o.BgViscosity, sym.N(1))
	fill(&o.YieldStress, sym.Undefined("yield_stress"))
	fill(&o.MinViscosity, sym.N(0.01))
	fill(&o.MaxViscosity, sym.N(100))
	fill(&o.YieldStressMin, sym.N(0.001))
	fill(&o.EdotII, sym.Undefined("edot_II"))
	fill(&o.Epsilon, sym.N(0))
}

// ViscoPlastic implements c = 2 η_eff I with a yield-limited effective viscosity
//
//  η_y   = τ_y / (2 edot_II + ε)
//  η_eff = max(min(max(τ_min, 1/(1/η_bg + 1/η_y)), η_max), η_min)
//
//  η_eff = η_bg if either τ_y or edot_II is not yet defined
type ViscoPlastic struct {
	core
	prms ViscoPlasticPrms
}

// NewViscoPlastic returns a new viscoplastic model
func NewViscoPlastic(ndim int, prms ViscoPlasticPrms) (o *ViscoPlastic, err error) {
	o = new(ViscoPlastic)
	if o.core, err = newCore(KindViscoPlastic, ndim, ndim); err != nil {
		return nil, err
	}
	prms.defaults()
	o.prms = prms
	if err = o.Rebuild(); err != nil {
		return nil, err
	}
	return
}

// Prms returns a copy of the parameters
func (o *ViscoPlastic) Prms() ViscoPlasticPrms { return o.prms }

// EffectiveViscosity returns the yield-limited viscosity
func (o *ViscoPlastic) EffectiveViscosity() sym.Expr { return o.prms.Effective() }

// Effective returns the yield-limited viscosity corresponding to these parameters
func (o ViscoPlasticPrms) Effective() sym.Expr {
	o.defaults()
	if sym.IsUndefined(o.YieldStress) || sym.IsUndefined(o.EdotII) {
		return o.BgViscosity
	}
	ηy := sym.Div(o.YieldStress, sym.Add(sym.Mul(sym.N(2), o.EdotII), o.Epsilon))
	blend := sym.Div(sym.N(1), sym.Add(sym.Div(sym.N(1), o.BgViscosity), sym.Div(sym.N(1), ηy)))
	ηeff := sym.Max(o.YieldStressMin, blend)
	return sym.Max(sym.Min(ηeff, o.MaxViscosity), o.MinViscosity)
}

// Rebuild computes c = 2 η_eff I
func (o *ViscoPlastic) Rebuild() error {
	return o.update(func() (c tensor.Tensor, err error) {
		c.R4, err = ScalarViscosity(o.EffectiveViscosity()).tensor(o.ndim)
		return
	})
}

// SetPrms replaces all parameters with a single rebuild; nil fields take defaults
func (o *ViscoPlastic) SetPrms(prms ViscoPlasticPrms) error {
	prms.defaults()
	return set(&o.prms, prms, o.Rebuild)
}

// SetBgViscosity sets the background viscosity
func (o *ViscoPlastic) SetBgViscosity(v sym.Expr) error {
	return o.setField(&o.prms.BgViscosity, v)
}

// SetYieldStress sets the yield stress
func (o *ViscoPlastic) SetYieldStress(v sym.Expr) error {
	return o.setField(&o.prms.YieldStress, v)
}

// SetMinViscosity sets the lower bound of the effective viscosity
func (o *ViscoPlastic) SetMinViscosity(v sym.Expr) error {
	return o.setField(&o.prms.MinViscosity, v)
}

// SetMaxViscosity sets the upper bound of the effective viscosity
func (o *ViscoPlastic) SetMaxViscosity(v sym.Expr) error {
	return o.setField(&o.prms.MaxViscosity, v)
}

// SetYieldStressMin sets the floor of the blended viscosity
func (o *ViscoPlastic) SetYieldStressMin(v sym.Expr) error {
	return o.setField(&o.prms.YieldStressMin, v)
}

// SetEdotII sets the strain rate invariant (e.g. a field)
func (o *ViscoPlastic) SetEdotII(v sym.Expr) error {
	return o.setField(&o.prms.EdotII, v)
}

// SetEpsilon sets the regularisation constant
func (o *ViscoPlastic) SetEpsilon(v sym.Expr) error {
	return o.setField(&o.prms.Epsilon, v)
}

// setField stores v and rebuilds; nil is rejected
func (o *ViscoPlastic) setField(dst *sym.Expr, v sym.Expr) error {
	if v == nil {
		return configErr("%v: nil parameter; use sym.Undefined to clear it", o.kind)
	}
	return set(dst, v, o.Rebuild)
}

// Summary returns a description of the parameters
func (o *ViscoPlastic) Summary() string {
	p := o.prms
	l := io.Sf("%v (ndim=%d):\n", o.kind, o.ndim)
	l += io.Sf("  bg_viscosity     = %v\n", p.BgViscosity)
	l += io.Sf("  yield_stress     = %v\n", p.YieldStress)
	l += io.Sf("  min_viscosity    = %v\n", p.MinViscosity)
	l += io.Sf("  max_viscosity    = %v\n", p.MaxViscosity)
	l += io.Sf("  yield_stress_min = %v\n", p.YieldStressMin)
	l += io.Sf("  edot_II          = %v\n", p.EdotII)
	l += io.Sf("  epsilon_edot_II  = %v\n", p.Epsilon)
	l += io.Sf("  effective        = %v", o.EffectiveViscosity())
	return l
}
