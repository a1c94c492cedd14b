// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mrheo

import (
	"fmt"

	"github.com/cpmech/gorheo/sym"
	"github.com/cpmech/gorheo/tensor"
	"github.com/cpmech/gosl/io"
)

func init() {
	allocators["viscous"] = func(ndim int, raw map[string]interface{}) (Model, error) {
		var p rawViscosity
		if err := decode("viscous", raw, &p); err != nil {
			return nil, err
		}
		η, err := p.get()
		if err != nil {
			return nil, err
		}
		return model(NewViscous(ndim, ViscousPrms{Viscosity: η}))
	}
}

// ViscosityForm tells how a viscosity was supplied
type ViscosityForm int

// viscosity forms
const (
	ScalarForm ViscosityForm = iota + 1 // η; c = 2 η I
	MandelForm                          // C [nmandel][nmandel]; c = 2 expand(C)
	FullForm                            // c [ndim][ndim][ndim][ndim]; c = 2 c
)

// Viscosity holds one of the three forms; the caller states which one
type Viscosity struct {
	Form   ViscosityForm
	Scalar sym.Expr
	Mandel tensor.Matrix
	Full   tensor.Rank4
}

// ScalarViscosity returns an isotropic viscosity
func ScalarViscosity(η sym.Expr) Viscosity { return Viscosity{Form: ScalarForm, Scalar: η} }

// MandelViscosity returns a viscosity given in Mandel (compressed) form
func MandelViscosity(m tensor.Matrix) Viscosity { return Viscosity{Form: MandelForm, Mandel: m} }

// FullViscosity returns a viscosity given as a rank-4 tensor
func FullViscosity(t tensor.Rank4) Viscosity { return Viscosity{Form: FullForm, Full: t} }

// String returns a description of the viscosity
func (o Viscosity) String() string {
	switch o.Form {
	case ScalarForm:
		return fmt.Sprint(o.Scalar)
	case MandelForm:
		return "mandel" + o.Mandel.String()
	case FullForm:
		return fmt.Sprintf("full rank-4 [%d]^4", len(o.Full))
	}
	return "unset"
}

// tensor computes 2 η for the given dimension
func (o Viscosity) tensor(ndim int) (tensor.Rank4, error) {
	two := sym.N(2)
	switch o.Form {
	case ScalarForm:
		if o.Scalar == nil {
			return nil, configErr("scalar viscosity is nil")
		}
		return tensor.Simplify4(tensor.Scale4(sym.Mul(two, o.Scalar), tensor.Identity4(ndim))), nil
	case MandelForm:
		for i, row := range o.Mandel {
			for j, e := range row {
				if e == nil {
					return nil, configErr("Mandel viscosity: entry (%d,%d) is nil", i, j)
				}
			}
		}
		t, err := tensor.MandelToRank4(o.Mandel, ndim)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrConfig, err)
		}
		return tensor.Simplify4(tensor.Scale4(two, t)), nil
	case FullForm:
		if err := tensor.Check4(o.Full, ndim, "viscosity"); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrConfig, err)
		}
		for i := range o.Full {
			for j := range o.Full[i] {
				for k := range o.Full[i][j] {
					for l, e := range o.Full[i][j][k] {
						if e == nil {
							return nil, configErr("full viscosity: entry (%d,%d,%d,%d) is nil", i, j, k, l)
						}
					}
				}
			}
		}
		return tensor.Simplify4(tensor.Scale4(two, o.Full)), nil
	}
	return nil, configErr("viscosity form %d is not available", int(o.Form))
}

// ViscousPrms holds the parameters of the viscous model
type ViscousPrms struct {
	Viscosity Viscosity // default = scalar 1
}

// Viscous implements c = 2 η I (or anisotropic forms)
type Viscous struct {
	core
	prms ViscousPrms
}

// NewViscous returns a new viscous model
func NewViscous(ndim int, prms ViscousPrms) (o *Viscous, err error) {
	o = new(Viscous)
	if o.core, err = newCore(KindViscous, ndim, ndim); err != nil {
		return nil, err
	}
	if prms.Viscosity.Form == 0 {
		prms.Viscosity = ScalarViscosity(sym.N(1))
	}
	o.prms = prms
	if err = o.Rebuild(); err != nil {
		return nil, err
	}
	return
}

// Prms returns a copy of the parameters
func (o *Viscous) Prms() ViscousPrms { return o.prms }

// SetViscosity sets the viscosity
func (o *Viscous) SetViscosity(η Viscosity) error { return set(&o.prms.Viscosity, η, o.Rebuild) }

// Rebuild computes c = 2 η
func (o *Viscous) Rebuild() error {
	return o.update(func() (c tensor.Tensor, err error) {
		c.R4, err = o.prms.Viscosity.tensor(o.ndim)
		return
	})
}

// Summary returns a description of the parameters
func (o *Viscous) Summary() string {
	return io.Sf("%v (ndim=%d): viscosity = %v", o.kind, o.ndim, o.prms.Viscosity)
}
