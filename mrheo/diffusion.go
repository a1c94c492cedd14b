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
	allocators["diffusion"] = func(ndim int, raw map[string]interface{}) (Model, error) {
		var p struct {
			Diffusivity sym.Expr `mapstructure:"diffusivity"`
		}
		if err := decode("diffusion", raw, &p); err != nil {
			return nil, err
		}
		return model(NewDiffusion(ndim, DiffusionPrms(p)))
	}
}

// DiffusionPrms holds the parameters of the diffusion model
type DiffusionPrms struct {
	Diffusivity sym.Expr // κ; default = 1
}

// Diffusion implements k = κ δij for scalar problems
type Diffusion struct {
	core
	prms DiffusionPrms
}

// NewDiffusion returns a new diffusion model
func NewDiffusion(ndim int, prms DiffusionPrms) (o *Diffusion, err error) {
	o = new(Diffusion)
	if o.core, err = newCore(KindDiffusion, ndim, 1); err != nil {
		return nil, err
	}
	if prms.Diffusivity == nil {
		prms.Diffusivity = sym.N(1)
	}
	o.prms = prms
	if err = o.Rebuild(); err != nil {
		return nil, err
	}
	return
}

// Prms returns a copy of the parameters
func (o *Diffusion) Prms() DiffusionPrms { return o.prms }

// SetDiffusivity sets κ
func (o *Diffusion) SetDiffusivity(κ sym.Expr) error { return set(&o.prms.Diffusivity, κ, o.Rebuild) }

// Rebuild computes k = κ I
func (o *Diffusion) Rebuild() error {
	return o.update(func() (c tensor.Tensor, err error) {
		if o.prms.Diffusivity == nil {
			return c, configErr("%v: diffusivity must be given", o.kind)
		}
		c.R2 = tensor.SimplifyMat(tensor.Scale(o.prms.Diffusivity, tensor.Identity2(o.ndim)))
		return
	})
}

// Summary returns a description of the parameters
func (o *Diffusion) Summary() string {
	return io.Sf("%v (ndim=%d): diffusivity = %v", o.kind, o.ndim, o.prms.Diffusivity)
}
