// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// ViscoPlastic implements the regularised (Bingham-like) effective viscosity
//
//  η_y   = τ_y / (2 ε̇ + ϵ)
//  η_eff = max(min(max(τ_min, 1/(1/η_bg + 1/η_y)), η_max), η_min)
type ViscoPlastic struct {
	BgEta   float64 // background viscosity
	Tauy    float64 // yield stress
	MinEta  float64 // minimum viscosity
	MaxEta  float64 // maximum viscosity
	TauyMin float64 // floor of the blended viscosity
	Eps     float64 // regularisation of strain rate
}

// Init initialises this structure
func (o *ViscoPlastic) Init(prms map[string]float64) (err error) {

	// default values
	o.BgEta = 1
	o.Tauy = 1
	o.MinEta = 0.01
	o.MaxEta = 100
	o.TauyMin = 0.001
	o.Eps = 0

	// parameters
	for key, val := range prms {
		switch key {
		case "bg_viscosity":
			o.BgEta = val
		case "yield_stress":
			o.Tauy = val
		case "min_viscosity":
			o.MinEta = val
		case "max_viscosity":
			o.MaxEta = val
		case "yield_stress_min":
			o.TauyMin = val
		case "epsilon_edot_II":
			o.Eps = val
		default:
			return chk.Err("viscoplastic: parameter %q is not available", key)
		}
	}
	if o.MinEta > o.MaxEta {
		return chk.Err("viscoplastic: min_viscosity=%g must not be greater than max_viscosity=%g", o.MinEta, o.MaxEta)
	}
	return
}

// Eta returns the effective viscosity at the strain rate invariant edot
func (o ViscoPlastic) Eta(edot float64) float64 {
	ηy := o.Tauy / (2*edot + o.Eps)
	η := math.Max(o.TauyMin, 1/(1/o.BgEta+1/ηy))
	return math.Max(math.Min(η, o.MaxEta), o.MinEta)
}

// Stress returns the shear stress τ = 2 η_eff ε̇ in simple shear with ε̇ = edot
func (o ViscoPlastic) Stress(edot float64) float64 {
	return 2 * o.Eta(edot) * edot
}

// YieldRate returns the strain rate at which the unclipped blend equals half the background viscosity
//  1/(1/η_bg + 2ε̇/τ_y) = η_bg/2  =>  ε̇ = τ_y / (2 η_bg)   (with ϵ = 0)
func (o ViscoPlastic) YieldRate() float64 {
	return o.Tauy / (2 * o.BgEta)
}
