// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions
package ana

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// SimpleShear implements the steady simple shear flow of a Newtonian fluid between two plates
//
//      → → → → →  u0 = γ̇ H
//     ───────────
//      ↗ ↗ ↗ ↗       u0(x1) = γ̇ x1
//     ───────────
//                  u0 = 0
//
//  with g_kl = ∂u_k/∂x_l:  g_01 = γ̇;  τ_01 = τ_10 = η γ̇
type SimpleShear struct {
	Ndim int     // space dimension
	Eta  float64 // viscosity
	Gdot float64 // shear rate γ̇
	H    float64 // distance between plates
}

// Init initialises this structure
func (o *SimpleShear) Init(prms map[string]float64) (err error) {

	// default values
	o.Ndim = 2
	o.Eta = 1
	o.Gdot = 1
	o.H = 1

	// parameters
	for key, val := range prms {
		switch key {
		case "ndim":
			o.Ndim = int(val)
		case "eta":
			o.Eta = val
		case "gdot":
			o.Gdot = val
		case "H":
			o.H = val
		default:
			return chk.Err("simple shear: parameter %q is not available", key)
		}
	}
	if o.Ndim != 2 && o.Ndim != 3 {
		return chk.Err("simple shear: ndim must be 2 or 3; got %d", o.Ndim)
	}
	return
}

// Velocity returns u0 at x1
func (o SimpleShear) Velocity(x1 float64) float64 {
	return o.Gdot * x1
}

// VelGrad returns the velocity gradient g_kl = ∂u_k/∂x_l
func (o SimpleShear) VelGrad() (g [][]float64) {
	g = utl.Alloc(o.Ndim, o.Ndim)
	g[0][1] = o.Gdot
	return
}

// Stress returns the deviatoric stress τ_ij
func (o SimpleShear) Stress() (τ [][]float64) {
	τ = utl.Alloc(o.Ndim, o.Ndim)
	τ[0][1] = o.Eta * o.Gdot
	τ[1][0] = o.Eta * o.Gdot
	return
}

// StrainRateII returns the second invariant of the strain rate: sqrt(½ ε:ε) = γ̇/2
func (o SimpleShear) StrainRateII() float64 {
	return o.Gdot / 2
}

// WallForce returns the shear force per unit area transmitted to the top plate
func (o SimpleShear) WallForce() float64 {
	return o.Eta * o.Gdot
}
