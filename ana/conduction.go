// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import "github.com/cpmech/gosl/utl"

// Conduction implements steady conduction with a linear temperature field
//  T(x) = T0 + a · x   =>   q = κ a
type Conduction struct {
	Kappa float64   // diffusivity
	T0    float64   // temperature at the origin
	A     []float64 // temperature gradient
}

// Temperature returns T at x
func (o Conduction) Temperature(x []float64) (T float64) {
	T = o.T0
	for i, a := range o.A {
		T += a * x[i]
	}
	return
}

// Grad returns the gradient as a row [1][ndim]
func (o Conduction) Grad() [][]float64 {
	g := utl.Alloc(1, len(o.A))
	copy(g[0], o.A)
	return g
}

// Flux returns q_i = κ a_i
func (o Conduction) Flux() (q []float64) {
	q = make([]float64, len(o.A))
	for i, a := range o.A {
		q[i] = o.Kappa * a
	}
	return
}
