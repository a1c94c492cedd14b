// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fem implements the solver context consuming constitutive models:
// it assembles fluxes and their derivatives with respect to the gradient
package fem

import (
	"github.com/cpmech/gorheo/mrheo"
	"github.com/cpmech/gorheo/sym"
	"github.com/cpmech/gorheo/tensor"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/mat"
)

// Solver holds the assembled flux of one model
//  The gradient is represented by free symbols:
//   vector problems: du{k}_dx{l} => g_kl = ∂u_k/∂x_l
//   scalar problems: du_dx{l}    => g_0l = ∂u/∂x_l
type Solver struct {

	// input
	Name    string      // name of solver; e.g. material name
	Model   mrheo.Model // constitutive model
	Verbose bool        // show messages

	// summary
	Sum *Summary // summary of assemblies and residuals

	// assembled data
	stale bool          // setup required
	names [][]string    // [nrow][ncol] names of gradient components
	grad  tensor.Matrix // symbolic gradient
	flux  tensor.Matrix // symbolic flux
	dfdg  tensor.Matrix // [nflux][ngrad] derivatives of flux w.r.t gradient
}

// NewSolver returns a new solver bound to mdl
func NewSolver(name string, mdl mrheo.Model) (o *Solver, err error) {
	if mdl == nil {
		return nil, chk.Err("solver %q: model must not be nil", name)
	}
	o = &Solver{Name: name, Model: mdl, Sum: &Summary{Name: name, Model: mdl.Kind().String()}}
	mdl.BindSolver(o)
	return
}

// MarkStale flags that Setup must be called again
func (o *Solver) MarkStale() { o.stale = true }

// IsStale tells whether Setup must be called again
func (o *Solver) IsStale() bool { return o.stale }

// String returns the name of this solver
func (o *Solver) String() string { return o.Name }

// GradNames returns the names of the gradient components
func (o *Solver) GradNames() [][]string {
	if o.names == nil {
		o.names = gradNames(o.Model.Ndim(), o.Model.Udim())
	}
	return o.names
}

// Setup assembles the symbolic flux and its derivatives; it clears the stale flag
func (o *Solver) Setup() (err error) {
	names := o.GradNames()
	o.grad = make(tensor.Matrix, len(names))
	for i, row := range names {
		o.grad[i] = make([]sym.Expr, len(row))
		for j, name := range row {
			o.grad[i][j] = sym.S(name)
		}
	}
	o.flux, err = o.Model.Flux(o.grad, nil)
	if err != nil {
		return chk.Err("solver %q: cannot compute flux:\n%v", o.Name, err)
	}
	o.dfdg = make(tensor.Matrix, 0, len(o.flux)*len(o.flux[0]))
	for _, row := range o.flux {
		for _, f := range row {
			drow := make([]sym.Expr, 0, len(names)*len(names[0]))
			for _, gnames := range names {
				for _, name := range gnames {
					drow = append(drow, sym.Diff(f, name))
				}
			}
			o.dfdg = append(o.dfdg, drow)
		}
	}
	o.stale = false
	o.Sum.Nsetup++
	if o.Verbose {
		io.Pfgrey("solver %q: setup # %d\n", o.Name, o.Sum.Nsetup)
	}
	return
}

// Flux returns the symbolic flux; Setup is called if stale
func (o *Solver) Flux() (tensor.Matrix, error) {
	if err := o.setupIfStale(); err != nil {
		return nil, err
	}
	return tensor.CloneMat(o.flux), nil
}

// Residual evaluates the flux at the given gradient; Setup is called if stale
func (o *Solver) Residual(grad [][]float64, env sym.Env) (res *mat.Dense, err error) {
	if err = o.setupIfStale(); err != nil {
		return
	}
	if res, err = o.eval(grad, env); err != nil {
		return
	}
	o.Sum.Resids = append(o.Sum.Resids, mat.Norm(res, 2))
	return
}

// Jacobian evaluates ∂flux/∂grad at the given gradient; Setup is called if stale
//  J[I][J] with I = i*ncol(flux) + j and J = k*ncol(grad) + l
func (o *Solver) Jacobian(grad [][]float64, env sym.Env) (jac *mat.Dense, err error) {
	if err = o.setupIfStale(); err != nil {
		return
	}
	if env, err = o.env(grad, env); err != nil {
		return
	}
	jac, err = tensor.EvalMatrix(o.dfdg, env)
	if err != nil {
		return nil, chk.Err("solver %q: cannot evaluate Jacobian:\n%v", o.Name, err)
	}
	return
}

// NumJacobian approximates ∂flux/∂grad by central differences; the layout is the same as in Jacobian
//  Note: the residuals history is not modified
func (o *Solver) NumJacobian(grad [][]float64, env sym.Env) (jac *mat.Dense, err error) {
	if err = o.setupIfStale(); err != nil {
		return
	}
	f0, err := o.eval(grad, env)
	if err != nil {
		return
	}
	nrow, ncol := len(grad), len(grad[0])
	x := make([]float64, 0, nrow*ncol)
	for _, row := range grad {
		x = append(x, row...)
	}
	g := make([][]float64, nrow)
	for i := range g {
		g[i] = make([]float64, ncol)
	}
	r, c := f0.Dims()
	jac = mat.NewDense(r*c, len(x), nil)
	fd.Jacobian(jac, func(y, x []float64) {
		for i := range g {
			copy(g[i], x[i*ncol:(i+1)*ncol])
		}
		f, e := o.eval(g, env)
		if e != nil {
			err = e
			return
		}
		copy(y, flatten(f))
	}, x, &fd.JacobianSettings{Formula: fd.Central})
	if err != nil {
		return nil, err
	}
	return
}

// auxiliary //////////////////////////////////////////////////////////////////////////////////////

// eval evaluates the flux at the given gradient
func (o *Solver) eval(grad [][]float64, env sym.Env) (*mat.Dense, error) {
	env, err := o.env(grad, env)
	if err != nil {
		return nil, err
	}
	res, err := tensor.EvalMatrix(o.flux, env)
	if err != nil {
		return nil, chk.Err("solver %q: cannot evaluate flux:\n%v", o.Name, err)
	}
	return res, nil
}

// setupIfStale calls Setup if required
func (o *Solver) setupIfStale() error {
	if o.stale || o.flux == nil {
		return o.Setup()
	}
	return nil
}

// env returns a copy of env with the values of the gradient components
func (o *Solver) env(grad [][]float64, env sym.Env) (sym.Env, error) {
	names := o.GradNames()
	if len(grad) != len(names) {
		return env, chk.Err("solver %q: gradient must have %d rows; got %d", o.Name, len(names), len(grad))
	}
	vars := make(map[string]float64, len(env.Vars)+len(names)*len(names[0]))
	for k, v := range env.Vars {
		vars[k] = v
	}
	for i, row := range names {
		if len(grad[i]) != len(row) {
			return env, chk.Err("solver %q: gradient must have %d columns; row %d has %d", o.Name, len(row), i, len(grad[i]))
		}
		for j, name := range row {
			vars[name] = grad[i][j]
		}
	}
	env.Vars = vars
	return env, nil
}

// gradNames returns the names of the gradient components
func gradNames(ndim, udim int) (names [][]string) {
	if udim == 1 {
		names = [][]string{make([]string, ndim)}
		for l := 0; l < ndim; l++ {
			names[0][l] = io.Sf("du_dx%d", l)
		}
		return
	}
	names = make([][]string, udim)
	for k := 0; k < udim; k++ {
		names[k] = make([]string, ndim)
		for l := 0; l < ndim; l++ {
			names[k][l] = io.Sf("du%d_dx%d", k, l)
		}
	}
	return
}
