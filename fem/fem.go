// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"time"

	"github.com/cpmech/gorheo/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/mat"
)

// Result holds the flux computed for one case
type Result struct {
	Desc   string     // description of case
	Solver string     // name of solver
	Flux   *mat.Dense // numeric flux
	Jac    *mat.Dense // ∂flux/∂grad
}

// FEM holds all data for evaluating the cases of a simulation
type FEM struct {
	Sim         *inp.Simulation    // simulation data
	Solvers     map[string]*Solver // all solvers; material name or name#caseindex => solver
	Results     []*Result          // results of all cases that were run
	SaveSummary bool               // save summaries after Run
	Verbose     bool               // show messages
}

// NewFEM returns a new FEM structure
//  Input:
//   simfilepath -- simulation (.sim) filename including full path
//   alias       -- word to be appended to simulation key
//   erasePrev   -- erase previous results files
//   saveSummary -- save summary of each solver
//   verbose     -- show messages
func NewFEM(simfilepath, alias string, erasePrev, saveSummary, verbose bool) (o *FEM, err error) {
	o = &FEM{SaveSummary: saveSummary, Verbose: verbose}
	o.Sim, err = inp.ReadSim(simfilepath, alias, erasePrev)
	if err != nil {
		return nil, chk.Err("cannot read simulation input data:\n%v", err)
	}
	o.Solvers = make(map[string]*Solver)
	return
}

// Run evaluates all cases
func (o *FEM) Run() (err error) {

	// loop over cases
	cputime := time.Now()
	for idx, c := range o.Sim.Cases {

		// skip case?
		if c.Skip {
			continue
		}

		// solver
		var sol *Solver
		sol, err = o.solver(idx, c)
		if err != nil {
			return
		}

		// flux and Jacobian
		res := &Result{Desc: c.Desc, Solver: sol.Name}
		res.Flux, err = sol.Residual(c.Grad, c.Env())
		if err != nil {
			return chk.Err("case %d (%s) failed:\n%v", idx, c.Desc, err)
		}
		res.Jac, err = sol.Jacobian(c.Grad, c.Env())
		if err != nil {
			return chk.Err("case %d (%s) failed:\n%v", idx, c.Desc, err)
		}
		o.Results = append(o.Results, res)
		sol.Sum.Descs = append(sol.Sum.Descs, c.Desc)
		sol.Sum.Fluxes = append(sol.Sum.Fluxes, flatten(res.Flux))
		if o.Verbose {
			io.Pf("%-12s: flux =\n%v\n", c.Desc, mat.Formatted(res.Flux, mat.Prefix("  ")))
		}
	}

	// message
	if o.Verbose {
		io.Pflmag("cpu time   = %v\n", time.Since(cputime))
	}

	// save summaries
	if o.SaveSummary {
		for name, sol := range o.Solvers {
			err = sol.Sum.Save(o.Sim.DirOut, o.Sim.Key+"_"+name, o.Sim.EncType, o.Verbose)
			if err != nil {
				return
			}
		}
	}
	return
}

// SolverName returns the name of the solver of case idx; cases replacing parameters get their own solver
func SolverName(idx int, c *inp.Case) string {
	if len(c.Set) > 0 {
		return io.Sf("%s#%d", c.Mat, idx)
	}
	return c.Mat
}

// solver returns the solver of a case
func (o *FEM) solver(idx int, c *inp.Case) (sol *Solver, err error) {
	name := SolverName(idx, c)
	if sol, ok := o.Solvers[name]; ok {
		return sol, nil
	}
	mdl, err := GetAndInitRheoModel(o.Sim.MatParams, c.Mat, c.Set)
	if err != nil {
		return
	}
	sol, err = NewSolver(name, mdl)
	if err != nil {
		return
	}
	sol.Verbose = o.Verbose
	o.Solvers[name] = sol
	return
}

// flatten returns the components of a (row-major)
func flatten(a *mat.Dense) (res []float64) {
	r, c := a.Dims()
	res = make([]float64, 0, r*c)
	for i := 0; i < r; i++ {
		res = append(res, mat.Row(nil, i, a)...)
	}
	return
}
