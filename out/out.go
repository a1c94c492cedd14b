// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements post-processing of the summaries saved by fem
package out

import (
	"strings"

	"github.com/cpmech/gorheo/fem"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Global variables
var (

	// data set by Start
	Analysis *fem.FEM                // the fem structure; cases are not run
	Sums     map[string]*fem.Summary // maps solver names to summaries
	Names    []string                // solver names in the order of the cases

	// subplots
	Splots []*SplotDat // all subplots
	Csplot *SplotDat   // current subplot
)

// Start reads the simulation file and the summaries saved by a previous run
func Start(simfnpath, alias string) (err error) {

	// fem structure
	Analysis, err = fem.NewFEM(simfnpath, alias, false, false, false)
	if err != nil {
		return
	}

	// clear previous data
	Sums = make(map[string]*fem.Summary)
	Names = make([]string, 0)
	Splots = make([]*SplotDat, 0)
	Csplot = nil

	// summaries
	sim := Analysis.Sim
	for idx, c := range sim.Cases {
		if c.Skip {
			continue
		}
		name := fem.SolverName(idx, c)
		if _, ok := Sums[name]; ok {
			continue
		}
		sum, err := fem.ReadSum(sim.DirOut, sim.Key+"_"+name, sim.EncType)
		if err != nil {
			return chk.Err("cannot read summary of solver %q:\n%v", name, err)
		}
		Sums[name] = sum
		Names = append(Names, name)
	}
	return
}

// GetFlux returns the flattened flux of the case with description desc
func GetFlux(desc string) (flux []float64, solver string, err error) {
	for _, name := range Names {
		sum := Sums[name]
		for i, d := range sum.Descs {
			if d == desc {
				return sum.Fluxes[i], name, nil
			}
		}
	}
	return nil, "", chk.Err("cannot find results of case %q", desc)
}

// Table returns a table with the fluxes of all cases
func Table() string {
	var b strings.Builder
	b.WriteString(io.Sf("%-16s %-16s %-14s %s\n", "case", "solver", "model", "flux"))
	for _, name := range Names {
		sum := Sums[name]
		for i, d := range sum.Descs {
			b.WriteString(io.Sf("%-16s %-16s %-14s %v\n", d, name, sum.Model, sum.Fluxes[i]))
		}
	}
	return b.String()
}
