// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"testing"

	"github.com/cpmech/gorheo/sym"
	"github.com/cpmech/gosl/chk"
)

func Test_fem01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fem01. running all cases of a simulation file")

	fem, err := NewFEM("../inp/data/shear.sim", "", false, true, chk.Verbose)
	if err != nil {
		tst.Errorf("NewFEM failed: %v\n", err)
		return
	}
	fem.Sim.DirOut = tst.TempDir()
	if err = fem.Run(); err != nil {
		tst.Errorf("Run failed: %v\n", err)
		return
	}
	chk.Int(tst, "nresults", len(fem.Results), 5)
	chk.Int(tst, "nsolvers", len(fem.Solvers), 5)

	γdot := 2.0
	correct := map[string][][]float64{
		"newtonian":  {{0, 5 * γdot}, {5 * γdot, 0}},
		"bingham":    {{0, 5.0 / 6.0 * γdot}, {5.0 / 6.0 * γdot, 0}},
		"weak plane": {{0, 0.1 * γdot / 2}, {0.1 * γdot / 2, 0}},
		"stiffer":    {{0, 50 * γdot}, {50 * γdot, 0}},
		"heat":       {{3}, {-3}},
	}
	for _, res := range fem.Results {
		chk.Deep2(tst, res.Desc, 1e-14, deep2(res.Flux), correct[res.Desc])
	}
	chk.String(tst, fem.Results[3].Solver, "newtonian#3")

	// summary
	sum, err := ReadSum(fem.Sim.DirOut, fem.Sim.Key+"_newtonian", fem.Sim.EncType)
	if err != nil {
		tst.Errorf("ReadSum failed: %v\n", err)
		return
	}
	chk.String(tst, sum.Model, "viscous")
	chk.Int(tst, "Nsetup", sum.Nsetup, 1)
	chk.Strings(tst, "descs", sum.Descs, []string{"newtonian"})
	chk.Array(tst, "flux", 1e-14, sum.Fluxes[0], []float64{0, 10, 10, 0})
}

func Test_fem02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fem02. summary with gob encoder; models from database")

	fem, err := NewFEM("../inp/data/shear.yaml", "gob", false, false, false)
	if err != nil {
		tst.Errorf("NewFEM failed: %v\n", err)
		return
	}
	if err = fem.Run(); err != nil {
		tst.Errorf("Run failed: %v\n", err)
		return
	}
	chk.Deep2(tst, "τ", 1e-14, deep2(fem.Results[0].Flux), [][]float64{{0, 4, 0}, {4, 0, 0}, {0, 0, 0}})

	// the database model is bound to the solver
	sol := fem.Solvers["maxwell"]
	mdl := fem.Sim.MatParams.Get("maxwell").Rheo
	if mdl.Solver() != sol {
		tst.Errorf("database model should be bound to its solver\n")
		return
	}
	if err = mdl.Rebuild(); err != nil {
		tst.Errorf("Rebuild failed: %v\n", err)
		return
	}
	if !sol.IsStale() {
		tst.Errorf("solver should be stale after rebuilding the model\n")
	}

	// gob round trip
	dir := tst.TempDir()
	sol.Sum.Fluxes = append(sol.Sum.Fluxes, []float64{1, 2, 3})
	if err = sol.Sum.Save(dir, "maxwell", "gob", false); err != nil {
		tst.Errorf("Save failed: %v\n", err)
		return
	}
	sum, err := ReadSum(dir, "maxwell", "gob")
	if err != nil {
		tst.Errorf("ReadSum failed: %v\n", err)
		return
	}
	chk.Int(tst, "Nsetup", sum.Nsetup, 1)
	chk.Array(tst, "last flux", 1e-17, sum.Fluxes[len(sum.Fluxes)-1], []float64{1, 2, 3})

	// errors
	if _, err = GetAndInitRheoModel(fem.Sim.MatParams, "granite", nil); err == nil {
		tst.Errorf("unknown material should fail\n")
	}
	if _, err = GetAndInitRheoModel(nil, "maxwell", nil); err == nil {
		tst.Errorf("nil database should fail\n")
	}
	m2, err := GetAndInitRheoModel(fem.Sim.MatParams, "maxwell", map[string]interface{}{"viscosity": 1})
	if err != nil {
		tst.Errorf("GetAndInitRheoModel failed: %v\n", err)
		return
	}
	if m2 == mdl {
		tst.Errorf("replacing parameters should allocate a new model\n")
	}
	C, _ := m2.Mandel()
	v, _ := C[0][0].Eval(sym.Env{})
	chk.Float64(tst, "C00", 1e-15, v, 2)
}
