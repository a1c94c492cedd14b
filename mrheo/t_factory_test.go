// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mrheo

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/cpmech/gorheo/sym"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_factory01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("factory01. allocating models by name")

	chk.Strings(tst, "names", Names(), []string{"constitutive", "diffusion", "transiso", "viscoelastic", "viscoplastic", "viscous"})

	m, err := New("viscous", 2, map[string]interface{}{"viscosity": 5})
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	chk.String(tst, m.Kind().String(), "viscous")
	chk.Deep2(tst, "C", 1e-15, evalMat(tst, mandel(tst, m)), [][]float64{{10, 0, 0}, {0, 10, 0}, {0, 0, 10}})

	m, err = New("viscoplastic", 2, map[string]interface{}{"yield_stress": 10.0, "edot_II": 1})
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	vp := m.(*ViscoPlastic)
	chk.Float64(tst, "η_eff", 1e-15, value(tst, vp.EffectiveViscosity()), 5.0/6.0)

	// strings become symbols
	m, err = New("diffusion", 3, map[string]interface{}{"diffusivity": "kappa"})
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	chk.String(tst, m.Tensor().R2[2][2].String(), "kappa")

	// nested lists
	m, err = New("viscous", 2, map[string]interface{}{
		"viscosity_mandel": []interface{}{
			[]interface{}{1, 0, 0},
			[]interface{}{0, 1, 0},
			[]interface{}{0, 0, 1},
		},
	})
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	chk.Deep2(tst, "C", 1e-15, evalMat(tst, mandel(tst, m)), [][]float64{{2, 0, 0}, {0, 2, 0}, {0, 0, 2}})

	m, err = New("transiso", 2, map[string]interface{}{"eta_0": 1, "eta_1": 0.1, "director": []interface{}{0, 1}})
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	chk.Deep2(tst, "C", 1e-15, evalMat(tst, mandel(tst, m)), [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 0.1}})

	m, err = New("viscoelastic", 3, map[string]interface{}{"viscosity": 2, "shear_modulus": 1, "delta_t_e": 0.5})
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	chk.Float64(tst, "c0000", 1e-15, value(tst, m.Tensor().R4[0][0][0][0]), 4)

	// defaults
	m, err = New("constitutive", 2, nil)
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	chk.Int(tst, "udim", m.Udim(), 2)
	io.Pforan("%s\n", m.Summary())
}

func Test_factory02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("factory02. errors")

	if _, err := New("bingham", 2, nil); err == nil {
		tst.Errorf("unknown model should fail\n")
	}
	_, err := New("viscous", 2, map[string]interface{}{"viscosity": 5, "density": 1})
	if !errors.Is(err, ErrConfig) {
		tst.Errorf("unknown parameter should fail with ErrConfig; got %v\n", err)
	}
	_, err = New("viscous", 2, map[string]interface{}{"viscosity": true})
	if !errors.Is(err, ErrConfig) {
		tst.Errorf("boolean parameter should fail with ErrConfig; got %v\n", err)
	}
	_, err = New("viscous", 2, map[string]interface{}{"viscosity": 5, "viscosity_full": []interface{}{[]interface{}{}}})
	if !errors.Is(err, ErrConfig) {
		tst.Errorf("two forms of viscosity should fail with ErrConfig; got %v\n", err)
	}
	_, err = New("viscous", 3, map[string]interface{}{"viscosity_mandel": []interface{}{[]interface{}{1}}})
	if !errors.Is(err, ErrConfig) {
		tst.Errorf("wrong Mandel matrix should fail with ErrConfig; got %v\n", err)
	}
	_, err = New("transiso", 2, map[string]interface{}{"director": []interface{}{nil, 1.0}})
	if !errors.Is(err, ErrConfig) {
		tst.Errorf("null director component should fail with ErrConfig; got %v\n", err)
	}
	_, err = New("viscous", 2, map[string]interface{}{"viscosity_mandel": []interface{}{
		[]interface{}{1, nil, 0}, []interface{}{0, 1, 0}, []interface{}{0, 0, 1}}})
	if !errors.Is(err, ErrConfig) {
		tst.Errorf("null Mandel entry should fail with ErrConfig; got %v\n", err)
	}
	_, err = New("constitutive", 3, map[string]interface{}{"udim": 2})
	if !errors.Is(err, ErrConfig) {
		tst.Errorf("udim = 2 in 3D should fail with ErrConfig; got %v\n", err)
	}
}

func Test_plot01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("plot01. effective viscosity curves")

	m, err := NewViscoPlastic(2, ViscoPlasticPrms{YieldStress: sym.S("tau_y")})
	if err != nil {
		tst.Errorf("NewViscoPlastic failed: %v\n", err)
		return
	}
	s := &counter{name: "s"}
	m.BindSolver(s)

	plt := Plotter{Npts: 5, EdotMin: 0.01, EdotMax: 100}
	c, err := plt.Curve("τy = 10", m, sym.Env{Vars: map[string]float64{"tau_y": 10}})
	if err != nil {
		tst.Errorf("Curve failed: %v\n", err)
		return
	}
	chk.Array(tst, "edot", 1e-14, c.X, []float64{0.01, 0.1, 1, 10, 100})
	chk.Float64(tst, "η(1)", 1e-15, c.Y[2], 5.0/6.0)
	chk.Float64(tst, "η(100)", 1e-15, c.Y[4], 1.0/21.0)
	for i := 1; i < len(c.Y); i++ {
		if c.Y[i] > c.Y[i-1] {
			tst.Errorf("η_eff must not increase with strain rate\n")
		}
	}

	// the model is not modified
	chk.Int(tst, "stale", s.nstale, 1)
	if !sym.IsUndefined(m.Prms().EdotII) {
		tst.Errorf("edot_II should remain undefined\n")
	}

	// missing symbol
	if _, err = plt.Curve("", m, sym.Env{}); err == nil {
		tst.Errorf("Curve should fail without tau_y\n")
	}

	fn := filepath.Join(tst.TempDir(), "viscosity.png")
	if err = plt.Save(fn, c); err != nil {
		tst.Errorf("Save failed: %v\n", err)
		return
	}
	if _, err = os.Stat(fn); err != nil {
		tst.Errorf("figure was not written: %v\n", err)
	}
	if err = plt.Save(fn); err == nil {
		tst.Errorf("Save without curves should fail\n")
	}
}
