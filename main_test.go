// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const matfile = "inp/data/rheo.mat"

// execute runs the root command with args and returns stdout
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), err
}

func TestShowViscous(t *testing.T) {
	out, err := execute(t, "show", "-m", matfile, "-n", "newtonian")
	require.NoError(t, err)
	assert.Contains(t, out, "viscous")
	assert.Contains(t, out, "eigenvalues = [10 10 10]")
}

func TestShowSetAndVars(t *testing.T) {
	out, err := execute(t, "show", "-m", matfile, "-n", "layered", "--var", "eta_weak=0.5")
	require.NoError(t, err)
	assert.Contains(t, out, "eta_weak")
	assert.Contains(t, out, "eigenvalues = [0.5 1 1]")

	out, err = execute(t, "show", "-m", matfile, "-n", "newtonian", "--set", "viscosity=2")
	require.NoError(t, err)
	assert.Contains(t, out, "eigenvalues = [4 4 4]")
}

func TestShowNotEvaluable(t *testing.T) {
	out, err := execute(t, "show", "-m", matfile, "-n", "layered")
	require.NoError(t, err)
	assert.NotContains(t, out, "eigenvalues")
}

func TestShowErrors(t *testing.T) {
	_, err := execute(t, "show", "-m", matfile)
	require.Error(t, err)

	_, err = execute(t, "show", "-m", matfile, "-n", "unknown")
	require.Error(t, err)

	_, err = execute(t, "show", "-m", matfile, "-n", "newtonian", "--set", "viscosity")
	require.Error(t, err)

	_, err = execute(t, "show", "-m", matfile, "-n", "newtonian", "--set", "unknown=1")
	require.Error(t, err)
}

func TestFlux(t *testing.T) {
	out, err := execute(t, "flux", "-m", matfile, "-n", "newtonian", "--grad", "0,1;0,0", "--jac", "--check")
	require.NoError(t, err)
	assert.Contains(t, out, "flux =")
	assert.Contains(t, out, "dflux/dgrad =")
	assert.Contains(t, out, "central differences")

	out, err = execute(t, "flux", "-m", matfile, "-n", "rock", "--grad", "2,-1")
	require.NoError(t, err)
	assert.Contains(t, out, "6")
	assert.Contains(t, out, "-3")

	_, err = execute(t, "flux", "-m", matfile, "-n", "newtonian", "--grad", "0,a;0,0")
	require.Error(t, err)

	_, err = execute(t, "flux", "-m", matfile, "-n", "newtonian", "--grad", "1,2,3")
	require.Error(t, err)
}

func TestPlot(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "mantle.png")
	out, err := execute(t, "plot", "-m", matfile, "-n", "mantle", "-o", fn, "--npts", "11")
	require.NoError(t, err)
	assert.Contains(t, out, fn)
	info, err := os.Stat(fn)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	_, err = execute(t, "plot", "-m", matfile, "-n", "newtonian", "-o", fn)
	require.ErrorContains(t, err, "viscoplastic")
}

func TestRun(t *testing.T) {
	out, err := execute(t, "run", "inp/data/shear.sim")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, strings.Count(out, ":\n"), 5)

	_, err = execute(t, "run")
	require.Error(t, err)
}

func TestPost(t *testing.T) {
	_, err := execute(t, "run", "inp/data/shear.sim", "--alias", "cli", "--erase", "--save")
	require.NoError(t, err)

	fig := filepath.Join(t.TempDir(), "resids.png")
	out, err := execute(t, "post", "inp/data/shear.sim", "--alias", "cli", "-o", fig)
	require.NoError(t, err)
	assert.Contains(t, out, "newtonian#3")
	assert.Contains(t, out, "diffusion")
	_, err = os.Stat(fig)
	require.NoError(t, err)
}

func TestModels(t *testing.T) {
	out, err := execute(t, "models")
	require.NoError(t, err)
	for _, name := range []string{"constitutive", "diffusion", "transiso", "viscoelastic", "viscoplastic", "viscous"} {
		assert.Contains(t, out, name+"\n")
	}
}

func TestParseKeyVals(t *testing.T) {
	res, err := parseKeyVals([]string{"a=1", "b = eta", "c=[0, 1]", "d=2.5"})
	require.NoError(t, err)
	assert.Equal(t, 1, res["a"])
	assert.Equal(t, "eta", res["b"])
	assert.Equal(t, []interface{}{0, 1}, res["c"])
	assert.Equal(t, 2.5, res["d"])

	_, err = parseKeyVals([]string{"=1"})
	require.Error(t, err)
	_, err = parseKeyVals([]string{"a="})
	require.Error(t, err)
}

func TestParseGrad(t *testing.T) {
	g, err := parseGrad("0, 1; 2,3")
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0, 1}, {2, 3}}, g)
}
