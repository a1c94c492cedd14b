// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from (.sim) and (.mat) files
package inp

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/cpmech/gorheo/sym"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gopkg.in/yaml.v3"
)

// Data holds global data for simulations
type Data struct {
	Desc    string `json:"desc" yaml:"desc"`       // description of simulation
	Matfile string `json:"matfile" yaml:"matfile"` // materials file path
	DirOut  string `json:"dirout" yaml:"dirout"`   // directory for output; e.g. /tmp/gorheo
	Encoder string `json:"encoder" yaml:"encoder"` // encoder name; e.g. "gob" "json"
	Ndim    int    `json:"ndim" yaml:"ndim"`       // space dimension; default = 2
}

// Case holds the data of one flux evaluation
type Case struct {
	Desc string                 `json:"desc" yaml:"desc"` // description of case. ex: simple shear
	Mat  string                 `json:"mat" yaml:"mat"`   // material name
	Grad [][]float64            `json:"grad" yaml:"grad"` // gradient of unknowns: [1][ndim] (scalar) or [ndim][ndim] (vector)
	Vars map[string]float64     `json:"vars" yaml:"vars"` // values of free symbols
	T    float64                `json:"t" yaml:"t"`       // time passed to fields
	X    []float64              `json:"x" yaml:"x"`       // position passed to fields
	Set  map[string]interface{} `json:"set" yaml:"set"`   // parameters replacing the ones in the materials file
	Skip bool                   `json:"skip" yaml:"skip"` // do not run case
}

// Simulation holds all simulation data
type Simulation struct {

	// input
	Data  Data    `json:"data" yaml:"data"`   // stores global simulation data
	Cases []*Case `json:"cases" yaml:"cases"` // stores all cases

	// derived
	DirOut    string // directory to save results
	Key       string // simulation key; e.g. mysim01.sim => mysim01 or mysim01-alias
	EncType   string // encoder type
	MatParams *MatDb // materials' parameters
	Ndim      int    // space dimension
}

// ReadSim reads all simulation data from a .sim (JSON) or .yaml file
func ReadSim(simfilepath, alias string, erasefiles bool) (*Simulation, error) {

	// new sim
	var o Simulation

	// read file
	b, err := os.ReadFile(simfilepath)
	if err != nil {
		return nil, chk.Err("ReadSim: cannot read simulation file %q", simfilepath)
	}

	// decode
	switch strings.ToLower(io.FnExt(simfilepath)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &o)
	default:
		err = json.Unmarshal(b, &o)
	}
	if err != nil {
		return nil, chk.Err("ReadSim: cannot unmarshal simulation file %q: %v", simfilepath, err)
	}

	// input directory and filename key
	dir := filepath.Dir(simfilepath)
	fn := filepath.Base(simfilepath)
	dir = os.ExpandEnv(dir)
	fnkey := io.FnKey(fn)
	o.Key = fnkey
	if alias != "" {
		o.Key += "-" + alias
	}

	// output directory
	o.DirOut = o.Data.DirOut
	if o.DirOut == "" {
		o.DirOut = filepath.Join(os.TempDir(), "gorheo", fnkey)
	}

	// encoder type
	o.EncType = o.Data.Encoder
	if o.EncType != "gob" && o.EncType != "json" {
		o.EncType = "gob"
	}

	// create directory and erase previous simulation results
	if erasefiles {
		err = os.MkdirAll(o.DirOut, 0777)
		if err != nil {
			return nil, chk.Err("cannot create directory for output results (%s): %v", o.DirOut, err)
		}
		io.RemoveAll(io.Sf("%s/%s*", o.DirOut, o.Key))
	}

	// space dimension
	o.Ndim = o.Data.Ndim
	if o.Ndim == 0 {
		o.Ndim = 2
	}

	// read materials database
	if o.Data.Matfile == "" {
		return nil, chk.Err("ReadSim: matfile must be given in %q", simfilepath)
	}
	mdir, mfn := dir, o.Data.Matfile
	if filepath.IsAbs(mfn) {
		mdir = ""
	}
	o.MatParams, err = ReadMat(mdir, mfn, o.Ndim)
	if err != nil {
		return nil, chk.Err("ReadSim: cannot read materials database:\n%v", err)
	}

	// check cases
	for i, c := range o.Cases {
		if o.MatParams.Get(c.Mat) == nil {
			return nil, chk.Err("ReadSim: case %d: cannot find material %q", i, c.Mat)
		}
		if len(c.Grad) == 0 {
			return nil, chk.Err("ReadSim: case %d: gradient must be given", i)
		}
	}
	return &o, nil
}

// Env returns the values of symbols, time and position of this case
func (o Case) Env() sym.Env {
	return sym.Env{T: o.T, X: o.X, Vars: o.Vars}
}
