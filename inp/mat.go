// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cpmech/gorheo/mrheo"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gopkg.in/yaml.v3"
)

// Material holds material data
type Material struct {
	Name  string                 `json:"name" yaml:"name"`   // name of material; e.g. "mantle"
	Model string                 `json:"model" yaml:"model"` // name of model; e.g. "viscoplastic"
	Desc  string                 `json:"desc" yaml:"desc"`   // description
	Extra string                 `json:"extra" yaml:"extra"` // extra information, e.g. units or reference
	Prms  map[string]interface{} `json:"prms" yaml:"prms"`   // parameters; numbers, symbol names or lists

	// derived
	Rheo mrheo.Model `json:"-" yaml:"-"` // allocated model
}

// MatDb implements a database of materials
type MatDb struct {
	Materials []*Material `json:"materials" yaml:"materials"` // all materials

	// derived
	Ndim int // space dimension used to allocate models
}

// ReadMat reads all materials data from a .mat (JSON), .json, .yaml or .yml file
// and allocates the corresponding models
func ReadMat(dir, fn string, ndim int) (mdb *MatDb, err error) {

	// read file
	path := filepath.Join(dir, fn)
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, chk.Err("cannot open materials file %q: %v", path, err)
	}

	// decode
	mdb = &MatDb{Ndim: ndim}
	switch strings.ToLower(io.FnExt(fn)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, mdb)
	default:
		err = json.Unmarshal(b, mdb)
	}
	if err != nil {
		return nil, chk.Err("cannot unmarshal materials file %q: %v", path, err)
	}

	// check and allocate models
	names := make(map[string]bool)
	for _, mat := range mdb.Materials {
		if mat.Name == "" {
			return nil, chk.Err("materials file %q: all materials must have a name", path)
		}
		if names[mat.Name] {
			return nil, chk.Err("materials file %q: material %q is duplicated", path, mat.Name)
		}
		names[mat.Name] = true
		if err = mat.Alloc(ndim); err != nil {
			return nil, err
		}
	}
	return
}

// Get returns a material; nil if not found
func (o MatDb) Get(name string) *Material {
	for _, mat := range o.Materials {
		if mat.Name == name {
			return mat
		}
	}
	return nil
}

// Names returns the names of all materials
func (o MatDb) Names() (names []string) {
	for _, mat := range o.Materials {
		names = append(names, mat.Name)
	}
	return
}

// String prints a summary of all materials
func (o MatDb) String() string {
	l := io.Sf("materials (ndim=%d):\n", o.Ndim)
	for _, mat := range o.Materials {
		l += io.Sf("  %-16s %-14s %s\n", mat.Name, mat.Model, mat.Desc)
	}
	return l
}

// Alloc allocates the model with the current parameters
//  Note: the current model is kept on errors
func (o *Material) Alloc(ndim int) error {
	mdl, err := mrheo.New(o.Model, ndim, o.Prms)
	if err != nil {
		return fmt.Errorf("material %q: %w", o.Name, err)
	}
	o.Rheo = mdl
	return nil
}

// SetPrm replaces (or adds) one parameter and allocates a new model
//  Note: the previous model and its solver binding are discarded
func (o *Material) SetPrm(key string, val interface{}, ndim int) error {
	old, had := o.Prms[key]
	if o.Prms == nil {
		o.Prms = make(map[string]interface{})
	}
	o.Prms[key] = val
	if err := o.Alloc(ndim); err != nil {
		if had {
			o.Prms[key] = old
		} else {
			delete(o.Prms, key)
		}
		return err
	}
	return nil
}
