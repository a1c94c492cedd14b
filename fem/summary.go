// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"bytes"
	"os"
	"path"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Summary records summary of assemblies and outputs
type Summary struct {
	Name   string      // name of solver
	Model  string      // kind of model
	Nsetup int         // number of setups (assemblies)
	Resids []float64   // Frobenius norm of residuals (fluxes) evaluated so far
	Fluxes [][]float64 // flattened fluxes; one per case (see Run)
	Descs  []string    // descriptions of cases (see Run)
}

// Save saves summary to disc
func (o Summary) Save(dirout, fnkey, enctype string, verbose bool) (err error) {

	// buffer and encoder
	var buf bytes.Buffer
	enc := GetEncoder(&buf, enctype)

	// encode summary
	err = enc.Encode(o)
	if err != nil {
		return chk.Err("cannot encode summary\n%v", err)
	}

	// save file
	fn := out_sum_path(dirout, fnkey, enctype)
	return save_file(fn, &buf, verbose)
}

// ReadSum reads summary back
func ReadSum(dir, fnkey, enctype string) (o *Summary, err error) {

	// open file
	fn := out_sum_path(dir, fnkey, enctype)
	fil, err := os.Open(fn)
	if err != nil {
		return
	}
	defer func() {
		if e := fil.Close(); e != nil && err == nil {
			err = e
		}
	}()

	// decode summary
	var sum Summary
	dec := GetDecoder(fil, enctype)
	err = dec.Decode(&sum)
	if err != nil {
		return nil, chk.Err("cannot decode summary\n%v", err)
	}
	return &sum, nil
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

func out_sum_path(dir, fnkey, enctype string) string {
	return path.Join(dir, io.Sf("%s_sum.%s", fnkey, enctype))
}
