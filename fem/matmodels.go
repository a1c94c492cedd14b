// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gorheo/inp"
	"github.com/cpmech/gorheo/mrheo"
	"github.com/cpmech/gosl/chk"
)

// GetAndInitRheoModel gets the model of a material
//  set -- parameters replacing the ones in the database; nil => the model in the database is returned
//  Note: with set != nil a new model is allocated; the database is not modified
func GetAndInitRheoModel(mdb *inp.MatDb, matname string, set map[string]interface{}) (mdl mrheo.Model, err error) {

	// material data
	if mdb == nil {
		return nil, chk.Err("materials database is not available")
	}
	matdata := mdb.Get(matname)
	if matdata == nil {
		return nil, chk.Err("materials database failed on getting %q material", matname)
	}

	// model from database
	if len(set) == 0 {
		if matdata.Rheo == nil {
			return nil, chk.Err("model of material %q is not allocated", matname)
		}
		return matdata.Rheo, nil
	}

	// new model with replaced parameters
	prms := make(map[string]interface{}, len(matdata.Prms)+len(set))
	for k, v := range matdata.Prms {
		prms[k] = v
	}
	for k, v := range set {
		prms[k] = v
	}
	mdl, err = mrheo.New(matdata.Model, mdb.Ndim, prms)
	if err != nil {
		return nil, chk.Err("cannot allocate model of material %q:\n%v", matname, err)
	}
	return
}
