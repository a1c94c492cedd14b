// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mrheo

import "github.com/cpmech/gorheo/tensor"

// State holds history data that may be passed to Flux
//  Note: all models implemented here ignore these terms
type State struct {
	DDuDt tensor.Matrix // rate of the gradient of the unknowns
	U     tensor.Vector // unknowns; e.g. for cylindrical or spherical coordinates
	UDt   tensor.Vector // rate of the unknowns
}

// Empty tells whether s carries no history data; s may be nil
func (o *State) Empty() bool {
	return o == nil || (o.DDuDt == nil && o.U == nil && o.UDt == nil)
}

// GetCopy returns a copy of this state
func (o *State) GetCopy() *State {
	if o == nil {
		return nil
	}
	return &State{
		DDuDt: tensor.CloneMat(o.DDuDt),
		U:     append(tensor.Vector(nil), o.U...),
		UDt:   append(tensor.Vector(nil), o.UDt...),
	}
}
