// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mrheo

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/cpmech/gorheo/sym"
	"github.com/cpmech/gorheo/tensor"
	"github.com/cpmech/gosl/chk"
	"github.com/mitchellh/mapstructure"
)

// allocators holds all available models; name => allocator
//  raw holds the parameters as read from input files; e.g. {"viscosity": 5}
var allocators = make(map[string]func(ndim int, raw map[string]interface{}) (Model, error))

// New allocates a model by name
//  Numbers in raw become constants and strings become free symbols
func New(name string, ndim int, raw map[string]interface{}) (Model, error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in rheo database", name)
	}
	if raw == nil {
		raw = make(map[string]interface{})
	}
	return allocator(ndim, raw)
}

// Names returns the names of all available models
func Names() (names []string) {
	for name := range allocators {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

// decode decodes raw into the parameters record out; unknown keys are rejected
func decode(name string, raw map[string]interface{}, out interface{}) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:  exprHook,
		ErrorUnused: true,
		Result:      out,
	})
	if err != nil {
		return err
	}
	if err = dec.Decode(raw); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrConfig, name, err)
	}
	return nil
}

var exprType = reflect.TypeOf((*sym.Expr)(nil)).Elem()

// exprHook converts numbers and names into expressions
func exprHook(from, to reflect.Type, data interface{}) (interface{}, error) {
	if to != exprType {
		return data, nil
	}
	switch v := data.(type) {
	case sym.Expr:
		return v, nil
	case float64:
		return sym.N(v), nil
	case float32:
		return sym.N(float64(v)), nil
	case int:
		return sym.N(float64(v)), nil
	case int64:
		return sym.N(float64(v)), nil
	case uint64:
		return sym.N(float64(v)), nil
	case string:
		if v == "" {
			return nil, configErr("empty parameter name")
		}
		return sym.S(v), nil
	}
	return nil, configErr("cannot convert %v (%T) into an expression", data, data)
}

// rawViscosity holds the three keys that may define a viscosity
type rawViscosity struct {
	Scalar sym.Expr      `mapstructure:"viscosity"`
	Mandel tensor.Matrix `mapstructure:"viscosity_mandel"`
	Full   tensor.Rank4  `mapstructure:"viscosity_full"`
}

// get returns the viscosity given by at most one key; zero Form if none is given
func (o rawViscosity) get() (η Viscosity, err error) {
	n := 0
	if o.Scalar != nil {
		η, n = ScalarViscosity(o.Scalar), n+1
	}
	if o.Mandel != nil {
		η, n = MandelViscosity(o.Mandel), n+1
	}
	if o.Full != nil {
		η, n = FullViscosity(o.Full), n+1
	}
	if n > 1 {
		return Viscosity{}, configErr("only one of viscosity, viscosity_mandel or viscosity_full may be given")
	}
	return
}

// model converts the results of a constructor
func model[T Model](m T, err error) (Model, error) {
	if err != nil {
		return nil, err
	}
	return m, nil
}
