// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package sym implements a small exact symbolic algebra for constitutive parameters
//
//  Expressions are immutable. All constructors return canonical forms so that
//  structurally different but equivalent expressions compare equal; see Equal.
package sym

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
)

// ErrUndefined is returned when evaluating a parameter that has not been defined yet
var ErrUndefined = errors.New("sym: parameter not yet defined")

// Expr defines a symbolic expression
type Expr interface {
	Eval(env Env) (float64, error) // Eval evaluates this expression numerically
	String() string                // String returns a canonical text representation
}

// Env holds the values required to evaluate expressions
//  T    -- time, passed to fields
//  X    -- position, passed to fields
//  Vars -- values of free symbols
type Env struct {
	T    float64
	X    []float64
	Vars map[string]float64
}

// Fcn defines scalar functions of time and position f(t,{x}); e.g. gosl dbf.T functions
type Fcn interface {
	F(t float64, x []float64) float64
}

// FcnF adapts an ordinary function into a Fcn
type FcnF func(t float64, x []float64) float64

// F returns f(t,{x})
func (o FcnF) F(t float64, x []float64) float64 { return o(t, x) }

// nodes //////////////////////////////////////////////////////////////////////////////////////////

// num is a numeric constant
type num struct{ v float64 }

// symbol is a free symbol whose value comes from Env.Vars
type symbol struct{ name string }

// undef is a placeholder for a parameter that has not been defined yet
type undef struct{ name string }

// field is an opaque reference to a function of time and position
type field struct {
	name string
	fcn  Fcn
}

// sum holds two or more terms; like terms are already combined
type sum struct{ terms []Expr }

// prod represents c * (√2 if r2) * fs[0] * fs[1] * ...
//  fs is sorted and never contains sums or numbers
type prod struct {
	c  float64
	r2 bool
	fs []Expr
}

// inv represents 1/x for non-constant x that is neither a product nor an inverse
type inv struct{ x Expr }

// minmax represents max(args...) or min(args...)
type minmax struct {
	max  bool
	args []Expr
}

// pick evaluates ds[i] where i is the active (largest or smallest) argument in args
type pick struct {
	max  bool
	args []Expr
	ds   []Expr
}

// constructors ///////////////////////////////////////////////////////////////////////////////////

// Sqrt2 is the exact irrational constant √2
var Sqrt2 Expr = prod{c: 1, r2: true}

// N returns a numeric constant
func N(v float64) Expr { return num{v} }

// S returns a free symbol
func S(name string) Expr { return symbol{name} }

// Undefined returns a placeholder for a parameter that is not yet defined
func Undefined(name string) Expr { return undef{name} }

// F returns a reference to a field (function of time and position)
func F(name string, fcn Fcn) Expr { return field{name, fcn} }

// IsUndefined tells whether e is a not-yet-defined placeholder
func IsUndefined(e Expr) bool {
	_, ok := e.(undef)
	return ok
}

// Value returns the numeric value of e if e is constant
func Value(e Expr) (v float64, ok bool) {
	switch o := e.(type) {
	case num:
		return o.v, true
	case prod:
		if len(o.fs) == 0 {
			return o.c * math.Sqrt2, true
		}
	}
	return 0, false
}

// IsZero tells whether e is the constant zero
func IsZero(e Expr) bool {
	v, ok := Value(e)
	return ok && v == 0
}

// evaluation /////////////////////////////////////////////////////////////////////////////////////

func (o num) Eval(env Env) (float64, error) { return o.v, nil }

func (o symbol) Eval(env Env) (float64, error) {
	v, ok := env.Vars[o.name]
	if !ok {
		return 0, chk.Err("sym: symbol %q has no value", o.name)
	}
	return v, nil
}

func (o undef) Eval(env Env) (float64, error) {
	return 0, fmt.Errorf("%w: %s", ErrUndefined, o.name)
}

func (o field) Eval(env Env) (float64, error) {
	if o.fcn == nil {
		return 0, chk.Err("sym: field %q has no function", o.name)
	}
	return o.fcn.F(env.T, env.X), nil
}

func (o sum) Eval(env Env) (res float64, err error) {
	for _, t := range o.terms {
		v, err := t.Eval(env)
		if err != nil {
			return 0, err
		}
		res += v
	}
	return
}

func (o prod) Eval(env Env) (float64, error) {
	res := o.c
	if o.r2 {
		res *= math.Sqrt2
	}
	for _, f := range o.fs {
		v, err := f.Eval(env)
		if err != nil {
			return 0, err
		}
		res *= v
	}
	return res, nil
}

func (o inv) Eval(env Env) (float64, error) {
	v, err := o.x.Eval(env)
	if err != nil {
		return 0, err
	}
	return 1.0 / v, nil
}

func (o minmax) Eval(env Env) (float64, error) {
	_, v, err := active(o.max, o.args, env)
	return v, err
}

func (o pick) Eval(env Env) (float64, error) {
	i, _, err := active(o.max, o.args, env)
	if err != nil {
		return 0, err
	}
	return o.ds[i].Eval(env)
}

// active returns the index and value of the largest (or smallest) argument
func active(max bool, args []Expr, env Env) (idx int, val float64, err error) {
	for i, a := range args {
		v, err := a.Eval(env)
		if err != nil {
			return 0, 0, err
		}
		if i == 0 || (max && v > val) || (!max && v < val) {
			idx, val = i, v
		}
	}
	return
}

// printing ///////////////////////////////////////////////////////////////////////////////////////

func (o num) String() string    { return strconv.FormatFloat(o.v, 'g', -1, 64) }
func (o symbol) String() string { return o.name }
func (o undef) String() string  { return o.name + "→not yet defined" }
func (o field) String() string  { return o.name + "(t,x)" }

func (o sum) String() string {
	l := make([]string, len(o.terms))
	for i, t := range o.terms {
		l[i] = t.String()
	}
	return strings.Join(l, " + ")
}

func (o prod) String() string {
	var numer, denom []string
	switch {
	case o.c == -1 && len(o.fs) > 0:
		numer = append(numer, "-1")
	case o.c != 1:
		numer = append(numer, num{o.c}.String())
	}
	if o.r2 {
		numer = append(numer, "√2")
	}
	for _, f := range o.fs {
		if d, ok := f.(inv); ok {
			denom = append(denom, paren(d.x))
			continue
		}
		numer = append(numer, paren(f))
	}
	if len(numer) == 0 {
		numer = append(numer, "1")
	}
	res := strings.Join(numer, "*")
	if len(denom) > 0 {
		res += "/" + strings.Join(denom, "/")
	}
	return res
}

func (o inv) String() string { return "1/" + paren(o.x) }

func (o minmax) String() string {
	return fname(o.max) + "(" + join(o.args) + ")"
}

func (o pick) String() string {
	return "d" + fname(o.max) + "(" + join(o.args) + "; " + join(o.ds) + ")"
}

func fname(max bool) string {
	if max {
		return "max"
	}
	return "min"
}

func join(l []Expr) string {
	s := make([]string, len(l))
	for i, e := range l {
		s[i] = e.String()
	}
	return strings.Join(s, ", ")
}

// paren wraps compound expressions in parentheses
func paren(e Expr) string {
	switch e.(type) {
	case sum, prod:
		return "(" + e.String() + ")"
	}
	return e.String()
}
