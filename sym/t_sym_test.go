// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sym

import (
	"errors"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_sym01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sym01. constants and √2")

	v, ok := Value(Add(N(1), N(2), N(-0.5)))
	if !ok {
		tst.Errorf("sum of constants must be constant\n")
		return
	}
	chk.Float64(tst, "1+2-0.5", 1e-17, v, 2.5)

	v, ok = Value(Mul(Sqrt2, Sqrt2))
	if !ok || v != 2 {
		tst.Errorf("√2*√2 must be exactly 2. %v != 2\n", v)
	}

	v, ok = Value(Div(N(1), Sqrt2))
	if !ok {
		tst.Errorf("1/√2 must be constant\n")
		return
	}
	chk.Float64(tst, "1/√2", 1e-15, v, 0.7071067811865476)

	eta := S("eta")
	r := Div(Mul(Sqrt2, eta), Sqrt2)
	io.Pforan("√2*eta/√2 = %v\n", r)
	chk.String(tst, r.String(), "eta")

	r = Div(Mul(Sqrt2, Sqrt2, eta), N(2))
	chk.String(tst, r.String(), "eta")
}

func Test_sym02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sym02. canonical sums and products")

	a, b := S("a"), S("b")

	chk.String(tst, Add(a, a).String(), "2*a")
	chk.String(tst, Mul(N(2), a).String(), "2*a")
	chk.String(tst, Mul(b, a).String(), Mul(a, b).String())

	if !IsZero(Sub(a, a)) {
		tst.Errorf("a-a must be zero\n")
	}
	if !IsZero(Mul(N(0), a, b)) {
		tst.Errorf("0*a*b must be zero\n")
	}

	// distribution
	lhs := Mul(Add(a, N(1)), Add(b, N(2)))
	rhs := Add(Mul(a, b), Mul(N(2), a), b, N(2))
	io.Pforan("lhs = %v\n", lhs)
	if !Equal(lhs, rhs) {
		tst.Errorf("(a+1)(b+2) != ab+2a+b+2: %v\n", Sub(lhs, rhs))
	}

	// cancellation
	chk.String(tst, Div(Mul(a, b), a).String(), "b")
	chk.String(tst, Div(a, Div(a, b)).String(), "b")

	// harmonic mean keeps the sum in the denominator
	h := Div(N(1), Add(Div(N(1), a), Div(N(1), b)))
	io.Pforan("h = %v\n", h)
	env := Env{Vars: map[string]float64{"a": 1, "b": 5}}
	v, err := h.Eval(env)
	if err != nil {
		tst.Errorf("eval failed: %v\n", err)
		return
	}
	chk.Float64(tst, "h", 1e-15, v, 5.0/6.0)

	// simplify is idempotent
	chk.String(tst, Simplify(lhs).String(), lhs.String())
}

func Test_sym03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sym03. evaluation")

	x := S("x")
	env := Env{Vars: map[string]float64{"x": 3}}

	v, err := Add(Mul(N(2), x, x), N(1)).Eval(env)
	if err != nil {
		tst.Errorf("eval failed: %v\n", err)
		return
	}
	chk.Float64(tst, "2x²+1", 1e-15, v, 19)

	_, err = S("y").Eval(env)
	if err == nil {
		tst.Errorf("missing symbol must fail\n")
	}

	u := Undefined("tau_y")
	if !IsUndefined(u) {
		tst.Errorf("placeholder must be detected\n")
	}
	_, err = Mul(N(2), u).Eval(env)
	if !errors.Is(err, ErrUndefined) {
		tst.Errorf("undefined must give ErrUndefined. err = %v\n", err)
	}

	f := F("T", FcnF(func(t float64, x []float64) float64 { return t + x[0] + 2*x[1] }))
	v, err = Mul(N(3), f).Eval(Env{T: 1, X: []float64{1, 2}})
	if err != nil {
		tst.Errorf("eval failed: %v\n", err)
		return
	}
	chk.Float64(tst, "3*T", 1e-15, v, 18)
}

func Test_sym04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sym04. min and max")

	x := S("x")

	v, ok := Value(Max(N(1), N(3), N(2)))
	if !ok {
		tst.Errorf("max of constants must be constant\n")
		return
	}
	chk.Float64(tst, "max", 1e-17, v, 3)

	v, _ = Value(Min(N(1), N(3), N(-2)))
	chk.Float64(tst, "min", 1e-17, v, -2)

	m := Max(Max(x, N(1)), N(0.5), x)
	chk.String(tst, m.String(), "max(x, 1)")

	for _, c := range []struct{ x, res float64 }{{0.5, 1}, {2, 2}} {
		v, err := Max(Min(x, N(1.5)), N(1)).Eval(Env{Vars: map[string]float64{"x": c.x}})
		if err != nil {
			tst.Errorf("eval failed: %v\n", err)
			return
		}
		chk.Float64(tst, io.Sf("clip(%g)", c.x), 1e-17, v, min(max(c.x, 1), 1.5))
	}
}

func Test_sym05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sym05. derivatives")

	x, y := S("x"), S("y")
	exprs := []Expr{
		Mul(x, x, y),
		Div(y, Add(Mul(N(2), x), N(1))),
		Div(N(1), Add(Div(N(1), y), Div(N(1), x))),
		Max(N(0.01), Min(Div(N(10), x), N(100))),
	}
	for k, e := range exprs {
		de := Diff(e, "x")
		for _, xv := range []float64{0.3, 1.1, 2.5} {
			env := Env{Vars: map[string]float64{"x": xv, "y": 1.5}}
			ana, err := de.Eval(env)
			if err != nil {
				tst.Errorf("eval failed: %v\n", err)
				return
			}
			chk.DerivScaSca(tst, io.Sf("d%d/dx @ %g", k, xv), 1e-8, ana, xv, 1e-3, chk.Verbose, func(x float64) float64 {
				env.Vars["x"] = x
				v, _ := e.Eval(env)
				return v
			})
		}
	}

	if !IsZero(Diff(Mul(N(3), y), "x")) {
		tst.Errorf("d(3y)/dx must be zero\n")
	}
}

func Test_sym06(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sym06. equality does not depend on the order of arguments")

	a, b, c := S("a"), S("b"), S("c")
	if !Equal(Max(a, b), Max(b, a)) {
		tst.Errorf("max(a, b) must equal max(b, a)\n")
	}
	if !Equal(Min(a, b, N(1)), Min(N(1), b, a)) {
		tst.Errorf("min(a, b, 1) must equal min(1, b, a)\n")
	}
	if Equal(Max(a, b), Min(a, b)) {
		tst.Errorf("max(a, b) must differ from min(a, b)\n")
	}
	if !Equal(Div(N(1), Add(a, b)), Div(N(1), Add(b, a))) {
		tst.Errorf("1/(a+b) must equal 1/(b+a)\n")
	}
	if !Equal(Mul(c, Div(N(1), Add(a, b))), Div(c, Add(b, a))) {
		tst.Errorf("c/(a+b) must equal c/(b+a)\n")
	}
	if !IsZero(Sub(Max(Add(a, b), c), Max(c, Add(b, a)))) {
		tst.Errorf("max(a+b, c) - max(c, b+a) must be zero\n")
	}
	chk.String(tst, Max(b, a, b).String(), "max(b, a)")
}
