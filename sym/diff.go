// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sym

// Diff returns the derivative of e with respect to the symbol named name
//  Note: fields and undefined placeholders do not depend on symbols; the derivative of
//        min/max selects the derivative of the active argument
func Diff(e Expr, name string) Expr {
	switch o := e.(type) {
	case symbol:
		if o.name == name {
			return num{1}
		}
	case sum:
		ds := make([]Expr, len(o.terms))
		for i, t := range o.terms {
			ds[i] = Diff(t, name)
		}
		return Add(ds...)
	case prod:
		var terms []Expr
		for i, f := range o.fs {
			df := Diff(f, name)
			if IsZero(df) {
				continue
			}
			xs := []Expr{build(o.c, o.r2, nil), df}
			xs = append(xs, o.fs[:i]...)
			xs = append(xs, o.fs[i+1:]...)
			terms = append(terms, Mul(xs...))
		}
		return Add(terms...)
	case inv:
		dx := Diff(o.x, name)
		if IsZero(dx) {
			return num{0}
		}
		return Mul(num{-1}, o, o, dx)
	case minmax:
		return diffActive(o.max, o.args, o.args, name)
	case pick:
		return diffActive(o.max, o.args, o.ds, name)
	}
	return num{0}
}

// diffActive differentiates the expressions selected by the active argument
func diffActive(max bool, args, exprs []Expr, name string) Expr {
	ds := make([]Expr, len(exprs))
	zero := true
	for i, x := range exprs {
		ds[i] = Diff(x, name)
		if !IsZero(ds[i]) {
			zero = false
		}
	}
	if zero {
		return num{0}
	}
	return pick{max, args, ds}
}
