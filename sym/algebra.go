// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sym

import (
	"math"
	"sort"
	"strings"
)

// Add returns the canonical sum of all xs
func Add(xs ...Expr) Expr {
	type group struct {
		c  float64
		r2 bool
		fs []Expr
	}
	var keys []string
	groups := make(map[string]*group)
	var collect func(x Expr)
	collect = func(x Expr) {
		if s, ok := x.(sum); ok {
			for _, t := range s.terms {
				collect(t)
			}
			return
		}
		c, r2, fs := split(x)
		if c == 0 {
			return
		}
		k := key(r2, fs)
		g, ok := groups[k]
		if !ok {
			g = &group{r2: r2, fs: fs}
			groups[k] = g
			keys = append(keys, k)
		}
		g.c += c
	}
	for _, x := range xs {
		collect(x)
	}
	var terms []Expr
	var cte Expr
	for _, k := range keys {
		g := groups[k]
		if g.c == 0 {
			continue
		}
		t := build(g.c, g.r2, g.fs)
		if k == "" {
			cte = t
			continue
		}
		terms = append(terms, t)
	}
	if cte != nil {
		terms = append(terms, cte)
	}
	switch len(terms) {
	case 0:
		return num{0}
	case 1:
		return terms[0]
	}
	return sum{terms}
}

// Sub returns a - b
func Sub(a, b Expr) Expr { return Add(a, Neg(b)) }

// Neg returns -a
func Neg(a Expr) Expr { return Mul(num{-1}, a) }

// Mul returns the canonical product of all xs; products are distributed over sums
func Mul(xs ...Expr) Expr {
	c, r2 := 1.0, false
	var fs []Expr
	var sums []sum
	for _, x := range xs {
		if s, ok := x.(sum); ok {
			sums = append(sums, s)
			continue
		}
		cx, rx, fx := split(x)
		c *= cx
		if rx {
			if r2 {
				c *= 2
			}
			r2 = !r2
		}
		fs = append(fs, fx...)
	}
	if c == 0 {
		return num{0}
	}
	acc := build(c, r2, cancel(fs))
	for _, s := range sums {
		terms := make([]Expr, len(s.terms))
		for i, t := range s.terms {
			terms[i] = Mul(acc, t)
		}
		acc = Add(terms...)
	}
	return acc
}

// Div returns a / b
func Div(a, b Expr) Expr { return Mul(a, reciprocal(b)) }

// Max returns max(xs...)
func Max(xs ...Expr) Expr { return extremum(true, xs) }

// Min returns min(xs...)
func Min(xs ...Expr) Expr { return extremum(false, xs) }

// Simplify rebuilds e through the canonical constructors
func Simplify(e Expr) Expr {
	switch o := e.(type) {
	case sum:
		terms := make([]Expr, len(o.terms))
		for i, t := range o.terms {
			terms[i] = Simplify(t)
		}
		return Add(terms...)
	case prod:
		fs := []Expr{build(o.c, o.r2, nil)}
		for _, f := range o.fs {
			fs = append(fs, Simplify(f))
		}
		return Mul(fs...)
	case inv:
		return reciprocal(Simplify(o.x))
	case minmax:
		args := make([]Expr, len(o.args))
		for i, a := range o.args {
			args[i] = Simplify(a)
		}
		return extremum(o.max, args)
	}
	return e
}

// Equal tells whether a and b are symbolically equivalent
func Equal(a, b Expr) bool {
	return IsZero(Sub(a, b))
}

// auxiliary //////////////////////////////////////////////////////////////////////////////////////

// split decomposes e into coefficient, √2 flag and non-constant factors
func split(e Expr) (c float64, r2 bool, fs []Expr) {
	switch o := e.(type) {
	case num:
		return o.v, false, nil
	case prod:
		return o.c, o.r2, o.fs
	}
	return 1, false, []Expr{e}
}

// build assembles the canonical product c * (√2 if r2) * fs...
func build(c float64, r2 bool, fs []Expr) Expr {
	if c == 0 {
		return num{0}
	}
	if len(fs) == 0 && !r2 {
		return num{c}
	}
	if len(fs) == 1 && c == 1 && !r2 {
		return fs[0]
	}
	sorted := make([]Expr, len(fs))
	copy(sorted, fs)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].String() < sorted[j].String() })
	return prod{c, r2, sorted}
}

// key returns the like-term key of a product
func key(r2 bool, fs []Expr) (k string) {
	if r2 {
		k = "√2"
	}
	for _, f := range canons(fs) {
		k += "·" + f
	}
	return
}

// canon returns a text key of e that does not depend on the order of terms, factors or arguments
func canon(e Expr) string {
	switch o := e.(type) {
	case sum:
		return "+(" + strings.Join(canons(o.terms), ",") + ")"
	case prod:
		k := num{o.c}.String()
		if o.r2 {
			k += "·√2"
		}
		return "*(" + k + ";" + strings.Join(canons(o.fs), ",") + ")"
	case inv:
		return "1/(" + canon(o.x) + ")"
	case minmax:
		return fname(o.max) + "(" + strings.Join(canons(o.args), ",") + ")"
	case pick:
		l := make([]string, len(o.args))
		for i := range o.args {
			l[i] = canon(o.args[i]) + ":" + canon(o.ds[i])
		}
		sort.Strings(l)
		return "d" + fname(o.max) + "(" + strings.Join(l, ",") + ")"
	}
	return e.String()
}

// canons returns the sorted canonical keys of all xs
func canons(xs []Expr) []string {
	l := make([]string, len(xs))
	for i, x := range xs {
		l[i] = canon(x)
	}
	sort.Strings(l)
	return l
}

// cancel removes pairs x * 1/x from a list of factors
func cancel(fs []Expr) []Expr {
	res := make([]Expr, 0, len(fs))
	used := make([]bool, len(fs))
	for i, f := range fs {
		if used[i] {
			continue
		}
		found := false
		for j := i + 1; j < len(fs); j++ {
			if used[j] {
				continue
			}
			if reciprocals(f, fs[j]) {
				used[j], found = true, true
				break
			}
		}
		if !found {
			res = append(res, f)
		}
	}
	return res
}

// reciprocals tells whether a == 1/b
func reciprocals(a, b Expr) bool {
	if d, ok := a.(inv); ok && canon(d.x) == canon(b) {
		return true
	}
	if d, ok := b.(inv); ok && canon(d.x) == canon(a) {
		return true
	}
	return false
}

// reciprocal returns 1/b distributing the inverse over products
func reciprocal(b Expr) Expr {
	c, r2, fs := split(b)
	if c == 0 {
		return num{math.Inf(1)}
	}
	xs := make([]Expr, 0, len(fs)+1)
	if r2 {
		xs = append(xs, build(1/(2*c), true, nil))
	} else {
		xs = append(xs, num{1 / c})
	}
	for _, f := range fs {
		if d, ok := f.(inv); ok {
			xs = append(xs, d.x)
			continue
		}
		xs = append(xs, inv{f})
	}
	return Mul(xs...)
}

// extremum builds max(xs...) or min(xs...) folding constants and repeated arguments
func extremum(max bool, xs []Expr) Expr {
	var args []Expr
	var cte *float64
	seen := make(map[string]bool)
	var collect func(x Expr)
	collect = func(x Expr) {
		if m, ok := x.(minmax); ok && m.max == max {
			for _, a := range m.args {
				collect(a)
			}
			return
		}
		if v, ok := Value(x); ok {
			if cte == nil || (max && v > *cte) || (!max && v < *cte) {
				cte = &v
			}
			return
		}
		s := canon(x)
		if seen[s] {
			return
		}
		seen[s] = true
		args = append(args, x)
	}
	for _, x := range xs {
		collect(x)
	}
	if cte != nil {
		args = append(args, num{*cte})
	}
	switch len(args) {
	case 0:
		return num{0}
	case 1:
		return args[0]
	}
	return minmax{max, args}
}
