// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/cpmech/gorheo/sym"
	"gonum.org/v1/gonum/mat"
)

// Scale returns α * a
func Scale(α sym.Expr, a Matrix) Matrix {
	res := make(Matrix, len(a))
	for i, row := range a {
		res[i] = make([]sym.Expr, len(row))
		for j, e := range row {
			res[i][j] = sym.Mul(α, e)
		}
	}
	return res
}

// Scale4 returns α * t
func Scale4(α sym.Expr, t Rank4) Rank4 {
	res := Clone4(t)
	each4(res, func(i, j, k, l int) {
		res[i][j][k][l] = sym.Mul(α, t[i][j][k][l])
	})
	return res
}

// Add4 returns α*a + β*b
func Add4(α sym.Expr, a Rank4, β sym.Expr, b Rank4) (Rank4, error) {
	if err := Check4(b, len(a), "second tensor"); err != nil {
		return nil, err
	}
	res := Clone4(a)
	each4(res, func(i, j, k, l int) {
		res[i][j][k][l] = sym.Add(sym.Mul(α, a[i][j][k][l]), sym.Mul(β, b[i][j][k][l]))
	})
	return res, nil
}

// SimplifyMat simplifies all components of a
func SimplifyMat(a Matrix) Matrix {
	res := CloneMat(a)
	for i, row := range res {
		for j, e := range row {
			res[i][j] = sym.Simplify(e)
		}
	}
	return res
}

// Simplify4 simplifies all components of t
func Simplify4(t Rank4) Rank4 {
	res := Clone4(t)
	each4(res, func(i, j, k, l int) {
		res[i][j][k][l] = sym.Simplify(t[i][j][k][l])
	})
	return res
}

// EqualMat tells whether a and b have the same shape and equivalent components
func EqualMat(a, b Matrix) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
		for j := range a[i] {
			if !sym.Equal(a[i][j], b[i][j]) {
				return false
			}
		}
	}
	return true
}

// Equal4 tells whether a and b have the same shape and equivalent components
func Equal4(a, b Rank4) bool {
	if Check4(b, len(a), "") != nil || Check4(a, len(a), "") != nil {
		return false
	}
	equal := true
	each4(a, func(i, j, k, l int) {
		if equal && !sym.Equal(a[i][j][k][l], b[i][j][k][l]) {
			equal = false
		}
	})
	return equal
}

// Contract42 computes the double contraction of a 4th order tensor with a 2nd order tensor
//  F_ij = Σ_kl c_ijkl g_kl
func Contract42(c Rank4, g Matrix) (Matrix, error) {
	d := len(c)
	if err := Check4(c, d, "rank-4 tensor"); err != nil {
		return nil, err
	}
	if err := CheckMat(g, d, d, "gradient"); err != nil {
		return nil, err
	}
	res := Zeros(d, d)
	terms := make([]sym.Expr, 0, d*d)
	for i := 0; i < d; i++ {
		for j := 0; j < d; j++ {
			terms = terms[:0]
			for k := 0; k < d; k++ {
				for l := 0; l < d; l++ {
					terms = append(terms, sym.Mul(c[i][j][k][l], g[k][l]))
				}
			}
			res[i][j] = sym.Add(terms...)
		}
	}
	return res, nil
}

// MatMulT computes c · gᵀ
//  c -- [m][n]
//  g -- [p][n]; e.g. a row-vector gradient [1][n]
//  res -- [m][p]
func MatMulT(c, g Matrix) (Matrix, error) {
	if len(c) == 0 {
		return nil, shapeErr("matrix must not be empty")
	}
	n := len(c[0])
	if err := CheckMat(c, len(c), n, "matrix"); err != nil {
		return nil, err
	}
	if err := CheckMat(g, len(g), n, "gradient"); err != nil {
		return nil, err
	}
	res := Zeros(len(c), len(g))
	terms := make([]sym.Expr, n)
	for i := range c {
		for q := range g {
			for j := 0; j < n; j++ {
				terms[j] = sym.Mul(c[i][j], g[q][j])
			}
			res[i][q] = sym.Add(terms...)
		}
	}
	return res, nil
}

// numeric evaluation /////////////////////////////////////////////////////////////////////////////

// EvalMatrix evaluates all components of a
func EvalMatrix(a Matrix, env sym.Env) (*mat.Dense, error) {
	if len(a) == 0 || len(a[0]) == 0 {
		return nil, shapeErr("matrix must not be empty")
	}
	if err := CheckMat(a, len(a), len(a[0]), "matrix"); err != nil {
		return nil, err
	}
	res := mat.NewDense(len(a), len(a[0]), nil)
	for i, row := range a {
		for j, e := range row {
			v, err := e.Eval(env)
			if err != nil {
				return nil, err
			}
			res.Set(i, j, v)
		}
	}
	return res, nil
}

// Eval4 evaluates all components of t
func Eval4(t Rank4, env sym.Env) (res [][][][]float64, err error) {
	d := len(t)
	if err = Check4(t, d, "rank-4 tensor"); err != nil {
		return
	}
	res = make([][][][]float64, d)
	for i := 0; i < d; i++ {
		res[i] = make([][][]float64, d)
		for j := 0; j < d; j++ {
			res[i][j] = make([][]float64, d)
			for k := 0; k < d; k++ {
				res[i][j][k] = make([]float64, d)
				for l := 0; l < d; l++ {
					res[i][j][k][l], err = t[i][j][k][l].Eval(env)
					if err != nil {
						return nil, err
					}
				}
			}
		}
	}
	return
}

// each4 runs f over all indices of t
func each4(t Rank4, f func(i, j, k, l int)) {
	for i := range t {
		for j := range t[i] {
			for k := range t[i][j] {
				for l := range t[i][j][k] {
					f(i, j, k, l)
				}
			}
		}
	}
}
