// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import "github.com/cpmech/gorheo/sym"

// IdxMap maps each Mandel row/column to a pair of tensor indices
//  2D: 00 11 01
//  3D: 00 11 22 12 02 01
var IdxMap = map[int][][2]int{
	2: {{0, 0}, {1, 1}, {0, 1}},
	3: {{0, 0}, {1, 1}, {2, 2}, {1, 2}, {0, 2}, {0, 1}},
}

// pair2mandel maps (i,j) and (j,i) to the Mandel index; [d][i][j]
var pair2mandel = map[int][][]int{}

func init() {
	for d, pairs := range IdxMap {
		m := make([][]int, d)
		for i := range m {
			m[i] = make([]int, d)
		}
		for I, p := range pairs {
			m[p[0]][p[1]] = I
			m[p[1]][p[0]] = I
		}
		pair2mandel[d] = m
	}
}

// Nmandel returns the number of Mandel components: 3 in 2D and 6 in 3D
func Nmandel(d int) (int, error) {
	if err := checkDim(d); err != nil {
		return 0, err
	}
	return len(IdxMap[d]), nil
}

// mandelFactor returns 1 for normal components and √2 for shear components
func mandelFactor(p [2]int) sym.Expr {
	if p[0] == p[1] {
		return sym.N(1)
	}
	return sym.Sqrt2
}

// Rank4ToMandel compresses a minor-symmetric 4th order tensor into its Mandel matrix
//  C_IJ = f_I f_J t_ijkl  with f = 1 (normal) or √2 (shear)
//  Note: the minor symmetries of t are assumed, not checked
func Rank4ToMandel(t Rank4, d int) (Matrix, error) {
	n, err := Nmandel(d)
	if err != nil {
		return nil, err
	}
	if err = Check4(t, d, "rank-4 tensor"); err != nil {
		return nil, err
	}
	pairs := IdxMap[d]
	res := Zeros(n, n)
	for I, p := range pairs {
		for J, q := range pairs {
			res[I][J] = sym.Mul(mandelFactor(p), mandelFactor(q), t[p[0]][p[1]][q[0]][q[1]])
		}
	}
	return res, nil
}

// MandelToRank4 expands a Mandel matrix into the corresponding minor-symmetric 4th order tensor
//  t_ijkl = C_IJ / (f_I f_J)
func MandelToRank4(m Matrix, d int) (Rank4, error) {
	n, err := Nmandel(d)
	if err != nil {
		return nil, err
	}
	if err = CheckMat(m, n, n, "Mandel matrix"); err != nil {
		return nil, err
	}
	pairs := IdxMap[d]
	idx := pair2mandel[d]
	res := Zeros4(d)
	for i := 0; i < d; i++ {
		for j := 0; j < d; j++ {
			I := idx[i][j]
			for k := 0; k < d; k++ {
				for l := 0; l < d; l++ {
					J := idx[k][l]
					res[i][j][k][l] = sym.Div(m[I][J], sym.Mul(mandelFactor(pairs[I]), mandelFactor(pairs[J])))
				}
			}
		}
	}
	return res, nil
}
