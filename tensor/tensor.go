// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package tensor implements symbolic 2nd and 4th order tensors over 2D or 3D space
package tensor

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cpmech/gorheo/sym"
	"github.com/cpmech/gosl/chk"
)

// ErrShape is returned when a tensor or matrix has the wrong rank or size
var ErrShape = errors.New("tensor: shape mismatch")

// Vector holds symbolic components
type Vector []sym.Expr

// Matrix holds a symbolic 2nd order tensor or a matrix [nrow][ncol]
type Matrix [][]sym.Expr

// Rank4 holds a symbolic 4th order tensor [d][d][d][d]
type Rank4 [][][][]sym.Expr

// Tensor holds either a 2nd order (R2) or a 4th order (R4) tensor
type Tensor struct {
	R2 Matrix
	R4 Rank4
}

// Rank returns 2 or 4, or 0 if empty
func (o Tensor) Rank() int {
	switch {
	case o.R4 != nil:
		return 4
	case o.R2 != nil:
		return 2
	}
	return 0
}

// Clone returns a copy of this tensor
func (o Tensor) Clone() Tensor {
	return Tensor{R2: CloneMat(o.R2), R4: Clone4(o.R4)}
}

// shapeErr returns an error wrapping ErrShape
func shapeErr(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrShape, fmt.Sprintf(format, args...))
}

// checkDim checks the spatial dimension
func checkDim(d int) error {
	if d != 2 && d != 3 {
		return shapeErr("space dimension must be 2 or 3; got %d", d)
	}
	return nil
}

// mustDim panics if d is not a valid spatial dimension
func mustDim(d int) {
	if err := checkDim(d); err != nil {
		chk.Panic("%v", err)
	}
}

// allocation /////////////////////////////////////////////////////////////////////////////////////

// Zeros returns a matrix filled with zeros
func Zeros(m, n int) Matrix {
	res := make(Matrix, m)
	for i := 0; i < m; i++ {
		res[i] = make([]sym.Expr, n)
		for j := 0; j < n; j++ {
			res[i][j] = sym.N(0)
		}
	}
	return res
}

// Zeros4 returns a 4th order tensor filled with zeros
func Zeros4(d int) Rank4 {
	res := make(Rank4, d)
	for i := 0; i < d; i++ {
		res[i] = make([][][]sym.Expr, d)
		for j := 0; j < d; j++ {
			res[i][j] = make([][]sym.Expr, d)
			for k := 0; k < d; k++ {
				res[i][j][k] = make([]sym.Expr, d)
				for l := 0; l < d; l++ {
					res[i][j][k][l] = sym.N(0)
				}
			}
		}
	}
	return res
}

// NewVector returns a vector with numeric components
func NewVector(v ...float64) Vector {
	res := make(Vector, len(v))
	for i, x := range v {
		res[i] = sym.N(x)
	}
	return res
}

// NewMatrix returns a matrix with numeric components
func NewMatrix(a [][]float64) Matrix {
	res := make(Matrix, len(a))
	for i, row := range a {
		res[i] = make([]sym.Expr, len(row))
		for j, x := range row {
			res[i][j] = sym.N(x)
		}
	}
	return res
}

// CloneMat returns a copy of m; nil if m is nil
func CloneMat(m Matrix) Matrix {
	if m == nil {
		return nil
	}
	res := make(Matrix, len(m))
	for i, row := range m {
		res[i] = append([]sym.Expr{}, row...)
	}
	return res
}

// Clone4 returns a copy of t; nil if t is nil
func Clone4(t Rank4) Rank4 {
	if t == nil {
		return nil
	}
	res := make(Rank4, len(t))
	for i := range t {
		res[i] = make([][][]sym.Expr, len(t[i]))
		for j := range t[i] {
			res[i][j] = make([][]sym.Expr, len(t[i][j]))
			for k := range t[i][j] {
				res[i][j][k] = append([]sym.Expr{}, t[i][j][k]...)
			}
		}
	}
	return res
}

// identities /////////////////////////////////////////////////////////////////////////////////////

// delta returns the Kronecker delta
func delta(i, j int) float64 {
	if i == j {
		return 1
	}
	return 0
}

// Identity2 returns the 2nd order identity tensor δij
//  Note: d must be 2 or 3; otherwise it panics
func Identity2(d int) Matrix {
	mustDim(d)
	res := Zeros(d, d)
	for i := 0; i < d; i++ {
		res[i][i] = sym.N(1)
	}
	return res
}

// Identity4 returns the symmetric 4th order identity tensor
//  I_ijkl = ½ (δik δjl + δil δjk)
//  Note: d must be 2 or 3; otherwise it panics
func Identity4(d int) Rank4 {
	mustDim(d)
	res := Zeros4(d)
	for i := 0; i < d; i++ {
		for j := 0; j < d; j++ {
			for k := 0; k < d; k++ {
				for l := 0; l < d; l++ {
					res[i][j][k][l] = sym.N(0.5 * (delta(i, k)*delta(j, l) + delta(i, l)*delta(j, k)))
				}
			}
		}
	}
	return res
}

// checking ///////////////////////////////////////////////////////////////////////////////////////

// CheckMat checks that a has m×n components
func CheckMat(a Matrix, m, n int, name string) error {
	if len(a) != m {
		return shapeErr("%s must have %d rows; got %d", name, m, len(a))
	}
	for i, row := range a {
		if len(row) != n {
			return shapeErr("%s must have %d columns; row %d has %d", name, n, i, len(row))
		}
	}
	return nil
}

// Check4 checks that t has d×d×d×d components
func Check4(t Rank4, d int, name string) error {
	if len(t) != d {
		return shapeErr("%s must be %d×%d×%d×%d", name, d, d, d, d)
	}
	for i := range t {
		if len(t[i]) != d {
			return shapeErr("%s must be %d×%d×%d×%d", name, d, d, d, d)
		}
		for j := range t[i] {
			if len(t[i][j]) != d {
				return shapeErr("%s must be %d×%d×%d×%d", name, d, d, d, d)
			}
			for k := range t[i][j] {
				if len(t[i][j][k]) != d {
					return shapeErr("%s must be %d×%d×%d×%d", name, d, d, d, d)
				}
			}
		}
	}
	return nil
}

// printing ///////////////////////////////////////////////////////////////////////////////////////

// String returns a text representation of this matrix
func (o Matrix) String() string {
	var b strings.Builder
	for _, row := range o {
		l := make([]string, len(row))
		for j, e := range row {
			l[j] = e.String()
		}
		b.WriteString("[" + strings.Join(l, ", ") + "]\n")
	}
	return b.String()
}
