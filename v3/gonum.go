/*
 * gonum.go, part of cytotraj.
 *
 * Copyright 2026 The cytotraj authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

//gonum.go contains what is needed for handling the gonum/mat types.
//All the *Vec functions operate on row vectors, i.e. each row is one point in space.

package v3

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
)

const appzero float64 = 0.000000000001 //used to correct floating point
//errors. Everything equal or less than this is considered zero.

// Matrix is a set of vectors in 3D space. It embeds a gonum Dense, so it can be
// used in any gonum function taking a mat.Matrix.
// Within the package it is understood that a "vector" is a row vector, i.e. the
// cartesian coordinates of a point in 3D space.
type Matrix struct {
	*mat.Dense
}

// Zeros returns a zero-filled Matrix with vecs vectors and 3 in the other dimension.
// vecs must be larger than 0.
func Zeros(vecs int) *Matrix {
	const cols int = 3
	f := make([]float64, cols*vecs)
	return &Matrix{mat.NewDense(vecs, cols, f)}
}

// NewMatrix generates and returns a Matrix with 3 columns from data.
// The data slice is used as the backing storage, it is not copied.
func NewMatrix(data []float64) (*Matrix, error) {
	const cols int = 3
	l := len(data)
	rows := l / cols
	if l%cols != 0 {
		return nil, Error{fmt.Sprintf("Input slice length %d not divisible by %d: %d", l, cols, l%cols), []string{"NewMatrix"}, true}
	}
	if rows == 0 {
		return nil, Error{"Input slice is empty", []string{"NewMatrix"}, true}
	}
	return &Matrix{mat.NewDense(rows, cols, data)}, nil
}

// FromVecs builds a new Matrix from a slice of points. The data is copied.
func FromVecs(vecs [][3]float64) (*Matrix, error) {
	if len(vecs) == 0 {
		return nil, Error{"No vectors given", []string{"FromVecs"}, true}
	}
	F := Zeros(len(vecs))
	for i, v := range vecs {
		F.SetVec(i, v)
	}
	return F, nil
}

// NVecs returns the number of vecs in F.
func (F *Matrix) NVecs() int {
	r, c := F.Dims()
	if c != 3 {
		panic(ErrNotXx3Matrix)
	}
	return r
}

// Len is the same as NVecs.
func (F *Matrix) Len() int {
	return F.NVecs()
}

// View returns a view of F spanning the vectors from i (inclusive) to j (exclusive).
func (F *Matrix) View(i, j int) *Matrix {
	r := F.Dense.Slice(i, j, 0, 3).(*mat.Dense)
	return &Matrix{r}
}

// Vec returns a copy of the ith vector of F.
func (F *Matrix) Vec(i int) [3]float64 {
	var ret [3]float64
	copy(ret[:], F.Dense.RawRowView(i))
	return ret
}

// SetVec sets the ith vector of F to v.
func (F *Matrix) SetVec(i int, v [3]float64) {
	copy(F.Dense.RawRowView(i), v[:])
}

// Vecs returns a copy of all the vectors of F.
func (F *Matrix) Vecs() [][3]float64 {
	ret := make([][3]float64, F.NVecs())
	for i := range ret {
		ret[i] = F.Vec(i)
	}
	return ret
}

// Stack returns a new Matrix with the vectors of all the given matrices, in order.
func Stack(ms ...*Matrix) (*Matrix, error) {
	n := 0
	for _, m := range ms {
		n += m.NVecs()
	}
	if n == 0 {
		return nil, Error{"No vectors given", []string{"Stack"}, true}
	}
	S := Zeros(n)
	off := 0
	for _, m := range ms {
		l := m.NVecs()
		S.View(off, off+l).Copy(m)
		off += l
	}
	return S, nil
}

// Clone returns a deep copy of F.
func (F *Matrix) Clone() *Matrix {
	return &Matrix{mat.DenseCopyOf(F.Dense)}
}

// Centroid returns the geometric center of the vectors in F.
// F must not be empty.
func (F *Matrix) Centroid() [3]float64 {
	var c [3]float64
	n := F.NVecs()
	for i := 0; i < n; i++ {
		r := F.RawRowView(i)
		c[0] += r[0]
		c[1] += r[1]
		c[2] += r[2]
	}
	return Scale3(c, 1/float64(n))
}

// String returns a neat string representation of a Matrix.
func (F *Matrix) String() string {
	r, _ := F.Dims()
	v := make([]string, 0, r+2)
	v = append(v, "\n[")
	for i := 0; i < r; i++ {
		row := F.RawRowView(i)
		sep := " "
		if i == 0 {
			sep = ""
		}
		v = append(v, fmt.Sprintf("%s%6.2f %6.2f %6.2f", sep, row[0], row[1], row[2]))
	}
	return strings.Join(v, "\n") + " ]"
}

//Errors

// Error is the error type for the v3 package.
type Error struct {
	message  string
	deco     []string
	critical bool
}

// Error returns a string with an error message.
func (err Error) Error() string {
	return fmt.Sprintf("cytotraj/v3: %s", err.message)
}

// Decorate will add the dec string to the decoration slice of strings of the error,
// and return the resulting slice.
func (err Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// Critical return whether the error is critical or it can be ignored
func (err Error) Critical() bool { return err.critical }

// PanicMsg is a message used for panics, even though it does satisfy the error interface.
// for errors use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

// ErrNotXx3Matrix is the panic message for matrices that don't have 3 columns.
const ErrNotXx3Matrix = PanicMsg("cytotraj/v3: A Matrix should have 3 columns")
