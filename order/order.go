// Package order computes the nematic order parameter of a set of segments.
//
// The pairwise tensor built here is N×N for N segments, and it is fully
// diagonalized. Memory grows as N² and time as N³, which is fine for
// the few thousand cylinders of a typical network snapshot, but dominates the
// analysis of larger systems.
package order

import (
	"fmt"

	cyto "github.com/cytoskel/cytotraj"
	v3 "github.com/cytoskel/cytotraj/v3"
	"gonum.org/v1/gonum/mat"
)

// Tensor returns the N×N pairwise order tensor of the given unit vectors, with elements
// Q[a][b] = (1.5 dirs[a]·dirs[b] - 0.5 δab)/N. dirs must not be empty.
func Tensor(dirs [][3]float64) *mat.SymDense {
	n := len(dirs)
	q := mat.NewSymDense(n, nil)
	fn := float64(n)
	for a := 0; a < n; a++ {
		for b := a; b < n; b++ {
			v := 1.5 * v3.Dot3(dirs[a], dirs[b])
			if a == b {
				v -= 0.5
			}
			q.SetSym(a, b, v/fn)
		}
	}
	return q
}

// LargestEigenvalue returns the largest eigenvalue of the symmetric matrix q.
func LargestEigenvalue(q *mat.SymDense) (float64, error) {
	var eig mat.EigenSym
	if ok := eig.Factorize(q, false); !ok {
		r, _ := q.Dims()
		return 0, fmt.Errorf("order: eigendecomposition of the %dx%d tensor failed", r, r)
	}
	vals := eig.Values(nil) //ascending order
	return vals[len(vals)-1], nil
}

// Saupe returns the order parameter of the given unit vectors: 1 when all are parallel
// (or antiparallel), 0 for an isotropic set. It is not the largest eigenvalue λ of
// the pairwise tensor itself, but λ-(N-1)/(2N): for N vectors λ is 1.5-0.5/N when
// they are parallel and 0.5-0.5/N when they are isotropic, and the shift takes
// those to 1 and 0. With less than 2 vectors the result is 1.
func Saupe(dirs [][3]float64) (float64, error) {
	n := len(dirs)
	if n < 2 {
		return 1.0, nil
	}
	l, err := LargestEigenvalue(Tensor(dirs))
	if err != nil {
		return 0, err
	}
	return l - float64(n-1)/float64(2*n), nil
}

// Parameter returns the order parameter of the given cylinders, which are
// sorted by id so the tensor is always built in the same order.
// The value is the largest eigenvalue of Tensor shifted by -(N-1)/(2N), as in Saupe,
// so it goes from 0 (isotropic) to 1 (aligned).
// A cylinder with zero length is an error.
func Parameter(cyls []*cyto.Cylinder) (float64, error) {
	if len(cyls) < 2 {
		return 1.0, nil
	}
	sorted := make([]*cyto.Cylinder, len(cyls))
	copy(sorted, cyls)
	sortByID(sorted)
	dirs := make([][3]float64, len(sorted))
	for i, c := range sorted {
		d, err := c.Direction()
		if err != nil {
			return 0, cyto.ErrDecorate(err, "Parameter")
		}
		dirs[i] = d
	}
	return Saupe(dirs)
}

// SnapshotParameter returns the order parameter of all the cylinders in S.
func SnapshotParameter(S *cyto.Snapshot) (float64, error) {
	p, err := Parameter(S.SortedCylinders())
	if err != nil {
		return 0, cyto.ErrDecorate(err, fmt.Sprintf("SnapshotParameter: step %g", S.Step))
	}
	return p, nil
}
