/*
 * mcs.go, part of cytotraj.
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

// Package mcs finds the minimum covering sphere of a set of points in 3D.
//
// The solver is the move-to-front algorithm of Welzl with the pivoting
// of Gärtner (B. Gärtner, Fast and robust smallest enclosing balls, ESA 1999).
// A support set of at most 4 points is kept on the boundary of the current
// sphere. Points found outside are added to the support set and moved to the
// front of the list, so the few points that determine the sphere are tested
// first. The recursion is never deeper than the size of the support set.
package mcs

import (
	"context"
	"math"

	cyto "github.com/cytoskel/cytotraj"
	v3 "github.com/cytoskel/cytotraj/v3"
)

// DefaultTolerance is the default relative tolerance for the solver.
const DefaultTolerance = 1e-10

// Options contains the tunable parameters of the solver.
type Options struct {
	tolerance float64
	maxIter   int
}

// DefaultOptions returns an Options with the default values.
func DefaultOptions() *Options {
	return &Options{tolerance: DefaultTolerance}
}

// Tolerance returns the current relative tolerance, and sets it, if
// a positive value is given. A point is outside the sphere only if its squared
// distance to the center exceeds the squared radius by more than tolerance times
// the squared radius.
func (o *Options) Tolerance(tol ...float64) float64 {
	ret := o.tolerance
	if len(tol) > 0 && tol[0] > 0 {
		o.tolerance = tol[0]
	}
	return ret
}

// MaxIter returns the maximum number of pivoting rounds, and sets it if a value is given.
// A value < 1 means 64+8n, n being the number of points.
func (o *Options) MaxIter(n ...int) int {
	ret := o.maxIter
	if len(n) > 0 {
		o.maxIter = n[0]
	}
	return ret
}

// Sphere returns the center and radius of the smallest sphere that contains all the
// given points. Only an empty set of points is an error.
func Sphere(points *v3.Matrix, options ...*Options) ([3]float64, float64, error) {
	return SphereContext(context.Background(), points, options...)
}

// SphereContext is Sphere, but stops with ctx.Err() when ctx is done.
func SphereContext(ctx context.Context, points *v3.Matrix, options ...*Options) ([3]float64, float64, error) {
	if points == nil {
		return [3]float64{}, 0, cyto.NewDegenerateInputError("Sphere", "no points given")
	}
	return sphere(ctx, points.Vecs(), options...)
}

// SphereVecs is SphereContext for a slice of points.
func SphereVecs(ctx context.Context, points [][3]float64, options ...*Options) ([3]float64, float64, error) {
	return sphere(ctx, points, options...)
}

func sphere(ctx context.Context, pts [][3]float64, options ...*Options) ([3]float64, float64, error) {
	o := DefaultOptions()
	if len(options) > 0 && options[0] != nil {
		o = options[0]
	}
	n := len(pts)
	if n == 0 {
		return [3]float64{}, 0, cyto.NewDegenerateInputError("Sphere", "no points given")
	}
	maxiter := o.maxIter
	if maxiter < 1 {
		maxiter = 64 + 8*n
	}
	s := newSolver(pts, o.tolerance)
	if err := s.pivot(ctx, maxiter); err != nil {
		return [3]float64{}, 0, err
	}
	center := s.b.center
	var radius float64
	for _, p := range pts {
		radius = math.Max(radius, v3.Dist3(center, p))
	}
	return center, radius, nil
}

type solver struct {
	pts   [][3]float64
	order []int //indexes of pts, the most recently moved to the front go first.
	se    int   //the first se elements of order form the support region.
	tol   float64
	b     basis
}

func newSolver(pts [][3]float64, tol float64) *solver {
	order := make([]int, len(pts))
	for i := range order {
		order[i] = i
	}
	return &solver{pts: pts, order: order, tol: tol, b: basis{tol: tol, sqr: -1}}
}

// excess returns how far, in squared distance, p lies outside the current sphere,
// beyond the tolerance. Any positive value means p is outside.
func (s *solver) excess(p [3]float64) float64 {
	return sqDist(p, s.b.center) - s.b.sqr - s.tol*math.Max(s.b.sqr, 0)
}

// toFront moves the kth element of order to the front.
func (s *solver) toFront(k int) {
	if k >= s.se {
		s.se++
	}
	i := s.order[k]
	copy(s.order[1:k+1], s.order[:k])
	s.order[0] = i
}

// mtf leaves in s.b the smallest sphere that contains the first end points of
// order and has the pushed points on its boundary.
func (s *solver) mtf(end int) {
	s.se = 0
	if s.b.m == len(s.b.c) {
		return
	}
	for k := 0; k < end; k++ {
		p := s.pts[s.order[k]]
		if s.excess(p) > 0 && s.b.push(p) {
			s.mtf(k)
			s.b.pop()
			s.toFront(k)
		}
	}
}

// pivot grows the sphere from the first point. In each round, the point farthest
// outside the sphere is pushed and a sphere is built over it and the support region.
// It stops when no point is outside, or when the sphere stops growing.
func (s *solver) pivot(ctx context.Context, maxiter int) error {
	s.mtf(1)
	for iter := 0; iter < maxiter; iter++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		k, e := -1, 0.0
		//the support region is inside the sphere already.
		for j := s.se; j < len(s.order); j++ {
			if ej := s.excess(s.pts[s.order[j]]); ej > e {
				k, e = j, ej
			}
		}
		if k < 0 {
			return nil
		}
		old := s.b.sqr
		s.b.push(s.pts[s.order[k]])
		s.mtf(s.se)
		s.b.pop()
		s.toFront(k)
		if s.b.sqr <= old {
			return nil
		}
	}
	return nil
}

// basis is the set of points pushed so far, all on the boundary of the sphere they
// determine. c[i] and r2[i] are the center and squared radius of the smallest sphere
// with the first i+1 pushed points on its boundary. The vectors v[i] are the pushed
// points minus the first one, orthogonalized against each other.
// center and sqr are the last sphere computed, which pop leaves in place.
type basis struct {
	m      int
	q0     [3]float64
	v      [4][3]float64
	z      [4]float64
	c      [4][3]float64
	r2     [4]float64
	center [3]float64
	sqr    float64
	tol    float64
}

// push adds p to the basis. It returns false, and does nothing, if p is
// affinely dependent on the points already in the basis, or if the basis is full.
func (b *basis) push(p [3]float64) bool {
	m := b.m
	switch {
	case m == len(b.c):
		return false
	case m == 0:
		b.q0 = p
		b.c[0] = p
		b.r2[0] = 0
	default:
		v := v3.Sub3(p, b.q0)
		for i := 1; i < m; i++ {
			v = v3.Sub3(v, v3.Scale3(b.v[i], 2*v3.Dot3(b.v[i], v)/b.z[i]))
		}
		z := 2 * v3.Dot3(v, v)
		if z <= b.tol*b.tol*math.Max(b.sqr, 0) || z == 0 {
			return false
		}
		e := sqDist(p, b.c[m-1]) - b.r2[m-1]
		f := e / z
		b.v[m] = v
		b.z[m] = z
		b.c[m] = v3.Add3(b.c[m-1], v3.Scale3(v, f))
		b.r2[m] = b.r2[m-1] + e*f/2
	}
	b.center, b.sqr = b.c[m], b.r2[m]
	b.m++
	return true
}

func (b *basis) pop() {
	b.m--
}

func sqDist(a, b [3]float64) float64 {
	d := v3.Sub3(a, b)
	return v3.Dot3(d, d)
}
