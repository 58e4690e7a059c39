/*
 * vec.go, part of cytotraj.
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

package v3

import "math"

//Small helpers for single points. Most of the per-bead work in cytotraj
//is done on points one at a time, so allocating a Dense for each would be wasteful.

// Add3 returns a+b
func Add3(a, b [3]float64) [3]float64 {
	return [3]float64{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

// Sub3 returns a-b
func Sub3(a, b [3]float64) [3]float64 {
	return [3]float64{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

// Scale3 returns f*a
func Scale3(a [3]float64, f float64) [3]float64 {
	return [3]float64{a[0] * f, a[1] * f, a[2] * f}
}

// Dot3 returns the dot product of a and b.
func Dot3(a, b [3]float64) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

// Cross3 returns the cross product axb.
func Cross3(a, b [3]float64) [3]float64 {
	return [3]float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

// Norm3 returns the euclidean norm of a.
func Norm3(a [3]float64) float64 {
	return math.Sqrt(Dot3(a, a))
}

// Dist3 returns the euclidean distance between a and b.
func Dist3(a, b [3]float64) float64 {
	return Norm3(Sub3(a, b))
}

// Mid3 returns the midpoint between a and b.
func Mid3(a, b [3]float64) [3]float64 {
	return Scale3(Add3(a, b), 0.5)
}

// Unit3 returns the unit vector in the direction of a. It returns an error
// if a has zero norm.
func Unit3(a [3]float64) ([3]float64, error) {
	n := Norm3(a)
	if n <= appzero {
		return a, Error{"Can't normalize a zero vector", []string{"Unit3"}, true}
	}
	return Scale3(a, 1/n), nil
}
