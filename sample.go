/*
 * sample.go, part of cytotraj.
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

package cyto

// Sample is the value of an observable at a given time.
type Sample struct {
	Time  float64
	Value float64
}

// Stat is the value of an observable at a given time averaged over replicates,
// with its standard deviation as error.
type Stat struct {
	Time  float64
	Value float64
	Err   float64
}

// Values returns the values of the samples, in order.
func Values(s []Sample) []float64 {
	ret := make([]float64, len(s))
	for i, v := range s {
		ret[i] = v.Value
	}
	return ret
}
