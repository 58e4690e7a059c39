/*
 * model_test.go, part of cytotraj.
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

import (
	"errors"
	"testing"

	v3 "github.com/cytoskel/cytotraj/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustFilament(Te *testing.T, id int, beads ...[3]float64) *Filament {
	Te.Helper()
	m, err := v3.FromVecs(beads)
	require.NoError(Te, err)
	f, err := NewFilament(id, m, 0, 0)
	require.NoError(Te, err)
	return f
}

func TestThreeBeadFilament(Te *testing.T) {
	f := mustFilament(Te, 0, [3]float64{0, 0, 0}, [3]float64{500, 0, 0}, [3]float64{1000, 0, 0})
	S, err := NewSnapshot(0, 0, []*Filament{f}, nil, nil, nil)
	require.NoError(Te, err)
	assert.Equal(Te, 3, f.Len())
	assert.InDelta(Te, 1000.0, f.EndToEnd(), 1e-12)
	assert.InDelta(Te, 1000.0, f.ContourLength(), 1e-12)
	assert.Equal(Te, []int{0, 1}, S.CylinderIDs())
	c := S.Cylinders[1]
	assert.Equal(Te, 1, c.Index)
	assert.Equal(Te, [3]float64{750, 0, 0}, c.Midpoint())
	assert.InDelta(Te, 500.0, c.Length(), 1e-12)
	d, err := c.Direction()
	require.NoError(Te, err)
	assert.Equal(Te, [3]float64{1, 0, 0}, d)
	assert.Equal(Te, Counts{Filaments: 1}, S.Counts())
	assert.Equal(Te, 3, S.NBeads())
}

func TestCylinderIDStable(Te *testing.T) {
	a := mustFilament(Te, 7, [3]float64{0, 0, 0}, [3]float64{1, 0, 0}, [3]float64{2, 0, 0})
	b := mustFilament(Te, 7, [3]float64{5, 5, 5}, [3]float64{6, 5, 5}, [3]float64{7, 5, 5}, [3]float64{8, 5, 5})
	S1, err := NewSnapshot(0, 0, []*Filament{a}, nil, nil, nil)
	require.NoError(Te, err)
	S2, err := NewSnapshot(1, 1, []*Filament{b}, nil, nil, nil)
	require.NoError(Te, err)
	for _, id := range S1.CylinderIDs() {
		c2, ok := S2.Cylinders[id]
		require.True(Te, ok, "cylinder %d missing in the second snapshot", id)
		assert.Equal(Te, S1.Cylinders[id].Index, c2.Index)
		assert.Equal(Te, CylinderID(7, c2.Index), id)
	}
}

func TestCylinderIDUnique(Te *testing.T) {
	seen := make(map[int][2]int)
	for f := 0; f < 60; f++ {
		for i := 0; i < 60; i++ {
			id := CylinderID(f, i)
			if old, ok := seen[id]; ok {
				Te.Fatalf("id %d for (%d,%d) already used by %v", id, f, i, old)
			}
			seen[id] = [2]int{f, i}
		}
	}
}

func TestSnapshotErrors(Te *testing.T) {
	m, _ := v3.FromVecs([][3]float64{{0, 0, 0}})
	_, err := NewFilament(1, m, 0, 0)
	var deg *DegenerateInputError
	assert.True(Te, errors.As(err, &deg))

	f := mustFilament(Te, 1, [3]float64{0, 0, 0}, [3]float64{1, 0, 0})
	_, err = NewSnapshot(0, 0, []*Filament{f, f}, nil, nil, nil)
	var cerr *CError
	assert.True(Te, errors.As(err, &cerr))

	//negative ids are outside the range where the pairing is injective
	g := mustFilament(Te, -1, [3]float64{0, 0, 0}, [3]float64{1, 0, 0}, [3]float64{2, 0, 0})
	h := mustFilament(Te, 0, [3]float64{0, 0, 0}, [3]float64{1, 0, 0})
	_, err = NewSnapshot(0, 0, []*Filament{g, h}, nil, nil, nil)
	assert.Error(Te, err)

	_, err = NewLinker(1, 0, m)
	assert.Error(Te, err)
	two, _ := v3.FromVecs([][3]float64{{0, 0, 0}, {1, 1, 1}})
	l, err := NewLinker(1, 0, two)
	require.NoError(Te, err)
	_, err = NewBrancher(1, 0, two)
	assert.Error(Te, err)
	b, err := NewBrancher(2, 1, m)
	require.NoError(Te, err)
	S, err := NewSnapshot(0, 0, nil, []*Linker{l}, nil, []*Brancher{b})
	require.NoError(Te, err)
	assert.Equal(Te, Counts{Linkers: 1, Branchers: 1}, S.Counts())
}

func TestZeroLengthCylinder(Te *testing.T) {
	f := mustFilament(Te, 2, [3]float64{1, 1, 1}, [3]float64{1, 1, 1})
	_, err := f.Cylinders()[0].Direction()
	var deg *DegenerateInputError
	assert.True(Te, errors.As(err, &deg))
}

func TestConstructorsCopy(Te *testing.T) {
	m, _ := v3.FromVecs([][3]float64{{0, 0, 0}, {1, 0, 0}})
	f, err := NewFilament(0, m, 0, 0)
	require.NoError(Te, err)
	m.Set(0, 0, 42)
	assert.Equal(Te, [3]float64{0, 0, 0}, f.Bead(0))
}
