/*
 * chem_test.go, part of cytotraj.
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

package medyan

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	cyto "github.com/cytoskel/cytotraj"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const chemFrames = `0 0.0
Actin:DIFFUSING 1000
Myosin:MOTOR 12
Arp2/3:BRANCHER 3.5

10 0.05
Actin:DIFFUSING 950
Actin:FILAMENT 50
`

func TestReadChem(Te *testing.T) {
	C, err := NewChemReader(strings.NewReader(chemFrames), "test.chem")
	require.NoError(Te, err)
	snaps, err := readChemAll(C)
	require.NoError(Te, err)
	require.Len(Te, snaps, 2)
	v, ok := snaps[0].Value(cyto.MotorSpecies, "Myosin")
	assert.True(Te, ok)
	assert.Equal(Te, 12.0, v)
	v, _ = snaps[0].Value(cyto.BrancherSpecies, "Arp2/3")
	assert.Equal(Te, 3.5, v)
	assert.Equal(Te, 0.05, snaps[1].Time)
	v, _ = snaps[1].Value(cyto.FilamentSpecies, "Actin")
	assert.Equal(Te, 50.0, v)
	assert.Equal(Te, 2, snaps[1].Len())
}

func TestChemErrors(Te *testing.T) {
	cases := map[string]string{
		"unknown type": "0 0\nActin:CYTOSOL 3\n\n",
		"no colon":     "0 0\nActin 3\n\n",
		"bad value":    "0 0\nActin:BULK three\n\n",
		"bad header":   "0 0 0\nActin:BULK 3\n\n",
		"repeated":     "0 0\nActin:BULK 3\nActin:BULK 4\n\n",
	}
	for name, in := range cases {
		Te.Run(name, func(Te *testing.T) {
			C, err := NewChemReader(strings.NewReader(in), "test.chem")
			require.NoError(Te, err)
			snaps, err := readChemAll(C)
			assert.Nil(Te, snaps)
			var perr *Error
			assert.True(Te, errors.As(err, &perr), "got %v", err)
		})
	}
}

func TestChemRoundTrip(Te *testing.T) {
	C, err := NewChemReader(strings.NewReader(chemFrames), "test.chem")
	require.NoError(Te, err)
	orig, err := readChemAll(C)
	require.NoError(Te, err)
	dir := Te.TempDir()
	names := []string{filepath.Join(dir, "a.chem.zst"), filepath.Join(dir, "b.chem")}
	for _, name := range names {
		W, err := NewWriter(name)
		require.NoError(Te, err)
		for _, S := range orig {
			require.NoError(Te, W.WChemNext(S))
		}
		require.NoError(Te, W.Close())
	}
	reps, err := ReadChemTrajectories(context.Background(), names, 0)
	require.NoError(Te, err)
	for _, read := range reps {
		require.Len(Te, read, 2)
		for i := range orig {
			assert.Equal(Te, orig[i].Species, read[i].Species)
		}
	}
}
