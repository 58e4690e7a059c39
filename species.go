/*
 * species.go, part of cytotraj.
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
	"fmt"
	"sort"
	"strings"
)

// SpeciesKind is the kind of a chemical species in the chemistry output.
type SpeciesKind int

const (
	Diffusing SpeciesKind = iota
	Bulk
	FilamentSpecies
	PlusEnd
	MinusEnd
	LinkerSpecies
	MotorSpecies
	BrancherSpecies
)

// NSpeciesKinds is the number of species kinds.
const NSpeciesKinds = 8

var speciesNames = [NSpeciesKinds]string{"DIFFUSING", "BULK", "FILAMENT", "PLUSEND", "MINUSEND", "LINKER", "MOTOR", "BRANCHER"}

// String returns the name of the kind as written in chemistry files.
func (k SpeciesKind) String() string {
	if k < 0 || int(k) >= NSpeciesKinds {
		return fmt.Sprintf("SpeciesKind(%d)", int(k))
	}
	return speciesNames[k]
}

// ParseSpeciesKind returns the kind with the given name. Case is ignored.
func ParseSpeciesKind(s string) (SpeciesKind, error) {
	u := strings.ToUpper(strings.TrimSpace(s))
	for i, v := range speciesNames {
		if v == u {
			return SpeciesKind(i), nil
		}
	}
	return -1, NewCError("ParseSpeciesKind", fmt.Sprintf("unknown species type %q", s))
}

// ChemSnapshot is the chemical state of the system at one time frame: the copy
// number of every species, grouped by kind.
type ChemSnapshot struct {
	Step    float64
	Time    float64
	Species map[SpeciesKind]map[string]float64
}

// ChemBuilder accumulates species values until a ChemSnapshot is built.
type ChemBuilder struct {
	step, time float64
	species    map[SpeciesKind]map[string]float64
}

// NewChemBuilder starts a chemical snapshot at the given step and time.
func NewChemBuilder(step, time float64) *ChemBuilder {
	B := &ChemBuilder{step: step, time: time, species: make(map[SpeciesKind]map[string]float64, NSpeciesKinds)}
	for i := 0; i < NSpeciesKinds; i++ {
		B.species[SpeciesKind(i)] = make(map[string]float64)
	}
	return B
}

// Add sets the value of the species name of the given kind. Repeated species
// are an error.
func (B *ChemBuilder) Add(kind SpeciesKind, name string, value float64) error {
	m, ok := B.species[kind]
	if !ok {
		return NewCError("Add", fmt.Sprintf("invalid species kind %d", int(kind)))
	}
	if _, ok := m[name]; ok {
		return NewCError("Add", fmt.Sprintf("repeated species %s:%s", name, kind))
	}
	m[name] = value
	return nil
}

// Snapshot returns the built ChemSnapshot. The builder must not be used afterwards.
func (B *ChemBuilder) Snapshot() *ChemSnapshot {
	S := &ChemSnapshot{Step: B.step, Time: B.time, Species: B.species}
	B.species = nil
	return S
}

// Value returns the value of the species with the given kind and name, and whether it was present.
func (S *ChemSnapshot) Value(kind SpeciesKind, name string) (float64, bool) {
	v, ok := S.Species[kind][name]
	return v, ok
}

// Names returns the sorted names of the species of the given kind.
func (S *ChemSnapshot) Names(kind SpeciesKind) []string {
	ret := make([]string, 0, len(S.Species[kind]))
	for k := range S.Species[kind] {
		ret = append(ret, k)
	}
	sort.Strings(ret)
	return ret
}

// Len returns the total number of species in the snapshot.
func (S *ChemSnapshot) Len() int {
	n := 0
	for _, m := range S.Species {
		n += len(m)
	}
	return n
}
