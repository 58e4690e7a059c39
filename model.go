/*
 * model.go, part of cytotraj.
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

	v3 "github.com/cytoskel/cytotraj/v3"
)

// Filament is a polymer chain at one snapshot, given by the coordinates of its beads.
type Filament struct {
	ID         int
	Beads      *v3.Matrix
	DeltaLeft  int //polymerization/depolymerization events at each end since the last snapshot
	DeltaRight int
}

// NewFilament returns a filament with a copy of the given beads. It needs at least
// 2 beads.
func NewFilament(id int, beads *v3.Matrix, dl, dr int) (*Filament, error) {
	if beads == nil || beads.NVecs() < 2 {
		n := 0
		if beads != nil {
			n = beads.NVecs()
		}
		return nil, NewDegenerateInputError("NewFilament", "filament %d has %d beads, at least 2 are needed", id, n)
	}
	return &Filament{ID: id, Beads: beads.Clone(), DeltaLeft: dl, DeltaRight: dr}, nil
}

// Len returns the number of beads in the filament.
func (F *Filament) Len() int {
	return F.Beads.NVecs()
}

// Bead returns the coordinates of the ith bead.
func (F *Filament) Bead(i int) [3]float64 {
	return F.Beads.Vec(i)
}

// Ends returns the first and the last beads of the filament.
func (F *Filament) Ends() (first, last [3]float64) {
	return F.Beads.Vec(0), F.Beads.Vec(F.Len() - 1)
}

// EndToEnd returns the distance between the first and the last beads.
func (F *Filament) EndToEnd() float64 {
	f, l := F.Ends()
	return v3.Dist3(f, l)
}

// ContourLength returns the sum of the distances between consecutive beads.
func (F *Filament) ContourLength() float64 {
	var L float64
	prev := F.Beads.Vec(0)
	for i := 1; i < F.Len(); i++ {
		cur := F.Beads.Vec(i)
		L += v3.Dist3(prev, cur)
		prev = cur
	}
	return L
}

// CylinderID returns the id of the ith cylinder of the filament with id filID.
// The id depends only on those two numbers, so the same segment has the same id
// in every snapshot. For non-negative arguments it is the Cantor pairing of (i, filID),
// so it never collides.
func CylinderID(filID, i int) int {
	return (filID+i)*(filID+i+1)/2 + filID
}

// Cylinder is the rigid segment between two consecutive beads of a filament.
type Cylinder struct {
	ID         int
	FilamentID int
	Index      int        //position of the cylinder along its filament
	Ends       *v3.Matrix //2 vectors: the beads Index and Index+1
}

// Midpoint returns the center of the cylinder.
func (C *Cylinder) Midpoint() [3]float64 {
	return v3.Mid3(C.Ends.Vec(0), C.Ends.Vec(1))
}

// Length returns the distance between both ends of the cylinder.
func (C *Cylinder) Length() float64 {
	return v3.Dist3(C.Ends.Vec(0), C.Ends.Vec(1))
}

// Direction returns the unit vector from the first to the second end of the cylinder.
func (C *Cylinder) Direction() ([3]float64, error) {
	d, err := v3.Unit3(v3.Sub3(C.Ends.Vec(1), C.Ends.Vec(0)))
	if err != nil {
		return d, NewDegenerateInputError("Direction", "cylinder %d has zero length", C.ID)
	}
	return d, nil
}

// Cylinders returns the cylinders of the filament, in order along the chain.
// The cylinders share the filament's bead storage.
func (F *Filament) Cylinders() []*Cylinder {
	ret := make([]*Cylinder, 0, F.Len()-1)
	for i := 0; i < F.Len()-1; i++ {
		ret = append(ret, &Cylinder{
			ID:         CylinderID(F.ID, i),
			FilamentID: F.ID,
			Index:      i,
			Ends:       F.Beads.View(i, i+2),
		})
	}
	return ret
}

// Linker is a passive cross-linker between two filament sites.
type Linker struct {
	ID    int
	Type  int
	Sites *v3.Matrix //2 vectors
}

// Motor is a molecular motor between two filament sites.
type Motor struct {
	ID    int
	Type  int
	Sites *v3.Matrix //2 vectors
}

// Brancher is a branching point on a filament.
type Brancher struct {
	ID   int
	Type int
	Site *v3.Matrix //1 vector
}

func checkSites(caller string, id int, sites *v3.Matrix, want int) error {
	if sites == nil || sites.NVecs() != want {
		n := 0
		if sites != nil {
			n = sites.NVecs()
		}
		return NewCError(caller, fmt.Sprintf("entity %d has %d sites, expected %d", id, n, want))
	}
	return nil
}

// NewLinker returns a linker with a copy of the given sites, which must be 2.
func NewLinker(id, typ int, sites *v3.Matrix) (*Linker, error) {
	if err := checkSites("NewLinker", id, sites, 2); err != nil {
		return nil, err
	}
	return &Linker{ID: id, Type: typ, Sites: sites.Clone()}, nil
}

// NewMotor returns a motor with a copy of the given sites, which must be 2.
func NewMotor(id, typ int, sites *v3.Matrix) (*Motor, error) {
	if err := checkSites("NewMotor", id, sites, 2); err != nil {
		return nil, err
	}
	return &Motor{ID: id, Type: typ, Sites: sites.Clone()}, nil
}

// NewBrancher returns a brancher with a copy of the given site.
func NewBrancher(id, typ int, site *v3.Matrix) (*Brancher, error) {
	if err := checkSites("NewBrancher", id, site, 1); err != nil {
		return nil, err
	}
	return &Brancher{ID: id, Type: typ, Site: site.Clone()}, nil
}

// Snapshot is the state of the simulated system at one time frame.
type Snapshot struct {
	Step      float64
	Time      float64
	Filaments map[int]*Filament
	Cylinders map[int]*Cylinder //derived from Filaments
	Linkers   map[int]*Linker
	Motors    map[int]*Motor
	Branchers map[int]*Brancher
}

// Counts holds the number of entities of each kind in a snapshot.
type Counts struct {
	Filaments int
	Linkers   int
	Motors    int
	Branchers int
}

func (c Counts) String() string {
	return fmt.Sprintf("filaments: %d linkers: %d motors: %d branchers: %d", c.Filaments, c.Linkers, c.Motors, c.Branchers)
}

// NewSnapshot builds a snapshot from its entities, and derives its cylinders.
// Repeated ids within one kind of entity, or two cylinders with the same id, are errors.
func NewSnapshot(step, time float64, filaments []*Filament, linkers []*Linker, motors []*Motor, branchers []*Brancher) (*Snapshot, error) {
	S := &Snapshot{
		Step:      step,
		Time:      time,
		Filaments: make(map[int]*Filament, len(filaments)),
		Cylinders: make(map[int]*Cylinder),
		Linkers:   make(map[int]*Linker, len(linkers)),
		Motors:    make(map[int]*Motor, len(motors)),
		Branchers: make(map[int]*Brancher, len(branchers)),
	}
	dup := func(kind string, id int) error {
		return NewCError("NewSnapshot", fmt.Sprintf("repeated %s id %d at step %g", kind, id, step))
	}
	for _, f := range filaments {
		if _, ok := S.Filaments[f.ID]; ok {
			return nil, dup("filament", f.ID)
		}
		S.Filaments[f.ID] = f
		for _, c := range f.Cylinders() {
			if old, ok := S.Cylinders[c.ID]; ok {
				return nil, NewCError("NewSnapshot", fmt.Sprintf("cylinder id %d of filament %d (segment %d) collides with filament %d (segment %d)", c.ID, c.FilamentID, c.Index, old.FilamentID, old.Index))
			}
			S.Cylinders[c.ID] = c
		}
	}
	for _, l := range linkers {
		if _, ok := S.Linkers[l.ID]; ok {
			return nil, dup("linker", l.ID)
		}
		S.Linkers[l.ID] = l
	}
	for _, m := range motors {
		if _, ok := S.Motors[m.ID]; ok {
			return nil, dup("motor", m.ID)
		}
		S.Motors[m.ID] = m
	}
	for _, b := range branchers {
		if _, ok := S.Branchers[b.ID]; ok {
			return nil, dup("brancher", b.ID)
		}
		S.Branchers[b.ID] = b
	}
	return S, nil
}

// Counts returns the number of filaments, linkers, motors and branchers in the snapshot.
func (S *Snapshot) Counts() Counts {
	return Counts{
		Filaments: len(S.Filaments),
		Linkers:   len(S.Linkers),
		Motors:    len(S.Motors),
		Branchers: len(S.Branchers),
	}
}

func sortedKeys[T any](m map[int]T) []int {
	ret := make([]int, 0, len(m))
	for k := range m {
		ret = append(ret, k)
	}
	sort.Ints(ret)
	return ret
}

// FilamentIDs returns the ids of the filaments in increasing order.
func (S *Snapshot) FilamentIDs() []int { return sortedKeys(S.Filaments) }

// CylinderIDs returns the ids of the cylinders in increasing order.
func (S *Snapshot) CylinderIDs() []int { return sortedKeys(S.Cylinders) }

// LinkerIDs returns the ids of the linkers in increasing order.
func (S *Snapshot) LinkerIDs() []int { return sortedKeys(S.Linkers) }

// MotorIDs returns the ids of the motors in increasing order.
func (S *Snapshot) MotorIDs() []int { return sortedKeys(S.Motors) }

// BrancherIDs returns the ids of the branchers in increasing order.
func (S *Snapshot) BrancherIDs() []int { return sortedKeys(S.Branchers) }

// SortedFilaments returns the filaments ordered by id.
func (S *Snapshot) SortedFilaments() []*Filament {
	ids := S.FilamentIDs()
	ret := make([]*Filament, len(ids))
	for i, id := range ids {
		ret[i] = S.Filaments[id]
	}
	return ret
}

// SortedCylinders returns the cylinders ordered by id.
func (S *Snapshot) SortedCylinders() []*Cylinder {
	ids := S.CylinderIDs()
	ret := make([]*Cylinder, len(ids))
	for i, id := range ids {
		ret[i] = S.Cylinders[id]
	}
	return ret
}

// NBeads returns the total number of filament beads in the snapshot.
func (S *Snapshot) NBeads() int {
	n := 0
	for _, f := range S.Filaments {
		n += f.Len()
	}
	return n
}
