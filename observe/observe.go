// Package observe reduces snapshots of a filament network to scalar observables,
// builds time series of those observables for a trajectory, and averages the series
// of independent replicate trajectories.
//
// Lengths in the trajectories are in nm. The end-to-end distance, the contractile
// velocity and the enclosing volume are reported in µm based units.
package observe

import (
	"context"
	"math"

	cyto "github.com/cytoskel/cytotraj"
	"github.com/cytoskel/cytotraj/histo"
	"github.com/cytoskel/cytotraj/mcs"
	"github.com/cytoskel/cytotraj/order"
	v3 "github.com/cytoskel/cytotraj/v3"
)

// nm to µm
const micro = 0.001

// gyration squared is reported in units of 1e5 nm².
const gyrationUnit = 1e-5

func noFilaments(caller string, S *cyto.Snapshot) error {
	return cyto.NewDegenerateInputError(caller, "snapshot at step %g has no filaments", S.Step)
}

// EndToEnd returns the mean, over the filaments of S, of the distance between
// the first and the last bead, in µm.
func EndToEnd(S *cyto.Snapshot) (float64, error) {
	if len(S.Filaments) == 0 {
		return 0, noFilaments("EndToEnd", S)
	}
	var sum float64
	for _, F := range S.SortedFilaments() {
		sum += F.EndToEnd()
	}
	return micro * sum / float64(len(S.Filaments)), nil
}

// ContourLength returns the mean contour length of the filaments of S, in nm.
func ContourLength(S *cyto.Snapshot) (float64, error) {
	if len(S.Filaments) == 0 {
		return 0, noFilaments("ContourLength", S)
	}
	var sum float64
	for _, F := range S.SortedFilaments() {
		sum += F.ContourLength()
	}
	return sum / float64(len(S.Filaments)), nil
}

// Endpoints returns the first and last beads of every filament in S,
// sorted by filament id.
func Endpoints(S *cyto.Snapshot) [][3]float64 {
	ret := make([][3]float64, 0, 2*len(S.Filaments))
	for _, F := range S.SortedFilaments() {
		first, last := F.Ends()
		ret = append(ret, first, last)
	}
	return ret
}

// EnclosingVolume returns the volume, in µm³, of the smallest sphere that
// contains the ends of all the filaments in S.
func EnclosingVolume(ctx context.Context, S *cyto.Snapshot, options ...*mcs.Options) (float64, error) {
	if len(S.Filaments) == 0 {
		return 0, noFilaments("EnclosingVolume", S)
	}
	_, r, err := mcs.SphereVecs(ctx, Endpoints(S), options...)
	if err != nil {
		return 0, cyto.ErrDecorate(err, "EnclosingVolume")
	}
	r *= micro
	return 4.0 / 3.0 * math.Pi * r * r * r, nil
}

// OrderParameter returns the nematic order parameter of the cylinders of S.
func OrderParameter(S *cyto.Snapshot) (float64, error) {
	return order.SnapshotParameter(S)
}

// CenterOfMass returns the centroid of all the filament beads in S.
func CenterOfMass(S *cyto.Snapshot) ([3]float64, error) {
	if len(S.Filaments) == 0 {
		return [3]float64{}, noFilaments("CenterOfMass", S)
	}
	fils := S.SortedFilaments()
	beads := make([]*v3.Matrix, len(fils))
	for i, F := range fils {
		beads[i] = F.Beads
	}
	all, err := v3.Stack(beads...)
	if err != nil {
		return [3]float64{}, cyto.ErrDecorate(err, "CenterOfMass")
	}
	return all.Centroid(), nil
}

// GyrationSq returns the mean squared distance between the midpoints of the cylinders
// of S and the center of mass of all the filament beads, in units of 1e5 nm².
func GyrationSq(S *cyto.Snapshot) (float64, error) {
	if len(S.Cylinders) == 0 {
		return 0, cyto.NewDegenerateInputError("GyrationSq", "snapshot at step %g has no cylinders", S.Step)
	}
	com, err := CenterOfMass(S)
	if err != nil {
		return 0, cyto.ErrDecorate(err, "GyrationSq")
	}
	var sum float64
	for _, c := range S.SortedCylinders() {
		d := v3.Sub3(c.Midpoint(), com)
		sum += v3.Dot3(d, d)
	}
	return gyrationUnit * sum / float64(len(S.Cylinders)), nil
}

// ContractileVelocity returns the mean radial velocity of the cylinders present in both
// si and sf, toward the center of mass of si. The velocity of each cylinder is
// the displacement of its midpoint divided by the time between both snapshots,
// and it is projected on (com-m)/|com-m|², m being the midpoint in si. The result
// is positive when the network contracts. Cylinders whose midpoint is at
// the center of mass do not contribute.
func ContractileVelocity(si, sf *cyto.Snapshot) (float64, error) {
	v, n, err := contractileVelocity(si, sf)
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, cyto.NewDegenerateInputError("ContractileVelocity", "snapshots at steps %g and %g share no cylinders", si.Step, sf.Step)
	}
	return v, nil
}

// contractileVelocity also returns the number of cylinders that contributed.
func contractileVelocity(si, sf *cyto.Snapshot) (float64, int, error) {
	dt := sf.Time - si.Time
	if dt == 0 {
		return 0, 0, cyto.NewDegenerateInputError("ContractileVelocity", "snapshots at steps %g and %g have the same time", si.Step, sf.Step)
	}
	if len(si.Filaments) == 0 || len(sf.Cylinders) == 0 {
		return 0, 0, nil
	}
	com, err := CenterOfMass(si)
	if err != nil {
		return 0, 0, cyto.ErrDecorate(err, "ContractileVelocity")
	}
	var sum float64
	var n int
	for _, id := range sf.CylinderIDs() {
		before, ok := si.Cylinders[id]
		if !ok {
			continue
		}
		cbm := before.Midpoint()
		vel := v3.Scale3(v3.Sub3(sf.Cylinders[id].Midpoint(), cbm), 1/dt)
		r := v3.Sub3(com, cbm)
		rr := v3.Dot3(r, r)
		if rr == 0 {
			continue
		}
		sum += v3.Dot3(vel, r) / rr
		n++
	}
	if n == 0 {
		return 0, 0, nil
	}
	return micro * sum / float64(n), n, nil
}

// LengthDistribution returns a histogram of the contour lengths of the
// filaments in S, with the given dividers. The histogram ID is the step of S,
// truncated.
func LengthDistribution(S *cyto.Snapshot, dividers []float64) (*histo.Data, error) {
	lengths := make([]float64, 0, len(S.Filaments))
	for _, F := range S.SortedFilaments() {
		lengths = append(lengths, F.ContourLength())
	}
	h, err := histo.NewData(dividers, lengths, int(S.Step))
	if err != nil {
		return nil, cyto.NewCError("LengthDistribution", err.Error())
	}
	return h, nil
}
