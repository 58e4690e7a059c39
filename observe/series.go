package observe

import (
	"context"
	"fmt"
	"sort"

	cyto "github.com/cytoskel/cytotraj"
	"github.com/cytoskel/cytotraj/mcs"
)

// SeriesFunc computes the time series of one observable over a trajectory.
type SeriesFunc func(ctx context.Context, traj []*cyto.Snapshot) ([]cyto.Sample, error)

// frameFunc is a per-snapshot reduction.
type frameFunc func(S *cyto.Snapshot) (float64, error)

// series applies f to the frames start, start+stride, start+2*stride... of traj.
func series(ctx context.Context, caller string, traj []*cyto.Snapshot, start, stride int, f frameFunc) ([]cyto.Sample, error) {
	ret := make([]cyto.Sample, 0, len(traj)/stride+1)
	for i := start; i < len(traj); i += stride {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		v, err := f(traj[i])
		if err != nil {
			return nil, cyto.ErrDecorate(err, fmt.Sprintf("%s: frame %d", caller, i))
		}
		ret = append(ret, cyto.Sample{Time: traj[i].Time, Value: v})
	}
	return ret, nil
}

// EndToEndSeries returns the mean end-to-end distance of the filaments in every frame.
func EndToEndSeries(ctx context.Context, traj []*cyto.Snapshot) ([]cyto.Sample, error) {
	return series(ctx, "EndToEndSeries", traj, 0, 1, EndToEnd)
}

// ContourLengthSeries returns the mean contour length of the filaments in every frame.
func ContourLengthSeries(ctx context.Context, traj []*cyto.Snapshot) ([]cyto.Sample, error) {
	return series(ctx, "ContourLengthSeries", traj, 0, 1, ContourLength)
}

// VolumeSeries returns a SeriesFunc that computes the enclosing volume
// of the frames 2, 4, 6... of a trajectory, with the given solver options.
func VolumeSeries(options ...*mcs.Options) SeriesFunc {
	return func(ctx context.Context, traj []*cyto.Snapshot) ([]cyto.Sample, error) {
		f := func(S *cyto.Snapshot) (float64, error) {
			return EnclosingVolume(ctx, S, options...)
		}
		return series(ctx, "EnclosingVolumeSeries", traj, 2, 2, f)
	}
}

// EnclosingVolumeSeries is VolumeSeries with the default solver options.
func EnclosingVolumeSeries(ctx context.Context, traj []*cyto.Snapshot) ([]cyto.Sample, error) {
	return VolumeSeries()(ctx, traj)
}

// OrderParameterSeries returns the order parameter of the frames 0, 2, 4... of traj.
func OrderParameterSeries(ctx context.Context, traj []*cyto.Snapshot) ([]cyto.Sample, error) {
	return series(ctx, "OrderParameterSeries", traj, 0, 2, OrderParameter)
}

// GyrationSeries returns the squared radius of gyration of every frame with at
// least one cylinder. Frames without cylinders are skipped.
func GyrationSeries(ctx context.Context, traj []*cyto.Snapshot) ([]cyto.Sample, error) {
	withcyl := make([]*cyto.Snapshot, 0, len(traj))
	for _, S := range traj {
		if len(S.Cylinders) > 0 {
			withcyl = append(withcyl, S)
		}
	}
	return series(ctx, "GyrationSeries", withcyl, 0, 1, GyrationSq)
}

// ContractileVelocitySeries returns the contractile velocity between each pair
// of consecutive frames, sampled at the time of the second frame. Pairs with no
// cylinders in common are skipped.
func ContractileVelocitySeries(ctx context.Context, traj []*cyto.Snapshot) ([]cyto.Sample, error) {
	ret := make([]cyto.Sample, 0, len(traj))
	for i := 0; i < len(traj)-1; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		v, n, err := contractileVelocity(traj[i], traj[i+1])
		if err != nil {
			return nil, cyto.ErrDecorate(err, fmt.Sprintf("ContractileVelocitySeries: frames %d-%d", i, i+1))
		}
		if n == 0 {
			continue
		}
		ret = append(ret, cyto.Sample{Time: traj[i+1].Time, Value: v})
	}
	return ret, nil
}

// SpeciesSeries returns the copy number of the species name of the given kind
// in every frame of chem. The species must be present in all frames.
func SpeciesSeries(chem []*cyto.ChemSnapshot, kind cyto.SpeciesKind, name string) ([]cyto.Sample, error) {
	ret := make([]cyto.Sample, 0, len(chem))
	for i, S := range chem {
		v, ok := S.Value(kind, name)
		if !ok {
			return nil, cyto.NewCError("SpeciesSeries", fmt.Sprintf("species %s:%s not found in frame %d (step %g)", name, kind, i, S.Step))
		}
		ret = append(ret, cyto.Sample{Time: S.Time, Value: v})
	}
	return ret, nil
}

// Observables contains the series of all the observables, by name, with the default options.
var Observables = map[string]SeriesFunc{
	"end-to-end": EndToEndSeries,
	"contour":    ContourLengthSeries,
	"volume":     EnclosingVolumeSeries,
	"order":      OrderParameterSeries,
	"gyration":   GyrationSeries,
	"velocity":   ContractileVelocitySeries,
}

// Names returns the names of all the observables, sorted.
func Names() []string {
	ret := make([]string, 0, len(Observables))
	for k := range Observables {
		ret = append(ret, k)
	}
	sort.Strings(ret)
	return ret
}

// Observable returns the SeriesFunc for the given name. The solver options, if given,
// are used for the enclosing volume.
func Observable(name string, options ...*mcs.Options) (SeriesFunc, error) {
	f, ok := Observables[name]
	if !ok {
		return nil, cyto.NewCError("Observable", fmt.Sprintf("unknown observable %q", name))
	}
	if name == "volume" && len(options) > 0 {
		return VolumeSeries(options...), nil
	}
	return f, nil
}
