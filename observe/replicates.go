package observe

import (
	"context"
	"fmt"
	"runtime"

	cyto "github.com/cytoskel/cytotraj"
	"github.com/cytoskel/cytotraj/internal/batch"
	"github.com/cytoskel/cytotraj/repstat"
)

// Options contains the options for the processing of replicates.
type Options struct {
	cpus int
}

// DefaultOptions returns the default options: one goroutine per CPU.
func DefaultOptions() *Options {
	return &Options{cpus: runtime.NumCPU()}
}

// Cpus returns the number of replicates processed at the same time, and sets it
// if a value > 0 is given.
func (O *Options) Cpus(cpus ...int) int {
	ret := O.cpus
	if len(cpus) > 0 && cpus[0] > 0 {
		O.cpus = cpus[0]
	}
	return ret
}

// Series applies f to each trajectory in trajs, processing several of them
// at the same time. The series are returned in the same order as trajs.
// The first error found, if any, is returned alone.
func Series(ctx context.Context, trajs [][]*cyto.Snapshot, f SeriesFunc, options ...*Options) ([][]cyto.Sample, error) {
	o := DefaultOptions()
	if len(options) > 0 && options[0] != nil {
		o = options[0]
	}
	return batch.Run(ctx, len(trajs), o.cpus, func(i int) ([]cyto.Sample, error) {
		s, err := f(ctx, trajs[i])
		if err != nil {
			return nil, cyto.ErrDecorate(err, fmt.Sprintf("Series: replicate %d", i))
		}
		return s, nil
	})
}

// Replicates computes the series f for every replicate trajectory, and averages
// them frame by frame. All the series must have the same length.
func Replicates(ctx context.Context, trajs [][]*cyto.Snapshot, f SeriesFunc, options ...*Options) ([]cyto.Stat, error) {
	s, err := Series(ctx, trajs, f, options...)
	if err != nil {
		return nil, err
	}
	ret, err := repstat.Average(s)
	if err != nil {
		return nil, cyto.ErrDecorate(err, "Replicates")
	}
	return ret, nil
}

// ReplicateSpecies averages the copy number of a species over replicate
// chemistry trajectories.
func ReplicateSpecies(chems [][]*cyto.ChemSnapshot, kind cyto.SpeciesKind, name string) ([]cyto.Stat, error) {
	s := make([][]cyto.Sample, 0, len(chems))
	for i, chem := range chems {
		v, err := SpeciesSeries(chem, kind, name)
		if err != nil {
			return nil, cyto.ErrDecorate(err, fmt.Sprintf("ReplicateSpecies: replicate %d", i))
		}
		s = append(s, v)
	}
	ret, err := repstat.Average(s)
	if err != nil {
		return nil, cyto.ErrDecorate(err, "ReplicateSpecies")
	}
	return ret, nil
}
