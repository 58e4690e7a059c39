// Package repstat contains statistics over the time series of an observable:
// averages across replicate trajectories and time correlation functions.
package repstat

import (
	"math/cmplx"

	cyto "github.com/cytoskel/cytotraj"
	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/stat"
)

// Average averages the given replicate series frame by frame. The ith element of
// the result has the mean time and value of the ith samples of all replicates,
// and the sample standard deviation of those values (0 if there is only one replicate).
// All the series must have the same length, otherwise a *cyto.ReplicateMismatchError
// is returned.
func Average(series [][]cyto.Sample) ([]cyto.Stat, error) {
	if len(series) == 0 {
		return nil, cyto.NewDegenerateInputError("Average", "no replicates to average")
	}
	lengths := make([]int, len(series))
	for i, v := range series {
		lengths[i] = len(v)
	}
	for _, v := range lengths {
		if v != lengths[0] {
			return nil, cyto.NewReplicateMismatchError("Average", lengths)
		}
	}
	n := len(series)
	ret := make([]cyto.Stat, lengths[0])
	times := make([]float64, n)
	values := make([]float64, n)
	for i := range ret {
		for j, s := range series {
			times[j] = s[i].Time
			values[j] = s[i].Value
		}
		ret[i].Time = stat.Mean(times, nil)
		if n == 1 {
			ret[i].Value = values[0]
			continue
		}
		ret[i].Value, ret[i].Err = stat.MeanStdDev(values, nil)
	}
	return ret, nil
}

// CrossCorr returns the cross-correlation of the series a and b, which must
// have the same length N, for the lags 0 to N-1. Element k is
// sum_t (a[t+k]-<a>)(b[t]-<b>) / (N σa σb), with the population standard deviations,
// so the autocorrelation of a series at lag 0 is 1.
// The correlation is computed with FFTs on zero-padded copies of the data.
func CrossCorr(a, b []float64) ([]float64, error) {
	n := len(a)
	if n != len(b) {
		return nil, cyto.NewReplicateMismatchError("CrossCorr", []int{len(a), len(b)})
	}
	if n < 2 {
		return nil, cyto.NewDegenerateInputError("CrossCorr", "at least 2 values are needed, got %d", n)
	}
	amean, astd := stat.PopMeanStdDev(a, nil)
	bmean, bstd := stat.PopMeanStdDev(b, nil)
	if astd == 0 || bstd == 0 {
		return nil, cyto.NewDegenerateInputError("CrossCorr", "constant series have no correlation")
	}
	apad := make([]complex128, 2*n)
	bpad := make([]complex128, 2*n)
	for i := range a {
		apad[i] = complex(a[i]-amean, 0)
		bpad[i] = complex(b[i]-bmean, 0)
	}
	f := fourier.NewCmplxFFT(len(apad))
	f.Coefficients(apad, apad)
	f.Coefficients(bpad, bpad)
	cmplxMulConj(apad, bpad)
	f.Sequence(apad, apad)
	//Sequence is not normalized.
	norm := float64(len(apad)) * float64(n) * astd * bstd
	ret := make([]float64, n)
	for i := range ret {
		ret[i] = real(apad[i]) / norm
	}
	return ret, nil
}

// AutoCorr returns the normalized time autocorrelation of values, for the lags 0 to N-1.
func AutoCorr(values []float64) ([]float64, error) {
	return CrossCorr(values, values)
}

func cmplxMulConj(dst, b []complex128) {
	for i, v := range b {
		dst[i] *= cmplx.Conj(v)
	}
}
