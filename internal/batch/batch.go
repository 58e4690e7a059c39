// Package batch runs the same job over many inputs, a few at a time.
package batch

import (
	"context"
	"runtime"
)

// Run calls f(i) for every i in [0, n), with up to cpus calls running at the same
// time (runtime.NumCPU() if cpus < 1). The results are in the order of i.
// ctx is checked before each batch is started. If any call fails, the error with
// the lowest i in that batch is returned, and no results.
func Run[T any](ctx context.Context, n, cpus int, f func(i int) (T, error)) ([]T, error) {
	if cpus < 1 {
		cpus = runtime.NumCPU()
	}
	type result struct {
		v   T
		err error
	}
	ret := make([]T, 0, n)
	results := make([]chan result, cpus)
	for start := 0; start < n; start += cpus {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		end := min(start+cpus, n)
		for i := start; i < end; i++ {
			results[i-start] = make(chan result, 1)
			go func(i int, pipe chan<- result) {
				v, err := f(i)
				pipe <- result{v, err}
			}(i, results[i-start])
		}
		//results are sorted like the input, so we just go through them in order.
		var firsterr error
		for i := start; i < end; i++ {
			r := <-results[i-start]
			if r.err != nil && firsterr == nil {
				firsterr = r.err
			}
			ret = append(ret, r.v)
		}
		if firsterr != nil {
			return nil, firsterr
		}
	}
	return ret, nil
}
