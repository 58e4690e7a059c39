// Package config reads the INI-style configuration files of the analysis tools.
package config

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/cytoskel/cytotraj/mcs"
	"github.com/cytoskel/cytotraj/observe"
	"github.com/m-mizutani/goerr/v2"
	"gopkg.in/gcfg.v1"
)

// ExampleConfig is a configuration file with every variable set to its default value.
const ExampleConfig = `[Analysis]
# Replicates processed at the same time. 0 means one per CPU.
Cpus = 0

# Relative tolerance of the enclosing sphere solver, and maximum number
# of iterations (0 means 64 + 8 times the number of points).
Tolerance = 1e-10
MaxIter = 0

# One line per observable. Leaving them all out means every observable.
Observable = end-to-end
Observable = contour
Observable = volume
Observable = order
Observable = gyration
Observable = velocity

[Density]
NX = 10
NY = 10
NZ = 10
SizeX = 1000
SizeY = 1000
SizeZ = 1000

# What to do with cylinders outside the grid: fail, clamp or wrap.
Policy = fail

[Output]
Dir = .
`

// AnalysisConfig are the parameters of the computation of observables.
type AnalysisConfig struct {
	Cpus       int
	Tolerance  float64
	MaxIter    int
	Observable []string
}

// DensityConfig describes the compartment grid.
type DensityConfig struct {
	NX, NY, NZ          int
	SizeX, SizeY, SizeZ float64
	Policy              string
}

// OutputConfig says where the results go.
type OutputConfig struct {
	Dir string
}

// Wrapper holds all the sections of a configuration file.
type Wrapper struct {
	Analysis AnalysisConfig
	Density  DensityConfig
	Output   OutputConfig
}

// Default returns a configuration with the default values.
func Default() *Wrapper {
	return &Wrapper{
		Analysis: AnalysisConfig{Tolerance: mcs.DefaultTolerance},
		Density: DensityConfig{
			NX: 10, NY: 10, NZ: 10,
			SizeX: 1000, SizeY: 1000, SizeZ: 1000,
			Policy: observe.Fail.String(),
		},
		Output: OutputConfig{Dir: "."},
	}
}

// ReadFile reads the given file on top of the default configuration, and checks the result.
func ReadFile(name string) (*Wrapper, error) {
	w := Default()
	if err := gcfg.ReadFileInto(w, name); err != nil {
		return nil, goerr.Wrap(err, "failed to read config file", goerr.V("file", name))
	}
	if err := w.Valid(); err != nil {
		return nil, goerr.Wrap(err, "invalid config file", goerr.V("file", name))
	}
	return w, nil
}

// ReadString is ReadFile for a configuration in a string.
func ReadString(s string) (*Wrapper, error) {
	w := Default()
	if err := gcfg.ReadStringInto(w, s); err != nil {
		return nil, goerr.Wrap(err, "failed to parse config")
	}
	if err := w.Valid(); err != nil {
		return nil, err
	}
	return w, nil
}

func (con *AnalysisConfig) ValidCpus() bool {
	return con.Cpus >= 0
}

func (con *AnalysisConfig) ValidTolerance() bool {
	return con.Tolerance > 0 && con.Tolerance < 1
}

func (con *AnalysisConfig) ValidMaxIter() bool {
	return con.MaxIter >= 0
}

// ValidObservables returns the first unknown observable name, if any.
func (con *AnalysisConfig) ValidObservables() (string, bool) {
	for _, v := range con.Observable {
		if _, ok := observe.Observables[strings.TrimSpace(v)]; !ok {
			return v, false
		}
	}
	return "", true
}

func (con *DensityConfig) ValidGrid() bool {
	return con.NX > 0 && con.NY > 0 && con.NZ > 0 &&
		con.SizeX > 0 && con.SizeY > 0 && con.SizeZ > 0
}

func (con *DensityConfig) ValidPolicy() bool {
	_, err := observe.ParsePolicy(con.Policy)
	return err == nil
}

func (con *OutputConfig) ValidDir() bool {
	return con.Dir != ""
}

// Valid checks every value of the configuration.
func (w *Wrapper) Valid() error {
	a := &w.Analysis
	switch {
	case !a.ValidCpus():
		return goerr.New("Cpus must not be negative", goerr.V("cpus", a.Cpus))
	case !a.ValidTolerance():
		return goerr.New("Tolerance must be in (0, 1)", goerr.V("tolerance", a.Tolerance))
	case !a.ValidMaxIter():
		return goerr.New("MaxIter must not be negative", goerr.V("maxiter", a.MaxIter))
	}
	if name, ok := a.ValidObservables(); !ok {
		return goerr.New("unknown observable", goerr.V("observable", name), goerr.V("known", observe.Names()))
	}
	d := &w.Density
	if !d.ValidGrid() {
		return goerr.New("the density grid needs positive NX, NY, NZ, SizeX, SizeY and SizeZ",
			goerr.V("n", [3]int{d.NX, d.NY, d.NZ}), goerr.V("size", [3]float64{d.SizeX, d.SizeY, d.SizeZ}))
	}
	if !d.ValidPolicy() {
		return goerr.New("invalid Policy, it must be fail, clamp or wrap", goerr.V("policy", d.Policy))
	}
	if !w.Output.ValidDir() {
		return goerr.New("invalid/non-existent Dir value")
	}
	return nil
}

// Cpus returns the number of replicates to process at the same time.
func (w *Wrapper) Cpus() int {
	if w.Analysis.Cpus == 0 {
		return runtime.NumCPU()
	}
	return w.Analysis.Cpus
}

// Observables returns the names of the observables to compute, all of them if
// none was given.
func (w *Wrapper) Observables() []string {
	if len(w.Analysis.Observable) == 0 {
		return observe.Names()
	}
	ret := make([]string, 0, len(w.Analysis.Observable))
	seen := make(map[string]bool)
	for _, v := range w.Analysis.Observable {
		v = strings.TrimSpace(v)
		if !seen[v] {
			ret = append(ret, v)
			seen[v] = true
		}
	}
	return ret
}

// SphereOptions returns the options for the enclosing sphere solver.
func (w *Wrapper) SphereOptions() *mcs.Options {
	o := mcs.DefaultOptions()
	o.Tolerance(w.Analysis.Tolerance)
	o.MaxIter(w.Analysis.MaxIter)
	return o
}

// ObserveOptions returns the options for the processing of replicates.
func (w *Wrapper) ObserveOptions() *observe.Options {
	o := observe.DefaultOptions()
	o.Cpus(w.Cpus())
	return o
}

// Grid returns the density grid. The configuration must be valid.
func (w *Wrapper) Grid() observe.Grid {
	d := &w.Density
	p, _ := observe.ParsePolicy(d.Policy)
	return observe.Grid{
		N:      [3]int{d.NX, d.NY, d.NZ},
		Size:   [3]float64{d.SizeX, d.SizeY, d.SizeZ},
		Policy: p,
	}
}

func (w *Wrapper) String() string {
	d := &w.Density
	return fmt.Sprintf("cpus: %d tolerance: %g maxiter: %d observables: %v grid: %dx%dx%d of %gx%gx%g (%s) output: %s",
		w.Cpus(), w.Analysis.Tolerance, w.Analysis.MaxIter, w.Observables(),
		d.NX, d.NY, d.NZ, d.SizeX, d.SizeY, d.SizeZ, d.Policy, w.Output.Dir)
}
