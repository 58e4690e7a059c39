package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/cytoskel/cytotraj/observe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExample(Te *testing.T) {
	w, err := ReadString(ExampleConfig)
	require.NoError(Te, err)
	def := Default()
	def.Analysis.Observable = []string{"end-to-end", "contour", "volume", "order", "gyration", "velocity"}
	assert.Equal(Te, def, w)
	assert.Equal(Te, runtime.NumCPU(), w.Cpus())
	assert.Equal(Te, 1e-10, w.SphereOptions().Tolerance())
	assert.Equal(Te, observe.Grid{N: [3]int{10, 10, 10}, Size: [3]float64{1000, 1000, 1000}}, w.Grid())
}

func TestReadFile(Te *testing.T) {
	name := filepath.Join(Te.TempDir(), "analysis.ini")
	content := `[Analysis]
Cpus = 3
MaxIter = 500
Observable = volume
Observable = order
Observable = volume

[Density]
NX = 4
SizeZ = 250.5
Policy = Wrap
`
	require.NoError(Te, os.WriteFile(name, []byte(content), 0o644))
	w, err := ReadFile(name)
	require.NoError(Te, err)
	assert.Equal(Te, 3, w.Cpus())
	assert.Equal(Te, 3, w.ObserveOptions().Cpus())
	assert.Equal(Te, 500, w.SphereOptions().MaxIter())
	assert.Equal(Te, []string{"volume", "order"}, w.Observables())
	G := w.Grid()
	assert.Equal(Te, [3]int{4, 10, 10}, G.N)
	assert.Equal(Te, 250.5, G.Size[2])
	assert.Equal(Te, observe.Wrap, G.Policy)
	assert.Contains(Te, w.String(), "4x10x10")

	_, err = ReadFile(filepath.Join(Te.TempDir(), "missing.ini"))
	assert.Error(Te, err)
}

func TestInvalid(Te *testing.T) {
	cases := map[string]string{
		"negative cpus":    "[Analysis]\nCpus = -1\n",
		"tolerance":        "[Analysis]\nTolerance = 0\n",
		"maxiter":          "[Analysis]\nMaxIter = -3\n",
		"observable":       "[Analysis]\nObservable = pressure\n",
		"grid":             "[Density]\nNY = 0\n",
		"size":             "[Density]\nSizeX = -10\n",
		"policy":           "[Density]\nPolicy = reflect\n",
		"dir":              "[Output]\nDir =\n",
		"unknown variable": "[Analysis]\nThreads = 2\n",
		"unknown section":  "[Plot]\nColor = red\n",
		"malformed number": "[Density]\nNX = ten\n",
	}
	for name, content := range cases {
		Te.Run(name, func(Te *testing.T) {
			w, err := ReadString(content)
			assert.Error(Te, err)
			assert.Nil(Te, w)
		})
	}
}

func TestAllObservables(Te *testing.T) {
	w := Default()
	require.NoError(Te, w.Valid())
	assert.Equal(Te, observe.Names(), w.Observables())
}
