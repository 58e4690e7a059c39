package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/cytoskel/cytotraj/observe"
	"github.com/cytoskel/cytotraj/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTraj writes a trajectory of n frames with 2 filaments that move
// a little each frame.
func writeTraj(Te *testing.T, dir, name string, n int, shift float64) string {
	Te.Helper()
	var b strings.Builder
	for i := 0; i < n; i++ {
		d := float64(i)*10 + shift
		fmt.Fprintf(&b, "%d %g 2 0 0 0\n", 100*i, 0.5*float64(i))
		fmt.Fprintf(&b, "F 0 3 0 0\n%g 0 0 -500 100 0 %g 0 0\n", -1000+d, -d)
		fmt.Fprintf(&b, "F 1 2 1 0\n0 %g 0 0 1000 200\n\n", 500-d)
	}
	file := filepath.Join(dir, name)
	require.NoError(Te, os.WriteFile(file, []byte(b.String()), 0o644))
	return file
}

func run(Te *testing.T, argv ...string) (string, error) {
	Te.Helper()
	var b bytes.Buffer
	err := Run(context.Background(), append([]string{"cytotraj"}, argv...), &b)
	return b.String(), err
}

func TestInfo(Te *testing.T) {
	file := writeTraj(Te, Te.TempDir(), "a.traj", 3, 0)
	out, err := run(Te, "info", "--lengths", "0,1000,2000,4000", file)
	require.NoError(Te, err)
	assert.Contains(Te, out, "3 frames")
	assert.Contains(Te, out, "filaments: 2 linkers: 0 motors: 0 branchers: 0 cylinders: 3")
	assert.Contains(Te, out, "ID: 200")

	_, err = run(Te, "info")
	assert.Error(Te, err)
	_, err = run(Te, "info", filepath.Join(Te.TempDir(), "missing.traj"))
	assert.Error(Te, err)
	_, err = run(Te, "info", "--lengths", "0,x", file)
	assert.Error(Te, err)
}

func TestAnalyze(Te *testing.T) {
	dir := Te.TempDir()
	files := []string{
		writeTraj(Te, dir, "r1.traj", 5, 0),
		writeTraj(Te, dir, "r2.traj", 5, 3),
		writeTraj(Te, dir, "r3.traj", 5, 7),
	}
	out := filepath.Join(dir, "results")
	stdout, err := run(Te, append([]string{"analyze", "--out", out, "--cpus", "2", "--log-level", "error"}, files...)...)
	require.NoError(Te, err)
	for _, name := range observe.Names() {
		assert.Contains(Te, stdout, report.FileName(out, name))
	}
	st, err := report.ReadStats(report.FileName(out, "end-to-end"))
	require.NoError(Te, err)
	require.Len(Te, st, 5)
	assert.Equal(Te, 2.0, st[4].Time)
	assert.Greater(Te, st[0].Err, 0.0)
	st, err = report.ReadStats(report.FileName(out, "volume"))
	require.NoError(Te, err)
	assert.Len(Te, st, 2)
	st, err = report.ReadStats(report.FileName(out, "velocity"))
	require.NoError(Te, err)
	assert.Len(Te, st, 4)

	short := writeTraj(Te, dir, "short.traj", 4, 0)
	_, err = run(Te, "analyze", "--out", out, files[0], short)
	assert.Error(Te, err)
	_, err = run(Te, "analyze", "--cpus=-1", files[0])
	assert.Error(Te, err)
}

func TestConfigFile(Te *testing.T) {
	dir := Te.TempDir()
	file := writeTraj(Te, dir, "a.traj", 3, 0)
	cfg := filepath.Join(dir, "cytotraj.ini")
	content := fmt.Sprintf("[Analysis]\nObservable = order\n\n[Density]\nNX = 2\nNY = 2\nNZ = 1\nPolicy = clamp\n\n[Output]\nDir = %s\n", filepath.Join(dir, "cfgout"))
	require.NoError(Te, os.WriteFile(cfg, []byte(content), 0o644))
	stdout, err := run(Te, "analyze", "--config", cfg, file)
	require.NoError(Te, err)
	assert.Equal(Te, report.FileName(filepath.Join(dir, "cfgout"), "order")+"\n", stdout)

	stdout, err = run(Te, "density", "--config", cfg, "--all", file)
	require.NoError(Te, err)
	assert.Equal(Te, 3, strings.Count(stdout, "# frame"))
	//2 comment lines and 4 compartments per frame.
	assert.Equal(Te, 18, strings.Count(stdout, "\n"))

	stdout, err = run(Te, "density", "--config", cfg, "--frame", "0", file)
	require.NoError(Te, err)
	assert.Contains(Te, stdout, "# frame 0 step 0 time 0")
	_, err = run(Te, "density", "--config", cfg, "--frame", "3", file)
	assert.Error(Te, err)

	//the default grid has no room for negative coordinates.
	_, err = run(Te, "density", file)
	assert.Error(Te, err)

	require.NoError(Te, os.WriteFile(cfg, []byte("[Density]\nPolicy = bounce\n"), 0o644))
	_, err = run(Te, "info", "--config", cfg, file)
	assert.Error(Te, err)
}

func TestSphere(Te *testing.T) {
	file := writeTraj(Te, Te.TempDir(), "a.traj", 4, 0)
	stdout, err := run(Te, "sphere", "--tolerance", "1e-9", file)
	require.NoError(Te, err)
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(Te, lines, 5)
	assert.True(Te, strings.HasPrefix(lines[1], "0 0 "))
}

func TestCorr(Te *testing.T) {
	dir := Te.TempDir()
	a := writeTraj(Te, dir, "a.traj", 6, 0)
	b := writeTraj(Te, dir, "b.traj", 6, 5)
	stdout, err := run(Te, "corr", "--observable", "contour", a, b)
	require.NoError(Te, err)
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(Te, lines, 8)
	f := strings.Fields(lines[2])
	require.Len(Te, f, 3)
	v, err := strconv.ParseFloat(f[1], 64)
	require.NoError(Te, err)
	assert.Equal(Te, "0", f[0])
	assert.InDelta(Te, 1, v, 1e-9)

	_, err = run(Te, "corr", "--observable", "pressure", a)
	assert.Error(Te, err)
}

func TestSpecies(Te *testing.T) {
	dir := Te.TempDir()
	var files []string
	for i, v := range []float64{10, 20} {
		content := fmt.Sprintf("0 0\nActin:DIFFUSING %g\nMyosin:MOTOR 3\n\n1 0.5\nActin:DIFFUSING %g\nMyosin:MOTOR 4\n", v, v+1)
		name := filepath.Join(dir, fmt.Sprintf("r%d.chem", i))
		require.NoError(Te, os.WriteFile(name, []byte(content), 0o644))
		files = append(files, name)
	}
	stdout, err := run(Te, append([]string{"species", "--kind", "diffusing", "--species", "Actin"}, files...)...)
	require.NoError(Te, err)
	assert.Contains(Te, stdout, "# Actin:DIFFUSING")
	assert.Contains(Te, stdout, "0.5 16 ")

	_, err = run(Te, append([]string{"species", "--kind", "cytosol", "--species", "Actin"}, files...)...)
	assert.Error(Te, err)
	_, err = run(Te, append([]string{"species", "--kind", "motor", "--species", "Actin"}, files...)...)
	assert.Error(Te, err)
	_, err = run(Te, "species", "--species", "Actin", files[0])
	assert.Error(Te, err)
}
