// Package report writes the results of the analysis as plain text tables, with
// one row per sample and whitespace separated columns. Lines starting with #
// are comments.
package report

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	cyto "github.com/cytoskel/cytotraj"
	"github.com/cytoskel/cytotraj/observe"
	"github.com/m-mizutani/goerr/v2"
	"github.com/phil-mansfield/table"
)

// Ext is the extension of the files written by WriteStatsFile.
const Ext = ".dat"

type tableWriter struct {
	w   *bufio.Writer
	buf []byte
}

func newTableWriter(w io.Writer, title string, columns ...string) *tableWriter {
	t := &tableWriter{w: bufio.NewWriter(w)}
	if title != "" {
		t.w.WriteString("# " + title + "\n")
	}
	t.w.WriteString("#")
	for _, c := range columns {
		t.w.WriteString(" " + c)
	}
	t.w.WriteByte('\n')
	return t
}

func (t *tableWriter) row(vals ...float64) {
	t.buf = t.buf[:0]
	for i, v := range vals {
		if i > 0 {
			t.buf = append(t.buf, ' ')
		}
		t.buf = strconv.AppendFloat(t.buf, v, 'g', -1, 64)
	}
	t.buf = append(t.buf, '\n')
	t.w.Write(t.buf)
}

func (t *tableWriter) flush() error {
	if err := t.w.Flush(); err != nil {
		return goerr.Wrap(err, "failed to write table")
	}
	return nil
}

// WriteStats writes a table with the columns time, value and err.
func WriteStats(w io.Writer, title string, stats []cyto.Stat) error {
	t := newTableWriter(w, title, "time", "value", "err")
	for _, s := range stats {
		t.row(s.Time, s.Value, s.Err)
	}
	return t.flush()
}

// WriteSamples writes a table with the columns time and value.
func WriteSamples(w io.Writer, title string, samples []cyto.Sample) error {
	t := newTableWriter(w, title, "time", "value")
	for _, s := range samples {
		t.row(s.Time, s.Value)
	}
	return t.flush()
}

// WriteDensity writes the value of each compartment of G, together with the coordinates
// of the compartment's center.
func WriteDensity(w io.Writer, title string, G observe.Grid, values []float64) error {
	if len(values) != G.Len() {
		return goerr.New("density values don't match the grid", goerr.V("values", len(values)), goerr.V("compartments", G.Len()))
	}
	t := newTableWriter(w, title, "index", "x", "y", "z", "density")
	for i, v := range values {
		c := G.Center(i)
		t.row(float64(i), c[0], c[1], c[2], v)
	}
	return t.flush()
}

// FileName returns the name of the table file for the given observable in dir.
func FileName(dir, observable string) string {
	return filepath.Join(dir, observable+Ext)
}

// WriteStatsFile writes the stats of an observable to FileName(dir, observable).
func WriteStatsFile(dir, observable string, stats []cyto.Stat) (string, error) {
	name := FileName(dir, observable)
	f, err := os.Create(name)
	if err != nil {
		return "", goerr.Wrap(err, "failed to create output file", goerr.V("file", name))
	}
	if err := WriteStats(f, fmt.Sprintf("%s, %d samples", observable, len(stats)), stats); err != nil {
		f.Close()
		return "", goerr.Wrap(err, "failed to write stats", goerr.V("file", name))
	}
	if err := f.Close(); err != nil {
		return "", goerr.Wrap(err, "failed to close output file", goerr.V("file", name))
	}
	return name, nil
}

// ReadStats reads back a table written by WriteStats.
func ReadStats(name string) ([]cyto.Stat, error) {
	cols, err := table.ReadTable(name, []int{0, 1, 2}, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read stats table", goerr.V("file", name))
	}
	ret := make([]cyto.Stat, len(cols[0]))
	for i := range ret {
		ret[i] = cyto.Stat{Time: cols[0][i], Value: cols[1][i], Err: cols[2][i]}
	}
	return ret, nil
}
