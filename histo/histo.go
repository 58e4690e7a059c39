// Package histo implements histograms with fixed dividers, such as
// the distribution of filament lengths in a snapshot.
package histo

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Data is a histogram. Bin i counts the values v with dividers[i] <= v < dividers[i+1].
// Values outside the dividers are not counted, but they still count toward the total.
type Data struct {
	id         int
	normalized bool
	total      int
	dividers   []float64
	histo      []float64
}

func (D *Data) MarshalJSON() ([]byte, error) {
	j, err := json.Marshal(struct {
		ID         int       `json:"id"`
		Normalized bool      `json:"normalized"`
		Total      int       `json:"total"`
		Dividers   []float64 `json:"dividers"`
		Histo      []float64 `json:"histo"`
	}{
		ID:         D.id,
		Normalized: D.normalized,
		Total:      D.total,
		Dividers:   D.dividers,
		Histo:      D.histo,
	})
	if err != nil {
		return nil, err
	}
	return j, nil
}

func (D *Data) UnmarshalJSON(b []byte) error {
	var a struct {
		ID         int       `json:"id"`
		Normalized bool      `json:"normalized"`
		Total      int       `json:"total"`
		Dividers   []float64 `json:"dividers"`
		Histo      []float64 `json:"histo"`
	}
	err := json.Unmarshal(b, &a)
	if err != nil {
		return err
	}
	if len(a.Dividers) < 2 || len(a.Histo) != len(a.Dividers)-1 {
		return fmt.Errorf("histo: %d dividers for %d bins", len(a.Dividers), len(a.Histo))
	}
	D.id = a.ID
	D.normalized = a.Normalized
	D.total = a.Total
	D.dividers = a.Dividers
	D.histo = a.Histo
	return nil
}

// ID returns the ID of the histogram
func (D *Data) ID() int {
	return D.id
}

// Total returns the number of values given to the histogram, including
// those that fell outside the dividers.
func (D *Data) Total() int {
	return D.total
}

// String prints a -hopefully- pretty string representation of
// the histogram, in 3 lines of text.
func (D *Data) String() string {
	ret := fmt.Sprintf("ID: %d, Normalized: %v, TotalData: %d\n", D.id, D.normalized, D.total)
	d := make([]string, 0, len(D.histo))
	h := make([]string, 0, len(D.histo))
	for i, v := range D.histo {
		d = append(d, fmt.Sprintf("%4.2f-%4.2f", D.dividers[i], D.dividers[i+1]))
		h = append(h, fmt.Sprintf("%9.3f", v))
	}
	return ret + fmt.Sprintf("%s\n%s", strings.Join(d, " "), strings.Join(h, " "))
}

// NewData returns a new histogram from the dividers and rawdata given.
// rawdata can be nil, in which case an empty histogram is created.
// If an ID is given, it is set, otherwise the ID is -1.
// The dividers must be at least 2, and sorted in increasing order.
func NewData(dividers []float64, rawdata []float64, ID ...int) (*Data, error) {
	if len(dividers) < 2 {
		return nil, fmt.Errorf("histo: at least 2 dividers are needed, got %d", len(dividers))
	}
	if !sort.Float64sAreSorted(dividers) {
		return nil, fmt.Errorf("histo: dividers must be sorted")
	}
	d := new(Data)
	d.dividers = make([]float64, len(dividers))
	copy(d.dividers, dividers)
	d.histo = make([]float64, len(dividers)-1)
	if rawdata != nil {
		d.reHisto(rawdata)
	}
	d.id = -1
	if len(ID) > 0 {
		d.id = ID[0]
	}
	return d, nil
}

// AddData adds the given data point(s) to the histogram
func (D *Data) AddData(point ...float64) {
	var norma bool
	if D.normalized {
		norma = true
		D.UnNormalize()
	}
	last := len(D.dividers) - 1
	for _, v := range point {
		if v < D.dividers[0] || v >= D.dividers[last] {
			continue
		}
		//first divider larger than v
		j := sort.Search(len(D.dividers), func(i int) bool { return D.dividers[i] > v })
		D.histo[j-1]++
	}
	D.total += len(point)
	if norma {
		D.Normalize()
	}
}

// Normalized returns true if the histogram is normalized
func (D *Data) Normalized() bool {
	return D.normalized
}

// Normalize divides each bin by the total number of values.
func (D *Data) Normalize() {
	D.normaunnorma(true)
}

// UnNormalize reverts Normalize
func (D *Data) UnNormalize() {
	D.normaunnorma(false)
}

func (D *Data) normaunnorma(normalize bool) {
	if D.total <= 0 || D.normalized == normalize {
		return
	}
	n := float64(D.total)
	D.normalized = false
	if normalize {
		n = 1 / float64(D.total)
		D.normalized = true
	}
	floats.Scale(n, D.histo)
}

// CopyDividers returns a copy of the dividers of the histogram, in dest, if given
// and large enough.
func (D *Data) CopyDividers(dest ...[]float64) []float64 {
	d := getCopySlice(len(D.dividers), dest...)
	copy(d, D.dividers)
	return d
}

// Copy returns a copy of the bins of the histogram, in dest, if given and large enough.
func (D *Data) Copy(dest ...[]float64) []float64 {
	d := getCopySlice(len(D.histo), dest...)
	copy(d, D.histo)
	return d
}

// View returns the bins of the histogram, not a copy.
func (D *Data) View() []float64 {
	return D.histo
}

// Sum returns the sum of all the bins.
func (D *Data) Sum() float64 {
	return floats.Sum(D.histo)
}

// Add adds the histograms a and b, which must have the same dividers and be
// both normalized or both not, putting the result in the receiver.
func (D *Data) Add(a, b *Data) error {
	if !floats.Equal(a.dividers, b.dividers) {
		return fmt.Errorf("histo: dividers must match in added histograms")
	}
	if a.normalized != b.normalized {
		return fmt.Errorf("histo: cannot add a normalized and a non-normalized histogram")
	}
	h := make([]float64, len(a.histo))
	total := a.total + b.total
	if a.normalized && total > 0 {
		//each one was scaled by its own total.
		for i := range h {
			h[i] = (a.histo[i]*float64(a.total) + b.histo[i]*float64(b.total)) / float64(total)
		}
	} else {
		floats.AddTo(h, a.histo, b.histo)
	}
	D.dividers = a.CopyDividers(D.dividers)
	D.histo = h
	D.total = total
	D.normalized = a.normalized
	return nil
}

func (D *Data) reHisto(rawdata []float64) {
	s := make([]float64, len(rawdata))
	copy(s, rawdata)
	sort.Float64s(s)
	D.total = len(s)
	//stat.Histogram panics instead of omitting the values that are off limits
	//so we remove them here before the call.
	maxi := sort.SearchFloat64s(s, D.dividers[len(D.dividers)-1])
	s = s[:maxi]
	mini := sort.SearchFloat64s(s, D.dividers[0])
	s = s[mini:]
	D.histo = stat.Histogram(D.histo, D.dividers, s, nil)
}

func getCopySlice(N int, dest ...[]float64) []float64 {
	if len(dest) > 0 && cap(dest[0]) >= N {
		return dest[0][:N]
	}
	return make([]float64, N)
}
