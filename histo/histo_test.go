package histo

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewData(Te *testing.T) {
	rawdata := []float64{1, 6, 3, 2, 4, 5, 7, 6, 3.5, 3, 5, 1, 1, 0, 0, 5, 8, 1, 2, 3, 44, 3, 7, 3, 1, 3, 5, 32, 1}
	D, err := NewData([]float64{0, 1, 2, 3, 4, 8}, rawdata, 3)
	require.NoError(Te, err)
	assert.Equal(Te, 3, D.ID())
	assert.Equal(Te, len(rawdata), D.Total())
	assert.Equal(Te, []float64{2, 6, 2, 7, 9}, D.View())
	//8, 44 and 32 are outside.
	assert.Equal(Te, float64(len(rawdata)-3), D.Sum())

	_, err = NewData([]float64{1}, nil)
	assert.Error(Te, err)
	_, err = NewData([]float64{3, 1, 2}, nil)
	assert.Error(Te, err)
}

func TestAddData(Te *testing.T) {
	D, err := NewData([]float64{0, 10, 20}, nil)
	require.NoError(Te, err)
	assert.Equal(Te, -1, D.ID())
	D.AddData(0, 9.99, 10, 19, 20, -1)
	assert.Equal(Te, []float64{2, 2}, D.View())
	assert.Equal(Te, 6, D.Total())

	D.Normalize()
	assert.True(Te, D.Normalized())
	assert.InDeltaSlice(Te, []float64{2.0 / 6, 2.0 / 6}, D.View(), 1e-12)
	D.AddData(5, 5)
	assert.True(Te, D.Normalized())
	assert.InDeltaSlice(Te, []float64{0.5, 0.25}, D.View(), 1e-12)
	D.UnNormalize()
	assert.InDeltaSlice(Te, []float64{4, 2}, D.View(), 1e-12)
}

func TestAdd(Te *testing.T) {
	a, _ := NewData([]float64{0, 1, 2}, []float64{0.5, 1.5, 1.5})
	b, _ := NewData([]float64{0, 1, 2}, []float64{0.5})
	sum := new(Data)
	require.NoError(Te, sum.Add(a, b))
	assert.Equal(Te, []float64{2, 2}, sum.View())
	assert.Equal(Te, 4, sum.Total())

	a.Normalize()
	b.Normalize()
	require.NoError(Te, a.Add(a, b))
	assert.InDeltaSlice(Te, []float64{0.5, 0.5}, a.View(), 1e-12)

	c, _ := NewData([]float64{0, 1, 3}, nil)
	assert.Error(Te, sum.Add(sum, c))
	assert.Error(Te, sum.Add(sum, b))
}

func TestCopies(Te *testing.T) {
	D, _ := NewData([]float64{0, 1, 2}, []float64{0.5})
	c := D.Copy()
	c[0] = 100
	assert.Equal(Te, 1.0, D.View()[0])
	dest := make([]float64, 10)
	d := D.CopyDividers(dest)
	assert.Equal(Te, []float64{0, 1, 2}, d)
	assert.Equal(Te, 1.0, dest[1])
}

func TestHistoJSON(Te *testing.T) {
	D, _ := NewData([]float64{0, 1, 2, 3}, []float64{0.1, 1.1, 1.2, 2.5}, 7)
	j, err := json.Marshal(D)
	require.NoError(Te, err)
	D2 := new(Data)
	require.NoError(Te, json.Unmarshal(j, D2))
	assert.Equal(Te, D, D2)
	assert.Contains(Te, D2.String(), "ID: 7")

	assert.Error(Te, json.Unmarshal([]byte(`{"dividers":[0,1],"histo":[1,2]}`), D2))
}
