package observe

import (
	"context"
	"errors"
	"math"
	"testing"

	cyto "github.com/cytoskel/cytotraj"
	v3 "github.com/cytoskel/cytotraj/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fil(Te *testing.T, id int, beads ...[3]float64) *cyto.Filament {
	Te.Helper()
	m, err := v3.FromVecs(beads)
	require.NoError(Te, err)
	F, err := cyto.NewFilament(id, m, 0, 0)
	require.NoError(Te, err)
	return F
}

func snap(Te *testing.T, step, time float64, fils ...*cyto.Filament) *cyto.Snapshot {
	Te.Helper()
	S, err := cyto.NewSnapshot(step, time, fils, nil, nil, nil)
	require.NoError(Te, err)
	return S
}

func isDegenerate(err error) bool {
	var deg *cyto.DegenerateInputError
	return errors.As(err, &deg)
}

// one filament of 3 beads along x, 1000 nm long.
func TestSingleFilament(Te *testing.T) {
	S := snap(Te, 0, 0, fil(Te, 0, [3]float64{0, 0, 0}, [3]float64{500, 0, 0}, [3]float64{1000, 0, 0}))
	e, err := EndToEnd(S)
	require.NoError(Te, err)
	assert.InDelta(Te, 1.0, e, 1e-12)
	c, err := ContourLength(S)
	require.NoError(Te, err)
	assert.InDelta(Te, 1000, c, 1e-9)
	assert.Equal(Te, []int{0, 1}, S.CylinderIDs())
	o, err := OrderParameter(S)
	require.NoError(Te, err)
	assert.InDelta(Te, 1, o, 1e-9)
	g, err := GyrationSq(S)
	require.NoError(Te, err)
	//midpoints at 250 and 750, com at 500.
	assert.InDelta(Te, 250*250*1e-5, g, 1e-12)
}

func TestCenterOfMass(Te *testing.T) {
	S := snap(Te, 0, 0,
		fil(Te, 3, [3]float64{0, 0, 0}, [3]float64{600, 0, 0}, [3]float64{900, 300, 0}),
		fil(Te, 1, [3]float64{0, 0, 300}, [3]float64{300, 0, 300}),
	)
	com, err := CenterOfMass(S)
	require.NoError(Te, err)
	//every bead counts once, whatever filament it belongs to.
	assert.InDeltaSlice(Te, []float64{360, 60, 120}, com[:], 1e-9)
	assert.Equal(Te, [3]float64{0, 0, 300}, S.Filaments[1].Bead(0))

	_, err = CenterOfMass(snap(Te, 1, 1))
	assert.True(Te, isDegenerate(err))
}

func TestEnclosingVolume(Te *testing.T) {
	S := snap(Te, 0, 0,
		fil(Te, 0, [3]float64{0, 0, 0}, [3]float64{700, 50, 0}, [3]float64{2000, 0, 0}),
		fil(Te, 1, [3]float64{1000, 0, 0}, [3]float64{1000, 500, 0}),
	)
	assert.Len(Te, Endpoints(S), 4)
	v, err := EnclosingVolume(context.Background(), S)
	require.NoError(Te, err)
	assert.InDelta(Te, 4.0/3.0*math.Pi, v, 1e-9)

	empty := snap(Te, 3, 1)
	_, err = EnclosingVolume(context.Background(), empty)
	assert.True(Te, isDegenerate(err))
	_, err = EndToEnd(empty)
	assert.True(Te, isDegenerate(err))
	_, err = ContourLength(empty)
	assert.True(Te, isDegenerate(err))
	_, err = GyrationSq(empty)
	assert.True(Te, isDegenerate(err))
}

func contracting(Te *testing.T, shift, t float64) *cyto.Snapshot {
	return snap(Te, t, t,
		fil(Te, 0, [3]float64{-1000 + shift, 0, 0}, [3]float64{-800 + shift, 0, 0}),
		fil(Te, 1, [3]float64{800 - shift, 0, 0}, [3]float64{1000 - shift, 0, 0}),
	)
}

func TestContractileVelocity(Te *testing.T) {
	si := contracting(Te, 0, 0)
	sf := contracting(Te, 100, 2)
	v, err := ContractileVelocity(si, sf)
	require.NoError(Te, err)
	//each midpoint moves 50 nm/s toward the center, 900 nm away.
	assert.InDelta(Te, 0.001*50.0/900.0, v, 1e-12)
	v, err = ContractileVelocity(sf, contracting(Te, 0, 4))
	require.NoError(Te, err)
	assert.Less(Te, v, 0.0)

	_, err = ContractileVelocity(si, contracting(Te, 100, 0))
	assert.True(Te, isDegenerate(err))

	other := snap(Te, 5, 5, fil(Te, 5, [3]float64{0, 0, 0}, [3]float64{1, 0, 0}))
	_, err = ContractileVelocity(si, other)
	assert.True(Te, isDegenerate(err))
}

func TestLengthDistribution(Te *testing.T) {
	S := snap(Te, 7, 0,
		fil(Te, 0, [3]float64{0, 0, 0}, [3]float64{100, 0, 0}),
		fil(Te, 1, [3]float64{0, 0, 0}, [3]float64{150, 0, 0}, [3]float64{150, 200, 0}),
		fil(Te, 2, [3]float64{0, 0, 0}, [3]float64{0, 0, 50}),
	)
	h, err := LengthDistribution(S, []float64{0, 100, 200, 400})
	require.NoError(Te, err)
	assert.Equal(Te, []float64{1, 1, 1}, h.View())
	assert.Equal(Te, 7, h.ID())
	_, err = LengthDistribution(S, []float64{0})
	assert.Error(Te, err)
}

func TestGrid(Te *testing.T) {
	G := Grid{N: [3]int{2, 2, 2}, Size: [3]float64{1000, 1000, 1000}}
	require.NoError(Te, G.Valid())
	assert.Equal(Te, 8, G.Len())
	i, err := G.Index([3]float64{1500, 1500, 1500})
	require.NoError(Te, err)
	assert.Equal(Te, 7, i)
	i, err = G.Index([3]float64{10, 1000, 0})
	require.NoError(Te, err)
	assert.Equal(Te, 2, i)
	assert.Equal(Te, [3]float64{500, 1500, 500}, G.Center(2))
	assert.Equal(Te, [3]float64{1500, 1500, 1500}, G.Center(7))

	out := [3]float64{2500, -10, 500}
	_, err = G.Index(out)
	assert.True(Te, isDegenerate(err))
	G.Policy = Clamp
	i, err = G.Index(out)
	require.NoError(Te, err)
	assert.Equal(Te, 1, i)
	G.Policy = Wrap
	i, err = G.Index(out)
	require.NoError(Te, err)
	assert.Equal(Te, 2, i)
	_, err = G.Index([3]float64{math.NaN(), 0, 0})
	assert.Error(Te, err)

	assert.Error(Te, Grid{N: [3]int{0, 1, 1}, Size: [3]float64{1, 1, 1}}.Valid())
	assert.Error(Te, Grid{N: [3]int{1, 1, 1}, Size: [3]float64{1, 0, 1}}.Valid())
	assert.Error(Te, Grid{N: [3]int{1, 1, 1}, Size: [3]float64{1, 1, 1}, Policy: 9}.Valid())

	p, err := ParsePolicy(" Clamp")
	require.NoError(Te, err)
	assert.Equal(Te, Clamp, p)
	assert.Equal(Te, "wrap", Wrap.String())
	_, err = ParsePolicy("reflect")
	assert.Error(Te, err)
}

func TestDensity(Te *testing.T) {
	S := snap(Te, 0, 0,
		fil(Te, 0, [3]float64{100, 100, 100}, [3]float64{300, 100, 100}),
		fil(Te, 1, [3]float64{1500, 1500, 1500}, [3]float64{1700, 1500, 1500}, [3]float64{1700, 1500, 1900}),
	)
	G := Grid{N: [3]int{2, 2, 2}, Size: [3]float64{1000, 1000, 1000}}
	d, err := Density(S, G)
	require.NoError(Te, err)
	require.Len(Te, d, 8)
	assert.InDelta(Te, 0.2, d[0], 1e-12)
	assert.InDelta(Te, 0.6, d[7], 1e-12)
	assert.InDelta(Te, 0.8, d[0]+d[7], 1e-12)

	far := snap(Te, 0, 0, fil(Te, 0, [3]float64{5000, 0, 0}, [3]float64{5200, 0, 0}))
	_, err = Density(far, G)
	assert.True(Te, isDegenerate(err))
	G.Policy = Clamp
	d, err = Density(far, G)
	require.NoError(Te, err)
	assert.InDelta(Te, 0.2, d[1], 1e-12)
	_, err = Density(far, Grid{})
	assert.Error(Te, err)
}
