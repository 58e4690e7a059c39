package observe

import (
	"fmt"
	"math"
	"strings"

	cyto "github.com/cytoskel/cytotraj"
)

// Policy says what to do with points that fall outside a Grid.
type Policy int

const (
	Fail  Policy = iota //return an error
	Clamp               //use the closest compartment
	Wrap                //periodic boundaries
)

var policyNames = [...]string{"fail", "clamp", "wrap"}

func (p Policy) String() string {
	if p < 0 || int(p) >= len(policyNames) {
		return fmt.Sprintf("Policy(%d)", int(p))
	}
	return policyNames[p]
}

// ParsePolicy returns the Policy with the given name, ignoring case.
func ParsePolicy(s string) (Policy, error) {
	for i, v := range policyNames {
		if strings.EqualFold(strings.TrimSpace(s), v) {
			return Policy(i), nil
		}
	}
	return Fail, fmt.Errorf("observe: unknown out-of-grid policy %q", s)
}

// Grid is a regular division of the simulation box in N[0]×N[1]×N[2] compartments
// of size Size[0]×Size[1]×Size[2], with a corner at the origin.
// Compartment (ix, iy, iz) has the index ix + iy·N[0] + iz·N[0]·N[1].
type Grid struct {
	N      [3]int
	Size   [3]float64
	Policy Policy
}

// Len returns the number of compartments in the grid.
func (G Grid) Len() int {
	return G.N[0] * G.N[1] * G.N[2]
}

// Valid returns an error if the grid has no compartments, or compartments
// of non-positive size.
func (G Grid) Valid() error {
	for i := 0; i < 3; i++ {
		if G.N[i] < 1 || G.Size[i] <= 0 || math.IsInf(G.Size[i], 0) || math.IsNaN(G.Size[i]) {
			return cyto.NewDegenerateInputError("Grid", "invalid grid: %v compartments of size %v", G.N, G.Size)
		}
	}
	if G.Policy < Fail || G.Policy > Wrap {
		return cyto.NewCError("Grid", fmt.Sprintf("invalid out-of-grid policy %d", int(G.Policy)))
	}
	return nil
}

// Index returns the index of the compartment that contains p.
func (G Grid) Index(p [3]float64) (int, error) {
	var idx [3]int
	for i := 0; i < 3; i++ {
		c := math.Floor(p[i] / G.Size[i])
		n := G.N[i]
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return -1, cyto.NewDegenerateInputError("Index", "point %v cannot be placed in a grid", p)
		}
		if c >= 0 && c < float64(n) {
			idx[i] = int(c)
			continue
		}
		switch G.Policy {
		case Clamp:
			if c < 0 {
				idx[i] = 0
			} else {
				idx[i] = n - 1
			}
		case Wrap:
			m := math.Mod(c, float64(n))
			if m < 0 {
				m += float64(n)
			}
			idx[i] = int(m)
		default:
			return -1, cyto.NewDegenerateInputError("Index", "point %v is outside the %v grid of %v compartments", p, G.N, G.Size)
		}
	}
	return idx[0] + idx[1]*G.N[0] + idx[2]*G.N[0]*G.N[1], nil
}

// Center returns the coordinates of the center of the compartment with the
// given index.
func (G Grid) Center(index int) [3]float64 {
	ix := index % G.N[0]
	iy := (index / G.N[0]) % G.N[1]
	iz := index / (G.N[0] * G.N[1])
	return [3]float64{
		(float64(ix) + 0.5) * G.Size[0],
		(float64(iy) + 0.5) * G.Size[1],
		(float64(iz) + 0.5) * G.Size[2],
	}
}

// Density returns, for each compartment of G, the total length in µm of the cylinders
// of S whose midpoint is in that compartment.
func Density(S *cyto.Snapshot, G Grid) ([]float64, error) {
	if err := G.Valid(); err != nil {
		return nil, cyto.ErrDecorate(err, "Density")
	}
	ret := make([]float64, G.Len())
	for _, c := range S.SortedCylinders() {
		i, err := G.Index(c.Midpoint())
		if err != nil {
			return nil, cyto.ErrDecorate(err, fmt.Sprintf("Density: cylinder %d", c.ID))
		}
		ret[i] += micro * c.Length()
	}
	return ret, nil
}
