package order

import (
	"sort"

	cyto "github.com/cytoskel/cytotraj"
)

type byID []*cyto.Cylinder

func (b byID) Len() int           { return len(b) }
func (b byID) Less(i, j int) bool { return b[i].ID < b[j].ID }
func (b byID) Swap(i, j int)      { b[i], b[j] = b[j], b[i] }

func sortByID(c []*cyto.Cylinder) {
	sort.Sort(byID(c))
}
