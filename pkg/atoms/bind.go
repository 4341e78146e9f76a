// Hand records to a host environment. Callers embedding this code
// behind a foreign-function layer want a bag of key/value pairs with
// the traditional mmcif spellings, not a Go struct. There is no
// parsing in here, only renaming. The keys come out of the same
// column table the parser reads, so the two cannot drift apart.

package atoms

// Dict returns the record as a map with the 21 schema keys plus the
// x, y, z copies. Integer fields come out as int, floats as float64
// and the rest as string, so the map survives JSON encoding with the
// types a host expects.
func (a *Atom) Dict() map[string]interface{} {
	d := make(map[string]interface{}, NCol+3)
	for i := range atomSiteCols {
		t := atomSiteCols[i].dst(a)
		switch {
		case t.s != nil:
			d[atomSiteCols[i].key] = *t.s
		case t.i != nil:
			d[atomSiteCols[i].key] = *t.i
		case t.f != nil:
			d[atomSiteCols[i].key] = *t.f
		}
	}
	d["x"], d["y"], d["z"] = a.X, a.Y, a.Z
	return d
}

// A Summary is the aggregate a host gets back from a whole parse,
// the atom list and the count.
type Summary struct {
	Atoms     []map[string]interface{} `json:"atoms"`
	AtomCount int                      `json:"atom_count"`
}

// NewSummary wraps a parse result for export.
func NewSummary(atoms Atoms) *Summary {
	s := &Summary{
		Atoms:     make([]map[string]interface{}, len(atoms)),
		AtomCount: len(atoms),
	}
	for i := range atoms {
		s.Atoms[i] = atoms[i].Dict()
	}
	return s
}
