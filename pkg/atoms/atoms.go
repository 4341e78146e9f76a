// Read the ATOM records of an mmcif file into a slice of typed
// records, in file order. Nothing else in the file is looked at.

package atoms

import (
	"bytes"
	"io"
	"os"
	"strconv"

	"github.com/andrew-torda/mmcif_atoms/pkg/cmmn"
	"github.com/andrew-torda/mmcif_atoms/pkg/zwrap"
)

// An Atom is one ATOM record. The fields are in the order of the
// columns in the _atom_site table and keep their mmcif meanings.
// X, Y and Z are copies of CartnX, CartnY and CartnZ, which saves
// callers typing Cartn everywhere. They are always equal.
type Atom struct {
	Type          string // group_PDB, the record marker, "ATOM"
	Id            int    // atom serial number
	TypeSymbol    string // element
	LabelAtomId   string
	LabelAltId    string
	LabelCompId   string
	LabelAsymId   string
	LabelEntityId int
	LabelSeqId    int
	InsCode       string // pdbx_PDB_ins_code
	CartnX        float64
	CartnY        float64
	CartnZ        float64
	Occupancy     float64
	BIsoOrEquiv   float64
	FormalCharge  string // can be empty, "?" or junk, so keep the text
	AuthSeqId     int
	AuthCompId    string
	AuthAsymId    string
	AuthAtomId    string
	ModelNum      int
	X, Y, Z       float64
}

// Atoms is what a parse returns. Record i came from the i'th ATOM
// line of the input.
type Atoms []Atom

// NCol is the number of columns in the atom_site table.
const NCol = 21

// A dst says where in an atom one column lands. Exactly one of the
// three pointers is set and which one it is decides the conversion
// for that column. There is no separate table of types to drift out
// of sync with the field list.
type dst struct {
	s *string
	i *int
	f *float64
}

// cifCol is one column of the atom_site table. cifName is the name
// in the mmcif file, like label_asym_id. key is the name we use when
// handing a record to a host environment (see bind.go). The dst
// function points into the atom, so this one table serves the field
// mapper, the type coercer and the binding layer.
type cifCol struct {
	cifName string
	key     string
	dst     func(*Atom) dst
}

var atomSiteCols = [NCol]cifCol{
	{"group_PDB", "type", func(a *Atom) dst { return dst{s: &a.Type} }},
	{"id", "id", func(a *Atom) dst { return dst{i: &a.Id} }},
	{"type_symbol", "type_symbol", func(a *Atom) dst { return dst{s: &a.TypeSymbol} }},
	{"label_atom_id", "label_atom_id", func(a *Atom) dst { return dst{s: &a.LabelAtomId} }},
	{"label_alt_id", "label_alt_id", func(a *Atom) dst { return dst{s: &a.LabelAltId} }},
	{"label_comp_id", "label_comp_id", func(a *Atom) dst { return dst{s: &a.LabelCompId} }},
	{"label_asym_id", "label_asym_id", func(a *Atom) dst { return dst{s: &a.LabelAsymId} }},
	{"label_entity_id", "label_entity_id", func(a *Atom) dst { return dst{i: &a.LabelEntityId} }},
	{"label_seq_id", "label_seq_id", func(a *Atom) dst { return dst{i: &a.LabelSeqId} }},
	{"pdbx_PDB_ins_code", "ins_code", func(a *Atom) dst { return dst{s: &a.InsCode} }},
	{"Cartn_x", "Cartn_x", func(a *Atom) dst { return dst{f: &a.CartnX} }},
	{"Cartn_y", "Cartn_y", func(a *Atom) dst { return dst{f: &a.CartnY} }},
	{"Cartn_z", "Cartn_z", func(a *Atom) dst { return dst{f: &a.CartnZ} }},
	{"occupancy", "occupancy", func(a *Atom) dst { return dst{f: &a.Occupancy} }},
	{"B_iso_or_equiv", "B_iso_or_equiv", func(a *Atom) dst { return dst{f: &a.BIsoOrEquiv} }},
	{"pdbx_formal_charge", "formal_charge", func(a *Atom) dst { return dst{s: &a.FormalCharge} }},
	{"auth_seq_id", "auth_seq_id", func(a *Atom) dst { return dst{i: &a.AuthSeqId} }},
	{"auth_comp_id", "auth_comp_id", func(a *Atom) dst { return dst{s: &a.AuthCompId} }},
	{"auth_asym_id", "auth_asym_id", func(a *Atom) dst { return dst{s: &a.AuthAsymId} }},
	{"auth_atom_id", "auth_atom_id", func(a *Atom) dst { return dst{s: &a.AuthAtomId} }},
	{"pdbx_PDB_model_num", "model_num", func(a *Atom) dst { return dst{i: &a.ModelNum} }},
}

var atomMarker = []byte("ATOM")

// isAtomLine says if a line is a candidate atom record. The marker
// must be at the very start of the line. HETATM and everything else
// fails the test and is skipped, which is not an error.
func isAtomLine(line []byte) bool {
	return bytes.HasPrefix(line, atomMarker)
}

// atoi converts a token to an int. On any failure we keep the zero
// value. Deliberate. See the package comment.
func atoi(tok []byte) int {
	n, err := strconv.Atoi(string(tok))
	if err != nil {
		return 0
	}
	return n
}

// atof is atoi for floats.
func atof(tok []byte) float64 {
	f, err := strconv.ParseFloat(string(tok), 64)
	if err != nil {
		return 0
	}
	return f
}

// fill maps the split up pieces of a line onto an atom, piece i to
// column i. Pieces beyond the table are dropped. If the line was
// short, the trailing fields keep their zero values. Neither case
// is an error.
func (a *Atom) fill(cmpnt [][]byte) {
	n := len(cmpnt)
	if n > NCol {
		n = NCol
	}
	for i := 0; i < n; i++ {
		d := atomSiteCols[i].dst(a)
		switch {
		case d.s != nil:
			*d.s = string(cmpnt[i])
		case d.i != nil:
			*d.i = atoi(cmpnt[i])
		case d.f != nil:
			*d.f = atof(cmpnt[i])
		}
	}
	a.X, a.Y, a.Z = a.CartnX, a.CartnY, a.CartnZ
}

const iniAtomLen = 500 // Initially make room for this many atoms

// parse walks a whole buffer, line by line. No state is carried from
// one line to the next, so the only order that matters is the order
// of appends.
func parse(buf []byte) Atoms {
	atoms := make(Atoms, 0, iniAtomLen)
	var scrtch [scrtchLen][]byte
	for len(buf) > 0 {
		var line []byte
		if i := bytes.IndexByte(buf, '\n'); i >= 0 {
			line, buf = buf[:i], buf[i+1:]
		} else {
			line, buf = buf, nil
		}
		if !isAtomLine(line) {
			continue
		}
		var a Atom
		a.fill(fields(line, scrtch[:]))
		atoms = append(atoms, a)
	}
	return atoms
}

// Parse reads everything from r, then parses it. The whole input is
// held in memory. Files are big, but they are not that big, and it
// is how we get to treat parsing as a pure function of the bytes.
// The only error you can see is a read error.
func Parse(r io.Reader) (Atoms, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return parse(buf), nil
}

// ParseString parses in-memory text. It cannot fail. Malformed
// fields end up as zero values, per the rules in fill().
func ParseString(s string) Atoms {
	return parse([]byte(s))
}

// ParseFile reads the file, gunzipping if necessary, and parses it.
// An unreadable file gives you the error from the os, untouched.
func ParseFile(fname string) (Atoms, error) {
	fp, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	rdr, err := zwrap.WrapMaybe(fp)
	if err != nil {
		fp.Close()
		return nil, err
	}
	defer rdr.Close()
	return Parse(rdr)
}

// Coords projects each atom onto its coordinates, keeping order.
func (atoms Atoms) Coords() cmmn.XyzSl {
	xyz := make(cmmn.XyzSl, len(atoms))
	for i := range atoms {
		xyz[i] = cmmn.Xyz{X: atoms[i].X, Y: atoms[i].Y, Z: atoms[i].Z}
	}
	return xyz
}

// Coordinates parses a file and returns just the coordinates.
func Coordinates(fname string) (cmmn.XyzSl, error) {
	atoms, err := ParseFile(fname)
	if err != nil {
		return nil, err
	}
	return atoms.Coords(), nil
}
