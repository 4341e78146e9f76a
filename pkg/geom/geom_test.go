package geom_test

import (
	"math"
	"testing"

	"github.com/andrew-torda/matrix"
	. "github.com/andrew-torda/mmcif_atoms/pkg/cmmn"
	. "github.com/andrew-torda/mmcif_atoms/pkg/geom"
)

var disttests = []struct {
	name string
	x1   Xyz
	x2   Xyz
	res  float64
	e    bool // should BondDist complain ?
}{
	{"1.5 ", Xyz{X: 1.50, Y: 0, Z: 0}, Xyz{X: 0, Y: 0, Z: 0}, 1.5, false},
	{"345 ", Xyz{X: 3, Y: 4, Z: 0}, Xyz{X: 0, Y: 0, Z: 0}, 5, true}, // 5 is too long for a bond
	{"same", Xyz{X: 1, Y: 1, Z: 1}, Xyz{X: 1, Y: 1, Z: 1}, 0, true}, // and 0 too short
	{"diag", Xyz{X: 1, Y: 1, Z: 1}, Xyz{X: 2, Y: 2, Z: 2}, math.Sqrt(3), false},
}

// permuteXyz rotates x, y and z for tests whose answers should not
// change when we move the axes around.
func permuteXyz(x Xyz) Xyz {
	x.X, x.Y, x.Z = x.Y, x.Z, x.X
	return x
}

func TestDist(t *testing.T) {
	const tol = 1e-12
	for _, test := range disttests {
		x1, x2 := test.x1, test.x2
		for i := 0; i < 3; i++ {
			d1, d2 := Dist(x1, x2), Dist(x2, x1)
			if d1 != d2 {
				t.Errorf("test %s: not symmetric, %f %f", test.name, d1, d2)
			}
			if math.Abs(d1-test.res) > tol {
				t.Errorf("test %s: got %f expected %f", test.name, d1, test.res)
			}
			x1, x2 = permuteXyz(x1), permuteXyz(x2)
		}
	}
}

func TestBondDist(t *testing.T) {
	for _, test := range disttests {
		d, err := BondDist(test.x1, test.x2)
		if test.e {
			if err == nil {
				t.Errorf("test %s: expected an error, got dist %f", test.name, d)
			}
			if d != Brokendist {
				t.Errorf("test %s: broken bond should give Brokendist", test.name)
			}
		} else if err != nil {
			t.Errorf("test %s: unexpected error %s", test.name, err)
		}
	}
}

func TestTraceDists(t *testing.T) {
	xyz := XyzSl{{X: 0, Y: 0, Z: 0}, {X: 1.5, Y: 0, Z: 0}, {X: 1.5, Y: 2, Z: 0}}
	d := TraceDists(xyz)
	if len(d) != 2 || d[0] != 1.5 || d[1] != 2 {
		t.Error("trace distances wrong:", d)
	}
	if TraceDists(xyz[:1]) != nil {
		t.Error("one point should have no trace distances")
	}
	if TraceDists(nil) != nil {
		t.Error("no points should have no trace distances")
	}
}

func TestDistMatrix(t *testing.T) {
	xyz := XyzSl{{X: 0, Y: 0, Z: 0}, {X: 3, Y: 0, Z: 0}, {X: 0, Y: 4, Z: 0}}
	var mat matrix.FMatrix2d
	m := DistMatrix(&mat, xyz)
	if nr, nc := m.Size(); nr != 3 || nc != 3 {
		t.Fatal("matrix size wrong:", nr, nc)
	}
	for i := 0; i < 3; i++ {
		if m.Mat[i][i] != 0 {
			t.Error("diagonal not zero at", i)
		}
		for j := i + 1; j < 3; j++ {
			if m.Mat[i][j] != m.Mat[j][i] {
				t.Error("matrix not symmetric at", i, j)
			}
		}
	}
	if m.Mat[0][1] != 3 || m.Mat[0][2] != 4 || m.Mat[1][2] != 5 {
		t.Error("distances wrong:", m.Mat[0][1], m.Mat[0][2], m.Mat[1][2])
	}
}
