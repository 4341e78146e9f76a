// Calculate some geometries on parsed structures, lengths and
// distance matrices.

package geom

import (
	"math"

	"github.com/andrew-torda/matrix"
	"github.com/andrew-torda/mmcif_atoms/pkg/cmmn"
)

const (
	mindist  = 0.5 // closer than this, two atoms are sitting on
	mindist2 = mindist * mindist
	maxdist  = 5.0 // each other; further than this they are not bonded
	maxdist2 = maxdist * maxdist
)

const Brokendist = -99

type Error string

func (e Error) Error() string { return string(e) }

// Dist is the plain distance between two points. No checks, no
// errors. Use BondDist if you want the sanity bounds.
func Dist(a, b cmmn.Xyz) float64 {
	xd := a.X - b.X
	yd := a.Y - b.Y
	zd := a.Z - b.Z
	return math.Sqrt(xd*xd + yd*yd + zd*zd)
}

// BondDist gets the distance between two points that are supposed
// to be bonded. If it is bigger than maxdist or smaller than
// mindist, the geometry is broken and we return an error along with
// Brokendist.
func BondDist(a, b cmmn.Xyz) (float64, error) {
	r2 := sqDist(a, b)
	if r2 >= maxdist2 {
		return Brokendist, Error("too big")
	}
	if r2 <= mindist2 {
		return Brokendist, Error("too small")
	}
	return math.Sqrt(r2), nil
}

// sqDist saves the square root when we only compare.
func sqDist(a, b cmmn.Xyz) float64 {
	xd := a.X - b.X
	yd := a.Y - b.Y
	zd := a.Z - b.Z
	return xd*xd + yd*yd + zd*zd
}

// TraceDists returns the n-1 distances between consecutive points,
// in file order. With atoms from one chain this is the backbone
// trace. With a whole structure it still says something useful about
// how sane the coordinates are.
func TraceDists(xyz cmmn.XyzSl) []float64 {
	if len(xyz) < 2 {
		return nil
	}
	ret := make([]float64, len(xyz)-1)
	for i := 1; i < len(xyz); i++ {
		ret[i-1] = Dist(xyz[i-1], xyz[i])
	}
	return ret
}

// DistMatrix fills out the n x n matrix of pairwise distances. The
// matrix is resized, not reallocated, so a caller working through a
// pile of files can keep handing us the same one. Values are
// float32. That is what the matrix package stores and it is plenty
// for interatomic distances.
func DistMatrix(mat *matrix.FMatrix2d, xyz cmmn.XyzSl) *matrix.FMatrix2d {
	n := len(xyz)
	mat = mat.Resize(n, n)
	for i := 0; i < n; i++ {
		mat.Mat[i][i] = 0
		for j := i + 1; j < n; j++ {
			d := float32(Dist(xyz[i], xyz[j]))
			mat.Mat[i][j] = d
			mat.Mat[j][i] = d
		}
	}
	return mat
}
