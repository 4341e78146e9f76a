// Package cmmn has the definitions shared by the atom reading and
// geometry packages, plus a helper used all over the tests.
package cmmn

import (
	"fmt"
	"io"
	"os"
)

const (
	ExitSuccess = iota
	ExitFailure
	ExitUsageError
)

// Xyz is one point in orthogonal coordinates, in angstrom.
type Xyz struct{ X, Y, Z float64 }

// XyzSl is a set of points. We define the type so we can hang
// methods on it.
type XyzSl []Xyz

// WrtTemp writes a string to a temporary file and returns
// the filename. It is used all over the place in testing.
func WrtTemp(s string) (string, error) {
	f_tmp, err := os.CreateTemp("", "_del_me_testing")
	if err != nil {
		return "", fmt.Errorf("tempfile fail")
	}

	if _, err := io.WriteString(f_tmp, s); err != nil {
		return "", fmt.Errorf("writing string to temp file %v", f_tmp.Name())
	}
	name := f_tmp.Name()
	f_tmp.Close()
	return name, nil
}
