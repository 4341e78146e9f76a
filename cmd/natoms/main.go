// Open an mmcif file and count the ATOM records. This might be the
// number of atoms.

package main

import (
	"fmt"
	"log"
	"os"

	"github.com/andrew-torda/mmcif_atoms/pkg/atoms"
	"github.com/andrew-torda/mmcif_atoms/pkg/cmmn"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage:", os.Args[0], "filename")
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(cmmn.ExitUsageError)
	}
	fname := os.Args[1]
	nAtom, err := atoms.NumAtoms(fname)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("got", nAtom)
	os.Exit(cmmn.ExitSuccess)
}
