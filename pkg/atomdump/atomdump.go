// Package atomdump does the work for the atomdump command. It
// parses one mmcif file and prints what it found, in one of a few
// shapes. The command exists so you can look at what the parser
// produced without writing any code, and because a pipeline that
// just wants coordinates or a count should not have to care that
// this is a Go library.

package atomdump

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path"

	"github.com/andrew-torda/mmcif_atoms/pkg/atoms"
	"github.com/andrew-torda/mmcif_atoms/pkg/cmmn"
	"github.com/andrew-torda/mmcif_atoms/pkg/geom"
)

// CmdFlag is literally command line flags after parsing
type CmdFlag struct {
	Json  bool // print the host-binding summary as json
	Coord bool // print x, y, z lines only
	Count bool // print the number of atoms only
	Dists bool // print consecutive-atom distance statistics
}

func usage() int {
	fmt.Fprintln(os.Stderr, "usage:", path.Base(os.Args[0]), "[flags] infile")
	flag.PrintDefaults()
	return cmmn.ExitUsageError
}

// dumpAtoms is the default output, one line per record.
func dumpAtoms(wrtr io.Writer, aSl atoms.Atoms) {
	for i := range aSl {
		a := &aSl[i]
		fmt.Fprintf(wrtr, "%s %d %s %s %s %d %8.3f %8.3f %8.3f %.2f %.2f %d\n",
			a.Type, a.Id, a.LabelAtomId, a.LabelCompId, a.AuthAsymId,
			a.AuthSeqId, a.X, a.Y, a.Z, a.Occupancy, a.BIsoOrEquiv,
			a.ModelNum)
	}
}

// dumpDists prints how many consecutive-atom distances there are and
// their range. A trace distance far outside bonding range usually
// means a chain break or a broken field that fell back to zero.
func dumpDists(wrtr io.Writer, xyz cmmn.XyzSl) {
	dists := geom.TraceDists(xyz)
	if len(dists) == 0 {
		fmt.Fprintln(wrtr, "no distances, fewer than two atoms")
		return
	}
	min, max, sum := dists[0], dists[0], 0.0
	for _, d := range dists {
		if d < min {
			min = d
		}
		if d > max {
			max = d
		}
		sum += d
	}
	fmt.Fprintf(wrtr, "%d distances, min %.3f max %.3f mean %.3f\n",
		len(dists), min, max, sum/float64(len(dists)))
}

// run does everything after flag parsing, so the tests can call it
// without playing games with os.Args.
func run(wrtr io.Writer, flags *CmdFlag, infile string) error {
	if flags.Count { // no need to build records just to count them
		n, err := atoms.NumAtoms(infile)
		if err != nil {
			return err
		}
		fmt.Fprintln(wrtr, n)
		return nil
	}

	aSl, err := atoms.ParseFile(infile)
	if err != nil {
		return err
	}
	switch {
	case flags.Json:
		enc := json.NewEncoder(wrtr)
		return enc.Encode(atoms.NewSummary(aSl))
	case flags.Coord:
		for _, xyz := range aSl.Coords() {
			fmt.Fprintf(wrtr, "%.3f %.3f %.3f\n", xyz.X, xyz.Y, xyz.Z)
		}
	case flags.Dists:
		dumpDists(wrtr, aSl.Coords())
	default:
		dumpAtoms(wrtr, aSl)
	}
	return nil
}

// Mymain parses the flags and runs. It returns the exit code for
// main to hand to the operating system.
func Mymain() int {
	var flags CmdFlag
	flag.BoolVar(&flags.Json, "j", false, "print the summary as json")
	flag.BoolVar(&flags.Coord, "c", false, "print coordinates only")
	flag.BoolVar(&flags.Count, "n", false, "print the atom count only")
	flag.BoolVar(&flags.Dists, "d", false, "print trace distance statistics")
	flag.Parse()

	if len(flag.Args()) != 1 {
		fmt.Fprintln(os.Stderr, "Got", len(flag.Args()), "args, expected 1")
		return usage()
	}
	if err := run(os.Stdout, &flags, flag.Args()[0]); err != nil {
		fmt.Fprintln(os.Stderr, "Fatal:", err)
		return cmmn.ExitFailure
	}
	return cmmn.ExitSuccess
}
