// Split a line at white space. The library has bytes.Fields, but it
// allocates a fresh slice of slices on every call, and this sits in
// the middle of the per-line loop. Our version writes into scratch
// space owned by the caller, the same trick the sequence reading
// code has always used. See the benchmark next to the tests.

package atoms

// scrtchLen is how many pieces a line may have before we start
// dropping them. An atom line has 21 and a little slack costs
// nothing.
const scrtchLen = 40

// asciiSpace only covers ascii spaces, which is all an mmcif file
// may contain.
var asciiSpace = [256]bool{
	'\t': true, '\n': true, '\v': true, '\f': true, '\r': true, ' ': true,
}

// fields breaks s into its space separated words, storing sub-slices
// of s in scrtch. Nothing is copied. If the line has more words than
// scrtch can hold, the rest are lost, which the caller has to be
// happy with.
func fields(s []byte, scrtch [][]byte) [][]byte {
	var iwrd int
	i := 0
	for {
		for ; i < len(s) && asciiSpace[s[i]]; i++ { // eat spaces
		}
		if i == len(s) || iwrd == len(scrtch) {
			return scrtch[:iwrd]
		}
		istart := i
		for ; i < len(s) && !asciiSpace[s[i]]; i++ { // in a word
		}
		scrtch[iwrd] = s[istart:i]
		iwrd++
	}
}
