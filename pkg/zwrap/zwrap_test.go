package zwrap_test

import (
	"compress/gzip"
	"io"
	"os"
	"testing"

	"github.com/andrew-torda/mmcif_atoms/pkg/zwrap"
)

const payload = "ATOM 1 N N . VAL A 1 1 ? 1.0 2.0 3.0 1.00 9.0 ? 1 VAL A N 1\n"

// wrtTestFile writes payload to a temp file, gzipped or not, and
// returns the name. Caller removes it.
func wrtTestFile(t *testing.T, compress bool) string {
	fp, err := os.CreateTemp("", "_del_me_testing")
	if err != nil {
		t.Fatal(err)
	}
	defer fp.Close()
	var w io.Writer = fp
	if compress {
		zw := gzip.NewWriter(fp)
		defer zw.Close()
		w = zw
	}
	if _, err := io.WriteString(w, payload); err != nil {
		t.Fatal(err)
	}
	return fp.Name()
}

func TestWrapMaybe(t *testing.T) {
	for _, compress := range []bool{false, true} {
		fname := wrtTestFile(t, compress)
		defer os.Remove(fname)
		fp, err := os.Open(fname)
		if err != nil {
			t.Fatal(err)
		}
		rdr, err := zwrap.WrapMaybe(fp)
		if err != nil {
			t.Fatal("compress =", compress, err)
		}
		b, err := io.ReadAll(rdr)
		if err != nil {
			t.Fatal("compress =", compress, err)
		}
		if string(b) != payload {
			t.Error("compress =", compress, "read back the wrong bytes")
		}
		if err := rdr.Close(); err != nil {
			t.Error("compress =", compress, "close:", err)
		}
	}
}

// A file too short to even hold the gzip magic must come back plain.
func TestWrapMaybeTiny(t *testing.T) {
	fp, err := os.CreateTemp("", "_del_me_testing")
	if err != nil {
		t.Fatal(err)
	}
	fname := fp.Name()
	io.WriteString(fp, "A")
	fp.Close()
	defer os.Remove(fname)

	fp, err = os.Open(fname)
	if err != nil {
		t.Fatal(err)
	}
	rdr, err := zwrap.WrapMaybe(fp)
	if err != nil {
		t.Fatal(err)
	}
	defer rdr.Close()
	b, err := io.ReadAll(rdr)
	if err != nil || string(b) != "A" {
		t.Error("tiny file broke the wrapper:", string(b), err)
	}
}
