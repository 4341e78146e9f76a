// Package zwrap takes something like a file pointer and optionally
// wraps it, so reads come from a decompressor if the source was
// compressed. Structure files from the big archives usually arrive
// as x.cif.gz, so every reader in this module goes through here.

package zwrap

import (
	"compress/gzip"
	"errors"
	"io"
)

// A Zfile is what we return. If zrdr is nil, the source was not
// compressed and reads go straight to the backing source.
type Zfile struct {
	fp   io.ReadCloser
	zrdr *gzip.Reader
}

// Read reads from the compressed stream if there is one and from
// the underlying source if not.
func (z *Zfile) Read(p []byte) (int, error) {
	if z.zrdr != nil {
		return z.zrdr.Read(p)
	}
	return z.fp.Read(p)
}

// Close closes the decompressor, then the backing readCloser. It
// should work whether the source is a file or an http stream.
func (z *Zfile) Close() error {
	if z.zrdr == nil {
		return z.fp.Close()
	}
	return errors.Join(z.zrdr.Close(), z.fp.Close())
}

// ReadSeekCloser is what WrapMaybe needs. A file satisfies it.
type ReadSeekCloser interface {
	io.Reader
	io.Seeker
	io.Closer
}

// Wrap puts a gzip reader in front of fp. The error from gzip comes
// straight back, so the caller can decide if it just means the
// source was not compressed.
func Wrap(fp io.ReadCloser) (*Zfile, error) {
	zrdr, err := gzip.NewReader(fp)
	return &Zfile{fp: fp, zrdr: zrdr}, err
}

// WrapMaybe decides if the underlying stream is compressed and
// wraps it if necessary. You do lose something. If you pass in
// something which can seek, you get back a reader which cannot.
// That is the price of reading through a decompressor.
func WrapMaybe(fpIn ReadSeekCloser) (*Zfile, error) {
	if z, err := Wrap(fpIn); err == nil {
		return z, nil // It was compressed.
	}
	_, err := fpIn.Seek(0, io.SeekStart) // Not gzip. Go back to the
	return &Zfile{fp: fpIn}, err         // start and read it plain.
}
