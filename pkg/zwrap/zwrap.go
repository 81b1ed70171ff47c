// Package zwrap opens a coordinate file for reading. The file is mapped
// into memory and, if it starts with the gzip magic bytes, wrapped in a
// decompressor. Calling Close undoes all of it, decompressor first, then
// the mapping, then the file.
package zwrap

import (
	"bytes"
	"compress/gzip"
	"errors"
	"io"
	"os"

	"github.com/edsrzf/mmap-go"
)

var gzMagic = []byte{0x1f, 0x8b}

// Mapped is what we return. Reads come from the decompressor if there
// is one, otherwise straight from the mapped bytes.
type Mapped struct {
	fp   *os.File
	mm   mmap.MMap // nil for an empty file
	rdr  *bytes.Reader
	zrdr *gzip.Reader
}

// Read makes sure we read from the compressed stream and
// not the raw bytes.
func (m *Mapped) Read(p []byte) (int, error) {
	if m.zrdr != nil {
		return m.zrdr.Read(p)
	}
	return m.rdr.Read(p)
}

// Close closes the decompressor, unmaps and closes the file.
// It is safe to call more than once.
func (m *Mapped) Close() error {
	var errs []error
	if m.zrdr != nil {
		errs = append(errs, m.zrdr.Close())
		m.zrdr = nil
	}
	if m.mm != nil {
		errs = append(errs, m.mm.Unmap())
		m.mm = nil
	}
	if m.fp != nil {
		errs = append(errs, m.fp.Close())
		m.fp = nil
	}
	return errors.Join(errs...)
}

// Compressed says if we are reading through gzip.
func (m *Mapped) Compressed() bool { return m.zrdr != nil }

// Open maps fname read only. mmap refuses zero length files, so those
// are not mapped and simply read as empty.
func Open(fname string) (*Mapped, error) {
	fp, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	fi, err := fp.Stat()
	if err != nil {
		fp.Close()
		return nil, err
	}
	m := &Mapped{fp: fp}
	if fi.Size() == 0 {
		m.rdr = bytes.NewReader(nil)
		return m, nil
	}
	if m.mm, err = mmap.Map(fp, mmap.RDONLY, 0); err != nil {
		fp.Close()
		return nil, errors.New("mapping " + fname + ": " + err.Error())
	}
	m.rdr = bytes.NewReader(m.mm)
	if !bytes.HasPrefix(m.mm, gzMagic) {
		return m, nil
	}
	if m.zrdr, err = gzip.NewReader(m.rdr); err != nil {
		m.Close()
		return nil, errors.New("reading " + fname + " " + err.Error())
	}
	return m, nil
}

// check we satisfy the interface people will use us through
var _ io.ReadCloser = (*Mapped)(nil)
